// Package cli defines the contour command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/five82/contour/internal/app"
	"github.com/five82/contour/internal/config"
	"github.com/five82/contour/internal/curve"
	"github.com/five82/contour/internal/logging"
)

type rootOptions struct {
	configPath string
	prefsPath  string
	verbose    bool
}

// NewRootCommand builds the contour command. Run it with ExecuteContext so
// subcommands can be cancelled.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "contour [location]",
		Short: "Extract extremities from sampled curves and resample them with a natural cubic spline",
		Long: "contour loads (x, y) samples from a file (csv, json, yaml, toml) or an http(s) URL,\n" +
			"keeps the endpoints and strict local extrema, and resamples them with a natural\n" +
			"cubic spline. Without a subcommand it opens the terminal previewer.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return app.Run(cmd.Context(), app.Options{
				Location:   args[0],
				ConfigPath: opts.configPath,
				PrefsPath:  opts.prefsPath,
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/contour/config.toml)")
	flags.StringVar(&opts.prefsPath, "prefs", "", "preferences file (default ~/.config/contour/prefs.toml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(
		newViewCommand(opts),
		newExtremaCommand(opts),
		newResampleCommand(opts),
		newExportCommand(opts),
	)
	return cmd
}

func newViewCommand(opts *rootOptions) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "view <location>",
		Short: "Open the terminal previewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				Location:   args[0],
				ConfigPath: opts.configPath,
				PrefsPath:  opts.prefsPath,
				Steps:      steps,
			})
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "initial resample step count (default from config)")
	return cmd
}

// fit loads location and runs the pipeline with the configured options,
// adjusted by override.
func (o *rootOptions) fit(cmd *cobra.Command, location string, override func(*curve.FitOptions)) (curve.Result, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return curve.Result{}, fmt.Errorf("load config: %w", err)
	}

	var w io.Writer
	level := cfg.LogLevel
	if o.verbose {
		w = cmd.ErrOrStderr()
		level = slog.LevelDebug
	}
	logger, closeLog, err := logging.New(logging.Options{Level: level, Writer: w})
	if err != nil {
		return curve.Result{}, fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	fitOpts := cfg.FitOptions()
	if override != nil {
		override(&fitOpts)
	}

	logger.Debug("loading samples", "location", location, "steps", fitOpts.Steps, "workers", fitOpts.Workers)
	res, err := app.LoadAndFit(cmd.Context(), location, fitOpts)
	if err != nil {
		return curve.Result{}, err
	}
	logger.Info("curve fitted",
		"location", location,
		"points", len(res.Input),
		"extremities", len(res.Extremities),
		"domain_min", res.Domain.Min,
		"domain_max", res.Domain.Max,
		"steps", res.Steps)
	return res, nil
}
