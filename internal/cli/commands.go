package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/five82/contour/internal/curve"
	"github.com/five82/contour/internal/pattern"
)

func newExtremaCommand(opts *rootOptions) *cobra.Command {
	var csv bool
	cmd := &cobra.Command{
		Use:   "extrema <location>",
		Short: "Print the endpoints and strict local extrema of a curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.fit(cmd, args[0], nil)
			if err != nil {
				return err
			}
			return writeSeries(cmd.OutOrStdout(), res.Extremities, res.Kinds(), csv)
		},
	}
	cmd.Flags().BoolVar(&csv, "csv", false, "print CSV instead of a table")
	return cmd
}

func newResampleCommand(opts *rootOptions) *cobra.Command {
	var (
		steps   int
		workers int
		lower   float64
		upper   float64
		csv     bool
	)
	cmd := &cobra.Command{
		Use:   "resample <location>",
		Short: "Resample the extremities with a natural cubic spline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := domainFlags(cmd, lower, upper)
			if err != nil {
				return err
			}
			res, err := opts.fit(cmd, args[0], func(o *curve.FitOptions) {
				if steps > 0 {
					o.Steps = steps
				}
				if workers > 0 {
					o.Workers = workers
				}
				if domain != nil {
					o.Domain = domain
				}
			})
			if err != nil {
				return err
			}
			return writeSeries(cmd.OutOrStdout(), res.Resampled, nil, csv)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&steps, "steps", 0, "step count; output has steps+1 points (default from config)")
	flags.IntVar(&workers, "workers", 0, "parallel evaluation workers (default from config)")
	flags.Float64Var(&lower, "min", 0, "domain lower bound (requires --max)")
	flags.Float64Var(&upper, "max", 0, "domain upper bound (requires --min)")
	flags.BoolVar(&csv, "csv", false, "print CSV instead of a table")
	return cmd
}

func newExportCommand(opts *rootOptions) *cobra.Command {
	var (
		out         string
		timeScale   float64
		sharpness   float64
		steps       int
		description string
	)
	cmd := &cobra.Command{
		Use:   "export <location>",
		Short: "Write the resampled curve as a haptic pattern (AHAP JSON)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.fit(cmd, args[0], func(o *curve.FitOptions) {
				if steps > 0 {
					o.Steps = steps
				}
			})
			if err != nil {
				return err
			}

			patternOpts := pattern.Options{TimeScale: timeScale, Description: description}
			if cmd.Flags().Changed("sharpness") {
				patternOpts.Sharpness = &sharpness
			}
			p, err := pattern.Build(res, patternOpts)
			if err != nil {
				return fmt.Errorf("build pattern: %w", err)
			}
			data, err := pattern.Marshal(p)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "", "output file (default stdout)")
	flags.Float64Var(&timeScale, "time-scale", 1, "seconds per x unit")
	flags.Float64Var(&sharpness, "sharpness", 0.5, "event sharpness in [0, 1]")
	flags.IntVar(&steps, "steps", 0, "step count (default from config)")
	flags.StringVar(&description, "description", "", "pattern description")
	return cmd
}

// domainFlags returns the --min/--max domain, or nil when neither is set.
func domainFlags(cmd *cobra.Command, lower, upper float64) (*curve.Domain, error) {
	minSet, maxSet := cmd.Flags().Changed("min"), cmd.Flags().Changed("max")
	switch {
	case !minSet && !maxSet:
		return nil, nil
	case minSet != maxSet:
		return nil, fmt.Errorf("--min and --max must be set together")
	}
	d := curve.Domain{Min: lower, Max: upper}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// writeSeries prints points as a table or CSV. A non-nil kinds map adds a
// kind column keyed by point index.
func writeSeries(w io.Writer, points curve.Series, kinds map[int]curve.Kind, csv bool) error {
	t := table.NewWriter()
	header := table.Row{"#", "X", "Y"}
	if kinds != nil {
		header = append(header, "Kind")
	}
	t.AppendHeader(header)
	for _, p := range points {
		row := table.Row{strconv.Itoa(p.Index), formatFloat(p.X), formatFloat(p.Y)}
		if kinds != nil {
			row = append(row, kinds[p.Index].String())
		}
		t.AppendRow(row)
	}

	var out string
	if csv {
		out = t.RenderCSV()
	} else {
		t.SetStyle(table.StyleLight)
		out = t.Render()
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
