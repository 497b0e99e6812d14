package ui

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a string by removing characters from the middle,
// preserving both the beginning and end. For paths, it preserves file extensions.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}

	ellipsis := []rune("…")

	// Smart path truncation: preserve file extension if it looks like a path
	if strings.ContainsAny(value, `/\`) {
		lastDot := strings.LastIndex(value, ".")
		lastSlash := strings.LastIndexAny(value, `/\`)
		if lastDot > lastSlash && lastDot > 0 {
			extRunes := []rune(value[lastDot:])
			if len(extRunes) < 10 && len(extRunes) < limit/2 {
				baseRunes := []rune(value[:lastDot])
				baseLimit := limit - len(extRunes) - len(ellipsis)
				if baseLimit > 0 && len(baseRunes) > baseLimit {
					prefix := baseLimit / 2
					suffix := baseLimit - prefix
					return string(baseRunes[:prefix]) + string(ellipsis) + string(baseRunes[len(baseRunes)-suffix:]) + string(extRunes)
				}
			}
		}
	}

	keep := limit - len(ellipsis)
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + string(ellipsis) + string(runes[len(runes)-suffix:])
}

// padLeft right-aligns a string within the given width.
func padLeft(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(r)) + s
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// formatValue renders an axis or table value with an SI prefix, e.g. 1.5 k.
func formatValue(v float64) string {
	return strings.TrimSpace(humanize.SIWithDigits(v, 2, ""))
}

// formatExact renders a value in full for the points table.
func formatExact(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
