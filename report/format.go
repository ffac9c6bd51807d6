package report

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// formatSeconds prints an amount of seconds without trailing zeros, e.g. 1200 or 817.5
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(math.Round(seconds*1000)/1000, 'f', -1, 64)
}

// humanDuration renders seconds as days, hours, minutes and seconds, e.g. 1d 2h 3m 4s
func humanDuration(seconds float64) string {
	d := time.Duration(math.Round(seconds)) * time.Second
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	secs := d / time.Second

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, secs)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}
