package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// RelativeTime renders a timestamp as a short age relative to now:
// "now", "5m", "3h", "2d", or the date for anything older than a week.
func RelativeTime(ts, now time.Time) string {
	if ts.IsZero() {
		return ""
	}
	d := now.Sub(ts)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
	return ts.Format("2006-01-02")
}

// TruncateLine collapses text to a single line of at most width cells,
// appending an ellipsis when anything was cut.
func TruncateLine(text string, width int) string {
	if width < 4 {
		width = 4
	}
	line := strings.Join(strings.Fields(text), " ")
	if ansi.StringWidth(line) <= width {
		return line
	}
	return ansi.Truncate(line, width-1, "…")
}
