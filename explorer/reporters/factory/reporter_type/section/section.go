// Package section prints the frame shared by every report: title, elapsed time and separator
package section

import (
	"fmt"
	"io"
	"math"
	"time"

	"bikeshare/utils"
)

const noDataMessage = "No data available for the selected filters."

type Section struct {
	out       io.Writer
	separator string
	startTime time.Time
}

// Begin prints the title of the section and starts measuring the elapsed time
func Begin(out io.Writer, separatorWidth int, title string) *Section {
	fmt.Fprintf(out, "\n%s\n\n", title)
	return &Section{
		out:       out,
		separator: utils.GetSeparator(separatorWidth),
		startTime: time.Now(),
	}
}

func (s *Section) Printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Section) NoData() {
	fmt.Fprintln(s.out, noDataMessage)
}

// End prints the time elapsed since Begin and the separator
func (s *Section) End() {
	fmt.Fprintf(s.out, "\nThis took %v seconds.\n", time.Since(s.startTime).Seconds())
	fmt.Fprintln(s.out, s.separator)
}

// FormatDuration formats an amount of seconds as "<days> days HH:MM:SS", adding microseconds
// when the value is not a whole number of seconds, e.g. 360 -> "0 days 00:06:00"
func FormatDuration(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	micros := int64(math.Round(seconds * 1e6))
	days := micros / (24 * 3600 * 1e6)
	micros -= days * 24 * 3600 * 1e6
	hours := micros / (3600 * 1e6)
	micros -= hours * 3600 * 1e6
	minutes := micros / (60 * 1e6)
	micros -= minutes * 60 * 1e6
	secs := micros / 1e6
	micros -= secs * 1e6

	formatted := fmt.Sprintf("%s%d days %02d:%02d:%02d", sign, days, hours, minutes, secs)
	if micros != 0 {
		formatted += fmt.Sprintf(".%06d", micros)
	}
	return formatted
}
