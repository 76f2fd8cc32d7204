package timestats

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/domain/entities/triptable"
	"bikeshare/explorer/reporters/factory/reporter_type/section"
)

const (
	reporterType = "time-stats"
	title        = "Calculating The Most Frequent Times of Travel..."
)

// TimeStats most frequent times of travel
// + MostCommonMonth: 1-12, only set if MonthReported
// + MostCommonDay: 0 is Monday, only set if DayReported
// + MostCommonHour: 0-23
type TimeStats struct {
	MostCommonMonth int
	MonthReported   bool
	MostCommonDay   int
	DayReported     bool
	MostCommonHour  int
}

type TimeStatsReporter struct {
	out            io.Writer
	separatorWidth int
}

func NewTimeStatsReporter(out io.Writer, separatorWidth int) *TimeStatsReporter {
	return &TimeStatsReporter{
		out:            out,
		separatorWidth: separatorWidth,
	}
}

func (tr *TimeStatsReporter) GetType() string {
	return reporterType
}

// Report prints the most common month (unless a month was selected), the most common day of week
// (unless a day was selected) and the most common start hour
func (tr *TimeStatsReporter) Report(table *triptable.Table, filters selection.Selection) {
	s := section.Begin(tr.out, tr.separatorWidth, title)
	defer s.End()

	if table.IsEmpty() {
		s.NoData()
		return
	}

	stats := ComputeTimeStats(table, filters)
	if stats.MonthReported {
		s.Printf("The most popular month is: %s\n\n", time.Month(stats.MostCommonMonth).String())
	}

	if stats.DayReported {
		s.Printf("The most frequent day is: %s\n\n", DayName(stats.MostCommonDay))
	}

	s.Printf("And the most common start hour is: %v\n", stats.MostCommonHour)
	log.Debugf("[reporter: %s][status: OK] %+v", reporterType, stats)
}

// ComputeTimeStats returns the modes of month, day of week and hour. The table must not be empty
func ComputeTimeStats(table *triptable.Table, filters selection.Selection) TimeStats {
	var stats TimeStats

	if !filters.FiltersMonth() {
		stats.MostCommonMonth, stats.MonthReported = frequencycounter.FromValues(table.Ints(trip.Month)).Mode()
	}

	if !filters.FiltersDay() {
		stats.MostCommonDay, stats.DayReported = frequencycounter.FromValues(table.Ints(trip.DayOfWeek)).Mode()
	}

	stats.MostCommonHour, _ = frequencycounter.FromValues(table.Ints(trip.Hour)).Mode()
	return stats
}

// DayName returns the name of a Monday-origin weekday, e.g. 0 -> "Monday"
func DayName(day int) string {
	days := selection.Days()
	return selection.Title(days[day+1]) // days[0] is "all"
}
