package durationstats

import (
	"io"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/domain/entities/triptable"
	"bikeshare/explorer/reporters/factory/reporter_type/section"
)

const (
	reporterType = "duration-stats"
	title        = "Calculating Trip Duration..."
)

type DurationStatsReporter struct {
	out            io.Writer
	separatorWidth int
}

func NewDurationStatsReporter(out io.Writer, separatorWidth int) *DurationStatsReporter {
	return &DurationStatsReporter{
		out:            out,
		separatorWidth: separatorWidth,
	}
}

func (dr *DurationStatsReporter) GetType() string {
	return reporterType
}

// Report prints the total and the average trip duration
func (dr *DurationStatsReporter) Report(table *triptable.Table, _ selection.Selection) {
	s := section.Begin(dr.out, dr.separatorWidth, title)
	defer s.End()

	accumulator := ComputeDurationStats(table)
	if accumulator.IsEmpty() {
		s.NoData()
		return
	}

	s.Printf("Total travel time is: %s\n\n", section.FormatDuration(accumulator.GetTotalDuration()))
	s.Printf("Average trip duration is: %s\n", section.FormatDuration(accumulator.GetAverageDuration()))
	log.Debugf("[reporter: %s][status: OK] trips: %v, total duration: %v", reporterType, accumulator.Counter, accumulator.TotalDuration)
}

// ComputeDurationStats accumulates the Trip Duration column. Missing durations are skipped
func ComputeDurationStats(table *triptable.Table) *durationaccumulator.DurationAccumulator {
	accumulator := durationaccumulator.NewDurationAccumulator()
	if table.IsEmpty() {
		return accumulator
	}

	for _, duration := range table.Floats(trip.Duration) {
		accumulator.UpdateAccumulator(duration)
	}
	return accumulator
}
