package factory

import (
	"fmt"
	"io"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/triptable"
	"bikeshare/explorer/reporters/factory/reporter_type/durationstats"
	"bikeshare/explorer/reporters/factory/reporter_type/stationstats"
	"bikeshare/explorer/reporters/factory/reporter_type/timestats"
	"bikeshare/explorer/reporters/factory/reporter_type/userstats"
)

const (
	TimeStatsReporter     = "time-stats"
	StationStatsReporter  = "station-stats"
	DurationStatsReporter = "duration-stats"
	UserStatsReporter     = "user-stats"
)

// IReporter prints one group of statistics about a filtered table. Reporters only read the table
type IReporter interface {
	GetType() string
	Report(table *triptable.Table, filters selection.Selection)
}

// DefaultReporterTypes returns the reporters run after each load, in order
func DefaultReporterTypes() []string {
	return []string{TimeStatsReporter, StationStatsReporter, DurationStatsReporter, UserStatsReporter}
}

// NewReporter initialize a reporter of some type.
// Possible reporter types are: time-stats, station-stats, duration-stats, user-stats
func NewReporter(reporterType string, out io.Writer, separatorWidth int) (IReporter, error) {
	switch reporterType {
	case TimeStatsReporter:
		return timestats.NewTimeStatsReporter(out, separatorWidth), nil
	case StationStatsReporter:
		return stationstats.NewStationStatsReporter(out, separatorWidth), nil
	case DurationStatsReporter:
		return durationstats.NewDurationStatsReporter(out, separatorWidth), nil
	case UserStatsReporter:
		return userstats.NewUserStatsReporter(out, separatorWidth), nil
	}

	return nil, fmt.Errorf("[method: NewReporter][status: error] Invalid reporter type %s", reporterType)
}

// NewReporters initialize one reporter of each type, keeping the order of reporterTypes
func NewReporters(reporterTypes []string, out io.Writer, separatorWidth int) ([]IReporter, error) {
	reporters := make([]IReporter, 0, len(reporterTypes))
	for _, reporterType := range reporterTypes {
		reporter, err := NewReporter(reporterType, out, separatorWidth)
		if err != nil {
			return nil, err
		}
		reporters = append(reporters, reporter)
	}
	return reporters, nil
}
