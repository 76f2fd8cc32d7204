package stationstats

import (
	"io"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/domain/entities/triptable"
	"bikeshare/explorer/reporters/factory/reporter_type/section"
)

const (
	reporterType = "station-stats"
	title        = "Calculating The Most Popular Stations and Trip..."
)

// StationStats most popular stations and trip
type StationStats struct {
	MostCommonStartStation string
	MostCommonEndStation   string
	MostCommonRoute        trip.Route
}

type StationStatsReporter struct {
	out            io.Writer
	separatorWidth int
}

func NewStationStatsReporter(out io.Writer, separatorWidth int) *StationStatsReporter {
	return &StationStatsReporter{
		out:            out,
		separatorWidth: separatorWidth,
	}
}

func (sr *StationStatsReporter) GetType() string {
	return reporterType
}

func (sr *StationStatsReporter) Report(table *triptable.Table, _ selection.Selection) {
	s := section.Begin(sr.out, sr.separatorWidth, title)
	defer s.End()

	if table.IsEmpty() {
		s.NoData()
		return
	}

	stats := ComputeStationStats(table)
	s.Printf("The most commonly used start station is: %s\n\n", stats.MostCommonStartStation)
	s.Printf("And the most commonly used end station is: %s\n\n", stats.MostCommonEndStation)
	s.Printf("While the most common trip is from %s to %s\n", stats.MostCommonRoute.StartStation, stats.MostCommonRoute.EndStation)
	log.Debugf("[reporter: %s][status: OK] %+v", reporterType, stats)
}

// ComputeStationStats returns the modes of start station, end station and route. The table must not be empty
func ComputeStationStats(table *triptable.Table) StationStats {
	startCounter := frequencycounter.NewFrequencyCounter[string]()
	endCounter := frequencycounter.NewFrequencyCounter[string]()
	routeCounter := frequencycounter.NewFrequencyCounter[trip.Route]()

	for _, tripData := range table.Trips() {
		startCounter.UpdateCounter(tripData.StartStation)
		endCounter.UpdateCounter(tripData.EndStation)
		routeCounter.UpdateCounter(tripData.GetRoute())
	}

	var stats StationStats
	stats.MostCommonStartStation, _ = startCounter.Mode()
	stats.MostCommonEndStation, _ = endCounter.Mode()
	stats.MostCommonRoute, _ = routeCounter.Mode()
	return stats
}
