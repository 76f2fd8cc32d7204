package stationstats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/domain/entities/triptable"
)

func newStationTable(startStations []string, endStations []string) *triptable.Table {
	rows := len(startStations)
	return triptable.NewTable(dataframe.New(
		series.New(startStations, series.String, trip.StartStation),
		series.New(endStations, series.String, trip.EndStation),
		series.New(make([]float64, rows), series.Float, trip.Duration),
		series.New(make([]string, rows), series.String, trip.UserType),
		series.New(make([]int, rows), series.Int, trip.Month),
		series.New(make([]int, rows), series.Int, trip.DayOfWeek),
		series.New(make([]int, rows), series.Int, trip.Hour),
	))
}

func TestComputeStationStats(t *testing.T) {
	table := newStationTable(
		[]string{"Canal St", "Lake St", "Lake St", "Canal St", "Canal St"},
		[]string{"Clark St", "Canal St", "Canal St", "Lake St", "Canal St"},
	)

	stats := ComputeStationStats(table)
	if stats.MostCommonStartStation != "Canal St" {
		t.Errorf("MostCommonStartStation = %q, want Canal St", stats.MostCommonStartStation)
	}
	if stats.MostCommonEndStation != "Canal St" {
		t.Errorf("MostCommonEndStation = %q, want Canal St", stats.MostCommonEndStation)
	}

	wantRoute := trip.Route{StartStation: "Lake St", EndStation: "Canal St"}
	if stats.MostCommonRoute != wantRoute {
		t.Errorf("MostCommonRoute = %+v, want %+v", stats.MostCommonRoute, wantRoute)
	}
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	table := newStationTable([]string{"A", "A", "B"}, []string{"B", "B", "A"})
	NewStationStatsReporter(&out, 40).Report(table, selection.NewSelection(selection.Chicago, "all", "all"))

	output := out.String()
	for _, want := range []string{
		"The most commonly used start station is: A",
		"And the most commonly used end station is: B",
		"While the most common trip is from A to B",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output does not contain %q:\n%s", want, output)
		}
	}
}

func TestReportEmptyTable(t *testing.T) {
	var out bytes.Buffer
	NewStationStatsReporter(&out, 40).Report(newStationTable([]string{}, []string{}), selection.Selection{})

	if !strings.Contains(out.String(), "No data available") {
		t.Errorf("empty table should report no data:\n%s", out.String())
	}
}
