package userstats

import (
	"io"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/yearaccumulator"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/domain/entities/triptable"
	"bikeshare/explorer/reporters/factory/reporter_type/section"
)

const (
	reporterType = "user-stats"
	title        = "Calculating User Stats..."
	unknownValue = "Unknown"
)

// UserStats demographics of the users
// + UserTypes: trips per user type, sorted by user type
// + Genders: trips per gender, sorted by gender. Nil if the city file has no Gender column
// + BirthYears: nil if the city file has no Birth Year column
type UserStats struct {
	UserTypes  []frequencycounter.Group[string]
	Genders    []frequencycounter.Group[string]
	BirthYears *yearaccumulator.YearAccumulator
}

func (us UserStats) HasGender() bool {
	return us.Genders != nil
}

func (us UserStats) HasBirthYear() bool {
	return us.BirthYears != nil
}

type UserStatsReporter struct {
	out            io.Writer
	separatorWidth int
}

func NewUserStatsReporter(out io.Writer, separatorWidth int) *UserStatsReporter {
	return &UserStatsReporter{
		out:            out,
		separatorWidth: separatorWidth,
	}
}

func (ur *UserStatsReporter) GetType() string {
	return reporterType
}

// Report prints the trips per user type and, when the city file has the columns, the trips per
// gender and the earliest, most recent and most common birth year
func (ur *UserStatsReporter) Report(table *triptable.Table, _ selection.Selection) {
	s := section.Begin(ur.out, ur.separatorWidth, title)
	defer s.End()

	if table.IsEmpty() {
		s.NoData()
		return
	}

	stats := ComputeUserStats(table)

	s.Printf("Number of trips by user types:\n\n")
	printGroups(s, stats.UserTypes)

	if stats.HasGender() {
		s.Printf("\nNumber of trips by user gender:\n\n")
		printGroups(s, stats.Genders)
	}

	if stats.HasBirthYear() {
		s.Printf("\nStatistics by user's birth year:\n\n")
		if stats.BirthYears.IsEmpty() {
			s.Printf("No birth year data available.\n")
			return
		}
		s.Printf(
			"Earliest year is: %v,\n most recent year is: %v\n and most common year: %v\n",
			stats.BirthYears.Earliest,
			stats.BirthYears.MostRecent,
			stats.BirthYears.GetMostCommon(),
		)
	}

	log.Debugf("[reporter: %s][status: OK] user types: %v", reporterType, stats.UserTypes)
}

// ComputeUserStats groups the trips by user type and, if present, by gender and birth year.
// Missing user types and genders are counted as "Unknown"
func ComputeUserStats(table *triptable.Table) UserStats {
	var stats UserStats
	stats.UserTypes = countCategories(table.Strings(trip.UserType))

	if table.HasColumn(trip.Gender) {
		stats.Genders = countCategories(table.Strings(trip.Gender))
	}

	if table.HasColumn(trip.BirthYear) {
		stats.BirthYears = yearaccumulator.NewYearAccumulator()
		for _, year := range table.Floats(trip.BirthYear) {
			stats.BirthYears.UpdateAccumulator(year)
		}
	}

	return stats
}

func countCategories(values []string) []frequencycounter.Group[string] {
	counter := frequencycounter.NewFrequencyCounter[string]()
	for _, value := range values {
		if value == "" {
			value = unknownValue
		}
		counter.UpdateCounter(value)
	}

	return counter.Groups(func(a string, b string) bool {
		return a < b
	})
}

func printGroups(s *section.Section, groups []frequencycounter.Group[string]) {
	for _, group := range groups {
		s.Printf("%s    %v\n", group.Value, group.Counter)
	}
}
