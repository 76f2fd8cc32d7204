package triptable

import (
	"math"
	"math/rand"

	"github.com/go-gota/gota/dataframe"

	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// Table is the set of trips of a city after loading and filtering. It is read-only: every method
// that changes rows returns a new Table
type Table struct {
	df dataframe.DataFrame
}

func NewTable(df dataframe.DataFrame) *Table {
	return &Table{df: df}
}

func (t *Table) Len() int {
	return t.df.Nrow()
}

func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// Columns returns the column names in file order, derived columns last
func (t *Table) Columns() []string {
	return t.df.Names()
}

// HasColumn returns true if the city file has the given column
func (t *Table) HasColumn(column string) bool {
	return utils.ContainsString(column, t.df.Names())
}

// Strings returns the values of a column as text, as they appear in the file. Missing values are
// empty strings
func (t *Table) Strings(column string) []string {
	return t.df.Col(column).Records()
}

// Floats returns the values of a numeric column. Missing values are NaN
func (t *Table) Floats(column string) []float64 {
	return t.df.Col(column).Float()
}

// Ints returns the values of an integer column such as the derived ones. Missing values are -1
func (t *Table) Ints(column string) []int {
	floats := t.Floats(column)
	values := make([]int, len(floats))
	for i, value := range floats {
		if math.IsNaN(value) {
			values[i] = -1
			continue
		}
		values[i] = int(value)
	}
	return values
}

// Trips returns the rows as TripData, in table order
func (t *Table) Trips() []trip.TripData {
	startStations := t.Strings(trip.StartStation)
	endStations := t.Strings(trip.EndStation)
	durations := t.Floats(trip.Duration)
	userTypes := t.Strings(trip.UserType)
	months := t.Ints(trip.Month)
	daysOfWeek := t.Ints(trip.DayOfWeek)
	hours := t.Ints(trip.Hour)

	trips := make([]trip.TripData, t.Len())
	for i := range trips {
		trips[i] = trip.TripData{
			StartStation: startStations[i],
			EndStation:   endStations[i],
			Duration:     durations[i],
			UserType:     userTypes[i],
			Month:        months[i],
			DayOfWeek:    daysOfWeek[i],
			Hour:         hours[i],
		}
	}
	return trips
}

// Sample returns up to n distinct random rows. If the table has n rows or fewer all of them are
// returned in table order
func (t *Table) Sample(r *rand.Rand, n int) *Table {
	if t.Len() <= n {
		return t
	}
	return NewTable(t.df.Subset(r.Perm(t.Len())[:n]))
}

// WithoutDerived returns the table without the month, day_of_week and hour columns
func (t *Table) WithoutDerived() *Table {
	var present []string
	for _, column := range trip.DerivedColumns() {
		if t.HasColumn(column) {
			present = append(present, column)
		}
	}
	if len(present) == 0 {
		return t
	}
	return NewTable(t.df.Drop(present))
}

// Records returns the header followed by every row as text
func (t *Table) Records() [][]string {
	return t.df.Records()
}
