package trip

// Column names of a city trip file
const (
	StartTime    = "Start Time"
	EndTime      = "End Time"
	StartStation = "Start Station"
	EndStation   = "End Station"
	Duration     = "Trip Duration"
	UserType     = "User Type"
	Gender       = "Gender"
	BirthYear    = "Birth Year"
)

// Derived columns, computed from StartTime when a file is loaded
const (
	Month     = "month"
	DayOfWeek = "day_of_week"
	Hour      = "hour"
)

// RequiredColumns returns the columns every city file must have. Gender and BirthYear are optional:
// Washington's file does not include them
func RequiredColumns() []string {
	return []string{StartTime, StartStation, EndStation, Duration, UserType}
}

// DerivedColumns returns the columns added by the loader, in the order they are appended
func DerivedColumns() []string {
	return []string{Month, DayOfWeek, Hour}
}

// TripData is a single trip with its derived calendar fields
// + StartStation: station in which the trip begins
// + EndStation: station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: Subscriber, Customer, etc.
// + Month: 1-12, from the start time
// + DayOfWeek: 0 is Monday, 6 is Sunday
// + Hour: 0-23, from the start time
type TripData struct {
	StartStation string
	EndStation   string
	Duration     float64
	UserType     string
	Month        int
	DayOfWeek    int
	Hour         int
}

// GetRoute returns the start station -> end station pair of the trip
func (td TripData) GetRoute() Route {
	return Route{StartStation: td.StartStation, EndStation: td.EndStation}
}

// Route is a (start station, end station) combination
type Route struct {
	StartStation string
	EndStation   string
}
