package selection

import (
	"strings"
)

// AllFilter is the sentinel used for "no month filter" and "no day filter"
const AllFilter = "all"

const (
	Chicago     = "chicago"
	NewYorkCity = "new york city"
	Washington  = "washington"
	daysOffset  = 1 // "all" takes index 0 and monday is weekday 0
)

var (
	cities = []string{Chicago, NewYorkCity, Washington}
	months = []string{AllFilter, "january", "february", "march", "april", "may", "june"}
	days   = []string{AllFilter, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Cities returns the valid city identifiers in prompt order
func Cities() []string {
	return append([]string(nil), cities...)
}

// Months returns "all" followed by the valid month names
func Months() []string {
	return append([]string(nil), months...)
}

// Days returns "all" followed by the valid day names, Monday first
func Days() []string {
	return append([]string(nil), days...)
}

// Selection is the filter chosen by the user for one query
// + City: city to analyze, one of Cities()
// + Month: month name to filter by or "all"
// + Day: day name to filter by or "all"
type Selection struct {
	City  string
	Month string
	Day   string
}

func NewSelection(city string, month string, day string) Selection {
	return Selection{
		City:  strings.ToLower(city),
		Month: strings.ToLower(month),
		Day:   strings.ToLower(day),
	}
}

func (s Selection) GetCity() string {
	return s.City
}

func (s Selection) GetMonth() string {
	return s.Month
}

func (s Selection) GetDay() string {
	return s.Day
}

// FiltersMonth returns true if the selection restricts the month
func (s Selection) FiltersMonth() bool {
	return s.Month != AllFilter
}

// FiltersDay returns true if the selection restricts the day of week
func (s Selection) FiltersDay() bool {
	return s.Day != AllFilter
}

// MonthNumber returns the calendar month (1-12) of the selected month. The second value is false
// if there is no month filter or the name is unknown
func (s Selection) MonthNumber() (int, bool) {
	idx := indexOf(s.Month, months)
	if idx <= 0 {
		return 0, false
	}
	return idx, true // january sits right after "all"
}

// DayNumber returns the Monday-origin weekday (0-6) of the selected day. The second value is false
// if there is no day filter or the name is unknown
func (s Selection) DayNumber() (int, bool) {
	idx := indexOf(s.Day, days)
	if idx <= 0 {
		return 0, false
	}
	return idx - daysOffset, true
}

// IsValid returns true if all three fields are members of their enumerations
func (s Selection) IsValid() bool {
	return IsValidCity(s.City) && IsValidMonth(s.Month) && IsValidDay(s.Day)
}

// IsValidCity reports whether value names a known city, ignoring case
func IsValidCity(value string) bool {
	return indexOf(strings.ToLower(value), cities) >= 0
}

// IsValidMonth reports whether value is "all" or a known month, ignoring case
func IsValidMonth(value string) bool {
	return indexOf(strings.ToLower(value), months) >= 0
}

// IsValidDay reports whether value is "all" or a known day, ignoring case
func IsValidDay(value string) bool {
	return indexOf(strings.ToLower(value), days) >= 0
}

// Title capitalizes each word of an enumeration value, e.g. "new york city" -> "New York City"
func Title(value string) string {
	words := strings.Fields(value)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func indexOf(target string, values []string) int {
	for i := range values {
		if values[i] == target {
			return i
		}
	}
	return -1
}
