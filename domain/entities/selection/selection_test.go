package selection

import "testing"

func TestNewSelectionLowersCase(t *testing.T) {
	s := NewSelection("New York City", "JUNE", "Monday")
	if s.GetCity() != NewYorkCity || s.GetMonth() != "june" || s.GetDay() != "monday" {
		t.Errorf("NewSelection() = %+v, want lower-cased values", s)
	}
}

func TestMonthNumber(t *testing.T) {
	tests := []struct {
		month  string
		want   int
		wantOK bool
	}{
		{"all", 0, false},
		{"january", 1, true},
		{"march", 3, true},
		{"june", 6, true},
		{"july", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			got, ok := NewSelection(Chicago, tt.month, AllFilter).MonthNumber()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("MonthNumber() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDayNumberIsMondayOrigin(t *testing.T) {
	tests := []struct {
		day    string
		want   int
		wantOK bool
	}{
		{"all", 0, false},
		{"monday", 0, true},
		{"wednesday", 2, true},
		{"sunday", 6, true},
		{"someday", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			got, ok := NewSelection(Chicago, AllFilter, tt.day).DayNumber()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DayNumber() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFilters(t *testing.T) {
	all := NewSelection(Washington, AllFilter, AllFilter)
	if all.FiltersMonth() || all.FiltersDay() {
		t.Errorf("selection %+v should not filter", all)
	}

	filtered := NewSelection(Washington, "may", "friday")
	if !filtered.FiltersMonth() || !filtered.FiltersDay() {
		t.Errorf("selection %+v should filter month and day", filtered)
	}
}

func TestValidation(t *testing.T) {
	if !IsValidCity("CHICAGO") || !IsValidCity("new york city") {
		t.Error("valid cities rejected")
	}
	if IsValidCity("Chicago!") || IsValidCity("boston") || IsValidCity("waſhington") {
		t.Error("invalid cities accepted")
	}
	if !IsValidMonth("All") || IsValidMonth("december") {
		t.Error("unexpected month validation")
	}
	if !IsValidDay("SUNDAY") || IsValidDay("mon") {
		t.Error("unexpected day validation")
	}
	if !NewSelection("Chicago", "all", "tuesday").IsValid() {
		t.Error("valid selection rejected")
	}
}

func TestEnumerationsCannotBeModified(t *testing.T) {
	cities := Cities()
	cities[0] = "boston"
	if Cities()[0] != Chicago {
		t.Errorf("Cities() exposed its backing slice")
	}
	if len(Months()) != 7 || len(Days()) != 8 {
		t.Errorf("got %v months and %v days, want 7 and 8", len(Months()), len(Days()))
	}
}

func TestTitle(t *testing.T) {
	if got := Title("new york city"); got != "New York City" {
		t.Errorf("Title() = %q, want %q", got, "New York City")
	}
}
