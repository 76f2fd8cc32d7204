package yearaccumulator

import (
	"math"

	"bikeshare/domain/business/frequencycounter"
)

// YearAccumulator collects the birth years of the users
// + Earliest: smallest year seen
// + MostRecent: greatest year seen
// + years: counts each year, used to get the most common one
type YearAccumulator struct {
	Earliest   int
	MostRecent int
	years      *frequencycounter.FrequencyCounter[int]
}

func NewYearAccumulator() *YearAccumulator {
	return &YearAccumulator{
		years: frequencycounter.NewFrequencyCounter[int](),
	}
}

// UpdateAccumulator adds a birth year. Missing years (NaN) are ignored
func (ya *YearAccumulator) UpdateAccumulator(year float64) {
	if math.IsNaN(year) {
		return
	}

	yearInt := int(year)
	if ya.years.IsEmpty() || yearInt < ya.Earliest {
		ya.Earliest = yearInt
	}
	if ya.years.IsEmpty() || yearInt > ya.MostRecent {
		ya.MostRecent = yearInt
	}
	ya.years.UpdateCounter(yearInt)
}

func (ya *YearAccumulator) IsEmpty() bool {
	return ya.years.IsEmpty()
}

func (ya *YearAccumulator) GetMostCommon() int {
	year, ok := ya.years.Mode()
	if !ok {
		panic("[YearAccumulator] cannot get most common year, no years collected")
	}
	return year
}
