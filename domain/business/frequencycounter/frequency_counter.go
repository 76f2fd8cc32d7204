package frequencycounter

import (
	"sort"
)

// FrequencyCounter counts how many times each value appears in a column
// + order: values in the order they were first seen. Used to break ties
// + counters: map with the structure {value: amount of occurrences}
// + total: amount of values counted
type FrequencyCounter[K comparable] struct {
	order    []K
	counters map[K]int
	total    int
}

func NewFrequencyCounter[K comparable]() *FrequencyCounter[K] {
	return &FrequencyCounter[K]{
		counters: make(map[K]int),
	}
}

// FromValues counts all the values of the slice
func FromValues[K comparable](values []K) *FrequencyCounter[K] {
	fc := NewFrequencyCounter[K]()
	for _, value := range values {
		fc.UpdateCounter(value)
	}
	return fc
}

func (fc *FrequencyCounter[K]) UpdateCounter(value K) {
	if _, ok := fc.counters[value]; !ok {
		fc.order = append(fc.order, value)
	}
	fc.counters[value] += 1
	fc.total += 1
}

func (fc *FrequencyCounter[K]) GetTotal() int {
	return fc.total
}

func (fc *FrequencyCounter[K]) IsEmpty() bool {
	return fc.total == 0
}

// Mode returns the most frequent value. On ties the value that was seen first wins.
// The second value is false if nothing was counted
func (fc *FrequencyCounter[K]) Mode() (K, bool) {
	var mode K
	if fc.IsEmpty() {
		return mode, false
	}

	maxCounter := 0
	for _, value := range fc.order {
		if counter := fc.counters[value]; counter > maxCounter {
			mode = value
			maxCounter = counter
		}
	}
	return mode, true
}

// Group is a value with its amount of occurrences
type Group[K comparable] struct {
	Value   K
	Counter int
}

// Groups returns every value with its counter, sorted with less. If less is nil the groups
// keep the order in which the values were first seen
func (fc *FrequencyCounter[K]) Groups(less func(a K, b K) bool) []Group[K] {
	groups := make([]Group[K], 0, len(fc.order))
	for _, value := range fc.order {
		groups = append(groups, Group[K]{Value: value, Counter: fc.counters[value]})
	}

	if less != nil {
		sort.SliceStable(groups, func(i, j int) bool {
			return less(groups[i].Value, groups[j].Value)
		})
	}
	return groups
}
