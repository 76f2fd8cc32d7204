package utils

import (
	"strings"
)

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// GetSeparator returns the line printed between report sections
func GetSeparator(width int) string {
	return strings.Repeat("-", width)
}
