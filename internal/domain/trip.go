package domain

import "strings"

// PathSeparator joins path labels for display.
const PathSeparator = " → "

// TripSummary is the result of a route calculation.
// It is derived data: any change to the route invalidates it.
type TripSummary struct {
	TotalMinutes   float64
	TotalOrders    int
	AverageMinutes float64
	Path           []string
}

// Return the path as a single display string.
func (s TripSummary) PathString() string {
	return strings.Join(s.Path, PathSeparator)
}
