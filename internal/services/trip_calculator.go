package services

import (
	"fmt"
	"math"
	"route-time-service/internal/domain"
)

// Minutes added when moving between two positions on the same line.
const SameLineHandlingMinutes = 10

// CalculateTrip computes the round-trip summary for stops visited in order.
//
// Travel starts and ends at the hub. There is no direct path between lines:
// changing line means returning to the hub first. A stop with a negative
// order count adds no orders, but its travel time still counts.
func CalculateTrip(table domain.PositionTable, stops []domain.Stop) (domain.TripSummary, error) {
	if len(stops) == 0 {
		return domain.TripSummary{}, domain.ErrEmptyRoute
	}

	currentLine := domain.LineCenter
	currentDistance := 0.0
	totalMinutes := 0.0
	totalOrders := 0

	path := make([]string, 0, len(stops)+2)
	path = append(path, domain.HubID)

	for i, stop := range stops {
		if stop.OrderCount > 0 {
			if stop.OrderCount > math.MaxInt-totalOrders {
				return domain.TripSummary{}, fmt.Errorf("calculate trip: stop %d: %w", i, domain.ErrTooManyOrders)
			}
			totalOrders += stop.OrderCount
		}

		next, err := table.Lookup(stop.PositionID)
		if err != nil {
			return domain.TripSummary{}, fmt.Errorf("calculate trip: stop %d: %w", i, err)
		}

		totalMinutes += legMinutes(currentLine, currentDistance, next.Line, next.OneWayMinutes)
		currentLine = next.Line
		currentDistance = next.OneWayMinutes

		path = append(path, stop.PositionID)
	}

	// Return leg to the hub.
	totalMinutes += currentDistance
	path = append(path, domain.HubID)

	if totalOrders == 0 {
		return domain.TripSummary{}, domain.ErrZeroOrders
	}

	return domain.TripSummary{
		TotalMinutes:   totalMinutes,
		TotalOrders:    totalOrders,
		AverageMinutes: roundHalfUp(totalMinutes/float64(totalOrders), 2),
		Path:           path,
	}, nil
}

// legMinutes returns the travel time from the current position to the next one.
func legMinutes(fromLine domain.Line, fromDistance float64, toLine domain.Line, toDistance float64) float64 {
	switch {
	case fromLine == domain.LineCenter:
		return toDistance
	case fromLine == toLine:
		return math.Abs(fromDistance-toDistance) + SameLineHandlingMinutes
	default:
		return fromDistance + toDistance
	}
}

func roundHalfUp(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Floor(v*scale+0.5) / scale
}

