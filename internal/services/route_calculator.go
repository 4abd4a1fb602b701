package services

import (
	"fmt"
	"route-time-service/internal/domain"
)

// RouteCalculator holds one dispatcher's route and its last computed summary.
//
// Every change to the route clears the summary; only Calculate produces a new
// one. A RouteCalculator is not safe for concurrent use: hosts serving many
// sessions give each session its own instance.
type RouteCalculator struct {
	table   domain.PositionTable
	route   domain.Route
	summary *domain.TripSummary
}

func NewRouteCalculator(table domain.PositionTable) *RouteCalculator {
	return &RouteCalculator{table: table}
}

// Append a stop. Unknown identifiers are rejected without changing state.
func (c *RouteCalculator) AddStop(positionID string) error {
	if !c.table.Contains(positionID) {
		return fmt.Errorf("add stop: %w", &domain.UnknownStopError{ID: positionID})
	}

	c.route.Add(positionID)
	c.summary = nil
	return nil
}

// Remove the stop at index together with its order count.
func (c *RouteCalculator) RemoveStop(index int) error {
	if err := c.route.RemoveAt(index); err != nil {
		return fmt.Errorf("remove stop %d: %w", index, err)
	}

	c.summary = nil
	return nil
}

// Set the order count for the stop at index from user-typed text.
// See ParseOrderCount for how the text is coerced.
func (c *RouteCalculator) SetOrderCount(index int, raw string) error {
	if err := c.route.SetOrderCount(index, ParseOrderCount(raw)); err != nil {
		return fmt.Errorf("set order count %d: %w", index, err)
	}

	c.summary = nil
	return nil
}

// Reset returns the calculator to its initial empty state.
func (c *RouteCalculator) Reset() {
	c.route.Clear()
	c.summary = nil
}

// Calculate computes and stores the trip summary for the current route.
// The route itself is never modified.
func (c *RouteCalculator) Calculate() (domain.TripSummary, error) {
	c.summary = nil

	summary, err := CalculateTrip(c.table, c.route.Stops)
	if err != nil {
		return domain.TripSummary{}, err
	}

	c.summary = &summary
	return summary, nil
}

// Stops returns a copy of the current route.
func (c *RouteCalculator) Stops() []domain.Stop { return c.route.Snapshot() }

// Summary returns the last computed summary, or nil if the route changed since.
func (c *RouteCalculator) Summary() *domain.TripSummary {
	if c.summary == nil {
		return nil
	}
	s := *c.summary
	s.Path = append([]string(nil), c.summary.Path...)
	return &s
}

func (c *RouteCalculator) Table() domain.PositionTable { return c.table }
