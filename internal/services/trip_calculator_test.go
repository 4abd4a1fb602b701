package services

import (
	"errors"
	"math"
	"route-time-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTripScenarios(t *testing.T) {
	tests := []struct {
		name        string
		stops       []domain.Stop
		wantMinutes float64
		wantOrders  int
		wantAverage float64
		wantPath    string
	}{
		{
			name:        "single east stop",
			stops:       []domain.Stop{{PositionID: "K48.11", OrderCount: 5}},
			wantMinutes: 60,
			wantOrders:  5,
			wantAverage: 12,
			wantPath:    "CENTRO → K48.11 → CENTRO",
		},
		{
			name: "same line adds handling time",
			stops: []domain.Stop{
				{PositionID: "K48.11", OrderCount: 2},
				{PositionID: "K48.12", OrderCount: 3},
			},
			wantMinutes: 70,
			wantOrders:  5,
			wantAverage: 14,
			wantPath:    "CENTRO → K48.11 → K48.12 → CENTRO",
		},
		{
			name: "cross line returns through the hub",
			stops: []domain.Stop{
				{PositionID: "K48.11", OrderCount: 1},
				{PositionID: "15.20.1", OrderCount: 1},
			},
			wantMinutes: 120,
			wantOrders:  2,
			wantAverage: 60,
			wantPath:    "CENTRO → K48.11 → 15.20.1 → CENTRO",
		},
		{
			name: "zero order stop still costs travel time",
			stops: []domain.Stop{
				{PositionID: "15.20.1", OrderCount: 0},
				{PositionID: "15.20.4", OrderCount: 4},
			},
			// 30 + (|30-70| + 10) + 70
			wantMinutes: 150,
			wantOrders:  4,
			wantAverage: 37.5,
			wantPath:    "CENTRO → 15.20.1 → 15.20.4 → CENTRO",
		},
		{
			name: "visiting the hub resets the line",
			stops: []domain.Stop{
				{PositionID: "K48.11", OrderCount: 1},
				{PositionID: domain.HubID, OrderCount: 0},
				{PositionID: "K48.12", OrderCount: 1},
			},
			// 30 + (30 + 0) + 20 + 20
			wantMinutes: 100,
			wantOrders:  2,
			wantAverage: 50,
			wantPath:    "CENTRO → K48.11 → CENTRO → K48.12 → CENTRO",
		},
		{
			name: "repeated stop on the same position",
			stops: []domain.Stop{
				{PositionID: "15.20A", OrderCount: 1},
				{PositionID: "15.20A", OrderCount: 1},
			},
			// 30 + (0 + 10) + 30
			wantMinutes: 70,
			wantOrders:  2,
			wantAverage: 35,
			wantPath:    "CENTRO → 15.20A → 15.20A → CENTRO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateTrip(domain.Montesa, tt.stops)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMinutes, got.TotalMinutes)
			assert.Equal(t, tt.wantOrders, got.TotalOrders)
			assert.Equal(t, tt.wantAverage, got.AverageMinutes)
			assert.Equal(t, tt.wantPath, got.PathString())
		})
	}
}

func TestCalculateTripRounding(t *testing.T) {
	// 100 minutes over 3 orders.
	got, err := CalculateTrip(domain.Montesa, []domain.Stop{
		{PositionID: "K48.11", OrderCount: 1},
		{PositionID: domain.HubID, OrderCount: 1},
		{PositionID: "K48.12", OrderCount: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.TotalMinutes)
	assert.Equal(t, 33.33, got.AverageMinutes)

	// 200 minutes over 3 orders.
	got, err = CalculateTrip(domain.Montesa, []domain.Stop{
		{PositionID: "15.20.4", OrderCount: 1},
		{PositionID: "K48.11", OrderCount: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, got.TotalMinutes)
	assert.Equal(t, 66.67, got.AverageMinutes)
}

func TestCalculateTripNegativeCountKeepsTravelTime(t *testing.T) {
	got, err := CalculateTrip(domain.Montesa, []domain.Stop{
		{PositionID: "K48.11", OrderCount: 5},
		{PositionID: "15.20.1", OrderCount: -3},
	})
	require.NoError(t, err)

	assert.Equal(t, 120.0, got.TotalMinutes)
	assert.Equal(t, 5, got.TotalOrders)
	assert.Equal(t, 24.0, got.AverageMinutes)
}

func TestCalculateTripErrors(t *testing.T) {
	_, err := CalculateTrip(domain.Montesa, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyRoute)

	_, err = CalculateTrip(domain.Montesa, []domain.Stop{
		{PositionID: "K48.11"},
		{PositionID: "K48.12", OrderCount: -1},
	})
	assert.ErrorIs(t, err, domain.ErrZeroOrders)

	_, err = CalculateTrip(domain.Montesa, []domain.Stop{{PositionID: "nowhere", OrderCount: 1}})
	var unknown *domain.UnknownStopError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nowhere", unknown.ID)
}

func TestCalculateTripAverageProperty(t *testing.T) {
	ids := []string{"K48.11", "K48.12", "15.20A", "15.20.1", "15.20.2", "15.20.3", "15.20.4", domain.HubID}

	for n := 1; n <= len(ids); n++ {
		stops := make([]domain.Stop, 0, n)
		for i := 0; i < n; i++ {
			stops = append(stops, domain.Stop{PositionID: ids[(i*3)%len(ids)], OrderCount: i % 3})
		}
		stops[0].OrderCount = 1

		got, err := CalculateTrip(domain.Montesa, stops)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.TotalMinutes, 0.0)
		assert.Equal(t, roundHalfUp(got.TotalMinutes/float64(got.TotalOrders), 2), got.AverageMinutes)
		assert.Len(t, got.Path, n+2)
	}
}

func TestCalculateTripRejectsOrderTotalOverflow(t *testing.T) {
	_, err := CalculateTrip(domain.Montesa, []domain.Stop{
		{PositionID: "K48.11", OrderCount: math.MaxInt},
		{PositionID: "K48.12", OrderCount: 2},
	})
	assert.ErrorIs(t, err, domain.ErrTooManyOrders)
	assert.True(t, domain.IsValidationError(err))
}
