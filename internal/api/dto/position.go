package dto

type PositionResponse struct {
	ID               string  `json:"id"`
	Line             string  `json:"line"`
	OneWayMinutes    float64 `json:"one_way_minutes"`
	RoundTripMinutes float64 `json:"round_trip_minutes"`
}

type ListPositionsResponse struct {
	Hub       string             `json:"hub"`
	Positions []PositionResponse `json:"positions"`
}
