package dto

import "encoding/json"

type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type AddStopRequest struct {
	PositionID string `json:"position_id"`
}

// SetOrderCountRequest carries the raw text typed for a stop's order count.
// Value may be a JSON string or a JSON number.
type SetOrderCountRequest struct {
	Value json.RawMessage `json:"value"`
}

type StopResponse struct {
	Index      int    `json:"index"`
	PositionID string `json:"position_id"`
	Line       string `json:"line"`
	OrderCount int    `json:"order_count"`
}

type TripSummaryResponse struct {
	TotalMinutes   float64  `json:"total_minutes"`
	TotalOrders    int      `json:"total_orders"`
	AverageMinutes float64  `json:"average_minutes"`
	Path           []string `json:"path"`
	PathText       string   `json:"path_text"`
}

// ErrorResponse reports a failed request. Session is set when the session
// exists, so clients can redraw the route they still have.
type ErrorResponse struct {
	Error   string           `json:"error"`
	Session *SessionResponse `json:"session,omitempty"`
}

type SessionResponse struct {
	SessionID string               `json:"session_id"`
	Stops     []StopResponse       `json:"stops"`
	Summary   *TripSummaryResponse `json:"summary"`
}
