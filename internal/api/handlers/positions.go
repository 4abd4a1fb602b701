package handlers

import (
	"net/http"
	"route-time-service/internal/api/dto"
	"route-time-service/internal/domain"
)

// PositionHandler exposes the read-only position table.
type PositionHandler struct {
	Table domain.PositionTable
}

func (h *PositionHandler) List(w http.ResponseWriter, r *http.Request) {
	positions := h.Table.Positions()

	res := dto.ListPositionsResponse{
		Hub:       domain.HubID,
		Positions: make([]dto.PositionResponse, 0, len(positions)),
	}
	for _, p := range positions {
		res.Positions = append(res.Positions, dto.PositionResponse{
			ID:               p.ID,
			Line:             p.Line.String(),
			OneWayMinutes:    p.OneWayMinutes,
			RoundTripMinutes: p.RoundTripMinutes(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
