package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"route-time-service/internal/api/dto"
	"route-time-service/internal/domain"
	"route-time-service/internal/platform/obs"
	"route-time-service/internal/ports"
	"route-time-service/internal/services"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// SessionHandler drives one dispatcher session's route calculator over HTTP.
type SessionHandler struct {
	Store ports.SessionStore
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := h.Store.Create(r.Context())
	if err != nil {
		writeSessionError(w, r, err, nil)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.CreateSessionResponse{SessionID: id})
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, func(*services.RouteCalculator) error { return nil })
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeSessionError(w, r, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) AddStop(w http.ResponseWriter, r *http.Request) {
	var req dto.AddStopRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	positionID := strings.TrimSpace(req.PositionID)
	if positionID == "" {
		writeError(w, r, http.StatusBadRequest, "position_id is required")
		return
	}

	h.respond(w, r, http.StatusOK, func(c *services.RouteCalculator) error {
		return c.AddStop(positionID)
	})
}

func (h *SessionHandler) RemoveStop(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	h.respond(w, r, http.StatusOK, func(c *services.RouteCalculator) error {
		return c.RemoveStop(index)
	})
}

func (h *SessionHandler) SetOrderCount(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req dto.SetOrderCountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	raw := orderValueText(req.Value)

	h.respond(w, r, http.StatusOK, func(c *services.RouteCalculator) error {
		return c.SetOrderCount(index, raw)
	})
}

// Calculate computes the trip summary. Validation failures come back as 422
// with a message meant for the dispatcher.
func (h *SessionHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, func(c *services.RouteCalculator) error {
		_, err := c.Calculate()
		return err
	})
}

func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, func(c *services.RouteCalculator) error {
		c.Reset()
		return nil
	})
}

// respond runs op against the session and writes the resulting session view.
func (h *SessionHandler) respond(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	op func(*services.RouteCalculator) error,
) {
	id := r.PathValue("id")

	var (
		res   dto.SessionResponse
		found bool
	)
	err := h.Store.Do(r.Context(), id, func(c *services.RouteCalculator) error {
		found = true
		opErr := op(c)
		res = sessionView(id, c)
		return opErr
	})
	if err != nil {
		if found {
			writeSessionError(w, r, err, &res)
			return
		}
		writeSessionError(w, r, err, nil)
		return
	}

	writeJSON(w, r, status, res)
}

func sessionView(id string, c *services.RouteCalculator) dto.SessionResponse {
	stops := c.Stops()
	table := c.Table()

	res := dto.SessionResponse{
		SessionID: id,
		Stops:     make([]dto.StopResponse, 0, len(stops)),
	}
	for i, s := range stops {
		stop := dto.StopResponse{
			Index:      i,
			PositionID: s.PositionID,
			OrderCount: s.OrderCount,
		}
		if p, err := table.Lookup(s.PositionID); err == nil {
			stop.Line = p.Line.String()
		}
		res.Stops = append(res.Stops, stop)
	}

	if summary := c.Summary(); summary != nil {
		res.Summary = &dto.TripSummaryResponse{
			TotalMinutes:   summary.TotalMinutes,
			TotalOrders:    summary.TotalOrders,
			AverageMinutes: summary.AverageMinutes,
			Path:           summary.Path,
			PathText:       summary.PathString(),
		}
	}

	return res
}

// writeSessionError maps err to a status. When the session exists, its current
// route view is returned next to the message.
func writeSessionError(w http.ResponseWriter, r *http.Request, err error, view *dto.SessionResponse) {
	fail := func(status int, msg string) {
		writeJSON(w, r, status, dto.ErrorResponse{Error: msg, Session: view})
	}

	switch {
	case errors.Is(err, ports.ErrSessionNotFound):
		fail(http.StatusNotFound, "session not found")
	case domain.IsValidationError(err):
		fail(http.StatusUnprocessableEntity, validationMessage(err))
	case errors.Is(err, domain.ErrUnknownStop):
		var unknown *domain.UnknownStopError
		if errors.As(err, &unknown) {
			fail(http.StatusBadRequest, unknown.Error())
			return
		}
		fail(http.StatusBadRequest, domain.ErrUnknownStop.Error())
	case errors.Is(err, domain.ErrStopIndexOutOfRange):
		fail(http.StatusBadRequest, domain.ErrStopIndexOutOfRange.Error())
	default:
		obs.Logger(r.Context()).Error("session request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyRoute):
		return domain.ErrEmptyRoute.Error()
	case errors.Is(err, domain.ErrTooManyOrders):
		return domain.ErrTooManyOrders.Error()
	default:
		return domain.ErrZeroOrders.Error()
	}
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "stop index must be an integer")
		return 0, false
	}
	return index, true
}

// orderValueText returns the typed text behind a JSON string or number.
func orderValueText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
