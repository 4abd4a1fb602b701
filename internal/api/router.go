package api

import (
	"net/http"
	"route-time-service/internal/api/handlers"
	"route-time-service/internal/domain"
	"route-time-service/internal/ports"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(logger *zap.Logger, store ports.SessionStore, table domain.PositionTable) http.Handler {
	mux := http.NewServeMux()

	positionHandler := &handlers.PositionHandler{Table: table}
	sessionHandler := &handlers.SessionHandler{Store: store}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /positions", positionHandler.List)

	mux.HandleFunc("POST /sessions", sessionHandler.Create)
	mux.HandleFunc("GET /sessions/{id}", sessionHandler.Get)
	mux.HandleFunc("DELETE /sessions/{id}", sessionHandler.Delete)
	mux.HandleFunc("POST /sessions/{id}/stops", sessionHandler.AddStop)
	mux.HandleFunc("DELETE /sessions/{id}/stops/{index}", sessionHandler.RemoveStop)
	mux.HandleFunc("PUT /sessions/{id}/stops/{index}/orders", sessionHandler.SetOrderCount)
	mux.HandleFunc("POST /sessions/{id}/calculate", sessionHandler.Calculate)
	mux.HandleFunc("POST /sessions/{id}/reset", sessionHandler.Reset)

	return loggingMiddleware(logger, mux)
}
