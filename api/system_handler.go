package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// pinger reports whether the catalog store is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

type systemHandler struct {
	responder   Responder
	logger      zerolog.Logger
	store       pinger
	startupTime time.Time
}

func newSystemHandler(store pinger, startupTime time.Time) systemHandler {
	logger := log.With().Str("handlerName", "systemHandler").Logger()

	return systemHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		store:       store,
		startupTime: startupTime,
	}
}

type bannerResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
}

type statusResponse struct {
	Status        string `json:"status"`
	UptimeSeconds *int64 `json:"uptime_seconds,omitempty"`
}

// root serves the static service banner.
func (h systemHandler) root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, bannerResponse{
			Message: "DSA Learning Platform API",
			Docs:    "/docs",
		})
	}
}

// health is a static liveness probe; it never touches the store.
func (h systemHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, statusResponse{Status: "healthy"})
	}
}

// ready pings the store.
func (h systemHandler) ready() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.store.Ping(ctx); err != nil {
			h.logger.Warn().Err(err).Msg("store not reachable")
			h.responder.WriteJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "not ready"})
			return
		}

		uptime := int64(time.Since(h.startupTime).Seconds())
		h.responder.WriteJSON(w, http.StatusOK, statusResponse{Status: "ready", UptimeSeconds: &uptime})
	}
}
