package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/unclebandit/campaign-admin/internal/httpx"
)

type HealthHandler struct {
	DB *sql.DB
}

// Healthz reports whether the database answers a ping.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
