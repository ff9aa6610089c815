package http

import (
	"net/http"
	"time"

	"loanadmin-backend/internal/usecase/dashboard"

	"github.com/labstack/echo/v4"
)

// Handler serves liveness. It reports which snapshot sections are loaded but
// stays 200 either way; a missing section is not a dead process.
type Handler struct{ store *dashboard.Store }

func NewHandler(store *dashboard.Store) *Handler { return &Handler{store: store} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"time":     time.Now().UTC().Format(time.RFC3339Nano),
		"sections": h.store.Snapshot().Sections,
	})
}
