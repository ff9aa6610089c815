package http

import (
	"context"
	"net/http"
	"time"

	"loanadmin-backend/internal/usecase/dashboard"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	uc      *dashboard.Usecase
	timeout time.Duration
}

func NewDashboardHandler(uc *dashboard.Usecase, loadTimeout time.Duration) *DashboardHandler {
	return &DashboardHandler{uc: uc, timeout: loadTimeout}
}

// Refresh reloads every section. Partial failures still answer 200; the
// report carries the per-section error.
func (h *DashboardHandler) Refresh(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()
	return c.JSON(http.StatusOK, h.uc.Load(ctx))
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Stats())
}

func (h *DashboardHandler) Loans(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"loans": nonNil(h.uc.Loans())})
}

func (h *DashboardHandler) ProductLoans(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"product_loans": nonNil(h.uc.ProductLoans())})
}
