package http

import (
	"net/http"

	"loanadmin-backend/internal/usecase/dashboard"
	"loanadmin-backend/internal/usecase/status"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the pending-approvals panel.
type NotificationHandler struct {
	dash   *dashboard.Usecase
	status *status.Usecase
}

func NewNotificationHandler(dash *dashboard.Usecase, st *status.Usecase) *NotificationHandler {
	return &NotificationHandler{dash: dash, status: st}
}

func (h *NotificationHandler) Pending(c echo.Context) error {
	dto := h.dash.Pending()
	dto.Users = nonNil(dto.Users)
	return c.JSON(http.StatusOK, dto)
}

func (h *NotificationHandler) Approve(c echo.Context) error { return h.set(c, true) }

func (h *NotificationHandler) Reject(c echo.Context) error { return h.set(c, false) }

func (h *NotificationHandler) set(c echo.Context, value bool) error {
	id, ok := requireUserID(c)
	if !ok {
		return nil
	}
	res, err := h.status.SetActive(c.Request().Context(), id, value)
	if err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
