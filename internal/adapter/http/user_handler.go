package http

import (
	"net/http"

	"loanadmin-backend/internal/domain/user"
	"loanadmin-backend/internal/usecase/dashboard"
	"loanadmin-backend/internal/usecase/enrichment"
	"loanadmin-backend/internal/usecase/status"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	dash   *dashboard.Usecase
	detail *enrichment.Usecase
	status *status.Usecase
}

func NewUserHandler(dash *dashboard.Usecase, detail *enrichment.Usecase, st *status.Usecase) *UserHandler {
	return &UserHandler{dash: dash, detail: detail, status: st}
}

type listUsersReq struct {
	Bucket string `query:"bucket" validate:"omitempty,bucket"`
	Query  string `query:"q"      validate:"max=200"`
}

type toggleReq struct {
	CurrentStatus *bool `json:"current_status" validate:"required"`
}

func (h *UserHandler) List(c echo.Context) error {
	var req listUsersReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	rows := nonNil(h.dash.Users(user.Bucket(req.Bucket), req.Query))
	return c.JSON(http.StatusOK, map[string]any{"users": rows, "count": len(rows)})
}

func (h *UserHandler) Detail(c echo.Context) error {
	id, ok := requireUserID(c)
	if !ok {
		return nil
	}
	dto, err := h.detail.Detail(c.Request().Context(), id)
	if err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Toggle flips the activation flag from the status the admin was looking at.
func (h *UserHandler) Toggle(c echo.Context) error {
	id, ok := requireUserID(c)
	if !ok {
		return nil
	}
	var req toggleReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.status.ToggleActive(c.Request().Context(), id, *req.CurrentStatus)
	if err != nil {
		return gatewayError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
