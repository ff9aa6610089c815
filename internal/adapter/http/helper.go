package http

import (
	"errors"
	"net/http"

	"loanadmin-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// nonNil keeps list endpoints rendering [] rather than null.
func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}

func requireUserID(c echo.Context) (string, bool) {
	id := c.Param("user_id")
	if id == "" {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id path param"})
		return "", false
	}
	return id, true
}

func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

// gatewayError maps usecase errors on a single user to HTTP codes.
func gatewayError(c echo.Context, err error) error {
	if errors.Is(err, user.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
	}
	return c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
}
