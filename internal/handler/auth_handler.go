package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/staff_attendance/internal/service"
	"github.com/locvowork/staff_attendance/internal/service/serviceutils"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) LoginHandler(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	result, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to log in", err)
	}
	if !result.Success {
		return c.JSON(http.StatusUnauthorized, serviceutils.Response{
			Success: false,
			Message: result.Error,
			Data:    result,
		})
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Logged in successfully", result)
}

func (h *AuthHandler) LogoutHandler(c echo.Context) error {
	if err := h.svc.Logout(c.Request().Context()); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to log out", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) MeHandler(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusUnauthorized, "Not logged in", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Current user retrieved successfully", user)
}
