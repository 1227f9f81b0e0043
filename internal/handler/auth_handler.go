package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"blogapi/internal/response"
	"blogapi/internal/service"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login attempt.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenData is the envelope data payload on successful login.
type TokenData struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
}

// Login godoc
// @Summary Authenticate and obtain a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ValidationFailure
// @Failure 401 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	resp := response.New()

	token, expiration, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Unknown user and wrong password answer identically.
			resp.StatusCode = http.StatusUnauthorized
			resp.Message = "Invalid credentials were supplied"
			return response.Send(c, resp)
		}
		resp.StatusCode = http.StatusInternalServerError
		resp.Error = "Login failed."
		return response.Send(c, resp)
	}

	resp.Data = TokenData{Token: token, Expiration: expiration}
	return response.Send(c, resp)
}
