// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"blindauth/internal/delivery/api/response"
	deliverycontext "blindauth/internal/delivery/context"
	domainerrors "blindauth/internal/domain/errors"
	"blindauth/internal/errors"
	"blindauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest is the body of reset-password.
type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is one stored record as exposed by GET /users.
type UserResponse struct {
	ID             int64     `json:"id"`
	IdentifierHash string    `json:"identifier_hash"`
	SecretHash     string    `json:"secret_hash"`
	CreatedAt      time.Time `json:"created_at"`
}

// UsersResponse lists every stored record.
type UsersResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

// AuthHandler holds dependencies for the auth and user handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Usecase usecase.AuthUsecase
	Logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:     params.Usecase,
		logger: params.Logger,
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Identifier: req.Email,
		Secret:     req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, TokenResponse{Token: out.Token})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Identifier: req.Email,
		Secret:     req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{Token: out.Token})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), deliverycontext.GetBearerToken(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "logged out")
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.uc.ResetSecret(c.Request().Context(), usecase.ResetSecretInput{
		Token:         deliverycontext.GetBearerToken(c),
		Identifier:    req.Email,
		CurrentSecret: req.CurrentPassword,
		NewSecret:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "password updated")
}

// ListUsers handles GET /users.
func (h *AuthHandler) ListUsers(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context(), deliverycontext.GetBearerToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	users := make([]UserResponse, 0, len(out.Users))
	for _, u := range out.Users {
		users = append(users, UserResponse{
			ID:             u.ID,
			IdentifierHash: u.IdentifierHash,
			SecretHash:     u.SecretHash,
			CreatedAt:      u.CreatedAt,
		})
	}
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Listed users", slog.Int("count", out.Count))

	return response.Success(c, http.StatusOK, UsersResponse{Users: users, Count: out.Count})
}

// bindAndValidate treats an unparseable body the same as missing fields.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(errors.Join(domainerrors.ErrValidationFailed, err))
	}

	return nil
}
