// Package middleware holds the echo middleware specific to the API server.
package middleware

import (
	"log/slog"
	"net/http"

	"blindauth/internal/delivery/api/response"
	"blindauth/internal/delivery/api/validator"
	deliverycontext "blindauth/internal/delivery/context"
	domainerrors "blindauth/internal/domain/errors"
	"blindauth/internal/errors"

	"github.com/labstack/echo/v4"
)

// CodeHTTPError tags framework errors such as unknown routes or oversized bodies.
const CodeHTTPError = "HTTP_ERROR"

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}

		var details any
		if fields := validator.FieldErrors(err); len(fields) > 0 {
			details = map[string][]string{"fields": fields}
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, CodeHTTPError, message, nil)

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, domainerrors.CodeInternal, domainerrors.ErrInternal.Message(), nil)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
