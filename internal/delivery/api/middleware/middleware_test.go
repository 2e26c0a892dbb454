package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"blindauth/internal/delivery/api/response"
	"blindauth/internal/delivery/api/validator"
	deliverycontext "blindauth/internal/delivery/context"
	domainerrors "blindauth/internal/domain/errors"
	"blindauth/internal/errors"
	mockSvc "blindauth/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestHandleHTTPError(t *testing.T) {
	type request struct {
		Email string `json:"email" validate:"required"`
	}
	validationErr := validator.New().Validate(&request{})

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails bool
	}{
		{
			name:        "app error",
			err:         errors.Wrap(domainerrors.ErrNotFound, "reset failed"),
			wantStatus:  http.StatusNotFound,
			wantCode:    domainerrors.CodeNotFound,
			wantMessage: domainerrors.ErrNotFound.Message(),
		},
		{
			name:        "validation error lists fields",
			err:         errors.Join(domainerrors.ErrValidationFailed, validationErr),
			wantStatus:  http.StatusBadRequest,
			wantCode:    domainerrors.CodeValidationFailed,
			wantMessage: domainerrors.ErrValidationFailed.Message(),
			wantDetails: true,
		},
		{
			name:        "database error hides details",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("dial tcp"), "insert user"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    domainerrors.CodeInternal,
			wantMessage: domainerrors.ErrInternal.Message(),
		},
		{
			name:        "echo error",
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    CodeHTTPError,
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    domainerrors.CodeInternal,
			wantMessage: domainerrors.ErrInternal.Message(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
			deliverycontext.SetRequestID(c, "req-123")

			NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, "req-123", body.Meta.RequestID)
			if tt.wantDetails {
				assert.NotNil(t, body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
			assert.NotContains(t, rec.Body.String(), "dial tcp")
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name   string
		header string
		valid  bool
		want   bool
	}{
		{name: "active token", header: "Bearer good", valid: true, want: true},
		{name: "revoked token", header: "Bearer stale", valid: false, want: false},
		{name: "missing header", header: "", valid: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := mockSvc.NewMockSessionRegistry(t)
			sessions.EXPECT().Validate(mock.Anything, mock.AnythingOfType("string")).Return(tt.valid)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			called := false
			err := NewAuthMiddleware(sessions).Authenticate(func(c echo.Context) error {
				called = true
				assert.Equal(t, "good", deliverycontext.GetBearerToken(c))

				return nil
			})(c)

			assert.Equal(t, tt.want, called)
			if tt.want {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
			}
		})
	}
}

func TestAuthMiddleware_ExtractBearer(t *testing.T) {
	sessions := mockSvc.NewMockSessionRegistry(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer whatever")
	c := e.NewContext(req, httptest.NewRecorder())

	err := NewAuthMiddleware(sessions).ExtractBearer(func(c echo.Context) error {
		assert.Equal(t, "whatever", deliverycontext.GetBearerToken(c))

		return nil
	})(c)

	require.NoError(t, err)
	sessions.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
}
