package middlewares

import (
	"errors"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts/mocks"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func newTestMiddlewares(tokens *mocks.MockTokenManager) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{}, tokens)
}

func TestAuthenticate(t *testing.T) {
	var seenUserID string
	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = utils.GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("missing header", func(t *testing.T) {
		m := newTestMiddlewares(new(mocks.MockTokenManager))
		rec := httptest.NewRecorder()

		m.Authenticate(protected).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, constvars.ResponseError, body.Status)
		assert.Equal(t, "authorization token required", body.Message)
	})

	t.Run("non bearer scheme", func(t *testing.T) {
		m := newTestMiddlewares(new(mocks.MockTokenManager))
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		m.Authenticate(protected).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		tokens := new(mocks.MockTokenManager)
		tokens.On("ParseAccessToken", "expired-token").Return("", errors.New("token is expired"))
		m := newTestMiddlewares(tokens)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer expired-token")
		rec := httptest.NewRecorder()

		m.Authenticate(protected).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid or expired token", decodeEnvelope(t, rec).Message)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		tokens := new(mocks.MockTokenManager)
		tokens.On("ParseAccessToken", "good-token").Return("6650f1c2a1b2c3d4e5f60718", nil)
		m := newTestMiddlewares(tokens)
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()

		m.Authenticate(protected).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "6650f1c2a1b2c3d4e5f60718", seenUserID)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(nil)
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("keeps the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-123", seen)
		assert.Equal(t, "client-123", rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("generates one when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	m := newTestMiddlewares(nil)
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, constvars.ResponseError, decodeEnvelope(t, rec).Status)
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	current := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	limiter := NewLoginRateLimiter(zap.NewNop(), 3, 5*time.Minute)
	limiter.now = func() time.Time { return current }
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	hit := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit("10.0.0.1:5000"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.2:5000"), "other clients are unaffected")

	current = current.Add(time.Minute)
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:5001"), "still blocked")

	current = current.Add(5 * time.Minute)
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5002"))
}
