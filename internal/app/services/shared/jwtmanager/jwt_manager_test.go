package jwtmanager

import (
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(secret string) *JWTManager {
	return NewJWTManager(&config.InternalConfig{
		JWT: config.JWT{Secret: secret, ExpTimeInHour: 1},
	})
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := newTestManager("unit-test-secret")

	token, expiresIn, err := manager.GenerateAccessToken("64b7f0c2a1b2c3d4e5f60718")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, expiresIn)

	subject, err := manager.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", subject)
}

func TestJWTManager_RejectsForeignSecret(t *testing.T) {
	token, _, err := newTestManager("secret-a").GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = newTestManager("secret-b").ParseAccessToken(token)
	require.Error(t, err)
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	manager := newTestManager("unit-test-secret")
	manager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := manager.GenerateAccessToken("user-1")
	require.NoError(t, err)

	manager.now = time.Now
	_, err = manager.ParseAccessToken(token)
	require.Error(t, err)
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCodeOf(err))
}

func TestJWTManager_RejectsOtherAlgorithms(t *testing.T) {
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestManager("unit-test-secret").ParseAccessToken(unsigned)
	assert.Error(t, err)
}

func TestJWTManager_RejectsMissingSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = newTestManager("unit-test-secret").ParseAccessToken(token)
	assert.Error(t, err)
}
