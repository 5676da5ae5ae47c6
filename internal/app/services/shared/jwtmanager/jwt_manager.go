package jwtmanager

import (
	"errors"
	"fmt"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// JWTManager issues and verifies HS256 access tokens whose subject is the account id.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(cfg *config.InternalConfig) *JWTManager {
	ttl := time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTManager{
		secret: []byte(cfg.JWT.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *JWTManager) GenerateAccessToken(subject string) (string, time.Duration, error) {
	issuedAt := m.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", 0, exceptions.ErrTokenGenerate(err)
	}
	return token, m.ttl, nil
}

func (m *JWTManager) ParseAccessToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	if !token.Valid {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	if claims.Subject == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(errors.New(constvars.ErrDevAuthTokenMissingSubject))
	}
	return claims.Subject, nil
}
