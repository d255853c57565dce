package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenTTL bounds how long a stateless credential stays valid.
	AccessTokenTTL = 15 * time.Minute
	// RefreshTokenTTL bounds the persisted, revocable session credential.
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidToken = errors.New("token is invalid")
)

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
}

func NewService(secretKey string) *Service {
	return &Service{secretKey: []byte(secretKey)}
}

// GenerateToken issues a short-lived HS256 access token carrying the
// user id and role. Verification is stateless.
func (s *Service) GenerateToken(userID, role string) (string, error) {
	return s.generate(userID, role, AccessTokenTTL)
}

// GenerateRefreshToken issues a long-lived token. Callers persist it so
// it can be revoked; the returned expiry matches the embedded exp claim.
func (s *Service) GenerateRefreshToken(userID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(RefreshTokenTTL)
	token, err := s.generate(userID, "", RefreshTokenTTL)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (s *Service) generate(userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken checks signature and expiry. Expired tokens are reported
// as ErrExpiredToken so callers can log the distinction, but both failure
// modes should surface to clients identically.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
