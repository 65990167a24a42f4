package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the id of the logged-in user.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenService issues and verifies session tokens signed with one secret.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

type TokenOption func(*TokenService)

// WithClock replaces time.Now, mostly for expiry tests.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(secret []byte, validity time.Duration, opts ...TokenOption) *TokenService {
	s := &TokenService{
		secret:   secret,
		validity: validity,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Validity is the lifetime of issued tokens.
func (s *TokenService) Validity() time.Duration { return s.validity }

// Issue returns a signed token for userID that expires after the configured
// validity.
func (s *TokenService) Issue(userID string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		UserID: userID,
	})

	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the user id the token
// was issued for.
//
// Errors: common.ErrTokenExpired, common.ErrMalformedToken, otherwise
// common.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", mapTokenError(err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return common.ErrMalformedToken
	default:
		return common.ErrInvalidToken
	}
}

func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	return NewTokenService(secretKey, validityDuration).Issue(userID)
}

func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	return NewTokenService(secretKey, 0).Verify(tokenString)
}
