package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"tasklist/internal/model"
)

// ErrInvalidToken is returned for every validation failure. Callers are not
// told which check failed (signature, issuer, audience, or lifetime).
var ErrInvalidToken = errors.New("invalid token")

// Claims represents the JWT claim set issued for a user.
type Claims struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
	jwt.RegisteredClaims
}

// JWTService issues and validates signed bearer tokens.
type JWTService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewJWTService creates a token service with the given signing key, claim
// configuration, and validity window.
func NewJWTService(secret, issuer, audience string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue produces a signed token for the user. It is a pure computation over
// the user record and the service configuration; the store is never touched.
func (s *JWTService) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		UserName: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies signature, issuer, audience, and lifetime, and returns
// the decoded claims. Any failure yields ErrInvalidToken.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrInvalidToken
	}
	if !claims.VerifyAudience(s.audience, true) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
