package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every token defect (malformed, bad signature, wrong
// claims). Callers get one error so responses cannot leak which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the subject user id on top of the registered claims.
// Tokens have no expiry: they stay valid for the lifetime of the secret.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// TokenService issues and verifies stateless HS256 identity tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService returns a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token carrying only the subject user id and the issue time.
func (s *TokenService) Issue(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})
	return token.SignedString(s.secret)
}

// Verify checks the signature and returns the subject user id.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
