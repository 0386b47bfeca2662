// Package token issues and validates the access/refresh JWT pair returned
// by sign-in and sign-up.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload. Username is set for the stub sign-in flow,
// Email/UserID for registered accounts.
type Claims struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	UserID   string `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs access and refresh tokens with a shared HMAC secret.
type Issuer struct {
	secret            string
	expiration        time.Duration
	refreshExpiration time.Duration
}

// NewIssuer creates an Issuer. Expirations fall back to 1 hour / 7 days
// when unset.
func NewIssuer(secret string, expiration, refreshExpiration time.Duration) *Issuer {
	if expiration <= 0 {
		expiration = time.Hour
	}
	if refreshExpiration <= 0 {
		refreshExpiration = 7 * 24 * time.Hour
	}
	return &Issuer{
		secret:            secret,
		expiration:        expiration,
		refreshExpiration: refreshExpiration,
	}
}

// Issue signs an access token carrying the given claims.
func (i *Issuer) Issue(claims Claims) (string, error) {
	return i.sign(claims, i.expiration)
}

// IssueRefresh signs a refresh token with the same claims and the longer
// expiry.
func (i *Issuer) IssueRefresh(claims Claims) (string, error) {
	return i.sign(claims, i.refreshExpiration)
}

func (i *Issuer) sign(claims Claims, expiration time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    "fithub-api",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(i.secret))
}

// Parse validates a signed token and returns its claims.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(i.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
