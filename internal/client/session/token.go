package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/healthtrack/internal/client/models"
)

// FromToken builds a Session from a raw access token by reading its JWT
// claims (exp, sub, email). The signature is not verified: the client
// holds no signing secret, and the token is only echoed back to the
// services that issued it. Used when the identity response carries a
// token but omits expiry or user fields.
func FromToken(raw string) (*models.Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	sess := &models.Session{AccessToken: raw}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sess.ExpiresAt = exp.Time
	}
	if sub, err := claims.GetSubject(); err == nil {
		sess.User.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		sess.User.Email = email
	}

	return sess, nil
}
