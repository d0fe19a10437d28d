// Package models defines the data types shared by the healthtrack client
// layers: session state, vital-sign records, document records and chat
// exchanges.
package models

import "time"

// User is the authenticated identity as reported by the identity provider.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the live authentication state: an opaque bearer token, its
// expiry and the user it belongs to. A zero ExpiresAt means the expiry is
// unknown and the token is treated as live.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	User        User
}

// Valid reports whether the session can still authorize calls at the
// given instant.
func (s *Session) Valid(now time.Time) bool {
	if s == nil || s.AccessToken == "" {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return true
	}
	return now.Before(s.ExpiresAt)
}
