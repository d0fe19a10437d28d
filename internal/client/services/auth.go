package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/healthtrack/internal/client/gateway"
	"github.com/dmitrijs2005/healthtrack/internal/client/models"
	"github.com/dmitrijs2005/healthtrack/internal/client/session"
)

// AuthService runs the authentication flows and is the sole writer of the
// session store. Failures are returned immediately; there is no retry and
// no automatic re-authentication.
type AuthService struct {
	api      gateway.API
	sessions *session.Store
}

func NewAuthService(api gateway.API, sessions *session.Store) *AuthService {
	return &AuthService{api: api, sessions: sessions}
}

// SignUp creates an account. When verification is pending no session is
// stored; the caller must treat that as a non-error outcome and prompt
// the user to verify.
func (a *AuthService) SignUp(ctx context.Context, email, password string) (*gateway.SignUpOutcome, error) {
	out, err := a.api.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if out.Session != nil {
		a.sessions.Set(out.Session)
	}
	return out, nil
}

// SignIn exchanges credentials for a session and replaces the cached one
// wholesale.
func (a *AuthService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	sess, err := a.api.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	a.sessions.Set(sess)
	return sess, nil
}

// SignOut invalidates the session remotely and clears the cache. With no
// live session it only clears locally, which is not an error.
func (a *AuthService) SignOut(ctx context.Context) error {
	if err := a.api.SignOut(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	a.sessions.Clear()
	return nil
}

// CurrentSession is a synchronous read of the cached session state.
func (a *AuthService) CurrentSession() *models.Session {
	return a.sessions.Current()
}
