package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/healthtrack/internal/client/models"
	"github.com/dmitrijs2005/healthtrack/internal/client/session"
	"github.com/dmitrijs2005/healthtrack/internal/common"
)

// SignUpOutcome is the result of account creation. When the identity
// provider requires email verification it issues no token: Session is nil
// and PendingVerification is set. That is a non-error outcome.
type SignUpOutcome struct {
	Session             *models.Session
	PendingVerification bool
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the identity provider's token envelope. Sign-up without
// immediate token issuance returns only the user part.
type authResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresAt   int64       `json:"expires_at"`
	User        models.User `json:"user"`
}

// session converts the envelope into a Session. Expiry and identity
// missing from the envelope are recovered from the token claims.
func (r *authResponse) session() (*models.Session, error) {
	sess := &models.Session{
		AccessToken: r.AccessToken,
		User:        r.User,
	}
	if r.ExpiresAt > 0 {
		sess.ExpiresAt = time.Unix(r.ExpiresAt, 0)
	}

	if sess.ExpiresAt.IsZero() || sess.User.ID == "" {
		fromClaims, err := session.FromToken(r.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("token claims: %w", err)
		}
		if sess.ExpiresAt.IsZero() {
			sess.ExpiresAt = fromClaims.ExpiresAt
		}
		if sess.User.ID == "" {
			sess.User = fromClaims.User
		}
	}
	return sess, nil
}

func (g *Gateway) apiKeyHeader() map[string]string {
	return map[string]string{"apikey": g.cfg.StoreAPIKey}
}

// SignUp creates a new account. Depending on the provider's verification
// policy the response may or may not carry a live session.
func (g *Gateway) SignUp(ctx context.Context, email, password string) (*SignUpOutcome, error) {
	var resp authResponse
	err := g.do(ctx, http.MethodPost, g.authURL("/signup"), g.apiKeyHeader(),
		credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	if resp.AccessToken == "" {
		return &SignUpOutcome{PendingVerification: true}, nil
	}

	sess, err := resp.session()
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return &SignUpOutcome{Session: sess}, nil
}

// SignIn exchanges credentials for a session. A rejection from the token
// endpoint maps to common.ErrInvalidCredentials.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	var resp authResponse
	err := g.do(ctx, http.MethodPost, g.authURL("/token?grant_type=password"), g.apiKeyHeader(),
		credentials{Email: email, Password: password}, &resp)
	if err != nil {
		if isCredentialRejection(err) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("sign in: %w", err)
	}

	sess, err := resp.session()
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return sess, nil
}

// isCredentialRejection distinguishes "wrong email/password" from other
// failures. The identity provider answers 400 invalid_grant or 401.
func isCredentialRejection(err error) bool {
	if errors.Is(err, common.ErrUnauthenticated) {
		return true
	}
	var re *common.RemoteError
	return errors.As(err, &re) && re.Status == http.StatusBadRequest
}

// SignOut invalidates the current session with the identity provider.
// Idempotent: signing out with no live session succeeds locally, and a
// token the provider already considers dead is treated as signed out.
func (g *Gateway) SignOut(ctx context.Context) error {
	h := g.tokens.AuthHeader()
	if len(h) == 0 {
		return nil
	}
	h["apikey"] = g.cfg.StoreAPIKey

	err := g.do(ctx, http.MethodPost, g.authURL("/logout"), h, nil, nil)
	if err != nil && !errors.Is(err, common.ErrUnauthenticated) {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}
