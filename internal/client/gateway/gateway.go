// Package gateway is the typed boundary through which all remote calls
// are issued: the identity provider, the hosted record collections, the
// object store and the chat endpoint.
//
// Every operation attaches the current bearer token as its first step and
// fails fast with common.ErrUnauthenticated when no live session exists,
// so an unauthenticated request is never sent to a remote system. Network
// failures surface as common.ErrUnavailable; non-success remote statuses
// map through common.ErrorFromStatus. The gateway performs no retries and
// no token refresh: re-authentication is the caller's responsibility.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/healthtrack/internal/client/config"
	"github.com/dmitrijs2005/healthtrack/internal/client/models"
	"github.com/dmitrijs2005/healthtrack/internal/common"
	"github.com/dmitrijs2005/healthtrack/internal/logging"
)

// TokenSource is the read-only view of the session store the gateway
// needs. An empty header set means no live session.
type TokenSource interface {
	AuthHeader() map[string]string
}

// API is the full remote surface consumed by the synchronizers. Tests
// substitute a hand-written fake.
type API interface {
	SignUp(ctx context.Context, email, password string) (*SignUpOutcome, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context) error

	ListVitals(ctx context.Context) ([]models.Vital, error)
	CreateVitals(ctx context.Context, in models.VitalsCreate) (*models.Vital, error)
	DeleteVitals(ctx context.Context, id int64) error

	ListDocuments(ctx context.Context) ([]models.Document, error)
	CreateDocument(ctx context.Context, in models.DocumentCreate) (*models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error

	UploadBlob(ctx context.Context, name, mimeType string, data []byte) (string, error)
	SendChatMessage(ctx context.Context, text string) (*ChatReply, error)
}

type Gateway struct {
	cfg    *config.Config
	client *http.Client
	tokens TokenSource
	log    logging.Logger
}

var _ API = (*Gateway)(nil)

// New constructs a Gateway. A nil httpClient gets a default client with
// the configured request timeout; beyond that timeout no cancellation is
// imposed on in-flight calls.
func New(cfg *config.Config, tokens TokenSource, log logging.Logger, httpClient *http.Client) *Gateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &Gateway{cfg: cfg, client: httpClient, tokens: tokens, log: log}
}

func (g *Gateway) authURL(path string) string {
	return strings.TrimRight(g.cfg.StoreBaseURL, "/") + "/auth/v1" + path
}

func (g *Gateway) restURL(table, query string) string {
	u := strings.TrimRight(g.cfg.StoreBaseURL, "/") + "/rest/v1/" + table
	if query != "" {
		u += "?" + query
	}
	return u
}

// bearer assembles the headers for an authenticated store call. It is the
// first step of every record operation: no live session means the call
// fails here, before any request is built.
func (g *Gateway) bearer() (map[string]string, error) {
	h := g.tokens.AuthHeader()
	if len(h) == 0 {
		return nil, common.ErrUnauthenticated
	}
	h["apikey"] = g.cfg.StoreAPIKey
	return h, nil
}

// do issues one JSON request. body and out may be nil. Non-2xx statuses
// are mapped through common.ErrorFromStatus; transport failures wrap
// common.ErrUnavailable.
func (g *Gateway) do(ctx context.Context, method, url string, headers map[string]string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := readErrorMessage(resp.Body)
		g.log.Warn(ctx, "remote call failed", "method", method, "url", url, "status", resp.StatusCode)
		return common.ErrorFromStatus(resp.StatusCode, msg)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readErrorMessage extracts a human-readable message from an error body.
// The store and the chat endpoint use different envelope keys.
func readErrorMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(b) == 0 {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if json.Unmarshal(b, &envelope) == nil {
		switch {
		case envelope.Message != "":
			return envelope.Message
		case envelope.Error != "":
			return envelope.Error
		case envelope.Detail != "":
			return envelope.Detail
		}
	}
	return strings.TrimSpace(string(b))
}
