package gateway

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/healthtrack/internal/client/config"
	"github.com/dmitrijs2005/healthtrack/internal/logging"
)

// staticTokens is a TokenSource with a fixed header set. The zero value
// behaves like "no session".
type staticTokens struct {
	token string
}

func (s *staticTokens) AuthHeader() map[string]string {
	if s.token == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + s.token}
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestGateway(t *testing.T, baseURL, token string) *Gateway {
	t.Helper()
	cfg := &config.Config{
		StoreBaseURL:     baseURL,
		StoreAPIKey:      "anon-key",
		ChatBaseURL:      baseURL,
		S3BaseEndpoint:   "http://storage.local",
		S3Region:         "us-east-1",
		S3Bucket:         "documents",
		StoragePublicURL: "http://cdn.local",
		RequestTimeout:   5 * time.Second,
	}
	return New(cfg, &staticTokens{token: token}, testLogger(), nil)
}
