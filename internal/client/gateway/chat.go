package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/healthtrack/internal/common"
)

// ChatReply is the assistant's answer to one message: the response text,
// the document names cited as sources, and the server-side timestamp.
type ChatReply struct {
	Response  string    `json:"response"`
	Sources   []string  `json:"sources"`
	Timestamp time.Time `json:"timestamp"`
}

type chatRequest struct {
	Message string `json:"message"`
}

// SendChatMessage posts one message to the chat endpoint. Each call is
// independent: no conversation history is sent beyond the message itself.
// Empty or whitespace-only text is rejected client-side; a missing
// session short-circuits before any request.
func (g *Gateway) SendChatMessage(ctx context.Context, text string) (*ChatReply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty message", common.ErrValidation)
	}

	headers := g.tokens.AuthHeader()
	if len(headers) == 0 {
		return nil, common.ErrUnauthenticated
	}

	var reply ChatReply
	url := strings.TrimRight(g.cfg.ChatBaseURL, "/") + "/chat"
	if err := g.do(ctx, http.MethodPost, url, headers, chatRequest{Message: text}, &reply); err != nil {
		return nil, fmt.Errorf("send chat message: %w", err)
	}
	return &reply, nil
}
