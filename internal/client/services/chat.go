package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/healthtrack/internal/client/gateway"
	"github.com/dmitrijs2005/healthtrack/internal/client/models"
)

// ChatService keeps the local transcript: an ordered list of exchanges
// scoped to the running client. Unlike the record collections there is no
// server-side history, so the user's utterance is appended optimistically
// and rolled back if the send fails — the transcript never shows an
// orphaned unanswered message as if it succeeded.
type ChatService struct {
	api      gateway.API
	notifier Notifier
	now      func() time.Time

	mu      sync.Mutex
	entries []models.ChatExchange
}

func NewChatService(api gateway.API, notifier Notifier) *ChatService {
	return &ChatService{api: api, notifier: notifier, now: time.Now}
}

func (s *ChatService) notify(ctx context.Context, format string, args ...any) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, fmt.Sprintf(format, args...))
	}
}

// Send posts one message and resolves the optimistic transcript entry.
// Rollback matches the entry by its local id, so interleaved sends on the
// same transcript cannot remove each other's entries.
func (s *ChatService) Send(ctx context.Context, text string) (*models.ChatExchange, error) {
	op := beginOp("send chat message")

	entry := models.ChatExchange{
		ID:        uuid.NewString(),
		Message:   text,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	reply, err := s.api.SendChatMessage(ctx, text)
	if err != nil {
		s.removeByID(entry.ID)
		op.rollback()
		s.notify(ctx, "failed to send message: %v", err)
		return nil, err
	}

	s.mu.Lock()
	var resolved *models.ChatExchange
	for i := range s.entries {
		if s.entries[i].ID == entry.ID {
			s.entries[i].Response = reply.Response
			s.entries[i].Sources = reply.Sources
			s.entries[i].Timestamp = reply.Timestamp
			s.entries[i].Answered = true
			cp := s.entries[i]
			resolved = &cp
			break
		}
	}
	s.mu.Unlock()
	op.commit()

	if resolved == nil {
		// entry vanished while the call was in flight (transcript cleared)
		cp := entry
		cp.Response = reply.Response
		cp.Sources = reply.Sources
		cp.Answered = true
		resolved = &cp
	}
	return resolved, nil
}

func (s *ChatService) removeByID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// Transcript returns a copy of the exchanges in order.
func (s *ChatService) Transcript() []models.ChatExchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatExchange, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear drops the local transcript, e.g. on sign-out. The transcript is
// ephemeral and scoped to the active session's view.
func (s *ChatService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
