package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/healthtrack/internal/client/gateway"
	"github.com/dmitrijs2005/healthtrack/internal/client/models"
)

// DocumentsService mirrors the remote documents collection. Upload is a
// two-step unit: blob first, metadata record second — the record never
// exists without a stored blob behind it.
type DocumentsService struct {
	api      gateway.API
	notifier Notifier

	mu    sync.Mutex
	items []models.Document
}

func NewDocumentsService(api gateway.API, notifier Notifier) *DocumentsService {
	return &DocumentsService{api: api, notifier: notifier}
}

func (s *DocumentsService) notify(ctx context.Context, format string, args ...any) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, fmt.Sprintf(format, args...))
	}
}

// Refresh replaces the mirror with the remote collection; on failure the
// mirror is emptied and the error surfaced once.
func (s *DocumentsService) Refresh(ctx context.Context) error {
	rows, err := s.api.ListDocuments(ctx)
	if err != nil {
		s.mu.Lock()
		s.items = nil
		s.mu.Unlock()
		s.notify(ctx, "failed to load documents: %v", err)
		return err
	}

	s.mu.Lock()
	s.items = rows
	s.mu.Unlock()
	return nil
}

// Upload stores the blob, creates the metadata record referencing its
// URL, and prepends the canonical server record. Either step failing
// surfaces one notification and leaves the mirror untouched. The
// extracted text column starts empty; a server-side process fills it in
// later.
func (s *DocumentsService) Upload(ctx context.Context, fileName, mimeType string, data []byte) (*models.Document, error) {
	op := beginOp("upload document")

	url, err := s.api.UploadBlob(ctx, fileName, mimeType, data)
	if err != nil {
		op.rollback()
		s.notify(ctx, "failed to upload document: %v", err)
		return nil, err
	}

	rec, err := s.api.CreateDocument(ctx, models.DocumentCreate{
		FileName: fileName,
		FileURL:  url,
		FileSize: int64(len(data)),
		FileType: mimeType,
	})
	if err != nil {
		op.rollback()
		s.notify(ctx, "failed to upload document: %v", err)
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]models.Document{*rec}, s.items...)
	s.mu.Unlock()
	op.commit()
	return rec, nil
}

// Delete removes one record remotely, then drops it from the mirror by
// id. Failure leaves the mirror untouched.
func (s *DocumentsService) Delete(ctx context.Context, id int64) error {
	op := beginOp("delete document")

	if err := s.api.DeleteDocument(ctx, id); err != nil {
		op.rollback()
		s.notify(ctx, "failed to delete document: %v", err)
		return err
	}

	s.mu.Lock()
	kept := s.items[:0:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	op.commit()
	return nil
}

// List returns a copy of the mirror, newest first.
func (s *DocumentsService) List() []models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Document, len(s.items))
	copy(out, s.items)
	return out
}

// Summary aggregates the mirror for dashboard display.
func (s *DocumentsService) Summary() models.DocumentSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := models.DocumentSummary{
		TotalDocuments: len(s.items),
		FileTypes:      make(map[string]int),
	}
	for _, it := range s.items {
		sum.TotalSize += it.FileSize
		sum.FileTypes[it.FileType]++
	}
	return sum
}
