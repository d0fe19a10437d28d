package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/healthtrack/internal/client/gateway"
	"github.com/dmitrijs2005/healthtrack/internal/client/models"
)

// fakeAPI implements gateway.API for unit tests. Behavior is controlled
// by the Ret/Err fields; Calls records the invocation order.
type fakeAPI struct {
	mu    sync.Mutex
	Calls []string

	SignUpRet *gateway.SignUpOutcome
	SignUpErr error

	SignInRet *models.Session
	SignInErr error

	SignOutErr error

	ListVitalsRet []models.Vital
	ListVitalsErr error

	CreateVitalsRet *models.Vital
	CreateVitalsErr error
	LastVitalsIn    models.VitalsCreate

	DeleteVitalsErr error
	LastVitalsID    int64

	ListDocumentsRet []models.Document
	ListDocumentsErr error

	CreateDocumentRet *models.Document
	CreateDocumentErr error
	LastDocumentIn    models.DocumentCreate

	DeleteDocumentErr error
	LastDocumentID    int64

	UploadBlobRet string
	UploadBlobErr error

	ChatRet *gateway.ChatReply
	ChatErr error
	// ChatFn, when set, takes precedence over ChatRet/ChatErr.
	ChatFn func(text string) (*gateway.ChatReply, error)
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	f.Calls = append(f.Calls, name)
	f.mu.Unlock()
}

func (f *fakeAPI) SignUp(ctx context.Context, email, password string) (*gateway.SignUpOutcome, error) {
	f.record("SignUp")
	return f.SignUpRet, f.SignUpErr
}

func (f *fakeAPI) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	f.record("SignIn")
	return f.SignInRet, f.SignInErr
}

func (f *fakeAPI) SignOut(ctx context.Context) error {
	f.record("SignOut")
	return f.SignOutErr
}

func (f *fakeAPI) ListVitals(ctx context.Context) ([]models.Vital, error) {
	f.record("ListVitals")
	return append([]models.Vital(nil), f.ListVitalsRet...), f.ListVitalsErr
}

func (f *fakeAPI) CreateVitals(ctx context.Context, in models.VitalsCreate) (*models.Vital, error) {
	f.record("CreateVitals")
	f.LastVitalsIn = in
	return f.CreateVitalsRet, f.CreateVitalsErr
}

func (f *fakeAPI) DeleteVitals(ctx context.Context, id int64) error {
	f.record("DeleteVitals")
	f.LastVitalsID = id
	return f.DeleteVitalsErr
}

func (f *fakeAPI) ListDocuments(ctx context.Context) ([]models.Document, error) {
	f.record("ListDocuments")
	return append([]models.Document(nil), f.ListDocumentsRet...), f.ListDocumentsErr
}

func (f *fakeAPI) CreateDocument(ctx context.Context, in models.DocumentCreate) (*models.Document, error) {
	f.record("CreateDocument")
	f.LastDocumentIn = in
	return f.CreateDocumentRet, f.CreateDocumentErr
}

func (f *fakeAPI) DeleteDocument(ctx context.Context, id int64) error {
	f.record("DeleteDocument")
	f.LastDocumentID = id
	return f.DeleteDocumentErr
}

func (f *fakeAPI) UploadBlob(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	f.record("UploadBlob")
	return f.UploadBlobRet, f.UploadBlobErr
}

func (f *fakeAPI) SendChatMessage(ctx context.Context, text string) (*gateway.ChatReply, error) {
	f.record("SendChatMessage")
	if f.ChatFn != nil {
		return f.ChatFn(text)
	}
	return f.ChatRet, f.ChatErr
}

var _ gateway.API = (*fakeAPI)(nil)

// countNotifier collects the user-visible notifications fired by a
// synchronizer.
type countNotifier struct {
	mu   sync.Mutex
	Msgs []string
}

func (n *countNotifier) Notify(ctx context.Context, msg string) {
	n.mu.Lock()
	n.Msgs = append(n.Msgs, msg)
	n.mu.Unlock()
}
