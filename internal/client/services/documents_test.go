package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/healthtrack/internal/client/models"
	"github.com/dmitrijs2005/healthtrack/internal/common"
)

func document(id int64, name string, size int64, created time.Time) models.Document {
	return models.Document{
		ID: id, UserID: "u1", FileName: name,
		FileURL:  "http://cdn.local/documents/users/" + name,
		FileSize: size, FileType: "application/pdf", CreatedAt: created,
	}
}

func TestDocumentsService_Refresh(t *testing.T) {
	base := time.Now()
	api := &fakeAPI{ListDocumentsRet: []models.Document{
		document(2, "b.pdf", 100, base.Add(time.Hour)),
		document(1, "a.pdf", 200, base),
	}}
	svc := NewDocumentsService(api, nil)

	require.NoError(t, svc.Refresh(context.Background()))
	require.Len(t, svc.List(), 2)
}

func TestDocumentsService_UploadTwoStepUnit(t *testing.T) {
	created := time.Now()
	api := &fakeAPI{
		UploadBlobRet: "http://cdn.local/documents/users/2025/6/3/abc-report.txt",
		CreateDocumentRet: &models.Document{
			ID: 11, UserID: "u1", FileName: "report.txt",
			FileURL:  "http://cdn.local/documents/users/2025/6/3/abc-report.txt",
			FileSize: 11, FileType: "text/plain", CreatedAt: created,
		},
	}
	svc := NewDocumentsService(api, nil)

	rec, err := svc.Upload(context.Background(), "report.txt", "text/plain", []byte("2KB of text"))
	require.NoError(t, err)

	// blob first, record second
	require.Equal(t, []string{"UploadBlob", "CreateDocument"}, api.Calls)
	require.Equal(t, api.UploadBlobRet, api.LastDocumentIn.FileURL)
	require.Equal(t, "report.txt", api.LastDocumentIn.FileName)
	require.Equal(t, int64(len("2KB of text")), api.LastDocumentIn.FileSize)

	require.Equal(t, int64(11), rec.ID)
	got := svc.List()
	require.Len(t, got, 1)
	require.Equal(t, int64(11), got[0].ID)
}

func TestDocumentsService_BlobFailureCreatesNoRecord(t *testing.T) {
	api := &fakeAPI{UploadBlobErr: common.ErrUpload}
	n := &countNotifier{}
	svc := NewDocumentsService(api, n)

	_, err := svc.Upload(context.Background(), "report.txt", "text/plain", []byte("x"))
	require.ErrorIs(t, err, common.ErrUpload)

	require.Equal(t, []string{"UploadBlob"}, api.Calls, "metadata record must not be created without a blob")
	require.Empty(t, svc.List())
	require.Len(t, n.Msgs, 1)
}

func TestDocumentsService_RecordFailureLeavesMirrorUntouched(t *testing.T) {
	api := &fakeAPI{
		UploadBlobRet:     "http://cdn.local/documents/users/x-a.pdf",
		CreateDocumentErr: common.ErrUnavailable,
	}
	n := &countNotifier{}
	svc := NewDocumentsService(api, n)

	_, err := svc.Upload(context.Background(), "a.pdf", "application/pdf", []byte("x"))
	require.Error(t, err)

	require.Empty(t, svc.List())
	require.Len(t, n.Msgs, 1)
}

func TestDocumentsService_DeleteAfterRemoteSuccess(t *testing.T) {
	base := time.Now()
	api := &fakeAPI{ListDocumentsRet: []models.Document{
		document(2, "b.pdf", 100, base.Add(time.Hour)),
		document(1, "a.pdf", 200, base),
	}}
	svc := NewDocumentsService(api, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.Equal(t, int64(1), api.LastDocumentID)

	got := svc.List()
	require.Len(t, got, 1)
	require.Equal(t, int64(2), got[0].ID)
}

func TestDocumentsService_FailedDeleteLeavesStateIdentical(t *testing.T) {
	base := time.Now()
	api := &fakeAPI{ListDocumentsRet: []models.Document{
		document(2, "b.pdf", 100, base.Add(time.Hour)),
		document(1, "a.pdf", 200, base),
	}}
	n := &countNotifier{}
	svc := NewDocumentsService(api, n)
	require.NoError(t, svc.Refresh(context.Background()))
	before := svc.List()

	api.DeleteDocumentErr = common.ErrForbidden
	require.Error(t, svc.Delete(context.Background(), 2))

	require.Equal(t, before, svc.List())
	require.Len(t, n.Msgs, 1)
}

func TestDocumentsService_Summary(t *testing.T) {
	base := time.Now()
	api := &fakeAPI{ListDocumentsRet: []models.Document{
		document(3, "c.pdf", 300, base),
		document(2, "b.pdf", 100, base),
		{ID: 1, FileName: "a.txt", FileSize: 50, FileType: "text/plain", CreatedAt: base},
	}}
	svc := NewDocumentsService(api, nil)
	require.NoError(t, svc.Refresh(context.Background()))

	sum := svc.Summary()
	require.Equal(t, 3, sum.TotalDocuments)
	require.Equal(t, int64(450), sum.TotalSize)
	require.Equal(t, map[string]int{"application/pdf": 2, "text/plain": 1}, sum.FileTypes)
}
