package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/healthtrack/internal/client/models"
	"github.com/dmitrijs2005/healthtrack/internal/common"
)

// The record collections follow the hosted store's table conventions:
// ordered select via a query parameter, insert-returning-row via the
// Prefer header, delete-by-id via an id filter. Row-level authorization
// is enforced by the store from the bearer token, not here.

const (
	tableVitals    = "vitals"
	tableDocuments = "documents"

	orderNewestFirst = "select=*&order=created_at.desc"
	preferReturnRow  = "return=representation"
)

func (g *Gateway) ListVitals(ctx context.Context) ([]models.Vital, error) {
	headers, err := g.bearer()
	if err != nil {
		return nil, err
	}

	var rows []models.Vital
	if err := g.do(ctx, http.MethodGet, g.restURL(tableVitals, orderNewestFirst), headers, nil, &rows); err != nil {
		return nil, fmt.Errorf("list vitals: %w", err)
	}
	return rows, nil
}

// CreateVitals inserts one measurement and returns the canonical row as
// stored, with the server-assigned id and created_at.
func (g *Gateway) CreateVitals(ctx context.Context, in models.VitalsCreate) (*models.Vital, error) {
	headers, err := g.bearer()
	if err != nil {
		return nil, err
	}
	headers["Prefer"] = preferReturnRow

	var rows []models.Vital
	if err := g.do(ctx, http.MethodPost, g.restURL(tableVitals, ""), headers, []models.VitalsCreate{in}, &rows); err != nil {
		return nil, fmt.Errorf("create vitals: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("create vitals: %w", &common.RemoteError{Status: http.StatusOK, Message: "insert returned no row"})
	}
	return &rows[0], nil
}

func (g *Gateway) DeleteVitals(ctx context.Context, id int64) error {
	return g.deleteByID(ctx, tableVitals, id)
}

func (g *Gateway) ListDocuments(ctx context.Context) ([]models.Document, error) {
	headers, err := g.bearer()
	if err != nil {
		return nil, err
	}

	var rows []models.Document
	if err := g.do(ctx, http.MethodGet, g.restURL(tableDocuments, orderNewestFirst), headers, nil, &rows); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return rows, nil
}

func (g *Gateway) CreateDocument(ctx context.Context, in models.DocumentCreate) (*models.Document, error) {
	headers, err := g.bearer()
	if err != nil {
		return nil, err
	}
	headers["Prefer"] = preferReturnRow

	var rows []models.Document
	if err := g.do(ctx, http.MethodPost, g.restURL(tableDocuments, ""), headers, []models.DocumentCreate{in}, &rows); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("create document: %w", &common.RemoteError{Status: http.StatusOK, Message: "insert returned no row"})
	}
	return &rows[0], nil
}

func (g *Gateway) DeleteDocument(ctx context.Context, id int64) error {
	return g.deleteByID(ctx, tableDocuments, id)
}

// deleteByID removes one row. The store answers the filtered delete with
// the deleted rows; an empty set means the id did not exist (or is not
// visible to this user), which maps to ErrNotFound so the caller can keep
// its local state untouched.
func (g *Gateway) deleteByID(ctx context.Context, table string, id int64) error {
	headers, err := g.bearer()
	if err != nil {
		return err
	}
	headers["Prefer"] = preferReturnRow

	var deleted []struct {
		ID int64 `json:"id"`
	}
	query := fmt.Sprintf("id=eq.%d", id)
	if err := g.do(ctx, http.MethodDelete, g.restURL(table, query), headers, nil, &deleted); err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}
	if len(deleted) == 0 {
		return fmt.Errorf("delete %s %d: %w", table, id, common.ErrNotFound)
	}
	return nil
}
