package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (a *App) ListDocuments(ctx context.Context) error {
	if err := a.docs.Refresh(ctx); err != nil {
		return err
	}

	items := a.docs.List()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No documents uploaded yet")
		return nil
	}

	for _, d := range items {
		fmt.Fprintf(a.out, "[%d] %s  %s  %s  %s\n",
			d.ID, d.FileName, formatFileSize(d.FileSize),
			d.CreatedAt.Format("2006-01-02 15:04"), d.FileURL)
	}
	return nil
}

func (a *App) UploadDocument(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Path to file (.pdf or .txt)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(a.out, "error: cannot read file: %v\n", err)
		return err
	}

	name := filepath.Base(path)
	doc, err := a.docs.Upload(ctx, name, mimeFromName(name), data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded %s (%s) as document %d\n", doc.FileName, formatFileSize(doc.FileSize), doc.ID)
	return nil
}

func (a *App) DeleteDocument(ctx context.Context, args []string) error {
	id, err := a.idFromArgsOrPrompt(args, "Enter document id to delete")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if err := a.docs.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted document %d\n", id)
	return nil
}

// mimeFromName maps the accepted extensions to their content types. Anything
// else is passed through as octet-stream and rejected by upload validation.
func mimeFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
