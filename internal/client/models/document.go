package models

import "time"

// Document is the metadata record for an uploaded medical file. FileURL
// points at the stored blob; ExtractedText is filled in asynchronously by
// a server-side process and may be empty.
type Document struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	FileName      string    `json:"file_name"`
	FileURL       string    `json:"file_url"`
	FileSize      int64     `json:"file_size"`
	FileType      string    `json:"file_type"`
	ExtractedText string    `json:"extracted_text,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// DocumentCreate is the metadata payload created after a successful blob
// upload. The record must never be created without an uploaded blob
// behind FileURL.
type DocumentCreate struct {
	FileName      string `json:"file_name"`
	FileURL       string `json:"file_url"`
	FileSize      int64  `json:"file_size"`
	FileType      string `json:"file_type"`
	ExtractedText string `json:"extracted_text"`
}

// DocumentSummary aggregates the collection for dashboard display.
type DocumentSummary struct {
	TotalDocuments int
	TotalSize      int64
	FileTypes      map[string]int
}
