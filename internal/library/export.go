// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ExportBooks serializes the collection as pretty-printed JSON. All
// fields survive a round trip through ParseImport.
func ExportBooks(items []Book) ([]byte, error) {
	if items == nil {
		items = []Book{}
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export collection: %w", err)
	}
	return raw, nil
}

// ExportFilename builds the conventional export name for a given day,
// e.g. my-library-2025-03-14.json.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("my-library-%s.json", t.Format("2006-01-02"))
}

// importedBook tolerates the id being either a JSON string or number,
// so files produced by older exports import cleanly.
type importedBook struct {
	ID            any        `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	PublishedYear int        `json:"publishedYear"`
	ISBN          string     `json:"isbn"`
	Likes         int        `json:"likes"`
	Rating        float64    `json:"rating"`
	Status        Status     `json:"status"`
	DateAdded     time.Time  `json:"dateAdded"`
	DateModified  *time.Time `json:"dateModified"`
}

// ParseImport decodes an import file. The top level must be a JSON
// array or the whole import is rejected with "invalid format". Records
// missing a title, author, or id are silently dropped; if nothing
// survives, the import is rejected with "no valid books".
func ParseImport(data []byte) ([]Book, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ImportError{Reason: "invalid format"}
	}

	books := make([]Book, 0, len(records))
	for _, rec := range records {
		var in importedBook
		if err := json.Unmarshal(rec, &in); err != nil {
			continue
		}
		id := importedID(in.ID)
		if id == "" || strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Author) == "" {
			continue
		}
		books = append(books, Book{
			ID:            id,
			Title:         in.Title,
			Author:        in.Author,
			Description:   in.Description,
			Category:      in.Category,
			PublishedYear: in.PublishedYear,
			ISBN:          in.ISBN,
			Likes:         in.Likes,
			Rating:        in.Rating,
			Status:        in.Status,
			DateAdded:     in.DateAdded,
			DateModified:  in.DateModified,
		})
	}
	if len(books) == 0 {
		return nil, &ImportError{Reason: "no valid books"}
	}
	return books, nil
}

func importedID(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		// Numeric ids come from exports of the old web app.
		return fmt.Sprintf("%.0f", id)
	default:
		return ""
	}
}
