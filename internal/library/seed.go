// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSeed returns the built-in starter catalog served by the seed
// loader when no custom catalog file is configured.
func DefaultSeed() []Book {
	return []Book{
		{
			ID:            "1",
			Title:         "Clean Code",
			Author:        "Robert C. Martin",
			Description:   "A handbook of agile software craftsmanship.",
			Category:      "Programming",
			PublishedYear: 2008,
			ISBN:          "978-0132350884",
			Likes:         15,
			Rating:        4.5,
			Status:        StatusRead,
			DateAdded:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			Title:         "The Pragmatic Programmer",
			Author:        "Andrew Hunt, David Thomas",
			Description:   "Your journey to mastery.",
			Category:      "Programming",
			PublishedYear: 1999,
			ISBN:          "978-0201616224",
			Likes:         12,
			Rating:        4.8,
			Status:        StatusToRead,
			DateAdded:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "3",
			Title:         "Design Patterns",
			Author:        "Gang of Four",
			Description:   "Elements of reusable object-oriented software.",
			Category:      "Programming",
			PublishedYear: 1994,
			ISBN:          "978-0201633610",
			Likes:         8,
			Rating:        4.2,
			Status:        StatusReading,
			DateAdded:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "4",
			Title:         "1984",
			Author:        "George Orwell",
			Description:   "A dystopian social science fiction novel.",
			Category:      "Fiction",
			PublishedYear: 1949,
			ISBN:          "978-0451524935",
			Likes:         25,
			Rating:        4.7,
			Status:        StatusRead,
			DateAdded:     time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "5",
			Title:         "Sapiens",
			Author:        "Yuval Noah Harari",
			Description:   "A brief history of humankind.",
			Category:      "History",
			PublishedYear: 2011,
			ISBN:          "978-0062316097",
			Likes:         18,
			Rating:        4.4,
			Status:        StatusToRead,
			DateAdded:     time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

type seedEntry struct {
	ID            string  `yaml:"id"`
	Title         string  `yaml:"title"`
	Author        string  `yaml:"author"`
	Description   string  `yaml:"description"`
	Category      string  `yaml:"category"`
	PublishedYear int     `yaml:"published_year"`
	ISBN          string  `yaml:"isbn"`
	Likes         int     `yaml:"likes"`
	Rating        float64 `yaml:"rating"`
	Status        string  `yaml:"status"`
	DateAdded     string  `yaml:"date_added"`
}

// LoadSeedCatalog reads a custom seed catalog from a YAML file. Each
// entry needs at least an id, title, and author. Status defaults to
// to-read and date_added accepts YYYY-MM-DD or RFC 3339.
func LoadSeedCatalog(path string) ([]Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed catalog: %w", err)
	}
	var entries []seedEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("seed catalog %s has no entries", path)
	}

	books := make([]Book, 0, len(entries))
	for i, e := range entries {
		if e.ID == "" || e.Title == "" || e.Author == "" {
			return nil, fmt.Errorf("seed catalog entry %d: id, title, and author are required", i)
		}
		status := Status(e.Status)
		if e.Status == "" {
			status = StatusToRead
		} else if !status.Valid() {
			return nil, fmt.Errorf("seed catalog entry %d: unknown status %q", i, e.Status)
		}
		category := e.Category
		if category == "" {
			category = DefaultCategory
		}
		added := time.Now().UTC()
		if e.DateAdded != "" {
			added, err = parseSeedDate(e.DateAdded)
			if err != nil {
				return nil, fmt.Errorf("seed catalog entry %d: %w", i, err)
			}
		}
		books = append(books, Book{
			ID:            e.ID,
			Title:         e.Title,
			Author:        e.Author,
			Description:   e.Description,
			Category:      category,
			PublishedYear: e.PublishedYear,
			ISBN:          e.ISBN,
			Likes:         e.Likes,
			Rating:        e.Rating,
			Status:        status,
			DateAdded:     added,
		})
	}
	return books, nil
}

func parseSeedDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
