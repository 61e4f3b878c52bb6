// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"time"
)

// Status represents the reading progress of a book.
type Status string

const (
	StatusToRead  Status = "to-read"
	StatusReading Status = "reading"
	StatusRead    Status = "read"
)

// Valid reports whether s is one of the known reading statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusRead:
		return true
	}
	return false
}

// LoadStatus tracks where the store is in its load lifecycle.
type LoadStatus string

const (
	LoadIdle      LoadStatus = "idle"
	LoadLoading   LoadStatus = "loading"
	LoadSucceeded LoadStatus = "succeeded"
	LoadFailed    LoadStatus = "failed"
)

// Filter selects which books are visible.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterToRead  Filter = Filter(StatusToRead)
	FilterReading Filter = Filter(StatusReading)
	FilterRead    Filter = Filter(StatusRead)
)

// Valid reports whether f is a recognized filter value.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterToRead, FilterReading, FilterRead:
		return true
	}
	return false
}

// SortKey selects the ordering of visible books.
type SortKey string

const (
	SortTitle     SortKey = "title"
	SortAuthor    SortKey = "author"
	SortRating    SortKey = "rating"
	SortDateAdded SortKey = "dateAdded"
)

// Valid reports whether k is a recognized sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortTitle, SortAuthor, SortRating, SortDateAdded:
		return true
	}
	return false
}

// Book is a single entry in the collection. The JSON field names match
// the export format, so exported files round-trip through import.
type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Description   string     `json:"description,omitempty"`
	Category      string     `json:"category"`
	PublishedYear int        `json:"publishedYear,omitempty"`
	ISBN          string     `json:"isbn,omitempty"`
	Likes         int        `json:"likes"`
	Rating        float64    `json:"rating"`
	Status        Status     `json:"status"`
	DateAdded     time.Time  `json:"dateAdded"`
	DateModified  *time.Time `json:"dateModified,omitempty"`
}

// Draft carries user-supplied fields for a new book. Identity and
// timestamps are assigned by the store.
type Draft struct {
	Title         string
	Author        string
	Description   string
	Category      string
	PublishedYear int
	ISBN          string
	Status        Status
}

// Patch describes a partial edit. Nil fields are left untouched.
// Identity and DateAdded cannot be patched.
type Patch struct {
	Title         *string
	Author        *string
	Description   *string
	Category      *string
	PublishedYear *int
	ISBN          *string
	Status        *Status
}

// Stats summarizes the whole collection, ignoring search and filter.
type Stats struct {
	Total           int     `json:"total"`
	Read            int     `json:"read"`
	Reading         int     `json:"reading"`
	ToRead          int     `json:"toRead"`
	AverageRating   float64 `json:"averageRating"`
	TotalLikes      int     `json:"totalLikes"`
	CategoriesCount int     `json:"categoriesCount"`
	RecentlyAdded   []Book  `json:"recentlyAdded"`
}
