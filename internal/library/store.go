// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store holds the collection and its view state and is the only write
// path into either. It is not safe for concurrent use; the caller owns
// serialization, matching the single-threaded command model of the
// presentation layer above it.
type Store struct {
	persist Persister
	remote  RemoteLoader

	now            func() time.Time
	nextID         func() string
	onPersistError func(error)

	items  []Book
	status LoadStatus
	err    string

	search string
	filter Filter
	sortBy SortKey
}

// NewStore wires a store to its persistence adapter and remote loader.
func NewStore(persist Persister, remote RemoteLoader) *Store {
	return &Store{
		persist:        persist,
		remote:         remote,
		now:            time.Now,
		nextID:         uuid.NewString,
		onPersistError: func(error) {},
		status:         LoadIdle,
		filter:         FilterAll,
		sortBy:         SortDateAdded,
	}
}

// WithClock replaces the timestamp source. Tests use this to make
// dateAdded and dateModified deterministic.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// WithIDGenerator replaces the id source.
func (s *Store) WithIDGenerator(next func() string) *Store {
	s.nextID = next
	return s
}

// WithPersistErrorHandler installs the sink for persistence failures.
// Writes that fail are reported here and never roll back the in-memory
// mutation; the running session's memory is authoritative.
func (s *Store) WithPersistErrorHandler(fn func(error)) *Store {
	if fn != nil {
		s.onPersistError = fn
	}
	return s
}

// Initialize brings the store from idle to succeeded or failed. It is
// a no-op unless the store is idle. Persisted data wins over the
// remote loader; the remote catalog is only fetched on first run.
func (s *Store) Initialize(ctx context.Context) error {
	if s.status != LoadIdle {
		return nil
	}
	s.status = LoadLoading
	s.err = ""

	items, err := s.persist.Load(ctx)
	if err != nil {
		// A broken read is treated like a first run, but surfaced.
		s.onPersistError(err)
		items = nil
	}
	if items != nil {
		s.items = items
		s.status = LoadSucceeded
		return nil
	}

	fetched, err := s.remote.FetchInitialCollection(ctx)
	if err != nil {
		s.status = LoadFailed
		s.err = err.Error()
		return err
	}
	s.items = fetched
	s.status = LoadSucceeded
	s.persistSnapshot(ctx)
	return nil
}

// Reload retries a failed load. It only acts when the previous load
// failed; a succeeded store never reloads.
func (s *Store) Reload(ctx context.Context) error {
	if s.status != LoadFailed {
		return nil
	}
	s.status = LoadIdle
	return s.Initialize(ctx)
}

// AddBook validates the draft and prepends the new book. The store
// assigns id, timestamps, and the zero likes and rating.
func (s *Store) AddBook(ctx context.Context, d Draft) (Book, error) {
	if errs := ValidateDraft(d, s.now()); errs != nil {
		return Book{}, errs
	}
	status := d.Status
	if status == "" {
		status = StatusToRead
	}
	category := strings.TrimSpace(d.Category)
	if category == "" {
		category = DefaultCategory
	}
	book := Book{
		ID:            s.nextID(),
		Title:         strings.TrimSpace(d.Title),
		Author:        strings.TrimSpace(d.Author),
		Description:   d.Description,
		Category:      category,
		PublishedYear: d.PublishedYear,
		ISBN:          d.ISBN,
		Status:        status,
		DateAdded:     s.now(),
	}
	s.items = append([]Book{book}, s.items...)
	s.persistSnapshot(ctx)
	return book, nil
}

// EditBook merges the patch over the existing record. Identity and
// dateAdded survive any patch.
func (s *Store) EditBook(ctx context.Context, id string, p Patch) (Book, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Book{}, &NotFoundError{ID: id}
	}
	if errs := ValidatePatch(p, s.now()); errs != nil {
		return Book{}, errs
	}

	book := s.items[idx]
	if p.Title != nil {
		book.Title = strings.TrimSpace(*p.Title)
	}
	if p.Author != nil {
		book.Author = strings.TrimSpace(*p.Author)
	}
	if p.Description != nil {
		book.Description = *p.Description
	}
	if p.Category != nil {
		category := strings.TrimSpace(*p.Category)
		if category == "" {
			category = DefaultCategory
		}
		book.Category = category
	}
	if p.PublishedYear != nil {
		book.PublishedYear = *p.PublishedYear
	}
	if p.ISBN != nil {
		book.ISBN = *p.ISBN
	}
	if p.Status != nil {
		book.Status = *p.Status
	}
	now := s.now()
	book.DateModified = &now

	s.items[idx] = book
	s.persistSnapshot(ctx)
	return book, nil
}

// DeleteBook removes the book if present. Deleting an unknown id is
// not an error, and nothing is persisted in that case.
func (s *Store) DeleteBook(ctx context.Context, id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persistSnapshot(ctx)
}

// AddLike bumps the like counter. Likes do not count as an edit, so
// dateModified stays put.
func (s *Store) AddLike(ctx context.Context, id string) (Book, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Book{}, &NotFoundError{ID: id}
	}
	s.items[idx].Likes++
	s.persistSnapshot(ctx)
	return s.items[idx], nil
}

// UpdateRating sets the rating. Range is checked before existence so a
// bad rating reports the same way regardless of the id.
func (s *Store) UpdateRating(ctx context.Context, id string, rating float64) (Book, error) {
	if rating < 0 || rating > 5 {
		return Book{}, ValidationErrors{"rating": "rating must be between 0 and 5"}
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return Book{}, &NotFoundError{ID: id}
	}
	now := s.now()
	s.items[idx].Rating = rating
	s.items[idx].DateModified = &now
	s.persistSnapshot(ctx)
	return s.items[idx], nil
}

// UpdateStatus sets the reading status.
func (s *Store) UpdateStatus(ctx context.Context, id string, status Status) (Book, error) {
	if !status.Valid() {
		return Book{}, ValidationErrors{"status": "unknown status " + string(status)}
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return Book{}, &NotFoundError{ID: id}
	}
	now := s.now()
	s.items[idx].Status = status
	s.items[idx].DateModified = &now
	s.persistSnapshot(ctx)
	return s.items[idx], nil
}

// SetSearch updates the search query. View-only state, not persisted.
func (s *Store) SetSearch(text string) {
	s.search = text
}

// SetFilter updates the visibility filter.
func (s *Store) SetFilter(f Filter) error {
	if !f.Valid() {
		return ValidationErrors{"filter": "unknown filter " + string(f)}
	}
	s.filter = f
	return nil
}

// SetSortBy updates the sort key.
func (s *Store) SetSortBy(k SortKey) error {
	if !k.Valid() {
		return ValidationErrors{"sortBy": "unknown sort key " + string(k)}
	}
	s.sortBy = k
	return nil
}

// ClearError dismisses a recorded load error.
func (s *Store) ClearError() {
	s.err = ""
}

// ImportCollection replaces the whole collection with the books parsed
// from data. This is destructive, not a merge; the previous collection
// is gone once the call succeeds.
func (s *Store) ImportCollection(ctx context.Context, data []byte) (int, error) {
	books, err := ParseImport(data)
	if err != nil {
		return 0, err
	}
	s.items = books
	s.persistSnapshot(ctx)
	return len(books), nil
}

// ExportCollection serializes the full collection for an export file.
func (s *Store) ExportCollection() ([]byte, error) {
	return ExportBooks(s.items)
}

// Items returns a copy of the collection in insertion order.
func (s *Store) Items() []Book {
	out := make([]Book, len(s.items))
	copy(out, s.items)
	return out
}

// Visible applies the current search, filter, and sort.
func (s *Store) Visible() []Book {
	return VisibleBooks(s.items, s.search, s.filter, s.sortBy)
}

// Stats aggregates over the whole collection, ignoring view state.
func (s *Store) Stats() Stats {
	return ComputeStats(s.items)
}

func (s *Store) Status() LoadStatus { return s.status }
func (s *Store) Err() string        { return s.err }
func (s *Store) Search() string     { return s.search }
func (s *Store) Filter() Filter     { return s.filter }
func (s *Store) SortBy() SortKey    { return s.sortBy }

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persistSnapshot saves the complete current collection. Failures are
// reported through the handler and never undo the mutation.
func (s *Store) persistSnapshot(ctx context.Context) {
	if err := s.persist.Save(ctx, s.items); err != nil {
		s.onPersistError(err)
	}
}
