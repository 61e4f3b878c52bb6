// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakePersister records saves and serves a canned load result.
type fakePersister struct {
	loaded   []Book
	loadErr  error
	saveErr  error
	saved    [][]Book
	loadCall int
}

func (f *fakePersister) Load(context.Context) ([]Book, error) {
	f.loadCall++
	return f.loaded, f.loadErr
}

func (f *fakePersister) Save(_ context.Context, items []Book) error {
	snapshot := make([]Book, len(items))
	copy(snapshot, items)
	f.saved = append(f.saved, snapshot)
	return f.saveErr
}

func (f *fakePersister) lastSaved(t *testing.T) []Book {
	t.Helper()
	if len(f.saved) == 0 {
		t.Fatal("nothing was persisted")
	}
	return f.saved[len(f.saved)-1]
}

// fakeLoader serves its books or error instantly.
type fakeLoader struct {
	books []Book
	err   error
	calls int
}

func (f *fakeLoader) FetchInitialCollection(context.Context) ([]Book, error) {
	f.calls++
	return f.books, f.err
}

func testClock() func() time.Time {
	t := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(p *fakePersister, l *fakeLoader) *Store {
	return NewStore(p, l).WithClock(testClock()).WithIDGenerator(sequentialIDs())
}

func TestInitializeUsesPersistedData(t *testing.T) {
	persisted := []Book{{ID: "p1", Title: "Persisted", Author: "Someone", Status: StatusRead}}
	p := &fakePersister{loaded: persisted}
	l := &fakeLoader{books: DefaultSeed()}
	s := newTestStore(p, l)

	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if s.Status() != LoadSucceeded {
		t.Fatalf("status = %s, want %s", s.Status(), LoadSucceeded)
	}
	if l.calls != 0 {
		t.Fatalf("remote loader called %d times, want 0", l.calls)
	}
	items := s.Items()
	if len(items) != 1 || items[0].ID != "p1" {
		t.Fatalf("items = %+v, want the persisted book", items)
	}
	if len(p.saved) != 0 {
		t.Fatalf("persisted-data path should not re-save, got %d saves", len(p.saved))
	}
}

func TestInitializeFetchesSeedOnFirstRun(t *testing.T) {
	p := &fakePersister{}
	l := &fakeLoader{books: DefaultSeed()}
	s := newTestStore(p, l)

	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if s.Status() != LoadSucceeded {
		t.Fatalf("status = %s, want %s", s.Status(), LoadSucceeded)
	}
	if l.calls != 1 {
		t.Fatalf("remote loader called %d times, want 1", l.calls)
	}
	if got := len(s.Items()); got != 5 {
		t.Fatalf("items = %d, want 5", got)
	}
	if got := len(p.lastSaved(t)); got != 5 {
		t.Fatalf("persisted %d books after seed fetch, want 5", got)
	}
}

func TestInitializeFailure(t *testing.T) {
	p := &fakePersister{}
	l := &fakeLoader{err: &LoadError{Message: "catalog unreachable"}}
	s := newTestStore(p, l)

	err := s.Initialize(context.Background())
	if err == nil {
		t.Fatal("Initialize: expected error")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Initialize error = %T, want *LoadError", err)
	}
	if s.Status() != LoadFailed {
		t.Fatalf("status = %s, want %s", s.Status(), LoadFailed)
	}
	if s.Err() != "catalog unreachable" {
		t.Fatalf("Err() = %q", s.Err())
	}
	if len(s.Items()) != 0 {
		t.Fatalf("items should stay empty after failed load, got %d", len(s.Items()))
	}
}

func TestInitializeIdempotent(t *testing.T) {
	p := &fakePersister{}
	l := &fakeLoader{books: DefaultSeed()}
	s := newTestStore(p, l)

	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	if l.calls != 1 {
		t.Fatalf("remote loader called %d times across two Initialize calls, want 1", l.calls)
	}
}

func TestReloadOnlyFromFailed(t *testing.T) {
	p := &fakePersister{}
	l := &fakeLoader{err: &LoadError{Message: "down"}}
	s := newTestStore(p, l)

	_ = s.Initialize(context.Background())
	if s.Status() != LoadFailed {
		t.Fatalf("status = %s, want %s", s.Status(), LoadFailed)
	}

	l.err = nil
	l.books = DefaultSeed()
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if s.Status() != LoadSucceeded {
		t.Fatalf("status after reload = %s, want %s", s.Status(), LoadSucceeded)
	}
	if s.Err() != "" {
		t.Fatalf("Err() = %q, want cleared", s.Err())
	}

	// A succeeded store ignores further reloads.
	calls := l.calls
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("Reload after success: %v", err)
	}
	if l.calls != calls {
		t.Fatal("Reload after success must not refetch")
	}
}

func TestAddBookPrependsAndPersists(t *testing.T) {
	p := &fakePersister{}
	s := newTestStore(p, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())

	before := len(s.Items())
	book, err := s.AddBook(context.Background(), Draft{Title: "  Dune ", Author: " Frank Herbert "})
	if err != nil {
		t.Fatalf("AddBook: %v", err)
	}
	if book.Title != "Dune" || book.Author != "Frank Herbert" {
		t.Fatalf("title/author not trimmed: %+v", book)
	}
	if book.Likes != 0 || book.Rating != 0 {
		t.Fatalf("new book must start with zero likes and rating: %+v", book)
	}
	if book.Status != StatusToRead {
		t.Fatalf("status = %s, want default %s", book.Status, StatusToRead)
	}
	if book.Category != DefaultCategory {
		t.Fatalf("category = %s, want default %s", book.Category, DefaultCategory)
	}
	if book.DateModified != nil {
		t.Fatal("new book must not carry dateModified")
	}

	items := s.Items()
	if len(items) != before+1 {
		t.Fatalf("items = %d, want %d", len(items), before+1)
	}
	if items[0].ID != book.ID {
		t.Fatal("new book must be prepended")
	}
	if got := p.lastSaved(t); len(got) != before+1 {
		t.Fatalf("persisted %d books, want %d", len(got), before+1)
	}
}

func TestAddBookValidationFailureLeavesStateUntouched(t *testing.T) {
	p := &fakePersister{}
	s := newTestStore(p, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())
	saves := len(p.saved)
	before := len(s.Items())

	_, err := s.AddBook(context.Background(), Draft{Title: "   ", Author: ""})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("AddBook error = %T, want ValidationErrors", err)
	}
	if _, ok := verrs["title"]; !ok {
		t.Errorf("missing title error: %v", verrs)
	}
	if _, ok := verrs["author"]; !ok {
		t.Errorf("missing author error: %v", verrs)
	}
	if len(s.Items()) != before {
		t.Fatal("failed add must not mutate items")
	}
	if len(p.saved) != saves {
		t.Fatal("failed add must not persist")
	}
}

func TestEditBook(t *testing.T) {
	p := &fakePersister{}
	s := newTestStore(p, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())
	orig := s.Items()[2]

	title := "Design Patterns, 2nd printing"
	got, err := s.EditBook(context.Background(), orig.ID, Patch{Title: &title})
	if err != nil {
		t.Fatalf("EditBook: %v", err)
	}
	if got.Title != title {
		t.Fatalf("title = %q, want %q", got.Title, title)
	}
	if got.ID != orig.ID {
		t.Fatal("edit must not change id")
	}
	if !got.DateAdded.Equal(orig.DateAdded) {
		t.Fatal("edit must not change dateAdded")
	}
	if got.Author != orig.Author {
		t.Fatal("untouched fields must survive the patch")
	}
	if got.DateModified == nil {
		t.Fatal("edit must set dateModified")
	}
}

func TestEditBookNotFound(t *testing.T) {
	s := newTestStore(&fakePersister{}, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())

	_, err := s.EditBook(context.Background(), "missing", Patch{})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %T, want *NotFoundError", err)
	}
	if nf.ID != "missing" {
		t.Fatalf("NotFoundError.ID = %q", nf.ID)
	}
}

func TestDeleteBookIdempotent(t *testing.T) {
	p := &fakePersister{}
	s := newTestStore(p, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())
	before := len(s.Items())
	id := s.Items()[0].ID

	s.DeleteBook(context.Background(), id)
	if len(s.Items()) != before-1 {
		t.Fatalf("items = %d, want %d", len(s.Items()), before-1)
	}
	saves := len(p.saved)

	// Deleting again is a silent no-op and does not persist.
	s.DeleteBook(context.Background(), id)
	if len(s.Items()) != before-1 {
		t.Fatal("second delete changed items")
	}
	if len(p.saved) != saves {
		t.Fatal("second delete must not persist")
	}
}

func TestAddLike(t *testing.T) {
	s := newTestStore(&fakePersister{}, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())
	orig := s.Items()[0]

	got, err := s.AddLike(context.Background(), orig.ID)
	if err != nil {
		t.Fatalf("AddLike: %v", err)
	}
	if got.Likes != orig.Likes+1 {
		t.Fatalf("likes = %d, want %d", got.Likes, orig.Likes+1)
	}
	if got.DateModified != nil {
		t.Fatal("a like is not an edit; dateModified must stay unset")
	}

	if _, err := s.AddLike(context.Background(), "missing"); err == nil {
		t.Fatal("AddLike on unknown id must fail")
	}
}

func TestUpdateRating(t *testing.T) {
	s := newTestStore(&fakePersister{}, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())
	id := s.Items()[0].ID

	got, err := s.UpdateRating(context.Background(), id, 3.5)
	if err != nil {
		t.Fatalf("UpdateRating: %v", err)
	}
	if got.Rating != 3.5 {
		t.Fatalf("rating = %v, want 3.5", got.Rating)
	}
	if got.DateModified == nil {
		t.Fatal("rating change must set dateModified")
	}

	_, err = s.UpdateRating(context.Background(), "missing", 3)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("unknown id with valid rating: error = %T, want *NotFoundError", err)
	}
}

func TestUpdateRatingOutOfRange(t *testing.T) {
	s := newTestStore(&fakePersister{}, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())
	before := s.Items()

	_, err := s.UpdateRating(context.Background(), before[0].ID, 7)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error = %T, want ValidationErrors", err)
	}
	after := s.Items()
	if after[0].Rating != before[0].Rating {
		t.Fatal("failed rating update must not mutate items")
	}

	// Range is checked before existence.
	_, err = s.UpdateRating(context.Background(), "missing", -1)
	if !errors.As(err, &verrs) {
		t.Fatalf("error = %T, want ValidationErrors even for unknown id", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStore(&fakePersister{}, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())
	id := s.Items()[1].ID

	got, err := s.UpdateStatus(context.Background(), id, StatusReading)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if got.Status != StatusReading {
		t.Fatalf("status = %s, want %s", got.Status, StatusReading)
	}

	if _, err := s.UpdateStatus(context.Background(), id, Status("abandoned")); err == nil {
		t.Fatal("unknown status must fail validation")
	}

	_, err = s.UpdateStatus(context.Background(), "missing", StatusRead)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("unknown id with valid status: error = %T, want *NotFoundError", err)
	}
}

func TestViewSettersValidateMembership(t *testing.T) {
	s := newTestStore(&fakePersister{}, &fakeLoader{books: DefaultSeed()})

	if err := s.SetFilter(FilterRead); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	if err := s.SetFilter(Filter("archived")); err == nil {
		t.Fatal("unknown filter must be rejected")
	}
	if s.Filter() != FilterRead {
		t.Fatal("rejected filter must not overwrite the current one")
	}

	if err := s.SetSortBy(SortRating); err != nil {
		t.Fatalf("SetSortBy: %v", err)
	}
	if err := s.SetSortBy(SortKey("isbn")); err == nil {
		t.Fatal("unknown sort key must be rejected")
	}

	s.SetSearch("orwell")
	if s.Search() != "orwell" {
		t.Fatalf("Search() = %q", s.Search())
	}
}

func TestClearError(t *testing.T) {
	s := newTestStore(&fakePersister{}, &fakeLoader{err: &LoadError{Message: "down"}})
	_ = s.Initialize(context.Background())
	if s.Err() == "" {
		t.Fatal("expected a recorded load error")
	}
	s.ClearError()
	if s.Err() != "" {
		t.Fatalf("Err() = %q after ClearError", s.Err())
	}
}

func TestPersistFailureKeepsMutation(t *testing.T) {
	p := &fakePersister{saveErr: errors.New("disk full")}
	var reported []error
	s := newTestStore(p, &fakeLoader{books: DefaultSeed()}).
		WithPersistErrorHandler(func(err error) { reported = append(reported, err) })
	_ = s.Initialize(context.Background())
	before := len(s.Items())

	book, err := s.AddBook(context.Background(), Draft{Title: "Dune", Author: "Frank Herbert"})
	if err != nil {
		t.Fatalf("AddBook must succeed despite persistence failure: %v", err)
	}
	if len(s.Items()) != before+1 {
		t.Fatal("in-memory mutation must survive a failed save")
	}
	if s.Items()[0].ID != book.ID {
		t.Fatal("new book missing from items")
	}
	if len(reported) == 0 {
		t.Fatal("persistence failure was not reported")
	}
}

func TestImportCollectionReplacesWholesale(t *testing.T) {
	p := &fakePersister{}
	s := newTestStore(p, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())

	data := []byte(`[
		{"id": "x1", "title": "Imported", "author": "Importer", "status": "read"},
		{"id": 42, "title": "Numeric ID", "author": "Old App"},
		{"title": "No ID", "author": "Dropped"}
	]`)
	n, err := s.ImportCollection(context.Background(), data)
	if err != nil {
		t.Fatalf("ImportCollection: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported %d books, want 2", n)
	}
	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("items = %d after import, want 2", len(items))
	}
	if items[1].ID != "42" {
		t.Fatalf("numeric id = %q, want \"42\"", items[1].ID)
	}
	if got := p.lastSaved(t); len(got) != 2 {
		t.Fatalf("persisted %d books after import, want 2", len(got))
	}
}

func TestImportCollectionFailureLeavesStateUntouched(t *testing.T) {
	p := &fakePersister{}
	s := newTestStore(p, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())
	before := len(s.Items())
	saves := len(p.saved)

	if _, err := s.ImportCollection(context.Background(), []byte(`{"not": "an array"}`)); err == nil {
		t.Fatal("non-array import must fail")
	}
	if _, err := s.ImportCollection(context.Background(), []byte(`[{"title": ""}]`)); err == nil {
		t.Fatal("import with no valid books must fail")
	}
	if len(s.Items()) != before {
		t.Fatal("failed import must not mutate items")
	}
	if len(p.saved) != saves {
		t.Fatal("failed import must not persist")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	s := newTestStore(&fakePersister{}, &fakeLoader{books: DefaultSeed()})
	_ = s.Initialize(context.Background())

	items := s.Items()
	items[0].Title = "tampered"
	if s.Items()[0].Title == "tampered" {
		t.Fatal("Items must return a copy")
	}
}
