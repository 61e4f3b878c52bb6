// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mtreilly/libris/internal/kv"
)

// BooksKey is the single key the whole collection lives under.
const BooksKey = "libris:books"

// Persister loads and saves the collection snapshot.
type Persister interface {
	Load(ctx context.Context) ([]Book, error)
	Save(ctx context.Context, items []Book) error
}

// Adapter stores the collection as one JSON array under BooksKey.
type Adapter struct {
	kv kv.KV
}

// NewAdapter wraps a KV backend as a collection persister.
func NewAdapter(store kv.KV) *Adapter {
	return &Adapter{kv: store}
}

// Load reads the persisted collection. A missing key means no data has
// been saved yet and returns (nil, nil).
func (a *Adapter) Load(ctx context.Context) ([]Book, error) {
	raw, err := a.kv.Get(ctx, BooksKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	var items []Book
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	return items, nil
}

// Save writes the full collection snapshot.
func (a *Adapter) Save(ctx context.Context, items []Book) error {
	if items == nil {
		items = []Book{}
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := a.kv.Set(ctx, BooksKey, raw); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	return nil
}
