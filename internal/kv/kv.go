// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package kv provides the small key-value storage contract the library
// persists through, with in-memory and SQLite-backed implementations.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has no value. Absence of a
// key is a normal condition for callers, not a failure.
var ErrNotFound = errors.New("kv: key not found")

// KV is a minimal persistent key-value store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
