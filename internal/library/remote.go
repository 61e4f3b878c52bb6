// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"context"
	"time"
)

// RemoteLoader supplies the initial collection when nothing has been
// persisted yet.
type RemoteLoader interface {
	FetchInitialCollection(ctx context.Context) ([]Book, error)
}

// DefaultFetchLatency mirrors the delay of the remote catalog service.
const DefaultFetchLatency = 800 * time.Millisecond

// SeedLoader serves a fixed catalog after a simulated network delay.
// FailWith, when set, makes every fetch fail instead, which is how the
// failed load path is exercised end to end.
type SeedLoader struct {
	Seed     []Book
	Latency  time.Duration
	FailWith string
}

// NewSeedLoader returns a loader serving the built-in catalog at the
// default latency.
func NewSeedLoader() *SeedLoader {
	return &SeedLoader{Seed: DefaultSeed(), Latency: DefaultFetchLatency}
}

func (l *SeedLoader) FetchInitialCollection(ctx context.Context) ([]Book, error) {
	if l.Latency > 0 {
		timer := time.NewTimer(l.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	if l.FailWith != "" {
		return nil, &LoadError{Message: l.FailWith}
	}
	out := make([]Book, len(l.Seed))
	copy(out, l.Seed)
	return out, nil
}
