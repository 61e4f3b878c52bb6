// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSeedLoaderServesSeed(t *testing.T) {
	l := &SeedLoader{Seed: DefaultSeed()}
	got, err := l.FetchInitialCollection(context.Background())
	if err != nil {
		t.Fatalf("FetchInitialCollection: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d books, want 5", len(got))
	}

	// The returned slice must not alias the seed.
	got[0].Title = "tampered"
	again, _ := l.FetchInitialCollection(context.Background())
	if again[0].Title == "tampered" {
		t.Fatal("loader must copy the seed per fetch")
	}
}

func TestSeedLoaderSimulatesLatency(t *testing.T) {
	l := &SeedLoader{Seed: DefaultSeed(), Latency: 30 * time.Millisecond}
	start := time.Now()
	if _, err := l.FetchInitialCollection(context.Background()); err != nil {
		t.Fatalf("FetchInitialCollection: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("fetch returned after %v, want at least 30ms", elapsed)
	}
}

func TestSeedLoaderFailure(t *testing.T) {
	l := &SeedLoader{Seed: DefaultSeed(), FailWith: "catalog unreachable"}
	_, err := l.FetchInitialCollection(context.Background())
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %T, want *LoadError", err)
	}
	if loadErr.Message != "catalog unreachable" {
		t.Fatalf("message = %q", loadErr.Message)
	}
}

func TestSeedLoaderHonorsContext(t *testing.T) {
	l := &SeedLoader{Seed: DefaultSeed(), Latency: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.FetchInitialCollection(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
