// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/mtreilly/libris/internal/cmd"
	"github.com/mtreilly/libris/internal/config"
	"github.com/mtreilly/libris/internal/kv"
	"github.com/mtreilly/libris/internal/library"
)

func main() {
	cfg, err := config.Load(os.Getenv("LIBRIS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "libris: failed to load config: %v\n", err)
		os.Exit(1)
	}

	var backend kv.KV
	switch cfg.Storage {
	case "sqlite":
		// If SQLite fails (permissions, corruption), fall back to the
		// in-memory store so the tool stays usable without persistence.
		db, err := kv.OpenSQLite(cfg.DBPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: cannot open SQLite database: %v\n", err)
			fmt.Fprintln(os.Stderr, "         falling back to in-memory store (no persistence)")
			backend = kv.NewMemory()
			break
		}
		defer db.Close()
		backend = db

	case "memory":
		backend = kv.NewMemory()

	default:
		fmt.Fprintf(os.Stderr, "libris: unknown storage backend %q (choose sqlite or memory)\n", cfg.Storage)
		os.Exit(1)
	}

	seed := library.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = library.LoadSeedCatalog(cfg.SeedFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "libris: %v\n", err)
			os.Exit(1)
		}
	}
	loader := &library.SeedLoader{
		Seed:     seed,
		Latency:  cfg.FetchLatency,
		FailWith: cfg.FetchFailure,
	}

	store := library.NewStore(library.NewAdapter(backend), loader).
		WithPersistErrorHandler(func(err error) {
			fmt.Fprintf(os.Stderr, "WARNING: persistence failed: %v\n", err)
		})

	root := cmd.NewRootCmd(cfg, store)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
