// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mtreilly/libris/internal/config"
	"github.com/mtreilly/libris/internal/library"
)

func newWatchCmd(cfg config.Config, store *library.Store) *cobra.Command {
	var (
		debounceMs int
		replace    bool
		oneShot    bool
	)

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory for collection files to import",
		Long: `Watch a directory and import any .json collection file dropped
into it. Each import REPLACES the whole collection, exactly like the
import command, so --replace is required as confirmation.

Examples:
  libris watch ~/Dropbox/libris --replace
  libris watch ./drop --replace --debounce 1000
  libris watch ./drop --replace --one-shot   # import once, then exit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !replace {
				return fmt.Errorf("watched imports replace the whole collection; re-run with --replace to confirm")
			}
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}

			dir := args[0]
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("watch dir: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("watch target %s is not a directory", dir)
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}

			debounce := time.Duration(debounceMs) * time.Millisecond
			log.Printf("watching %s for .json collection files", dir)

			// All store access stays on this goroutine; the store is
			// not safe for concurrent use.
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
						continue
					}
					if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
						continue
					}
					// Wait for the writer to finish, then drain the
					// burst of events a single copy produces.
					time.Sleep(debounce)
					drainEvents(watcher)

					if err := importFile(cmd, store, event.Name); err != nil {
						log.Printf("import %s: %v", event.Name, err)
						continue
					}
					if oneShot {
						return nil
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.Printf("watch error: %v", err)
				case <-cmd.Context().Done():
					return nil
				}
			}
		},
	}

	cmd.Flags().IntVar(&debounceMs, "debounce", 500, "Settle time in milliseconds before importing")
	cmd.Flags().BoolVar(&replace, "replace", false, "Confirm replacing the current collection on each import")
	cmd.Flags().BoolVar(&oneShot, "one-shot", false, "Exit after the first successful import")

	return cmd
}

func drainEvents(watcher *fsnotify.Watcher) {
	for {
		select {
		case <-watcher.Events:
		default:
			return
		}
	}
}

func importFile(cmd *cobra.Command, store *library.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	n, err := store.ImportCollection(cmd.Context(), data)
	if err != nil {
		return err
	}
	log.Printf("imported %d book(s) from %s", n, filepath.Base(path))
	return nil
}
