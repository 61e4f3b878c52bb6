// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mtreilly/libris/internal/library"
)

func newLikeCmd(store *library.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Like a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}
			id, err := resolveID(store, args[0])
			if err != nil {
				return err
			}
			book, err := store.AddLike(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%q now has %d like(s)\n", book.Title, book.Likes)
			return nil
		},
	}
}

func newRateCmd(store *library.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <id> <rating>",
		Short: "Rate a book from 0 to 5",
		Long: `Rate a book on a 0 to 5 scale, halves allowed.

Examples:
  libris rate 3f1a9c2e 4.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}
			rating, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid rating %q", args[1])
			}
			id, err := resolveID(store, args[0])
			if err != nil {
				return err
			}
			book, err := store.UpdateRating(cmd.Context(), id, rating)
			if err != nil {
				return err
			}
			fmt.Printf("Rated %q %.1f\n", book.Title, book.Rating)
			return nil
		},
	}
}

func newStatusCmd(store *library.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set a book's reading status",
		Long: `Set the reading status of a book.

Valid statuses: to-read, reading, read.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}
			id, err := resolveID(store, args[0])
			if err != nil {
				return err
			}
			book, err := store.UpdateStatus(cmd.Context(), id, library.Status(args[1]))
			if err != nil {
				return err
			}
			fmt.Printf("%q is now %s\n", book.Title, book.Status)
			return nil
		},
	}
}
