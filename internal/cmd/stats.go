// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/libris/internal/library"
)

func newStatsCmd(store *library.Store) *cobra.Command {
	var out outputOptions

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Long:  `Display statistics about the collection: counts by status, average rating, likes, categories, and recent additions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.resolve(); err != nil {
				return err
			}
			if err := ensureLoaded(cmd, store); err != nil {
				return err
			}

			stats := store.Stats()
			if out.isJSON() {
				return printJSON(stats)
			}

			fmt.Println("Collection statistics")
			fmt.Println("=====================")
			fmt.Printf("Total books:     %d\n", stats.Total)
			fmt.Printf("  read:          %d\n", stats.Read)
			fmt.Printf("  reading:       %d\n", stats.Reading)
			fmt.Printf("  to-read:       %d\n", stats.ToRead)
			fmt.Printf("Average rating:  %.1f\n", stats.AverageRating)
			fmt.Printf("Total likes:     %d\n", stats.TotalLikes)
			fmt.Printf("Categories:      %d\n", stats.CategoriesCount)

			if len(stats.RecentlyAdded) > 0 {
				fmt.Println("\nRecently added:")
				for _, b := range stats.RecentlyAdded {
					fmt.Printf("  %s  %s by %s (%s)\n",
						shortID(b.ID), truncate(b.Title, 40), b.Author,
						b.DateAdded.Format("2006-01-02"))
				}
			}
			return nil
		},
	}

	out.addFlags(cmd)
	return cmd
}
