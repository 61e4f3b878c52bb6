// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// VisibleBooks computes the presented slice of a collection. It is a
// pure function of its inputs; the input slice is never reordered.
// Search matches case-insensitively against title, author, or
// category, then the status filter applies, then the sort.
func VisibleBooks(items []Book, search string, filter Filter, sortBy SortKey) []Book {
	query := strings.ToLower(strings.TrimSpace(search))

	out := make([]Book, 0, len(items))
	for _, b := range items {
		if query != "" && !matchesQuery(b, query) {
			continue
		}
		if filter != FilterAll && b.Status != Status(filter) {
			continue
		}
		out = append(out, b)
	}
	sortBooks(out, sortBy)
	return out
}

func matchesQuery(b Book, query string) bool {
	return strings.Contains(strings.ToLower(b.Title), query) ||
		strings.Contains(strings.ToLower(b.Author), query) ||
		strings.Contains(strings.ToLower(b.Category), query)
}

// sortBooks orders in place. Sorts are stable so equal keys keep their
// prior relative order.
func sortBooks(items []Book, sortBy SortKey) {
	switch sortBy {
	case SortTitle:
		c := collate.New(language.Und, collate.Loose)
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].Title, items[j].Title) < 0
		})
	case SortAuthor:
		c := collate.New(language.Und, collate.Loose)
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].Author, items[j].Author) < 0
		})
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	default:
		// Newest first.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DateAdded.After(items[j].DateAdded)
		})
	}
}

// ComputeStats aggregates the whole collection. Search and filter do
// not apply here.
func ComputeStats(items []Book) Stats {
	stats := Stats{
		Total:         len(items),
		RecentlyAdded: []Book{},
	}

	categories := make(map[string]struct{})
	var ratingSum float64
	for _, b := range items {
		switch b.Status {
		case StatusRead:
			stats.Read++
		case StatusReading:
			stats.Reading++
		case StatusToRead:
			stats.ToRead++
		}
		stats.TotalLikes += b.Likes
		ratingSum += b.Rating
		if b.Category != "" {
			categories[b.Category] = struct{}{}
		}
	}
	stats.CategoriesCount = len(categories)
	if len(items) > 0 {
		stats.AverageRating = math.Round(ratingSum/float64(len(items))*10) / 10
	}

	recent := make([]Book, len(items))
	copy(recent, items)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].DateAdded.After(recent[j].DateAdded)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentlyAdded = recent
	return stats
}
