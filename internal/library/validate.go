// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultCategory is assigned when a draft leaves the category blank.
const DefaultCategory = "Fiction"

// MinPublishedYear is the oldest publication year accepted.
const MinPublishedYear = 1000

// After stripping whitespace and hyphens an ISBN is 10 to 17 digits.
var isbnPattern = regexp.MustCompile(`^[0-9]{10,17}$`)

// ValidateDraft checks every field of a draft and returns one entry per
// violated field. It never short-circuits, so a caller can surface all
// problems at once. A nil result means the draft is acceptable.
func ValidateDraft(d Draft, now time.Time) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(d.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(d.Author) == "" {
		errs["author"] = "author is required"
	}
	if d.PublishedYear != 0 {
		if err := validateYear(d.PublishedYear, now); err != "" {
			errs["publishedYear"] = err
		}
	}
	if d.ISBN != "" {
		if err := validateISBN(d.ISBN); err != "" {
			errs["isbn"] = err
		}
	}
	if d.Status != "" && !d.Status.Valid() {
		errs["status"] = fmt.Sprintf("unknown status %q", d.Status)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidatePatch checks only the fields a patch actually touches.
func ValidatePatch(p Patch, now time.Time) ValidationErrors {
	errs := ValidationErrors{}

	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs["title"] = "title is required"
	}
	if p.Author != nil && strings.TrimSpace(*p.Author) == "" {
		errs["author"] = "author is required"
	}
	if p.PublishedYear != nil && *p.PublishedYear != 0 {
		if err := validateYear(*p.PublishedYear, now); err != "" {
			errs["publishedYear"] = err
		}
	}
	if p.ISBN != nil && *p.ISBN != "" {
		if err := validateISBN(*p.ISBN); err != "" {
			errs["isbn"] = err
		}
	}
	if p.Status != nil && !p.Status.Valid() {
		errs["status"] = fmt.Sprintf("unknown status %q", *p.Status)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateYear(year int, now time.Time) string {
	if year < MinPublishedYear || year > now.Year() {
		return fmt.Sprintf("publishedYear must be between %d and %d", MinPublishedYear, now.Year())
	}
	return ""
}

func validateISBN(isbn string) string {
	normalized := strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, isbn)
	if !isbnPattern.MatchString(normalized) {
		return "isbn must be 10 to 17 digits, hyphens allowed"
	}
	return ""
}
