package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses every non-alphanumeric run into a
// single hyphen: "Hello, World!" -> "hello-world".
func Slugify(s string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// UniqueSlug appends a short random suffix, used when a plain slug
// collides with an existing document.
func UniqueSlug(s string) string {
	return Slugify(s) + "-" + uuid.NewString()[:8]
}
