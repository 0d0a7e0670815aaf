// Copyright (c) 2026 Book2Screen. All rights reserved.

// Package fold provides Unicode case-insensitive string matching.
//
// # Why not strings.ToLower?
//
// Simple lowercasing breaks for scripts with non-trivial case mappings
// (e.g. the Turkish dotless ı, the German ß). Unicode case folding is the
// correct caseless-comparison primitive, and x/text ships a dedicated caser
// for it.
package fold

import (
	"strings"

	"golang.org/x/text/cases"
)

var caser = cases.Fold()

// String returns the case-folded form of s.
func String(s string) string {
	return caser.String(s)
}

// Contains reports whether substr occurs in s under Unicode case folding.
//
// An empty substr matches everything, mirroring [strings.Contains].
func Contains(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(caser.String(s), caser.String(substr))
}

// Equal reports whether a and b are equal under Unicode case folding.
func Equal(a, b string) bool {
	return caser.String(a) == caser.String(b)
}
