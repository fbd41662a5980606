// Copyright 2026 The Fracset Authors
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldHeader normalizes a CSV header cell for matching: accents removed,
// lowercased, and everything that is not a letter or digit dropped, so
// "Dip Direction", "dip_direction" and "Dirección" all compare equal to
// their canonical spellings.
func foldHeader(s string) string {
	s, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.TrimSpace(strings.ToLower(s)),
	)

	var b strings.Builder

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
