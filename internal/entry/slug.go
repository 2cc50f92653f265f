// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entry

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	apostrophes = regexp.MustCompile("['’‘`]+")
	unsafeChars = regexp.MustCompile(`[^a-z0-9\-\s()]+`)
	spaceRun    = regexp.MustCompile(`\s+`)
	dashRun     = regexp.MustCompile(`-+`)
)

// Slugify derives a file name from an entry name:
// "Owlbear's Cousin (Variant)" becomes "owlbears-cousin-(variant)".
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = apostrophes.ReplaceAllString(s, "")
	s = unsafeChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = spaceRun.ReplaceAllString(s, "-")
	return dashRun.ReplaceAllString(s, "-")
}

// Letter returns the bucket of an entry name: its first character,
// uppercased.
func Letter(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
