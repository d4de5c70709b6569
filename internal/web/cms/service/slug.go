package service

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

const slugDateLayout = "20060102"

var slugDateSuffix = regexp.MustCompile(`-\d{8}$`)

// FormatSlug lowercases raw text and collapses every maximal run of
// characters that are not a letter, combining mark, or digit into a single
// hyphen, then trims edge hyphens. Unicode character classes are used so any
// script survives intact; accented letters are letters, not junk.
func FormatSlug(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	pendingHyphen := false
	for _, r := range strings.ToLower(raw) {
		if !unicode.IsLetter(r) && !unicode.IsMark(r) && !unicode.IsNumber(r) {
			pendingHyphen = b.Len() > 0
			continue
		}

		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// StripDateSuffix removes a trailing "-YYYYMMDD" so re-deriving from an
// already suffixed slug stays stable instead of stacking dates.
func StripDateSuffix(slug string) string {
	return slugDateSuffix.ReplaceAllString(slug, "")
}

// DeriveSlug builds the final slug from free text: normalize, drop any old
// date suffix, append the derivation date. Same-title posts on different
// days get distinct slugs for free; a same-day collision is surfaced to the
// caller as a duplicate, never resolved here.
func DeriveSlug(raw string, now time.Time) string {
	return StripDateSuffix(FormatSlug(raw)) + "-" + now.Format(slugDateLayout)
}
