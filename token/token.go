// Package token segments mixed Chinese/Latin text into ordered tokens that
// carry candidate phonetic readings. The token sequence is a lossless
// partition of the input: concatenating every token's Original reproduces the
// text exactly.
package token

import (
	"strings"
	"unicode/utf8"
)

// Token is a maximal contiguous slice of source text assigned one semantic
// unit of meaning.
type Token struct {
	// Original is the exact substring of the source text, case preserved.
	Original string

	// Readings holds the candidate phonetic spellings, lower-cased. A
	// non-Chinese slice has exactly one entry: its lower-cased literal text.
	// A Chinese character has one entry per pronunciation, or the literal
	// character itself when the dictionary has no entry.
	Readings []string

	// Initials holds the first rune of each reading, deduplicated in order.
	Initials []rune

	// Han reports whether Original is a Chinese ideograph.
	Han bool
}

// Len returns the length of Original in runes.
func (t Token) Len() int { return utf8.RuneCountInString(t.Original) }

// HasInitial reports whether r is one of the token's initials.
func (t Token) HasInitial(r rune) bool {
	for _, i := range t.Initials {
		if i == r {
			return true
		}
	}
	return false
}

// separators is the closed set of characters that always form their own
// single-character token and act as skippable filler during matching.
const separators = ` -_.,()[]{}/\'":;!?&+`

// IsSeparator reports whether r belongs to the separator set.
func IsSeparator(r rune) bool {
	return r < utf8.RuneSelf && strings.ContainsRune(separators, r)
}

// isHan reports whether r falls into the CJK Unified Ideographs block.
func isHan(r rune) bool { return r >= 0x4E00 && r <= 0x9FFF }
