package token

import (
	"strings"

	"github.com/hupe1980/hanfuzz/dict"
)

// Tokenizer converts raw text into token sequences using a pronunciation
// dictionary. It is stateless apart from the dictionary and safe for
// concurrent use.
type Tokenizer struct {
	dict dict.Dict
}

// NewTokenizer creates a Tokenizer backed by d. A nil dictionary degrades to
// literal-only tokens (dict.Empty).
func NewTokenizer(d dict.Dict) *Tokenizer {
	if d == nil {
		d = dict.Empty()
	}
	return &Tokenizer{dict: d}
}

// Tokenize segments text into an ordered token sequence. It is total: every
// character lands in exactly one token and unknown characters degrade to
// literal tokens. Empty text yields an empty sequence.
//
// Boundary rules, in order:
//   - a Chinese ideograph flushes any pending Latin/digit run and becomes its
//     own token carrying the dictionary readings
//   - an uppercase Latin letter terminates a pending run and starts a new one
//     (camel-case split)
//   - a separator flushes the pending run and becomes its own token
//   - everything else accumulates into the pending run
func (t *Tokenizer) Tokenize(text string) []Token {
	var tokens []Token
	var buf []rune

	flush := func() {
		if len(buf) > 0 {
			tokens = append(tokens, literalToken(string(buf)))
			buf = buf[:0]
		}
	}

	for _, r := range text {
		switch {
		case isHan(r):
			flush()
			tokens = append(tokens, t.hanToken(r))
		case r >= 'A' && r <= 'Z' && len(buf) > 0:
			flush()
			buf = append(buf, r)
		case IsSeparator(r):
			flush()
			tokens = append(tokens, literalToken(string(r)))
		default:
			buf = append(buf, r)
		}
	}
	flush()

	return tokens
}

func (t *Tokenizer) hanToken(r rune) Token {
	readings := t.dict.Lookup(r)
	if len(readings) == 0 {
		// Unknown character: degrade to its literal form.
		return Token{
			Original: string(r),
			Readings: []string{string(r)},
			Initials: []rune{r},
			Han:      true,
		}
	}

	initials := make([]rune, 0, len(readings))
	normalized := make([]string, 0, len(readings))
	for _, reading := range readings {
		reading = strings.ToLower(reading)
		normalized = append(normalized, reading)
		first, _ := firstRune(reading)
		if first != 0 && !containsRune(initials, first) {
			initials = append(initials, first)
		}
	}

	return Token{
		Original: string(r),
		Readings: normalized,
		Initials: initials,
		Han:      true,
	}
}

func literalToken(s string) Token {
	lower := strings.ToLower(s)
	first, _ := firstRune(lower)
	return Token{
		Original: s,
		Readings: []string{lower},
		Initials: []rune{first},
	}
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}
