// Package match implements fuzzy, typo-tolerant matching of query words
// against tokenized text. A query word is consumed greedily against a token
// sequence: pinyin readings and first-letter initials match at token starts,
// literal characters match anywhere, separators act as skippable filler, and
// a failed token is skipped wholesale rather than re-scanned (no backtracking
// within a token).
package match

import (
	"unicode"

	"github.com/hupe1980/hanfuzz/token"
)

// Weight tuning. Earlier and shorter matches score higher; confirmed matched
// characters add a small bonus on top.
const matchedCharBonus = 0.05

// Target is a token sequence compiled for matching: the lower-cased rune
// view of the original text plus offset lookup tables. Targets are immutable
// and safe to share across concurrent match calls.
type Target struct {
	tokens   []token.Token
	src      []rune // lower-cased runes of the original text
	tokIdx   []int  // token index covering each rune offset
	tokStart []int  // start offset of each token
}

// NewTarget compiles tokens into a Target. The tokens must form a lossless
// partition of the original text (the tokenizer guarantees this).
func NewTarget(tokens []token.Token) *Target {
	t := &Target{
		tokens:   tokens,
		tokStart: make([]int, len(tokens)),
	}
	for i, tk := range tokens {
		t.tokStart[i] = len(t.src)
		for _, r := range tk.Original {
			t.src = append(t.src, unicode.ToLower(r))
			t.tokIdx = append(t.tokIdx, i)
		}
	}
	return t
}

// Len returns the rune length of the underlying text.
func (t *Target) Len() int { return len(t.src) }

// Result is a successful whole-query match.
type Result struct {
	// Weight ranks the match; higher is better. Only relative ordering is
	// meaningful.
	Weight float64

	// Consumed holds the absolute rune offsets that participated in the
	// match, in match order.
	Consumed []int
}

// Match attempts to consume every query word, in order and non-overlapping,
// against the target. Words must be lower-cased and non-empty. It reports
// whether the whole query matched; on failure the partial result is
// discarded.
func (t *Target) Match(words []string) (Result, bool) {
	var res Result
	cursor := 0
	for _, w := range words {
		m, ok := t.matchWord([]rune(w), cursor)
		if !ok {
			return Result{}, false
		}
		if len(m.consumed) > 0 {
			res.Weight += wordWeight(m.consumed[0], m.end, len(m.consumed))
		}
		res.Consumed = append(res.Consumed, m.consumed...)
		cursor = m.end
	}
	return res, true
}

// wordWeight is monotonically decreasing in the match's start and end
// offsets, with a small bonus per confirmed matched character. The exact
// numbers are internal; only relative ordering is contractual.
func wordWeight(start, end, matched int) float64 {
	return 1/float64(1+start) + 1/float64(1+end) + matchedCharBonus*float64(matched)
}

type wordMatch struct {
	consumed []int
	end      int
}

// matchWord tries a full-word match beginning at each candidate start token
// from the one covering cursor onward, returning the first success. First
// successful start wins, which yields the left-most match.
func (t *Target) matchWord(word []rune, cursor int) (wordMatch, bool) {
	if len(word) == 0 {
		return wordMatch{end: cursor}, true
	}
	if cursor >= len(t.src) {
		return wordMatch{}, false
	}
	for s := t.tokIdx[cursor]; s < len(t.tokens); s++ {
		start := t.tokStart[s]
		if start < cursor {
			start = cursor
		}
		if m, ok := t.matchFrom(word, start); ok {
			return m, true
		}
	}
	return wordMatch{}, false
}

// matchFrom runs the greedy consume loop from absolute offset start. q is
// the query cursor, c the source cursor. Every step either consumes source
// characters or fails, so the loop always terminates.
func (t *Target) matchFrom(word []rune, start int) (wordMatch, bool) {
	var consumed, gaps []int
	q, c := 0, start

	for q < len(word) {
		if c >= len(t.src) {
			return wordMatch{}, false
		}

		ti := t.tokIdx[c]
		tok := &t.tokens[ti]
		off := c - t.tokStart[ti]
		ch := t.src[c]

		// A separator the query does not ask for is skippable filler. It is
		// recorded as a pending gap and only committed if a real match
		// follows.
		if token.IsSeparator(ch) && ch != word[q] {
			gaps = append(gaps, c)
			c++
			continue
		}

		// Pinyin match at a Chinese token: the longest common prefix between
		// any reading and the remaining query wins, so every heteronym
		// candidate gets a chance. One Chinese character consumes exactly one
		// source offset no matter how many query characters its reading
		// matched.
		if off == 0 && tok.Han {
			if n := longestReadingPrefix(tok.Readings, word[q:]); n > 0 {
				consumed = append(consumed, gaps...)
				consumed = append(consumed, c)
				gaps = gaps[:0]
				q += n
				c++
				continue
			}
		}

		// Single-character match: the literal character anywhere in a token,
		// or an initial at the token start.
		if ch == word[q] || (off == 0 && tok.HasInitial(word[q])) {
			consumed = append(consumed, gaps...)
			consumed = append(consumed, c)
			gaps = gaps[:0]
			q++
			c++
			continue
		}

		// Skip the rest of the token and retry, unless we are at the start
		// of a Chinese token, which is a dead end for this start offset.
		if off > 0 || !tok.Han {
			c = t.tokStart[ti] + tok.Len()
			gaps = gaps[:0]
			continue
		}
		return wordMatch{}, false
	}

	return wordMatch{consumed: consumed, end: c}, true
}

// longestReadingPrefix returns the longest common prefix length between any
// reading and the query remainder.
func longestReadingPrefix(readings []string, rest []rune) int {
	best := 0
	for _, reading := range readings {
		if n := commonPrefixLen(reading, rest); n > best {
			best = n
		}
	}
	return best
}

func commonPrefixLen(reading string, rest []rune) int {
	n := 0
	for _, r := range reading {
		if n >= len(rest) || rest[n] != r {
			break
		}
		n++
	}
	return n
}
