// Package dict provides the pronunciation dictionary consumed by the
// tokenizer: a per-character lookup from a Chinese ideograph to its candidate
// pinyin readings.
//
// The base data comes from github.com/mozillazg/go-pinyin. Heteronym
// (multi-pronunciation) characters return every reading; callers can layer
// override tables on top for characters whose common readings differ from the
// dictionary order, and load such tables from JSON (optionally gzipped) files.
package dict

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Dict maps a single Chinese character to its candidate pronunciations.
//
// Implementations must be safe for concurrent use; the returned slices are
// shared and must not be mutated by callers.
type Dict interface {
	// Lookup returns the candidate pronunciations for r, or nil when the
	// character is unknown.
	Lookup(r rune) []string
}

// Options configures New.
type Options struct {
	// Tones keeps tonal diacritics on readings (zhōng instead of zhong).
	// The default is tone-insensitive readings, which is what ASCII queries
	// type.
	Tones bool

	// Overrides maps characters to replacement reading lists, consulted
	// before the base pinyin data. nil means DefaultOverrides(). Pass an
	// empty map to disable overrides entirely.
	Overrides map[rune][]string
}

type pinyinDict struct {
	args      pinyin.Args
	overrides map[rune][]string
}

// New creates a Dict backed by go-pinyin with heteronym support.
//
//	d := dict.New()                                      // tone-insensitive
//	d := dict.New(func(o *dict.Options) { o.Tones = true })
func New(optFns ...func(o *Options)) Dict {
	o := Options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Overrides == nil {
		o.Overrides = DefaultOverrides()
	}

	a := pinyin.NewArgs()
	a.Heteronym = true
	if o.Tones {
		a.Style = pinyin.Tone
	} else {
		a.Style = pinyin.Normal
	}

	overrides := make(map[rune][]string, len(o.Overrides))
	for r, readings := range o.Overrides {
		overrides[r] = normalizeReadings(readings, o.Tones)
	}

	return &pinyinDict{args: a, overrides: overrides}
}

func (d *pinyinDict) Lookup(r rune) []string {
	if readings, ok := d.overrides[r]; ok {
		return readings
	}
	return pinyin.SinglePinyin(r, d.args)
}

type emptyDict struct{}

func (emptyDict) Lookup(rune) []string { return nil }

// Empty returns a Dict with no entries. Every character misses, so the
// tokenizer degrades to literal single-character tokens. Use it when no
// pinyin data is wanted or available.
func Empty() Dict { return emptyDict{} }

// DefaultOverrides returns the built-in heteronym table covering common
// polyphonic characters whose everyday reading is ambiguous. The returned map
// is a fresh copy the caller may extend.
func DefaultOverrides() map[rune][]string {
	return map[rune][]string{
		'行': {"hang", "xing"},
		'长': {"chang", "zhang"},
		'重': {"zhong", "chong"},
		'乐': {"le", "yue"},
		'处': {"chu", "cu"},
		'还': {"hai", "huan"},
		'藏': {"cang", "zang"},
		'假': {"jia", "jie"},
		'召': {"zhao", "shao"},
	}
}

// StripTones removes tonal diacritics from a pinyin spelling: zhōng → zhong.
// Unknown input is returned unchanged.
func StripTones(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// normalizeReadings lower-cases readings, strips tones unless tones are kept,
// and deduplicates while preserving order.
func normalizeReadings(readings []string, tones bool) []string {
	out := make([]string, 0, len(readings))
	seen := make(map[string]struct{}, len(readings))
	for _, reading := range readings {
		reading = strings.ToLower(strings.TrimSpace(reading))
		if !tones {
			reading = StripTones(reading)
		}
		if reading == "" {
			continue
		}
		if _, ok := seen[reading]; ok {
			continue
		}
		seen[reading] = struct{}{}
		out = append(out, reading)
	}
	return out
}
