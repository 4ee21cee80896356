package hanfuzz

import (
	"context"
	"runtime"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hanfuzz/dict"
	"github.com/hupe1980/hanfuzz/match"
	"github.com/hupe1980/hanfuzz/token"
)

// Tokenize segments text into a token sequence using dictionary d.
// A nil dictionary degrades to literal-only tokens.
func Tokenize(text string, d dict.Dict) []token.Token {
	return token.NewTokenizer(d).Tokenize(text)
}

// SearchResult is one ranked match for a query.
type SearchResult[T comparable] struct {
	// Item is the matched source item.
	Item T

	// Text is the indexed text of the item.
	Text string

	// Weight ranks the result; higher is better. Only relative ordering is
	// guaranteed.
	Weight float64

	// Highlight has one entry per rune of Text, true where that character
	// participated in the match.
	Highlight []bool
}

// Span is a contiguous highlighted range of rune offsets, end exclusive.
type Span struct {
	Start int
	End   int
}

// Spans converts the highlight mask into contiguous spans, for renderers
// that mark up matched regions rather than single characters.
func (r SearchResult[T]) Spans() []Span {
	var spans []Span
	start := -1
	for i, on := range r.Highlight {
		if on && start == -1 {
			start = i
		}
		if !on && start != -1 {
			spans = append(spans, Span{Start: start, End: i})
			start = -1
		}
	}
	if start != -1 {
		spans = append(spans, Span{Start: start, End: len(r.Highlight)})
	}
	return spans
}

type entry[T comparable] struct {
	item   T
	text   string
	tokens []token.Token
	target *match.Target
}

// Index is an append-only, deduplicated collection of tokenized items with
// pinyin-aware fuzzy search.
//
// Entries are immutable after creation and shared read-only across searches,
// so any number of concurrent Search calls is safe. Append must not run
// concurrently with an in-flight Search on the same Index (single-writer,
// many-reader discipline; the Index holds no internal lock).
type Index[T comparable] struct {
	opts      options
	tokenizer *token.Tokenizer
	selector  func(T) string
	entries   []*entry[T]
	present   map[T]struct{}
}

// New builds an Index over items, indexing the text chosen by selector.
// The selector must be deterministic for a given item. Items whose selected
// text is empty are skipped.
//
//	idx, _ := hanfuzz.New(apps, func(a App) string { return a.Name })
//	results := idx.Search("wx")
func New[T comparable](items []T, selector func(T) string, optFns ...Option) (*Index[T], error) {
	if selector == nil {
		return nil, ErrNilSelector
	}

	o := applyOptions(optFns)

	d := o.dict
	if d == nil {
		d = dict.New(func(do *dict.Options) { do.Tones = o.tones })
	}

	idx := &Index[T]{
		opts:      o,
		tokenizer: token.NewTokenizer(d),
		selector:  selector,
		present:   make(map[T]struct{}),
	}
	idx.Append(items...)

	return idx, nil
}

// Append adds items not already present. Duplicates and items with empty
// selected text are silently ignored, never updated. It returns the number
// of items actually added.
func (idx *Index[T]) Append(items ...T) int {
	start := time.Now()

	added := 0
	for _, item := range items {
		if _, ok := idx.present[item]; ok {
			continue
		}
		text := idx.selector(item)
		if text == "" {
			continue
		}
		tokens := idx.tokenizer.Tokenize(text)
		idx.entries = append(idx.entries, &entry[T]{
			item:   item,
			text:   text,
			tokens: tokens,
			target: match.NewTarget(tokens),
		})
		idx.present[item] = struct{}{}
		added++
	}

	idx.opts.metricsCollector.RecordAppend(added, len(items)-added, time.Since(start))
	idx.opts.logger.LogAppend(added, len(items)-added)

	return added
}

// Len returns the number of cached entries.
func (idx *Index[T]) Len() int { return len(idx.entries) }

// Search runs query against every cached entry and returns ranked results,
// best first. A blank query yields no results. Use Query for limits,
// thresholds, and context support.
func (idx *Index[T]) Search(query string) []SearchResult[T] {
	results, _ := idx.search(context.Background(), query, 0, 0)
	return results
}

// search evaluates every entry in parallel, then sorts once. Entries are
// written into per-entry slots so workers never contend; the only guaranteed
// order is the final sort.
func (idx *Index[T]) search(ctx context.Context, query string, limit int, minWeight float64) ([]SearchResult[T], error) {
	start := time.Now()

	words := splitQuery(query)
	if len(words) == 0 {
		idx.opts.metricsCollector.RecordSearch(0, time.Since(start))
		return nil, nil
	}

	type slot struct {
		res match.Result
		ok  bool
	}
	slots := make([]slot, len(idx.entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(idx.maxConcurrency())
	for i, e := range idx.entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if r, ok := e.target.Match(words); ok {
				slots[i] = slot{res: r, ok: true}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		idx.opts.logger.LogSearch(query, 0, time.Since(start), err)
		return nil, err
	}

	var results []SearchResult[T]
	for i, s := range slots {
		if !s.ok || s.res.Weight < minWeight {
			continue
		}
		e := idx.entries[i]
		mask := make([]bool, e.target.Len())
		for _, off := range s.res.Consumed {
			mask[off] = true
		}
		results = append(results, SearchResult[T]{
			Item:      e.item,
			Text:      e.text,
			Weight:    s.res.Weight,
			Highlight: mask,
		})
	}

	// Weight descending, ties broken by ascending text length. The stable
	// sort keeps insertion order for full ties, so results are deterministic.
	slices.SortStableFunc(results, func(a, b SearchResult[T]) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return utf8.RuneCountInString(a.Text) - utf8.RuneCountInString(b.Text)
		}
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	idx.opts.metricsCollector.RecordSearch(len(results), time.Since(start))
	idx.opts.logger.LogSearch(query, len(results), time.Since(start), nil)

	return results, nil
}

func (idx *Index[T]) maxConcurrency() int {
	if idx.opts.maxConcurrency > 0 {
		return idx.opts.maxConcurrency
	}
	return runtime.GOMAXPROCS(0)
}

// splitQuery lower-cases the query, splits on single spaces and discards
// empty segments.
func splitQuery(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var words []string
	for _, w := range strings.Split(query, " ") {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
