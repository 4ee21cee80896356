// Package hanfuzz provides pinyin-aware fuzzy search over short strings for
// Go, built for autocomplete and launcher-style search boxes.
//
// Hanfuzz tokenizes mixed Chinese/Latin text into phonetic tokens and matches
// queries against full pinyin spellings, first-letter abbreviations, and
// literal characters, returning ranked results with per-character highlight
// masks.
//
// # Quick Start
//
//	apps := []string{"微信", "网易云音乐", "Windows相机"}
//	idx, _ := hanfuzz.New(apps, func(s string) string { return s })
//
//	for _, r := range idx.Search("wxj") {
//	    fmt.Println(r.Item, r.Weight, r.Spans())
//	}
//
// Queries match in several ways at once:
//
//	idx.Search("weixin")  // full pinyin
//	idx.Search("wx")      // first-letter initials
//	idx.Search("winxj")   // mixed literal + pinyin across camel-case splits
//	idx.Search("微信")     // literal Chinese
//
// # Fluent Queries
//
// For limits, weight thresholds, and context support:
//
//	results, err := idx.Query("wx").Limit(5).Execute(ctx)
//	best, err := idx.Query("wx").First(ctx)
//
// # Dictionary
//
// Pronunciations come from github.com/mozillazg/go-pinyin with heteronym
// support, layered with override tables (see the dict package). Unknown
// characters degrade to literal matching, so hanfuzz works even without
// pinyin data:
//
//	idx, _ := hanfuzz.New(items, selector, hanfuzz.WithDict(dict.Empty()))
//
// # Key Features
//
//   - Full-pinyin, abbreviation, and literal matching in one pass
//   - Heteronym (multi-pronunciation) resolution, longest match wins
//   - Camel-case and separator-aware tokenization, lossless per character
//   - Character-level highlight masks for result rendering
//   - Parallel search across entries, deterministic ranking
package hanfuzz
