// Package hanfuzz provides pinyin-aware fuzzy search.
//
// This file implements a fluent query API on top of Index.Search.
package hanfuzz

import "context"

// Query creates a fluent query builder.
//
// Example:
//
//	results, err := idx.Query("wxj").
//	    Limit(10).
//	    Execute(ctx)
func (idx *Index[T]) Query(query string) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		idx:   idx,
		query: query,
	}
}

// QueryBuilder is a fluent builder for constructing search queries.
type QueryBuilder[T comparable] struct {
	idx       *Index[T]
	query     string
	limit     int
	minWeight float64
}

// Limit caps the number of results returned. Zero means unlimited.
func (qb *QueryBuilder[T]) Limit(n int) *QueryBuilder[T] {
	qb.limit = n
	return qb
}

// MinWeight drops results scoring below w.
func (qb *QueryBuilder[T]) MinWeight(w float64) *QueryBuilder[T] {
	qb.minWeight = w
	return qb
}

// Execute runs the search and returns the ranked results.
func (qb *QueryBuilder[T]) Execute(ctx context.Context) ([]SearchResult[T], error) {
	return qb.idx.search(ctx, qb.query, qb.limit, qb.minWeight)
}

// First returns only the best result, or ErrNotFound if nothing matches.
func (qb *QueryBuilder[T]) First(ctx context.Context) (SearchResult[T], error) {
	qb.limit = 1
	results, err := qb.Execute(ctx)
	if err != nil {
		return SearchResult[T]{}, err
	}
	if len(results) == 0 {
		return SearchResult[T]{}, ErrNotFound
	}
	return results[0], nil
}

// Count executes the search and returns the number of results.
func (qb *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	results, err := qb.Execute(ctx)
	if err != nil {
		return 0, err
	}
	return len(results), nil
}

// Exists checks if at least one result matches the search.
func (qb *QueryBuilder[T]) Exists(ctx context.Context) (bool, error) {
	qb.limit = 1
	results, err := qb.Execute(ctx)
	if err != nil {
		return false, err
	}
	return len(results) > 0, nil
}
