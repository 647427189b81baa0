// Package index implements the in-memory inverted index that maps tokens to
// the articles they occur in. The index is the only piece of state shared by
// every article worker, so all mutation goes through a single write lock.
package index

import (
	"sort"
	"sync"

	"news-search/internal/domain/entity"
	"news-search/internal/utils/text"
)

// Posting records how often one token occurred in one article.
type Posting struct {
	Article entity.Article
	Count   int
}

// Index is a thread-safe inverted index from token to postings.
//
// Writes (Add) may arrive from arbitrary goroutines during ingestion and are
// serialized by an exclusive lock; no token's posting set is ever observed in
// a torn state. The index is append-only: it is never cleared and counts only
// grow. Reads (Matching) take the shared lock, so they are also safe during
// ingestion even though the query loop only starts after ingestion quiesces.
type Index struct {
	mu       sync.RWMutex
	postings map[string]map[entity.Article]int
}

// New returns an empty index ready for concurrent use.
func New() *Index {
	return &Index{
		postings: make(map[string]map[entity.Article]int),
	}
}

// Add merges every token in tokens into the index as occurrences of article.
// Duplicate tokens within one call accumulate, and repeated calls for the
// same article accumulate across calls, so re-fetching an article (e.g. the
// same item listed by two feeds) merges counts rather than corrupting state.
func (x *Index) Add(article entity.Article, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	for _, tok := range tokens {
		counts, ok := x.postings[tok]
		if !ok {
			counts = make(map[entity.Article]int)
			x.postings[tok] = counts
		}
		counts[article]++
	}
}

// Matching returns the posting list for a single query token, normalized the
// same way the tokenizer normalizes article text. Postings are sorted by
// descending count, with ties broken ascending by (title, url) so results
// are deterministic for a given set of writes. An unknown token yields an
// empty slice; a query that normalizes to nothing yields nil.
func (x *Index) Matching(query string) []Posting {
	tok := text.NormalizeToken(query)
	if tok == "" {
		return nil
	}

	x.mu.RLock()
	counts := x.postings[tok]
	result := make([]Posting, 0, len(counts))
	for art, n := range counts {
		result = append(result, Posting{Article: art, Count: n})
	}
	x.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Article.Less(result[j].Article)
	})
	return result
}

// Tokens reports how many distinct tokens the index currently holds.
func (x *Index) Tokens() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.postings)
}
