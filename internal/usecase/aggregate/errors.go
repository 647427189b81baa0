package aggregate

import "errors"

// ErrFeedListFetch is the single fatal ingestion error: the feed list itself
// could not be fetched or parsed, so no feed worker ever ran. Every other
// failure (a feed, an article) is logged and absorbed.
var ErrFeedListFetch = errors.New("feed list fetch failed")
