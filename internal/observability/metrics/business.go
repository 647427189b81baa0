package metrics

import "time"

// RecordFeedCrawled records the outcome of a single feed download.
// Status is either "success" or "failure".
func RecordFeedCrawled(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	FeedsCrawledTotal.WithLabelValues(status).Inc()
}

// RecordArticleIndexed records the outcome of one article fetch+tokenize.
func RecordArticleIndexed(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	ArticlesIndexedTotal.WithLabelValues(status).Inc()
}

// RecordTokensIndexed records how many token occurrences one article
// contributed to the index.
func RecordTokensIndexed(count int) {
	TokensIndexedTotal.Add(float64(count))
}

// RecordArticleFetchDuration records the time taken to fetch and tokenize an
// article, successful or not.
func RecordArticleFetchDuration(duration time.Duration) {
	ArticleFetchDuration.Observe(duration.Seconds())
}
