// Package aggregate implements the concurrent ingestion pipeline: it walks a
// feed list, fans out one worker per feed and one worker per article, and
// populates the inverted index the query loop searches afterwards.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"news-search/internal/domain/entity"
	"news-search/internal/index"
	"news-search/internal/limiter"
	"news-search/internal/observability/logging"
	"news-search/internal/observability/metrics"
	"news-search/internal/observability/tracing"
	"news-search/internal/progress"
)

// FeedRef is one entry of the feed list: a feed URL and its display title.
type FeedRef struct {
	Title string
	URL   string
}

// FeedListParser fetches and parses the feed list document into feed references.
type FeedListParser interface {
	ParseFeedList(ctx context.Context, uri string) ([]FeedRef, error)
}

// FeedParser fetches and parses one feed into article records.
type FeedParser interface {
	ParseFeed(ctx context.Context, feedURL string) ([]entity.Article, error)
}

// Tokenizer fetches one article's HTML body and returns its normalized tokens.
type Tokenizer interface {
	Tokenize(ctx context.Context, articleURL string) ([]string, error)
}

// Service orchestrates one ingestion run.
//
// Control flow is fan-out/join at two tiers: the driver launches feed
// workers, each feed worker launches article workers and awaits them, and
// the driver awaits all feed workers before handing the index to the caller.
// Three counting gates bound the fan-out: the feed gate (held only while a
// feed is being parsed), the thread gate (held for the whole of an article
// worker), and one per-origin limiter slot per in-flight article, acquired
// by the parent feed worker and released by the article worker it is handed
// to. Any feed or article may fail without aborting the run; only a feed
// list failure is fatal.
type Service struct {
	feedList  FeedListParser
	feeds     FeedParser
	tokenizer Tokenizer

	idx        *index.Index
	registry   *limiter.Registry
	feedGate   *semaphore.Weighted
	threadGate *semaphore.Weighted

	printer *progress.Printer
	logger  *slog.Logger
}

// NewService wires an ingestion service from its collaborators. The config
// must already be validated; the service owns the index, the gates and the
// limiter registry for the lifetime of the run.
func NewService(
	cfg Config,
	feedList FeedListParser,
	feeds FeedParser,
	tokenizer Tokenizer,
	printer *progress.Printer,
	logger *slog.Logger,
) *Service {
	return &Service{
		feedList:   feedList,
		feeds:      feeds,
		tokenizer:  tokenizer,
		idx:        index.New(),
		registry:   limiter.NewRegistry(int64(cfg.MaxPerServer)),
		feedGate:   semaphore.NewWeighted(int64(cfg.MaxFeeds)),
		threadGate: semaphore.NewWeighted(int64(cfg.MaxThreads)),
		printer:    printer,
		logger:     logger,
	}
}

// Run ingests everything reachable from the feed list at uri and returns the
// populated index once all workers have finished. The returned error is
// non-nil only when the feed list itself could not be fetched; partial
// failures below that tier leave a partial index and a nil error.
func (s *Service) Run(ctx context.Context, uri string) (*index.Index, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "aggregate.run",
		trace.WithAttributes(attribute.String("feedlist.uri", uri)))
	defer span.End()

	// Workers pick the run's logger back up via logging.FromContext.
	ctx = logging.WithLogger(ctx, s.logger)

	start := time.Now()

	refs, err := s.feedList.ParseFeedList(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedListFetch, err)
	}
	s.logger.Info("feed list parsed",
		slog.String("uri", uri),
		slog.Int("feeds", len(refs)))

	var wg sync.WaitGroup
	for _, ref := range refs {
		if err := s.feedGate.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go s.processFeed(ctx, ref, &wg)
	}
	wg.Wait()

	s.logger.Info("ingestion completed",
		slog.Int("feeds", len(refs)),
		slog.Int("origins", s.registry.Size()),
		slog.Int("tokens", s.idx.Tokens()),
		slog.Duration("duration", time.Since(start)))

	return s.idx, nil
}

// processFeed is the feed worker. It enters holding one feed gate slot and
// releases it as soon as the feed's article list is known, so the next feed
// can start parsing while this feed's articles are still downloading.
func (s *Service) processFeed(ctx context.Context, ref FeedRef, wg *sync.WaitGroup) {
	defer wg.Done()

	releaseGate := sync.OnceFunc(func() { s.feedGate.Release(1) })
	defer releaseGate()

	ctx, span := tracing.GetTracer().Start(ctx, "aggregate.feed",
		trace.WithAttributes(attribute.String("feed.url", ref.URL)))
	defer span.End()

	s.printer.Line("Begin full download of feed \"%s\"", ref.URL)

	logger := logging.FromContext(ctx)

	articles, err := s.feeds.ParseFeed(ctx, ref.URL)
	if err != nil {
		logger.Warn("failed to parse feed",
			slog.String("feed_url", ref.URL),
			slog.String("feed_title", ref.Title),
			slog.Any("error", err))
		metrics.RecordFeedCrawled(false)
		return
	}
	metrics.RecordFeedCrawled(true)

	releaseGate()

	var children sync.WaitGroup
	for _, art := range articles {
		origin, err := limiter.Origin(art.URL)
		if err != nil {
			logger.Warn("skipping article with unusable url",
				slog.String("url", art.URL),
				slog.Any("error", err))
			continue
		}

		// The slot is acquired here, in the parent, so the number of
		// launched-but-waiting article workers is bounded per origin.
		// From launch on, the child owns the slot.
		handle, err := s.registry.Acquire(ctx, origin)
		if err != nil {
			break
		}
		children.Add(1)
		go s.processArticle(ctx, art, handle, &children)
	}
	children.Wait()

	s.printer.Line("End full download of feed \"%s\"", ref.URL)
}

// processArticle is the article worker. It owns the origin limiter slot it
// was handed and one thread gate slot for its whole lifetime; both are
// released on every exit path, including fetch failures.
func (s *Service) processArticle(ctx context.Context, art entity.Article, handle *limiter.Handle, wg *sync.WaitGroup) {
	defer wg.Done()
	defer handle.Release()

	if err := s.threadGate.Acquire(ctx, 1); err != nil {
		return
	}
	defer s.threadGate.Release(1)

	metrics.ActiveArticleWorkers.Inc()
	defer metrics.ActiveArticleWorkers.Dec()

	ctx, span := tracing.GetTracer().Start(ctx, "aggregate.article",
		trace.WithAttributes(attribute.String("article.url", art.URL)))
	defer span.End()

	s.printer.Article(art.Title, art.URL)

	start := time.Now()
	tokens, err := s.tokenizer.Tokenize(ctx, art.URL)
	metrics.RecordArticleFetchDuration(time.Since(start))
	if err != nil {
		logging.FromContext(ctx).Warn("failed to fetch article",
			slog.String("url", art.URL),
			slog.String("title", art.Title),
			slog.Any("error", err))
		metrics.RecordArticleIndexed(false)
		return
	}

	s.idx.Add(art, tokens)
	metrics.RecordArticleIndexed(true)
	metrics.RecordTokensIndexed(len(tokens))
}
