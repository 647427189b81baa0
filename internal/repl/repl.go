// Package repl implements the interactive query loop that runs once
// ingestion has quiesced. Presentation decisions (result cap, shortening of
// long titles and URLs, singular/plural wording) live here, not in the index.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"news-search/internal/index"
	"news-search/internal/utils/text"
)

// MaxMatchesToShow caps how many postings one query displays.
const MaxMatchesToShow = 15

// maxDisplayLength is the rune budget for a title or URL before shortening.
const maxDisplayLength = 50

// REPL reads queries from in and writes ranked results to out.
type REPL struct {
	idx *index.Index
	in  io.Reader
	out io.Writer
}

// New returns a query loop over the given index.
func New(idx *index.Index, in io.Reader, out io.Writer) *REPL {
	return &REPL{idx: idx, in: in, out: out}
}

// Run loops until the user submits an empty line (or input ends). Each line
// is trimmed and looked up as a single token; results are printed ranked by
// descending frequency, capped at MaxMatchesToShow.
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "Enter a search term [or hit <enter> to quit]: ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			break
		}
		r.showMatches(query)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read query: %w", err)
	}
	fmt.Fprintln(r.out, "All done!")
	return nil
}

func (r *REPL) showMatches(query string) {
	postings := r.idx.Matching(query)
	if len(postings) == 0 {
		fmt.Fprintf(r.out, "None of the articles contain the term \"%s\". Please try again.\n", query)
		return
	}

	if len(postings) > MaxMatchesToShow {
		fmt.Fprintf(r.out, "%d articles contain the term \"%s\". Here are the top %d:\n",
			len(postings), query, MaxMatchesToShow)
		postings = postings[:MaxMatchesToShow]
	} else {
		noun := "articles"
		if len(postings) == 1 {
			noun = "article"
		}
		fmt.Fprintf(r.out, "%d %s contain the term \"%s\":\n", len(postings), noun, query)
	}

	for i, p := range postings {
		times := "times"
		if p.Count == 1 {
			times = "time"
		}
		fmt.Fprintf(r.out, "%2d.) \"%s\" [appears %d %s].\n     \"%s\"\n",
			i+1,
			text.Shorten(p.Article.Title, maxDisplayLength),
			p.Count, times,
			text.Shorten(p.Article.URL, maxDisplayLength))
	}
}
