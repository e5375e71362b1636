package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/hashicorp/go-cleanhttp"

	"benchkit/internal/domain/record"
	"benchkit/internal/domain/sequence"
)

var (
	shareLinkPattern = regexp.MustCompile(`https://benchling\.com/s/(\w+)`)
	seqIDPattern     = regexp.MustCompile(`seq_\w+`)

	// Edit URLs carry the sequence id in the path itself:
	// benchling.com/{user}/f/{folderid}-{foldername}/seq-{seqid}-{seqname}
	editURLPattern = regexp.MustCompile(`benchling\.com/(\w+)/f/(\w+)-(\w+)/seq-(\w+)-([a-zA-Z0-9_-]+)`)
)

// SequenceFromShareLink resolves a share link to the full sequence
// record. The link page is scraped for a sequence id; when that fails
// the id is recovered from the URL pattern of an edit link.
func (a *App) SequenceFromShareLink(ctx context.Context, link string) (*sequence.Sequence, error) {
	id, err := a.sequenceIDFromShareLink(ctx, link)
	if err != nil {
		return nil, err
	}
	return a.Sequences.Find(ctx, id)
}

func (a *App) sequenceIDFromShareLink(ctx context.Context, link string) (string, error) {
	id, scrapeErr := a.scrapeShareLink(ctx, link)
	if scrapeErr == nil {
		return id, nil
	}

	if parsed, ok := parseEditURL(link); ok {
		return parsed, nil
	}
	return "", fmt.Errorf("could not find a sequence id in share link body or url: %w", scrapeErr)
}

// scrapeShareLink verifies the link format, fetches the page and scans
// the body for sequence ids. Exactly one distinct id must appear.
func (a *App) scrapeShareLink(ctx context.Context, link string) (string, error) {
	if err := verifyShareLink(link); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("build share link request: %w", err)
	}

	resp, err := cleanhttp.DefaultClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("open share link: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read share link page: %w", err)
	}

	return extractSequenceID(string(body))
}

// verifyShareLink checks that a share link is in the expected format.
func verifyShareLink(link string) error {
	if !shareLinkPattern.MatchString(link) {
		return fmt.Errorf("share link incorrectly formatted, expected %q, found %q: %w",
			`https://benchling.com/s/<token>`, link, record.ErrValidation)
	}
	return nil
}

// extractSequenceID scans page text for sequence ids and requires
// exactly one distinct match.
func extractSequenceID(body string) (string, error) {
	matches := seqIDPattern.FindAllString(body, -1)
	if len(matches) == 0 {
		return "", fmt.Errorf("no sequence ids found in share link page: %w", record.ErrValidation)
	}

	unique := map[string]bool{}
	for _, m := range matches {
		unique[m] = true
	}
	if len(unique) > 1 {
		return "", fmt.Errorf("more than one possible sequence id found in share link page: %w", record.ErrValidation)
	}
	return matches[0], nil
}

// parseEditURL recovers the sequence id from an edit URL path.
func parseEditURL(link string) (string, bool) {
	groups := editURLPattern.FindStringSubmatch(link)
	if groups == nil {
		return "", false
	}
	return "seq_" + groups[4], true
}
