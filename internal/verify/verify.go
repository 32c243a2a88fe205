// Package verify checks scraped links over plain HTTP, without a
// browser: it fetches the page and reports whether it still looks like
// a live album or image page.
package verify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/postup/internal/links"
	"github.com/brogergvhs/postup/internal/util"
)

type Report struct {
	URL        string
	StatusCode int
	Title      string
	IsAlbum    bool
	ImageCount int
}

func Check(ctx context.Context, client *http.Client, target string) (*Report, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := util.DoWithRetry(client, req, 3, 500*time.Millisecond)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return &Report{URL: target, StatusCode: resp.StatusCode}, nil
	}

	report, err := inspect(resp.Body, target)
	if err != nil {
		return nil, err
	}

	report.StatusCode = resp.StatusCode
	return report, nil
}

// inspect parses the page body and counts hosted images. Split from
// Check so it can run against captured HTML.
func inspect(body io.Reader, target string) (*Report, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse page failed: %w", err)
	}

	report := &Report{
		URL:     target,
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		IsAlbum: links.IsAlbum(target),
	}

	seen := map[string]bool{}
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || !links.IsResult(src) || seen[src] {
			return
		}
		seen[src] = true
		report.ImageCount++
	})

	return report, nil
}

func (r *Report) Summary() string {
	if r.StatusCode != http.StatusOK {
		return fmt.Sprintf("%s -> HTTP %d (dead or blocked)", r.URL, r.StatusCode)
	}

	kind := "image page"
	if r.IsAlbum {
		kind = "album"
	}

	return fmt.Sprintf("%s -> %s, %d hosted image(s), title %q", r.URL, kind, r.ImageCount, r.Title)
}
