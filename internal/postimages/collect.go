package postimages

import (
	"context"
	"time"

	"github.com/brogergvhs/postup/internal/links"

	"github.com/playwright-community/playwright-go"
)

// collectResultLinks polls the rendered page for result anchors until
// an album link appears or timeout elapses. Returns whatever was found,
// possibly nothing. An album anchor short-circuits the wait and is
// moved to the front of the result.
func (u *Uploader) collectResultLinks(ctx context.Context, page playwright.Page, timeout time.Duration) []string {
	loc := GetLocators()
	set := links.NewSet()
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return set.URLs()
		default:
		}

		u.sweepAnchors(page, set)

		album := page.Locator(loc.AlbumAnchor).First()
		if count, err := album.Count(); err == nil && count > 0 {
			if href, err := album.GetAttribute("href"); err == nil && href != "" {
				set.Add(href)
				return links.AlbumFirst(set.URLs())
			}
		}

		if set.Len() > 0 {
			// links are appearing; give slower anchors a moment, then
			// take a final sweep and stop
			u.wait(ctx, u.pollInterval)
			u.sweepAnchors(page, set)
			return set.URLs()
		}

		if !u.wait(ctx, u.pollInterval) {
			return set.URLs()
		}
	}

	return set.URLs()
}

// sweepAnchors adds every result-looking anchor currently in the DOM.
// Attribute lookups are best-effort.
func (u *Uploader) sweepAnchors(page playwright.Page, set *links.Set) {
	loc := GetLocators()

	anchors, err := page.Locator(loc.ResultAnchors).All()
	if err != nil {
		u.log.Debugf("anchor sweep failed: %v\n", err)
		return
	}

	for _, a := range anchors {
		href, err := a.GetAttribute("href")
		if err != nil || href == "" {
			continue
		}
		if links.IsResult(href) {
			set.Add(href)
		}
	}
}

func (u *Uploader) wait(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
