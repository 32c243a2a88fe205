// Package postimages drives the postimages.org upload form through a
// browser session and scrapes the resulting album/image links from the
// rendered page.
package postimages

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brogergvhs/postup/internal/browser"
	"github.com/brogergvhs/postup/internal/files"
	"github.com/brogergvhs/postup/internal/links"
	"github.com/brogergvhs/postup/internal/ui"

	"github.com/playwright-community/playwright-go"
)

type Uploader struct {
	session *browser.Session
	log     *ui.Logger

	pollTimeout  time.Duration
	pollInterval time.Duration
}

func NewUploader(session *browser.Session, log *ui.Logger, pollTimeout time.Duration) *Uploader {
	return &Uploader{
		session:      session,
		log:          log,
		pollTimeout:  pollTimeout,
		pollInterval: 2 * time.Second,
	}
}

// Upload submits batch through the upload form and returns the scraped
// result links, deduplicated in first-seen order. Album title is
// best-effort: the form does not always expose a title field.
func (u *Uploader) Upload(ctx context.Context, batch []string, albumTitle string, ph *ui.ProgressHandle) ([]string, error) {
	for _, f := range batch {
		if _, err := os.Stat(f); err != nil {
			return nil, fmt.Errorf("file not found: %s", f)
		}
	}

	page := u.session.Page()
	if _, err := page.Goto(UploadURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return nil, fmt.Errorf("open upload page failed: %w", err)
	}

	loc := GetLocators()
	fileInput, usedSel := u.firstMatching(page, loc.FileInput)
	if fileInput == nil {
		u.log.Errorf("file input not found on %s. Update selectors.\n", UploadURL)
		return nil, fmt.Errorf("file input not found")
	}
	u.log.Debugf("file input matched selector %q\n", usedSel)

	if u.supportsMultiple(fileInput) {
		return u.uploadTogether(ctx, page, fileInput, batch, albumTitle, ph)
	}

	u.log.Infof("File input does NOT support multiple files. Uploading sequentially.\n")
	return u.uploadOneByOne(ctx, page, batch, albumTitle, ph)
}

func (u *Uploader) uploadTogether(ctx context.Context, page playwright.Page, fileInput playwright.Locator, batch []string, albumTitle string, ph *ui.ProgressHandle) ([]string, error) {
	u.log.Infof("Uploading %d files in one request...\n", len(batch))

	if err := fileInput.SetInputFiles(batch); err != nil {
		return nil, fmt.Errorf("set files failed: %w", err)
	}
	if ph != nil {
		ph.Update(len(batch), len(batch), files.TotalSize(batch))
	}

	if albumTitle != "" {
		u.fillAlbumTitle(page, albumTitle)
	}

	if !u.clickUpload(page) {
		u.log.Infof("Upload button not found/clicked; upload may still proceed automatically.\n")
	}

	collected := u.collectResultLinks(ctx, page, u.pollTimeout)
	return links.Dedupe(collected), nil
}

func (u *Uploader) uploadOneByOne(ctx context.Context, page playwright.Page, batch []string, albumTitle string, ph *ui.ProgressHandle) ([]string, error) {
	set := links.NewSet()
	var bytes int64

	for i, f := range batch {
		select {
		case <-ctx.Done():
			return set.URLs(), ctx.Err()
		default:
		}

		u.log.Infof("Uploading %d/%d: %s\n", i+1, len(batch), f)

		loc := GetLocators()
		fileInput, _ := u.firstMatching(page, loc.FileInput)
		if fileInput == nil {
			u.log.Errorf("file input not found on %s. Update selectors.\n", UploadURL)
			break
		}

		if err := fileInput.SetInputFiles(f); err != nil {
			u.log.Errorf("set file %s failed: %v\n", f, err)
			continue
		}

		// title only applies to the first upload of the run
		if albumTitle != "" && i == 0 {
			u.fillAlbumTitle(page, albumTitle)
		}

		u.clickUpload(page)
		set.AddAll(u.collectResultLinks(ctx, page, u.pollTimeout/2)...)

		bytes += files.TotalSize([]string{f})
		if ph != nil {
			ph.Update(i+1, len(batch), bytes)
		}

		// navigate back so the next file gets a fresh form
		if _, err := page.Goto(UploadURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		}); err != nil {
			return set.URLs(), fmt.Errorf("return to upload page failed: %w", err)
		}
	}

	return set.URLs(), nil
}

// firstMatching probes selectors in order and returns the first locator
// present on the page. Lookup failures are swallowed, probing continues.
func (u *Uploader) firstMatching(page playwright.Page, selectors []string) (playwright.Locator, string) {
	for _, sel := range selectors {
		l := page.Locator(sel).First()
		if count, err := l.Count(); err == nil && count > 0 {
			return l, sel
		}
	}

	return nil, ""
}

func (u *Uploader) supportsMultiple(fileInput playwright.Locator) bool {
	res, err := fileInput.Evaluate("el => !!el.multiple", nil)
	if err != nil {
		u.log.Debugf("multiple-files probe failed: %v\n", err)
		return false
	}

	multiple, ok := res.(bool)
	return ok && multiple
}

func (u *Uploader) fillAlbumTitle(page playwright.Page, title string) {
	loc := GetLocators()
	for _, sel := range loc.AlbumInput {
		l := page.Locator(sel).First()
		count, err := l.Count()
		if err != nil || count == 0 {
			continue
		}

		if err := l.Fill(title); err != nil {
			u.log.Debugf("fill album title via %q failed: %v\n", sel, err)
			continue
		}

		u.log.Debugf("album title set via %q\n", sel)
		return
	}

	u.log.Debugf("no album title field found\n")
}

func (u *Uploader) clickUpload(page playwright.Page) bool {
	loc := GetLocators()
	for _, sel := range loc.UploadButton {
		l := page.Locator(sel).First()
		count, err := l.Count()
		if err != nil || count == 0 {
			continue
		}

		if err := l.Click(); err != nil {
			u.log.Debugf("click %q failed: %v\n", sel, err)
			continue
		}

		return true
	}

	// some variants of the form submit on Enter
	if err := page.Keyboard().Press("Enter"); err == nil {
		return true
	}

	return false
}
