// Package browser owns the Playwright session used to drive the upload
// form. The tool runs one browser, one context, one page, strictly
// sequentially.
package browser

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

type Options struct {
	Headful   bool
	UserAgent string
}

type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
}

func NewSession(opts Options) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright failed: %w", err)
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(!opts.Headful),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--window-size=1920,1080",
			"--disable-infobars",
			"--disable-extensions",
			"--disable-popup-blocking",
		},
	}

	b, err := pw.Chromium.Launch(launchOptions)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch browser failed: %w", err)
	}

	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1920, Height: 1080},
		Locale:   playwright.String("en-GB"),
	}
	if opts.UserAgent != "" {
		contextOptions.UserAgent = playwright.String(opts.UserAgent)
	}

	ctx, err := b.NewContext(contextOptions)
	if err != nil {
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("create context failed: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		_ = ctx.Close()
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("create page failed: %w", err)
	}

	return &Session{
		pw:      pw,
		browser: b,
		context: ctx,
		page:    page,
	}, nil
}

func (s *Session) Page() playwright.Page {
	return s.page
}

// Close tears down page, context, browser and the Playwright driver in
// order. Safe to call more than once.
func (s *Session) Close() {
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}
	if s.context != nil {
		_ = s.context.Close()
		s.context = nil
	}
	if s.browser != nil {
		_ = s.browser.Close()
		s.browser = nil
	}
	if s.pw != nil {
		_ = s.pw.Stop()
		s.pw = nil
	}
}

// Screenshot saves a full-page capture into dir, named with a
// timestamp. Debug aid for headless runs.
func (s *Session) Screenshot(dir, name string) (string, error) {
	if s.page == nil {
		return "", fmt.Errorf("session closed")
	}

	path := filepath.Join(dir, fmt.Sprintf("screenshot_%s_%s.png", time.Now().Format("20060102_150405"), name))
	_, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return "", err
	}

	return path, nil
}
