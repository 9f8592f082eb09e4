package services

import (
	"context"
	"errors"
	"time"

	"contentpilot/errs"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"
)

// DefaultUserAgent is a realistic Chrome user agent. Social platforms serve a
// stripped login wall to obvious bots.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ScrapeResult is the raw text pulled from one public profile page.
type ScrapeResult struct {
	URL     string
	Title   string
	Content string
}

// Scraper fetches public page content for topic and style analysis.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)
}

// ChromeScraper drives a headless Chrome instance. Profile pages are rendered
// client-side on every supported platform, so plain HTTP fetches return empty
// shells.
type ChromeScraper struct {
	headless bool
	timeout  time.Duration
}

func NewChromeScraper(headless bool, timeout time.Duration) *ChromeScraper {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &ChromeScraper{headless: headless, timeout: timeout}
}

func (s *ChromeScraper) Scrape(ctx context.Context, url string) (*ScrapeResult, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.headless),
		// Prevent navigator.webdriver = true detection
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(DefaultUserAgent),
		chromedp.WindowSize(1920, 1080),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
	)
	if s.headless {
		opts = append(opts, chromedp.Flag("disable-gpu", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	browserCtx, timeoutCancel := context.WithTimeout(browserCtx, s.timeout)
	defer timeoutCancel()

	var title, content string
	err := chromedp.Run(browserCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": "en-US,en;q=0.9"}),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		// Scroll a few times so lazily loaded posts render
		scrollToLoad(3),
		chromedp.Title(&title),
		chromedp.Text("body", &content, chromedp.ByQuery),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.NewScrapeTimeoutError(url)
		}
		return nil, errs.NewScrapeError(url, err)
	}

	log.Debug().Str("url", url).Int("chars", len(content)).Msg("Scraped page content")

	return &ScrapeResult{URL: url, Title: title, Content: content}, nil
}

func scrollToLoad(times int) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		for i := 0; i < times; i++ {
			if err := chromedp.Run(ctx,
				chromedp.Evaluate("window.scrollTo(0, document.body.scrollHeight)", nil),
				chromedp.Sleep(800*time.Millisecond),
			); err != nil {
				return err
			}
		}
		return nil
	})
}
