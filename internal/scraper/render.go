package scraper

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// fetchRendered loads url in a headless browser, waits settle for scripts to
// populate the page, and returns the resulting markup.
func fetchRendered(ctx context.Context, url string, settle time.Duration) (string, error) {
	browserCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var page string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(settle),
		chromedp.OuterHTML("html", &page, chromedp.ByQuery),
	)
	if err != nil {
		return "", err
	}
	return page, nil
}
