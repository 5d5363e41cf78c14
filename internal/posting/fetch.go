// Package posting builds weighted per-role keyword tables from job posting
// text, used by the technical-accuracy scoring heuristic.
package posting

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout is the HTTP request timeout for posting fetches.
const DefaultTimeout = 30 * time.Second

const userAgent = "Mozilla/5.0 (compatible; InterviewCoach/1.0)"

// minContentLength is the minimum extracted text length to consider a plain
// HTTP fetch successful. Shorter content suggests a JavaScript-rendered page.
const minContentLength = 500

// FetchText retrieves a job posting URL and returns its visible text.
// If the plain HTTP fetch yields too little text and useBrowser is set, the
// page is re-fetched through a headless browser.
func FetchText(ctx context.Context, url string, useBrowser bool) (string, error) {
	html, err := fetchHTML(ctx, url)
	if err != nil {
		return "", err
	}

	text, err := extractText(html)
	if err != nil {
		return "", err
	}

	if useBrowser && len(strings.TrimSpace(text)) < minContentLength {
		rendered, err := renderWithBrowser(ctx, url, DefaultTimeout)
		if err != nil {
			return "", fmt.Errorf("browser fallback failed for %s: %w", url, err)
		}
		text, err = extractText(rendered)
		if err != nil {
			return "", err
		}
	}

	return text, nil
}

// FetchAll retrieves several posting URLs concurrently, returning the texts
// in input order. Any single failure fails the whole batch.
func FetchAll(ctx context.Context, urls []string, useBrowser bool) ([]string, error) {
	texts := make([]string, len(urls))

	g, gCtx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			text, err := FetchText(gCtx, url, useBrowser)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

func fetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: DefaultTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body of %s: %w", url, err)
	}
	return string(body), nil
}

// extractText strips scripts, styles, and navigation chrome and returns the
// document's visible text.
func extractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, nav, header, footer, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
		sb.WriteString(" ")
	})

	return strings.Join(strings.Fields(sb.String()), " "), nil
}

// renderWithBrowser loads a page in a headless browser and returns the
// rendered HTML. Requires Chrome/Chromium on the host.
func renderWithBrowser(ctx context.Context, url string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", url, err)
	}
	return html, nil
}
