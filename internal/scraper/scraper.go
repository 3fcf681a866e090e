package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	ScheduleURL = "https://www.iihf.com/en/events/2026/olympic-m/schedule"
	UserAgent   = "swedenos-ics/1.0 (github.com/Lundblaad/SwedenOS-ICS)"
	Timeout     = 30 * time.Second

	// RenderSettle is how long the headless browser waits after navigation
	// for scripts to fill in the schedule.
	RenderSettle = 3 * time.Second
)

// Scraper fetches the tournament schedule page and flattens it into the
// visible text lines the parser scans.
type Scraper struct {
	client *http.Client
	url    string
	render bool
	settle time.Duration
}

// New creates a Scraper that fetches the page with a plain HTTP GET.
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: ScheduleURL,
	}
}

// NewRendered creates a Scraper that loads the page through a headless
// browser first, for when the schedule markup is built by scripts.
func NewRendered() *Scraper {
	s := New()
	s.render = true
	s.settle = RenderSettle
	return s
}

// FetchLines retrieves the schedule page and returns its visible text lines.
// Each request is attempted exactly once.
func (s *Scraper) FetchLines(ctx context.Context) ([]string, error) {
	if s.render {
		page, err := fetchRendered(ctx, s.url, s.settle)
		if err != nil {
			return nil, fmt.Errorf("rendering page: %w", err)
		}
		return extractLines(strings.NewReader(page))
	}

	req, err := http.NewRequestWithContext(ctx, "GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return extractLines(resp.Body)
}

// extractLines flattens HTML into trimmed, non-empty visible text lines.
// Every text node ends its own line, so values that adjacent elements render
// side by side ("13 Feb", "FIN vs SWE") stay separate even without whitespace
// between their tags.
func extractLines(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	for _, node := range doc.Selection.Nodes {
		collectText(node, &b)
	}

	raw := strings.Split(b.String(), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteString("\n")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
