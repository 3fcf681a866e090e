package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestExtractLines(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/schedule.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	lines, err := extractLines(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("extractLines() error: %v", err)
	}

	want := []string{
		"Olympic Men's Schedule",
		"Milano Cortina 2026 & Men's Ice Hockey",
		"13 Feb",
		"FIN vs SWE",
		"12:10",
		"Palalido",
		"FIN vs CZE",
		"16:40",
		"Milano Santa Giulia",
		"17 Feb",
		"SWE vs USA",
		"19:30",
		"Palaisozzoladrome",
		"All times local (Europe/Rome).",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("extractLines() = %#v, want %#v", lines, want)
	}
}

func TestExtractLines_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "adjacent elements stay separate",
			html: `<p><span>13 Feb</span><span>FIN vs SWE</span></p>`,
			want: []string{"13 Feb", "FIN vs SWE"},
		},
		{
			name: "script and style content dropped",
			html: `<html><head><style>body {}</style><script>var x = "SWE vs FIN";</script></head><body><p>10:00</p></body></html>`,
			want: []string{"10:00"},
		},
		{
			name: "noscript content dropped",
			html: `<body><noscript>Enable JavaScript</noscript><p>Palalido</p></body>`,
			want: []string{"Palalido"},
		},
		{
			name: "whitespace trimmed and blank lines dropped",
			html: "<div>\n\t 12:10 \n\n</div>",
			want: []string{"12:10"},
		},
		{
			name: "entities decoded",
			html: `<p>Milano &amp; Cortina</p>`,
			want: []string{"Milano & Cortina"},
		},
		{
			name: "newlines inside one text node split",
			html: "<p>13 Feb\nFIN vs SWE</p>",
			want: []string{"13 Feb", "FIN vs SWE"},
		},
		{
			name: "empty document",
			html: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := extractLines(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("extractLines() error: %v", err)
			}
			if !reflect.DeepEqual(lines, tt.want) {
				t.Errorf("extractLines() = %#v, want %#v", lines, tt.want)
			}
		})
	}
}

func TestFetchLines(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		statusCode  int
		wantError   bool
		wantLines   []string
	}{
		{
			name: "successful fetch",
			htmlContent: `
				<html>
					<body>
						<div><span>13 Feb</span><span>FIN vs SWE</span></div>
						<div><span>12:10</span><span>Palalido</span></div>
					</body>
				</html>
			`,
			statusCode: http.StatusOK,
			wantLines:  []string{"13 Feb", "FIN vs SWE", "12:10", "Palalido"},
		},
		{
			name:        "HTTP error",
			htmlContent: "",
			statusCode:  http.StatusNotFound,
			wantError:   true,
		},
		{
			name:        "empty page",
			htmlContent: `<html><body></body></html>`,
			statusCode:  http.StatusOK,
			wantLines:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "swedenos-ics") {
					t.Errorf("User-Agent = %q, should contain 'swedenos-ics'", userAgent)
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.htmlContent)) // nolint:errcheck
			}))
			defer server.Close()

			s := New()
			s.url = server.URL

			lines, err := s.FetchLines(context.Background())

			if tt.wantError {
				if err == nil {
					t.Error("FetchLines() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("FetchLines() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(lines, tt.wantLines) {
				t.Errorf("FetchLines() = %#v, want %#v", lines, tt.wantLines)
			}
		})
	}
}

func TestFetchLines_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>")) // nolint:errcheck
	}))
	defer server.Close()

	s := New()
	s.url = server.URL

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.FetchLines(ctx); err == nil {
		t.Error("FetchLines() with canceled context expected error, got nil")
	}
}

func TestNew(t *testing.T) {
	s := New()

	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.client == nil {
		t.Error("scraper client is nil")
	}
	if s.url != ScheduleURL {
		t.Errorf("scraper url = %q, want %q", s.url, ScheduleURL)
	}
	if s.render {
		t.Error("plain scraper should not render")
	}
}

func TestNewRendered(t *testing.T) {
	s := NewRendered()

	if !s.render {
		t.Error("rendered scraper should render")
	}
	if s.settle != RenderSettle {
		t.Errorf("settle = %v, want %v", s.settle, RenderSettle)
	}
	if s.url != ScheduleURL {
		t.Errorf("scraper url = %q, want %q", s.url, ScheduleURL)
	}
}
