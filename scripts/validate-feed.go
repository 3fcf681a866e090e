package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apognu/gocal"

	"github.com/Lundblaad/SwedenOS-ICS/internal/calendar"
	"github.com/Lundblaad/SwedenOS-ICS/internal/schedule"
	"github.com/Lundblaad/SwedenOS-ICS/internal/scraper"
)

func main() {
	cfg, err := schedule.DefaultConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	parser, err := schedule.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building parser: %v\n", err)
		os.Exit(1)
	}

	games := parser.Parse(scraper.SampleLines())
	feed := calendar.Build(games, calendar.DefaultOptions())

	// Write to file (owner read/write only for security)
	filename := "test-swe-hockey.ics"
	if err := os.WriteFile(filename, []byte(feed), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)

	// Re-read the feed the way a subscribed calendar client would.
	start := time.Date(cfg.Year, cfg.Month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	c := gocal.NewParser(strings.NewReader(feed))
	c.Start, c.End = &start, &end
	if err := c.Parse(); err != nil {
		fmt.Fprintf(os.Stderr, "Error re-reading feed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Feed parses back with %d events:\n", len(c.Events))
	for _, e := range c.Events {
		fmt.Printf("  %s  %s", e.Start.Format("2006-01-02 15:04"), e.Summary)
		if e.Location != "" {
			fmt.Printf(" @ %s", e.Location)
		}
		fmt.Println()
	}

	fmt.Println("\nTest it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
}
