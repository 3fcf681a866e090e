package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lundblaad/SwedenOS-ICS/internal/calendar"
	"github.com/Lundblaad/SwedenOS-ICS/internal/logger"
	"github.com/Lundblaad/SwedenOS-ICS/internal/publish"
	"github.com/Lundblaad/SwedenOS-ICS/internal/schedule"
	"github.com/Lundblaad/SwedenOS-ICS/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagOut        string
	flagFormat     string
	flagOffline    bool
	flagRender     bool
	flagNoFallback bool
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swedenos-ics",
		Short: "Generate the Sweden men's ice hockey Olympic calendar feed",
		Long: `Generates an iCalendar feed of Sweden's men's ice hockey games at the
Milano-Cortina 2026 Olympics. The schedule page is fetched once, scanned for
games involving SWE, and the result is written as an .ics file ready to serve
from GitHub Pages. Running with no arguments refreshes the default feed.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	// Define flags
	cmd.Flags().StringVar(&flagOut, "out", publish.DefaultPath, "Output path for the .ics feed")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Run summary format: text or json")
	cmd.Flags().BoolVar(&flagOffline, "offline", false, "Skip the network and build from the built-in sample schedule")
	cmd.Flags().BoolVar(&flagRender, "render", false, "Load the page through a headless browser before scanning")
	cmd.Flags().BoolVar(&flagNoFallback, "no-fallback", false, "Fail on fetch errors instead of falling back to the sample schedule")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runGenerate is the main command logic
func runGenerate(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := schedule.DefaultConfig()
	if err != nil {
		return fmt.Errorf("loading schedule config: %w", err)
	}

	parser, err := schedule.New(cfg)
	if err != nil {
		return fmt.Errorf("building parser: %w", err)
	}

	lines, source, err := fetchLines(cmd.Context())
	if err != nil {
		return err
	}

	parseStart := time.Now()
	games := parser.Parse(lines)
	logger.RecordTiming("parse", time.Since(parseStart))
	logger.AddCounter("games.parsed", int64(len(games)))

	logger.Info("Parsed schedule", logger.Fields{
		"lines":  len(lines),
		"games":  len(games),
		"source": string(source),
	})
	if len(games) == 0 {
		// Zero games is not an error; subscribers get a valid empty feed.
		logger.Warn("No games found, publishing an empty calendar", logger.Fields{
			"source": string(source),
		})
	}

	serializeStart := time.Now()
	feed := calendar.Build(games, calendar.DefaultOptions())
	logger.RecordTiming("serialize", time.Since(serializeStart))

	publishStart := time.Now()
	if err := publish.Write(flagOut, feed); err != nil {
		return fmt.Errorf("publishing feed: %w", err)
	}
	logger.RecordTiming("publish", time.Since(publishStart))

	logger.Info("Published feed", logger.Fields{
		"path":  flagOut,
		"bytes": len(feed),
	})

	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Games:       games,
		GameCount:   len(games),
		OutputPath:  flagOut,
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Debug("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	return nil
}

// fetchLines obtains the schedule lines and reports where they came from.
// The live page is attempted exactly once; when it is unreachable or carries
// no matchups, the built-in sample takes its place unless --no-fallback is
// set. --offline skips the network entirely.
func fetchLines(ctx context.Context) ([]string, Source, error) {
	if flagOffline {
		logger.Info("Offline mode, using sample schedule", nil)
		logger.IncrCounter("fetch.sample")
		return scraper.SampleLines(), SourceSample, nil
	}

	sc := scraper.New()
	if flagRender {
		sc = scraper.NewRendered()
	}

	logger.Debug("Fetching schedule page", logger.Fields{
		"url":    scraper.ScheduleURL,
		"render": flagRender,
	})

	fetchStart := time.Now()
	lines, err := sc.FetchLines(ctx)
	logger.RecordTiming("fetch", time.Since(fetchStart))

	if err != nil {
		if flagNoFallback {
			return nil, "", fmt.Errorf("fetching schedule: %w", err)
		}
		logger.Warn("Fetch failed, using sample schedule", logger.Fields{"error": err.Error()})
		logger.IncrCounter("fetch.sample")
		return scraper.SampleLines(), SourceSample, nil
	}

	if !scraper.HasMatchups(lines) {
		if flagNoFallback {
			// A reachable page with no matchups parses to zero games, which
			// still publishes as a valid empty feed.
			logger.Warn("Fetched page has no matchups", logger.Fields{"lines": len(lines)})
			logger.IncrCounter("fetch.live")
			return lines, SourceLive, nil
		}
		logger.Warn("Fetched page has no matchups, using sample schedule", logger.Fields{"lines": len(lines)})
		logger.IncrCounter("fetch.sample")
		return scraper.SampleLines(), SourceSample, nil
	}

	logger.IncrCounter("fetch.live")
	return lines, SourceLive, nil
}

// Execute runs the CLI under ctx, which cancels any in-flight fetch.
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
