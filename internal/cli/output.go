package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Lundblaad/SwedenOS-ICS/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Source names where the schedule lines came from.
type Source string

const (
	SourceLive   Source = "live"
	SourceSample Source = "sample"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Source      Source          `json:"source"`
	Games       []schedule.Game `json:"games"`
	GameCount   int             `json:"game_count"`
	OutputPath  string          `json:"output_path"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.GameCount == 0 {
		fmt.Fprintf(w, "No games found; wrote empty calendar to %s\n", result.OutputPath)
		return nil
	}

	for _, g := range result.Games {
		fmt.Fprintf(w, "%s  %s", g.Start.Format("Mon 02 Jan 15:04 MST"), g.Summary)
		if g.Location != "" {
			fmt.Fprintf(w, " @ %s", g.Location)
		}
		fmt.Fprintln(w)
		if verbose {
			fmt.Fprintf(w, "     UID: %s\n", g.UID)
		}
	}

	fmt.Fprintf(w, "\nWrote %d games to %s (source: %s)\n", result.GameCount, result.OutputPath, result.Source)
	return nil
}
