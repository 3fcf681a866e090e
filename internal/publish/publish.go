package publish

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath is where the generated feed lands, relative to the working
// directory. GitHub Pages serves the docs/ directory as the site root.
const DefaultPath = "docs/swe-men-hockey.ics"

// Write saves the calendar document to path, creating missing parent
// directories and overwriting any previous feed. A leading ~/ expands to the
// user's home directory.
func Write(path, data string) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}

	return nil
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
