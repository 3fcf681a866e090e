package schedule

import "strings"

// DefaultVenueKeywords lists substrings that mark a line as a venue or host
// city on the Milano-Cortina schedule page. "Pala" matches Italian arena
// names such as "Palalido".
func DefaultVenueKeywords() []string {
	return []string{"Milano", "Cortina", "Arena", "Ice", "Forum", "Pala"}
}

// matchesVenue reports whether line looks like a venue or host-city entry.
func matchesVenue(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}
