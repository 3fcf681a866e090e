package scraper

import "strings"

// SampleLines is the built-in schedule used when the live page cannot be
// fetched or comes back without any matchups. It mirrors the page's line
// layout: date marker, matchup, face-off time, venue.
func SampleLines() []string {
	return []string{
		"10 Feb",
		"SWE vs CZE",
		"10:00",
		"Palaisozzoladrome",
		"13 Feb",
		"SWE vs LAT",
		"12:10",
		"Palalido",
		"17 Feb",
		"SWE vs USA",
		"19:30",
		"Palaisozzoladrome",
		"21 Feb",
		"SWE vs KAZ",
		"08:00",
		"Palalido",
	}
}

// HasMatchups reports whether any line looks like a matchup. A fetched page
// without one is an empty shell, since the site builds the schedule with
// scripts a plain GET never runs.
func HasMatchups(lines []string) bool {
	for _, line := range lines {
		if strings.Contains(line, "vs") {
			return true
		}
	}
	return false
}
