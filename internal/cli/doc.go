// Package cli implements the command-line interface for swedenos-ics.
//
// The cli package provides the Cobra-based CLI that fetches the Olympic
// schedule page, parses Sweden's games out of it, and writes the iCalendar
// feed. It coordinates the scraper, schedule, calendar, and publish packages
// and reports each run as text or JSON.
package cli
