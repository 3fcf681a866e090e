package calendar

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/Lundblaad/SwedenOS-ICS/internal/schedule"
)

const (
	ProductID    = "-//SWE Men Hockey//GitHub Pages//EN"
	CalendarName = "Sweden – Men's Ice Hockey (OS)"
	CalendarDesc = "Sweden men's Olympic ice hockey games at Milano-Cortina 2026"
	TimezoneID   = "Europe/Rome"

	// PublishedTTL hints subscribed clients to refresh hourly.
	PublishedTTL = "PT1H"
)

// Options control the calendar-level metadata of the generated feed.
type Options struct {
	Name        string
	Description string
	TimezoneID  string
	ProductID   string

	// Now supplies DTSTAMP values; defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the published feed's metadata.
func DefaultOptions() Options {
	return Options{
		Name:        CalendarName,
		Description: CalendarDesc,
		TimezoneID:  TimezoneID,
		ProductID:   ProductID,
		Now:         time.Now,
	}
}

// Build generates the iCalendar document for games, in input order. An empty
// slice still yields a valid calendar with no events, so subscribers see an
// empty feed rather than a broken one.
//
// Event times are written as UTC instants; clients render them in their own
// zone. Text values are escaped per RFC 5545 by the serializer.
func Build(games []schedule.Game, opts Options) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(opts.ProductID)
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName(opts.Name)
	cal.SetXWRCalDesc(opts.Description)
	cal.SetXWRTimezone(opts.TimezoneID)
	cal.SetXPublishedTTL(PublishedTTL)

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	stamp := now().UTC()

	for _, g := range games {
		event := cal.AddEvent(g.UID)
		event.SetDtStampTime(stamp)
		event.SetStartAt(g.Start.UTC())
		event.SetEndAt(g.End.UTC())
		event.SetSummary(g.Summary)
		event.SetDescription(g.Summary)
		if g.Location != "" {
			event.SetLocation(g.Location)
		}
		event.SetStatus(ics.ObjectStatusConfirmed)
		event.SetSequence(0)
		event.SetTimeTransparency(ics.TransparencyOpaque)
		event.SetProperty(ics.ComponentPropertyCategories, "Sports")
	}

	return cal.Serialize()
}
