package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/apognu/gocal"

	"github.com/Lundblaad/SwedenOS-ICS/internal/schedule"
)

func fixedNow() time.Time {
	return time.Date(2026, time.January, 20, 8, 0, 0, 0, time.UTC)
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Now = fixedNow
	return opts
}

func testGames() []schedule.Game {
	start1 := time.Date(2026, time.February, 13, 11, 10, 0, 0, time.UTC)
	start2 := time.Date(2026, time.February, 17, 18, 30, 0, 0, time.UTC)
	return []schedule.Game{
		{
			UID:      "20260213T1210-FINvsSWE@lundblaad.github.io",
			Start:    start1,
			End:      start1.Add(2*time.Hour + 30*time.Minute),
			Summary:  "Sweden vs FIN (Men's Ice Hockey)",
			Location: "Palalido",
		},
		{
			UID:     "20260217T1930-SWEvsUSA@lundblaad.github.io",
			Start:   start2,
			End:     start2.Add(2*time.Hour + 30*time.Minute),
			Summary: "Sweden vs USA (Men's Ice Hockey)",
		},
	}
}

func TestBuild(t *testing.T) {
	out := Build(testGames()[:1], testOptions())

	// Check required ICS fields
	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//SWE Men Hockey//GitHub Pages//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Sweden – Men's Ice Hockey (OS)",
		"X-WR-CALDESC:Sweden men's Olympic ice hockey games at Milano-Cortina 2026",
		"X-WR-TIMEZONE:Europe/Rome",
		"X-PUBLISHED-TTL:PT1H",
		"BEGIN:VEVENT",
		"UID:20260213T1210-FINvsSWE@lundblaad.github.io",
		"DTSTAMP:20260120T080000Z",
		"DTSTART:20260213T111000Z",
		"DTEND:20260213T134000Z",
		"SUMMARY:Sweden vs FIN (Men's Ice Hockey)",
		"DESCRIPTION:Sweden vs FIN (Men's Ice Hockey)",
		"LOCATION:Palalido",
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"TRANSP:OPAQUE",
		"CATEGORIES:Sports",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	for _, field := range requiredFields {
		if !strings.Contains(out, field) {
			t.Errorf("calendar missing required field: %s", field)
		}
	}
}

func TestBuild_CRLF(t *testing.T) {
	out := Build(testGames(), testOptions())

	if !strings.HasSuffix(out, "\r\n") {
		t.Error("calendar should end with \\r\\n")
	}
	// Every newline must be part of a \r\n pair.
	if strings.Contains(strings.ReplaceAll(out, "\r\n", ""), "\n") {
		t.Error("calendar contains a bare \\n line ending")
	}
}

func TestBuild_EventCount(t *testing.T) {
	out := Build(testGames(), testOptions())

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("expected 2 BEGIN:VEVENT, got %d", got)
	}
	if got := strings.Count(out, "END:VEVENT"); got != 2 {
		t.Errorf("expected 2 END:VEVENT, got %d", got)
	}

	// Events appear in input order.
	first := strings.Index(out, "FINvsSWE")
	second := strings.Index(out, "SWEvsUSA")
	if first == -1 || second == -1 || first > second {
		t.Errorf("events out of input order: FINvsSWE at %d, SWEvsUSA at %d", first, second)
	}
}

func TestBuild_EmptyGames(t *testing.T) {
	out := Build(nil, testOptions())

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Error("empty calendar should still have VCALENDAR wrapper")
	}
	if !strings.Contains(out, "VERSION:2.0") {
		t.Error("empty calendar should still carry VERSION")
	}
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("empty calendar should have no events")
	}
}

func TestBuild_OmitsEmptyLocation(t *testing.T) {
	// Second test game has no venue.
	out := Build(testGames()[1:], testOptions())

	if strings.Contains(out, "LOCATION:") {
		t.Error("game without venue should have no LOCATION property")
	}
}

func TestBuild_EscapesText(t *testing.T) {
	games := testGames()[:1]
	games[0].Location = "Palalido, Milano"

	out := Build(games, testOptions())

	if !strings.Contains(out, "LOCATION:Palalido\\, Milano") {
		t.Error("comma in location should be escaped")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	first := Build(testGames(), testOptions())
	second := Build(testGames(), testOptions())

	if first != second {
		t.Error("two builds with a fixed clock should be identical")
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	games := testGames()
	out := Build(games, testOptions())

	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	c := gocal.NewParser(strings.NewReader(out))
	c.Start, c.End = &start, &end
	if err := c.Parse(); err != nil {
		t.Fatalf("parsing generated calendar: %v", err)
	}

	if len(c.Events) != len(games) {
		t.Fatalf("round trip returned %d events, want %d", len(c.Events), len(games))
	}
	for i, ev := range c.Events {
		g := games[i]
		if ev.Uid != g.UID {
			t.Errorf("event %d: Uid = %q, want %q", i, ev.Uid, g.UID)
		}
		if ev.Summary != g.Summary {
			t.Errorf("event %d: Summary = %q, want %q", i, ev.Summary, g.Summary)
		}
		if ev.Location != g.Location {
			t.Errorf("event %d: Location = %q, want %q", i, ev.Location, g.Location)
		}
		if ev.Start == nil || !ev.Start.Equal(g.Start) {
			t.Errorf("event %d: Start = %v, want %v", i, ev.Start, g.Start)
		}
		if ev.End == nil || !ev.End.Equal(g.End) {
			t.Errorf("event %d: End = %v, want %v", i, ev.End, g.End)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Name != CalendarName {
		t.Errorf("Name = %q, want %q", opts.Name, CalendarName)
	}
	if opts.ProductID != ProductID {
		t.Errorf("ProductID = %q, want %q", opts.ProductID, ProductID)
	}
	if opts.TimezoneID != TimezoneID {
		t.Errorf("TimezoneID = %q, want %q", opts.TimezoneID, TimezoneID)
	}
	if opts.Now == nil {
		t.Error("Now should default to a clock")
	}
}
