package schedule

import (
	"fmt"
	"time"
)

// Defaults cover Sweden's men's tournament at Milano-Cortina 2026.
const (
	DefaultTargetTeam  = "SWE"
	DefaultTeamName    = "Sweden"
	DefaultCompetition = "Men's Ice Hockey"
	DefaultYear        = 2026
	DefaultMonth       = time.February
	DefaultUIDDomain   = "lundblaad.github.io"

	// DefaultGameDuration covers three periods with intermissions plus a
	// possible overtime and shootout. The page carries no end times.
	DefaultGameDuration = 2*time.Hour + 30*time.Minute

	// Look-ahead bounds, in lines past a matchup marker.
	DefaultTimeWindow  = 9
	DefaultVenueWindow = 5

	// LocalTimezone is the zone the schedule page prints face-off times in.
	LocalTimezone = "Europe/Rome"
)

// Config carries everything the parser needs. Nothing is read from package
// state, so other teams, tournaments, or durations reuse the same scanner.
type Config struct {
	// TargetTeam is the 3-letter code games must involve; TeamName and
	// Competition build the event summaries.
	TargetTeam  string
	TeamName    string
	Competition string

	// Year and Month anchor date markers, which only carry a day number.
	Year  int
	Month time.Month

	GameDuration time.Duration

	// TimeWindow and VenueWindow bound the look-ahead scans, in lines.
	TimeWindow  int
	VenueWindow int

	// VenueKeywords mark a looked-ahead line as a venue by substring match.
	VenueKeywords []string

	UIDDomain string

	// Local is the zone times are parsed in; Canonical is the zone emitted
	// games carry.
	Local     *time.Location
	Canonical *time.Location
}

// DefaultConfig returns the Sweden / Milano-Cortina configuration with the
// page's local zone resolved.
func DefaultConfig() (Config, error) {
	local, err := time.LoadLocation(LocalTimezone)
	if err != nil {
		return Config{}, fmt.Errorf("loading %s: %w", LocalTimezone, err)
	}
	return Config{
		TargetTeam:    DefaultTargetTeam,
		TeamName:      DefaultTeamName,
		Competition:   DefaultCompetition,
		Year:          DefaultYear,
		Month:         DefaultMonth,
		GameDuration:  DefaultGameDuration,
		TimeWindow:    DefaultTimeWindow,
		VenueWindow:   DefaultVenueWindow,
		VenueKeywords: DefaultVenueKeywords(),
		UIDDomain:     DefaultUIDDomain,
		Local:         local,
		Canonical:     time.UTC,
	}, nil
}

func (c Config) validate() error {
	if len(c.TargetTeam) != 3 {
		return fmt.Errorf("target team must be a 3-letter code, got %q", c.TargetTeam)
	}
	if c.Year <= 0 {
		return fmt.Errorf("schedule year must be set, got %d", c.Year)
	}
	if c.Month < time.January || c.Month > time.December {
		return fmt.Errorf("invalid schedule month: %d", c.Month)
	}
	if c.GameDuration <= 0 {
		return fmt.Errorf("game duration must be positive, got %s", c.GameDuration)
	}
	if c.TimeWindow < 1 {
		return fmt.Errorf("time window must be at least 1 line, got %d", c.TimeWindow)
	}
	if c.VenueWindow < 1 {
		return fmt.Errorf("venue window must be at least 1 line, got %d", c.VenueWindow)
	}
	if c.Local == nil || c.Canonical == nil {
		return fmt.Errorf("local and canonical time zones must be set")
	}
	return nil
}
