package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// scanState names what the scanner needs next. The machine rests in
// awaitingDate, anchors on a matchup line to enter awaitingTime, and passes
// through awaitingVenue before emitting a game.
type scanState int

const (
	awaitingDate scanState = iota
	awaitingTime
	awaitingVenue
)

// cursor steps through the line sequence one position at a time and exposes
// bounded peeks for the look-ahead windows. Peeks never consume.
type cursor struct {
	lines []string
	pos   int
}

func (c *cursor) done() bool { return c.pos >= len(c.lines) }

func (c *cursor) current() string { return c.lines[c.pos] }

func (c *cursor) advance() { c.pos++ }

// peek returns the line offset positions ahead, or false past the input end.
func (c *cursor) peek(offset int) (string, bool) {
	i := c.pos + offset
	if i >= len(c.lines) {
		return "", false
	}
	return c.lines[i], true
}

// Parser scans schedule page lines for games involving the configured team.
type Parser struct {
	cfg     Config
	dateRE  *regexp.Regexp
	timeRE  *regexp.Regexp
	matchRE *regexp.Regexp
}

// New validates cfg and compiles its marker patterns. The date pattern is
// derived from the configured month, e.g. "13 Feb".
func New(cfg Config) (*Parser, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid parser config: %w", err)
	}
	return &Parser{
		cfg:     cfg,
		dateRE:  regexp.MustCompile(fmt.Sprintf(`^(\d{1,2})\s+%s$`, cfg.Month.String()[:3])),
		timeRE:  regexp.MustCompile(`^(\d{1,2}):(\d{2})$`),
		matchRE: regexp.MustCompile(`^([A-Z]{3})\s+vs\s+([A-Z]{3})$`),
	}, nil
}

// Parse runs the state machine over lines and returns the games involving the
// target team, deduplicated by UID (first occurrence wins) and sorted
// ascending by start time. Parsing the same input twice yields identical
// output.
//
// While a matchup is pending the cursor stays anchored on its line; the
// look-ahead windows only peek. Once the matchup resolves, recorded or
// abandoned, scanning resumes one line past the anchor, so window lines are
// revisited as potential markers of their own.
func (p *Parser) Parse(lines []string) []Game {
	var (
		games []Game
		cur   = cursor{lines: lines}
		state = awaitingDate

		day     time.Time // midnight local, valid once haveDay is set
		haveDay bool

		// pending matchup, held while awaiting its time and venue
		codeA, codeB string
		start        time.Time
		venue        string
		offset       int
	)

	for !cur.done() {
		switch state {
		case awaitingDate:
			line := cur.current()
			if m := p.dateRE.FindStringSubmatch(line); m != nil {
				d, _ := strconv.Atoi(m[1])
				day = time.Date(p.cfg.Year, p.cfg.Month, d, 0, 0, 0, 0, p.cfg.Local)
				haveDay = true
				cur.advance()
				continue
			}
			if m := p.matchRE.FindStringSubmatch(line); m != nil && haveDay {
				if m[1] != p.cfg.TargetTeam && m[2] != p.cfg.TargetTeam {
					cur.advance()
					continue
				}
				codeA, codeB = m[1], m[2]
				venue = ""
				offset = 0
				state = awaitingTime
				continue
			}
			cur.advance()

		case awaitingTime:
			offset++
			if offset > p.cfg.TimeWindow {
				// No face-off time near the matchup: drop it without a
				// partial record and resume scanning past the anchor.
				state = awaitingDate
				cur.advance()
				continue
			}
			line, ok := cur.peek(offset)
			if !ok {
				state = awaitingDate
				cur.advance()
				continue
			}
			m := p.timeRE.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			hh, _ := strconv.Atoi(m[1])
			mm, _ := strconv.Atoi(m[2])
			start = time.Date(day.Year(), day.Month(), day.Day(), hh, mm, 0, 0, p.cfg.Local)
			offset = 0
			state = awaitingVenue

		case awaitingVenue:
			offset++
			if offset <= p.cfg.VenueWindow {
				if line, ok := cur.peek(offset); ok {
					if !matchesVenue(line, p.cfg.VenueKeywords) {
						continue
					}
					venue = line
				}
			}
			// Venue found, window exhausted, or input ended: the matchup is
			// complete either way, the venue stays optional.
			games = append(games, p.emit(codeA, codeB, start, venue))
			state = awaitingDate
			cur.advance()
		}
	}

	// Deduplicate by UID, first occurrence wins.
	seen := make(map[string]bool, len(games))
	unique := make([]Game, 0, len(games))
	for _, g := range games {
		if seen[g.UID] {
			continue
		}
		seen[g.UID] = true
		unique = append(unique, g)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Start.Before(unique[j].Start)
	})
	return unique
}

// emit builds the Game for a resolved matchup.
func (p *Parser) emit(codeA, codeB string, startLocal time.Time, venue string) Game {
	opponent := codeA
	if codeA == p.cfg.TargetTeam {
		opponent = codeB
	}
	endLocal := startLocal.Add(p.cfg.GameDuration)
	return Game{
		UID:      GenerateUID(startLocal, codeA, codeB, p.cfg.UIDDomain),
		Start:    startLocal.In(p.cfg.Canonical),
		End:      endLocal.In(p.cfg.Canonical),
		Summary:  fmt.Sprintf("%s vs %s (%s)", p.cfg.TeamName, opponent, p.cfg.Competition),
		Location: venue,
	}
}
