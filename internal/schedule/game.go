package schedule

import (
	"fmt"
	"time"
)

// Game represents a single parsed match involving the target team. Games are
// built once during a parse pass and never mutated afterwards.
type Game struct {
	UID      string    `json:"uid"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Summary  string    `json:"summary"`
	Location string    `json:"location,omitempty"`
}

// GenerateUID creates a deterministic identifier for a game from its local
// start time and both team codes in page order, qualified by the publishing
// domain. Example: 20260213T1210-FINvsSWE@lundblaad.github.io
func GenerateUID(startLocal time.Time, codeA, codeB, domain string) string {
	return fmt.Sprintf("%s-%svs%s@%s", startLocal.Format("20060102T1504"), codeA, codeB, domain)
}
