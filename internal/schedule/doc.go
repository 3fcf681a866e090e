// Package schedule turns the schedule page's visible text lines into game
// records for the configured team.
//
// The scan is a small three-state machine (awaiting-date, awaiting-time,
// awaiting-venue) over a line cursor: date markers set the day context,
// matchup markers anchor bounded look-ahead windows for the face-off time and
// venue, and everything else is skipped. Results are deduplicated by UID and
// sorted ascending by start time.
package schedule
