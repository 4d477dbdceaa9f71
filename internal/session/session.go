// Package session groups a visitor's events into visits.
package session

import (
	"sort"
	"time"

	"visitor-pulse-api/internal/normalize"
)

// Gap is the session boundary threshold. Two consecutive events further
// apart than this belong to different sessions. Fixed policy, not tenant
// configurable.
const Gap = 30 * time.Minute

// Session is a maximal time-contiguous run of one visitor's events.
type Session []*normalize.Event

// Split sorts events ascending by timestamp and cuts a new session wherever
// the gap to the previous event exceeds Gap. Events at identical timestamps
// always share a session. Sessions partition the input exactly.
func Split(events []*normalize.Event) []Session {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]*normalize.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var sessions []Session
	current := Session{sorted[0]}
	for _, ev := range sorted[1:] {
		prev := current[len(current)-1]
		if ev.Timestamp.Sub(prev.Timestamp) <= Gap {
			current = append(current, ev)
		} else {
			sessions = append(sessions, current)
			current = Session{ev}
		}
	}
	return append(sessions, current)
}

// Sorted returns the events ascending by timestamp without sessionizing.
func Sorted(events []*normalize.Event) []*normalize.Event {
	sorted := make([]*normalize.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}
