package session

import (
	"testing"
	"time"

	"visitor-pulse-api/internal/normalize"
)

func ev(ts time.Time) *normalize.Event {
	return &normalize.Event{VisitorKey: "v", Timestamp: ts}
}

func TestSplit_Empty(t *testing.T) {
	if s := Split(nil); s != nil {
		t.Fatalf("expected nil, got %v", s)
	}
}

func TestSplit_GapCutsSessions(t *testing.T) {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	events := []*normalize.Event{
		ev(base),
		ev(base.Add(10 * time.Minute)),
		ev(base.Add(65 * time.Minute)), // 55 min after previous
	}
	sessions := Split(events)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if len(sessions[0]) != 2 || len(sessions[1]) != 1 {
		t.Fatalf("unexpected partition: %d/%d", len(sessions[0]), len(sessions[1]))
	}
}

func TestSplit_ExactGapStaysTogether(t *testing.T) {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	sessions := Split([]*normalize.Event{ev(base), ev(base.Add(Gap))})
	if len(sessions) != 1 {
		t.Fatalf("gap == threshold must not cut, got %d sessions", len(sessions))
	}
	sessions = Split([]*normalize.Event{ev(base), ev(base.Add(Gap + time.Second))})
	if len(sessions) != 2 {
		t.Fatalf("gap just over threshold must cut, got %d sessions", len(sessions))
	}
}

func TestSplit_UnorderedInputAndPartition(t *testing.T) {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	events := []*normalize.Event{
		ev(base.Add(3 * time.Hour)),
		ev(base),
		ev(base.Add(5 * time.Minute)),
		ev(base.Add(3*time.Hour + time.Minute)),
	}
	sessions := Split(events)
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	total := 0
	for _, s := range sessions {
		total += len(s)
		for i := 1; i < len(s); i++ {
			if s[i].Timestamp.Before(s[i-1].Timestamp) {
				t.Fatal("events inside a session must be ordered")
			}
		}
	}
	if total != len(events) {
		t.Fatalf("sessions must partition input: %d != %d", total, len(events))
	}
}

func TestSplit_IdenticalTimestampsShareSession(t *testing.T) {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	sessions := Split([]*normalize.Event{ev(base), ev(base), ev(base)})
	if len(sessions) != 1 || len(sessions[0]) != 3 {
		t.Fatalf("identical timestamps must share a session, got %v", sessions)
	}
}

func TestSorted_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	events := []*normalize.Event{ev(base.Add(time.Hour)), ev(base)}
	sorted := Sorted(events)
	if !sorted[0].Timestamp.Equal(base) {
		t.Fatal("not sorted")
	}
	if !events[0].Timestamp.Equal(base.Add(time.Hour)) {
		t.Fatal("input slice was mutated")
	}
}
