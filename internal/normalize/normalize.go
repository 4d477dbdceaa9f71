// Package normalize converts heterogeneous CSV rows into canonical events.
package normalize

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// ErrNoTimestamp marks a row with no resolvable event timestamp. Such rows
// are dropped, never stored.
var ErrNoTimestamp = errors.New("row has no parseable timestamp")

// MaxTimeOnPageMs bounds time-on-page regardless of source unit.
const MaxTimeOnPageMs = 600000

// LatLng is an explicit coordinate pair from the source row.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Event is the canonical representation of one accepted CSV row.
type Event struct {
	VisitorKey        string
	UUID              string
	IP                string
	Timestamp         time.Time // always UTC
	EventType         string
	URL               string
	ReferrerURL       string
	TimeOnPageMs      *int
	IdleTimeMs        *int
	ScrollPct         *float64
	Threshold         string
	ElementIdentifier string
	ElementText       string
	Title             string
	Coordinates       *LatLng
	Raw               map[string]string
}

// eventData is the structured payload carried in the EVENT_DATA column.
type eventData struct {
	URL        string          `json:"url"`
	Referrer   string          `json:"referrer"`
	Title      string          `json:"title"`
	TimeOnPage json.RawMessage `json:"timeOnPage"`
	IdleTime   json.RawMessage `json:"idleTime"`
}

// ParseRow maps one raw CSV row to a canonical Event. A row whose timestamp
// cannot be resolved from any known column variant returns ErrNoTimestamp.
func ParseRow(row map[string]string) (*Event, error) {
	idx := indexRow(row)

	ts, ok := parseTimestamp(idx.resolve(timestampVariants))
	if !ok {
		return nil, ErrNoTimestamp
	}

	uuid := idx.resolve(uuidVariants)
	ip := idx.resolve(ipVariants)

	ev := &Event{
		VisitorKey:        visitorKey(uuid, ip),
		UUID:              uuid,
		IP:                ip,
		Timestamp:         ts,
		EventType:         idx.resolve(eventTypeVariants),
		Threshold:         idx.resolve(thresholdVariants),
		ElementIdentifier: idx.resolve(elementIDVariants),
		ElementText:       idx.resolve(elementTxtVariant),
		Raw:               row,
	}

	// Structured payload wins over flat columns for the fields it carries.
	// A malformed payload falls through to the flat columns silently.
	if raw := idx.resolve(eventDataVariants); raw != "" {
		var ed eventData
		if err := json.Unmarshal([]byte(raw), &ed); err == nil {
			ev.URL = ed.URL
			ev.ReferrerURL = ed.Referrer
			ev.Title = ed.Title
			if ms, ok := rawNumber(ed.TimeOnPage); ok {
				ev.TimeOnPageMs = lo.ToPtr(clampTimeOnPage(int(ms)))
			}
			if ms, ok := rawNumber(ed.IdleTime); ok {
				ev.IdleTimeMs = lo.ToPtr(lo.Max([]int{0, int(ms)}))
			}
		}
	}

	if ev.URL == "" {
		ev.URL = idx.resolve(urlVariants)
	}
	if ev.ReferrerURL == "" {
		ev.ReferrerURL = idx.resolve(referrerVariants)
	}
	// Flat columns carry seconds, not milliseconds.
	if ev.TimeOnPageMs == nil {
		if sec, err := strconv.ParseFloat(idx.resolve(timeOnPage), 64); err == nil {
			ev.TimeOnPageMs = lo.ToPtr(clampTimeOnPage(int(sec * 1000)))
		}
	}
	if ev.IdleTimeMs == nil {
		if sec, err := strconv.ParseFloat(idx.resolve(idleTime), 64); err == nil {
			ev.IdleTimeMs = lo.ToPtr(lo.Max([]int{0, int(sec * 1000)}))
		}
	}

	if pct, err := strconv.ParseFloat(idx.resolve(scrollVariants), 64); err == nil {
		ev.ScrollPct = lo.ToPtr(pct)
	}

	ev.Coordinates = ParseCoordinates(idx.resolve(coordsVariants))

	return ev, nil
}

// visitorKey derives the partitioning key: stable identifier, else IP,
// else the literal "unknown" sentinel.
func visitorKey(uuid, ip string) string {
	if uuid != "" {
		return uuid
	}
	if ip != "" {
		return ip
	}
	return "unknown"
}

func clampTimeOnPage(ms int) int {
	return lo.Clamp(ms, 0, MaxTimeOnPageMs)
}

// rawNumber reads a JSON value that may be a number or a numeric string.
func rawNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// ParseCoordinates accepts either a {"lat":..,"lng":..} JSON object or a
// "lat,lng" string. Anything else parses to nil.
func ParseCoordinates(s string) *LatLng {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "{") {
		var ll LatLng
		if err := json.Unmarshal([]byte(s), &ll); err == nil && (ll.Lat != 0 || ll.Lng != 0) {
			return &ll
		}
		return nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &LatLng{Lat: lat, Lng: lng}
}

// Timestamp layouts tried in order. The upstream exports mix ISO timestamps
// with spreadsheet-style dates.
var tsLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range tsLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	// Epoch seconds or milliseconds.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), true
		}
		return time.Unix(n, 0).UTC(), true
	}
	return time.Time{}, false
}
