package normalize

import (
	"testing"
	"time"
)

func TestParseRow_RejectsMissingTimestamp(t *testing.T) {
	rows := []map[string]string{
		{"UUID": "v1", "URL": "/home"},
		{"EVENT_TIMESTAMP": "not-a-date", "UUID": "v1"},
		{},
	}
	for i, row := range rows {
		if _, err := ParseRow(row); err != ErrNoTimestamp {
			t.Fatalf("row %d: expected ErrNoTimestamp, got %v", i, err)
		}
	}
}

func TestParseRow_TimestampVariantsAndUTC(t *testing.T) {
	cases := map[string]string{
		"EVENT_TIMESTAMP": "2026-01-15T10:30:00Z",
		"Timestamp":       "2026-01-15 10:30:00",
		"time":            "01/15/2026 10:30",
		"Date":            "2026-01-15",
	}
	for header, val := range cases {
		ev, err := ParseRow(map[string]string{header: val, "UUID": "v1"})
		if err != nil {
			t.Fatalf("header %q: %v", header, err)
		}
		if ev.Timestamp.Location() != time.UTC {
			t.Fatalf("header %q: timestamp not UTC", header)
		}
	}

	// Epoch seconds and milliseconds both resolve.
	sec, err := ParseRow(map[string]string{"timestamp": "1760000000", "UUID": "v1"})
	if err != nil {
		t.Fatalf("epoch seconds: %v", err)
	}
	ms, err := ParseRow(map[string]string{"timestamp": "1760000000000", "UUID": "v1"})
	if err != nil {
		t.Fatalf("epoch millis: %v", err)
	}
	if !sec.Timestamp.Equal(ms.Timestamp) {
		t.Fatalf("epoch sec %v != epoch ms %v", sec.Timestamp, ms.Timestamp)
	}
}

func TestParseRow_VisitorKeyPrecedence(t *testing.T) {
	ts := "2026-01-15T10:00:00Z"

	ev, _ := ParseRow(map[string]string{"timestamp": ts, "UUID": "u-1", "IP_ADDRESS": "1.2.3.4"})
	if ev.VisitorKey != "u-1" {
		t.Fatalf("expected uuid key, got %q", ev.VisitorKey)
	}
	ev, _ = ParseRow(map[string]string{"timestamp": ts, "IP_ADDRESS": "1.2.3.4"})
	if ev.VisitorKey != "1.2.3.4" {
		t.Fatalf("expected ip key, got %q", ev.VisitorKey)
	}
	ev, _ = ParseRow(map[string]string{"timestamp": ts})
	if ev.VisitorKey != "unknown" {
		t.Fatalf("expected unknown key, got %q", ev.VisitorKey)
	}
}

func TestParseRow_FlatTimeOnPageSecondsClamped(t *testing.T) {
	ev, err := ParseRow(map[string]string{
		"timestamp":    "2026-01-15T10:00:00Z",
		"UUID":         "v1",
		"TIME_ON_PAGE": "999999", // seconds, way past the cap
	})
	if err != nil {
		t.Fatal(err)
	}
	if ev.TimeOnPageMs == nil || *ev.TimeOnPageMs != MaxTimeOnPageMs {
		t.Fatalf("expected clamp to %d, got %v", MaxTimeOnPageMs, ev.TimeOnPageMs)
	}

	ev, _ = ParseRow(map[string]string{
		"timestamp":    "2026-01-15T10:00:00Z",
		"UUID":         "v1",
		"TIME_ON_PAGE": "45",
	})
	if ev.TimeOnPageMs == nil || *ev.TimeOnPageMs != 45000 {
		t.Fatalf("expected 45000ms, got %v", ev.TimeOnPageMs)
	}
}

func TestParseRow_EventDataOverridesFlatColumns(t *testing.T) {
	ev, err := ParseRow(map[string]string{
		"timestamp":  "2026-01-15T10:00:00Z",
		"UUID":       "v1",
		"URL":        "/flat",
		"EVENT_DATA": `{"url":"/structured","referrer":"https://x.test","title":"T","timeOnPage":"1500"}`,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ev.URL != "/structured" {
		t.Fatalf("expected structured url, got %q", ev.URL)
	}
	if ev.ReferrerURL != "https://x.test" || ev.Title != "T" {
		t.Fatalf("unexpected referrer/title: %q %q", ev.ReferrerURL, ev.Title)
	}
	// EVENT_DATA times are already milliseconds.
	if ev.TimeOnPageMs == nil || *ev.TimeOnPageMs != 1500 {
		t.Fatalf("expected 1500ms, got %v", ev.TimeOnPageMs)
	}
}

func TestParseRow_MalformedEventDataFallsBack(t *testing.T) {
	ev, err := ParseRow(map[string]string{
		"timestamp":  "2026-01-15T10:00:00Z",
		"UUID":       "v1",
		"URL":        "/flat",
		"EVENT_DATA": `{broken`,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ev.URL != "/flat" {
		t.Fatalf("expected flat url fallback, got %q", ev.URL)
	}
}

func TestParseCoordinates(t *testing.T) {
	if ll := ParseCoordinates(`{"lat":40.7,"lng":-74.0}`); ll == nil || ll.Lat != 40.7 || ll.Lng != -74.0 {
		t.Fatalf("json object: %+v", ll)
	}
	if ll := ParseCoordinates("40.7, -74.0"); ll == nil || ll.Lat != 40.7 || ll.Lng != -74.0 {
		t.Fatalf("csv pair: %+v", ll)
	}
	for _, bad := range []string{"", "garbage", "1,2,3", "{\"lat\":0,\"lng\":0}"} {
		if ll := ParseCoordinates(bad); ll != nil {
			t.Fatalf("%q: expected nil, got %+v", bad, ll)
		}
	}
}

func TestIdentity_FoldedHeaders(t *testing.T) {
	id := Identity(map[string]string{
		"First Name":     "Ada",
		"LAST_NAME":      "Lovelace",
		"company-name":   "Analytical",
		"BUSINESS_EMAIL": "ada@analytical.test",
	})
	if id["firstName"] != "Ada" || id["lastName"] != "Lovelace" {
		t.Fatalf("name extraction failed: %v", id)
	}
	if id["companyName"] != "Analytical" || id["businessEmail"] != "ada@analytical.test" {
		t.Fatalf("company extraction failed: %v", id)
	}
	if _, ok := id["phone"]; ok {
		t.Fatal("absent column must not appear")
	}
}

func TestAddress_PersonalBeatsCompany(t *testing.T) {
	a := Address(map[string]string{
		"PERSONAL_CITY": "Boston",
		"COMPANY_CITY":  "NYC",
		"COMPANY_STATE": "NY",
	})
	if a.City != "Boston" {
		t.Fatalf("expected personal city, got %q", a.City)
	}
	if a.State != "NY" {
		t.Fatalf("expected company state fallback, got %q", a.State)
	}
	if a.Country != "US" {
		t.Fatalf("expected default country US, got %q", a.Country)
	}
	if !a.HasAddress() {
		t.Fatal("city present, HasAddress must be true")
	}

	// Country alone does not make the row geocodable.
	only := Address(map[string]string{"PERSONAL_COUNTRY": "DE"})
	if only.HasAddress() {
		t.Fatal("country alone must not trigger geocoding")
	}
}
