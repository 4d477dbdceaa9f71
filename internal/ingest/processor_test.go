package ingest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/ent/rawevent"
	"visitor-pulse-api/ent/visitorprofile"
	"visitor-pulse-api/internal/config"
	"visitor-pulse-api/internal/normalize"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:ingesttest?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func newTestProcessor(client *ent.Client) *Processor {
	cfg := &config.Config{}
	cfg.Ingest.BatchSize = 500
	cfg.Ingest.MaxConcurrent = 1
	return NewProcessor(client, nil, nil, nil, config.NewStore(cfg))
}

func seedUpload(t *testing.T, client *ent.Client) (uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	tn, err := client.Tenant.Create().SetName("t-" + uuid.NewString()[:8]).Save(ctx)
	if err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	up, err := client.Upload.Create().SetTenantID(tn.ID).SetFilename("events.csv").Save(ctx)
	if err != nil {
		t.Fatalf("create upload: %v", err)
	}
	return tn.ID, up.ID
}

const sampleCSV = `UUID,EVENT_TIMESTAMP,EVENT_TYPE,URL,TIME_ON_PAGE,PERCENTAGE
vis-1,2026-01-15T09:00:00Z,page_view,/about,30,20
vis-1,2026-01-15T09:10:00Z,page_view,/pricing,40,80
vis-1,2026-01-15T10:05:00Z,page_view,/about,10,10
`

func TestProcessUpload_EndToEnd(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	p := newTestProcessor(client)
	tenantID, uploadID := seedUpload(t, client)
	ctx := context.Background()

	n, err := p.ProcessUpload(ctx, tenantID, uploadID, []byte(sampleCSV))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 accepted rows, got %d", n)
	}

	up, err := client.Upload.Get(ctx, uploadID)
	if err != nil {
		t.Fatal(err)
	}
	if up.Status != StatusCompleted || up.RowCount != 3 || up.ProcessedAt == nil {
		t.Fatalf("upload not terminal: %+v", up)
	}

	events, err := client.RawEvent.Query().Where(rawevent.UploadIDEQ(uploadID)).All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 raw events, got %d", len(events))
	}

	profile, err := client.VisitorProfile.Query().
		Where(visitorprofile.TenantIDEQ(tenantID), visitorprofile.VisitorKeyEQ("vis-1")).
		Only(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}

	// 09:00 and 09:10 share a session; 10:05 is 55 minutes later and starts
	// a second one.
	if profile.VisitsCount != 2 {
		t.Fatalf("visits: got %d, want 2", profile.VisitsCount)
	}
	if profile.TotalEvents != 3 || profile.PageViews != 3 || profile.UniquePagesCount != 2 {
		t.Fatalf("counts: %+v", profile)
	}
	if profile.TotalTimeOnPageMs != 80000 {
		t.Fatalf("total time: got %d, want 80000", profile.TotalTimeOnPageMs)
	}
	if profile.MaxScrollPercentage != 80 {
		t.Fatalf("max scroll: got %v", profile.MaxScrollPercentage)
	}

	// repeat +2, time>=60s +2, scroll>=50 +1, key page +2, cta via /pricing +3.
	if profile.EngagementScore != 10 || profile.EngagementSegment != "Action" {
		t.Fatalf("score/segment: %d %s", profile.EngagementScore, profile.EngagementSegment)
	}
	if !profile.Flags["is_repeat_visitor"] || !profile.Flags["visited_key_page"] || !profile.Flags["high_attention"] {
		t.Fatalf("flags: %v", profile.Flags)
	}
	if profile.Flags["video_engaged"] || profile.Flags["exit_intent_triggered"] {
		t.Fatalf("flags set unexpectedly: %v", profile.Flags)
	}

	// Same-day data clamps the window start to the earliest event.
	if !profile.WindowStart.Equal(profile.FirstSeenAt) || !profile.WindowEnd.Equal(profile.LastSeenAt) {
		t.Fatalf("window: %v..%v vs %v..%v",
			profile.WindowStart, profile.WindowEnd, profile.FirstSeenAt, profile.LastSeenAt)
	}
}

// A long, shallow read: the attention flag keys off total time alone,
// independent of scroll depth.
func TestComputeAggregate_HighAttentionIgnoresScroll(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	p := newTestProcessor(client)

	base := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	ms := func(n int) *int { return &n }
	pct := func(f float64) *float64 { return &f }
	events := []*normalize.Event{
		{VisitorKey: "vis-ha", Timestamp: base, EventType: "page_view", URL: "/blog",
			TimeOnPageMs: ms(40000), ScrollPct: pct(20), Raw: map[string]string{}},
		{VisitorKey: "vis-ha", Timestamp: base.Add(5 * time.Minute), EventType: "page_view", URL: "/docs",
			TimeOnPageMs: ms(30000), ScrollPct: pct(15), Raw: map[string]string{}},
	}

	agg := p.computeAggregate(context.Background(), events)
	if agg.TotalTimeOnPageMs != 70000 || agg.MaxScrollPercentage != 20 {
		t.Fatalf("aggregate: time=%d scroll=%v", agg.TotalTimeOnPageMs, agg.MaxScrollPercentage)
	}
	if !agg.Flags.HighAttention {
		t.Fatalf("total time %dms >= 60000 must set high_attention regardless of scroll", agg.TotalTimeOnPageMs)
	}

	// Under the threshold the flag stays off.
	short := p.computeAggregate(context.Background(), events[:1])
	if short.Flags.HighAttention {
		t.Fatalf("total time %dms must not set high_attention", short.TotalTimeOnPageMs)
	}
}

// Repeat visitor with an hour of reading but no key pages, CTAs, or deep
// scrolls lands at score 4 in the Researcher band.
func TestProcessUpload_LongReadNoSignals(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	p := newTestProcessor(client)
	tenantID, uploadID := seedUpload(t, client)
	ctx := context.Background()

	csv := `UUID,EVENT_TIMESTAMP,EVENT_TYPE,URL,TIME_ON_PAGE,PERCENTAGE
vis-4,2026-01-20T09:00:00Z,page_view,/blog,40,10
vis-4,2026-01-20T09:05:00Z,page_view,/docs,25,30
vis-4,2026-01-20T10:30:00Z,page_view,/blog,5,20
`
	if _, err := p.ProcessUpload(ctx, tenantID, uploadID, []byte(csv)); err != nil {
		t.Fatalf("process: %v", err)
	}

	profile, err := client.VisitorProfile.Query().
		Where(visitorprofile.TenantIDEQ(tenantID), visitorprofile.VisitorKeyEQ("vis-4")).
		Only(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.VisitsCount != 2 || profile.TotalTimeOnPageMs != 70000 {
		t.Fatalf("visits=%d time=%d", profile.VisitsCount, profile.TotalTimeOnPageMs)
	}
	// repeat +2, time >= 60s +2, nothing else fires.
	if profile.EngagementScore != 4 || profile.EngagementSegment != "Researcher" {
		t.Fatalf("score/segment: %d %s", profile.EngagementScore, profile.EngagementSegment)
	}
	if !profile.Flags["high_attention"] {
		t.Fatalf("high_attention must be set at 70000ms: %v", profile.Flags)
	}
	if profile.Flags["visited_key_page"] || profile.Flags["cta_clicked"] ||
		profile.Flags["exit_intent_triggered"] || profile.Flags["video_engaged"] {
		t.Fatalf("flags set unexpectedly: %v", profile.Flags)
	}
}

func TestProcessUpload_AllRowsRejected(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	p := newTestProcessor(client)
	tenantID, uploadID := seedUpload(t, client)
	ctx := context.Background()

	csv := "UUID,URL\nvis-2,/home\nvis-2,/about\n"
	n, err := p.ProcessUpload(ctx, tenantID, uploadID, []byte(csv))
	if err == nil {
		t.Fatal("expected error for fully rejected upload")
	}
	if n != 0 {
		t.Fatalf("expected 0 rows, got %d", n)
	}

	up, _ := client.Upload.Get(ctx, uploadID)
	if up.Status != StatusError || up.RowCount != 0 || up.Error == nil {
		t.Fatalf("upload state: %+v", up)
	}
	count, _ := client.RawEvent.Query().Where(rawevent.UploadIDEQ(uploadID)).Count(ctx)
	if count != 0 {
		t.Fatalf("rejected upload must not persist events, got %d", count)
	}
}

func TestProcessUpload_PartialRejection(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	p := newTestProcessor(client)
	tenantID, uploadID := seedUpload(t, client)

	csv := "UUID,EVENT_TIMESTAMP,URL\nvis-3,2026-01-15T09:00:00Z,/a\nvis-3,,/b\nvis-3,bogus,/c\n"
	n, err := p.ProcessUpload(context.Background(), tenantID, uploadID, []byte(csv))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 accepted row, got %d", n)
	}
}

func TestProcessUpload_Idempotent(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	p := newTestProcessor(client)
	ctx := context.Background()

	tn, err := client.Tenant.Create().SetName("t-idem").Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	up1, _ := client.Upload.Create().SetTenantID(tn.ID).Save(ctx)
	up2, _ := client.Upload.Create().SetTenantID(tn.ID).Save(ctx)

	if _, err := p.ProcessUpload(ctx, tn.ID, up1.ID, []byte(sampleCSV)); err != nil {
		t.Fatal(err)
	}
	if _, err := p.ProcessUpload(ctx, tn.ID, up2.ID, []byte(sampleCSV)); err != nil {
		t.Fatal(err)
	}

	profiles, err := client.VisitorProfile.Query().
		Where(visitorprofile.TenantIDEQ(tn.ID), visitorprofile.VisitorKeyEQ("vis-1")).
		All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 1 {
		t.Fatalf("re-ingesting the same window must upsert, got %d profiles", len(profiles))
	}
	if profiles[0].VisitsCount != 2 || profiles[0].TotalEvents != 3 {
		t.Fatalf("profile accumulated instead of converging: %+v", profiles[0])
	}

	// The audit trail is append-only by contract.
	count, _ := client.RawEvent.Query().Where(rawevent.TenantIDEQ(tn.ID)).Count(ctx)
	if count != 6 {
		t.Fatalf("expected 6 raw events across both uploads, got %d", count)
	}
}

func TestComputeWindow_TrailingThirtyDays(t *testing.T) {
	latest := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := []*normalize.Event{
		{Timestamp: latest.AddDate(0, 0, -90)},
		{Timestamp: latest},
	}
	start, end := computeWindow(events)
	if !end.Equal(latest) {
		t.Fatalf("end: %v", end)
	}
	if !start.Equal(latest.AddDate(0, 0, -30)) {
		t.Fatalf("start: %v", start)
	}

	// All events inside 30 days: clamp to the earliest.
	near := []*normalize.Event{
		{Timestamp: latest.AddDate(0, 0, -3)},
		{Timestamp: latest},
	}
	start, _ = computeWindow(near)
	if !start.Equal(latest.AddDate(0, 0, -3)) {
		t.Fatalf("clamped start: %v", start)
	}
}

func TestParseCSV(t *testing.T) {
	rows, err := parseCSV([]byte("A, B ,C\n1,2,3\n,,\n4,5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (empty line skipped), got %d", len(rows))
	}
	if rows[0]["B"] != "2" {
		t.Fatalf("headers must be trimmed: %v", rows[0])
	}
	if _, ok := rows[1]["C"]; ok && rows[1]["C"] != "" {
		t.Fatalf("short record must leave trailing cells absent: %v", rows[1])
	}
}
