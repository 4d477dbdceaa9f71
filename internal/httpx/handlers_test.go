package httpx

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/internal/config"
	"visitor-pulse-api/internal/ingest"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:httpxtest?mode=memory&cache=shared&_fk=1")
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

func newTestApp(client *ent.Client) *fiber.App {
	cfg := &config.Config{}
	cfg.Ingest.BatchSize = 100
	cfg.Ingest.MaxConcurrent = 1
	store := config.NewStore(cfg)
	processor := ingest.NewProcessor(client, nil, nil, nil, store)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	Register(app, client, &Providers{Ingest: processor, Store: store})
	return app
}

func decodeEnvelope(t *testing.T, res *http.Response, out any) {
	t.Helper()
	var env struct {
		Code string          `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
}

func TestTenants_CRUD(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	app := newTestApp(client)

	// create
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants",
		strings.NewReader(`{"name":"Acme","domain":"acme.test"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d", res.StatusCode)
	}
	var created struct {
		ID     uuid.UUID `json:"id"`
		Name   string    `json:"name"`
		Domain string    `json:"domain"`
	}
	decodeEnvelope(t, res, &created)
	if created.Name != "Acme" || created.Domain != "acme.test" {
		t.Fatalf("created: %+v", created)
	}

	// empty name rejected
	bad := httptest.NewRequest(http.MethodPost, "/api/v1/tenants", strings.NewReader(`{}`))
	bad.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(bad)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty name status=%d", res.StatusCode)
	}

	// get
	res, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/tenants/"+created.ID.String(), nil))
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get status=%d", res.StatusCode)
	}

	// patch
	patch := httptest.NewRequest(http.MethodPatch, "/api/v1/tenants/"+created.ID.String(),
		strings.NewReader(`{"name":"Acme Corp"}`))
	patch.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(patch)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("patch status=%d", res.StatusCode)
	}
	var updated struct {
		Name string `json:"name"`
	}
	decodeEnvelope(t, res, &updated)
	if updated.Name != "Acme Corp" {
		t.Fatalf("patched name: %q", updated.Name)
	}

	// delete
	res, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/tenants/"+created.ID.String(), nil))
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete status=%d", res.StatusCode)
	}
	res, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/tenants/"+created.ID.String(), nil))
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status=%d", res.StatusCode)
	}
}

func multipartUpload(t *testing.T, tenantID string, csv string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("tenant_id", tenantID); err != nil {
		t.Fatal(err)
	}
	fw, err := w.CreateFormFile("file", "events.csv")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(csv)); err != nil {
		t.Fatal(err)
	}
	_ = w.Close()
	return &buf, w.FormDataContentType()
}

const uploadCSV = `UUID,EVENT_TIMESTAMP,EVENT_TYPE,URL,TIME_ON_PAGE,PERCENTAGE
web-1,2026-02-01T09:00:00Z,page_view,/about,30,20
web-1,2026-02-01T09:10:00Z,page_view,/pricing,40,80
web-1,2026-02-01T10:05:00Z,page_view,/about,10,10
`

func TestUploads_FlowToProfiles(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	app := newTestApp(client)
	ctx := context.Background()

	tn, err := client.Tenant.Create().SetName("flow-" + uuid.NewString()[:8]).Save(ctx)
	if err != nil {
		t.Fatal(err)
	}

	body, contentType := multipartUpload(t, tn.ID.String(), uploadCSV)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusAccepted {
		t.Fatalf("upload status=%d", res.StatusCode)
	}
	var accepted struct {
		ID     uuid.UUID `json:"id"`
		Status string    `json:"status"`
	}
	decodeEnvelope(t, res, &accepted)
	if accepted.Status != "processing" {
		t.Fatalf("initial status: %q", accepted.Status)
	}

	// Poll until the background pipeline reaches a terminal status.
	var status struct {
		Status   string `json:"status"`
		RowCount int    `json:"row_count"`
	}
	deadline := time.Now().Add(5 * time.Second)
	for {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/uploads/"+accepted.ID.String(), nil))
		if err != nil {
			t.Fatal(err)
		}
		decodeEnvelope(t, res, &status)
		if status.Status != "processing" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("upload never reached a terminal status")
		}
		time.Sleep(50 * time.Millisecond)
	}
	if status.Status != "completed" || status.RowCount != 3 {
		t.Fatalf("terminal state: %+v", status)
	}

	// visitors list
	res, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/visitors?tenant_id="+tn.ID.String(), nil))
	if res.StatusCode != http.StatusOK {
		t.Fatalf("visitors status=%d", res.StatusCode)
	}
	var visitors []struct {
		ID                uuid.UUID `json:"id"`
		VisitorKey        string    `json:"visitor_key"`
		EngagementScore   int       `json:"engagement_score"`
		EngagementSegment string    `json:"engagement_segment"`
	}
	decodeEnvelope(t, res, &visitors)
	if len(visitors) != 1 || visitors[0].VisitorKey != "web-1" {
		t.Fatalf("visitors: %+v", visitors)
	}
	if visitors[0].EngagementSegment != "Action" {
		t.Fatalf("segment: %q", visitors[0].EngagementSegment)
	}

	// visitor detail with recent events
	res, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/visitors/"+visitors[0].ID.String(), nil))
	if res.StatusCode != http.StatusOK {
		t.Fatalf("visitor detail status=%d", res.StatusCode)
	}
	var detail struct {
		Profile      map[string]any   `json:"profile"`
		RecentEvents []map[string]any `json:"recent_events"`
	}
	decodeEnvelope(t, res, &detail)
	if len(detail.RecentEvents) != 3 {
		t.Fatalf("recent events: %d", len(detail.RecentEvents))
	}

	// dashboard rollup
	res, _ = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?tenant_id="+tn.ID.String(), nil))
	if res.StatusCode != http.StatusOK {
		t.Fatalf("dashboard status=%d", res.StatusCode)
	}
	var dash struct {
		TotalVisitors     int `json:"total_visitors"`
		ReturningVisitors int `json:"returning_visitors"`
		TotalPageViews    int `json:"total_page_views"`
	}
	decodeEnvelope(t, res, &dash)
	if dash.TotalVisitors != 1 || dash.ReturningVisitors != 1 || dash.TotalPageViews != 3 {
		t.Fatalf("dashboard: %+v", dash)
	}
}

func TestUploads_UnknownTenant(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	app := newTestApp(client)

	body, contentType := multipartUpload(t, uuid.NewString(), uploadCSV)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	res, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestUploads_MissingFile(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	app := newTestApp(client)
	ctx := context.Background()

	tn, err := client.Tenant.Create().SetName("nofile-" + uuid.NewString()[:8]).Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("tenant_id", tn.ID.String())
	_ = w.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	res, _ := app.Test(req)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
