package geo

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/ent/geocache"
	"visitor-pulse-api/internal/config"
	"visitor-pulse-api/internal/normalize"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:geotest?mode=memory&cache=shared&_fk=1")
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

func testStore() *config.Store {
	cfg := &config.Config{}
	cfg.Geo.Provider = "ipinfo"
	cfg.Geo.CacheTTL = time.Minute
	return config.NewStore(cfg)
}

func testResolver(client *ent.Client, base string, httpClient *http.Client) *Resolver {
	return &Resolver{
		db:            client,
		store:         testStore(),
		http:          httpClient,
		pacer:         &pacer{interval: time.Millisecond},
		nominatimBase: base,
		ipinfoBase:    base,
		ipapiBase:     base,
	}
}

func TestPacer_SpacesCalls(t *testing.T) {
	p := &pacer{interval: 40 * time.Millisecond}
	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Wait(context.Background())
		}()
	}
	wg.Wait()
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Fatalf("3 calls finished in %v, expected at least 80ms spacing", elapsed)
	}
}

func TestPacer_CancelledContext(t *testing.T) {
	p := &pacer{interval: time.Minute}
	_ = p.Wait(context.Background()) // occupy the slot
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := p.Wait(ctx); err == nil {
		t.Fatal("expected context error while paced")
	}
}

func TestResolve_ExplicitCoordinatesWin(t *testing.T) {
	var called int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&called, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := testResolver(nil, srv.URL, srv.Client())
	loc := r.Resolve(context.Background(), Query{
		Explicit: &normalize.LatLng{Lat: 40.7, Lng: -74.0},
		Address:  normalize.AddressParts{City: "Boston"},
		IP:       "1.2.3.4",
	})
	if loc == nil || loc.Lat != 40.7 || loc.Lng != -74.0 {
		t.Fatalf("unexpected location: %+v", loc)
	}
	if atomic.LoadInt32(&called) != 0 {
		t.Fatal("explicit coordinates must short-circuit all provider calls")
	}
}

func TestGeocodeAddress_BackfillsFromSheet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("q") == "" {
			t.Error("missing q parameter")
		}
		if req.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent")
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{
			"lat": "42.35", "lon": "-71.05",
			"address": map[string]string{"city": "Boston", "country": "United States"},
		}})
	}))
	defer srv.Close()

	r := testResolver(nil, srv.URL, srv.Client())
	loc := r.GeocodeAddress(context.Background(), normalize.AddressParts{
		Address: "1 Main St", City: "Somewhere", State: "MA", Country: "US",
	})
	if loc == nil {
		t.Fatal("expected location")
	}
	if loc.City != "Boston" {
		t.Fatalf("provider city must win, got %q", loc.City)
	}
	if loc.Region != "MA" {
		t.Fatalf("sheet state must backfill, got %q", loc.Region)
	}
	if loc.Lat != 42.35 || loc.Lng != -71.05 {
		t.Fatalf("unexpected coordinates: %+v", loc)
	}
}

func TestGeocodeAddress_EmptyResultIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	r := testResolver(nil, srv.URL, srv.Client())
	if loc := r.GeocodeAddress(context.Background(), normalize.AddressParts{City: "Nowhere"}); loc != nil {
		t.Fatalf("expected nil, got %+v", loc)
	}
}

func TestLookupIP_CacheReadThrough(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()

	var providerHits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&providerHits, 1)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"loc": "37.77,-122.41", "city": "San Francisco", "region": "CA", "country": "US",
		})
	}))
	defer srv.Close()

	r := testResolver(client, srv.URL, srv.Client())
	ctx := context.Background()

	loc := r.LookupIP(ctx, "9.9.9.9")
	if loc == nil || loc.City != "San Francisco" {
		t.Fatalf("first lookup: %+v", loc)
	}
	if atomic.LoadInt32(&providerHits) != 1 {
		t.Fatalf("expected 1 provider hit, got %d", providerHits)
	}

	// Second lookup is served from the durable cache.
	loc = r.LookupIP(ctx, "9.9.9.9")
	if loc == nil || loc.Lat != 37.77 {
		t.Fatalf("cached lookup: %+v", loc)
	}
	if atomic.LoadInt32(&providerHits) != 1 {
		t.Fatalf("cache miss leaked to provider: %d hits", providerHits)
	}

	row, err := client.GeoCache.Query().Where(geocache.IPEQ("9.9.9.9")).Only(ctx)
	if err != nil {
		t.Fatalf("cache row: %v", err)
	}
	if row.Lat == nil || *row.Lat != 37.77 {
		t.Fatalf("cache row coordinates: %+v", row)
	}
}

func TestLookupIP_RowWithoutCoordinatesIsRetried(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()
	ctx := context.Background()

	// A stale row with no coordinates must not act as a negative cache.
	if err := client.GeoCache.Create().SetIP("8.8.8.8").SetCity("Unknown").Exec(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var providerHits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&providerHits, 1)
		_ = json.NewEncoder(w).Encode(map[string]string{"loc": "1.0,2.0"})
	}))
	defer srv.Close()

	r := testResolver(client, srv.URL, srv.Client())
	loc := r.LookupIP(ctx, "8.8.8.8")
	if loc == nil || loc.Lat != 1.0 {
		t.Fatalf("lookup: %+v", loc)
	}
	if atomic.LoadInt32(&providerHits) != 1 {
		t.Fatalf("provider should have been consulted once, got %d", providerHits)
	}
}

func TestLookupIP_ProviderFailureIsNil(t *testing.T) {
	client := newTestClient(t)
	defer client.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	r := testResolver(client, srv.URL, srv.Client())
	if loc := r.LookupIP(context.Background(), "7.7.7.7"); loc != nil {
		t.Fatalf("expected nil on provider failure, got %+v", loc)
	}
}
