// Package geo resolves visitor locations from addresses or IPs, cache-first
// and rate-limited. Lookups are best-effort: provider failures degrade to
// "no location" and never fail ingestion.
package geo

import (
	"context"
	"net/http"
	"sync"
	"time"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/internal/config"
	"visitor-pulse-api/internal/logx"
	"visitor-pulse-api/internal/normalize"
	"visitor-pulse-api/internal/redisx"
)

var geoLogger = logx.GetScope("geo")

// Location is a resolved position. City/region/country may be empty.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	City    string  `json:"city,omitempty"`
	Region  string  `json:"region,omitempty"`
	Country string  `json:"country,omitempty"`
}

// Resolver answers location queries against the geo cache and external
// providers. It is safe for concurrent use; the geocode pacer is shared
// across all callers.
type Resolver struct {
	db    *ent.Client
	rdb   *redisx.Client // optional L1 cache
	store *config.Store
	http  *http.Client
	pacer *pacer

	// Overridable in tests.
	nominatimBase string
	ipinfoBase    string
	ipapiBase     string
}

// New builds a Resolver. rdb may be nil.
func New(db *ent.Client, rdb *redisx.Client, store *config.Store) *Resolver {
	cfg := store.Get()
	return &Resolver{
		db:            db,
		rdb:           rdb,
		store:         store,
		http:          &http.Client{Timeout: cfg.Geo.ProviderTimeout},
		pacer:         &pacer{interval: cfg.Geo.GeocodeInterval},
		nominatimBase: cfg.Geo.NominatimURL,
		ipinfoBase:    "https://ipinfo.io",
		ipapiBase:     "https://ipapi.co",
	}
}

// Query carries everything known about a visitor that can yield a location.
type Query struct {
	Explicit *normalize.LatLng
	Address  normalize.AddressParts
	IP       string
}

// Resolve applies the precedence explicit coordinates > address geocode >
// IP geolocation > none. It never returns an error; a nil result means no
// location could be determined.
func (r *Resolver) Resolve(ctx context.Context, q Query) *Location {
	if q.Explicit != nil {
		return &Location{Lat: q.Explicit.Lat, Lng: q.Explicit.Lng}
	}
	if q.Address.HasAddress() {
		if loc := r.GeocodeAddress(ctx, q.Address); loc != nil {
			return loc
		}
	}
	if q.IP != "" {
		return r.LookupIP(ctx, q.IP)
	}
	return nil
}

// pacer enforces a minimum interval between outbound geocode calls across
// all concurrent callers. Slots are reserved under the lock so two waiters
// never fire together.
type pacer struct {
	mu       sync.Mutex
	last     time.Time
	interval time.Duration
}

func (p *pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	now := time.Now()
	next := p.last.Add(p.interval)
	var wait time.Duration
	if now.Before(next) {
		wait = next.Sub(now)
		p.last = next
	} else {
		p.last = now
	}
	p.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
