package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/ent/geocache"
	"visitor-pulse-api/internal/metrics"
)

const redisKeyPrefix = "geo:ip:"

// LookupIP resolves an IP through the cache layers before falling back to
// the configured external provider. Successful provider responses are
// written through to both layers. All failures resolve to nil.
func (r *Resolver) LookupIP(ctx context.Context, ip string) *Location {
	if ip == "" {
		return nil
	}

	if loc := r.cacheGet(ctx, ip); loc != nil {
		return loc
	}

	loc, err := r.fetchFromProvider(ctx, ip)
	if err != nil {
		geoLogger.Warn("ip geolocation failed", zap.String("ip", ip), zap.Error(err))
		return nil
	}
	if loc == nil {
		return nil
	}

	r.cachePut(ctx, ip, loc)
	return loc
}

// cacheGet checks Redis first, then the durable GeoCache row. A row without
// coordinates counts as a miss so it gets retried, never negatively cached.
func (r *Resolver) cacheGet(ctx context.Context, ip string) *Location {
	if r.rdb != nil {
		if raw, err := r.rdb.Get(ctx, redisKeyPrefix+ip).Result(); err == nil {
			var loc Location
			if json.Unmarshal([]byte(raw), &loc) == nil && (loc.Lat != 0 || loc.Lng != 0) {
				metrics.GeoCacheLookups.WithLabelValues("redis", "hit").Inc()
				return &loc
			}
		}
		metrics.GeoCacheLookups.WithLabelValues("redis", "miss").Inc()
	}

	row, err := r.db.GeoCache.Query().Where(geocache.IPEQ(ip)).Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			geoLogger.Warn("geo cache read failed", zap.String("ip", ip), zap.Error(err))
		}
		metrics.GeoCacheLookups.WithLabelValues("db", "miss").Inc()
		return nil
	}
	if row.Lat == nil || row.Lng == nil {
		metrics.GeoCacheLookups.WithLabelValues("db", "miss").Inc()
		return nil
	}
	metrics.GeoCacheLookups.WithLabelValues("db", "hit").Inc()

	loc := &Location{Lat: *row.Lat, Lng: *row.Lng}
	if row.City != nil {
		loc.City = *row.City
	}
	if row.Region != nil {
		loc.Region = *row.Region
	}
	if row.Country != nil {
		loc.Country = *row.Country
	}
	r.redisSet(ctx, ip, loc)
	return loc
}

// cachePut writes through to the durable cache and Redis. Cache writes are
// derived, reproducible data; last writer wins.
func (r *Resolver) cachePut(ctx context.Context, ip string, loc *Location) {
	err := r.db.GeoCache.Create().
		SetIP(ip).
		SetCity(loc.City).
		SetRegion(loc.Region).
		SetCountry(loc.Country).
		SetLat(loc.Lat).
		SetLng(loc.Lng).
		OnConflictColumns(geocache.FieldIP).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		geoLogger.Warn("geo cache write failed", zap.String("ip", ip), zap.Error(err))
	}
	r.redisSet(ctx, ip, loc)
}

func (r *Resolver) redisSet(ctx context.Context, ip string, loc *Location) {
	if r.rdb == nil {
		return
	}
	b, _ := json.Marshal(loc)
	ttl := r.store.Get().Geo.CacheTTL
	if err := r.rdb.Set(ctx, redisKeyPrefix+ip, b, ttl).Err(); err != nil {
		geoLogger.Debug("redis geo cache write failed", zap.Error(err))
	}
}

func (r *Resolver) fetchFromProvider(ctx context.Context, ip string) (*Location, error) {
	cfg := r.store.Get()
	switch cfg.Geo.Provider {
	case "ipapi":
		loc, err := r.fetchFromIPAPI(ctx, ip, cfg.Geo.APIKey)
		countProvider("ipapi", loc, err)
		return loc, err
	default:
		loc, err := r.fetchFromIPInfo(ctx, ip, cfg.Geo.APIKey)
		countProvider("ipinfo", loc, err)
		return loc, err
	}
}

func countProvider(name string, loc *Location, err error) {
	switch {
	case err != nil:
		metrics.GeoProviderCalls.WithLabelValues(name, "error").Inc()
	case loc == nil:
		metrics.GeoProviderCalls.WithLabelValues(name, "empty").Inc()
	default:
		metrics.GeoProviderCalls.WithLabelValues(name, "ok").Inc()
	}
}

// ipinfo.io returns coordinates as a "lat,lng" string in the loc field.
func (r *Resolver) fetchFromIPInfo(ctx context.Context, ip, apiKey string) (*Location, error) {
	endpoint := fmt.Sprintf("%s/%s/json", strings.TrimRight(r.ipinfoBase, "/"), ip)
	if apiKey != "" {
		endpoint = fmt.Sprintf("%s/%s?token=%s", strings.TrimRight(r.ipinfoBase, "/"), ip, apiKey)
	}
	var body struct {
		Loc     string `json:"loc"`
		City    string `json:"city"`
		Region  string `json:"region"`
		Country string `json:"country"`
	}
	if err := r.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	parts := strings.Split(body.Loc, ",")
	if len(parts) != 2 {
		return nil, nil
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return nil, nil
	}
	return &Location{Lat: lat, Lng: lng, City: body.City, Region: body.Region, Country: body.Country}, nil
}

func (r *Resolver) fetchFromIPAPI(ctx context.Context, ip, apiKey string) (*Location, error) {
	endpoint := fmt.Sprintf("%s/%s/json/", strings.TrimRight(r.ipapiBase, "/"), ip)
	if apiKey != "" {
		endpoint += "?key=" + apiKey
	}
	var body struct {
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		City        string  `json:"city"`
		Region      string  `json:"region"`
		CountryName string  `json:"country_name"`
	}
	if err := r.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	if body.Latitude == 0 && body.Longitude == 0 {
		return nil, nil
	}
	return &Location{Lat: body.Latitude, Lng: body.Longitude, City: body.City, Region: body.Region, Country: body.CountryName}, nil
}

func (r *Resolver) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	res, err := r.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("provider status %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
