package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"visitor-pulse-api/internal/metrics"
	"visitor-pulse-api/internal/normalize"
)

// nominatimResult is the subset of the Nominatim search response we consume.
type nominatimResult struct {
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

// GeocodeAddress turns sheet-supplied postal address components into a
// location via Nominatim. Calls are globally paced to one per interval;
// failures are logged and resolve to nil.
func (r *Resolver) GeocodeAddress(ctx context.Context, parts normalize.AddressParts) *Location {
	query := buildAddressQuery(parts)
	if query == "" {
		return nil
	}

	if err := r.pacer.Wait(ctx); err != nil {
		geoLogger.Warn("geocode pacing interrupted", zap.Error(err))
		return nil
	}

	endpoint := strings.TrimRight(r.nominatimBase, "/") + "/search?format=json&limit=1&addressdetails=1&q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}
	// Nominatim requires an identifying User-Agent.
	req.Header.Set("User-Agent", "visitor-pulse/1.0")

	res, err := r.http.Do(req)
	if err != nil {
		metrics.GeoProviderCalls.WithLabelValues("nominatim", "error").Inc()
		geoLogger.Warn("geocode request failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		metrics.GeoProviderCalls.WithLabelValues("nominatim", "error").Inc()
		geoLogger.Warn("geocode non-200", zap.String("query", query), zap.Int("status", res.StatusCode))
		return nil
	}

	var results []nominatimResult
	if err := json.NewDecoder(res.Body).Decode(&results); err != nil || len(results) == 0 {
		metrics.GeoProviderCalls.WithLabelValues("nominatim", "empty").Inc()
		return nil
	}
	first := results[0]
	lat, err1 := strconv.ParseFloat(first.Lat, 64)
	lng, err2 := strconv.ParseFloat(first.Lon, 64)
	if err1 != nil || err2 != nil {
		metrics.GeoProviderCalls.WithLabelValues("nominatim", "malformed").Inc()
		return nil
	}
	metrics.GeoProviderCalls.WithLabelValues("nominatim", "ok").Inc()

	// Provider values win; sheet values backfill what the provider omits.
	city := lo.Ternary(first.Address.City != "", first.Address.City, first.Address.Town)
	return &Location{
		Lat:     lat,
		Lng:     lng,
		City:    lo.Ternary(city != "", city, parts.City),
		Region:  lo.Ternary(first.Address.State != "", first.Address.State, parts.State),
		Country: lo.Ternary(first.Address.Country != "", first.Address.Country, parts.Country),
	}
}

// buildAddressQuery joins the present components in the fixed order
// address, city, state, zip, country.
func buildAddressQuery(parts normalize.AddressParts) string {
	if !parts.HasAddress() {
		return ""
	}
	fields := []string{parts.Address, parts.City, parts.State, parts.Zip, parts.Country}
	present := lo.Filter(fields, func(s string, _ int) bool { return s != "" })
	return strings.Join(present, ", ")
}
