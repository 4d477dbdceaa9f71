// Package esx indexes visitor profiles into Elasticsearch for search.
package esx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	es8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/samber/lo"

	"visitor-pulse-api/internal/config"
)

type Client = es8.Client

// ProfilesIndex is where visitor profile documents live.
const ProfilesIndex = "visitor_profiles"

func Open(cfg *config.Config) (*Client, func(), error) {
	if strings.TrimSpace(cfg.ES.Addrs) == "" {
		return nil, func() {}, nil
	}
	raw := strings.Split(cfg.ES.Addrs, ",")
	addrs := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		t := strings.TrimSpace(s)
		return t, t != ""
	})
	es, err := es8.NewClient(es8.Config{Addresses: addrs, Username: cfg.ES.Username, Password: cfg.ES.Password})
	if err != nil {
		return nil, func() {}, err
	}
	return es, func() {}, nil
}

// ProfileDoc is the searchable projection of a VisitorProfile.
type ProfileDoc struct {
	ID         string  `json:"id"`
	TenantID   string  `json:"tenant_id"`
	VisitorKey string  `json:"visitor_key"`
	Segment    string  `json:"segment"`
	Score      int     `json:"score"`
	City       string  `json:"city,omitempty"`
	Region     string  `json:"region,omitempty"`
	Country    string  `json:"country,omitempty"`
	Company    string  `json:"company,omitempty"`
	Name       string  `json:"name,omitempty"`
	LastSeenAt string  `json:"last_seen_at"`
	Lat        float64 `json:"lat,omitempty"`
	Lng        float64 `json:"lng,omitempty"`
}

func IndexProfile(ctx context.Context, es *Client, index string, doc ProfileDoc) error {
	if es == nil {
		return nil
	}
	b, _ := json.Marshal(doc)
	res, err := es.Index(index, bytes.NewReader(b), es.Index.WithDocumentID(doc.ID), es.Index.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return fmtError(res)
	}
	return nil
}

// SearchProfiles runs a multi_match over the identity/location fields.
func SearchProfiles(ctx context.Context, es *Client, index, tenantID, query string, from, size int) (map[string]any, error) {
	if es == nil {
		return map[string]any{"hits": []any{}}, nil
	}
	q := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []any{map[string]any{"term": map[string]any{"tenant_id": tenantID}}},
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  query,
						"fields": []string{"visitor_key^2", "name", "company", "city", "region", "country"},
					},
				},
			},
		},
	}
	b, _ := json.Marshal(q)
	res, err := es.Search(es.Search.WithContext(ctx), es.Search.WithIndex(index), es.Search.WithBody(bytes.NewReader(b)), es.Search.WithFrom(from), es.Search.WithSize(size))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmtError(res)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	return out, nil
}

func fmtError(res *esapi.Response) error { return fmt.Errorf("es error: %s", res.String()) }
