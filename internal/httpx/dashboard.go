package httpx

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/ent/rawevent"
	"visitor-pulse-api/ent/upload"
	"visitor-pulse-api/ent/visitorprofile"
	"visitor-pulse-api/pkg"
)

// registerDashboard serves the tenant KPI rollup backing the overview page.
func registerDashboard(r fiber.Router, client *ent.Client) {
	r.Get("/dashboard", func(c *fiber.Ctx) error {
		tenantID, err := uuid.Parse(c.Query("tenant_id"))
		if err != nil {
			return BadRequest("valid tenant_id required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		base := func() *ent.VisitorProfileQuery {
			return client.VisitorProfile.Query().Where(visitorprofile.TenantIDEQ(tenantID))
		}

		total, err := base().Count(ctx)
		if err != nil {
			return InternalError("dashboard query failed", err.Error())
		}
		// Returning visitors are those with more than one session in the window.
		returning, err := base().Where(visitorprofile.VisitsCountGTE(2)).Count(ctx)
		if err != nil {
			return InternalError("dashboard query failed", err.Error())
		}
		engaged, err := base().Where(visitorprofile.EngagementScoreGTE(3)).Count(ctx)
		if err != nil {
			return InternalError("dashboard query failed", err.Error())
		}
		highIntent, err := base().Where(visitorprofile.EngagementScoreGTE(6)).Count(ctx)
		if err != nil {
			return InternalError("dashboard query failed", err.Error())
		}

		var segments []struct {
			Segment string `json:"engagement_segment"`
			Count   int    `json:"count"`
		}
		if err := base().
			GroupBy(visitorprofile.FieldEngagementSegment).
			Aggregate(ent.Count()).
			Scan(ctx, &segments); err != nil {
			return InternalError("dashboard query failed", err.Error())
		}

		avgScore := 0.0
		if total > 0 {
			if v, err := base().Aggregate(ent.Mean(visitorprofile.FieldEngagementScore)).Float64(ctx); err == nil {
				avgScore = v
			}
		}
		pageViews := 0
		if total > 0 {
			if v, err := base().Aggregate(ent.Sum(visitorprofile.FieldPageViews)).Int(ctx); err == nil {
				pageViews = v
			}
		}
		avgTimeMs := 0.0
		if total > 0 {
			if v, err := base().Aggregate(ent.Mean(visitorprofile.FieldAvgTimeOnPageMs)).Float64(ctx); err == nil {
				avgTimeMs = v
			}
		}

		hot, err := base().
			Order(ent.Desc(visitorprofile.FieldEngagementScore), ent.Desc(visitorprofile.FieldLastSeenAt)).
			Limit(5).
			All(ctx)
		if err != nil {
			return InternalError("dashboard query failed", err.Error())
		}

		topURLs, err := topRawEventGroups(ctx, client, tenantID, rawevent.FieldURL)
		if err != nil {
			return InternalError("dashboard query failed", err.Error())
		}
		topEventTypes, err := topRawEventGroups(ctx, client, tenantID, rawevent.FieldEventType)
		if err != nil {
			return InternalError("dashboard query failed", err.Error())
		}

		lastUpload, err := client.Upload.Query().
			Where(upload.TenantIDEQ(tenantID)).
			Order(ent.Desc(upload.FieldCreatedAt)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return InternalError("dashboard query failed", err.Error())
		}

		return OK(c, fiber.Map{
			"total_visitors":       total,
			"new_visitors":         total - returning,
			"returning_visitors":   returning,
			"engaged_visitors":     engaged,
			"high_intent_visitors": highIntent,
			"segments":             segments,
			"top_urls":             topURLs,
			"top_event_types":      topEventTypes,
			"avg_engagement_score": avgScore,
			"total_page_views":     pageViews,
			"avg_time_on_page":     pkg.FormatDurationCompact(time.Duration(avgTimeMs) * time.Millisecond),
			"avg_time_on_page_ms":  avgTimeMs,
			"hot_visitors":         hot,
			"last_upload":          lastUpload,
		})
	})
}

type groupCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// topRawEventGroups counts raw events grouped by a single string column and
// returns the five largest groups. Rows with a null value are excluded.
func topRawEventGroups(ctx context.Context, client *ent.Client, tenantID uuid.UUID, field string) ([]groupCount, error) {
	q := client.RawEvent.Query().Where(rawevent.TenantIDEQ(tenantID))
	switch field {
	case rawevent.FieldURL:
		q = q.Where(rawevent.URLNotNil())
	case rawevent.FieldEventType:
		q = q.Where(rawevent.EventTypeNotNil())
	}
	var rows []struct {
		URL       string `json:"url"`
		EventType string `json:"event_type"`
		Count     int    `json:"count"`
	}
	if err := q.GroupBy(field).Aggregate(ent.Count()).Scan(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]groupCount, 0, len(rows))
	for _, r := range rows {
		v := r.URL
		if field == rawevent.FieldEventType {
			v = r.EventType
		}
		out = append(out, groupCount{Value: v, Count: r.Count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > 5 {
		out = out[:5]
	}
	return out, nil
}
