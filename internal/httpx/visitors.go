package httpx

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/ent/rawevent"
	"visitor-pulse-api/ent/visitorprofile"
)

func registerVisitors(r fiber.Router, client *ent.Client) {
	r.Get("/visitors", func(c *fiber.Ctx) error {
		tenantID, err := uuid.Parse(c.Query("tenant_id"))
		if err != nil {
			return BadRequest("valid tenant_id required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		pg := parsePaging(c)

		q := client.VisitorProfile.Query().Where(visitorprofile.TenantIDEQ(tenantID))
		if seg := c.Query("segment"); seg != "" {
			q = q.Where(visitorprofile.EngagementSegmentEQ(seg))
		}
		if min := c.QueryInt("min_score", -1); min >= 0 {
			q = q.Where(visitorprofile.EngagementScoreGTE(min))
		}

		switch pg.Sort {
		case "", "score:desc":
			q = q.Order(ent.Desc(visitorprofile.FieldEngagementScore), ent.Desc(visitorprofile.FieldLastSeenAt))
		case "last_seen:desc":
			q = q.Order(ent.Desc(visitorprofile.FieldLastSeenAt))
		case "visits:desc":
			q = q.Order(ent.Desc(visitorprofile.FieldVisitsCount))
		default:
			return BadRequest("unsupported sort", pg.Sort)
		}

		profiles, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return InternalError("query visitors failed", err.Error())
		}
		var total *int
		if pg.WithTotal {
			tq := client.VisitorProfile.Query().Where(visitorprofile.TenantIDEQ(tenantID))
			if seg := c.Query("segment"); seg != "" {
				tq = tq.Where(visitorprofile.EngagementSegmentEQ(seg))
			}
			if n, err := tq.Count(ctx); err == nil {
				total = &n
			}
		}
		return List(c, profiles, listMeta(pg, len(profiles), total))
	})

	r.Get("/visitors/:id", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return BadRequest("invalid visitor profile id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		profile, err := client.VisitorProfile.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return NotFound("visitor profile not found")
			}
			return InternalError("get visitor failed", err.Error())
		}

		events, err := client.RawEvent.Query().
			Where(rawevent.TenantIDEQ(profile.TenantID), rawevent.VisitorKeyEQ(profile.VisitorKey)).
			Order(ent.Desc(rawevent.FieldEventTs)).
			Limit(50).
			All(ctx)
		if err != nil {
			return InternalError("query visitor events failed", err.Error())
		}
		return OK(c, fiber.Map{"profile": profile, "recent_events": events})
	})
}
