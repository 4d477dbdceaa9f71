package httpx

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"visitor-pulse-api/internal/esx"
)

func registerSearch(r fiber.Router, p *Providers) {
	r.Get("/search/visitors", func(c *fiber.Ctx) error {
		tenantID, err := uuid.Parse(c.Query("tenant_id"))
		if err != nil {
			return BadRequest("valid tenant_id required", nil)
		}
		q := c.Query("q")
		if q == "" {
			return BadRequest("q required", nil)
		}
		from := c.QueryInt("offset", 0)
		size := clamp(c.QueryInt("limit", 20), 1, 100)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		res, err := esx.SearchProfiles(ctx, p.ES, esx.ProfilesIndex, tenantID.String(), q, from, size)
		if err != nil {
			return InternalError("es search failed", err.Error())
		}
		return OK(c, res)
	})
}
