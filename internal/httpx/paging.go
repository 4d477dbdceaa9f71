package httpx

import (
	"github.com/gofiber/fiber/v2"
)

type PagingParams struct {
	Limit     int
	Offset    int
	Sort      string
	WithTotal bool
}

func parsePaging(c *fiber.Ctx) PagingParams {
	return PagingParams{
		Limit:     clamp(c.QueryInt("limit", 20), 1, 100),
		Offset:    clamp(c.QueryInt("offset", 0), 0, 1<<30),
		Sort:      c.Query("sort", ""),
		WithTotal: c.Query("with_total", "false") == "true",
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func listMeta(p PagingParams, count int, total *int) PageMeta {
	next := p.Offset + count
	return PageMeta{
		Limit:      p.Limit,
		Offset:     p.Offset,
		Count:      count,
		NextOffset: &next,
		HasMore:    count == p.Limit,
		Total:      total,
	}
}
