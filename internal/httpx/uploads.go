package httpx

import (
	"context"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/ent/tenant"
	"visitor-pulse-api/ent/upload"
	"visitor-pulse-api/internal/httpx/mw"
)

// Uploads stay in "processing" while the pipeline runs in the background;
// pollers read the terminal status from GET /uploads/:id.
func registerUploads(r fiber.Router, client *ent.Client, p *Providers) {
	rateLimit := mw.RateLimit(p.RDB, 60, 30)

	r.Post("/uploads", rateLimit, func(c *fiber.Ctx) error {
		tenantID, err := uuid.Parse(c.FormValue("tenant_id"))
		if err != nil {
			return BadRequest("valid tenant_id required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		exists, err := client.Tenant.Query().Where(tenant.IDEQ(tenantID)).Exist(ctx)
		if err != nil {
			return InternalError("tenant lookup failed", err.Error())
		}
		if !exists {
			return NotFound("tenant not found")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return BadRequest("file required", nil)
		}
		f, err := fh.Open()
		if err != nil {
			return BadRequest("file unreadable", err.Error())
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return BadRequest("file unreadable", err.Error())
		}

		up, err := client.Upload.Create().
			SetTenantID(tenantID).
			SetFilename(fh.Filename).
			Save(ctx)
		if err != nil {
			return InternalError("create upload failed", err.Error())
		}

		if p.Ingest != nil {
			go func() {
				bg, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
				defer cancel()
				if _, err := p.Ingest.ProcessUpload(bg, tenantID, up.ID, data); err != nil {
					httpxLogger.Warn("upload processing failed",
						zap.String("upload_id", up.ID.String()), zap.Error(err))
				}
			}()
		}
		return Accepted(c, fiber.Map{"id": up.ID, "status": up.Status})
	})

	r.Get("/uploads/:id", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return BadRequest("invalid upload id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		up, err := client.Upload.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return NotFound("upload not found")
			}
			return InternalError("get upload failed", err.Error())
		}
		return OK(c, up)
	})

	r.Get("/uploads", func(c *fiber.Ctx) error {
		tenantID, err := uuid.Parse(c.Query("tenant_id"))
		if err != nil {
			return BadRequest("valid tenant_id required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		pg := parsePaging(c)
		uploads, err := client.Upload.Query().
			Where(upload.TenantIDEQ(tenantID)).
			Order(ent.Desc(upload.FieldCreatedAt)).
			Limit(pg.Limit).Offset(pg.Offset).
			All(ctx)
		if err != nil {
			return InternalError("query uploads failed", err.Error())
		}
		var total *int
		if pg.WithTotal {
			if n, err := client.Upload.Query().Where(upload.TenantIDEQ(tenantID)).Count(ctx); err == nil {
				total = &n
			}
		}
		return List(c, uploads, listMeta(pg, len(uploads), total))
	})
}
