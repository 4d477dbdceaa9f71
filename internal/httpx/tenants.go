package httpx

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/ent/tenant"
)

// swagger:model CreateTenantRequest
type createTenantRequest struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// swagger:model UpdateTenantRequest
type updateTenantRequest struct {
	Name   *string `json:"name"`
	Domain *string `json:"domain"`
}

func registerTenants(r fiber.Router, client *ent.Client) {
	r.Post("/tenants", func(c *fiber.Ctx) error {
		var body createTenantRequest
		if err := c.BodyParser(&body); err != nil || body.Name == "" {
			return BadRequest("name required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		create := client.Tenant.Create().SetName(body.Name)
		if body.Domain != "" {
			create.SetDomain(body.Domain)
		}
		t, err := create.Save(ctx)
		if err != nil {
			return InternalError("create tenant failed", err.Error())
		}
		return Created(c, t)
	})

	r.Get("/tenants", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		pg := parsePaging(c)
		q := client.Tenant.Query().Order(ent.Desc(tenant.FieldCreatedAt))
		tenants, err := q.Limit(pg.Limit).Offset(pg.Offset).All(ctx)
		if err != nil {
			return InternalError("query tenants failed", err.Error())
		}
		var total *int
		if pg.WithTotal {
			if n, err := client.Tenant.Query().Count(ctx); err == nil {
				total = &n
			}
		}
		return List(c, tenants, listMeta(pg, len(tenants), total))
	})

	r.Get("/tenants/:id", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return BadRequest("invalid tenant id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		t, err := client.Tenant.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return NotFound("tenant not found")
			}
			return InternalError("get tenant failed", err.Error())
		}
		return OK(c, t)
	})

	r.Patch("/tenants/:id", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return BadRequest("invalid tenant id", c.Params("id"))
		}
		var body updateTenantRequest
		if err := c.BodyParser(&body); err != nil {
			return BadRequest("invalid body", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		upd := client.Tenant.UpdateOneID(id)
		if body.Name != nil {
			if *body.Name == "" {
				return BadRequest("name cannot be empty", nil)
			}
			upd.SetName(*body.Name)
		}
		if body.Domain != nil {
			if *body.Domain == "" {
				upd.ClearDomain()
			} else {
				upd.SetDomain(*body.Domain)
			}
		}
		t, err := upd.Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return NotFound("tenant not found")
			}
			return InternalError("update tenant failed", err.Error())
		}
		return OK(c, t)
	})

	r.Delete("/tenants/:id", func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return BadRequest("invalid tenant id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if err := client.Tenant.DeleteOneID(id).Exec(ctx); err != nil {
			if ent.IsNotFound(err) {
				return NotFound("tenant not found")
			}
			if ent.IsConstraintError(err) {
				return Conflict("tenant has uploads; delete them first", nil)
			}
			return InternalError("delete tenant failed", err.Error())
		}
		return OK(c, fiber.Map{"deleted": id})
	})
}
