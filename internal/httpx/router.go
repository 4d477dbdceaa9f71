package httpx

import (
	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/internal/config"
	"visitor-pulse-api/internal/esx"
	"visitor-pulse-api/internal/ingest"
	"visitor-pulse-api/internal/metrics"
	"visitor-pulse-api/internal/mqx"
	"visitor-pulse-api/internal/redisx"
)

// Providers carries the optional collaborators handlers may use. Any nil
// member degrades the corresponding feature instead of failing.
type Providers struct {
	MQ     mqx.Publisher
	ES     *esx.Client
	RDB    *redisx.Client
	Ingest *ingest.Processor
	Store  *config.Store
}

func Register(app *fiber.App, client *ent.Client, providers ...*Providers) {
	p := &Providers{}
	if len(providers) > 0 && providers[0] != nil {
		p = providers[0]
	}

	app.Get("/health", func(c *fiber.Ctx) error { return OK(c, fiber.Map{"status": "ok"}) })
	app.Get("/metrics", metrics.Handler())
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := app.Group("/api/v1")
	registerTenants(api, client)
	registerUploads(api, client, p)
	registerVisitors(api, client)
	registerDashboard(api, client)
	registerSearch(api, p)
}
