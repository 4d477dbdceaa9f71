//go:build integration
// +build integration

package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"visitor-pulse-api/ent/tenant"
	"visitor-pulse-api/ent/visitorprofile"
	"visitor-pulse-api/internal/config"
)

func Test_Open_With_PostgresContainer(t *testing.T) {
	ctx := context.Background()

	pg, err := postgres.RunContainer(ctx,
		postgres.WithDatabase("pulse"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithSQLDriver("pgx"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/pulse?sslmode=disable", host, port.Port())

	cfg := &config.Config{}
	cfg.PG.URL = dsn
	cfg.PG.MaxOpenConns = 5
	cfg.PG.MaxIdleConns = 2

	c, closeFn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer closeFn()

	ctx2, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.Schema.Create(ctx2); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	tn, err := c.Tenant.Create().SetName("integration").Save(ctx2)
	if err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	count, err := c.Tenant.Query().Where(tenant.NameEQ("integration")).Count(ctx2)
	if err != nil {
		t.Fatalf("count tenants: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 tenant, got %d", count)
	}

	// The profile upsert path relies on the composite unique index; make sure
	// ON CONFLICT resolves against it on a real postgres.
	now := time.Now().UTC().Truncate(time.Second)
	upsert := func(score int) error {
		return c.VisitorProfile.Create().
			SetTenantID(tn.ID).
			SetWindowStart(now.AddDate(0, 0, -30)).
			SetWindowEnd(now).
			SetVisitorKey("itest-visitor").
			SetFirstSeenAt(now).
			SetLastSeenAt(now).
			SetEngagementScore(score).
			OnConflictColumns(
				visitorprofile.FieldTenantID,
				visitorprofile.FieldWindowStart,
				visitorprofile.FieldWindowEnd,
				visitorprofile.FieldVisitorKey,
			).
			UpdateNewValues().
			Exec(ctx2)
	}
	if err := upsert(3); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := upsert(9); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	rows, err := c.VisitorProfile.Query().
		Where(visitorprofile.VisitorKeyEQ("itest-visitor")).
		All(ctx2)
	if err != nil {
		t.Fatalf("query profiles: %v", err)
	}
	if len(rows) != 1 || rows[0].EngagementScore != 9 {
		t.Fatalf("upsert did not converge: %+v", rows)
	}
}
