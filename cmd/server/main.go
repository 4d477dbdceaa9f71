// Package main is the entry point for the API server
//
//	@title			Visitor Pulse API
//	@version		1.0
//	@description	Multi-tenant web analytics: CSV ingestion, sessionization, engagement scoring and visitor profiles.
//
//	@contact.name	API Support
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@schemes	http https
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"visitor-pulse-api/internal/config"
	"visitor-pulse-api/internal/db"
	"visitor-pulse-api/internal/esx"
	"visitor-pulse-api/internal/geo"
	"visitor-pulse-api/internal/httpx"
	"visitor-pulse-api/internal/ingest"
	"visitor-pulse-api/internal/logx"
	"visitor-pulse-api/internal/metrics"
	"visitor-pulse-api/internal/mqx"
	"visitor-pulse-api/internal/redisx"
	"visitor-pulse-api/internal/server"

	_ "visitor-pulse-api/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load config (env first; optional Apollo override)
	cfg, store, apClose, err := config.Load()
	if err != nil {
		panic(err)
	}
	if apClose != nil {
		defer apClose()
	}

	// Init global logger first
	logx.Init(cfg.Log.Level, cfg.Log.Format)
	mainLogger := logx.GetScope("main")

	mainLogger.Info("config loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Server.Addr),
		zap.String("log.level", cfg.Log.Level),
		zap.String("geo.provider", cfg.Geo.Provider),
		zap.Int("ingest.batch_size", cfg.Ingest.BatchSize),
	)

	// Open DB (Ent + pgx)
	client, closeDB, err := db.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Error("open db error", "err", err)
		panic(err)
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		mainLogger.Sugar().Error("auto migrate error", "err", err)
		panic(err)
	}

	// Optional deps: Redis, MQ, ES
	rdb, rclose, err := redisx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("redis init failed", "err", err)
	} else {
		defer rclose()
	}

	var publisher mqx.Publisher
	if cfg.MQ.URL != "" {
		if pub, err := mqx.NewRabbitPublisher(cfg.MQ.URL, "uploads"); err != nil {
			mainLogger.Sugar().Warn("mq init failed", "err", err)
		} else {
			publisher = pub
			defer pub.Close()
		}
	}

	esClient, esClose, err := esx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("es init failed", "err", err)
	} else {
		defer esClose()
	}

	metrics.Init()

	// Pipeline wiring
	resolver := geo.New(client, rdb, store)
	processor := ingest.NewProcessor(client, resolver, publisher, esClient, store)

	// Fiber app and routes
	app := fiber.New(fiber.Config{
		ErrorHandler: httpx.ErrorHandler(),
		BodyLimit:    64 * 1024 * 1024, // CSV uploads
	})
	httpx.RegisterCommonMiddlewares(app)
	providers := &httpx.Providers{MQ: publisher, ES: esClient, RDB: rdb, Ingest: processor, Store: store}
	httpx.Register(app, client, providers)

	// Dynamic config: validate before applying, rollback on error
	store.AddValidator(func(newCfg *config.Config, changed map[string]bool) error {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			if newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
				return fmt.Errorf("PG_MAX_IDLE cannot exceed PG_MAX_OPEN")
			}
		}
		if changed["ingest.batch_size"] && newCfg.Ingest.BatchSize <= 0 {
			return fmt.Errorf("INGEST_BATCH_SIZE must be positive")
		}
		if changed["ingest.max_concurrent"] && newCfg.Ingest.MaxConcurrent <= 0 {
			return fmt.Errorf("INGEST_MAX_CONCURRENT must be positive")
		}
		return nil
	})

	store.Watch(func(newCfg *config.Config, changed map[string]bool) {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			db.UpdatePool(newCfg.PG.MaxOpenConns, newCfg.PG.MaxIdleConns)
			mainLogger.Info("db pool updated",
				zap.Int("max_open", newCfg.PG.MaxOpenConns),
				zap.Int("max_idle", newCfg.PG.MaxIdleConns),
			)
		}
		if changed["log.level"] || changed["log.format"] {
			logx.Init(newCfg.Log.Level, newCfg.Log.Format)
			mainLogger.Info("logger reconfigured",
				zap.String("level", newCfg.Log.Level),
				zap.String("format", newCfg.Log.Format),
			)
		}
		if changed["geo.provider"] || changed["geo.api_key"] {
			mainLogger.Info("geo provider reconfigured", zap.String("provider", newCfg.Geo.Provider))
		}
		if changed["server.addr"] {
			mainLogger.Warn("server.addr changed; restart required to take effect",
				zap.String("addr", newCfg.Server.Addr),
			)
		}
	})

	// Graceful shutdown
	go func() {
		ln, err := server.GetListener(cfg.Server.Addr)
		if err != nil {
			mainLogger.Sugar().Errorf("listener error: %v", err)
			return
		}
		if err := app.Listener(ln); err != nil {
			mainLogger.Sugar().Infof("fiber exit: %v", err)
		}
	}()
	mainLogger.Sugar().Infof("server started on %s", cfg.Server.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	mainLogger.Sugar().Info("shutting down...")
	_ = app.Shutdown()
}
