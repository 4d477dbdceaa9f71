package config

import (
	"log"
	"strconv"
	"time"

	agollo "github.com/apolloconfig/agollo/v4"
	apconf "github.com/apolloconfig/agollo/v4/env/config"
	"github.com/apolloconfig/agollo/v4/storage"
)

// overrideFromApollo starts Apollo client and overrides config values if present.
// Returns a closer to stop the Apollo client.
func overrideFromApollo(cfg *Config, store *Store) (func(), error) {
	if cfg.Apollo.Addrs == "" || cfg.Apollo.AppID == "" {
		log.Println("apollo: missing APOLLO_ADDRS or APOLLO_APP_ID; skip")
		return nil, nil
	}

	ns := cfg.Apollo.Namespace
	if ns == "" {
		ns = "application"
	}

	appCfg := &apconf.AppConfig{
		AppID:         cfg.Apollo.AppID,
		Cluster:       cfg.Apollo.Cluster,
		NamespaceName: ns,
		IP:            cfg.Apollo.Addrs, // comma separated
		Secret:        cfg.Apollo.AccessKey,
	}

	client, err := agollo.StartWithConfig(func() (*apconf.AppConfig, error) { return appCfg, nil })
	if err != nil {
		return nil, err
	}

	// Initial override
	applyApolloOverrides(client, ns, cfg)
	_ = store.UpdateValidated(cfg, map[string]bool{"apollo.init": true})

	// Listen changes: update store with changed keys
	client.AddChangeListener(&changeLogger{ns: ns, client: client, store: store})

	closer := func() {
		// agollo v4 exposes no Stop API; nothing to do
	}
	return closer, nil
}

func applyApolloOverrides(client agollo.Client, namespace string, cfg *Config) {
	cache := client.GetConfigCache(namespace)
	if cache == nil {
		return
	}
	setString := func(key string, dst *string) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); s != "" {
				*dst = s
			}
		}
	}
	setInt := func(key string, dst *int) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); s != "" {
				if n, err := strconv.Atoi(s); err == nil {
					*dst = n
				}
			}
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, err := cache.Get(key); err == nil {
			if s, _ := v.(string); s != "" {
				if d, err := time.ParseDuration(s); err == nil {
					*dst = d
				}
			}
		}
	}

	setString("app.env", &cfg.AppEnv)
	setString("server.addr", &cfg.Server.Addr)
	setString("log.level", &cfg.Log.Level)
	setString("log.format", &cfg.Log.Format)

	setString("pg.url", &cfg.PG.URL)
	setInt("pg.max_open", &cfg.PG.MaxOpenConns)
	setInt("pg.max_idle", &cfg.PG.MaxIdleConns)

	// Redis
	setString("redis.addr", &cfg.Redis.Addr)
	setString("redis.password", &cfg.Redis.Password)
	setInt("redis.db", &cfg.Redis.DB)

	// MQ
	setString("mq.url", &cfg.MQ.URL)

	// ES
	setString("es.addrs", &cfg.ES.Addrs)
	setString("es.username", &cfg.ES.Username)
	setString("es.password", &cfg.ES.Password)

	// Geo providers: switching geo.provider at runtime is the main use case
	setString("geo.provider", &cfg.Geo.Provider)
	setString("geo.api_key", &cfg.Geo.APIKey)
	setString("geo.nominatim_url", &cfg.Geo.NominatimURL)
	setDuration("geo.provider_timeout", &cfg.Geo.ProviderTimeout)
	setDuration("geo.geocode_interval", &cfg.Geo.GeocodeInterval)
	setDuration("geo.cache_ttl", &cfg.Geo.CacheTTL)

	// Ingest
	setInt("ingest.batch_size", &cfg.Ingest.BatchSize)
	setInt("ingest.max_concurrent", &cfg.Ingest.MaxConcurrent)
}

type changeLogger struct {
	ns     string
	client agollo.Client
	store  *Store
}

func (c *changeLogger) OnChange(e *storage.ChangeEvent) {
	log.Printf("apollo change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
	// Build new config based on current and apply overrides
	cur := c.store.Get()
	next := cloneConfig(cur)
	applyApolloOverrides(c.client, c.ns, next)
	changed := map[string]bool{}
	for k := range e.Changes {
		changed[k] = true
	}
	_ = c.store.UpdateValidated(next, changed)
}
func (c *changeLogger) OnNewestChange(e *storage.FullChangeEvent) {
	log.Printf("apollo full change: namespace=%s, keys=%d", e.Namespace, len(e.Changes))
}
