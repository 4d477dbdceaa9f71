package config

import (
	"os"
	"testing"
	"time"
)

func TestGetIntBool(t *testing.T) {
	os.Setenv("X_INT", "42")
	t.Cleanup(func() { os.Unsetenv("X_INT") })
	if v := getInt("X_INT", 1); v != 42 {
		t.Fatalf("want 42, got %d", v)
	}

	os.Setenv("X_BOOL_T", "true")
	os.Setenv("X_BOOL_F", "false")
	t.Cleanup(func() { os.Unsetenv("X_BOOL_T"); os.Unsetenv("X_BOOL_F") })
	if !getBool("X_BOOL_T", false) {
		t.Fatalf("want true")
	}
	if getBool("X_BOOL_F", true) {
		t.Fatalf("want false")
	}
}

func TestGetDuration(t *testing.T) {
	os.Setenv("X_DUR", "1500ms")
	t.Cleanup(func() { os.Unsetenv("X_DUR") })
	if d := getDuration("X_DUR", time.Second); d != 1500*time.Millisecond {
		t.Fatalf("want 1.5s, got %v", d)
	}
	if d := getDuration("X_DUR_MISSING", 2*time.Second); d != 2*time.Second {
		t.Fatalf("want default, got %v", d)
	}
}

func TestLoadGeoDefaults(t *testing.T) {
	cfg, store, closer, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if closer != nil {
		defer closer()
	}
	if store.Get() != cfg {
		t.Fatalf("store should hold loaded config")
	}
	if cfg.Geo.Provider != "ipinfo" {
		t.Fatalf("default geo provider: %q", cfg.Geo.Provider)
	}
	if cfg.Geo.GeocodeInterval != time.Second {
		t.Fatalf("default geocode interval: %v", cfg.Geo.GeocodeInterval)
	}
	if cfg.Ingest.BatchSize != 1000 {
		t.Fatalf("default batch size: %d", cfg.Ingest.BatchSize)
	}
}
