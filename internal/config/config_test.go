package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	isolateEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	isolateEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	isolateEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_HTTPAddr(t *testing.T) {
	t.Run("defaults to port 8000", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("APP_HTTP_ADDR", "")
		t.Setenv("PORT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.HTTPAddr != ":8000" {
			t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
		}
	})

	t.Run("port variable", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("APP_HTTP_ADDR", "")
		t.Setenv("PORT", "9090")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.HTTPAddr != ":9090" {
			t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
		}
	})

	t.Run("explicit addr wins", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("APP_HTTP_ADDR", "127.0.0.1:7000")
		t.Setenv("PORT", "9090")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.HTTPAddr != "127.0.0.1:7000" {
			t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("APP_HTTP_ADDR", "")
		t.Setenv("PORT", "abc")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid PORT")
		}
	})
}

func TestLoad_DatabaseURLFallback(t *testing.T) {
	t.Run("DATABASE_URL preferred", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("DATABASE_URL", "postgres://a@db1/football")
		t.Setenv("DB_URL", "postgres://b@db2/football")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBURL != "postgres://a@db1/football" {
			t.Fatalf("unexpected db url: %q", cfg.DBURL)
		}
	})

	t.Run("DB_URL fallback", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_URL", "postgres://b@db2/football")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBURL != "postgres://b@db2/football" {
			t.Fatalf("unexpected db url: %q", cfg.DBURL)
		}
	})
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SCRAPER_MAX_RETRIES=7\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("APP_ENV_FILE", path)
	t.Setenv("SCRAPER_MAX_RETRIES", "")
	// godotenv does not override variables that already exist, even when empty.
	os.Unsetenv("SCRAPER_MAX_RETRIES")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Scraper.MaxRetries != 7 {
		t.Fatalf("expected max retries from env file, got %d", cfg.Scraper.MaxRetries)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	isolateEnv(t)
	t.Setenv("APP_SERVICE_NAME", "football-data-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "football-data-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Run("default wildcard", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
	})
}

func TestLoad_DBPoolParsing(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("DB_MAX_OPEN_CONNS", "")
		t.Setenv("DB_MAX_IDLE_CONNS", "")
		t.Setenv("DB_CONN_MAX_LIFETIME", "")
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DBMaxOpenConns != 10 || cfg.DBMaxIdleConns != 5 {
			t.Fatalf("unexpected pool defaults: open=%d idle=%d", cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
		}
		if cfg.DBConnMaxLifetime != 30*time.Minute {
			t.Fatalf("unexpected conn lifetime: %s", cfg.DBConnMaxLifetime)
		}
		if cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=false by default")
		}
	})

	t.Run("invalid open conns", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("DB_MAX_OPEN_CONNS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for DB_MAX_OPEN_CONNS=0")
		}
	})

	t.Run("invalid prepared binary flag", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_ScraperConfigParsing(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("SCRAPER_BASE_URL", "https://results.example.com/")
		t.Setenv("SCRAPER_TIMEOUT", "")
		t.Setenv("SCRAPER_MAX_RETRIES", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.Scraper.BaseURL != "https://results.example.com" {
			t.Fatalf("expected trailing slash trimmed, got %q", cfg.Scraper.BaseURL)
		}
		if cfg.Scraper.Timeout != 20*time.Second {
			t.Fatalf("unexpected scraper timeout: %s", cfg.Scraper.Timeout)
		}
		if cfg.Scraper.MaxRetries != 2 {
			t.Fatalf("unexpected scraper retries: %d", cfg.Scraper.MaxRetries)
		}
		if cfg.Scraper.MinInterval != 500*time.Millisecond {
			t.Fatalf("unexpected scraper min interval: %s", cfg.Scraper.MinInterval)
		}
		if !cfg.Scraper.CircuitEnabled {
			t.Fatalf("expected circuit enabled by default")
		}
	})

	t.Run("negative min interval", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("SCRAPER_MIN_INTERVAL", "-1s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative SCRAPER_MIN_INTERVAL")
		}
	})

	t.Run("negative retries", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("SCRAPER_MAX_RETRIES", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative SCRAPER_MAX_RETRIES")
		}
	})

	t.Run("zero failure count", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("SCRAPER_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for SCRAPER_CIRCUIT_FAILURE_COUNT=0")
		}
	})
}

func TestLoad_PopulateConfigParsing(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("POPULATE_SEASON_YEARS", "")
		t.Setenv("POPULATE_LEAGUES", "")
		t.Setenv("POPULATE_REQUEST_DELAY", "")
		t.Setenv("POPULATE_LEAGUE_DELAY", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		want := []int{2022, 2023, 2024}
		if len(cfg.Populate.SeasonYears) != len(want) {
			t.Fatalf("unexpected season years: %+v", cfg.Populate.SeasonYears)
		}
		for i, year := range want {
			if cfg.Populate.SeasonYears[i] != year {
				t.Fatalf("unexpected season years: %+v", cfg.Populate.SeasonYears)
			}
		}
		if len(cfg.Populate.Leagues) != 0 {
			t.Fatalf("expected empty league subset, got %+v", cfg.Populate.Leagues)
		}
		if cfg.Populate.RequestDelay != 500*time.Millisecond {
			t.Fatalf("unexpected request delay: %s", cfg.Populate.RequestDelay)
		}
		if cfg.Populate.LeagueDelay != 2*time.Second {
			t.Fatalf("unexpected league delay: %s", cfg.Populate.LeagueDelay)
		}
		if !cfg.Populate.RebuildStats || cfg.Populate.StatsWorkers != 4 {
			t.Fatalf("unexpected stats rebuild defaults: %+v", cfg.Populate)
		}
	})

	t.Run("league subset", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("POPULATE_LEAGUES", "premier_league, brasileirao")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.Populate.Leagues) != 2 || cfg.Populate.Leagues[1] != "brasileirao" {
			t.Fatalf("unexpected leagues: %+v", cfg.Populate.Leagues)
		}
	})

	t.Run("invalid year", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("POPULATE_SEASON_YEARS", "2023,twenty")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid POPULATE_SEASON_YEARS")
		}
	})

	t.Run("zero workers", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("POPULATE_STATS_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for POPULATE_STATS_WORKERS=0")
		}
	})
}
