package config

import (
	"strings"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_MissingSecret(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{}))
	if err == nil {
		t.Fatalf("expected error for missing JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected JWT_SECRET in error, got %v", err)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{"JWT_SECRET": "s3cret"}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.HTTPPort != DefaultHTTPPort {
		t.Fatalf("expected port %s, got %s", DefaultHTTPPort, cfg.App.HTTPPort)
	}
	if cfg.JWT.ExpiresIn != 7*24*time.Hour {
		t.Fatalf("expected 7d expiry, got %s", cfg.JWT.ExpiresIn)
	}
	if cfg.RateLimit.Max != 200 || cfg.RateLimit.Window != 15*time.Minute {
		t.Fatalf("unexpected rate limit %+v", cfg.RateLimit)
	}
	if cfg.Upload.MaxResumeBytes != 5*1024*1024 {
		t.Fatalf("unexpected resume ceiling %d", cfg.Upload.MaxResumeBytes)
	}
	if cfg.Upload.BodyLimit <= int(cfg.Upload.MaxResumeBytes) {
		t.Fatalf("body limit must leave room above the resume ceiling")
	}
	if !cfg.Applications.ListRequiresAuth {
		t.Fatalf("expected application listing to require auth by default")
	}
	if len(cfg.App.CORSOrigins) != 2 {
		t.Fatalf("expected deduplicated origins, got %v", cfg.App.CORSOrigins)
	}
}

func TestFromEnv_InvalidValues(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{
		"JWT_SECRET":     "s3cret",
		"JWT_EXPIRES_IN": "soon",
		"RATE_LIMIT_MAX": "-3",
	}))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "JWT_EXPIRES_IN") || !strings.Contains(err.Error(), "RATE_LIMIT_MAX") {
		t.Fatalf("expected both keys reported, got %v", err)
	}
}

func TestParseDuration(t *testing.T) {
	cases := map[string]time.Duration{
		"7d":  7 * 24 * time.Hour,
		"1h":  time.Hour,
		"90s": 90 * time.Second,
	}
	for in, want := range cases {
		got, err := ParseDuration(in)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", in, err)
		}
		if got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseDuration("xd"); err == nil {
		t.Fatalf("expected error for xd")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{DBHost: "db", DBPort: "5432", DBUser: "u", DBName: "n", DBSSLMode: "disable"}
	if strings.Contains(c.DSN(), "password") {
		t.Fatalf("empty password must be omitted: %s", c.DSN())
	}
	c.DBPassword = "it's"
	if !strings.Contains(c.DSN(), `password='it\'s'`) {
		t.Fatalf("expected quoted password, got %s", c.DSN())
	}
}
