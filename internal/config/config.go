package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	JWT          JWTConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
	Upload       UploadConfig
	Admin        AdminConfig
	Applications ApplicationsConfig
}

type AppConfig struct {
	AppName        string
	Environment    string
	HTTPPort       string
	CORSOrigins    []string
	MigrateOnStart bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	HealthTTL time.Duration
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type UploadConfig struct {
	MaxResumeBytes int64
	BodyLimit      int
}

// AdminConfig is only read by the seeder.
type AdminConfig struct {
	SeedEmail    string
	SeedPassword string
}

type ApplicationsConfig struct {
	ListRequiresAuth bool
}

const (
	DefaultHTTPPort       = "4000"
	DefaultCORSOrigin     = "http://localhost:5173"
	DefaultJWTExpiresIn   = 7 * 24 * time.Hour
	DefaultRateLimitMax   = 200
	DefaultRateLimitWin   = 15 * time.Minute
	DefaultMaxResumeBytes = 5 * 1024 * 1024
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads the process environment, after merging a .env file from the
// working directory when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	dur := func(key string, def time.Duration) time.Duration {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		d, err := ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	num := func(key string, def int64) int64 {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	flag := func(key string, def bool) bool {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:        opt("APP_NAME", "jobboard"),
		Environment:    opt("APP_ENV", "development"),
		HTTPPort:       opt("HTTP_PORT", opt("PORT", DefaultHTTPPort)),
		CORSOrigins:    corsOrigins(opt("CORS_ORIGIN", DefaultCORSOrigin)),
		MigrateOnStart: flag("MIGRATE_ON_START", true),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", "localhost"),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     opt("DB_NAME", "jobboard"),
		DBUser:     opt("DB_USER", "postgres"),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        dur("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(num("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(num("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   dur("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   dur("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: dur("DB_POOL_HEALTH_CHECK_PERIOD", 0),

		HealthTTL: dur("DB_HEALTH_TTL", 2*time.Second),
	}

	cfg.JWT = JWTConfig{
		Secret:    req("JWT_SECRET"),
		ExpiresIn: dur("JWT_EXPIRES_IN", DefaultJWTExpiresIn),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		DB:       int(num("REDIS_DB", 0)),
	}

	cfg.RateLimit = RateLimitConfig{
		Max:    int(num("RATE_LIMIT_MAX", DefaultRateLimitMax)),
		Window: dur("RATE_LIMIT_WINDOW", DefaultRateLimitWin),
	}

	maxResume := num("RESUME_MAX_BYTES", DefaultMaxResumeBytes)
	cfg.Upload = UploadConfig{
		MaxResumeBytes: maxResume,
		// Multipart framing and the other form fields ride on top of the file.
		BodyLimit: int(maxResume) + 1024*1024,
	}

	cfg.Admin = AdminConfig{
		SeedEmail:    strings.ToLower(opt("ADMIN_EMAIL", "")),
		SeedPassword: opt("ADMIN_PASSWORD", ""),
	}

	cfg.Applications = ApplicationsConfig{
		ListRequiresAuth: flag("APPLICATIONS_LIST_REQUIRE_AUTH", true),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// ParseDuration accepts time.ParseDuration syntax plus a whole-day suffix
// such as "7d".
func ParseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasSuffix(raw, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", raw)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(raw)
}

func corsOrigins(primary string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	add := func(o string) {
		o = strings.TrimSpace(o)
		if o == "" {
			return
		}
		if _, ok := seen[o]; ok {
			return
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	for _, o := range strings.Split(primary, ",") {
		add(o)
	}
	add("http://localhost:5173")
	add("http://localhost:5174")
	return out
}

func (c DatabaseConfig) DSN() string {
	parts := []string{
		"host=" + strings.TrimSpace(c.DBHost),
		"port=" + strings.TrimSpace(c.DBPort),
		"user=" + strings.TrimSpace(c.DBUser),
	}
	if c.DBPassword != "" {
		parts = append(parts, "password="+quoteDSNValue(c.DBPassword))
	}
	parts = append(parts,
		"dbname="+strings.TrimSpace(c.DBName),
		"sslmode="+strings.TrimSpace(c.DBSSLMode),
	)
	return strings.Join(parts, " ")
}

func quoteDSNValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
