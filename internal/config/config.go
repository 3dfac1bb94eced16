package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
)

// DefaultSessionSecret is only accepted when AppEnv is "development".
const DefaultSessionSecret = "dev-session-secret-change-me"

// Config is read from flags, falling back to environment variables.
type Config struct {
	Port   string `arg:"--port,env:PORT" default:"8080" help:"HTTP listen port"`
	AppEnv string `arg:"--app-env,env:APP_ENV" default:"development" help:"development or production"`

	DBDSN      string `arg:"--db-dsn,env:DB_DSN" help:"full postgres DSN, overrides the DB_* parts"`
	DBHost     string `arg:"--db-host,env:DB_HOST" default:"localhost"`
	DBPort     string `arg:"--db-port,env:DB_PORT" default:"5432"`
	DBUser     string `arg:"--db-user,env:DB_USER" default:"postgres"`
	DBPassword string `arg:"--db-password,env:DB_PASSWORD" default:"postgres"`
	DBName     string `arg:"--db-name,env:DB_NAME" default:"dashboard"`
	DBSSLMode  string `arg:"--db-sslmode,env:DB_SSLMODE" default:"disable"`

	RedisAddr     string        `arg:"--redis-addr,env:REDIS_ADDR" help:"page cache is disabled when empty"`
	RedisPassword string        `arg:"--redis-password,env:REDIS_PASSWORD"`
	RedisDB       int           `arg:"--redis-db,env:REDIS_DB" default:"0"`
	CacheTTL      time.Duration `arg:"--cache-ttl,env:CACHE_TTL" default:"5m"`

	SessionSecret string `arg:"--session-secret,env:SESSION_SECRET" default:"dev-session-secret-change-me" help:"required outside development"`
	CORSOrigins   string `arg:"--cors-origins,env:CORS_ORIGINS" default:"http://localhost:3000" help:"comma separated"`
	BcryptCost    int    `arg:"--bcrypt-cost,env:BCRYPT_COST" default:"10"`

	SeedAtomic      bool          `arg:"--seed-atomic,env:SEED_ATOMIC" default:"true"`
	SeedConcurrency int           `arg:"--seed-concurrency,env:SEED_CONCURRENCY" default:"8"`
	ArtificialDelay time.Duration `arg:"--artificial-delay,env:ARTIFICIAL_DELAY" default:"0s" help:"slow down revenue and latest invoice reads"`

	LogLevel  string `arg:"--log-level,env:LOG_LEVEL" default:"info"`
	LogFormat string `arg:"--log-format,env:LOG_FORMAT" default:"console" help:"console or json"`
}

// Load parses args (without the program name) and the environment.
func Load(args []string) (*Config, error) {
	var cfg Config
	p, err := arg.NewParser(arg.Config{Program: "server"}, &cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Parse(args); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			p.WriteHelp(os.Stdout)
		}
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.UsesDefaultSessionSecret() && !c.IsDevelopment() {
		return fmt.Errorf("SESSION_SECRET must be set when APP_ENV is %q", c.AppEnv)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(c.AppEnv), "development")
}

// UsesDefaultSessionSecret reports whether session cookies are signed with the
// built-in development key.
func (c *Config) UsesDefaultSessionSecret() bool {
	return c.SessionSecret == "" || c.SessionSecret == DefaultSessionSecret
}

func (c *Config) DSN() string {
	if strings.TrimSpace(c.DBDSN) != "" {
		return c.DBDSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
