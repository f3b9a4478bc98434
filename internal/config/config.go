package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/vadimbarashkov/shortlink/internal/codegen"
	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	minShortCodeLength = 4
	maxShortCodeLength = codegen.MaxLength
)

type Config struct {
	Env       string     `yaml:"env" envconfig:"APP_ENV"`
	BaseURL   string     `yaml:"base_url" split_words:"true"`
	ShortCode ShortCode  `yaml:"short_code" envconfig:"SHORT_CODE"`
	HTTP      HTTPServer `yaml:"http_server" envconfig:"HTTP"`
	Postgres  Postgres   `yaml:"postgres" envconfig:"POSTGRES"`
}

type ShortCode struct {
	Length      int `yaml:"length" split_words:"true"`
	MaxAttempts int `yaml:"max_attempts" split_words:"true"`
}

var defaultShortCode = ShortCode{
	Length:      6,
	MaxAttempts: 5,
}

type HTTPServer struct {
	Port            int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true"`
	WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" split_words:"true"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" split_words:"true"`
	CertFile        string        `yaml:"cert_file" split_words:"true"`
	KeyFile         string        `yaml:"key_file" split_words:"true"`
}

var defaultHTTPServer = HTTPServer{
	Port:            4000,
	ReadTimeout:     5 * time.Second,
	WriteTimeout:    10 * time.Second,
	IdleTimeout:     time.Minute,
	ShutdownTimeout: 10 * time.Second,
	MaxHeaderBytes:  1 << 20,
}

// legacyEnv holds variable names kept for older deployments. POSTGRES_URL takes
// precedence over DATABASE_URL, HTTP_PORT over PORT.
type legacyEnv struct {
	DatabaseURL string `envconfig:"DATABASE_URL"`
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type Postgres struct {
	URL             string        `yaml:"url" split_words:"true"`
	User            string        `yaml:"user" split_words:"true"`
	Password        string        `yaml:"password" split_words:"true"`
	Host            string        `yaml:"host" split_words:"true"`
	Port            int           `yaml:"port" split_words:"true"`
	DB              string        `yaml:"db" split_words:"true"`
	SSLMode         string        `yaml:"sslmode" split_words:"true"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" split_words:"true"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" split_words:"true"`
	MaxIdleConns    int           `yaml:"max_idle_conns" split_words:"true"`
	MaxOpenConns    int           `yaml:"max_open_conns" split_words:"true"`
	QueryTimeout    time.Duration `yaml:"query_timeout" split_words:"true"`
}

var defaultPostgres = Postgres{
	Host:            "localhost",
	Port:            5432,
	SSLMode:         "disable",
	ConnMaxIdleTime: 5 * time.Minute,
	ConnMaxLifetime: 30 * time.Minute,
	MaxIdleConns:    5,
	MaxOpenConns:    20,
	QueryTimeout:    5 * time.Second,
}

// DSN returns URL when set and otherwise builds a postgres:// DSN from the separate fields.
func (p *Postgres) DSN() string {
	if p.URL != "" {
		return p.URL
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DB, p.SSLMode)
}

// Load reads the yaml file at path on top of the defaults and then applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	setDefaults(&cfg)

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	var legacy legacyEnv
	if err := envconfig.Process("", &legacy); err != nil {
		return nil, fmt.Errorf("%s: failed to process environment: %w", op, err)
	}
	if legacy.DatabaseURL != "" {
		cfg.Postgres.URL = legacy.DatabaseURL
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to process environment: %w", op, err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}

	return nil
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvStage, EnvProd:
	default:
		return fmt.Errorf("invalid env %q", c.Env)
	}

	if c.BaseURL == "" {
		return errors.New("base url is required")
	}
	if c.ShortCode.Length < minShortCodeLength || c.ShortCode.Length > maxShortCodeLength {
		return fmt.Errorf("short code length must be in [%d, %d], got %d",
			minShortCodeLength, maxShortCodeLength, c.ShortCode.Length)
	}
	if c.ShortCode.MaxAttempts <= 0 {
		return errors.New("short code max attempts must be positive")
	}
	if c.Postgres.MaxOpenConns <= 0 {
		return errors.New("postgres max open conns must be positive")
	}
	if c.Env == EnvProd && (c.HTTP.CertFile == "" || c.HTTP.KeyFile == "") {
		return errors.New("cert and key files are required in prod")
	}

	return nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.ShortCode = defaultShortCode
	cfg.HTTP = defaultHTTPServer
	cfg.Postgres = defaultPostgres
}
