package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "HRMS"

var ErrMissingDatabase = errors.New("database connection is not configured: set postgres.host or DATABASE_URL")

type Config struct {
	Env        string           `yaml:"env"`        // Env is the current environment: local, development, production.
	Postgres   PostgresConfig   `yaml:"postgres"`   // Postgres holds the database configuration.
	HTTP       HTTPConfig       `yaml:"http"`       // HTTP holds the public API server configuration.
	Monitoring MonitoringConfig `yaml:"monitoring"` // Monitoring holds the metrics/health server configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	URL      string `yaml:"url"`      // URL is a full connection string, it wins over the discrete fields.
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Dbname   string `yaml:"db_name"`  // Dbname is the name of the database.
	SSLMode  string `yaml:"ssl_mode"` // SSLMode is passed as the sslmode query parameter.
}

// HTTPConfig struct holds the configuration of the public REST API.
type HTTPConfig struct {
	Address         string        `yaml:"address"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins"`
}

// MonitoringConfig struct holds the configuration of the /metrics and /healthz server.
type MonitoringConfig struct {
	Port int `yaml:"port"`
}

// DSN returns the connection string for pgx. Credentials are escaped.
func (p PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, p.Port),
		Path:     "/" + p.Dbname,
		RawQuery: "sslmode=" + p.SSLMode,
	}

	return dsn.String()
}

// MustLoad loads the configuration from the file pointed by CONFIG_PATH (optional) and the environment.
// It panics if the configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

// Load reads the configuration. An empty path means environment only.
// Environment variables use the HRMS_ prefix, e.g. HRMS_POSTGRES_HOST; DATABASE_URL is honoured as well.
func Load(path string) (*Config, error) {
	vpr := viper.New()
	setDefaults(vpr)

	vpr.SetEnvPrefix(envPrefix)
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()
	if err := vpr.BindEnv("postgres.url", envPrefix+"_POSTGRES_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		vpr.SetConfigFile(path)
		if err := vpr.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Env: vpr.GetString("env"),
		Postgres: PostgresConfig{
			URL:      vpr.GetString("postgres.url"),
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
			SSLMode:  vpr.GetString("postgres.ssl_mode"),
		},
		HTTP: HTTPConfig{
			Address:     vpr.GetString("http.address"),
			CORSOrigins: splitList(vpr.GetStringSlice("http.cors_origins")),
		},
		Monitoring: MonitoringConfig{
			Port: vpr.GetInt("monitoring.port"),
		},
	}

	var err error
	if cfg.HTTP.ReadTimeout, err = parseDuration(vpr, "http.read_timeout"); err != nil {
		return nil, err
	}
	if cfg.HTTP.WriteTimeout, err = parseDuration(vpr, "http.write_timeout"); err != nil {
		return nil, err
	}
	if cfg.HTTP.ShutdownTimeout, err = parseDuration(vpr, "http.shutdown_timeout"); err != nil {
		return nil, err
	}

	if cfg.Postgres.URL == "" && cfg.Postgres.Host == "" {
		return nil, ErrMissingDatabase
	}

	return cfg, nil
}

func setDefaults(vpr *viper.Viper) {
	vpr.SetDefault("env", "local")
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("postgres.ssl_mode", "disable")
	vpr.SetDefault("http.address", ":8000")
	vpr.SetDefault("http.read_timeout", "10s")
	vpr.SetDefault("http.write_timeout", "10s")
	vpr.SetDefault("http.shutdown_timeout", "10s")
	vpr.SetDefault("http.cors_origins", []string{"*"})
	vpr.SetDefault("monitoring.port", 8080) //nolint:mnd // conventional metrics port
}

func parseDuration(vpr *viper.Viper, key string) (time.Duration, error) {
	value, err := time.ParseDuration(vpr.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s from configuration: %w", key, err)
	}

	return value, nil
}

// splitList accepts both YAML lists and comma separated environment values.
func splitList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}

	return result
}
