package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

const DefaultPath = "config/config.toml"

type DatabaseConfig struct {
	// Driver is one of sqlserver, postgres, sqlite or memgraph.
	Driver   string `toml:"driver"`
	Server   string `toml:"server"`
	Port     int    `toml:"port"`
	Name     string `toml:"name"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	// DSN, when set, is passed to the driver verbatim.
	DSN string `toml:"dsn"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type TreeConfig struct {
	Deduplicate bool `toml:"deduplicate"`
}

type ChartsConfig struct {
	// GenderMode is "first" or "sum".
	GenderMode string `toml:"gender_mode"`
}

type Config struct {
	Database DatabaseConfig `toml:"database"`
	Memgraph MemgraphConfig `toml:"memgraph"`
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
	Tree     TreeConfig     `toml:"tree"`
	Charts   ChartsConfig   `toml:"charts"`
}

func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:   "sqlserver",
			Server:   ".",
			Name:     "SjDataModel",
			User:     "sa",
			Password: "Aa1234",
		},
		Memgraph: MemgraphConfig{
			URI: "bolt://localhost:7687",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Log: LogConfig{
			Level: "info",
		},
		Charts: ChartsConfig{
			GenderMode: "first",
		},
	}
}

// Load reads the TOML file at path on top of Default.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides cfg with any environment variables that are set.
func (c *Config) ApplyEnv() error {
	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.Server, "DB_SERVER")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DSN, "DATABASE_URL")
	setString(&c.Memgraph.URI, "MEMGRAPH_URI")
	setString(&c.Memgraph.User, "MEMGRAPH_USER")
	setString(&c.Memgraph.Password, "MEMGRAPH_PASSWORD")
	setString(&c.Server.Host, "HOST")
	setString(&c.Log.Level, "LOG_LEVEL")

	if err := setInt(&c.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	return setInt(&c.Server.Port, "PORT")
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlserver", "postgres", "sqlite", "memgraph":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	switch c.Charts.GenderMode {
	case "first", "sum":
	default:
		return fmt.Errorf("unsupported charts.gender_mode: %q", c.Charts.GenderMode)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
