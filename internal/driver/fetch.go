package driver

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/agenthands/orgchart/internal/config"
	"github.com/agenthands/orgchart/internal/core/model"
)

// FetchData opens the configured backend, runs the aggregation query once and closes
// the connection before returning.
func FetchData(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]model.HierarchyRow, error) {
	src, err := NewSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Connected to data source", zap.String("driver", cfg.Database.Driver))

	rows, err := Fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded hierarchy rows", zap.Int("rows", len(rows)))
	return rows, nil
}

// Fetch reads every row from src and always closes it.
func Fetch(ctx context.Context, src RowSource) ([]model.HierarchyRow, error) {
	rows, err := src.FetchRows(ctx)
	closeErr := src.Close(ctx)
	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close data source: %w", closeErr)
	}
	return rows, nil
}

func NewSource(ctx context.Context, cfg *config.Config) (RowSource, error) {
	if cfg.Database.Driver == "memgraph" {
		return NewMemgraphSource(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
	}

	driverName, dsn, err := DSN(cfg.Database)
	if err != nil {
		return nil, err
	}
	return NewSQLSource(ctx, driverName, dsn)
}

// DSN maps the database section onto a database/sql driver name and connection string.
func DSN(db config.DatabaseConfig) (string, string, error) {
	switch db.Driver {
	case "sqlserver":
		if db.DSN != "" {
			return "sqlserver", db.DSN, nil
		}
		host := db.Server
		if host == "" || host == "." {
			host = "localhost"
		}
		if db.Port > 0 {
			host += ":" + strconv.Itoa(db.Port)
		}
		u := &url.URL{
			Scheme: "sqlserver",
			User:   url.UserPassword(db.User, db.Password),
			Host:   host,
		}
		q := u.Query()
		q.Set("database", db.Name)
		u.RawQuery = q.Encode()
		return "sqlserver", u.String(), nil

	case "postgres":
		if db.DSN != "" {
			return "pgx", db.DSN, nil
		}
		port := db.Port
		if port == 0 {
			port = 5432
		}
		host := db.Server
		if host == "" || host == "." {
			host = "127.0.0.1"
		}
		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(db.User, db.Password),
			Host:   host + ":" + strconv.Itoa(port),
			Path:   "/" + db.Name,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		return "pgx", u.String(), nil

	case "sqlite":
		if db.DSN != "" {
			return "sqlite", db.DSN, nil
		}
		if db.Name == "" {
			return "", "", fmt.Errorf("sqlite needs database.name or database.dsn")
		}
		return "sqlite", db.Name, nil

	default:
		return "", "", fmt.Errorf("unsupported database driver: %q", db.Driver)
	}
}
