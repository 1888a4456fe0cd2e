package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/orgchart/internal/config"
	"github.com/agenthands/orgchart/internal/core"
	"github.com/agenthands/orgchart/internal/driver"
	"github.com/agenthands/orgchart/internal/logging"
	"github.com/agenthands/orgchart/internal/server"
)

var (
	configPath string
	host       string
	port       int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config TOML (default $CONFIG_PATH or config/config.toml)")
	rootCmd.Flags().StringVar(&host, "host", "", "Listen host (overrides config)")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (overrides config)")
	rootCmd.AddCommand(treeCmd)
}

var rootCmd = &cobra.Command{
	Use:          "orgchart",
	Short:        "Serve the hierarchy tree dashboard",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if host != "" {
			cfg.Server.Host = host
		}
		if port != 0 {
			cfg.Server.Port = port
		}

		dash, err := loadDashboard(cmd.Context(), cfg, logger)
		if err != nil {
			logger.Error("Startup load failed", zap.Error(err))
			return err
		}

		srv := server.NewServer(dash, logger)
		logger.Info("Starting server", zap.String("addr", cfg.Addr()))
		return srv.SetupRouter().Run(cfg.Addr())
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Load the hierarchy and print the tree elements as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		dash, err := loadDashboard(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dash.Tree())
	},
}

func setup() (*config.Config, *zap.Logger, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// loadDashboard runs the one startup query. Any failure here must stop the process.
func loadDashboard(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*core.Dashboard, error) {
	rows, err := driver.FetchData(ctx, cfg, logger)
	if err != nil {
		switch {
		case driver.IsConnectionError(err):
			return nil, fmt.Errorf("cannot reach %s database: %w", cfg.Database.Driver, err)
		case driver.IsQueryError(err):
			return nil, fmt.Errorf("hierarchy query failed: %w", err)
		}
		return nil, err
	}

	dash := core.NewDashboard(rows, core.Options{
		Tree:       core.TreeOptions{Deduplicate: cfg.Tree.Deduplicate},
		GenderMode: core.GenderMode(cfg.Charts.GenderMode),
	})
	logger.Info("Dashboard ready",
		zap.String("snapshot_id", dash.Snapshot.ID),
		zap.Int("rows", dash.Snapshot.Len()),
		zap.Int("elements", len(dash.Tree())))
	return dash, nil
}
