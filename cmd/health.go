package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ridoystarlord/erd/introspect"
	"github.com/ridoystarlord/erd/utils"
)

func newHealthCmd(v *viper.Viper) *cobra.Command {
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check database connectivity",
		Long: `Check if the database is accessible and the schema can be read.

Examples:
  erd health -d shop                 # Check default connection settings
  erd health -d shop --timeout 10s   # Set custom timeout
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDatabaseHealth(cmd.Context(), v); err != nil {
				return fmt.Errorf("database health check failed: %w", err)
			}
			utils.Success("Database is healthy and accessible")
			return nil
		},
	}

	return healthCmd
}

func checkDatabaseHealth(ctx context.Context, v *viper.Viper) error {
	ctx, cancel := context.WithTimeout(ctx, v.GetDuration("timeout"))
	defer cancel()

	cfg := databaseConfig(v)
	start := time.Now()

	l, err := introspect.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer l.Close(context.Background())

	if err := l.Ping(ctx); err != nil {
		return err
	}
	utils.Info("Connected to %s:%d/%s in %s", cfg.Host, cfg.Port, cfg.Database, time.Since(start).Round(time.Millisecond))

	s, err := l.Load(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(utils.Out, "📊 Schema %q has %d tables and %d relations\n", cfg.Schema, len(s.Tables), len(s.Relations))
	return nil
}
