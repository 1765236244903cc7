package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ridoystarlord/erd/utils"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "erd",
		Short: "Draw entity-relationship diagrams of a PostgreSQL schema",
		Long: `erd reads the tables, columns and foreign keys of a database schema
and prints them as a Graphviz diagram or a text report.

Examples:

  erd -d shop | dot -Tsvg > shop.svg
  erd -d shop -s billing --drawer plain
  erd -d shop --drawer yaml -o shop.yaml
  erd --loader yaml --file shop.yaml --drawer mermaid
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			utils.Verbose, _ = cmd.Flags().GetBool("verbose")
			utils.LoadEnv()
			return initConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(cmd, v)
		},
	}

	addConnectionFlags(rootCmd)
	addDrawFlags(rootCmd)

	rootCmd.AddCommand(newHealthCmd(v))
	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		utils.Fail("%v", err)
		stop()
		os.Exit(1)
	}
}
