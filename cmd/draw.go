package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ridoystarlord/erd/drawer"
	"github.com/ridoystarlord/erd/loader"
	"github.com/ridoystarlord/erd/schema"
	"github.com/ridoystarlord/erd/utils"
)

func addDrawFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("loader", "postgresql", "Schema source ("+strings.Join(loader.Names(), ", ")+")")
	flags.String("drawer", "dot", "Output format ("+strings.Join(drawer.Names(), ", ")+")")
	flags.StringP("output", "o", "", "Output file (default: stdout)")
	flags.StringP("file", "f", "schema.yaml", "Snapshot file for the yaml loader")
	flags.StringSliceP("exclude", "x", nil, "Tables to leave out of the output")
}

func runDraw(cmd *cobra.Command, v *viper.Viper) error {
	d, err := drawer.Get(v.GetString("drawer"))
	if err != nil {
		return err
	}

	s, err := loadSchema(cmd.Context(), v)
	if err != nil {
		return err
	}

	if exclude := v.GetStringSlice("exclude"); len(exclude) > 0 {
		s = schema.FilterTables(s, exclude)
	}

	output := v.GetString("output")
	if output == "" {
		return d.Write(s, cmd.OutOrStdout())
	}

	if err := writeFile(output, d, s); err != nil {
		return err
	}
	utils.Success("%s output saved to: %s", v.GetString("drawer"), output)
	return nil
}

func loadSchema(ctx context.Context, v *viper.Viper) (*schema.Schema, error) {
	ctx, cancel := context.WithTimeout(ctx, v.GetDuration("timeout"))
	defer cancel()

	name := v.GetString("loader")
	opts := loader.Options{
		Database: databaseConfig(v),
		File:     v.GetString("file"),
	}

	utils.Info("Loading schema with the %s loader", name)
	l, err := loader.New(ctx, name, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := loader.Close(context.Background(), l); err != nil {
			utils.Warn("Closing %s loader: %v", name, err)
		}
	}()

	s, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}

	utils.Info("Found %d tables and %d relations", len(s.Tables), len(s.Relations))
	if len(s.Tables) == 0 {
		utils.Warn("No tables found in %s", source(name, opts))
	}
	return s, nil
}

// source names where a loader reads from, for status messages.
func source(name string, opts loader.Options) string {
	if name == "yaml" {
		return fmt.Sprintf("file %q", opts.File)
	}
	return fmt.Sprintf("schema %q", opts.Database.Schema)
}

func writeFile(path string, d drawer.Drawer, s *schema.Schema) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &drawer.WriteError{Err: cerr}
		}
	}()

	return d.Write(s, f)
}
