package cmd

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ridoystarlord/erd/database"
	"github.com/ridoystarlord/erd/utils"
)

// Settings are resolved in this order: command line flag, ERD_* variable,
// libpq PG* variable, .erd.yaml, flag default. Variables may also come from
// a .env file.
func addConnectionFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (default: ./.erd.yaml if present)")
	flags.BoolP("verbose", "v", false, "Print progress messages to stderr")
	flags.StringP("hostname", "H", "localhost", "Database host")
	flags.IntP("port", "P", 5432, "Database port")
	flags.StringP("username", "u", "postgres", "Database user")
	flags.StringP("password", "p", "", "Database password (unsafe on shared machines; prefer PGPASSWORD)")
	flags.StringP("database", "d", "", "Database name")
	flags.StringP("schema", "s", "public", "Schema to introspect")
	flags.String("sslmode", "disable", "SSL mode (disable, prefer, require, verify-full, ...)")
	flags.Duration("timeout", 30*time.Second, "Timeout for connecting and loading the schema")
}

var envFallbacks = map[string]string{
	"hostname": "PGHOST",
	"port":     "PGPORT",
	"username": "PGUSER",
	"password": "PGPASSWORD",
	"database": "PGDATABASE",
	"sslmode":  "PGSSLMODE",
}

func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	v.SetEnvPrefix("erd")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for key, env := range envFallbacks {
		if err := v.BindEnv(key, "ERD_"+strings.ToUpper(key), env); err != nil {
			return err
		}
	}
	v.SetDefault("password", "postgres")

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".erd")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		utils.Info("No config file found, using flags and environment")
	} else {
		utils.Info("Using config file %s", v.ConfigFileUsed())
	}

	return nil
}

func databaseConfig(v *viper.Viper) database.Config {
	return database.Config{
		Host:     v.GetString("hostname"),
		Port:     v.GetInt("port"),
		Database: v.GetString("database"),
		Username: v.GetString("username"),
		Password: v.GetString("password"),
		Schema:   v.GetString("schema"),
		SSLMode:  v.GetString("sslmode"),
	}
}
