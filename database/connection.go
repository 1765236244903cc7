package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/jackc/pgx/v5"
)

// Config is the resolved connection configuration for a PostgreSQL source.
type Config struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Schema   string
	SSLMode  string
}

// ConnString renders the config as a postgres:// URL. Credentials and the
// database name are escaped by net/url.
func (c Config) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   c.Host,
		Path:   "/" + c.Database,
	}
	if c.Port != 0 {
		u.Host = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
	}
	return u.String()
}

// Validate reports the first missing setting needed to connect.
func (c Config) Validate() error {
	switch {
	case c.Host == "":
		return fmt.Errorf("hostname is required")
	case c.Database == "":
		return fmt.Errorf("database name is required")
	case c.Username == "":
		return fmt.Errorf("username is required")
	case c.Schema == "":
		return fmt.Errorf("schema name is required")
	}
	return nil
}

// Connect opens a single connection and checks it with a ping.
func Connect(ctx context.Context, cfg Config) (*pgx.Conn, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	connCfg, err := pgx.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("invalid connection config: %w", err)
	}

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to %s/%s: %w", cfg.Host, cfg.Database, err)
	}

	// Test the connection
	if err := conn.Ping(ctx); err != nil {
		conn.Close(context.Background())
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return conn, nil
}
