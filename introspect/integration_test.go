package introspect

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/ridoystarlord/erd/database"
	"github.com/ridoystarlord/erd/loader"
	"github.com/ridoystarlord/erd/schema"
)

const fixtureSQL = `
CREATE SCHEMA shop;
CREATE TABLE shop.users (
	id integer PRIMARY KEY,
	name text NOT NULL
);
CREATE TABLE shop.orders (
	id integer NOT NULL,
	region text NOT NULL,
	user_id integer REFERENCES shop.users (id),
	PRIMARY KEY (id, region)
);
CREATE TABLE shop.lines (
	order_id integer NOT NULL,
	order_region text NOT NULL,
	sku text NOT NULL,
	FOREIGN KEY (order_id, order_region) REFERENCES shop.orders (id, region)
);
CREATE TABLE shop.alpha (id integer);
CREATE TABLE shop."Zeta" (
	id integer,
	"Name" text
);
CREATE TABLE public.unrelated (id integer);
`

func startPostgres(t *testing.T) database.Config {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("erd"),
		postgres.WithUsername("erd"),
		postgres.WithPassword("erd"),
		postgres.BasicWaitStrategies(),
	)
	t.Cleanup(func() {
		if ctr != nil {
			require.NoError(t, ctr.Terminate(context.Background()))
		}
	})
	require.NoError(t, err)

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	return database.Config{
		Host:     host,
		Port:     portNum,
		Database: "erd",
		Username: "erd",
		Password: "erd",
		Schema:   "shop",
		SSLMode:  "disable",
	}
}

func TestLoadFromPostgres(t *testing.T) {
	cfg := startPostgres(t)
	ctx := context.Background()

	conn, err := database.Connect(ctx, cfg)
	require.NoError(t, err)
	_, err = conn.Exec(ctx, fixtureSQL)
	require.NoError(t, err)
	require.NoError(t, conn.Close(ctx))

	l, err := loader.New(ctx, "postgresql", loader.Options{Database: cfg})
	require.NoError(t, err)
	defer loader.Close(ctx, l)

	s, err := l.Load(ctx)
	require.NoError(t, err)

	// Byte order: upper case sorts before lower case.
	assert.Equal(t, []schema.Table{
		{Name: "Zeta", Fields: []schema.Field{
			{Name: "Name", Type: "text"},
			{Name: "id", Type: "integer"},
		}},
		{Name: "alpha", Fields: []schema.Field{
			{Name: "id", Type: "integer"},
		}},
		{Name: "lines", Fields: []schema.Field{
			{Name: "order_id", Type: "integer"},
			{Name: "order_region", Type: "text"},
			{Name: "sku", Type: "text"},
		}},
		{Name: "orders", Fields: []schema.Field{
			{Name: "id", Type: "integer"},
			{Name: "region", Type: "text"},
			{Name: "user_id", Type: "integer"},
		}},
		{Name: "users", Fields: []schema.Field{
			{Name: "id", Type: "integer"},
			{Name: "name", Type: "text"},
		}},
	}, s.Tables)

	assert.Equal(t, []schema.Relation{
		{OnTable: "lines", OnField: "order_id", ToTable: "orders", ToField: "id"},
		{OnTable: "lines", OnField: "order_region", ToTable: "orders", ToField: "region"},
		{OnTable: "orders", OnField: "user_id", ToTable: "users", ToField: "id"},
	}, s.Relations)
}

func TestConnectWrongPassword(t *testing.T) {
	cfg := startPostgres(t)
	cfg.Password = "wrong"

	l, err := New(context.Background(), cfg)
	assert.Nil(t, l)

	var connErr *loader.ConnectionError
	assert.ErrorAs(t, err, &connErr)
}
