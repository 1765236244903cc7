// Package introspect loads a schema from a live PostgreSQL database by
// querying its catalog.
package introspect

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/ridoystarlord/erd/database"
	"github.com/ridoystarlord/erd/loader"
	"github.com/ridoystarlord/erd/schema"
)

func init() {
	loader.Register("postgresql", func(ctx context.Context, opts loader.Options) (loader.Loader, error) {
		return New(ctx, opts.Database)
	})
}

// Sorted on the catalog columns, not the text output columns, so names
// keep the byte order of the "C" collation.
const columnsQuery = `
	SELECT table_name::text, column_name::text, data_type::text
	FROM information_schema.columns
	WHERE table_schema = $1
	ORDER BY columns.table_name, columns.column_name;
	`

// One row per constrained/referenced column pair; conkey and confkey are
// correlated by array subscript.
const relationsQuery = `
	SELECT
		cl.relname::text AS on_table,
		attr.attname::text AS on_field,
		clf.relname::text AS to_table,
		attrf.attname::text AS to_field
	FROM pg_constraint con
	JOIN pg_class cl
		ON con.conrelid = cl.oid
	JOIN pg_namespace ns
		ON cl.relnamespace = ns.oid
	JOIN pg_class clf
		ON con.confrelid = clf.oid
	CROSS JOIN LATERAL generate_subscripts(con.conkey, 1) AS k(i)
	JOIN pg_attribute attr
		ON attr.attrelid = con.conrelid AND attr.attnum = con.conkey[k.i]
	JOIN pg_attribute attrf
		ON attrf.attrelid = con.confrelid AND attrf.attnum = con.confkey[k.i]
	WHERE con.contype = 'f'
		AND ns.nspname = $1
	ORDER BY cl.relname, con.conname, k.i;
	`

// conn is the part of *pgx.Conn the loader uses.
type conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Loader reads tables and foreign keys of one PostgreSQL schema over a
// single connection. It is not meant for concurrent use: overlapping calls
// to Load fail with loader.ErrLoaderBusy.
type Loader struct {
	mu     sync.Mutex
	conn   conn
	schema string
}

// New connects to the database described by cfg.
func New(ctx context.Context, cfg database.Config) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, &loader.ConnectionError{Err: err}
	}

	return newLoader(c, cfg.Schema), nil
}

func newLoader(c conn, schemaName string) *Loader {
	return &Loader{conn: c, schema: schemaName}
}

// Load runs the column query and then the relation query.
func (l *Loader) Load(ctx context.Context) (*schema.Schema, error) {
	if !l.mu.TryLock() {
		return nil, loader.ErrLoaderBusy
	}
	defer l.mu.Unlock()

	tables, err := l.getTables(ctx)
	if err != nil {
		return nil, err
	}

	relations, err := l.getRelations(ctx)
	if err != nil {
		return nil, err
	}

	return &schema.Schema{Tables: tables, Relations: relations}, nil
}

// Ping checks that the connection is still usable.
func (l *Loader) Ping(ctx context.Context) error {
	if err := l.conn.Ping(ctx); err != nil {
		return &loader.ConnectionError{Err: err}
	}
	return nil
}

// Close releases the connection.
func (l *Loader) Close(ctx context.Context) error {
	return l.conn.Close(ctx)
}

func (l *Loader) getTables(ctx context.Context) ([]schema.Table, error) {
	rows, err := l.conn.Query(ctx, columnsQuery, l.schema)
	if err != nil {
		return nil, queryError("column query", err)
	}
	defer rows.Close()

	var g tableGrouper
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, queryError("column query", err)
		}

		tableName, field, err := decodeColumn(newNamedRow(rows.FieldDescriptions(), values))
		if err != nil {
			return nil, err
		}
		g.add(tableName, field)
	}

	if err := rows.Err(); err != nil {
		return nil, queryError("column query", err)
	}

	return g.result(), nil
}

func (l *Loader) getRelations(ctx context.Context) ([]schema.Relation, error) {
	rows, err := l.conn.Query(ctx, relationsQuery, l.schema)
	if err != nil {
		return nil, queryError("relation query", err)
	}
	defer rows.Close()

	relations := []schema.Relation{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, queryError("relation query", err)
		}

		rel, err := decodeRelation(newNamedRow(rows.FieldDescriptions(), values))
		if err != nil {
			return nil, err
		}
		relations = append(relations, rel)
	}

	if err := rows.Err(); err != nil {
		return nil, queryError("relation query", err)
	}

	return relations, nil
}

func queryError(query string, err error) error {
	return &loader.QueryError{Query: query, Err: err}
}
