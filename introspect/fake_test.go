package introspect

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRows struct {
	columns []string
	data    [][]any
	pos     int
	err     error
	closed  bool
}

func newFakeRows(columns []string, data ...[]any) *fakeRows {
	return &fakeRows{columns: columns, data: data, pos: -1}
}

func (r *fakeRows) Close()                        { r.closed = true }
func (r *fakeRows) Err() error                    { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.columns))
	for i, name := range r.columns {
		fds[i] = pgconn.FieldDescription{Name: name}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	if r.closed || r.pos+1 >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return errors.New("fakeRows: Scan not supported")
}

func (r *fakeRows) Values() ([]any, error) { return r.data[r.pos], nil }

func (r *fakeRows) RawValues() [][]byte { return nil }

type fakeConn struct {
	results map[string]*fakeRows
	errs    map[string]error
	queries []string
	args    [][]any
	block   chan struct{}
	entered chan struct{}
	closed  bool
}

func (c *fakeConn) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.queries = append(c.queries, sql)
	c.args = append(c.args, args)
	if c.entered != nil {
		close(c.entered)
		c.entered = nil
	}
	if c.block != nil {
		<-c.block
	}
	if err := c.errs[sql]; err != nil {
		return nil, err
	}
	if rows, ok := c.results[sql]; ok {
		return rows, nil
	}
	return newFakeRows(nil), nil
}

func (c *fakeConn) Ping(context.Context) error { return c.errs["ping"] }

func (c *fakeConn) Close(context.Context) error {
	c.closed = true
	return nil
}
