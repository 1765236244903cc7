package introspect

import "github.com/ridoystarlord/erd/schema"

// tableGrouper folds column rows into tables in a single pass. Rows must
// arrive sorted by table name: a new table starts exactly when the name
// differs from the previous row's, so non-adjacent rows of the same table
// would produce two tables.
type tableGrouper struct {
	tables []schema.Table
}

func (g *tableGrouper) add(tableName string, field schema.Field) {
	n := len(g.tables)
	if n == 0 || g.tables[n-1].Name != tableName {
		g.tables = append(g.tables, schema.Table{Name: tableName})
		n++
	}
	g.tables[n-1].Fields = append(g.tables[n-1].Fields, field)
}

func (g *tableGrouper) result() []schema.Table {
	if g.tables == nil {
		return []schema.Table{}
	}
	return g.tables
}
