package introspect

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ridoystarlord/erd/loader"
	"github.com/ridoystarlord/erd/schema"
)

// namedRow indexes one result row by column name so decoding does not
// depend on column positions.
type namedRow map[string]string

func newNamedRow(fields []pgconn.FieldDescription, values []any) namedRow {
	row := make(namedRow, len(fields))
	for i, fd := range fields {
		if i >= len(values) {
			break
		}
		row[fd.Name] = valueString(values[i])
	}
	return row
}

// fetch returns the values of the named columns in the order given, or a
// FieldDecodeError for the first one missing.
func (r namedRow) fetch(names ...string) ([]string, error) {
	out := make([]string, len(names))
	for i, name := range names {
		v, ok := r[name]
		if !ok {
			return nil, &loader.FieldDecodeError{Field: name}
		}
		out[i] = v
	}
	return out, nil
}

func decodeColumn(r namedRow) (string, schema.Field, error) {
	v, err := r.fetch("table_name", "column_name", "data_type")
	if err != nil {
		return "", schema.Field{}, err
	}
	return v[0], schema.Field{Name: v[1], Type: v[2]}, nil
}

func decodeRelation(r namedRow) (schema.Relation, error) {
	v, err := r.fetch("on_table", "on_field", "to_table", "to_field")
	if err != nil {
		return schema.Relation{}, err
	}
	return schema.Relation{OnTable: v[0], OnField: v[1], ToTable: v[2], ToField: v[3]}, nil
}

func valueString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
