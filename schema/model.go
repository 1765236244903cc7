// Package schema holds the value types shared by loaders and drawers.
// A Schema is built once by a loader and then only read.
package schema

// Schema is everything extracted from one database schema.
type Schema struct {
	Tables    []Table    `yaml:"tables"`
	Relations []Relation `yaml:"relations"`
}

// Table is a named, ordered list of fields. Field order is the order the
// columns were returned by the loader.
type Table struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field is a column name paired with its declared data type.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Relation is a foreign key edge from OnTable.OnField to ToTable.ToField.
// Tables are linked by name only; either side may be absent from Tables.
type Relation struct {
	OnTable string `yaml:"on_table"`
	OnField string `yaml:"on_field"`
	ToTable string `yaml:"to_table"`
	ToField string `yaml:"to_field"`
}

// Table returns the first table with the given name.
func (s *Schema) Table(name string) (Table, bool) {
	for _, t := range s.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
