package schema

// FilterTables removes the named tables, and every relation starting on or
// pointing at them, from the schema. It returns a new Schema; the original is not modified.
func FilterTables(s *Schema, excludeTables []string) *Schema {
	if len(excludeTables) == 0 {
		return &Schema{Tables: s.Tables, Relations: s.Relations}
	}

	excludeMap := make(map[string]bool, len(excludeTables))
	for _, table := range excludeTables {
		excludeMap[table] = true
	}

	filtered := &Schema{
		Tables:    make([]Table, 0, len(s.Tables)),
		Relations: make([]Relation, 0, len(s.Relations)),
	}
	for _, table := range s.Tables {
		if !excludeMap[table.Name] {
			filtered.Tables = append(filtered.Tables, table)
		}
	}
	for _, rel := range s.Relations {
		if !excludeMap[rel.OnTable] && !excludeMap[rel.ToTable] {
			filtered.Relations = append(filtered.Relations, rel)
		}
	}

	return filtered
}
