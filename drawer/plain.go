package drawer

import (
	"io"

	"github.com/ridoystarlord/erd/schema"
)

// PlainText renders a sectioned report.
//
// The relation line repeats the source column on both sides of the arrow
// ("orders:user_id -> orders:user_id"); the referenced column is not printed.
type PlainText struct{}

func (PlainText) Write(s *schema.Schema, w io.Writer) error {
	out := &sink{w: w}

	out.print("=== Tables ===\n")
	for _, table := range s.Tables {
		out.printf("[%s]\n", table.Name)
		for _, field := range table.Fields {
			out.printf("%s: %s\n", field.Name, field.Type)
		}
		out.print("\n")
		out.print("\n")
		if out.err != nil {
			return out.err
		}
	}

	out.print("=== Relations ===\n")
	for _, rel := range s.Relations {
		out.printf("%s:%s -> %s:%s\n", rel.OnTable, rel.OnField, rel.OnTable, rel.OnField)
		out.print("\n")
		if out.err != nil {
			return out.err
		}
	}

	out.print("=== Done ===\n")
	return out.err
}
