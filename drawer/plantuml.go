package drawer

import (
	"io"

	"github.com/ridoystarlord/erd/schema"
)

// PlantUML renders an entity diagram.
type PlantUML struct{}

func (PlantUML) Write(s *schema.Schema, w io.Writer) error {
	out := &sink{w: w}

	out.print("@startuml\n")
	out.print("!theme plain\n")
	out.print("skinparam linetype ortho\n\n")

	for _, table := range s.Tables {
		out.printf("entity \"%s\" {\n", table.Name)
		for _, field := range table.Fields {
			out.printf("  %s : %s\n", field.Name, field.Type)
		}
		out.print("}\n\n")
		if out.err != nil {
			return out.err
		}
	}

	for _, rel := range s.Relations {
		out.printf("\"%s\" ||--o{ \"%s\" : \"%s\"\n", rel.ToTable, rel.OnTable, rel.OnField)
	}

	out.print("@enduml\n")
	return out.err
}
