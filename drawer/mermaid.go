package drawer

import (
	"io"
	"strings"

	"github.com/ridoystarlord/erd/schema"
)

// Mermaid renders an erDiagram block. Mermaid attribute types cannot hold
// spaces, so "character varying" becomes "character_varying".
type Mermaid struct{}

func (Mermaid) Write(s *schema.Schema, w io.Writer) error {
	out := &sink{w: w}

	out.print("erDiagram\n")

	for _, table := range s.Tables {
		out.printf("    %s {\n", table.Name)
		for _, field := range table.Fields {
			out.printf("        %s %s\n", mermaidType(field.Type), field.Name)
		}
		out.print("    }\n")
		if out.err != nil {
			return out.err
		}
	}

	for _, rel := range s.Relations {
		out.printf("    %s ||--o{ %s : %s\n", rel.ToTable, rel.OnTable, rel.OnField)
	}

	return out.err
}

func mermaidType(t string) string {
	if t == "" {
		return "unknown"
	}
	return strings.ReplaceAll(t, " ", "_")
}
