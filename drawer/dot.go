package drawer

import (
	"io"

	"github.com/ridoystarlord/erd/schema"
)

// Dot renders a Graphviz digraph. Each table is a plaintext node with an
// HTML-like label; every field cell has a port named after the field and
// the header cell has the port "__title", so edges connect field cells.
//
// Names are written verbatim. A name containing '"', '<' or '>' yields
// invalid dot.
type Dot struct{}

const dotHeader = `digraph erd {
  graph [ rankdir = "LR" ];
  node [ fontsize = "16" shape = "plaintext" ];
  edge [ ];
`

const dotFooter = "}\n"

func (Dot) Write(s *schema.Schema, w io.Writer) error {
	out := &sink{w: w}

	out.print(dotHeader)

	for _, table := range s.Tables {
		writeDotTable(out, table)
		out.print("\n")
		if out.err != nil {
			return out.err
		}
	}

	for _, rel := range s.Relations {
		out.printf("\"%s\":\"%s\" -> \"%s\":\"%s\"\n", rel.OnTable, rel.OnField, rel.ToTable, rel.ToField)
		if out.err != nil {
			return out.err
		}
	}

	out.print(dotFooter)
	return out.err
}

func writeDotTable(out *sink, table schema.Table) {
	out.printf("  \"%s\" [label=<<table border=\"0\" cellborder=\"1\" cellspacing=\"0\">\n", table.Name)
	out.printf("            <tr><td port=\"__title\"><font><b>%s</b></font></td></tr>\n", table.Name)

	for _, field := range table.Fields {
		out.printf("            <tr><td port=\"%s\"><font>%s: %s</font></td></tr>\n", field.Name, field.Name, field.Type)
	}

	out.print("          </table>>];\n")
}
