package drawer

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ridoystarlord/erd/schema"
)

// YAML writes a snapshot that the yaml loader reads back.
type YAML struct{}

func (YAML) Write(s *schema.Schema, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(s); err != nil {
		return &WriteError{Err: err}
	}
	if err := enc.Close(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
