package loader

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ridoystarlord/erd/schema"
)

func init() {
	Register("yaml", func(_ context.Context, opts Options) (Loader, error) {
		return NewYAMLLoader(opts.File), nil
	})
}

// YAMLLoader reads a schema snapshot written by the yaml drawer.
type YAMLLoader struct {
	filename string
}

// NewYAMLLoader returns a loader for the snapshot at filename.
func NewYAMLLoader(filename string) *YAMLLoader {
	return &YAMLLoader{filename: filename}
}

// Load reads and decodes the snapshot file.
func (l *YAMLLoader) Load(_ context.Context) (*schema.Schema, error) {
	if l.filename == "" {
		return nil, &QueryError{Query: "reading schema file", Err: os.ErrNotExist}
	}

	data, err := os.ReadFile(l.filename)
	if err != nil {
		return nil, &QueryError{Query: "reading schema file", Err: err}
	}

	var s schema.Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &DecodeError{Source: l.filename, Err: err}
	}

	for i, t := range s.Tables {
		if t.Name == "" {
			return nil, &DecodeError{Source: l.filename, Err: &FieldDecodeError{Field: "name"}}
		}
		if t.Fields == nil {
			s.Tables[i].Fields = []schema.Field{}
		}
	}
	if s.Tables == nil {
		s.Tables = []schema.Table{}
	}
	if s.Relations == nil {
		s.Relations = []schema.Relation{}
	}

	return &s, nil
}
