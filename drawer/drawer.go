// Package drawer renders a schema.Schema as text.
//
// Every drawer streams its output straight into the given writer. If the
// writer fails, drawing stops and the error is returned as a *WriteError;
// whatever was written before the failure stays in the sink.
package drawer

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/ridoystarlord/erd/schema"
)

// Drawer writes a schema to w.
type Drawer interface {
	Write(s *schema.Schema, w io.Writer) error
}

// ErrUnknownDrawer is returned by Get for an unsupported format.
var ErrUnknownDrawer = errors.New("unknown drawer")

var drawers = map[string]Drawer{
	"dot":      Dot{},
	"plain":    PlainText{},
	"mermaid":  Mermaid{},
	"plantuml": PlantUML{},
	"yaml":     YAML{},
}

// Get returns the drawer registered under name.
func Get(name string) (Drawer, error) {
	d, ok := drawers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDrawer, name)
	}
	return d, nil
}

// Names lists the available drawers in sorted order.
func Names() []string {
	names := make([]string, 0, len(drawers))
	for name := range drawers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteError means the sink rejected a write. Output may be truncated.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing output: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// sink remembers the first write error and turns later writes into no-ops,
// so renderers can emit a whole block and check once.
type sink struct {
	w   io.Writer
	err error
}

func (s *sink) print(str string) {
	if s.err != nil {
		return
	}
	if _, err := io.WriteString(s.w, str); err != nil {
		s.err = &WriteError{Err: err}
	}
}

func (s *sink) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintf(s.w, format, args...); err != nil {
		s.err = &WriteError{Err: err}
	}
}
