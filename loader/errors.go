package loader

import (
	"errors"
	"fmt"
)

// ErrLoaderBusy is returned when a loader that owns a single connection is
// asked to load while another load is still running.
var ErrLoaderBusy = errors.New("loader is already in use")

// ConnectionError means the source could not be reached or authenticated.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError means an introspection query, or reading the source, failed.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// FieldDecodeError means a result row lacks an expected named column.
type FieldDecodeError struct {
	Field string
}

func (e *FieldDecodeError) Error() string {
	return fmt.Sprintf("could not find field %s", e.Field)
}

// DecodeError means a snapshot could not be parsed.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
