package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrIngestion marks an input that could not be opened or read.
	ErrIngestion = errors.New("ingestion error")
	// ErrSchema marks a record missing a required attribute or holding an
	// invalid value.
	ErrSchema = errors.New("schema error")
)

// SchemaError describes a record that failed validation.
type SchemaError struct {
	Source string // file name or queue name
	Line   int    // 1-based record position within Source
	Field  string // dotted attribute path, e.g. user.screen_name
	Reason string
}

func (e *SchemaError) Error() string {
	loc := e.Source
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}
	if loc == "" {
		return fmt.Sprintf("schema error: field %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("schema error at %s: field %s %s", loc, e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrSchema) match any SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}
