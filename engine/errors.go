package engine

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned for statement kinds the engine recognizes
// but has not built, such as UPDATE. It is an ordinary recoverable error.
var ErrNotImplemented = errors.New("statement not implemented")

// UnsupportedError is returned for a syntactically valid statement using a
// clause or shape outside the supported subset. Clause names the offending
// clause, for example "select-where" or "insert-returning".
type UnsupportedError struct {
	Clause string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s not supported", e.Clause)
}

// TableNotFoundError is returned when a statement references a table name
// absent from the catalog.
type TableNotFoundError struct {
	Name string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("no such table: %s", e.Name)
}
