package engine

import "github.com/mfrye/memlite/compiler"

// ResultKind discriminates the outcome of executing one statement.
type ResultKind int

const (
	// Empty is the outcome of input holding no statement at all, such as a
	// blank line or a lone comment.
	Empty ResultKind = iota + 1
	// TableCreated is the outcome of CREATE TABLE.
	TableCreated
	// RowInserted is the outcome of a committed INSERT.
	RowInserted
	// RowsSelected is the outcome of SELECT.
	RowsSelected
)

// Result is the outcome of one execute call. It is produced fresh per call
// and shares no storage with the catalog.
type Result struct {
	Kind ResultKind
	// Created reports, for TableCreated, whether the table was newly
	// installed. It is false when a table already existed under the same
	// name, which is not an error.
	Created bool
	// Columns holds, for RowsSelected, the declared column names of the
	// source table.
	Columns []string
	// Rows holds, for RowsSelected, a full snapshot copy of the table's rows
	// at execution time. Later inserts are not observable through it.
	Rows [][]compiler.Literal
}
