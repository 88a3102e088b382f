package compiler

// render turns literal nodes back into their minimal SQL text. Presentation
// layers join a row's values with | and rows with newlines; that formatting,
// not the engine, defines the expected-output strings conformance scripts
// compare against.

import "strings"

// Render returns the minimal deterministic SQL text of a literal.
func Render(l Literal) string {
	switch l.Kind {
	case Text:
		return "'" + strings.ReplaceAll(l.Value, "'", "''") + "'"
	case Blob:
		return "X'" + l.Value + "'"
	case Null:
		return "NULL"
	}
	return l.Value
}

// RenderRow joins a row's rendered values with |.
func RenderRow(row []Literal) string {
	vals := make([]string, len(row))
	for i, l := range row {
		vals[i] = Render(l)
	}
	return strings.Join(vals, "|")
}

// RenderRows joins rendered rows with newlines.
func RenderRows(rows [][]Literal) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = RenderRow(row)
	}
	return strings.Join(lines, "\n")
}
