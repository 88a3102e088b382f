package engine

import "github.com/mfrye/memlite/compiler"

// Table is a created table: its qualified name, the definition it was
// created with, and its rows. A Table can only be built from a CreateStmt,
// so a table without a create-table shape is unrepresentable and no runtime
// shape check is needed.
type Table struct {
	schema string
	name   string
	def    *compiler.CreateStmt
	rows   [][]compiler.Literal
}

// NewTable builds an empty table from its create statement. The definition
// is kept only for redisplay; the engine never interprets column types or
// constraints.
func NewTable(def *compiler.CreateStmt) *Table {
	return &Table{
		schema: def.SchemaName,
		name:   def.TableName,
		def:    def,
	}
}

// QualifiedName is the display name: schema.name when a schema qualifier
// was given, bare name otherwise. The catalog keys on the schema and name
// fields themselves; comparison is byte exact on the identifier text the
// parser produced, with no case folding.
func (t *Table) QualifiedName() string {
	if t.schema != "" {
		return t.schema + "." + t.name
	}
	return t.name
}

func (t *Table) Name() string {
	return t.name
}

// Def returns the definition the table was created with.
func (t *Table) Def() *compiler.CreateStmt {
	return t.def
}

// Columns returns the declared column names in definition order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.def.ColDefs))
	for i, cd := range t.def.ColDefs {
		cols[i] = cd.ColName
	}
	return cols
}

// append adds rows verbatim, in order, to the table. Callers validate the
// full row set first; append never fails partway.
func (t *Table) append(rows [][]compiler.Literal) {
	t.rows = append(t.rows, rows...)
}

// snapshot returns a copy of the current rows decoupled from the table's
// storage. Literals are value types so copying the row slices is a deep
// copy.
func (t *Table) snapshot() [][]compiler.Literal {
	rows := make([][]compiler.Literal, len(t.rows))
	for i, row := range t.rows {
		rows[i] = make([]compiler.Literal, len(row))
		copy(rows[i], row)
	}
	return rows
}
