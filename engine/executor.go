// engine validates parsed statements against the supported subset and
// executes the ones that fall inside it on an in-memory catalog. The
// supported subset is CREATE TABLE, literal-only multi-row INSERT, and
// unfiltered SELECT *. Everything else is refused by name; a statement that
// is not fully understood is never partially executed.
package engine

import "github.com/mfrye/memlite/compiler"

// Executor runs one statement at a time against its catalog. It keeps no
// state of its own between calls.
type Executor struct {
	catalog *Catalog
}

func NewExecutor(catalog *Catalog) *Executor {
	return &Executor{catalog: catalog}
}

// Exec validates the statement's shape and, if it is inside the supported
// subset, performs the corresponding catalog read or mutation. The catalog
// is left untouched on any error.
func (e *Executor) Exec(stmt compiler.Stmt) (*Result, error) {
	if err := checkExplain(stmt); err != nil {
		return nil, err
	}
	switch s := stmt.(type) {
	case *compiler.CreateStmt:
		return e.execCreate(s)
	case *compiler.SelectStmt:
		return e.execSelect(s)
	case *compiler.InsertStmt:
		return e.execInsert(s)
	case *compiler.UpdateStmt:
		return nil, ErrNotImplemented
	case *compiler.DeleteStmt:
		return nil, &UnsupportedError{Clause: "delete"}
	case *compiler.DropStmt:
		return nil, &UnsupportedError{Clause: "drop"}
	case *compiler.AlterStmt:
		return nil, &UnsupportedError{Clause: "alter-table"}
	case *compiler.BeginStmt, *compiler.CommitStmt, *compiler.RollbackStmt:
		return nil, &UnsupportedError{Clause: "transaction-control"}
	case *compiler.PragmaStmt:
		return nil, &UnsupportedError{Clause: "pragma"}
	}
	return nil, &UnsupportedError{Clause: "statement"}
}

// checkExplain refuses the explain meta-commands before statement dispatch.
func checkExplain(stmt compiler.Stmt) error {
	b := baseOf(stmt)
	if b == nil {
		return nil
	}
	if b.ExplainQueryPlan {
		return &UnsupportedError{Clause: "cmd-explain-query-plan"}
	}
	if b.Explain {
		return &UnsupportedError{Clause: "cmd-explain"}
	}
	return nil
}

func baseOf(stmt compiler.Stmt) *compiler.StmtBase {
	switch s := stmt.(type) {
	case *compiler.SelectStmt:
		return s.StmtBase
	case *compiler.CreateStmt:
		return s.StmtBase
	case *compiler.InsertStmt:
		return s.StmtBase
	case *compiler.UpdateStmt:
		return s.StmtBase
	case *compiler.DeleteStmt:
		return s.StmtBase
	case *compiler.DropStmt:
		return s.StmtBase
	case *compiler.AlterStmt:
		return s.StmtBase
	case *compiler.BeginStmt:
		return s.StmtBase
	case *compiler.CommitStmt:
		return s.StmtBase
	case *compiler.RollbackStmt:
		return s.StmtBase
	case *compiler.PragmaStmt:
		return s.StmtBase
	}
	return nil
}

// execCreate installs a table unconditionally for any valid definition.
// Redefinition under an existing name is a no-op reported through
// Result.Created, not an error.
func (e *Executor) execCreate(s *compiler.CreateStmt) (*Result, error) {
	created := e.catalog.Put(NewTable(s))
	return &Result{Kind: TableCreated, Created: created}, nil
}

func (e *Executor) execSelect(s *compiler.SelectStmt) (*Result, error) {
	if err := checkSelectClauses(s); err != nil {
		return nil, err
	}
	if err := checkFrom(s.From); err != nil {
		return nil, err
	}
	if err := checkResultColumns(s.ResultColumns); err != nil {
		return nil, err
	}
	t, ok := e.catalog.Get(s.From.SchemaName, s.From.TableName)
	if !ok {
		return nil, &TableNotFoundError{
			Name: qualifiedName(s.From.SchemaName, s.From.TableName),
		}
	}
	if err := e.checkJoins(s.From.Joins); err != nil {
		return nil, err
	}
	return &Result{
		Kind:    RowsSelected,
		Columns: t.Columns(),
		Rows:    t.snapshot(),
	}, nil
}

func checkSelectClauses(s *compiler.SelectStmt) error {
	switch {
	case s.With != nil:
		return &UnsupportedError{Clause: "select-with"}
	case len(s.Compound) > 0:
		return &UnsupportedError{Clause: "select-compound"}
	case len(s.OrderBy) > 0:
		return &UnsupportedError{Clause: "select-order-by"}
	case s.Limit != nil:
		return &UnsupportedError{Clause: "select-limit"}
	case s.Values != nil:
		return &UnsupportedError{Clause: "select-values"}
	case s.Distinct:
		return &UnsupportedError{Clause: "select-distinct"}
	case s.Where != nil:
		return &UnsupportedError{Clause: "select-where"}
	case len(s.GroupBy) > 0:
		return &UnsupportedError{Clause: "select-group-by"}
	case s.Having != nil:
		return &UnsupportedError{Clause: "select-having"}
	case s.Window:
		return &UnsupportedError{Clause: "select-window"}
	}
	return nil
}

// checkResultColumns admits exactly the star result column.
func checkResultColumns(rcs []compiler.ResultColumn) error {
	if len(rcs) != 1 {
		return &UnsupportedError{Clause: "select-column-list"}
	}
	rc := rcs[0]
	switch {
	case rc.All:
		return nil
	case rc.AllTable != "":
		return &UnsupportedError{Clause: "select-table-star"}
	}
	return &UnsupportedError{Clause: "select-expression-column"}
}

func checkFrom(f *compiler.From) error {
	switch {
	case f == nil:
		return &UnsupportedError{Clause: "select-without-from"}
	case f.Subquery != nil:
		return &UnsupportedError{Clause: "select-subquery"}
	case f.TableFunction:
		return &UnsupportedError{Clause: "select-table-function"}
	case f.Alias != "":
		return &UnsupportedError{Clause: "select-table-alias"}
	case f.IndexedBy != "" || f.NotIndexed:
		return &UnsupportedError{Clause: "select-indexed-by"}
	}
	return nil
}

// checkJoins refuses any join, reporting a missing join table ahead of the
// join itself.
func (e *Executor) checkJoins(joins []compiler.Join) error {
	if len(joins) == 0 {
		return nil
	}
	j := joins[0]
	if j.Table != nil && j.Table.TableName != "" {
		if _, ok := e.catalog.Get(j.Table.SchemaName, j.Table.TableName); !ok {
			return &TableNotFoundError{
				Name: qualifiedName(j.Table.SchemaName, j.Table.TableName),
			}
		}
	}
	return &UnsupportedError{Clause: "select-join"}
}

func (e *Executor) execInsert(s *compiler.InsertStmt) (*Result, error) {
	if err := checkInsertClauses(s); err != nil {
		return nil, err
	}
	t, ok := e.catalog.Get(s.SchemaName, s.TableName)
	if !ok {
		return nil, &TableNotFoundError{
			Name: qualifiedName(s.SchemaName, s.TableName),
		}
	}
	// The whole row set is materialized before anything is appended so a
	// non-literal expression anywhere commits nothing.
	rows, err := literalRows(s.ColValues)
	if err != nil {
		return nil, err
	}
	t.append(rows)
	return &Result{Kind: RowInserted}, nil
}

func checkInsertClauses(s *compiler.InsertStmt) error {
	switch {
	case s.With != nil:
		return &UnsupportedError{Clause: "insert-with"}
	case s.OrConflict != "":
		return &UnsupportedError{Clause: "insert-or-conflict"}
	case len(s.ColNames) > 0:
		return &UnsupportedError{Clause: "insert-columns"}
	case len(s.Returning) > 0:
		return &UnsupportedError{Clause: "insert-returning"}
	case s.Upsert:
		return &UnsupportedError{Clause: "insert-upsert"}
	case s.DefaultValues:
		return &UnsupportedError{Clause: "insert-default-values"}
	case s.Select != nil:
		return &UnsupportedError{Clause: "insert-select"}
	}
	return nil
}

// literalRows converts value expressions to literal rows, failing on the
// first expression that is not a literal constant.
func literalRows(colValues [][]compiler.Expr) ([][]compiler.Literal, error) {
	rows := make([][]compiler.Literal, 0, len(colValues))
	for _, exprs := range colValues {
		row := make([]compiler.Literal, 0, len(exprs))
		for _, expr := range exprs {
			l, ok := expr.(compiler.Literal)
			if !ok {
				return nil, &UnsupportedError{Clause: "insert-non-literal-value"}
			}
			row = append(row, l)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func qualifiedName(schema, name string) string {
	if schema != "" {
		return schema + "." + name
	}
	return name
}
