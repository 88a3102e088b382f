package compiler

// ast (Abstract Syntax Tree) defines a data structure representing a SQL
// program. This data structure is generated from the parser. The statement
// shapes deliberately carry every clause the grammar admits, even clauses the
// engine refuses to execute, so the engine can name what it is rejecting.

type Stmt interface{}

type StmtBase struct {
	Explain          bool
	ExplainQueryPlan bool
}

// SelectStmt is a full select statement including the clauses the engine does
// not support. A plain `SELECT * FROM foo` has From and a single ResultColumn
// with All set and everything else zero.
type SelectStmt struct {
	*StmtBase
	With          *With
	Distinct      bool
	ResultColumns []ResultColumn
	From          *From
	Where         Expr
	GroupBy       []Expr
	Having        Expr
	// Window is true when the statement carries a WINDOW clause. The clause
	// body is not retained.
	Window  bool
	OrderBy []OrderingTerm
	Limit   *Limit
	// Compound holds the arms of UNION, INTERSECT, or EXCEPT operators in
	// source order.
	Compound []CompoundSelect
	// Values is set instead of ResultColumns and From when the select body is
	// a bare VALUES list. The first dimension is a row and the second a
	// column expression.
	Values [][]Expr
}

// ResultColumn is the column definitions in a select statement.
type ResultColumn struct {
	// All is * in a select statement for example SELECT * FROM foo
	All bool
	// AllTable is all for a table for example SELECT foo.* FROM foo
	AllTable string
	// Expression contains the more complicated result column rules
	Expression Expr
	// Alias is the alias for an expression for example SELECT 1 AS "bar"
	Alias string
}

type With struct {
	Recursive bool
	// CTEs are the common table expressions in declaration order.
	CTEs []CommonTableExpr
}

type CommonTableExpr struct {
	Name    string
	Columns []string
	Select  *SelectStmt
}

type From struct {
	SchemaName string
	TableName  string
	Alias      string
	// IndexedBy is the index name of an INDEXED BY hint. NotIndexed is set
	// for NOT INDEXED.
	IndexedBy  string
	NotIndexed bool
	// Subquery is set instead of TableName when the source is a
	// parenthesized select.
	Subquery *SelectStmt
	// TableFunction is true when the source is a table valued function call.
	TableFunction bool
	Joins         []Join
}

type Join struct {
	// Operator is the join operator text, for example "LEFT JOIN", "CROSS
	// JOIN", or "," for a comma join.
	Operator string
	Table    *From
	On       Expr
	Using    []string
}

type OrderingTerm struct {
	Expression Expr
	Descending bool
}

type Limit struct {
	Count  Expr
	Offset Expr
}

type CompoundSelect struct {
	// Operator is UNION, UNION ALL, INTERSECT, or EXCEPT.
	Operator string
	Select   *SelectStmt
}

type CreateStmt struct {
	*StmtBase
	// IfNotExists is true when the create statement includes `CREATE TABLE IF
	// NOT EXISTS` meaning the statement should not throw if the table already
	// exists.
	IfNotExists bool
	SchemaName  string
	TableName   string
	ColDefs     []ColDef
	// Constraints holds table level constraint text verbatim. The engine
	// stores it for redisplay and never interprets it.
	Constraints []string
}

type ColDef struct {
	ColName string
	ColType string
	// Constraint holds the column constraint text verbatim, for example
	// "PRIMARY KEY" or "NOT NULL DEFAULT 0". Opaque to the engine.
	Constraint string
}

type InsertStmt struct {
	*StmtBase
	With *With
	// OrConflict is the conflict resolution of INSERT OR ROLLBACK/ABORT/
	// FAIL/IGNORE/REPLACE, or REPLACE for the REPLACE INTO spelling.
	OrConflict string
	SchemaName string
	TableName  string
	ColNames   []string
	// ColValues is a 2d list where the first dimension represents a row and
	// the second dimension represents a column value expression. Exactly one
	// of ColValues, Select, and DefaultValues is set.
	ColValues     [][]Expr
	Select        *SelectStmt
	DefaultValues bool
	// Upsert is true when an ON CONFLICT clause is present. The clause body
	// is not retained.
	Upsert    bool
	Returning []ResultColumn
}

type UpdateStmt struct {
	*StmtBase
	OrConflict string
	SchemaName string
	TableName  string
	// SetList is a mapping of column names to the expressions the column
	// should be updated to.
	SetList map[string]Expr
	// Predicate is the where clause. It may be nil when there is no where.
	Predicate Expr
	Returning []ResultColumn
}

type DeleteStmt struct {
	*StmtBase
	SchemaName string
	TableName  string
	Predicate  Expr
	Returning  []ResultColumn
}

type DropStmt struct {
	*StmtBase
	// ObjectType is TABLE, INDEX, VIEW, or TRIGGER.
	ObjectType string
	IfExists   bool
	SchemaName string
	Name       string
}

type AlterStmt struct {
	*StmtBase
	SchemaName string
	TableName  string
}

type BeginStmt struct {
	*StmtBase
}

type CommitStmt struct {
	*StmtBase
}

type RollbackStmt struct {
	*StmtBase
}

type PragmaStmt struct {
	*StmtBase
	SchemaName string
	Name       string
}

// Expr defines the interface of an expression.
type Expr interface {
	exprNode()
}

// LiteralKind discriminates the variants of Literal.
type LiteralKind int

const (
	// Integer is a whole numeric literal like 42.
	Integer LiteralKind = iota + 1
	// Real is a fractional or exponent numeric literal like 1.5 or 3e4.
	Real
	// Text is a quoted string literal.
	Text
	// Blob is a hex blob literal like X'AB01'.
	Blob
	// Null is the NULL literal.
	Null
	// Keyword is a keyword constant like TRUE or CURRENT_TIMESTAMP.
	Keyword
)

// Literal is a constant SQL value. It is a comparable value type: two
// literals are equal when their kind and payload are equal, and literals of
// different kinds are never equal.
type Literal struct {
	Kind LiteralKind
	// Value is the payload: the digits of a numeric, the decoded text of a
	// string, the hex digits of a blob, the uppercase word of a keyword
	// constant, and empty for NULL.
	Value string
}

func (Literal) exprNode() {}

// ColumnRef is an expression with no operands. It references a column on a
// table.
type ColumnRef struct {
	Schema string
	Table  string
	Column string
}

func (*ColumnRef) exprNode() {}

// BinaryExpr is for an expression with two operands.
type BinaryExpr struct {
	Left     Expr
	Operator string
	Right    Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr is an expression with one operand.
type UnaryExpr struct {
	Operator string
	Operand  Expr
}

func (*UnaryExpr) exprNode() {}

// FunctionExpr is an expression that represents a function call.
type FunctionExpr struct {
	Name string
	// Star is true for an argument list of *, for example COUNT(*).
	Star bool
	Args []Expr
}

func (*FunctionExpr) exprNode() {}

// Variable is a statement parameter such as ? or ?3.
type Variable struct {
	// Position is a unique integer defining what order the variable appeared
	// in the statement.
	Position int
}

func (*Variable) exprNode() {}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	Expression Expr
}

func (*ParenExpr) exprNode() {}

// SubqueryExpr is a parenthesized select used as a scalar expression.
type SubqueryExpr struct {
	Select *SelectStmt
}

func (*SubqueryExpr) exprNode() {}
