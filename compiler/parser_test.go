package compiler

import (
	"reflect"
	"testing"
)

func mustParse(t *testing.T, sql string) Stmt {
	t.Helper()
	stmt, err := NewParser(NewLexer(sql).Lex()).Parse()
	if err != nil {
		t.Fatalf("want no err got err %s for %s", err, sql)
	}
	return stmt
}

func TestParseSelect(t *testing.T) {
	cases := []struct {
		sql      string
		expected Stmt
	}{
		{
			sql: "SELECT * FROM foo",
			expected: &SelectStmt{
				StmtBase:      &StmtBase{},
				ResultColumns: []ResultColumn{{All: true}},
				From:          &From{TableName: "foo"},
			},
		},
		{
			sql: "EXPLAIN SELECT * FROM foo",
			expected: &SelectStmt{
				StmtBase:      &StmtBase{Explain: true},
				ResultColumns: []ResultColumn{{All: true}},
				From:          &From{TableName: "foo"},
			},
		},
		{
			sql: "EXPLAIN QUERY PLAN SELECT * FROM foo",
			expected: &SelectStmt{
				StmtBase:      &StmtBase{ExplainQueryPlan: true},
				ResultColumns: []ResultColumn{{All: true}},
				From:          &From{TableName: "foo"},
			},
		},
		{
			sql: "SELECT foo.* FROM foo",
			expected: &SelectStmt{
				StmtBase:      &StmtBase{},
				ResultColumns: []ResultColumn{{AllTable: "foo"}},
				From:          &From{TableName: "foo"},
			},
		},
		{
			sql: "SELECT * FROM main.foo",
			expected: &SelectStmt{
				StmtBase:      &StmtBase{},
				ResultColumns: []ResultColumn{{All: true}},
				From:          &From{SchemaName: "main", TableName: "foo"},
			},
		},
		{
			sql: "SELECT id AS thing FROM foo",
			expected: &SelectStmt{
				StmtBase: &StmtBase{},
				ResultColumns: []ResultColumn{
					{
						Expression: &ColumnRef{Column: "id"},
						Alias:      "thing",
					},
				},
				From: &From{TableName: "foo"},
			},
		},
		{
			sql: "SELECT COUNT(*) FROM foo",
			expected: &SelectStmt{
				StmtBase: &StmtBase{},
				ResultColumns: []ResultColumn{
					{
						Expression: &FunctionExpr{Name: "COUNT", Star: true},
					},
				},
				From: &From{TableName: "foo"},
			},
		},
		{
			sql: "VALUES (1, 2), (3, 4)",
			expected: &SelectStmt{
				StmtBase: &StmtBase{},
				Values: [][]Expr{
					{
						Literal{Kind: Integer, Value: "1"},
						Literal{Kind: Integer, Value: "2"},
					},
					{
						Literal{Kind: Integer, Value: "3"},
						Literal{Kind: Integer, Value: "4"},
					},
				},
			},
		},
	}
	for _, c := range cases {
		ret := mustParse(t, c.sql)
		if !reflect.DeepEqual(ret, c.expected) {
			t.Errorf("got %#v want %#v for %s", ret, c.expected, c.sql)
		}
	}
}

func TestParseSelectClauses(t *testing.T) {
	cases := []struct {
		sql   string
		check func(*SelectStmt) bool
	}{
		{
			sql:   "SELECT DISTINCT * FROM foo",
			check: func(s *SelectStmt) bool { return s.Distinct },
		},
		{
			sql:   "SELECT * FROM foo WHERE id = 1",
			check: func(s *SelectStmt) bool { return s.Where != nil },
		},
		{
			sql: "SELECT * FROM foo GROUP BY id HAVING id > 1",
			check: func(s *SelectStmt) bool {
				return len(s.GroupBy) == 1 && s.Having != nil
			},
		},
		{
			sql: "SELECT * FROM foo ORDER BY id DESC, name",
			check: func(s *SelectStmt) bool {
				return len(s.OrderBy) == 2 && s.OrderBy[0].Descending &&
					!s.OrderBy[1].Descending
			},
		},
		{
			sql: "SELECT * FROM foo LIMIT 10 OFFSET 2",
			check: func(s *SelectStmt) bool {
				return s.Limit != nil && s.Limit.Count != nil &&
					s.Limit.Offset != nil
			},
		},
		{
			sql: "SELECT * FROM foo UNION ALL SELECT * FROM bar",
			check: func(s *SelectStmt) bool {
				return len(s.Compound) == 1 &&
					s.Compound[0].Operator == "UNION ALL"
			},
		},
		{
			sql: "SELECT * FROM foo LEFT JOIN bar ON foo.id = bar.id",
			check: func(s *SelectStmt) bool {
				return len(s.From.Joins) == 1 &&
					s.From.Joins[0].Operator == "LEFT JOIN" &&
					s.From.Joins[0].Table.TableName == "bar" &&
					s.From.Joins[0].On != nil
			},
		},
		{
			sql: "SELECT * FROM foo, bar",
			check: func(s *SelectStmt) bool {
				return len(s.From.Joins) == 1 && s.From.Joins[0].Operator == ","
			},
		},
		{
			sql: "SELECT * FROM (SELECT * FROM foo)",
			check: func(s *SelectStmt) bool {
				return s.From.Subquery != nil && s.From.TableName == ""
			},
		},
		{
			sql: "SELECT * FROM foo f INDEXED BY foo_idx",
			check: func(s *SelectStmt) bool {
				return s.From.Alias == "f" && s.From.IndexedBy == "foo_idx"
			},
		},
		{
			sql: "SELECT * FROM generate_series(1, 10)",
			check: func(s *SelectStmt) bool {
				return s.From.TableFunction
			},
		},
		{
			sql: "WITH c AS (SELECT * FROM foo) SELECT * FROM c",
			check: func(s *SelectStmt) bool {
				return s.With != nil && len(s.With.CTEs) == 1 &&
					s.With.CTEs[0].Name == "c"
			},
		},
		{
			sql: "SELECT id FROM foo WINDOW w AS (PARTITION BY id)",
			check: func(s *SelectStmt) bool {
				return s.Window
			},
		},
	}
	for _, c := range cases {
		ret := mustParse(t, c.sql)
		s, ok := ret.(*SelectStmt)
		if !ok {
			t.Fatalf("want *SelectStmt got %#v for %s", ret, c.sql)
		}
		if !c.check(s) {
			t.Errorf("check failed for %s: %#v", c.sql, s)
		}
	}
}

func TestParseCreate(t *testing.T) {
	cases := []struct {
		sql      string
		expected Stmt
	}{
		{
			sql: "CREATE TABLE foo (id INTEGER PRIMARY KEY, first_name TEXT, last_name TEXT)",
			expected: &CreateStmt{
				StmtBase:  &StmtBase{},
				TableName: "foo",
				ColDefs: []ColDef{
					{ColName: "id", ColType: "INTEGER", Constraint: "PRIMARY KEY"},
					{ColName: "first_name", ColType: "TEXT"},
					{ColName: "last_name", ColType: "TEXT"},
				},
			},
		},
		{
			sql: "CREATE TABLE IF NOT EXISTS foo (id INTEGER)",
			expected: &CreateStmt{
				StmtBase:    &StmtBase{},
				IfNotExists: true,
				TableName:   "foo",
				ColDefs:     []ColDef{{ColName: "id", ColType: "INTEGER"}},
			},
		},
		{
			sql: "CREATE TABLE t1 (a, b)",
			expected: &CreateStmt{
				StmtBase:  &StmtBase{},
				TableName: "t1",
				ColDefs:   []ColDef{{ColName: "a"}, {ColName: "b"}},
			},
		},
		{
			sql: "CREATE TABLE t (a VARCHAR(70), PRIMARY KEY (a))",
			expected: &CreateStmt{
				StmtBase:    &StmtBase{},
				TableName:   "t",
				ColDefs:     []ColDef{{ColName: "a", ColType: "VARCHAR(70)"}},
				Constraints: []string{"PRIMARY KEY ( a )"},
			},
		},
	}
	for _, c := range cases {
		ret := mustParse(t, c.sql)
		if !reflect.DeepEqual(ret, c.expected) {
			t.Errorf("got %#v want %#v for %s", ret, c.expected, c.sql)
		}
	}
}

func TestParseInsert(t *testing.T) {
	cases := []struct {
		sql      string
		expected Stmt
	}{
		{
			sql: "INSERT INTO foo VALUES (1, 'gud')",
			expected: &InsertStmt{
				StmtBase:  &StmtBase{},
				TableName: "foo",
				ColValues: [][]Expr{
					{
						Literal{Kind: Integer, Value: "1"},
						Literal{Kind: Text, Value: "gud"},
					},
				},
			},
		},
		{
			sql: "INSERT INTO foo (id, name) VALUES (1, 'a'), (2, 'b')",
			expected: &InsertStmt{
				StmtBase:  &StmtBase{},
				TableName: "foo",
				ColNames:  []string{"id", "name"},
				ColValues: [][]Expr{
					{
						Literal{Kind: Integer, Value: "1"},
						Literal{Kind: Text, Value: "a"},
					},
					{
						Literal{Kind: Integer, Value: "2"},
						Literal{Kind: Text, Value: "b"},
					},
				},
			},
		},
		{
			sql: "INSERT INTO t VALUES (-1, X'ab01', NULL, TRUE)",
			expected: &InsertStmt{
				StmtBase:  &StmtBase{},
				TableName: "t",
				ColValues: [][]Expr{
					{
						Literal{Kind: Integer, Value: "-1"},
						Literal{Kind: Blob, Value: "AB01"},
						Literal{Kind: Null},
						Literal{Kind: Keyword, Value: "TRUE"},
					},
				},
			},
		},
		{
			sql: "INSERT OR IGNORE INTO t VALUES (1)",
			expected: &InsertStmt{
				StmtBase:   &StmtBase{},
				OrConflict: "IGNORE",
				TableName:  "t",
				ColValues:  [][]Expr{{Literal{Kind: Integer, Value: "1"}}},
			},
		},
		{
			sql: "REPLACE INTO t VALUES (1)",
			expected: &InsertStmt{
				StmtBase:   &StmtBase{},
				OrConflict: "REPLACE",
				TableName:  "t",
				ColValues:  [][]Expr{{Literal{Kind: Integer, Value: "1"}}},
			},
		},
		{
			sql: "INSERT INTO t DEFAULT VALUES",
			expected: &InsertStmt{
				StmtBase:      &StmtBase{},
				TableName:     "t",
				DefaultValues: true,
			},
		},
	}
	for _, c := range cases {
		ret := mustParse(t, c.sql)
		if !reflect.DeepEqual(ret, c.expected) {
			t.Errorf("got %#v want %#v for %s", ret, c.expected, c.sql)
		}
	}
}

func TestParseInsertClauses(t *testing.T) {
	cases := []struct {
		sql   string
		check func(*InsertStmt) bool
	}{
		{
			sql:   "INSERT INTO t SELECT * FROM s",
			check: func(s *InsertStmt) bool { return s.Select != nil },
		},
		{
			sql: "INSERT INTO t VALUES (1) ON CONFLICT (id) DO NOTHING",
			check: func(s *InsertStmt) bool {
				return s.Upsert
			},
		},
		{
			sql: "INSERT INTO t VALUES (1) ON CONFLICT DO UPDATE SET a = 1",
			check: func(s *InsertStmt) bool {
				return s.Upsert
			},
		},
		{
			sql: "INSERT INTO t VALUES (1) RETURNING id, name",
			check: func(s *InsertStmt) bool {
				return len(s.Returning) == 2
			},
		},
		{
			sql: "WITH c AS (SELECT * FROM s) INSERT INTO t SELECT * FROM c",
			check: func(s *InsertStmt) bool {
				return s.With != nil && s.Select != nil
			},
		},
	}
	for _, c := range cases {
		ret := mustParse(t, c.sql)
		s, ok := ret.(*InsertStmt)
		if !ok {
			t.Fatalf("want *InsertStmt got %#v for %s", ret, c.sql)
		}
		if !c.check(s) {
			t.Errorf("check failed for %s: %#v", c.sql, s)
		}
	}
}

func TestParseOtherStmts(t *testing.T) {
	cases := []struct {
		sql      string
		expected Stmt
	}{
		{
			sql:      "BEGIN",
			expected: &BeginStmt{StmtBase: &StmtBase{}},
		},
		{
			sql:      "BEGIN TRANSACTION",
			expected: &BeginStmt{StmtBase: &StmtBase{}},
		},
		{
			sql:      "COMMIT",
			expected: &CommitStmt{StmtBase: &StmtBase{}},
		},
		{
			sql:      "END TRANSACTION",
			expected: &CommitStmt{StmtBase: &StmtBase{}},
		},
		{
			sql:      "ROLLBACK",
			expected: &RollbackStmt{StmtBase: &StmtBase{}},
		},
		{
			sql: "DROP TABLE IF EXISTS foo",
			expected: &DropStmt{
				StmtBase:   &StmtBase{},
				ObjectType: "TABLE",
				IfExists:   true,
				Name:       "foo",
			},
		},
		{
			sql: "DELETE FROM foo WHERE id = 1",
			expected: &DeleteStmt{
				StmtBase:  &StmtBase{},
				TableName: "foo",
				Predicate: &BinaryExpr{
					Left:     &ColumnRef{Column: "id"},
					Operator: "=",
					Right:    Literal{Kind: Integer, Value: "1"},
				},
			},
		},
	}
	for _, c := range cases {
		ret := mustParse(t, c.sql)
		if !reflect.DeepEqual(ret, c.expected) {
			t.Errorf("got %#v want %#v for %s", ret, c.expected, c.sql)
		}
	}
}

func TestParseUpdate(t *testing.T) {
	ret := mustParse(t, "UPDATE foo SET name = 'x', age = 2 WHERE id = 1")
	s, ok := ret.(*UpdateStmt)
	if !ok {
		t.Fatalf("want *UpdateStmt got %#v", ret)
	}
	if s.TableName != "foo" {
		t.Errorf("want table foo got %s", s.TableName)
	}
	if len(s.SetList) != 2 {
		t.Errorf("want 2 set items got %d", len(s.SetList))
	}
	if !reflect.DeepEqual(s.SetList["name"], Literal{Kind: Text, Value: "x"}) {
		t.Errorf("unexpected set expr %#v", s.SetList["name"])
	}
	if s.Predicate == nil {
		t.Errorf("want predicate got nil")
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, sql := range []string{"", "   ", ";", "; ;", "-- comment only\n", "/* block */"} {
		stmt, err := NewParser(NewLexer(sql).Lex()).Parse()
		if err != nil {
			t.Errorf("want no err got err %s for %q", err, sql)
		}
		if stmt != nil {
			t.Errorf("want nil stmt got %#v for %q", stmt, sql)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"SELECT",
		"SELECT * FROM",
		"CREATE TABLE",
		"CREATE TABLE foo",
		"INSERT INTO",
		"INSERT INTO foo",
		"INSERT OR WAT INTO foo VALUES (1)",
		"EXPLAIN QUERY SELECT 1",
		"WAT",
		// An unrecognized rune is a parse error, not a truncated stream.
		"@ SELECT 1",
		"SELECT @",
		"INSERT INTO t VALUES (1 @ 2)",
	}
	for _, sql := range cases {
		_, err := NewParser(NewLexer(sql).Lex()).Parse()
		if err == nil {
			t.Errorf("want err got no err for %s", sql)
		}
	}
}

func TestParseExpr(t *testing.T) {
	cases := []struct {
		sql      string
		expected Expr
	}{
		{
			sql: "SELECT 1 + 2 * 3",
			expected: &BinaryExpr{
				Left:     Literal{Kind: Integer, Value: "1"},
				Operator: "+",
				Right: &BinaryExpr{
					Left:     Literal{Kind: Integer, Value: "2"},
					Operator: "*",
					Right:    Literal{Kind: Integer, Value: "3"},
				},
			},
		},
		{
			sql: "SELECT (1 + 2) * 3",
			expected: &BinaryExpr{
				Left: &ParenExpr{
					Expression: &BinaryExpr{
						Left:     Literal{Kind: Integer, Value: "1"},
						Operator: "+",
						Right:    Literal{Kind: Integer, Value: "2"},
					},
				},
				Operator: "*",
				Right:    Literal{Kind: Integer, Value: "3"},
			},
		},
		{
			sql: "SELECT a IS NOT NULL",
			expected: &BinaryExpr{
				Left:     &ColumnRef{Column: "a"},
				Operator: "IS NOT",
				Right:    Literal{Kind: Null},
			},
		},
		{
			sql:      "SELECT 1.5e-3",
			expected: Literal{Kind: Real, Value: "1.5e-3"},
		},
		{
			sql:      "SELECT 'it''s'",
			expected: Literal{Kind: Text, Value: "it's"},
		},
		{
			sql:      "SELECT NOT 1",
			expected: &UnaryExpr{Operator: "NOT", Operand: Literal{Kind: Integer, Value: "1"}},
		},
		{
			sql: "SELECT UPPER(name)",
			expected: &FunctionExpr{
				Name: "UPPER",
				Args: []Expr{&ColumnRef{Column: "name"}},
			},
		},
		{
			sql: "SELECT (SELECT id FROM foo)",
			expected: &SubqueryExpr{
				Select: &SelectStmt{
					StmtBase: &StmtBase{},
					ResultColumns: []ResultColumn{
						{Expression: &ColumnRef{Column: "id"}},
					},
					From: &From{TableName: "foo"},
				},
			},
		},
	}
	for _, c := range cases {
		ret := mustParse(t, c.sql)
		s, ok := ret.(*SelectStmt)
		if !ok {
			t.Fatalf("want *SelectStmt got %#v for %s", ret, c.sql)
		}
		if len(s.ResultColumns) != 1 {
			t.Fatalf("want 1 result column got %d for %s", len(s.ResultColumns), c.sql)
		}
		if !reflect.DeepEqual(s.ResultColumns[0].Expression, c.expected) {
			t.Errorf("got %#v want %#v for %s", s.ResultColumns[0].Expression, c.expected, c.sql)
		}
	}
}

func TestParseVariables(t *testing.T) {
	ret := mustParse(t, "INSERT INTO t VALUES (?, ?3, ?)")
	s := ret.(*InsertStmt)
	want := [][]Expr{
		{
			&Variable{Position: 1},
			&Variable{Position: 3},
			&Variable{Position: 4},
		},
	}
	if !reflect.DeepEqual(s.ColValues, want) {
		t.Errorf("got %#v want %#v", s.ColValues, want)
	}
}
