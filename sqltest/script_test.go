package sqltest

import (
	"reflect"
	"testing"
)

func TestParseScript(t *testing.T) {
	src := `
# 2001 September 15
#
# The author disclaims copyright to this source code.
#
set testdir [file dirname $argv0]
source $testdir/tester.tcl

# Try to select on a non-existent table.
do_test select1-1.1 {
  set v [catch {execsql {SELECT f1 FROM test1}} msg]
  lappend v $msg
} {1 {no such table: test1}}

execsql {CREATE TABLE test1(f1 int, f2 int)}
execsql {INSERT INTO test1 VALUES(11, 22)}

do_test select1-1.4 {
  execsql {SELECT f1 FROM test1}
} {11}
`
	records, err := ParseScript(src)
	if err != nil {
		t.Fatal(err)
	}
	expected := []Record{
		{
			Name:     "select1-1.1",
			Catch:    true,
			Sql:      "SELECT f1 FROM test1",
			Expected: "1 {no such table: test1}",
		},
		{
			Sql: "CREATE TABLE test1(f1 int, f2 int)",
		},
		{
			Sql: "INSERT INTO test1 VALUES(11, 22)",
		},
		{
			Name:     "select1-1.4",
			Sql:      "SELECT f1 FROM test1",
			Expected: "11",
		},
	}
	if !reflect.DeepEqual(records, expected) {
		t.Errorf("got %#v want %#v", records, expected)
	}
}

func TestParseScriptSqlContinuation(t *testing.T) {
	src := `
do_test create-1.1 {
  execsql {
    CREATE TABLE test1(a, b)}
} {}
`
	records, err := ParseScript(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("want 1 record got %d", len(records))
	}
	if records[0].Sql != "CREATE TABLE test1(a, b)" {
		t.Errorf("got %q", records[0].Sql)
	}
}

func TestParseScriptErrors(t *testing.T) {
	cases := []string{
		"wat is this line",
		"do_test broken-1.1\nexecsql {SELECT 1}\n} {}",
		"do_test broken-1.2 {\nnot a test body\n} {}",
		"do_test broken-1.3 {\n  execsql {SELECT 1}\nno closer",
	}
	for _, src := range cases {
		if _, err := ParseScript(src); err == nil {
			t.Errorf("want err got no err for %q", src)
		}
	}
}
