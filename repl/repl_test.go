package repl

import (
	"strings"
	"testing"

	"github.com/mfrye/memlite/compiler"
	"github.com/mfrye/memlite/engine"
)

func TestFormatResult(t *testing.T) {
	cases := []struct {
		result   *engine.Result
		expected string
	}{
		{
			result:   &engine.Result{Kind: engine.Empty},
			expected: "",
		},
		{
			result:   &engine.Result{Kind: engine.TableCreated, Created: true},
			expected: "ok\n",
		},
		{
			result:   &engine.Result{Kind: engine.TableCreated},
			expected: "ok (table already exists)\n",
		},
		{
			result:   &engine.Result{Kind: engine.RowInserted},
			expected: "ok\n",
		},
	}
	for _, c := range cases {
		if ret := formatResult(c.result); ret != c.expected {
			t.Errorf("got %q want %q", ret, c.expected)
		}
	}
}

func TestFormatRows(t *testing.T) {
	result := &engine.Result{
		Kind:    engine.RowsSelected,
		Columns: []string{"id", "name"},
		Rows: [][]compiler.Literal{
			{
				{Kind: compiler.Integer, Value: "1"},
				{Kind: compiler.Text, Value: "gud"},
			},
			{
				{Kind: compiler.Integer, Value: "2"},
				{Kind: compiler.Null},
			},
		},
	}
	out := formatResult(result)
	// tablewriter renders headers uppercased.
	for _, want := range []string{"ID", "NAME", "1", "'gud'", "NULL", "(2 rows)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatRowsEmptyTable(t *testing.T) {
	result := &engine.Result{
		Kind:    engine.RowsSelected,
		Columns: []string{"a"},
	}
	out := formatResult(result)
	if !strings.Contains(out, "(0 rows)") {
		t.Errorf("output missing row count:\n%s", out)
	}
}
