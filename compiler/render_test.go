package compiler

import "testing"

func TestRender(t *testing.T) {
	cases := []struct {
		literal  Literal
		expected string
	}{
		{Literal{Kind: Integer, Value: "42"}, "42"},
		{Literal{Kind: Integer, Value: "-7"}, "-7"},
		{Literal{Kind: Real, Value: "1.5"}, "1.5"},
		{Literal{Kind: Text, Value: "gud"}, "'gud'"},
		{Literal{Kind: Text, Value: "it's"}, "'it''s'"},
		{Literal{Kind: Text, Value: ""}, "''"},
		{Literal{Kind: Blob, Value: "AB01"}, "X'AB01'"},
		{Literal{Kind: Null}, "NULL"},
		{Literal{Kind: Keyword, Value: "TRUE"}, "TRUE"},
	}
	for _, c := range cases {
		if ret := Render(c.literal); ret != c.expected {
			t.Errorf("got %s want %s", ret, c.expected)
		}
	}
}

func TestRenderRow(t *testing.T) {
	row := []Literal{
		{Kind: Integer, Value: "1"},
		{Kind: Integer, Value: "2"},
		{Kind: Integer, Value: "3"},
	}
	if ret := RenderRow(row); ret != "1|2|3" {
		t.Errorf("got %s want 1|2|3", ret)
	}
}

func TestRenderRows(t *testing.T) {
	rows := [][]Literal{
		{{Kind: Integer, Value: "1"}, {Kind: Text, Value: "a"}},
		{{Kind: Integer, Value: "2"}, {Kind: Null}},
	}
	expected := "1|'a'\n2|NULL"
	if ret := RenderRows(rows); ret != expected {
		t.Errorf("got %q want %q", ret, expected)
	}

	if ret := RenderRows(nil); ret != "" {
		t.Errorf("got %q want empty", ret)
	}
}
