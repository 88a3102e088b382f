package driver_test

import (
	"database/sql"
	"testing"

	_ "github.com/mfrye/memlite/driver"
)

// open pins the pool to one connection. Every driver connection is its own
// in-memory database, so state only accumulates on a single connection.
func open(t *testing.T) *sql.DB {
	t.Helper()
	d, err := sql.Open("memlite", "")
	if err != nil {
		t.Fatal(err)
	}
	d.SetMaxOpenConns(1)
	return d
}

func TestDriver(t *testing.T) {
	d := open(t)
	defer d.Close()

	if _, err := d.Exec("CREATE TABLE person (id INTEGER, first_name TEXT, age REAL)"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Exec("INSERT INTO person VALUES (1, 'John', 50.5)"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Exec("INSERT INTO person VALUES (2, NULL, 21)"); err != nil {
		t.Fatal(err)
	}

	rows, err := d.Query("SELECT * FROM person")
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 3 || cols[0] != "id" || cols[1] != "first_name" || cols[2] != "age" {
		t.Fatalf("unexpected columns %v", cols)
	}

	type person struct {
		id        int64
		firstName sql.NullString
		age       float64
	}
	got := []person{}
	for rows.Next() {
		var p person
		if err := rows.Scan(&p.id, &p.firstName, &p.age); err != nil {
			t.Fatal(err)
		}
		got = append(got, p)
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows got %d", len(got))
	}
	if got[0].id != 1 || got[0].firstName.String != "John" || got[0].age != 50.5 {
		t.Errorf("unexpected first row %#v", got[0])
	}
	if got[1].id != 2 || got[1].firstName.Valid {
		t.Errorf("unexpected second row %#v", got[1])
	}
}

func TestDriverErrors(t *testing.T) {
	d := open(t)
	defer d.Close()

	if _, err := d.Query("SELECT * FROM nope"); err == nil {
		t.Error("want err got no err")
	}
	if _, err := d.Exec("CREATE TABLE t1 (a)"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Exec("INSERT INTO t1 VALUES (?)", 1); err == nil {
		t.Error("want err for statement parameters got no err")
	}
	if _, err := d.Begin(); err == nil {
		t.Error("want err for transaction got no err")
	}
}

// The engine stores rows verbatim without arity checks, so a row may be
// wider or narrower than the declared column list.
func TestDriverRaggedRows(t *testing.T) {
	d := open(t)
	defer d.Close()

	if _, err := d.Exec("CREATE TABLE t1 (a, b)"); err != nil {
		t.Fatal(err)
	}
	for _, sql := range []string{
		"INSERT INTO t1 VALUES (1, 2, 3)",
		"INSERT INTO t1 VALUES (9)",
	} {
		if _, err := d.Exec(sql); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := d.Query("SELECT * FROM t1")
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	// The wide row scans to the declared width; the extra value is dropped.
	if !rows.Next() {
		t.Fatal("want a row got none")
	}
	var a int64
	var b sql.NullInt64
	if err := rows.Scan(&a, &b); err != nil {
		t.Fatal(err)
	}
	if a != 1 || !b.Valid || b.Int64 != 2 {
		t.Errorf("unexpected wide row %d %#v", a, b)
	}

	// The narrow row must not leak the previous row's values.
	if !rows.Next() {
		t.Fatal("want a second row got none")
	}
	if err := rows.Scan(&a, &b); err != nil {
		t.Fatal(err)
	}
	if a != 9 || b.Valid {
		t.Errorf("unexpected narrow row %d %#v", a, b)
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
}

func TestDriverBlob(t *testing.T) {
	d := open(t)
	defer d.Close()

	if _, err := d.Exec("CREATE TABLE b (data BLOB)"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Exec("INSERT INTO b VALUES (X'AB01')"); err != nil {
		t.Fatal(err)
	}
	rows, err := d.Query("SELECT * FROM b")
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()
	if !rows.Next() {
		t.Fatal("want a row got none")
	}
	var data []byte
	if err := rows.Scan(&data); err != nil {
		t.Fatal(err)
	}
	if len(data) != 2 || data[0] != 0xAB || data[1] != 0x01 {
		t.Errorf("unexpected blob %x", data)
	}
}
