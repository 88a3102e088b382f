// db serves as an interface for the database where raw SQL goes in and
// convenient data structures come out. db is intended to be consumed by
// things like a repl (read eval print loop), a program, or a transport
// protocol.
package db

import (
	"github.com/mfrye/memlite/compiler"
	"github.com/mfrye/memlite/engine"
)

// DB owns exactly one catalog. All state is in memory and is lost when the
// DB is dropped. A DB performs no internal synchronization; callers sharing
// one across goroutines must serialize access themselves.
type DB struct {
	catalog  *engine.Catalog
	executor *engine.Executor
}

func New() *DB {
	c := engine.NewCatalog()
	return &DB{
		catalog:  c,
		executor: engine.NewExecutor(c),
	}
}

// Execute evaluates at most one statement of sql. Input holding no statement
// yields an Empty result. Text after the first complete statement is
// ignored. This is the sole entry point; parse errors and engine errors are
// returned as-is.
func (d *DB) Execute(sql string) (*engine.Result, error) {
	tokens := compiler.NewLexer(sql).Lex()
	stmt, err := compiler.NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}
	if stmt == nil {
		return &engine.Result{Kind: engine.Empty}, nil
	}
	return d.executor.Exec(stmt)
}

// Catalog exposes the table catalog for introspection, for example by the
// repl.
func (d *DB) Catalog() *engine.Catalog {
	return d.catalog
}
