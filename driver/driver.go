// Package driver enables memlite to be used with the go database/sql
// package. Every connection opens a fresh in-memory database; nothing is
// shared between connections and nothing persists.
package driver

import (
	"database/sql"
	"database/sql/driver"
	"encoding/hex"
	"errors"
	"io"
	"strconv"

	"github.com/mfrye/memlite/compiler"
	"github.com/mfrye/memlite/db"
)

func init() {
	sql.Register("memlite", &memliteDriver{})
}

type memliteDriver struct{}

// Open implements driver.Driver. The name is ignored: there is nothing to
// open but a fresh in-memory database.
func (d *memliteDriver) Open(name string) (driver.Conn, error) {
	return &memliteConn{db: db.New()}, nil
}

type memliteConn struct {
	db *db.DB
}

// Begin implements driver.Conn. Transactions are outside the supported
// subset.
func (c *memliteConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

// Close implements driver.Conn.
func (c *memliteConn) Close() error {
	return nil
}

// Prepare implements driver.Conn. The statement is validated lazily on
// execution; the subset is literal-only so statement parameters are not
// supported.
func (c *memliteConn) Prepare(query string) (driver.Stmt, error) {
	return &memliteStmt{db: c.db, query: query}, nil
}

type memliteStmt struct {
	db    *db.DB
	query string
}

// Close implements driver.Stmt.
func (s *memliteStmt) Close() error {
	return nil
}

// NumInput implements driver.Stmt. -1 skips the argument count sanity check;
// arguments are rejected at execution since only literal values are
// supported.
func (s *memliteStmt) NumInput() int {
	return -1
}

// Exec implements driver.Stmt.
func (s *memliteStmt) Exec(args []driver.Value) (driver.Result, error) {
	if len(args) > 0 {
		return nil, errors.New("statement parameters not supported")
	}
	if _, err := s.db.Execute(s.query); err != nil {
		return nil, err
	}
	return &memliteResult{}, nil
}

// Query implements driver.Stmt.
func (s *memliteStmt) Query(args []driver.Value) (driver.Rows, error) {
	if len(args) > 0 {
		return nil, errors.New("statement parameters not supported")
	}
	result, err := s.db.Execute(s.query)
	if err != nil {
		return nil, err
	}
	return &memliteRows{
		cols: result.Columns,
		rows: result.Rows,
	}, nil
}

type memliteResult struct{}

// LastInsertId implements driver.Result.
func (r *memliteResult) LastInsertId() (int64, error) {
	return 0, nil
}

// RowsAffected implements driver.Result.
func (r *memliteResult) RowsAffected() (int64, error) {
	return 0, nil
}

type memliteRows struct {
	cols   []string
	rows   [][]compiler.Literal
	rowIdx int
}

// Close implements driver.Rows.
func (r *memliteRows) Close() error {
	return nil
}

// Columns implements driver.Rows.
func (r *memliteRows) Columns() []string {
	return r.cols
}

// Next implements driver.Rows. dest is sized by Columns while stored rows
// may be wider or narrower than the declared column list, so the loop is
// bounded by dest: extra values are dropped and missing values are NULL.
func (r *memliteRows) Next(dest []driver.Value) error {
	if r.rowIdx == len(r.rows) {
		return io.EOF
	}
	row := r.rows[r.rowIdx]
	for i := range dest {
		if i >= len(row) {
			dest[i] = nil
			continue
		}
		v, err := toValue(row[i])
		if err != nil {
			return err
		}
		dest[i] = v
	}
	r.rowIdx += 1
	return nil
}

// toValue converts a literal to the native Go value database/sql expects.
func toValue(l compiler.Literal) (driver.Value, error) {
	switch l.Kind {
	case compiler.Integer:
		n, err := strconv.ParseInt(l.Value, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case compiler.Real:
		f, err := strconv.ParseFloat(l.Value, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	case compiler.Text, compiler.Keyword:
		return l.Value, nil
	case compiler.Blob:
		b, err := hex.DecodeString(l.Value)
		if err != nil {
			return nil, err
		}
		return b, nil
	case compiler.Null:
		return nil, nil
	}
	return nil, errors.New("unknown literal kind")
}
