// sqltest parses the legacy line-oriented sqlite test script format into
// replayable records. A conformance harness feeds each record's sql to the
// database and compares rendered output against the expected literal. The
// package is a pure data source; it never executes anything itself.
package sqltest

import (
	"fmt"
	"strings"
)

// Record is one replayable statement extracted from a script.
type Record struct {
	// Name identifies a do_test record, for example "select1-1.4". It is
	// empty for a bare execsql record.
	Name string
	// Catch is true when the test wraps its sql in a catch block, meaning an
	// error is the expected outcome and Expected holds its "1 {message}"
	// rendering.
	Catch bool
	Sql   string
	// Expected is the expected-output literal of a do_test record.
	Expected string
}

const (
	startCatch = "set v [catch {execsql {"
	endCatch   = "}} msg]"
	startSql   = "execsql {"
	endSql     = "}"
)

type lines struct {
	lines []string
	pos   int
}

func (l *lines) next() (string, bool) {
	if l.pos >= len(l.lines) {
		return "", false
	}
	line := strings.TrimSpace(l.lines[l.pos])
	l.pos++
	return line, true
}

// ParseScript extracts the ordered records of a script. Comments, blank
// lines, and top-level set/source directives are skipped. Anything else
// unrecognized at top level is an error.
func ParseScript(src string) ([]Record, error) {
	records := []Record{}
	ls := &lines{lines: strings.Split(src, "\n")}
	for {
		line, ok := ls.next()
		if !ok {
			return records, nil
		}
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "set ") || strings.HasPrefix(line, "source "):
			continue
		case strings.HasPrefix(line, "do_test "):
			r, err := parseDoTest(line, ls)
			if err != nil {
				return nil, err
			}
			records = append(records, *r)
		case strings.HasPrefix(line, startSql):
			sql, ok := cut(line, startSql, endSql)
			if !ok {
				return nil, fmt.Errorf("expected %q on line %d", endSql, ls.pos)
			}
			records = append(records, Record{Sql: sql})
		default:
			return nil, fmt.Errorf("could not parse line %d: %s", ls.pos, line)
		}
	}
}

// parseDoTest parses one do_test block:
//
//	do_test name {
//	  execsql {SQL}
//	} {expected}
//
// The sql may instead be wrapped in a catch block, and may spill onto a
// second line.
func parseDoTest(first string, ls *lines) (*Record, error) {
	rest := strings.TrimPrefix(first, "do_test ")
	idx := strings.Index(rest, "{")
	if idx < 0 {
		return nil, fmt.Errorf("expected { on line %d", ls.pos)
	}
	r := &Record{Name: strings.TrimSpace(rest[:idx])}

	body, ok := ls.next()
	if !ok {
		return nil, fmt.Errorf("expected test body after line %d", ls.pos)
	}
	if sql, found := cut(body, startCatch, endCatch); found {
		r.Catch = true
		r.Sql = sql
	} else if strings.Contains(body, startSql) {
		sql, found := cut(body, startSql, endSql)
		if !found {
			// The sql statement spills onto the next line.
			cont, ok := ls.next()
			if !ok {
				return nil, fmt.Errorf("expected sql continuation after line %d", ls.pos)
			}
			sql, found = cut(body+" "+cont, startSql, endSql)
			if !found {
				return nil, fmt.Errorf("expected %q on line %d", endSql, ls.pos)
			}
		}
		r.Sql = sql
	} else {
		return nil, fmt.Errorf("expected %q or %q on line %d", startCatch, startSql, ls.pos)
	}

	closer, ok := ls.next()
	if !ok {
		return nil, fmt.Errorf("expected result after line %d", ls.pos)
	}
	if closer == "lappend v $msg" {
		if closer, ok = ls.next(); !ok {
			return nil, fmt.Errorf("expected result after line %d", ls.pos)
		}
	}
	if !strings.HasPrefix(closer, "}") {
		return nil, fmt.Errorf("unexpected line %d: %s", ls.pos, closer)
	}
	expected := strings.TrimSpace(closer[1:])
	if !strings.HasPrefix(expected, "{") || !strings.HasSuffix(expected, "}") {
		return nil, fmt.Errorf("expected result literal on line %d", ls.pos)
	}
	r.Expected = expected[1 : len(expected)-1]
	return r, nil
}

// cut returns the text between the first start marker and the last end
// marker following it.
func cut(line, start, end string) (string, bool) {
	s := strings.Index(line, start)
	if s < 0 {
		return "", false
	}
	rest := line[s+len(start):]
	e := strings.LastIndex(rest, end)
	if e < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:e]), true
}
