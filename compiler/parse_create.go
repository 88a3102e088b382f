package compiler

import (
	"fmt"
	"slices"
	"strings"
)

// tableConstraintWords begin a table level constraint rather than a column
// definition.
var tableConstraintWords = []string{
	"PRIMARY", "UNIQUE", "CHECK", "FOREIGN", "CONSTRAINT",
}

// parseCreate parses a create table statement. Column types and constraints
// are captured as opaque text. The engine stores the definition for
// redisplay and never interprets it.
func (p *parser) parseCreate(sb *StmtBase) (*CreateStmt, error) {
	stmt := &CreateStmt{StmtBase: sb}
	if t := p.nextNonSpace(); t.value != kwTable {
		return nil, fmt.Errorf(tokenErr, t.value)
	}
	if p.peekNextNonSpace().value == kwIf {
		p.nextNonSpace()
		if t := p.nextNonSpace(); t.value != kwNot {
			return nil, fmt.Errorf(tokenErr, t.value)
		}
		if t := p.nextNonSpace(); t.value != kwExists {
			return nil, fmt.Errorf(tokenErr, t.value)
		}
		stmt.IfNotExists = true
	}
	schema, name, err := p.parseQualifiedName(p.nextNonSpace())
	if err != nil {
		return nil, err
	}
	stmt.SchemaName = schema
	stmt.TableName = name
	if lp := p.nextNonSpace(); lp.value != "(" {
		return nil, fmt.Errorf(tokenErr, lp.value)
	}
	stmt.ColDefs = []ColDef{}
	for {
		t := p.nextNonSpace()
		if slices.Contains(tableConstraintWords, t.value) {
			text, sep, err := p.scanDefText(t.value)
			if err != nil {
				return nil, err
			}
			stmt.Constraints = append(stmt.Constraints, text)
			if sep == ")" {
				return stmt, nil
			}
			continue
		}
		if t.tokenType != tkIdentifier {
			return nil, fmt.Errorf(identErr, t.value)
		}
		cd := ColDef{ColName: t.value}
		if nt := p.peekNextNonSpace(); nt.tokenType == tkIdentifier || isTypeKeyword(nt.value) {
			typ, err := p.scanColType()
			if err != nil {
				return nil, err
			}
			cd.ColType = typ
		}
		text, sep, err := p.scanDefText("")
		if err != nil {
			return nil, err
		}
		cd.Constraint = text
		stmt.ColDefs = append(stmt.ColDefs, cd)
		if sep == ")" {
			return stmt, nil
		}
	}
}

// scanColType scans a declared column type: one or more type words with an
// optional parenthesized size, for example VARCHAR(70) or INTEGER.
func (p *parser) scanColType() (string, error) {
	words := []string{}
	for {
		nt := p.peekNextNonSpace()
		if nt.tokenType != tkIdentifier && !isTypeKeyword(nt.value) {
			break
		}
		words = append(words, p.nextNonSpace().value)
	}
	typ := strings.Join(words, " ")
	if p.peekNextNonSpace().value == "(" {
		p.nextNonSpace()
		args := []string{}
		for {
			t := p.nextNonSpace()
			if t.value == ")" {
				break
			}
			if t.tokenType == tkEOF {
				return "", fmt.Errorf(tokenErr, "EOF")
			}
			if t.value != "," {
				args = append(args, t.value)
			}
		}
		typ = typ + "(" + strings.Join(args, ",") + ")"
	}
	return typ, nil
}

// scanDefText collects the remaining tokens of one column definition or
// table constraint as text, tracking nested parens, and reports which
// separator ended it: "," or ")".
func (p *parser) scanDefText(lead string) (string, string, error) {
	words := []string{}
	if lead != "" {
		words = append(words, lead)
	}
	depth := 0
	for {
		t := p.nextNonSpace()
		switch {
		case t.tokenType == tkEOF:
			return "", "", fmt.Errorf(tokenErr, "EOF")
		case t.value == "(":
			depth++
		case t.value == ")":
			if depth == 0 {
				return strings.Join(words, " "), ")", nil
			}
			depth--
		case t.value == "," && depth == 0:
			return strings.Join(words, " "), ",", nil
		}
		words = append(words, t.value)
	}
}

// isTypeKeyword reports keyword tokens that may begin a declared column
// type.
func isTypeKeyword(v string) bool {
	switch v {
	case "INTEGER", "TEXT", "REAL", "BLOB":
		return true
	}
	return false
}
