package compiler

import (
	"fmt"
	"slices"
)

var conflictActions = []string{
	"ROLLBACK", "ABORT", "FAIL", "IGNORE", "REPLACE",
}

// parseInsert parses an insert statement. lead is the keyword the statement
// began with: INSERT or REPLACE for the REPLACE INTO spelling.
func (p *parser) parseInsert(sb *StmtBase, w *With, lead string) (*InsertStmt, error) {
	stmt := &InsertStmt{StmtBase: sb, With: w}
	if lead == kwReplace {
		stmt.OrConflict = kwReplace
	} else if p.peekNextNonSpace().value == kwOr {
		p.nextNonSpace()
		action := p.nextNonSpace()
		if !slices.Contains(conflictActions, action.value) {
			return nil, fmt.Errorf(tokenErr, action.value)
		}
		stmt.OrConflict = action.value
	}
	if t := p.nextNonSpace(); t.value != kwInto {
		return nil, fmt.Errorf(tokenErr, t.value)
	}
	schema, name, err := p.parseQualifiedName(p.nextNonSpace())
	if err != nil {
		return nil, err
	}
	stmt.SchemaName = schema
	stmt.TableName = name
	if p.peekNextNonSpace().value == "(" {
		p.nextNonSpace()
		cols, err := p.parseNameList()
		if err != nil {
			return nil, err
		}
		stmt.ColNames = cols
	}
	switch t := p.nextNonSpace(); t.value {
	case kwValues:
		rows, err := p.parseValuesRows()
		if err != nil {
			return nil, err
		}
		stmt.ColValues = rows
	case kwSelect, kwWith:
		var sw *With
		if t.value == kwWith {
			if sw, err = p.parseWith(); err != nil {
				return nil, err
			}
			if st := p.nextNonSpace(); st.value != kwSelect && st.value != kwValues {
				return nil, fmt.Errorf(tokenErr, st.value)
			}
		}
		s, err := p.parseSelect(&StmtBase{}, sw)
		if err != nil {
			return nil, err
		}
		stmt.Select = s
	case kwDefault:
		if v := p.nextNonSpace(); v.value != kwValues {
			return nil, fmt.Errorf(tokenErr, v.value)
		}
		stmt.DefaultValues = true
	default:
		return nil, fmt.Errorf(tokenErr, t.value)
	}
	if p.peekNextNonSpace().value == kwOn {
		if err := p.skipUpsertClause(); err != nil {
			return nil, err
		}
		stmt.Upsert = true
	}
	if p.peekNextNonSpace().value == kwReturning {
		p.nextNonSpace()
		rcs, err := p.parseReturning()
		if err != nil {
			return nil, err
		}
		stmt.Returning = rcs
	}
	return stmt, nil
}

// parseReturning parses the result column list after a RETURNING keyword.
func (p *parser) parseReturning() ([]ResultColumn, error) {
	rcs := []ResultColumn{}
	for {
		rc, err := p.parseResultColumn()
		if err != nil {
			return nil, err
		}
		rcs = append(rcs, *rc)
		if p.peekNextNonSpace().value != "," {
			return rcs, nil
		}
		p.nextNonSpace()
	}
}

// skipUpsertClause consumes ON CONFLICT [(target) [WHERE expr]] DO NOTHING |
// DO UPDATE SET ... without retaining the body. The engine only needs to
// know the clause was present.
func (p *parser) skipUpsertClause() error {
	p.nextNonSpace() // ON
	if t := p.nextNonSpace(); t.value != kwConflict {
		return fmt.Errorf(tokenErr, t.value)
	}
	if p.peekNextNonSpace().value == "(" {
		if err := p.skipBalancedParens(); err != nil {
			return err
		}
		if p.peekNextNonSpace().value == kwWhere {
			p.nextNonSpace()
			if _, err := p.parseExpr(0); err != nil {
				return err
			}
		}
	}
	if t := p.nextNonSpace(); t.value != kwDo {
		return fmt.Errorf(tokenErr, t.value)
	}
	switch t := p.nextNonSpace(); t.value {
	case kwNothing:
		return nil
	case kwUpdate:
		if t := p.nextNonSpace(); t.value != kwSet {
			return fmt.Errorf(tokenErr, t.value)
		}
		if _, err := p.parseSetList(); err != nil {
			return err
		}
		if p.peekNextNonSpace().value == kwWhere {
			p.nextNonSpace()
			if _, err := p.parseExpr(0); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf(tokenErr, t.value)
	}
}
