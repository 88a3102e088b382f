package compiler

// Statements the engine refuses wholesale still parse so the refusal can be
// a clean error instead of a syntax failure.

import (
	"fmt"
	"slices"
)

func (p *parser) parseUpdate(sb *StmtBase) (*UpdateStmt, error) {
	stmt := &UpdateStmt{StmtBase: sb}
	if p.peekNextNonSpace().value == kwOr {
		p.nextNonSpace()
		action := p.nextNonSpace()
		if !slices.Contains(conflictActions, action.value) {
			return nil, fmt.Errorf(tokenErr, action.value)
		}
		stmt.OrConflict = action.value
	}
	schema, name, err := p.parseQualifiedName(p.nextNonSpace())
	if err != nil {
		return nil, err
	}
	stmt.SchemaName = schema
	stmt.TableName = name
	if t := p.nextNonSpace(); t.value != kwSet {
		return nil, fmt.Errorf(tokenErr, t.value)
	}
	setList, err := p.parseSetList()
	if err != nil {
		return nil, err
	}
	stmt.SetList = setList
	if p.peekNextNonSpace().value == kwWhere {
		p.nextNonSpace()
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		stmt.Predicate = e
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

// parseSetList parses column = expr assignments separated by commas.
func (p *parser) parseSetList() (map[string]Expr, error) {
	setList := map[string]Expr{}
	for {
		col := p.nextNonSpace()
		if col.tokenType != tkIdentifier {
			return nil, fmt.Errorf(identErr, col.value)
		}
		if eq := p.nextNonSpace(); eq.value != "=" {
			return nil, fmt.Errorf(tokenErr, eq.value)
		}
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		setList[col.value] = e
		if p.peekNextNonSpace().value != "," {
			return setList, nil
		}
		p.nextNonSpace()
	}
}

func (p *parser) parseDelete(sb *StmtBase) (*DeleteStmt, error) {
	stmt := &DeleteStmt{StmtBase: sb}
	if t := p.nextNonSpace(); t.value != kwFrom {
		return nil, fmt.Errorf(tokenErr, t.value)
	}
	schema, name, err := p.parseQualifiedName(p.nextNonSpace())
	if err != nil {
		return nil, err
	}
	stmt.SchemaName = schema
	stmt.TableName = name
	if p.peekNextNonSpace().value == kwWhere {
		p.nextNonSpace()
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		stmt.Predicate = e
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

func (p *parser) parseDrop(sb *StmtBase) (*DropStmt, error) {
	stmt := &DropStmt{StmtBase: sb}
	t := p.nextNonSpace()
	switch t.value {
	case kwTable, "INDEX", "VIEW", "TRIGGER":
		stmt.ObjectType = t.value
	default:
		return nil, fmt.Errorf(tokenErr, t.value)
	}
	if p.peekNextNonSpace().value == kwIf {
		p.nextNonSpace()
		if e := p.nextNonSpace(); e.value != kwExists {
			return nil, fmt.Errorf(tokenErr, e.value)
		}
		stmt.IfExists = true
	}
	schema, name, err := p.parseQualifiedName(p.nextNonSpace())
	if err != nil {
		return nil, err
	}
	stmt.SchemaName = schema
	stmt.Name = name
	return stmt, nil
}

// parseAlter records the target table then consumes the remainder of the
// statement without interpreting it.
func (p *parser) parseAlter(sb *StmtBase) (*AlterStmt, error) {
	stmt := &AlterStmt{StmtBase: sb}
	if t := p.nextNonSpace(); t.value != kwTable {
		return nil, fmt.Errorf(tokenErr, t.value)
	}
	schema, name, err := p.parseQualifiedName(p.nextNonSpace())
	if err != nil {
		return nil, err
	}
	stmt.SchemaName = schema
	stmt.TableName = name
	for {
		t := p.peekNextNonSpace()
		if t.tokenType == tkEOF || t.value == ";" {
			return stmt, nil
		}
		p.nextNonSpace()
	}
}

func (p *parser) parsePragma(sb *StmtBase) (*PragmaStmt, error) {
	stmt := &PragmaStmt{StmtBase: sb}
	schema, name, err := p.parseQualifiedName(p.nextNonSpace())
	if err != nil {
		return nil, err
	}
	stmt.SchemaName = schema
	stmt.Name = name
	switch p.peekNextNonSpace().value {
	case "=":
		p.nextNonSpace()
		if _, err := p.parseExpr(0); err != nil {
			return nil, err
		}
	case "(":
		if err := p.skipBalancedParens(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}
