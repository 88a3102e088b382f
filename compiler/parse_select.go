package compiler

import (
	"fmt"
	"strings"
)

// parseSelect parses a select statement. The current token is SELECT or
// VALUES on entry and the last token of the statement on exit.
func (p *parser) parseSelect(sb *StmtBase, w *With) (*SelectStmt, error) {
	stmt := &SelectStmt{StmtBase: sb, With: w}
	if err := p.parseSelectCore(stmt); err != nil {
		return nil, err
	}
	for {
		op := p.peekNextNonSpace().value
		if op != kwUnion && op != kwIntersect && op != kwExcept {
			break
		}
		p.nextNonSpace()
		if op == kwUnion && p.peekNextNonSpace().value == kwAll {
			p.nextNonSpace()
			op = kwUnion + " " + kwAll
		}
		st := p.nextNonSpace()
		if st.value != kwSelect && st.value != kwValues {
			return nil, fmt.Errorf(tokenErr, st.value)
		}
		arm := &SelectStmt{StmtBase: &StmtBase{}}
		if err := p.parseSelectCore(arm); err != nil {
			return nil, err
		}
		stmt.Compound = append(stmt.Compound, CompoundSelect{
			Operator: op,
			Select:   arm,
		})
	}
	if p.peekNextNonSpace().value == kwOrder {
		p.nextNonSpace()
		if by := p.nextNonSpace(); by.value != kwBy {
			return nil, fmt.Errorf(tokenErr, by.value)
		}
		for {
			e, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			ot := OrderingTerm{Expression: e}
			switch p.peekNextNonSpace().value {
			case kwAsc:
				p.nextNonSpace()
			case kwDesc:
				p.nextNonSpace()
				ot.Descending = true
			}
			stmt.OrderBy = append(stmt.OrderBy, ot)
			if p.peekNextNonSpace().value != "," {
				break
			}
			p.nextNonSpace()
		}
	}
	if p.peekNextNonSpace().value == kwLimit {
		p.nextNonSpace()
		count, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		stmt.Limit = &Limit{Count: count}
		nt := p.peekNextNonSpace()
		if nt.value == kwOffset || nt.value == "," {
			p.nextNonSpace()
			offset, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			stmt.Limit.Offset = offset
		}
	}
	return stmt, nil
}

// parseSelectCore parses one select body: either a VALUES list or the
// SELECT ... FROM ... form up to but excluding compound operators, ORDER BY,
// and LIMIT. The current token is SELECT or VALUES on entry.
func (p *parser) parseSelectCore(stmt *SelectStmt) error {
	if p.tokens[p.end].value == kwValues {
		rows, err := p.parseValuesRows()
		if err != nil {
			return err
		}
		stmt.Values = rows
		return nil
	}
	switch p.peekNextNonSpace().value {
	case kwDistinct:
		p.nextNonSpace()
		stmt.Distinct = true
	case kwAll:
		p.nextNonSpace()
	}
	for {
		rc, err := p.parseResultColumn()
		if err != nil {
			return err
		}
		stmt.ResultColumns = append(stmt.ResultColumns, *rc)
		if p.peekNextNonSpace().value != "," {
			break
		}
		p.nextNonSpace()
	}
	if p.peekNextNonSpace().value == kwFrom {
		p.nextNonSpace()
		f, err := p.parseFrom()
		if err != nil {
			return err
		}
		stmt.From = f
	}
	if p.peekNextNonSpace().value == kwWhere {
		p.nextNonSpace()
		e, err := p.parseExpr(0)
		if err != nil {
			return err
		}
		stmt.Where = e
	}
	if p.peekNextNonSpace().value == kwGroup {
		p.nextNonSpace()
		if by := p.nextNonSpace(); by.value != kwBy {
			return fmt.Errorf(tokenErr, by.value)
		}
		for {
			e, err := p.parseExpr(0)
			if err != nil {
				return err
			}
			stmt.GroupBy = append(stmt.GroupBy, e)
			if p.peekNextNonSpace().value != "," {
				break
			}
			p.nextNonSpace()
		}
		if p.peekNextNonSpace().value == kwHaving {
			p.nextNonSpace()
			e, err := p.parseExpr(0)
			if err != nil {
				return err
			}
			stmt.Having = e
		}
	}
	if p.peekNextNonSpace().value == kwWindow {
		if err := p.skipWindowClause(); err != nil {
			return err
		}
		stmt.Window = true
	}
	return nil
}

func (p *parser) parseResultColumn() (*ResultColumn, error) {
	if p.peekNextNonSpace().value == "*" {
		p.nextNonSpace()
		return &ResultColumn{All: true}, nil
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	// The expression parser yields table.* as a column ref on column *.
	if cr, ok := e.(*ColumnRef); ok && cr.Column == "*" {
		return &ResultColumn{AllTable: cr.Table}, nil
	}
	rc := &ResultColumn{Expression: e}
	nt := p.peekNextNonSpace()
	if nt.value == kwAs {
		p.nextNonSpace()
		a := p.nextNonSpace()
		if a.tokenType != tkIdentifier && a.tokenType != tkLiteral {
			return nil, fmt.Errorf(identErr, a.value)
		}
		rc.Alias = trimQuotes(a.value)
	} else if nt.tokenType == tkIdentifier {
		p.nextNonSpace()
		rc.Alias = nt.value
	}
	return rc, nil
}

// parseFrom parses the first from source plus any join operators chained to
// it.
func (p *parser) parseFrom() (*From, error) {
	f, err := p.parseFromSource()
	if err != nil {
		return nil, err
	}
	for {
		nt := p.peekNextNonSpace()
		var op string
		switch {
		case nt.value == ",":
			p.nextNonSpace()
			op = ","
		case nt.value == kwJoin:
			p.nextNonSpace()
			op = kwJoin
		case p.isJoinWord(nt.value):
			words := []string{}
			for p.isJoinWord(p.peekNextNonSpace().value) {
				words = append(words, p.nextNonSpace().value)
			}
			if jt := p.nextNonSpace(); jt.value != kwJoin {
				return nil, fmt.Errorf(tokenErr, jt.value)
			}
			op = strings.Join(append(words, kwJoin), " ")
		default:
			return f, nil
		}
		jf, err := p.parseFromSource()
		if err != nil {
			return nil, err
		}
		j := Join{Operator: op, Table: jf}
		switch p.peekNextNonSpace().value {
		case kwOn:
			p.nextNonSpace()
			e, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			j.On = e
		case kwUsing:
			p.nextNonSpace()
			if lp := p.nextNonSpace(); lp.value != "(" {
				return nil, fmt.Errorf(tokenErr, lp.value)
			}
			cols, err := p.parseNameList()
			if err != nil {
				return nil, err
			}
			j.Using = cols
		}
		f.Joins = append(f.Joins, j)
	}
}

func (*parser) isJoinWord(v string) bool {
	switch v {
	case kwNatural, kwLeft, kwRight, kwFull, kwOuter, kwInner, kwCross:
		return true
	}
	return false
}

// parseFromSource parses a single from source: a table name, a subquery, or
// a table valued function, with its alias and indexed-by hint.
func (p *parser) parseFromSource() (*From, error) {
	t := p.nextNonSpace()
	f := &From{}
	if t.value == "(" {
		st := p.nextNonSpace()
		var w *With
		if st.value == kwWith {
			var err error
			if w, err = p.parseWith(); err != nil {
				return nil, err
			}
			st = p.nextNonSpace()
		}
		if st.value != kwSelect && st.value != kwValues {
			return nil, fmt.Errorf(tokenErr, st.value)
		}
		s, err := p.parseSelect(&StmtBase{}, w)
		if err != nil {
			return nil, err
		}
		if rp := p.nextNonSpace(); rp.value != ")" {
			return nil, fmt.Errorf(tokenErr, rp.value)
		}
		f.Subquery = s
	} else {
		schema, name, err := p.parseQualifiedName(t)
		if err != nil {
			return nil, err
		}
		f.SchemaName = schema
		f.TableName = name
		if p.peekNextNonSpace().value == "(" {
			if err := p.skipBalancedParens(); err != nil {
				return nil, err
			}
			f.TableFunction = true
		}
	}
	nt := p.peekNextNonSpace()
	if nt.value == kwAs {
		p.nextNonSpace()
		a := p.nextNonSpace()
		if a.tokenType != tkIdentifier {
			return nil, fmt.Errorf(identErr, a.value)
		}
		f.Alias = a.value
	} else if nt.tokenType == tkIdentifier {
		p.nextNonSpace()
		f.Alias = nt.value
	}
	switch p.peekNextNonSpace().value {
	case kwIndexed:
		p.nextNonSpace()
		if by := p.nextNonSpace(); by.value != kwBy {
			return nil, fmt.Errorf(tokenErr, by.value)
		}
		ix := p.nextNonSpace()
		if ix.tokenType != tkIdentifier {
			return nil, fmt.Errorf(identErr, ix.value)
		}
		f.IndexedBy = ix.value
	case kwNot:
		p.nextNonSpace()
		if ix := p.nextNonSpace(); ix.value != kwIndexed {
			return nil, fmt.Errorf(tokenErr, ix.value)
		}
		f.NotIndexed = true
	}
	return f, nil
}

// parseValuesRows parses (expr, ...), (expr, ...), ... after a VALUES
// keyword. The current token is VALUES on entry and the final closing paren
// on exit.
func (p *parser) parseValuesRows() ([][]Expr, error) {
	rows := [][]Expr{}
	for {
		if lp := p.nextNonSpace(); lp.value != "(" {
			return nil, fmt.Errorf(tokenErr, lp.value)
		}
		row := []Expr{}
		for {
			e, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			row = append(row, e)
			sep := p.nextNonSpace()
			if sep.value == ")" {
				break
			}
			if sep.value != "," {
				return nil, fmt.Errorf(tokenErr, sep.value)
			}
		}
		rows = append(rows, row)
		if p.peekNextNonSpace().value != "," {
			return rows, nil
		}
		p.nextNonSpace()
	}
}

// skipWindowClause consumes WINDOW name AS (...) [, ...] without retaining
// the definitions. The engine only needs to know the clause was present.
func (p *parser) skipWindowClause() error {
	p.nextNonSpace() // WINDOW
	for {
		n := p.nextNonSpace()
		if n.tokenType != tkIdentifier {
			return fmt.Errorf(identErr, n.value)
		}
		if as := p.nextNonSpace(); as.value != kwAs {
			return fmt.Errorf(tokenErr, as.value)
		}
		if p.peekNextNonSpace().value != "(" {
			return fmt.Errorf(tokenErr, p.peekNextNonSpace().value)
		}
		if err := p.skipBalancedParens(); err != nil {
			return err
		}
		if p.peekNextNonSpace().value != "," {
			return nil
		}
		p.nextNonSpace()
	}
}

// skipBalancedParens consumes a parenthesized token run starting at the next
// ( token.
func (p *parser) skipBalancedParens() error {
	if lp := p.nextNonSpace(); lp.value != "(" {
		return fmt.Errorf(tokenErr, lp.value)
	}
	depth := 1
	for depth > 0 {
		t := p.nextNonSpace()
		switch t.value {
		case "(":
			depth++
		case ")":
			depth--
		case "":
			if t.tokenType == tkEOF {
				return fmt.Errorf(tokenErr, "EOF")
			}
		}
	}
	return nil
}
