package compiler

// The expression parser is a small precedence climbing parser. It exists so
// statements carrying computed values, for example INSERT INTO t VALUES
// (1, 1+1), parse cleanly and can then be refused by the engine with a
// reason, instead of failing with a syntax error.

import (
	"fmt"
	"strconv"
	"strings"
)

// binaryPrecedence maps a binary operator to its precedence. Higher binds
// tighter.
func binaryPrecedence(op string) int {
	switch op {
	case kwOr:
		return 1
	case kwAnd:
		return 2
	case "=", "==", "!=", "<>", kwIs:
		return 3
	case "<", "<=", ">", ">=":
		return 4
	case "+", "-":
		return 5
	case "*", "/", "%":
		return 6
	case "||":
		return 7
	}
	return 0
}

// parseExpr parses an expression whose first token has not been consumed.
// The current token is the final token of the expression on exit.
func (p *parser) parseExpr(minPrecedence int) (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		nt := p.peekNextNonSpace()
		op := nt.value
		if nt.tokenType != tkOperator && op != kwAnd && op != kwOr && op != kwIs {
			return left, nil
		}
		prec := binaryPrecedence(op)
		if prec == 0 || prec <= minPrecedence {
			return left, nil
		}
		p.nextNonSpace()
		if op == kwIs && p.peekNextNonSpace().value == kwNot {
			p.nextNonSpace()
			op = kwIs + " " + kwNot
		}
		right, err := p.parseExpr(prec)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: op, Right: right}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	nt := p.peekNextNonSpace()
	switch nt.value {
	case "-", "+", "~", kwNot:
		p.nextNonSpace()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		// A signed numeric literal folds into the literal itself so VALUES
		// (-1) stays a literal row.
		if nt.value == "-" || nt.value == "+" {
			if l, ok := operand.(Literal); ok && (l.Kind == Integer || l.Kind == Real) {
				if nt.value == "-" {
					l.Value = "-" + l.Value
				}
				return l, nil
			}
		}
		return &UnaryExpr{Operator: nt.value, Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	t := p.nextNonSpace()
	switch t.tokenType {
	case tkNumeric:
		return numericLiteral(t.value), nil
	case tkLiteral:
		return Literal{Kind: Text, Value: decodeText(t.value)}, nil
	case tkBlob:
		return Literal{Kind: Blob, Value: strings.ToUpper(t.value)}, nil
	case tkVariable:
		return p.variable(t.value), nil
	case tkKeyword:
		switch t.value {
		case kwNull:
			return Literal{Kind: Null}, nil
		case "TRUE", "FALSE", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP":
			return Literal{Kind: Keyword, Value: t.value}, nil
		}
		return nil, fmt.Errorf(literalErr, t.value)
	case tkIdentifier:
		if p.peekNextNonSpace().value == "(" {
			return p.parseFunctionCall(t.value)
		}
		return p.parseColumnRef(t.value)
	case tkSeparator:
		if t.value == "(" {
			return p.parseParenOrSubquery()
		}
	}
	return nil, fmt.Errorf(tokenErr, t.value)
}

func numericLiteral(v string) Literal {
	if strings.ContainsAny(v, ".eE") {
		return Literal{Kind: Real, Value: v}
	}
	return Literal{Kind: Integer, Value: v}
}

func (p *parser) variable(v string) *Variable {
	if len(v) > 1 {
		n, err := strconv.Atoi(v[1:])
		if err == nil {
			if n > p.varPos {
				p.varPos = n
			}
			return &Variable{Position: n}
		}
	}
	p.varPos++
	return &Variable{Position: p.varPos}
}

// parseColumnRef parses name, table.name, schema.table.name, or table.*. The
// leading identifier has already been consumed.
func (p *parser) parseColumnRef(first string) (Expr, error) {
	parts := []string{first}
	for len(parts) < 3 && p.peekNextNonSpace().value == "." {
		p.nextNonSpace()
		n := p.nextNonSpace()
		if n.value == "*" {
			parts = append(parts, "*")
			break
		}
		if n.tokenType != tkIdentifier {
			return nil, fmt.Errorf(identErr, n.value)
		}
		parts = append(parts, n.value)
	}
	switch len(parts) {
	case 1:
		return &ColumnRef{Column: parts[0]}, nil
	case 2:
		return &ColumnRef{Table: parts[0], Column: parts[1]}, nil
	}
	return &ColumnRef{Schema: parts[0], Table: parts[1], Column: parts[2]}, nil
}

func (p *parser) parseFunctionCall(name string) (Expr, error) {
	p.nextNonSpace() // (
	fe := &FunctionExpr{Name: name}
	nt := p.peekNextNonSpace()
	switch nt.value {
	case ")":
		p.nextNonSpace()
		return fe, nil
	case "*":
		p.nextNonSpace()
		fe.Star = true
		if rp := p.nextNonSpace(); rp.value != ")" {
			return nil, fmt.Errorf(tokenErr, rp.value)
		}
		return fe, nil
	}
	for {
		arg, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		fe.Args = append(fe.Args, arg)
		sep := p.nextNonSpace()
		if sep.value == ")" {
			return fe, nil
		}
		if sep.value != "," {
			return nil, fmt.Errorf(tokenErr, sep.value)
		}
	}
}

// parseParenOrSubquery parses the remainder of a parenthesized expression or
// scalar subquery. The opening paren has already been consumed.
func (p *parser) parseParenOrSubquery() (Expr, error) {
	nt := p.peekNextNonSpace()
	if nt.value == kwSelect || nt.value == kwValues || nt.value == kwWith {
		t := p.nextNonSpace()
		var w *With
		if t.value == kwWith {
			var err error
			if w, err = p.parseWith(); err != nil {
				return nil, err
			}
			p.nextNonSpace()
		}
		s, err := p.parseSelect(&StmtBase{}, w)
		if err != nil {
			return nil, err
		}
		if rp := p.nextNonSpace(); rp.value != ")" {
			return nil, fmt.Errorf(tokenErr, rp.value)
		}
		return &SubqueryExpr{Select: s}, nil
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if rp := p.nextNonSpace(); rp.value != ")" {
		return nil, fmt.Errorf(tokenErr, rp.value)
	}
	return &ParenExpr{Expression: e}, nil
}

// decodeText strips the surrounding quotes of a string token and unescapes
// doubled quotes.
func decodeText(v string) string {
	if len(v) >= 2 && v[0] == '\'' && v[len(v)-1] == '\'' {
		v = v[1 : len(v)-1]
	}
	return strings.ReplaceAll(v, "''", "'")
}

func trimQuotes(v string) string {
	if len(v) >= 2 && v[0] == '\'' && v[len(v)-1] == '\'' {
		return decodeText(v)
	}
	return v
}
