package compiler

// parser takes tokens from the lexer and produces an AST (Abstract Syntax
// Tree). Parse produces at most one statement per call. Empty input produces
// no statement and no error.

import (
	"fmt"
)

const (
	tokenErr   = "unexpected token %s"
	identErr   = "expected identifier but got %s"
	literalErr = "expected literal but got %s"
)

type parser struct {
	tokens []token
	end    int
	// varPos tracks positions handed to bare ? parameters.
	varPos int
}

func NewParser(tokens []token) *parser {
	return &parser{tokens: tokens, end: -1}
}

// Parse returns the first statement in the token stream. A stream holding
// only whitespace, comments, or bare semicolons yields a nil statement and a
// nil error. Anything after the first complete statement is ignored.
func (p *parser) Parse() (Stmt, error) {
	t := p.nextNonSpace()
	for t.value == ";" {
		t = p.nextNonSpace()
	}
	if t.tokenType == tkEOF {
		return nil, nil
	}
	sb := &StmtBase{}
	if t.value == kwExplain {
		if p.peekNextNonSpace().value == kwQuery {
			p.nextNonSpace()
			if tp := p.nextNonSpace(); tp.value != kwPlan {
				return nil, fmt.Errorf(tokenErr, tp.value)
			}
			sb.ExplainQueryPlan = true
		} else {
			sb.Explain = true
		}
		t = p.nextNonSpace()
	}
	return p.parseStmt(sb, t)
}

func (p *parser) parseStmt(sb *StmtBase, t token) (Stmt, error) {
	switch t.value {
	case kwSelect, kwValues:
		return p.parseSelect(sb, nil)
	case kwWith:
		return p.parseWithStmt(sb)
	case kwCreate:
		return p.parseCreate(sb)
	case kwInsert, kwReplace:
		return p.parseInsert(sb, nil, t.value)
	case kwUpdate:
		return p.parseUpdate(sb)
	case kwDelete:
		return p.parseDelete(sb)
	case kwDrop:
		return p.parseDrop(sb)
	case kwAlter:
		return p.parseAlter(sb)
	case kwBegin:
		p.skipTransactionWord()
		return &BeginStmt{StmtBase: sb}, nil
	case kwCommit, kwEnd:
		p.skipTransactionWord()
		return &CommitStmt{StmtBase: sb}, nil
	case kwRollback:
		p.skipTransactionWord()
		return &RollbackStmt{StmtBase: sb}, nil
	case kwPragma:
		return p.parsePragma(sb)
	}
	return nil, fmt.Errorf(tokenErr, t.value)
}

// parseWithStmt parses the WITH prefix then hands off to the statement the
// prefix belongs to. The current token is WITH.
func (p *parser) parseWithStmt(sb *StmtBase) (Stmt, error) {
	w, err := p.parseWith()
	if err != nil {
		return nil, err
	}
	t := p.nextNonSpace()
	switch t.value {
	case kwSelect, kwValues:
		return p.parseSelect(sb, w)
	case kwInsert, kwReplace:
		return p.parseInsert(sb, w, t.value)
	case kwUpdate:
		return p.parseUpdate(sb)
	case kwDelete:
		return p.parseDelete(sb)
	}
	return nil, fmt.Errorf(tokenErr, t.value)
}

// parseWith parses the CTE list. The current token is WITH on entry and the
// last token of the final CTE body on exit.
func (p *parser) parseWith() (*With, error) {
	w := &With{}
	if p.peekNextNonSpace().value == kwRecursive {
		p.nextNonSpace()
		w.Recursive = true
	}
	for {
		name := p.nextNonSpace()
		if name.tokenType != tkIdentifier {
			return nil, fmt.Errorf(identErr, name.value)
		}
		cte := CommonTableExpr{Name: name.value}
		if p.peekNextNonSpace().value == "(" {
			p.nextNonSpace()
			cols, err := p.parseNameList()
			if err != nil {
				return nil, err
			}
			cte.Columns = cols
		}
		if as := p.nextNonSpace(); as.value != kwAs {
			return nil, fmt.Errorf(tokenErr, as.value)
		}
		if lp := p.nextNonSpace(); lp.value != "(" {
			return nil, fmt.Errorf(tokenErr, lp.value)
		}
		st := p.nextNonSpace()
		if st.value != kwSelect && st.value != kwValues {
			return nil, fmt.Errorf(tokenErr, st.value)
		}
		s, err := p.parseSelect(&StmtBase{}, nil)
		if err != nil {
			return nil, err
		}
		cte.Select = s
		if rp := p.nextNonSpace(); rp.value != ")" {
			return nil, fmt.Errorf(tokenErr, rp.value)
		}
		w.CTEs = append(w.CTEs, cte)
		if p.peekNextNonSpace().value != "," {
			return w, nil
		}
		p.nextNonSpace()
	}
}

// parseQualifiedName parses ident or schema.ident starting at the current
// token.
func (p *parser) parseQualifiedName(t token) (schema, name string, err error) {
	if t.tokenType != tkIdentifier {
		return "", "", fmt.Errorf(identErr, t.value)
	}
	if p.peekNextNonSpace().value == "." {
		p.nextNonSpace()
		n := p.nextNonSpace()
		if n.tokenType != tkIdentifier {
			return "", "", fmt.Errorf(identErr, n.value)
		}
		return t.value, n.value, nil
	}
	return "", t.value, nil
}

// parseNameList parses a comma separated identifier list. The current token
// is the opening paren on entry and the closing paren on exit.
func (p *parser) parseNameList() ([]string, error) {
	names := []string{}
	for {
		n := p.nextNonSpace()
		if n.tokenType != tkIdentifier {
			return nil, fmt.Errorf(identErr, n.value)
		}
		names = append(names, n.value)
		sep := p.nextNonSpace()
		if sep.value == ")" {
			return names, nil
		}
		if sep.value != "," {
			return nil, fmt.Errorf(tokenErr, sep.value)
		}
	}
}

func (p *parser) skipTransactionWord() {
	if p.peekNextNonSpace().value == kwTransaction {
		p.nextNonSpace()
	}
}

func (p *parser) nextNonSpace() token {
	p.end = p.end + 1
	for p.end <= len(p.tokens)-1 && p.tokens[p.end].tokenType == tkWhitespace {
		p.end = p.end + 1
	}
	if p.end > len(p.tokens)-1 {
		return token{tkEOF, ""}
	}
	return p.tokens[p.end]
}

func (p *parser) peekNextNonSpace() token {
	tmpEnd := p.end + 1
	for tmpEnd <= len(p.tokens)-1 && p.tokens[tmpEnd].tokenType == tkWhitespace {
		tmpEnd = tmpEnd + 1
	}
	if tmpEnd > len(p.tokens)-1 {
		return token{tkEOF, ""}
	}
	return p.tokens[tmpEnd]
}
