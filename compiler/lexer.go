// lexer creates tokens from a sql string. The tokens are fed into the parser.
package compiler

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenType int

type token struct {
	tokenType tokenType
	value     string
}

const (
	// tkKeyword is a reserved word. For example SELECT, FROM, or WHERE.
	tkKeyword tokenType = iota + 1
	// tkIdentifier is a word that is not a keyword like a table or column
	// name. Quoted identifiers are unwrapped before the token is emitted.
	tkIdentifier
	// tkWhitespace is a space, tab, newline, or comment.
	tkWhitespace
	// tkEOF (End of file) is the end of input.
	tkEOF
	// tkSeparator is punctuation such as "(", ",", ";".
	tkSeparator
	// tkOperator is a symbol that operates on arguments such as "*" or "||".
	tkOperator
	// tkLiteral is a quoted text value like 'foo'. The value keeps its
	// surrounding quotes.
	tkLiteral
	// tkBlob is a blob literal like X'AB01'. The value is the bare hex digits.
	tkBlob
	// tkNumeric is a numeric value like 1, 1.2, or 3e4.
	tkNumeric
	// tkVariable is a statement parameter like ? or ?7.
	tkVariable
	// tkUnknown is a rune outside the sql surface, such as @. It surfaces
	// as a parse error instead of truncating the token stream.
	tkUnknown
)

var keywords = []string{
	"ABORT",
	"ADD",
	"ALL",
	"ALTER",
	"AND",
	"AS",
	"ASC",
	"AUTOINCREMENT",
	"BEGIN",
	"BLOB",
	"BY",
	"CHECK",
	"COLLATE",
	"COMMIT",
	"CONFLICT",
	"CONSTRAINT",
	"CREATE",
	"CROSS",
	"CURRENT_DATE",
	"CURRENT_TIME",
	"CURRENT_TIMESTAMP",
	"DEFAULT",
	"DELETE",
	"DESC",
	"DISTINCT",
	"DO",
	"DROP",
	"END",
	"EXCEPT",
	"EXISTS",
	"EXPLAIN",
	"FAIL",
	"FALSE",
	"FOREIGN",
	"FROM",
	"FULL",
	"GROUP",
	"HAVING",
	"IF",
	"IGNORE",
	"INDEX",
	"INDEXED",
	"INNER",
	"INSERT",
	"INTEGER",
	"INTERSECT",
	"INTO",
	"IS",
	"JOIN",
	"KEY",
	"LEFT",
	"LIMIT",
	"NATURAL",
	"NOT",
	"NOTHING",
	"NULL",
	"OFFSET",
	"ON",
	"OR",
	"ORDER",
	"OUTER",
	"PLAN",
	"PRAGMA",
	"PRIMARY",
	"QUERY",
	"REAL",
	"RECURSIVE",
	"REFERENCES",
	"RENAME",
	"REPLACE",
	"RETURNING",
	"RIGHT",
	"ROLLBACK",
	"SELECT",
	"SET",
	"TABLE",
	"TEXT",
	"TO",
	"TRANSACTION",
	"TRIGGER",
	"TRUE",
	"UNION",
	"UNIQUE",
	"UPDATE",
	"USING",
	"VALUES",
	"VIEW",
	"WHERE",
	"WINDOW",
	"WITH",
}

func (*lexer) isKeyword(w string) bool {
	uw := strings.ToUpper(w)
	return slices.Contains(keywords, uw)
}

type lexer struct {
	src   string
	start int
	end   int
}

func NewLexer(src string) *lexer {
	return &lexer{src: src}
}

func (l *lexer) Lex() []token {
	ret := []token{}
	for {
		t := l.getToken()
		if t.tokenType == tkEOF {
			return ret
		}
		ret = append(ret, t)
	}
}

func (l *lexer) getToken() token {
	l.start = l.end
	r := l.peek(l.start)
	switch {
	case l.isWhiteSpace(r) || l.isCommentStart(r):
		return l.scanWhiteSpace()
	case l.isBlobStart(r):
		return l.scanBlob()
	case l.isLetter(r) || l.isUnderscore(r):
		return l.scanWord()
	case l.isDigit(r) || l.isNumericStart(r):
		return l.scanDigit()
	case l.isQuote(r):
		return l.scanQuoted(r)
	case l.isVariable(r):
		return l.scanVariable()
	case l.isSeparator(r):
		return l.scanSeparator()
	case l.isOperator(r):
		return l.scanOperator()
	}
	if r == 0 {
		return token{tkEOF, ""}
	}
	l.next()
	return token{tokenType: tkUnknown, value: l.src[l.start:l.end]}
}

func (l *lexer) peek(pos int) rune {
	if len(l.src) <= pos {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[pos:])
	return r
}

func (l *lexer) next() rune {
	r := l.peek(l.end + 1)
	l.end = l.end + 1
	return r
}

func (l *lexer) scanWhiteSpace() token {
	for {
		r := l.peek(l.end)
		switch {
		case l.isWhiteSpace(r):
			l.next()
		case r == '-' && l.peek(l.end+1) == '-':
			for l.peek(l.end) != '\n' && l.peek(l.end) != 0 {
				l.next()
			}
		case r == '/' && l.peek(l.end+1) == '*':
			l.next()
			l.next()
			for l.peek(l.end) != 0 && !(l.peek(l.end) == '*' && l.peek(l.end+1) == '/') {
				l.next()
			}
			if l.peek(l.end) != 0 {
				l.next()
				l.next()
			}
		default:
			return token{tokenType: tkWhitespace, value: " "}
		}
	}
}

func (l *lexer) scanWord() token {
	l.next()
	for l.isWordPart(l.peek(l.end)) {
		l.next()
	}
	value := l.src[l.start:l.end]
	if l.isKeyword(value) {
		return token{tokenType: tkKeyword, value: strings.ToUpper(value)}
	}
	return token{tokenType: tkIdentifier, value: value}
}

func (l *lexer) scanDigit() token {
	l.next()
	for l.isNumericPart(l.peek(l.end)) {
		if (l.peek(l.end) == 'e' || l.peek(l.end) == 'E') &&
			(l.peek(l.end+1) == '+' || l.peek(l.end+1) == '-') {
			l.next()
		}
		l.next()
	}
	return token{tokenType: tkNumeric, value: l.src[l.start:l.end]}
}

// scanBlob scans a blob literal such as X'AB01' emitting only the hex digits.
func (l *lexer) scanBlob() token {
	l.next() // x
	l.next() // '
	for l.peek(l.end) != '\'' && l.peek(l.end) != 0 {
		l.next()
	}
	value := l.src[l.start+2 : l.end]
	l.next()
	return token{tokenType: tkBlob, value: value}
}

func (l *lexer) scanQuoted(q rune) token {
	if q == '\'' {
		return l.scanLiteral()
	}
	// "ident", `ident`, and [ident] quote identifiers.
	closing := q
	if q == '[' {
		closing = ']'
	}
	l.next()
	for l.peek(l.end) != closing && l.peek(l.end) != 0 {
		l.next()
	}
	value := l.src[l.start+1 : l.end]
	l.next()
	return token{tokenType: tkIdentifier, value: value}
}

func (l *lexer) scanLiteral() token {
	l.next()
	for {
		r := l.peek(l.end)
		if r == 0 {
			break
		}
		if r == '\'' {
			// A doubled quote is an escaped quote, not the end.
			if l.peek(l.end+1) == '\'' {
				l.next()
				l.next()
				continue
			}
			break
		}
		l.next()
	}
	if l.peek(l.end) == '\'' {
		l.next()
	}
	return token{tokenType: tkLiteral, value: l.src[l.start:l.end]}
}

func (l *lexer) scanVariable() token {
	l.next()
	for l.isDigit(l.peek(l.end)) {
		l.next()
	}
	return token{tokenType: tkVariable, value: l.src[l.start:l.end]}
}

func (l *lexer) scanSeparator() token {
	l.next()
	return token{tokenType: tkSeparator, value: l.src[l.start:l.end]}
}

func (l *lexer) scanOperator() token {
	r := l.peek(l.end)
	n := l.peek(l.end + 1)
	l.next()
	two := string(r) + string(n)
	switch two {
	case "||", "==", "!=", "<>", "<=", ">=":
		l.next()
	}
	return token{tokenType: tkOperator, value: l.src[l.start:l.end]}
}

func (*lexer) isWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func (l *lexer) isCommentStart(r rune) bool {
	return (r == '-' && l.peek(l.end+1) == '-') ||
		(r == '/' && l.peek(l.end+1) == '*')
}

func (l *lexer) isBlobStart(r rune) bool {
	return (r == 'x' || r == 'X') && l.peek(l.end+1) == '\''
}

func (*lexer) isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func (*lexer) isUnderscore(r rune) bool {
	return r == '_'
}

func (l *lexer) isWordPart(r rune) bool {
	return l.isLetter(r) || l.isDigit(r) || l.isUnderscore(r)
}

func (*lexer) isDigit(r rune) bool {
	return unicode.IsDigit(r)
}

func (l *lexer) isNumericStart(r rune) bool {
	return r == '.' && l.isDigit(l.peek(l.end+1))
}

func (l *lexer) isNumericPart(r rune) bool {
	return l.isDigit(r) || r == '.' || r == 'e' || r == 'E'
}

func (*lexer) isQuote(r rune) bool {
	return r == '\'' || r == '"' || r == '`' || r == '['
}

func (*lexer) isVariable(r rune) bool {
	return r == '?'
}

func (*lexer) isSeparator(r rune) bool {
	return r == ',' || r == '(' || r == ')' || r == ';'
}

func (*lexer) isOperator(r rune) bool {
	return strings.ContainsRune("*/%+-=<>!|.~", r)
}
