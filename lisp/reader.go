package lisp

import (
	"math/big"
	"strings"
)

// ReaderOption configures ReadOneFromString.
type ReaderOption func(*readerOpts)

type readerOpts struct {
	readComments bool
	readQuote    bool
}

func defaultReaderOpts() *readerOpts {
	return &readerOpts{readComments: false, readQuote: true}
}

// WithComments makes the reader return comments as Comment expressions
// instead of skipping them as whitespace.
func WithComments() ReaderOption {
	return func(o *readerOpts) { o.readComments = true }
}

// WithoutQuote disables the leading-quote lexeme: a bare ' becomes an
// UnexpectedChar error instead of sugar for (quote ...).
func WithoutQuote() ReaderOption {
	return func(o *readerOpts) { o.readQuote = false }
}

// ReadOneFromString parses exactly one top-level expression from text.
// Trailing input is ignored.
func ReadOneFromString(text string, opts ...ReaderOption) (Expr, error) {
	o := defaultReaderOpts()
	for _, opt := range opts {
		opt(o)
	}
	s := newInputStream(text)
	return parseExpr(s, o)
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t'
}

func isCommentStart(r rune) bool { return r == ';' }

func isCommentPart(r rune) bool { return r != eofRune && r != '\n' }

// isSymbolStart and isSymbolPart share one class: any non-end,
// non-whitespace character other than '"', '(', ')', ';', '\''. This
// permits '-' and digits as symbol starts, which the integer-vs-symbol
// decision resolves after the fact.
func isSymbolStart(r rune) bool {
	if r == eofRune || isWhitespace(r) {
		return false
	}
	switch r {
	case '"', '(', ')', ';', '\'':
		return false
	}
	return true
}

func isSymbolPart(r rune) bool { return isSymbolStart(r) }

func parseExpr(s *inputStream, o *readerOpts) (Expr, error) {
	skipJunk(s, o)

	if o.readComments && s.peek() == ';' {
		var b strings.Builder
		for s.peek() != eofRune && s.peek() != '\n' {
			b.WriteRune(s.consume())
		}
		if s.peek() != eofRune {
			s.advance()
		}
		return NewComment(b.String()), nil
	}

	switch {
	case s.peek() == '(':
		return parseList(s, o)
	case o.readQuote && s.peek() == '\'':
		s.advance()
		inner, err := parseExpr(s, o)
		if err != nil {
			return nil, err
		}
		return Cons(Intern("quote"), Cons(inner, nil)), nil
	case isSymbolStart(s.peek()):
		var b strings.Builder
		for isSymbolPart(s.peek()) {
			b.WriteRune(s.consume())
		}
		lexeme := b.String()
		if n, ok := parseInteger(lexeme); ok {
			return NewInteger(n), nil
		}
		return Intern(lexeme), nil
	default:
		return nil, unexpectedCharError(s.peek())
	}
}

// parseInteger matches ^-?[0-9]+$ and parses it as a decimal *big.Int.
func parseInteger(lexeme string) (*big.Int, bool) {
	if lexeme == "" {
		return nil, false
	}
	digits := lexeme
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return nil, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, false
		}
	}
	n := new(big.Int)
	n.SetString(lexeme, 10)
	return n, true
}

func parseList(s *inputStream, o *readerOpts) (Expr, error) {
	s.advance() // consume '('
	var head, tail Expr
	for {
		skipJunk(s, o)
		if s.peek() == eofRune {
			return nil, unexpectedEOFError()
		}
		if s.peek() == ')' {
			break
		}
		exp, err := parseExpr(s, o)
		if err != nil {
			return nil, err
		}
		if IsSymbol(exp) && SymbolName(exp) == "." {
			cdrExp, err := parseExpr(s, o)
			if err != nil {
				return nil, err
			}
			if IsNil(tail) {
				return nil, notAPairError(tail)
			}
			tail.tail = cdrExp
			skipJunk(s, o)
			break
		}
		next := Cons(exp, nil)
		if IsNil(tail) {
			head = next
			tail = next
		} else {
			tail.tail = next
			tail = next
		}
	}
	if s.peek() != ')' {
		return nil, missingCloseParenError()
	}
	s.advance()
	return head, nil
}

func skipJunk(s *inputStream, o *readerOpts) {
	for skipWs(s) || (!o.readComments && skipComment(s)) {
	}
}

func skipWs(s *inputStream) bool {
	if !isWhitespace(s.peek()) {
		return false
	}
	for isWhitespace(s.peek()) {
		s.advance()
	}
	return true
}

func skipComment(s *inputStream) bool {
	if !isCommentStart(s.peek()) {
		return false
	}
	s.advance()
	for isCommentPart(s.peek()) {
		s.advance()
	}
	return true
}
