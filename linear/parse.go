package linear

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Token kinds produced by the expression lexer.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokPlus
	tokMinus
	tokNumber
	tokIdent
)

type token struct {
	kind   tokenKind
	text   string
	value  float64 // set for tokNumber
	offset int     // byte offset within the input
}

// lexer splits expression text into signs, decimal numbers and identifiers.
// Whitespace between tokens is insignificant.
type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += size
	}
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, offset: l.pos}, nil
	}

	start := l.pos
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	switch {
	case r == '+':
		l.pos += size
		return token{kind: tokPlus, text: "+", offset: start}, nil
	case r == '-':
		l.pos += size
		return token{kind: tokMinus, text: "-", offset: start}, nil
	case unicode.IsDigit(r) || r == '.':
		return l.scanNumber(start)
	case unicode.IsLetter(r):
		return l.scanIdent(start)
	default:
		return token{}, newParseError(start, ErrParse, "unexpected character "+strconv.QuoteRune(r))
	}
}

func (l *lexer) scanNumber(start int) (token, error) {
	dot := false
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if r == '.' && !dot {
			dot = true
		} else if !unicode.IsDigit(r) {
			break
		}
		l.pos += size
	}
	text := l.input[start:l.pos]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, newParseError(start, ErrParse, "malformed number "+strconv.Quote(text))
	}
	return token{kind: tokNumber, text: text, value: value, offset: start}, nil
}

func (l *lexer) scanIdent(start int) (token, error) {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.pos += size
	}
	return token{kind: tokIdent, text: l.input[start:l.pos], offset: start}, nil
}

// ParseExpression parses the grammar
//
//	expr := term*
//	term := [+|-] [number] [identifier]
//
// into an Expression. A bare number contributes to the constant; a bare
// identifier defaults its coefficient to 1 (-1 after a minus). Repeated
// mentions of a variable accumulate. Identifiers carrying the reserved
// slack marker are rejected with an error matching ErrReservedVariable;
// any other malformed input matches ErrParse. Both arrive as *ParseError.
func ParseExpression(s string) (Expression, error) {
	e := New(0)
	lx := &lexer{input: s}

	tok, err := lx.next()
	if err != nil {
		return Expression{}, err
	}
	for tok.kind != tokEOF {
		sign := 1.0
		if tok.kind == tokPlus || tok.kind == tokMinus {
			if tok.kind == tokMinus {
				sign = -1
			}
			if tok, err = lx.next(); err != nil {
				return Expression{}, err
			}
		}

		coeff := 1.0
		haveNumber := false
		if tok.kind == tokNumber {
			coeff = tok.value
			haveNumber = true
			if tok, err = lx.next(); err != nil {
				return Expression{}, err
			}
		}

		switch {
		case tok.kind == tokIdent:
			name := tok.text
			if IsSlack(name) {
				return Expression{}, newParseError(tok.offset, ErrReservedVariable, "identifier "+strconv.Quote(name)+" is reserved")
			}
			e.SetCoefficient(name, e.Coefficient(name)+sign*coeff)
			if tok, err = lx.next(); err != nil {
				return Expression{}, err
			}
		case haveNumber:
			e.constant += sign * coeff
		default:
			return Expression{}, newParseError(tok.offset, ErrParse, "expected number or identifier")
		}
	}
	return e, nil
}
