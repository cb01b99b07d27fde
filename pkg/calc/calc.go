// Package calc evaluates canonical infix arithmetic expressions.
//
// Grammar:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | "(" expr ")"
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmptyExpression is returned when the input holds no tokens.
	ErrEmptyExpression = errors.New("empty expression")
	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// SyntaxError reports malformed input at a byte offset.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid syntax at position %d: %s", e.Pos, e.Msg)
}

// Evaluate parses expr and returns its value.
func Evaluate(expr string) (float64, error) {
	p := &parser{src: expr}
	p.skipSpace()
	if p.eof() {
		return 0, ErrEmptyExpression
	}

	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if !p.eof() {
		return 0, p.errorf("unexpected %q", p.src[p.pos])
	}
	return v, nil
}

// Format renders v without a trailing ".0" for integral values.
// Negative zero prints as "0".
func Format(v float64) string {
	if v == 0 {
		v = 0
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) skipSpace() {
	for !p.eof() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
			continue
		}
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		left /= right
	}
}

func (p *parser) unary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.unary()
		return -v, err
	case '+':
		p.pos++
		return p.unary()
	}
	return p.primary()
}

func (p *parser) primary() (float64, error) {
	c := p.peek()
	switch {
	case c == 0:
		return 0, p.errorf("unexpected end of expression")
	case c == '(':
		p.pos++
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	case c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	}
	return 0, p.errorf("unexpected %q", c)
}

func (p *parser) number() (float64, error) {
	start := p.pos
	for !p.eof() && (p.src[p.pos] == '.' || (p.src[p.pos] >= '0' && p.src[p.pos] <= '9')) {
		p.pos++
	}
	lit := p.src[start:p.pos]
	if strings.Count(lit, ".") > 1 || lit == "." {
		return 0, &SyntaxError{Pos: start, Msg: fmt.Sprintf("invalid number %q", lit)}
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, &SyntaxError{Pos: start, Msg: fmt.Sprintf("invalid number %q", lit)}
	}
	return v, nil
}
