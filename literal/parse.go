package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var ErrSyntax = errors.New("invalid literal")

type parser struct {
	src string
	pos int
}

// Parse reads a single literal value: nested lists, tuples and set containers of numbers and
// strings. Infinity may be written as inf, -inf, +inf or float('inf'). Blank input yields None.
func Parse(src string) (Value, error) {
	p := &parser{src: src}
	p.skipSpace()
	if p.eof() {
		return None(), nil
	}

	v, err := p.value()
	if err != nil {
		return None(), err
	}

	p.skipSpace()
	if !p.eof() {
		return None(), p.errorf("unexpected %q after value", p.src[p.pos:])
	}
	return v, nil
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrSyntax, "offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(rune(p.peek())) {
		p.pos++
	}
}

func (p *parser) value() (Value, error) {
	p.skipSpace()
	if p.eof() {
		return None(), p.errorf("unexpected end of input")
	}

	switch c := p.peek(); {
	case c == '[':
		items, _, err := p.items('[', ']')
		return List(items...), err
	case c == '(':
		items, trailing, err := p.items('(', ')')
		if err != nil {
			return None(), err
		}
		// (x) is a parenthesized value, (x,) a one-element tuple
		if len(items) == 1 && !trailing {
			return items[0], nil
		}
		return Tuple(items...), nil
	case c == '{':
		items, _, err := p.items('{', '}')
		return Set(items...), err
	case c == '\'' || c == '"':
		s, err := p.quoted()
		return String(s), err
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return p.number()
	case isIdentStart(c):
		return p.word()
	}
	return None(), p.errorf("unexpected character %q", p.peek())
}

// items reads a comma separated sequence enclosed by open and close.
// trailing reports whether the last item was followed by a comma.
func (p *parser) items(open, close byte) ([]Value, bool, error) {
	p.pos++ // open

	items := make([]Value, 0)
	trailing := false
	for {
		p.skipSpace()
		if p.eof() {
			return nil, false, p.errorf("missing %q", close)
		}
		if p.peek() == close {
			p.pos++
			return items, trailing, nil
		}

		v, err := p.value()
		if err != nil {
			return nil, false, err
		}
		items = append(items, v)

		p.skipSpace()
		if p.eof() {
			return nil, false, p.errorf("missing %q", close)
		}

		switch p.peek() {
		case ',':
			p.pos++
			trailing = true
		case close:
			trailing = false
		default:
			return nil, false, p.errorf("expected ',' or %q, found %q", close, p.peek())
		}
	}
}

func (p *parser) quoted() (string, error) {
	quote := p.peek()
	start := p.pos
	p.pos++

	escaped := false
	for !p.eof() {
		c := p.peek()
		p.pos++
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == quote:
			raw := p.src[start+1 : p.pos-1]
			if quote == '\'' {
				raw = strings.ReplaceAll(raw, `\'`, `'`)
				raw = strings.ReplaceAll(raw, `"`, `\"`)
			}
			s, err := strconv.Unquote(`"` + raw + `"`)
			if err != nil {
				return "", p.errorf("bad string %s", p.src[start:p.pos])
			}
			return s, nil
		}
	}
	return "", p.errorf("unterminated string")
}

func (p *parser) number() (Value, error) {
	start := p.pos
	sign := 1.0
	if c := p.peek(); c == '-' || c == '+' {
		if c == '-' {
			sign = -1
		}
		p.pos++
		p.skipSpace()
		if !p.eof() && isIdentStart(p.peek()) {
			w, err := p.word()
			if err != nil {
				return None(), err
			}
			if w.Kind != KindNumber || !math.IsInf(w.Num, 0) {
				return None(), p.errorf("bad number %s", p.src[start:p.pos])
			}
			return Number(math.Inf(int(sign))), nil
		}
	}

	digits := p.pos
	for !p.eof() && isNumberChar(p.src, p.pos) {
		p.pos++
	}
	text := strings.ReplaceAll(p.src[digits:p.pos], "_", "")
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || text == "" {
		return None(), p.errorf("bad number %s", p.src[start:p.pos])
	}
	return Number(sign * f), nil
}

// word reads the identifiers a data file may contain: inf, infinity, or a float('...') call.
func (p *parser) word() (Value, error) {
	start := p.pos
	for !p.eof() && (isIdentStart(p.peek()) || isDigit(p.peek())) {
		p.pos++
	}
	ident := strings.ToLower(p.src[start:p.pos])

	switch ident {
	case "inf", "infinity":
		return Number(math.Inf(1)), nil
	case "float":
		return p.floatCall()
	}
	return None(), p.errorf("unknown name %q", p.src[start:p.pos])
}

func (p *parser) floatCall() (Value, error) {
	p.skipSpace()
	if p.eof() || p.peek() != '(' {
		return None(), p.errorf("expected '(' after float")
	}
	p.pos++

	arg, err := p.value()
	if err != nil {
		return None(), err
	}
	p.skipSpace()
	if p.eof() || p.peek() != ')' {
		return None(), p.errorf("expected ')' closing float")
	}
	p.pos++

	switch arg.Kind {
	case KindNumber:
		return arg, nil
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(arg.Str), 64)
		if err != nil {
			return None(), p.errorf("bad float argument %q", arg.Str)
		}
		return Number(f), nil
	}
	return None(), p.errorf("bad float argument %s", arg)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNumberChar(src string, i int) bool {
	c := src[i]
	switch {
	case isDigit(c), c == '.', c == '_', c == 'e', c == 'E':
		return true
	case c == '-' || c == '+':
		// only as an exponent sign
		return i > 0 && (src[i-1] == 'e' || src[i-1] == 'E')
	}
	return false
}
