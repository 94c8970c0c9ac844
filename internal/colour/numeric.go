package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// DefaultPrecision is the number of decimals kept by conversions and formatting.
const DefaultPrecision = 5

// MaxPrecision is the largest precision a float64 can carry meaningfully.
const MaxPrecision = 15

// Clamp restricts v to [minVal, maxVal].
func Clamp(v, minVal, maxVal float64) float64 {
	return lo.Clamp(v, minVal, maxVal)
}

// Round rounds v half away from zero to the given number of decimals.
// Digits above MaxPrecision return v unchanged.
func Round(v float64, digits int) float64 {
	if digits <= 0 {
		return math.Round(v)
	}
	if digits > MaxPrecision {
		return v
	}
	f := math.Pow(10, float64(digits))
	r := math.Round(v*f) / f
	if r == 0 {
		return 0 // no negative zero
	}
	return r
}

// NormalizeHue wraps h into [0,360).
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EvalAmount applies an amount expression to current.
//
// A leading "=" sets the value, a leading "*" or "/" scales it, anything else
// (including a signed expression like "-5" or "2*5") is added to it.
func EvalAmount(expr string, current float64) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return current, nil
	}

	op := byte('+')
	switch expr[0] {
	case '=', '*', '/':
		op = expr[0]
		expr = expr[1:]
	}

	v, err := evalExpr(expr)
	if err != nil {
		return 0, err
	}

	switch op {
	case '=':
		return v, nil
	case '*':
		return current * v, nil
	case '/':
		if v == 0 {
			return 0, newError(ErrInvalidInput, "amount divides by zero")
		}
		return current / v, nil
	}
	return current + v, nil
}

// evalExpr evaluates + - * / and parentheses over decimal numbers.
func evalExpr(s string) (float64, error) {
	p := &exprParser{src: s}
	v, err := p.sum()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return 0, newError(ErrInvalidInput, fmt.Sprintf("unexpected %q in amount %q", p.src[p.pos:], s))
	}
	return v, nil
}

type exprParser struct {
	src string
	pos int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *exprParser) sum() (float64, error) {
	v, err := p.product()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			r, err := p.product()
			if err != nil {
				return 0, err
			}
			v += r
		case '-':
			p.pos++
			r, err := p.product()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

func (p *exprParser) product() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			r, err := p.unary()
			if err != nil {
				return 0, err
			}
			v *= r
		case '/':
			p.pos++
			r, err := p.unary()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, newError(ErrInvalidInput, "amount divides by zero")
			}
			v /= r
		default:
			return v, nil
		}
	}
}

func (p *exprParser) unary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.unary()
		return -v, err
	case '+':
		p.pos++
		return p.unary()
	case '(':
		p.pos++
		v, err := p.sum()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, newError(ErrInvalidInput, fmt.Sprintf("missing ) in amount %q", p.src))
		}
		p.pos++
		return v, nil
	}

	start := p.pos
	for p.pos < len(p.src) && (p.src[p.pos] == '.' || (p.src[p.pos] >= '0' && p.src[p.pos] <= '9')) {
		p.pos++
	}
	if start == p.pos {
		return 0, newError(ErrInvalidInput, fmt.Sprintf("expected a number at %q in amount %q", p.src[start:], p.src))
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, newError(ErrInvalidInput, fmt.Sprintf("bad number %q in amount", p.src[start:p.pos]))
	}
	return v, nil
}

func sincosDegrees(deg float64) (sin, cos float64) {
	return math.Sincos(deg * math.Pi / 180)
}
