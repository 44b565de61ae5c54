package graphdetect

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// probePoints is the fixed input set every extracted expression must
// evaluate at before it is trusted for rendering.
var probePoints = []float64{0, 1, -1, 0.5, 2}

// Func is a compiled single-variable numeric function.
type Func func(x float64) float64

// allowed named functions. Anything outside this list fails compilation.
var funcs = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"sqrt": math.Sqrt,
	"log":  math.Log10,
	"ln":   math.Log,
	"exp":  math.Exp,
	"abs":  math.Abs,
}

var consts = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Compile parses a restricted arithmetic expression in x and returns an
// evaluable function. The grammar covers numeric literals, the variable x,
// the constants pi and e, the operators + - * / ^ (and ** as a synonym for
// ^), parentheses and the fixed named-function allow-list. Anything else is
// a parse error.
func Compile(expr string) (Func, error) {
	p := &parser{tokens: nil, pos: 0}
	if err := p.tokenize(expr); err != nil {
		return nil, err
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("unexpected trailing token %q", p.tokens[p.pos].text)
	}
	return node.eval, nil
}

// ValidateFunction reports whether expr compiles and evaluates to a float
// at every probe point. NaN and infinities are acceptable results since
// they only mark domain gaps, not broken expressions.
func ValidateFunction(expr string) bool {
	fn, err := Compile(expr)
	if err != nil {
		return false
	}
	for _, x := range probePoints {
		fn(x)
	}
	return true
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) tokenize(expr string) error {
	s := strings.TrimSpace(expr)
	if s == "" {
		return fmt.Errorf("empty expression")
	}
	i := 0
	for i < len(s) {
		c := rune(s[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '(':
			p.tokens = append(p.tokens, token{kind: tokLParen, text: "("})
			i++
		case c == ')':
			p.tokens = append(p.tokens, token{kind: tokRParen, text: ")"})
			i++
		case c == '*':
			// ** is the power operator, a single * multiplies.
			if i+1 < len(s) && s[i+1] == '*' {
				p.tokens = append(p.tokens, token{kind: tokOp, text: "^"})
				i += 2
			} else {
				p.tokens = append(p.tokens, token{kind: tokOp, text: "*"})
				i++
			}
		case c == '+' || c == '-' || c == '/' || c == '^':
			p.tokens = append(p.tokens, token{kind: tokOp, text: string(c)})
			i++
		case unicode.IsDigit(c) || c == '.':
			j := i
			for j < len(s) && (unicode.IsDigit(rune(s[j])) || s[j] == '.') {
				j++
			}
			num, err := strconv.ParseFloat(s[i:j], 64)
			if err != nil {
				return fmt.Errorf("bad number %q", s[i:j])
			}
			p.tokens = append(p.tokens, token{kind: tokNumber, text: s[i:j], num: num})
			i = j
		case unicode.IsLetter(c):
			j := i
			for j < len(s) && unicode.IsLetter(rune(s[j])) {
				j++
			}
			p.tokens = append(p.tokens, token{kind: tokIdent, text: strings.ToLower(s[i:j])})
			i = j
		default:
			return fmt.Errorf("unexpected character %q", c)
		}
	}
	return nil
}

// node is one compiled AST node.
type node interface {
	eval(x float64) float64
}

type numNode float64

func (n numNode) eval(float64) float64 { return float64(n) }

type varNode struct{}

func (varNode) eval(x float64) float64 { return x }

type unaryNode struct {
	neg   bool
	child node
}

func (n unaryNode) eval(x float64) float64 {
	v := n.child.eval(x)
	if n.neg {
		return -v
	}
	return v
}

type binNode struct {
	op          byte
	left, right node
}

func (n binNode) eval(x float64) float64 {
	l, r := n.left.eval(x), n.right.eval(x)
	switch n.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		if r == 0 {
			return math.NaN()
		}
		return l / r
	default: // '^'
		return math.Pow(l, r)
	}
}

type callNode struct {
	fn    func(float64) float64
	child node
}

func (n callNode) eval(x float64) float64 { return n.fn(n.child.eval(x)) }

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) acceptOp(ops string) (byte, bool) {
	t, ok := p.peek()
	if !ok || t.kind != tokOp || !strings.Contains(ops, t.text) {
		return 0, false
	}
	p.pos++
	return t.text[0], true
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp("+-")
		if !ok {
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, left: left, right: right}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp("*/")
		if !ok {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, left: left, right: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	if op, ok := p.acceptOp("+-"); ok {
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{neg: op == '-', child: child}, nil
	}
	return p.parsePower()
}

// parsePower handles right-associative exponentiation: x^2^3 == x^(2^3).
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if _, ok := p.acceptOp("^"); ok {
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binNode{op: '^', left: base, right: exp}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	switch t.kind {
	case tokNumber:
		p.pos++
		return numNode(t.num), nil
	case tokLParen:
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		p.pos++
		if t.text == "x" {
			return varNode{}, nil
		}
		if v, ok := consts[t.text]; ok {
			return numNode(v), nil
		}
		fn, ok := funcs[t.text]
		if !ok {
			return nil, fmt.Errorf("unknown identifier %q", t.text)
		}
		if next, ok := p.peek(); !ok || next.kind != tokLParen {
			return nil, fmt.Errorf("function %q requires arguments", t.text)
		}
		p.pos++
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, err
		}
		return callNode{fn: fn, child: arg}, nil
	default:
		return nil, fmt.Errorf("unexpected token %q", t.text)
	}
}

func (p *parser) expectRParen() error {
	t, ok := p.peek()
	if !ok || t.kind != tokRParen {
		return fmt.Errorf("missing closing parenthesis")
	}
	p.pos++
	return nil
}
