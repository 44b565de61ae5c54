package graphdetect

import (
	"math"
	"testing"
)

func TestCompile_Evaluates(t *testing.T) {
	tests := []struct {
		expr string
		x    float64
		want float64
	}{
		{"x^2", 3, 9},
		{"x**2", 3, 9},
		{"2*x + 1", 4, 9},
		{"-x", 2, -2},
		{"(x + 1) * (x - 1)", 3, 8},
		{"x^2^3", 2, 256}, // right-associative: 2^(2^3)
		{"2*pi", 0, 2 * math.Pi},
		{"sqrt(x)", 4, 2},
		{"sin(0)", 5, 0},
		{"abs(-3) + x", 1, 4},
		{"exp(0) + ln(e)", 0, 2},
		{"log(100)", 0, 2},
		{"3/4", 0, 0.75},
	}
	for _, tt := range tests {
		fn, err := Compile(tt.expr)
		if err != nil {
			t.Errorf("Compile(%q): %v", tt.expr, err)
			continue
		}
		if got := fn(tt.x); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s at x=%v: expected %v, got %v", tt.expr, tt.x, tt.want, got)
		}
	}
}

func TestCompile_RejectsMalformed(t *testing.T) {
	exprs := []string{
		"",
		"x + ",
		"x )",
		"(x",
		"x & 2",
		"foo(x)",       // not in the allow-list
		"x; panic",     // no statements
		"system(x)",    // no arbitrary calls
		"sin",          // function without arguments
		"1..2",         // bad literal
		"x y",          // missing operator
	}
	for _, expr := range exprs {
		if _, err := Compile(expr); err == nil {
			t.Errorf("Compile(%q): expected error", expr)
		}
	}
}

func TestValidateFunction(t *testing.T) {
	if !ValidateFunction("x**2") {
		t.Error("x**2 must validate")
	}
	if ValidateFunction("x + ") {
		t.Error("dangling operator must not validate")
	}
	// 1/x produces NaN at the x=0 probe, which marks a domain gap and is
	// acceptable.
	if !ValidateFunction("1/x") {
		t.Error("1/x must validate despite the x=0 probe")
	}
	if !ValidateFunction("sqrt(x - 3)") {
		t.Error("sqrt with a partial domain must validate")
	}
	if !ValidateFunction("sin(2*x) + cos(x/2)") {
		t.Error("trig combination must validate")
	}
}

func TestCompile_DivisionByZeroIsNaN(t *testing.T) {
	fn, err := Compile("1/x")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := fn(0); !math.IsNaN(got) {
		t.Errorf("expected NaN at x=0, got %v", got)
	}
	if got := fn(2); got != 0.5 {
		t.Errorf("expected 0.5 at x=2, got %v", got)
	}
}
