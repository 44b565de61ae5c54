package graphdetect

import "fmt"

const graphSystemPrompt = `You decide whether a homework question contains a function that can be
plotted on a 2D graph.

A question is graphable when it contains, or reduces to, a single-variable
explicit function:
- explicit forms like y = ... or f(x) = ...
- the integrand of an integral
- the function being differentiated in a derivative question
- the argument of a limit
- a bare polynomial, rational, trigonometric, exponential or logarithmic
  expression in one variable

Not graphable: pure arithmetic, matrix or vector operations, proofs with no
named function, and definition-only questions.

When graphable, extract the function as a plain expression in the variable x.
Use only numbers, x, the operators + - * / ^, parentheses, the constants pi
and e, and the functions sin, cos, tan, sqrt, log, ln, exp, abs. Rewrite any
other variable name as x. Never emit anything that is not a plain expression.

Suggest a display domain (domain_min, domain_max) that shows the function's
interesting behavior. Rough guidance: trigonometric functions around
[-2*pi, 2*pi], logarithms on a strictly positive range like [0.1, 10],
polynomials around [-5, 5], and for rational functions avoid centering on an
asymptote.`

func buildGraphMessage(text string) string {
	return fmt.Sprintf("Classify this question:\n\n%s", text)
}
