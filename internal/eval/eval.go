// Package eval turns equation strings into ordered (x, y) samples.
package eval

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/san-kum/braillegraph/internal/raster"
)

// ErrEvaluation marks parse and evaluation failures.
var ErrEvaluation = errors.New("eval: invalid equation")

// Provider produces samples of an equation in ascending x order.
type Provider interface {
	Plot(equation string, xMin, xMax, step float64) ([]raster.Point, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(equation string, xMin, xMax, step float64) ([]raster.Point, error)

func (f ProviderFunc) Plot(equation string, xMin, xMax, step float64) ([]raster.Point, error) {
	return f(equation, xMin, xMax, step)
}

// Expr evaluates equations written in expr-lang syntax with x as the free
// variable. abs, ceil, floor, min and max come from the expr builtins.
type Expr struct{}

func NewExpr() *Expr { return &Expr{} }

func env(x float64) map[string]any {
	return map[string]any{
		"x":    x,
		"pi":   math.Pi,
		"e":    math.E,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"asin": math.Asin,
		"acos": math.Acos,
		"atan": math.Atan,
		"sinh": math.Sinh,
		"cosh": math.Cosh,
		"tanh": math.Tanh,
		"sqrt": math.Sqrt,
		"ln":   math.Log,
		"log":  math.Log10,
		"exp":  math.Exp,
		"pow":  math.Pow,
	}
}

// Body strips an optional leading "y =" from an equation.
func Body(equation string) string {
	s := strings.TrimSpace(equation)
	if rest, ok := strings.CutPrefix(s, "y"); ok {
		if r := strings.TrimSpace(rest); strings.HasPrefix(r, "=") {
			return strings.TrimSpace(r[1:])
		}
	}
	return s
}

func compile(equation string) (*vm.Program, error) {
	body := Body(equation)
	if body == "" {
		return nil, fmt.Errorf("%w: empty equation", ErrEvaluation)
	}
	program, err := expr.Compile(body, expr.Env(env(0)), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrEvaluation, equation, err)
	}
	return program, nil
}

// Plot samples the equation from xMin to xMax inclusive every step.
func (e *Expr) Plot(equation string, xMin, xMax, step float64) ([]raster.Point, error) {
	if step <= 0 || math.IsNaN(step) {
		return nil, fmt.Errorf("%w: step must be positive, got %v", ErrEvaluation, step)
	}
	program, err := compile(equation)
	if err != nil {
		return nil, err
	}

	n := int(math.Floor((xMax-xMin)/step+1e-6)) + 1
	if n < 1 {
		n = 1
	}
	points := make([]raster.Point, 0, n)
	vars := env(0)
	for i := 0; i < n; i++ {
		x := xMin + float64(i)*step
		vars["x"] = x
		out, err := expr.Run(program, vars)
		if err != nil {
			return nil, fmt.Errorf("%w %q at x=%g: %v", ErrEvaluation, equation, x, err)
		}
		y, ok := out.(float64)
		if !ok {
			return nil, fmt.Errorf("%w %q: result is %T, not a number", ErrEvaluation, equation, out)
		}
		points = append(points, raster.Pt(x, y))
	}
	return points, nil
}

// Calculate evaluates an expression that does not depend on x.
func Calculate(expression string) (float64, error) {
	program, err := compile(expression)
	if err != nil {
		return 0, err
	}
	out, err := expr.Run(program, env(0))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrEvaluation, expression, err)
	}
	y, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("%w %q: result is %T, not a number", ErrEvaluation, expression, out)
	}
	return y, nil
}
