// Package evaluator walks a parsed formula's AST and produces a values.Value,
// dispatching parameter references through paramenv and function calls
// through a builtins.Registry (spec.md §3).
package evaluator

import (
	"github.com/cwbudde/go-formula/internal/ast"
	"github.com/cwbudde/go-formula/internal/builtins"
	"github.com/cwbudde/go-formula/internal/coerce"
	"github.com/cwbudde/go-formula/internal/paramenv"
	"github.com/cwbudde/go-formula/internal/token"
	"github.com/cwbudde/go-formula/internal/values"
)

// Evaluator walks an expression tree against a fixed parameter environment
// and function registry. It holds no other mutable state, so one
// Evaluator may be reused (sequentially) across many trees.
type Evaluator struct {
	env *paramenv.Environment
	reg *builtins.Registry
}

// New builds an Evaluator bound to env and reg.
func New(env *paramenv.Environment, reg *builtins.Registry) *Evaluator {
	return &Evaluator{env: env, reg: reg}
}

// Eval walks expr and returns its value, or the first error raised by any
// subexpression — except inside an IfError node, which catches any error
// kind from its Inner and substitutes the literal Fallback string instead.
func (e *Evaluator) Eval(expr ast.Expr) (values.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return n.Value, nil
	case *ast.ParamRef:
		return e.env.Raw(n.Name)
	case *ast.UnaryOp:
		return e.evalUnary(n)
	case *ast.BinaryOp:
		return e.evalBinary(n)
	case *ast.Call:
		return e.evalCall(n)
	case *ast.IfError:
		return e.evalIfError(n)
	default:
		return nil, values.NewExpressionError("evaluator: unhandled node type %T", expr)
	}
}

func (e *Evaluator) evalIfError(n *ast.IfError) (values.Value, error) {
	v, err := e.Eval(n.Inner)
	if err != nil {
		return values.String(n.Fallback), nil
	}
	return v, nil
}

func (e *Evaluator) evalUnary(n *ast.UnaryOp) (values.Value, error) {
	v, err := e.Eval(n.Child)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case token.MINUS:
		num, err := paramenv.Numeric(v)
		if err != nil {
			return nil, err
		}
		return values.Number(-num), nil
	case token.NOT:
		b, err := coerce.ToBoolean(v)
		if err != nil {
			return nil, err
		}
		return values.Boolean(!b), nil
	default:
		return nil, values.NewCompileError("unsupported unary operator %s", n.Op)
	}
}

func (e *Evaluator) evalBinary(n *ast.BinaryOp) (values.Value, error) {
	// SHL/SHR parse as ordinary binary operators but carry no evaluation
	// semantics: spec.md reserves them for a future bitwise extension and
	// requires they fail at evaluation time, not parse time, so a formula
	// can be syntax-checked without deciding whether it is safe to run.
	if n.Op == token.SHL || n.Op == token.SHR {
		return nil, values.NewCompileError("operator %s is reserved and cannot be evaluated", n.Op)
	}

	left, err := e.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case token.PLUS:
		return numericBinary(left, right, func(a, b float64) (float64, error) { return a + b, nil })
	case token.MINUS:
		return numericBinary(left, right, func(a, b float64) (float64, error) { return a - b, nil })
	case token.STAR:
		return numericBinary(left, right, func(a, b float64) (float64, error) { return a * b, nil })
	case token.SLASH:
		return numericBinary(left, right, func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, values.NewDivByZeroError("division by zero")
			}
			return a / b, nil
		})
	case token.PERCENT:
		return builtins.Mod([]values.Value{left, right})
	case token.CARET:
		return builtins.Power([]values.Value{left, right})
	case token.EQ:
		return values.Boolean(coerce.Equal(left, right)), nil
	case token.NEQ:
		return values.Boolean(!coerce.Equal(left, right)), nil
	case token.LT, token.LE, token.GT, token.GE:
		return e.compareBinary(n.Op, left, right)
	case token.AND:
		lb, err := coerce.ToBoolean(left)
		if err != nil {
			return nil, err
		}
		rb, err := coerce.ToBoolean(right)
		if err != nil {
			return nil, err
		}
		return values.Boolean(lb && rb), nil
	case token.OR:
		lb, err := coerce.ToBoolean(left)
		if err != nil {
			return nil, err
		}
		rb, err := coerce.ToBoolean(right)
		if err != nil {
			return nil, err
		}
		return values.Boolean(lb || rb), nil
	default:
		return nil, values.NewCompileError("unsupported binary operator %s", n.Op)
	}
}

func (e *Evaluator) compareBinary(op token.Type, left, right values.Value) (values.Value, error) {
	a, err := paramenv.Numeric(left)
	if err != nil {
		return nil, err
	}
	b, err := paramenv.Numeric(right)
	if err != nil {
		return nil, err
	}
	switch op {
	case token.LT:
		return values.Boolean(a < b), nil
	case token.LE:
		return values.Boolean(a <= b), nil
	case token.GT:
		return values.Boolean(a > b), nil
	default:
		return values.Boolean(a >= b), nil
	}
}

func numericBinary(left, right values.Value, op func(a, b float64) (float64, error)) (values.Value, error) {
	a, err := paramenv.Numeric(left)
	if err != nil {
		return nil, err
	}
	b, err := paramenv.Numeric(right)
	if err != nil {
		return nil, err
	}
	r, err := op(a, b)
	if err != nil {
		return nil, err
	}
	return values.Number(r), nil
}

func (e *Evaluator) evalCall(n *ast.Call) (values.Value, error) {
	fn, ok := e.reg.Lookup(n.Name)
	if !ok {
		return nil, values.NewNameError("unknown function %s", n.Name)
	}
	args := make([]values.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return fn(args)
}
