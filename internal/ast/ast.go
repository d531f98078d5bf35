// Package ast defines the Abstract Syntax Tree node types produced by the
// formula parser: Literal, ParamRef, UnaryOp, BinaryOp, Call and IfError,
// per spec.md §3.
package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-formula/internal/token"
	"github.com/cwbudde/go-formula/internal/values"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// String returns a debug representation of the node.
	String() string
	// Pos returns the node's position in the source text.
	Pos() token.Position
}

// Expr is any node that evaluates to a value.
type Expr interface {
	Node
	exprNode()
}

// Literal is a constant value: number, string or boolean literal.
type Literal struct {
	Value    values.Value
	Position token.Position
}

func (n *Literal) exprNode()          {}
func (n *Literal) Pos() token.Position { return n.Position }
func (n *Literal) String() string {
	switch v := n.Value.(type) {
	case values.String:
		return fmt.Sprintf("%q", string(v))
	case values.Number:
		return values.FormatNumber(float64(v))
	case values.Boolean:
		return values.FormatBoolean(bool(v))
	case values.Null:
		return "null"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ParamRef is a reference to a caller-supplied parameter: @name.
type ParamRef struct {
	Name     string
	Position token.Position
}

func (n *ParamRef) exprNode()          {}
func (n *ParamRef) Pos() token.Position { return n.Position }
func (n *ParamRef) String() string      { return "@" + n.Name }

// UnaryOp is a prefix operator applied to a single operand: ! or -.
type UnaryOp struct {
	Op       token.Type
	Child    Expr
	Position token.Position
}

func (n *UnaryOp) exprNode()          {}
func (n *UnaryOp) Pos() token.Position { return n.Position }
func (n *UnaryOp) String() string      { return fmt.Sprintf("(%s%s)", n.Op, n.Child.String()) }

// BinaryOp is an infix operator applied to two operands.
type BinaryOp struct {
	Op       token.Type
	Left     Expr
	Right    Expr
	Position token.Position
}

func (n *BinaryOp) exprNode()          {}
func (n *BinaryOp) Pos() token.Position { return n.Position }
func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left.String(), n.Op, n.Right.String())
}

// Call is a function call: Ident(args...).
type Call struct {
	Name     string
	Args     []Expr
	Position token.Position
}

func (n *Call) exprNode()          {}
func (n *Call) Pos() token.Position { return n.Position }
func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Name, strings.Join(args, ", "))
}

// IfError is the parser-level IFERROR(<expr>, "<literal>") construct. The
// fallback is always a literal string — the parser rejects a computed
// second argument as a syntax error — so it never itself raises and can
// be substituted for Inner's result without evaluating Inner twice.
type IfError struct {
	Inner    Expr
	Fallback string
	Position token.Position
}

func (n *IfError) exprNode()          {}
func (n *IfError) Pos() token.Position { return n.Position }
func (n *IfError) String() string {
	return fmt.Sprintf("IFERROR(%s, %q)", n.Inner.String(), n.Fallback)
}
