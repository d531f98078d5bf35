// Package parser implements the precedence-climbing parser described in
// spec.md §4.D, producing the AST defined in internal/ast.
//
// Precedence low to high: || ; && ; == != ; < <= > >= ; + - ; * / % ; ^
// (right-associative) ; unary ! -.
package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-formula/internal/ast"
	"github.com/cwbudde/go-formula/internal/lexer"
	"github.com/cwbudde/go-formula/internal/token"
	"github.com/cwbudde/go-formula/internal/values"
)

// Parser consumes tokens from a Lexer and produces an ast.Expr.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
}

// New creates a Parser over source text.
func New(source string) *Parser {
	p := &Parser{l: lexer.New(source)}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Parse parses the entirety of the source text as a single expression.
// A Compile error is returned for any syntactic failure, including
// trailing tokens after a complete expression.
func Parse(source string) (ast.Expr, error) {
	p := New(source)
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != token.EOF {
		return nil, values.NewCompileError("unexpected token %q after expression", p.curToken.Literal)
	}
	return expr, nil
}

// precedence levels, low to high.
const (
	precLowest = iota
	precOr
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precPower
	precUnary
)

type opInfo struct {
	prec      int
	rightAssoc bool
}

var binaryOps = map[token.Type]opInfo{
	token.OR:      {precOr, false},
	token.AND:     {precAnd, false},
	token.EQ:      {precEquality, false},
	token.NEQ:     {precEquality, false},
	token.LT:      {precRelational, false},
	token.LE:      {precRelational, false},
	token.GT:      {precRelational, false},
	token.GE:      {precRelational, false},
	token.PLUS:    {precAdditive, false},
	token.MINUS:   {precAdditive, false},
	token.STAR:    {precMultiplicative, false},
	token.SLASH:   {precMultiplicative, false},
	token.PERCENT: {precMultiplicative, false},
	token.CARET:   {precPower, true},
	token.SHL:     {precRelational, false},
	token.SHR:     {precRelational, false},
}

func (p *Parser) parseExpression(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		info, ok := binaryOps[p.curToken.Type]
		if !ok || info.prec < minPrec {
			break
		}
		op := p.curToken.Type
		pos := p.curToken.Pos
		p.next()

		nextMin := info.prec + 1
		if info.rightAssoc {
			nextMin = info.prec
		}
		right, err := p.parseExpression(nextMin)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right, Position: pos}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.curToken.Type == token.NOT || p.curToken.Type == token.MINUS {
		op := p.curToken.Type
		pos := p.curToken.Pos
		p.next()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: op, Child: child, Position: pos}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.curToken.Type {
	case token.NUMBER:
		return p.parseNumberLiteral()
	case token.STRING:
		lit := &ast.Literal{Value: values.String(p.curToken.Literal), Position: p.curToken.Pos}
		p.next()
		return lit, nil
	case token.PARAMREF:
		ref := &ast.ParamRef{Name: p.curToken.Literal, Position: p.curToken.Pos}
		p.next()
		return ref, nil
	case token.IDENT:
		return p.parseIdentOrCall()
	case token.LPAREN:
		p.next()
		expr, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if p.curToken.Type != token.RPAREN {
			return nil, values.NewCompileError("expected ')', got %q", p.curToken.Literal)
		}
		p.next()
		return expr, nil
	case token.SHL, token.SHR:
		return nil, values.NewCompileError("operator %q is reserved and has no semantics", p.curToken.Literal)
	default:
		return nil, values.NewCompileError("unexpected token %q", p.curToken.Literal)
	}
}

func (p *Parser) parseNumberLiteral() (ast.Expr, error) {
	lit := p.curToken.Literal
	pos := p.curToken.Pos
	n, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, values.NewCompileError("invalid number literal %q", lit)
	}
	p.next()
	return &ast.Literal{Value: values.Number(n), Position: pos}, nil
}

// identLiterals are bare identifiers recognized as literal values rather
// than function calls when not followed by '('.
var identLiterals = map[string]values.Value{
	"true":  values.Boolean(true),
	"false": values.Boolean(false),
	"null":  values.Null{},
}

func (p *Parser) parseIdentOrCall() (ast.Expr, error) {
	name := p.curToken.Literal
	pos := p.curToken.Pos

	if p.peekToken.Type != token.LPAREN {
		if v, ok := identLiterals[strings.ToLower(name)]; ok {
			p.next()
			return &ast.Literal{Value: v, Position: pos}, nil
		}
		return nil, values.NewCompileError("unexpected identifier %q: bare identifiers must be boolean/null literals or function calls", name)
	}

	if strings.EqualFold(name, "IFERROR") {
		return p.parseIfError(pos)
	}

	p.next() // consume IDENT, curToken == '('
	args, err := p.parseCallArgs()
	if err != nil {
		return nil, err
	}
	return &ast.Call{Name: name, Args: args, Position: pos}, nil
}

// parseCallArgs parses "( expr, expr, ... )" with curToken on '('.
func (p *Parser) parseCallArgs() ([]ast.Expr, error) {
	if p.curToken.Type != token.LPAREN {
		return nil, values.NewCompileError("expected '(', got %q", p.curToken.Literal)
	}
	p.next()

	var args []ast.Expr
	if p.curToken.Type == token.RPAREN {
		p.next()
		return args, nil
	}

	for {
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.curToken.Type == token.COMMA {
			p.next()
			continue
		}
		break
	}

	if p.curToken.Type != token.RPAREN {
		return nil, values.NewCompileError("expected ')' or ',', got %q", p.curToken.Literal)
	}
	p.next()
	return args, nil
}

// parseIfError parses IFERROR(<expr>, "<literal>") with curToken on the
// IFERROR identifier. The second argument must be a string literal token;
// a computed second argument is a Compile error, per spec.md §4.D.
func (p *Parser) parseIfError(pos token.Position) (ast.Expr, error) {
	p.next() // consume IFERROR
	if p.curToken.Type != token.LPAREN {
		return nil, values.NewCompileError("expected '(' after IFERROR, got %q", p.curToken.Literal)
	}
	p.next()

	inner, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}

	if p.curToken.Type != token.COMMA {
		return nil, values.NewCompileError("IFERROR requires two arguments, got %q", p.curToken.Literal)
	}
	p.next()

	if p.curToken.Type != token.STRING {
		return nil, values.NewCompileError("IFERROR's second argument must be a literal string, got %q", p.curToken.Literal)
	}
	fallback := p.curToken.Literal
	p.next()

	if p.curToken.Type != token.RPAREN {
		return nil, values.NewCompileError("expected ')' to close IFERROR, got %q", p.curToken.Literal)
	}
	p.next()

	return &ast.IfError{Inner: inner, Fallback: fallback, Position: pos}, nil
}
