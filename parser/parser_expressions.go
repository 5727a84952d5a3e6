package parser

import (
	"strconv"

	"github.com/nandinimehta/narrata/ast"
	"github.com/nandinimehta/narrata/nerr"
	"github.com/nandinimehta/narrata/token"
)

// parseExpression parses a binary expression by precedence climbing: it
// reduces the operator table in binaryOperators to a tree without any
// explicit operator/output stacks. minPrec is the lowest-precedence
// operator this call is willing to fold into its own result;
// parseAssignmentStatement and the if/shortcut clause parsers all start a
// fresh expression at minPrec 0.
func (p *parser) parseExpression(minPrec int) (ast.Expression, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		info, ok := binaryOperators[p.cur().Kind]
		if !ok || info.precedence < minPrec {
			break
		}

		opTok := p.advance()
		nextMin := info.precedence + 1
		if info.assoc == rightAssoc {
			nextMin = info.precedence
		}

		rhs, err := p.parseExpression(nextMin)
		if err != nil {
			return nil, err
		}

		lhs = &ast.Compound{
			LHS: lhs,
			Op:  ast.Operator{Token: opTok.Kind, Category: info.category},
			RHS: rhs,
		}
	}

	return lhs, nil
}

// parseUnary parses an optional unary `!`/`-` application, then falls
// through to a primary operand.
func (p *parser) parseUnary() (ast.Expression, error) {
	if category, ok := unaryOperators[p.cur().Kind]; ok {
		opTok := p.advance()
		operand, err := p.parseExpression(unaryPrecedence)
		if err != nil {
			return nil, err
		}
		return &ast.Compound{
			Op:  ast.Operator{Token: opTok.Kind, Category: category},
			RHS: operand,
		}, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses a literal, a variable reference, a function call, or
// a parenthesized sub-expression.
func (p *parser) parsePrimary() (ast.Expression, error) {
	t := p.cur()
	switch t.Kind {
	case token.Number:
		return p.parseNumberLiteral()
	case token.String:
		p.advance()
		return &ast.Value{Kind: ast.ValueString, Literal: t.Value}, nil
	case token.True:
		p.advance()
		return &ast.Value{Kind: ast.ValueBool, Bool: true}, nil
	case token.False:
		p.advance()
		return &ast.Value{Kind: ast.ValueBool, Bool: false}, nil
	case token.Null:
		p.advance()
		return &ast.Value{Kind: ast.ValueNull}, nil
	case token.Variable:
		p.advance()
		return &ast.Value{Kind: ast.ValueVariable, Name: t.Value}, nil
	case token.Function:
		return p.parseCall()
	case token.LeftParen:
		return p.parseParenthesized()
	case token.EndCommand, token.RightParen, token.Comma, token.EndOfInput:
		return nil, nerr.New(nerr.EmptyExpression, t.Line, t.Column, "expected an expression")
	default:
		return nil, p.unexpected("NUMBER", "STRING", "VARIABLE", "TRUE", "FALSE", "NULL", "(", "FUNCTION")
	}
}

// parseNumberLiteral parses an unsigned numeric literal. A leading `-` is
// never part of the Number token itself; it always arrives as a separate
// Minus token handled by parseUnary.
func (p *parser) parseNumberLiteral() (*ast.Value, error) {
	t, err := p.expect(token.Number)
	if err != nil {
		return nil, err
	}
	n, parseErr := strconv.ParseFloat(t.Value, 64)
	if parseErr != nil {
		return nil, nerr.New(nerr.ParseError, t.Line, t.Column, "malformed number literal: "+t.Value)
	}
	return &ast.Value{Kind: ast.ValueNumber, Number: n}, nil
}

// parseCall parses `Ident '(' (Expression (',' Expression)*)? ')'`. A
// missing closing paren raises UnbalancedParens, positioned at the token
// found where the `)` was expected (not at the opening paren, unlike
// parseParenthesized).
func (p *parser) parseCall() (*ast.Call, error) {
	callee, err := p.expect(token.Function)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}

	call := &ast.Call{Callee: callee.Value}
	if !p.at(token.RightParen) {
		for {
			arg, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	if !p.at(token.RightParen) {
		return nil, p.unbalancedParens()
	}
	p.advance()
	return call, nil
}

// parseParenthesized parses `'(' Expression ')'`, raising UnbalancedParens
// (rather than a generic UnexpectedToken) when the closing paren is
// missing, positioned at the opening paren rather than wherever parsing
// gave up.
func (p *parser) parseParenthesized() (ast.Expression, error) {
	open := p.advance()
	inner, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if !p.at(token.RightParen) {
		return nil, p.unbalancedParensAt(open)
	}
	p.advance()
	return inner, nil
}

func (p *parser) unbalancedParens() *nerr.Error {
	return p.unbalancedParensAt(p.cur())
}

func (p *parser) unbalancedParensAt(opener token.Token) *nerr.Error {
	return nerr.New(nerr.UnbalancedParens, opener.Line, opener.Column, "unbalanced parentheses")
}
