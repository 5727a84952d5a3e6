package parser

import (
	"github.com/nandinimehta/narrata/ast"
	"github.com/nandinimehta/narrata/token"
)

// parseAssignmentStatement parses `<<' 'set' Variable AssignOp Expression
// '>>'`.
func (p *parser) parseAssignmentStatement() (*ast.AssignmentStatement, error) {
	if _, err := p.expect(token.BeginCommand); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Set); err != nil {
		return nil, err
	}
	variable, err := p.expect(token.Variable)
	if err != nil {
		return nil, err
	}

	opTok := p.cur()
	if !token.IsAssignmentOperator(opTok.Kind) {
		return nil, p.unexpected("=", "+=", "-=", "*=", "/=")
	}
	p.advance()
	op, ok := ast.AssignOpFromToken(opTok.Kind)
	if !ok {
		return nil, p.unexpected("=", "+=", "-=", "*=", "/=")
	}

	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.EndCommand); err != nil {
		return nil, err
	}

	return &ast.AssignmentStatement{
		Variable: variable.Value,
		Operator: op,
		Value:    value,
	}, nil
}
