package parser

import (
	"github.com/nandinimehta/narrata/ast"
	"github.com/nandinimehta/narrata/token"
)

// parseIfStatement parses the `<<if>> ... (<<elseif>> ...)* (<<else>>
// ...)? <<endif>>` chain. An else clause is appended to the clause list
// when one is present in the source, and omitted entirely when it is
// absent; only the terminal clause is ever allowed to lack a condition.
func (p *parser) parseIfStatement(nodeName string) (*ast.IfStatement, error) {
	stmt := &ast.IfStatement{}

	clause, err := p.parseIfClause(nodeName, token.If)
	if err != nil {
		return nil, err
	}
	stmt.Clauses = append(stmt.Clauses, clause)

	for p.at(token.BeginCommand) && p.peek(1).Kind == token.ElseIf {
		clause, err := p.parseIfClause(nodeName, token.ElseIf)
		if err != nil {
			return nil, err
		}
		stmt.Clauses = append(stmt.Clauses, clause)
	}

	if p.at(token.BeginCommand) && p.peek(1).Kind == token.Else {
		p.advance() // <<
		p.advance() // else
		if _, err := p.expect(token.EndCommand); err != nil {
			return nil, err
		}
		body, err := p.parseClauseBody(nodeName)
		if err != nil {
			return nil, err
		}
		stmt.Clauses = append(stmt.Clauses, ast.Clause{Statements: body})
	}

	if _, err := p.expect(token.BeginCommand); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EndIf); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EndCommand); err != nil {
		return nil, err
	}

	return stmt, nil
}

// parseIfClause parses one `<<' keyword Expression '>>' Statement*` clause,
// where keyword is either token.If or token.ElseIf.
func (p *parser) parseIfClause(nodeName string, keyword token.Kind) (ast.Clause, error) {
	if _, err := p.expect(token.BeginCommand); err != nil {
		return ast.Clause{}, err
	}
	if _, err := p.expect(keyword); err != nil {
		return ast.Clause{}, err
	}
	expr, err := p.parseExpression(0)
	if err != nil {
		return ast.Clause{}, err
	}
	if _, err := p.expect(token.EndCommand); err != nil {
		return ast.Clause{}, err
	}
	body, err := p.parseClauseBody(nodeName)
	if err != nil {
		return ast.Clause{}, err
	}
	return ast.Clause{Expression: expr, Statements: body}, nil
}

// parseClauseBody parses the statement run following a clause header, up
// to (but not including) the next `<<elseif>>`, `<<else>>`, or `<<endif>>`.
//
// A clause header sits at the enclosing node's own indent level, so its
// body is almost always wrapped in a lexer Indent/Dedent pair; that pair
// is consumed here rather than left for parseStatement to turn into a
// nested ast.Block, so each body Line lands directly under
// Clause.Statements instead of under an extra Block layer.
func (p *parser) parseClauseBody(nodeName string) ([]ast.Statement, error) {
	indented := p.at(token.Indent)
	if indented {
		p.advance()
	}

	var body []ast.Statement
	for !p.atClauseTerminator() && !p.at(token.EndOfInput) && !(indented && p.at(token.Dedent)) {
		stmt, done, err := p.parseStatement(nodeName)
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			body = append(body, stmt)
		}
		if done {
			break
		}
	}

	if indented {
		if _, err := p.expect(token.Dedent); err != nil {
			return nil, err
		}
	}
	return body, nil
}

// atClauseTerminator reports whether the cursor sits at one of the three
// tokens that end an if-clause's body.
func (p *parser) atClauseTerminator() bool {
	if !p.at(token.BeginCommand) {
		return false
	}
	switch p.peek(1).Kind {
	case token.ElseIf, token.Else, token.EndIf:
		return true
	default:
		return false
	}
}
