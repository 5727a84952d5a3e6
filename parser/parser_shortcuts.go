package parser

import (
	"fmt"

	"github.com/nandinimehta/narrata/ast"
	"github.com/nandinimehta/narrata/token"
)

// parseShortcutOptionGroup parses a contiguous run of `->`-introduced
// options and then, as its epilogue, the remainder of nodeName's
// statement list. A shortcut-option group always terminates its
// enclosing node's statement list, which is why parseStatement reports
// done=true for this production and its callers stop their own statement
// loops.
func (p *parser) parseShortcutOptionGroup(nodeName string) (*ast.ShortcutOptionGroup, error) {
	group := &ast.ShortcutOptionGroup{}

	index := 1
	for p.at(token.ShortcutOption) {
		opt, err := p.parseShortcutOption(nodeName, index)
		if err != nil {
			return nil, err
		}
		group.Options = append(group.Options, opt)
		index++
	}

	epilogueName := fmt.Sprintf("%s.Epilogue", nodeName)
	epilogue, err := p.parseRootNode(epilogueName)
	if err != nil {
		return nil, err
	}
	group.Epilogue = epilogue

	return group, nil
}

// parseShortcutOption parses one `'->' Text ( '<<' 'if' Expression '>>' )?
// ( Indent Node Dedent )?` option. When present, its body is a Node named
// `<nodeName>.<index>`.
func (p *parser) parseShortcutOption(nodeName string, index int) (ast.ShortcutOption, error) {
	if _, err := p.expect(token.ShortcutOption); err != nil {
		return ast.ShortcutOption{}, err
	}
	label, err := p.expect(token.Text)
	if err != nil {
		return ast.ShortcutOption{}, err
	}

	opt := ast.ShortcutOption{Label: label.Value}

	if p.at(token.BeginCommand) && p.peek(1).Kind == token.If {
		p.advance() // <<
		p.advance() // if
		cond, err := p.parseExpression(0)
		if err != nil {
			return ast.ShortcutOption{}, err
		}
		if _, err := p.expect(token.EndCommand); err != nil {
			return ast.ShortcutOption{}, err
		}
		opt.Condition = cond
	}

	if p.at(token.Indent) {
		p.advance()
		bodyName := fmt.Sprintf("%s.%d", nodeName, index)
		body, err := p.parseRootNode(bodyName)
		if err != nil {
			return ast.ShortcutOption{}, err
		}
		if _, err := p.expect(token.Dedent); err != nil {
			return ast.ShortcutOption{}, err
		}
		opt.Body = body
	}

	return opt, nil
}
