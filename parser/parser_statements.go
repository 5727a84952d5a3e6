package parser

import (
	"strings"

	"github.com/nandinimehta/narrata/ast"
	"github.com/nandinimehta/narrata/token"
)

// parseStatement dispatches on the current token(s) to pick a production:
// at most one or two tokens of lookahead decide the statement kind, with
// no backtracking. done reports that a ShortcutOptionGroup just consumed
// the remainder of the enclosing node as its epilogue, so the caller's
// statement loop must stop.
//
// nodeName is the name of the dialogue Node currently being parsed.
// Rather than a parent back-pointer on every AST node, the enclosing
// node's name is threaded explicitly through parsing calls, needed only
// to synthesize ShortcutOption body names and ShortcutOptionGroup
// epilogue names.
func (p *parser) parseStatement(nodeName string) (stmt ast.Statement, done bool, err error) {
	switch {
	case p.at(token.Text):
		s, err := p.parseLine()
		return s, false, err
	case p.at(token.Indent):
		s, err := p.parseBlock(nodeName)
		return s, false, err
	case p.at(token.OptionStart):
		s, err := p.parseOptionStatement()
		return s, false, err
	case p.at(token.ShortcutOption):
		s, err := p.parseShortcutOptionGroup(nodeName)
		return s, true, err
	case p.at(token.BeginCommand):
		return p.parseCommand(nodeName)
	default:
		return nil, false, p.unexpected("TEXT", "INDENT", "[[", "->", "<<")
	}
}

// parseLine consumes one Text token as a LineStatement.
func (p *parser) parseLine() (*ast.LineStatement, error) {
	t, err := p.expect(token.Text)
	if err != nil {
		return nil, err
	}
	return &ast.LineStatement{Text: t.Value}, nil
}

// parseBlock consumes an Indent ... Dedent-bounded statement run.
func (p *parser) parseBlock(nodeName string) (*ast.Block, error) {
	if _, err := p.expect(token.Indent); err != nil {
		return nil, err
	}
	block := &ast.Block{}
	for !p.at(token.Dedent) && !p.at(token.EndOfInput) {
		stmt, done, err := p.parseStatement(nodeName)
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if done {
			break
		}
	}
	if _, err := p.expect(token.Dedent); err != nil {
		return nil, err
	}
	return block, nil
}

// parseOptionStatement parses `[[' Text ('|' Text)? ']]'`. A single-Text
// form is a label-less destination; a two-Text form is `label|destination`.
func (p *parser) parseOptionStatement() (*ast.OptionStatement, error) {
	if _, err := p.expect(token.OptionStart); err != nil {
		return nil, err
	}
	first, err := p.expect(token.Text)
	if err != nil {
		return nil, err
	}

	if p.at(token.OptionDelimit) {
		p.advance()
		dest, err := p.expect(token.Text)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.OptionEnd); err != nil {
			return nil, err
		}
		label := first.Value
		return &ast.OptionStatement{Destination: dest.Value, Label: &label}, nil
	}

	if _, err := p.expect(token.OptionEnd); err != nil {
		return nil, err
	}
	return &ast.OptionStatement{Destination: first.Value}, nil
}

// parseCommand is reached at a `<<`; it looks one token further to decide
// whether this is an `if`, a `set`, or an opaque custom command.
func (p *parser) parseCommand(nodeName string) (ast.Statement, bool, error) {
	switch p.peek(1).Kind {
	case token.If:
		s, err := p.parseIfStatement(nodeName)
		return s, false, err
	case token.Set:
		s, err := p.parseAssignmentStatement()
		return s, false, err
	case token.ElseIf, token.Else, token.EndIf:
		// Reached only when an IfStatement's own parsing loop did not
		// consume one of these (a malformed chain, e.g. a stray elseif
		// with no preceding if).
		return nil, false, p.unexpected("IF", "SET", "<<...>>")
	default:
		s, err := p.parseCustomCommand()
		return s, false, err
	}
}

// parseCustomCommand parses an opaque `<<...>>` whose interior the parser
// does not itself interpret as a keyword. The command text is rebuilt from
// the interior tokens: each token's value (or, for a token without one, its
// kind spelling) joined by single spaces. The source's own spacing is not
// kept, and variables and string literals appear without their `$` prefix
// and quotes.
func (p *parser) parseCustomCommand() (*ast.CustomCommand, error) {
	if _, err := p.expect(token.BeginCommand); err != nil {
		return nil, err
	}
	var parts []string
	for !p.at(token.EndCommand) && !p.at(token.EndOfInput) {
		t := p.advance()
		if t.Value != "" {
			parts = append(parts, t.Value)
		} else {
			parts = append(parts, string(t.Kind))
		}
	}
	if _, err := p.expect(token.EndCommand); err != nil {
		return nil, err
	}
	command := strings.TrimSpace(strings.Join(parts, " "))
	return &ast.CustomCommand{Command: command}, nil
}
