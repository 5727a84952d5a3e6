// Package parser implements narrata's hand-written recursive-descent
// parser: it consumes the token sequence lexer.Tokenize produces and
// yields an AST rooted at a single top-level node named "Start".
//
// The parser walks a fully materialized token slice through an
// index-based cursor rather than pulling tokens from a live, streaming
// lexer. That gives peek(n)/advance/snapshot/restore all O(1) for free,
// which speculative parsing (trying a production, then backtracking)
// needs.
package parser

import (
	"fmt"

	"github.com/nandinimehta/narrata/ast"
	"github.com/nandinimehta/narrata/lexer"
	"github.com/nandinimehta/narrata/nerr"
	"github.com/nandinimehta/narrata/token"
)

// parser holds the token cursor and the (unexported) machinery every
// parse* method in this package shares.
type parser struct {
	tokens []token.Token
	pos    int
}

// Parse is narrata's sole entry point. It tokenizes source and parses the
// result into a Node named "Start".
func Parse(source string) (*ast.Node, error) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: toks}
	return p.parseRootNode("Start")
}

// cur returns the token at the cursor without consuming it.
func (p *parser) cur() token.Token {
	return p.peek(0)
}

// peek returns the token n positions ahead of the cursor (peek(0) ==
// cur()), clamping to the final EndOfInput token if n runs past the end.
func (p *parser) peek(n int) token.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// advance consumes the current token and returns it.
func (p *parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

// snapshot returns a cursor position that restore can rewind to, an O(1)
// fork for speculative parsing.
func (p *parser) snapshot() int {
	return p.pos
}

func (p *parser) restore(mark int) {
	p.pos = mark
}

// at reports whether the current token has the given kind.
func (p *parser) at(kind token.Kind) bool {
	return p.cur().Is(kind)
}

// expect consumes the current token if it has the given kind, failing
// with an UnexpectedToken error otherwise.
func (p *parser) expect(kind token.Kind) (token.Token, error) {
	if !p.at(kind) {
		return token.Token{}, p.unexpected(string(kind))
	}
	return p.advance(), nil
}

func (p *parser) unexpected(expected ...string) *nerr.Error {
	t := p.cur()
	found := string(t.Kind)
	if t.Value != "" {
		found = fmt.Sprintf("%s(%s)", t.Kind, t.Value)
	}
	return nerr.NewUnexpected(t.Line, t.Column, found, expected...)
}

// parseRootNode parses the remainder of the token stream (or, recursively,
// the body of a nested block/epilogue) into a Node, stopping at Dedent or
// EndOfInput, per the grammar's `Node := Statement* (terminated by Dedent
// or EndOfInput)`.
func (p *parser) parseRootNode(name string) (*ast.Node, error) {
	node := &ast.Node{Name: name}
	for !p.at(token.Dedent) && !p.at(token.EndOfInput) {
		stmt, done, err := p.parseStatement(name)
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			node.Statements = append(node.Statements, stmt)
		}
		if done {
			// A ShortcutOptionGroup consumed the rest of this node as its
			// epilogue; nothing more to parse here.
			break
		}
	}
	return node, nil
}
