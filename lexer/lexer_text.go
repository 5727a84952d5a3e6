package lexer

import (
	"strings"

	"github.com/nandinimehta/narrata/token"
)

// scanText scans the default dialogue grammar. At the start of a scan, `<<`,
// `[[` and `->` hand control to another mode; otherwise a Text run
// accumulates raw characters until it hits end-of-line, `<<` or `[[`.
func (lx *Lexer) scanText() (*token.Token, error) {
	for lx.ch == ' ' || lx.ch == '\t' {
		lx.advance()
	}

	if lx.ch == '\n' {
		lx.advance()
		return nil, nil
	}
	if lx.ch == 0 {
		return nil, nil
	}

	if lx.peekString("<<") {
		line, col := lx.line, lx.column
		lx.advance()
		lx.advance()
		lx.pushMode(ModeCommand)
		return &token.Token{Kind: token.BeginCommand, Line: line, Column: col}, nil
	}
	if lx.peekString("[[") {
		line, col := lx.line, lx.column
		lx.advance()
		lx.advance()
		lx.pushMode(ModeOptionLink)
		return &token.Token{Kind: token.OptionStart, Line: line, Column: col}, nil
	}
	if lx.peekString("->") {
		line, col := lx.line, lx.column
		lx.advance()
		lx.advance()
		lx.pushMode(ModeOptionShortcut)
		return &token.Token{Kind: token.ShortcutOption, Line: line, Column: col}, nil
	}

	return lx.scanTextRun()
}

// scanTextRun accumulates a free-form dialogue line's remaining characters
// into one Text token, stopping at end-of-line or at the next `<<` or `[[`.
// A `->` inside the run is ordinary dialogue text.
func (lx *Lexer) scanTextRun() (*token.Token, error) {
	line, col := lx.line, lx.column
	var sb strings.Builder
	for lx.ch != 0 && lx.ch != '\n' {
		if lx.peekString("<<") || lx.peekString("[[") {
			break
		}
		sb.WriteRune(lx.ch)
		lx.advance()
	}
	text := strings.TrimRight(sb.String(), " \t")
	return &token.Token{Kind: token.Text, Value: text, Line: line, Column: col}, nil
}
