package lexer

import (
	"strings"

	"github.com/nandinimehta/narrata/nerr"
	"github.com/nandinimehta/narrata/token"
)

// scanOption scans the `[[...]]` link-option grammar and the tail of a
// `->` shortcut option line. Both forms share the same delimiter set
// (`|` separates label from destination, `]]` or end-of-line closes the
// option), so one scan routine serves both; the current mode
// (ModeOptionLink vs. ModeOptionShortcut) tells it whether reaching
// end-of-line is a clean close or a missing `]]`.
func (lx *Lexer) scanOption() (*token.Token, error) {
	for lx.ch == ' ' || lx.ch == '\t' {
		lx.advance()
	}

	line, col := lx.line, lx.column
	inLink := lx.mode() == ModeOptionLink

	if lx.peekString("]]") {
		lx.advance()
		lx.advance()
		lx.popMode()
		return &token.Token{Kind: token.OptionEnd, Line: line, Column: col}, nil
	}
	if lx.ch == '|' {
		lx.advance()
		return &token.Token{Kind: token.OptionDelimit, Line: line, Column: col}, nil
	}
	if lx.peekString("<<") {
		lx.advance()
		lx.advance()
		lx.pushMode(ModeCommand)
		return &token.Token{Kind: token.BeginCommand, Line: line, Column: col}, nil
	}
	if lx.ch == '\n' || lx.ch == 0 {
		if inLink {
			return nil, nerr.New(nerr.LexError, line, col, "unterminated option: missing ']]'")
		}
		// A `->` shortcut option's text run ends at end-of-line with no
		// closing delimiter; pop back to Text mode so the next line is
		// measured for indentation again.
		lx.popMode()
		if lx.ch == '\n' {
			lx.advance()
		}
		return nil, nil
	}

	return lx.scanOptionText(line, col)
}

// scanOptionText accumulates an option's free-form label or destination
// text up to the next delimiter.
func (lx *Lexer) scanOptionText(line, col int) (*token.Token, error) {
	var sb strings.Builder
	for lx.ch != 0 && lx.ch != '\n' && lx.ch != '|' {
		if lx.peekString("]]") || lx.peekString("<<") {
			break
		}
		sb.WriteRune(lx.ch)
		lx.advance()
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return nil, nerr.New(nerr.LexError, line, col, "empty option text")
	}
	return &token.Token{Kind: token.Text, Value: text, Line: line, Column: col}, nil
}
