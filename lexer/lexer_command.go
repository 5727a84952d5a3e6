package lexer

import (
	"strconv"
	"strings"

	"github.com/nandinimehta/narrata/nerr"
	"github.com/nandinimehta/narrata/token"
)

// scanCommand scans the `<<...>>` command grammar: keywords, operators,
// numbers, strings, variables, and identifiers/function calls. Whitespace
// between tokens is insignificant here, unlike in Text mode.
func (lx *Lexer) scanCommand() (*token.Token, error) {
	lx.skipInlineWhitespace()

	line, col := lx.line, lx.column

	if lx.ch == '\n' {
		lx.advance()
		return nil, nil
	}
	if lx.ch == 0 {
		return nil, nerr.New(nerr.LexError, line, col, "unterminated command: missing '>>'")
	}

	if lx.peekString(">>") {
		lx.advance()
		lx.advance()
		lx.popMode()
		return &token.Token{Kind: token.EndCommand, Line: line, Column: col}, nil
	}

	switch {
	case lx.ch == '$':
		return lx.readVariable(line, col)
	case lx.ch == '"':
		return lx.readStringLiteral(line, col)
	case isDigit(lx.ch):
		return lx.readNumber(line, col)
	case isLetter(lx.ch):
		return lx.readIdentifierOrKeyword(line, col)
	}

	return lx.readOperator(line, col)
}

func (lx *Lexer) readVariable(line, col int) (*token.Token, error) {
	lx.advance() // consume '$'
	var sb strings.Builder
	for isIdentChar(lx.ch) {
		sb.WriteRune(lx.ch)
		lx.advance()
	}
	if sb.Len() == 0 {
		return nil, nerr.New(nerr.LexError, line, col, "expected a name after '$'")
	}
	return &token.Token{Kind: token.Variable, Value: sb.String(), Line: line, Column: col}, nil
}

// readStringLiteral reads a double-quoted string, honoring the common
// backslash escapes (\n, \t, \\, \").
func (lx *Lexer) readStringLiteral(line, col int) (*token.Token, error) {
	lx.advance() // consume opening quote
	var sb strings.Builder
	for lx.ch != '"' {
		if lx.ch == 0 || lx.ch == '\n' {
			return nil, nerr.New(nerr.LexError, line, col, "unterminated string literal")
		}
		if lx.ch == '\\' {
			lx.advance()
			switch lx.ch {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			default:
				sb.WriteRune(lx.ch)
			}
			lx.advance()
			continue
		}
		sb.WriteRune(lx.ch)
		lx.advance()
	}
	lx.advance() // consume closing quote
	return &token.Token{Kind: token.String, Value: sb.String(), Line: line, Column: col}, nil
}

// readNumber reads an unsigned decimal literal, `[0-9]+(\.[0-9]+)?`. A
// leading `-` is never part of the literal: it is scanned separately as a
// Minus token and applied by the parser's unary rule.
func (lx *Lexer) readNumber(line, col int) (*token.Token, error) {
	var sb strings.Builder
	for isDigit(lx.ch) {
		sb.WriteRune(lx.ch)
		lx.advance()
	}
	if lx.ch == '.' && isDigit(lx.peek()) {
		sb.WriteRune(lx.ch)
		lx.advance()
		for isDigit(lx.ch) {
			sb.WriteRune(lx.ch)
			lx.advance()
		}
	}
	text := sb.String()
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return nil, nerr.New(nerr.LexError, line, col, "malformed number literal: "+text)
	}
	return &token.Token{Kind: token.Number, Value: text, Line: line, Column: col}, nil
}

// readIdentifierOrKeyword reads a bare word and classifies it as a keyword,
// a Function (when immediately followed by '('), or a plain Identifier.
func (lx *Lexer) readIdentifierOrKeyword(line, col int) (*token.Token, error) {
	var sb strings.Builder
	for isIdentChar(lx.ch) {
		sb.WriteRune(lx.ch)
		lx.advance()
	}
	name := sb.String()

	if kind, ok := token.LookupKeyword(name); ok {
		return &token.Token{Kind: kind, Value: name, Line: line, Column: col}, nil
	}

	if lx.ch == '(' {
		return &token.Token{Kind: token.Function, Value: name, Line: line, Column: col}, nil
	}
	return &token.Token{Kind: token.Identifier, Value: name, Line: line, Column: col}, nil
}

// readOperator reads one punctuation or operator token, preferring the
// longest match (e.g. "==" over "=", "<=" over "<").
func (lx *Lexer) readOperator(line, col int) (*token.Token, error) {
	two := func(second rune, kind token.Kind) (*token.Token, bool) {
		if lx.peek() == second {
			lx.advance()
			lx.advance()
			return &token.Token{Kind: kind, Line: line, Column: col}, true
		}
		return nil, false
	}

	switch lx.ch {
	case '=':
		if tok, ok := two('=', token.EqualEqual); ok {
			return tok, nil
		}
		lx.advance()
		return &token.Token{Kind: token.Assign, Line: line, Column: col}, nil
	case '!':
		if tok, ok := two('=', token.BangEqual); ok {
			return tok, nil
		}
		lx.advance()
		return &token.Token{Kind: token.Bang, Line: line, Column: col}, nil
	case '<':
		if tok, ok := two('=', token.LessEqual); ok {
			return tok, nil
		}
		lx.advance()
		return &token.Token{Kind: token.Less, Line: line, Column: col}, nil
	case '>':
		if tok, ok := two('=', token.GreaterEqual); ok {
			return tok, nil
		}
		lx.advance()
		return &token.Token{Kind: token.Greater, Line: line, Column: col}, nil
	case '+':
		if tok, ok := two('=', token.PlusAssign); ok {
			return tok, nil
		}
		lx.advance()
		return &token.Token{Kind: token.Plus, Line: line, Column: col}, nil
	case '-':
		if tok, ok := two('=', token.MinusAssign); ok {
			return tok, nil
		}
		lx.advance()
		return &token.Token{Kind: token.Minus, Line: line, Column: col}, nil
	case '*':
		if tok, ok := two('=', token.StarAssign); ok {
			return tok, nil
		}
		lx.advance()
		return &token.Token{Kind: token.Star, Line: line, Column: col}, nil
	case '/':
		if tok, ok := two('=', token.SlashAssign); ok {
			return tok, nil
		}
		lx.advance()
		return &token.Token{Kind: token.Slash, Line: line, Column: col}, nil
	case '&':
		if tok, ok := two('&', token.AndAnd); ok {
			return tok, nil
		}
	case '|':
		if tok, ok := two('|', token.OrOr); ok {
			return tok, nil
		}
	case '^':
		lx.advance()
		return &token.Token{Kind: token.Caret, Line: line, Column: col}, nil
	case '(':
		lx.advance()
		return &token.Token{Kind: token.LeftParen, Line: line, Column: col}, nil
	case ')':
		lx.advance()
		return &token.Token{Kind: token.RightParen, Line: line, Column: col}, nil
	case ',':
		lx.advance()
		return &token.Token{Kind: token.Comma, Line: line, Column: col}, nil
	}

	found := string(lx.ch)
	return nil, nerr.New(nerr.LexError, line, col, "unexpected character '"+found+"' in command")
}
