// Package lexer implements narrata's mode-stacked scanner: it turns
// dialogue source text into a token.Token sequence, emitting synthetic
// Indent/Dedent tokens from leading whitespace and switching between three
// scanning grammars (Text, Command, Option) as `<<`, `>>`, `[[`, and `]]`
// delimiters are crossed.
//
// Scanning advances rune by rune rather than byte by byte, since dialogue
// text is free-form prose and must decode multi-byte UTF-8 correctly.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/nandinimehta/narrata/nerr"
	"github.com/nandinimehta/narrata/token"
)

// Mode names one of the three sub-grammars the lexer switches between.
type Mode int

const (
	// ModeText is the default dialogue-line grammar.
	ModeText Mode = iota
	// ModeCommand is active between `<<` and its matching `>>`.
	ModeCommand
	// ModeOptionLink is active between `[[` and its matching `]]`. Unlike
	// ModeOptionShortcut, reaching end-of-line without `]]` is an error.
	ModeOptionLink
	// ModeOptionShortcut is active after a `->` shortcut option marker. It
	// has no closing delimiter; end-of-line ends it cleanly.
	ModeOptionShortcut
)

// Lexer is the scanner's mutable state. A Lexer is used once, via
// Tokenize, and discarded; there is no reuse or reset API.
type Lexer struct {
	src    string
	pos    int  // byte offset of ch within src
	next   int  // byte offset immediately after ch
	ch     rune // rune under the cursor; 0 at end of input
	line   int
	column int

	modes  []Mode
	indent []int
}

// New creates a Lexer over source. Line endings are normalized (`\r\n` to
// `\n`) before scanning begins.
func New(source string) *Lexer {
	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	lx := &Lexer{
		src:    normalized,
		line:   1,
		column: 0,
		modes:  []Mode{ModeText},
		indent: []int{0},
	}
	lx.advance()
	return lx
}

// mode returns the scanning grammar currently in effect, i.e. the top of
// the mode stack.
func (lx *Lexer) mode() Mode {
	return lx.modes[len(lx.modes)-1]
}

func (lx *Lexer) pushMode(m Mode) {
	lx.modes = append(lx.modes, m)
}

func (lx *Lexer) popMode() {
	if len(lx.modes) > 1 {
		lx.modes = lx.modes[:len(lx.modes)-1]
	}
}

// advance consumes ch and decodes the rune now under the cursor, updating
// line/column bookkeeping. Tabs count as one column. A newline belongs to
// the line it ends; the line count moves on when the cursor steps past it.
func (lx *Lexer) advance() {
	if lx.next >= len(lx.src) {
		lx.ch = 0
		lx.pos = len(lx.src)
		lx.next = len(lx.src)
		return
	}
	r, size := utf8.DecodeRuneInString(lx.src[lx.next:])
	if lx.ch == '\n' {
		lx.line++
		lx.column = 1
	} else {
		lx.column++
	}
	lx.pos = lx.next
	lx.next += size
	lx.ch = r
}

// peek returns the rune immediately after ch without consuming anything.
func (lx *Lexer) peek() rune {
	if lx.next >= len(lx.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.next:])
	return r
}

// peekString reports whether the upcoming bytes (starting at ch) equal s.
func (lx *Lexer) peekString(s string) bool {
	return strings.HasPrefix(lx.src[lx.pos:], s)
}

// atLineStart reports whether the cursor sits at column 1 of a fresh line,
// the point at which indentation must be (re)measured.
func (lx *Lexer) atLineStart() bool {
	return lx.column == 1 || lx.pos == 0
}

// Tokenize scans source in full and returns its token sequence, ending
// with exactly one EndOfInput token. This is the sole entry point of the
// lexer package.
func Tokenize(source string) ([]token.Token, error) {
	lx := New(source)
	var out []token.Token

	for {
		if lx.mode() == ModeText && lx.atLineStart() {
			indentToks, err := lx.measureIndent()
			if err != nil {
				return nil, err
			}
			out = append(out, indentToks...)
		}

		// Outside Text mode, the scan routine itself must see end of input
		// so that a missing `>>` or `]]` is reported.
		if lx.ch == 0 && lx.mode() == ModeText {
			break
		}

		tok, err := lx.nextToken()
		if err != nil {
			return nil, err
		}
		if tok != nil {
			out = append(out, *tok)
		}
	}

	for len(lx.indent) > 1 {
		lx.indent = lx.indent[:len(lx.indent)-1]
		out = append(out, token.NewAt(token.Dedent, "", lx.line, lx.column))
	}
	out = append(out, token.NewAt(token.EndOfInput, "", lx.line, lx.column))
	return out, nil
}

// nextToken dispatches to the scan routine for the current mode. It
// returns a nil token (with nil error) when a blank line or skipped
// whitespace produced nothing to emit.
func (lx *Lexer) nextToken() (*token.Token, error) {
	switch lx.mode() {
	case ModeText:
		return lx.scanText()
	case ModeCommand:
		return lx.scanCommand()
	case ModeOptionLink, ModeOptionShortcut:
		return lx.scanOption()
	default:
		return nil, nerr.New(nerr.LexError, lx.line, lx.column, "internal: unknown lexer mode")
	}
}

// measureIndent skips blank/whitespace-only lines (which emit no
// Indent/Dedent), measures the column of the first non-whitespace
// character on the next real line, and emits the Indent or Dedent tokens
// needed to reconcile that column against the indent stack.
func (lx *Lexer) measureIndent() ([]token.Token, error) {
	for {
		width, blank := lx.measureLineIndentWidth()
		if blank {
			if lx.ch == 0 {
				return nil, nil
			}
			continue
		}
		return lx.reconcileIndent(width)
	}
}

// measureLineIndentWidth consumes the leading whitespace of the current
// line and reports its width. blank is true when the line contains only
// whitespace (or is the final, empty line at EOF), in which case no
// indentation event should be produced for it and the caller should move
// on to the next line.
func (lx *Lexer) measureLineIndentWidth() (width int, blank bool) {
	for lx.ch == ' ' || lx.ch == '\t' {
		width++
		lx.advance()
	}
	if lx.ch == '\n' {
		lx.advance()
		return 0, true
	}
	if lx.ch == 0 {
		return 0, true
	}
	return width, false
}

// reconcileIndent pushes or pops the indent stack to match width, emitting
// one Indent or Dedent token per level crossed.
func (lx *Lexer) reconcileIndent(width int) ([]token.Token, error) {
	top := lx.indent[len(lx.indent)-1]

	if width > top {
		lx.indent = append(lx.indent, width)
		return []token.Token{token.NewAt(token.Indent, "", lx.line, lx.column)}, nil
	}

	var out []token.Token
	for width < lx.indent[len(lx.indent)-1] {
		lx.indent = lx.indent[:len(lx.indent)-1]
		out = append(out, token.NewAt(token.Dedent, "", lx.line, lx.column))
	}
	if lx.indent[len(lx.indent)-1] != width {
		return nil, nerr.New(nerr.IndentMismatch, lx.line, lx.column, "inconsistent indentation")
	}
	return out, nil
}

// skipInlineWhitespace consumes spaces and tabs (but not newlines) ahead
// of the cursor. Command mode uses this between tokens (scanOption skips
// the same characters with its own loop); a Text run's interior whitespace
// is significant and is never skipped.
func (lx *Lexer) skipInlineWhitespace() {
	for lx.ch == ' ' || lx.ch == '\t' {
		lx.advance()
	}
}

func isLetter(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentChar(r rune) bool {
	return isLetter(r) || isDigit(r)
}
