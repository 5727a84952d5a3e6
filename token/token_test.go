package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		Name     string
		Input    string
		Expected Kind
		Ok       bool
	}{
		{"if", "if", If, true},
		{"elseif", "elseif", ElseIf, true},
		{"else", "else", Else, true},
		{"endif", "endif", EndIf, true},
		{"set", "set", Set, true},
		{"true", "true", True, true},
		{"false", "false", False, true},
		{"null", "null", Null, true},
		{"not a keyword", "wait", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			kind, ok := LookupKeyword(tc.Input)
			assert.Equal(t, tc.Ok, ok)
			if tc.Ok {
				assert.Equal(t, tc.Expected, kind)
			}
		})
	}
}

func TestToken_Is(t *testing.T) {
	tok := NewAt(Number, "42", 3, 7)
	assert.True(t, tok.Is(Number))
	assert.False(t, tok.Is(String))
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "NUMBER(42) at 3:7", NewAt(Number, "42", 3, 7).String())
	assert.Equal(t, "EOF at 1:1", NewAt(EndOfInput, "", 1, 1).String())
}

func TestIsAssignmentOperator(t *testing.T) {
	for _, kind := range []Kind{Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign} {
		assert.True(t, IsAssignmentOperator(kind))
	}
	assert.False(t, IsAssignmentOperator(Plus))
	assert.False(t, IsAssignmentOperator(EqualEqual))
}
