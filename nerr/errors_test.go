package nerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	err := New(LexError, 3, 7, "unterminated string literal")
	assert.Equal(t, "Line 3:7: unterminated string literal", err.Error())
}

func TestNewUnexpected_WithExpectedList(t *testing.T) {
	err := NewUnexpected(2, 4, "PLUS", "NUMBER", "VARIABLE", "(")
	assert.Equal(t, UnexpectedToken, err.Kind)
	assert.Equal(t, "Line 2:4: unexpected token PLUS (expected one of: NUMBER, VARIABLE, ()", err.Error())
}

func TestError_ImplementsErrorInterface(t *testing.T) {
	var err error = New(ParseError, 1, 1, "boom")
	assert.EqualError(t, err, "Line 1:1: boom")
}
