package parser

import (
	"github.com/nandinimehta/narrata/ast"
	"github.com/nandinimehta/narrata/token"
)

// associativity names an operator's associativity for precedence climbing.
type associativity int

const (
	leftAssoc associativity = iota
	rightAssoc
)

// operatorInfo is the `{precedence, associativity, arity}` triple every
// operator kind carries. Encoding it as a constant lookup table, keyed by
// token.Kind, keeps the precedence-climbing loop free of a long switch.
type operatorInfo struct {
	precedence int
	assoc      associativity
	arity      int
	category   ast.OperatorCategory
}

// binaryOperators is the table for infix operators (arity 2). Unary `!`
// and `-` are handled separately in parseUnary, since they never compete
// for a place in this table's left-associative chain.
var binaryOperators = map[token.Kind]operatorInfo{
	token.Star:  {20, leftAssoc, 2, ast.CategoryArithmetic},
	token.Slash: {20, leftAssoc, 2, ast.CategoryArithmetic},

	token.Plus:  {15, leftAssoc, 2, ast.CategoryArithmetic},
	token.Minus: {15, leftAssoc, 2, ast.CategoryArithmetic},

	token.Less:         {10, leftAssoc, 2, ast.CategoryComparison},
	token.LessEqual:    {10, leftAssoc, 2, ast.CategoryComparison},
	token.Greater:      {10, leftAssoc, 2, ast.CategoryComparison},
	token.GreaterEqual: {10, leftAssoc, 2, ast.CategoryComparison},

	token.EqualEqual: {5, leftAssoc, 2, ast.CategoryComparison},
	token.BangEqual:  {5, leftAssoc, 2, ast.CategoryComparison},

	token.AndAnd: {4, leftAssoc, 2, ast.CategoryLogical},
	token.OrOr:   {3, leftAssoc, 2, ast.CategoryLogical},
	token.Caret:  {2, leftAssoc, 2, ast.CategoryLogical},
}

// unaryPrecedence is the precedence unary `!`/`-` bind their operand at:
// 25, right-associative, arity 1.
const unaryPrecedence = 25

var unaryOperators = map[token.Kind]ast.OperatorCategory{
	token.Bang:  ast.CategoryLogical,
	token.Minus: ast.CategoryArithmetic,
}
