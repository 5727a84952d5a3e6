// Package ast defines the abstract syntax tree narrata's parser produces:
// a tagged tree of dialogue nodes, statements, expressions, and options.
// The tree is built once by parser.Parse and is immutable from this
// package's perspective thereafter.
//
// Go has no sum types, so each tagged-union alternative is its own
// exported struct implementing a small marker interface (Statement or
// Expression), rather than a single struct with a discriminant field and
// a dozen optional pointers.
package ast

import (
	"strconv"
	"strings"

	"github.com/nandinimehta/narrata/token"
)

// Element is the base contract every AST entity satisfies: it can accept a
// Visitor, which receives the entity along with access to its attributes
// and its ordered children.
type Element interface {
	Accept(v Visitor)
}

// Statement is the marker interface implemented by each of the seven
// statement payload kinds: LineStatement, Block, IfStatement,
// OptionStatement, ShortcutOptionGroup, CustomCommand, and
// AssignmentStatement.
type Statement interface {
	Element
	isStatement()
}

// Expression is the marker interface implemented by the three expression
// payload kinds: Value (a literal or variable reference), Compound (a
// unary or binary operator application), and Call (a function call, since
// the grammar allows a call wherever a primary operand is expected).
type Expression interface {
	Element
	isExpression()
}

// Node is a named, top-level dialogue unit: an ordered sequence of
// statements. Node names are unique within a parsed file, and a Node
// built from non-empty input is never empty.
type Node struct {
	Name       string
	Statements []Statement
}

// Accept implements Element.
func (n *Node) Accept(v Visitor) { v.VisitNode(n) }

// LineStatement is a single free-form dialogue line.
type LineStatement struct {
	Text string
}

func (*LineStatement) isStatement()        {}
func (s *LineStatement) Accept(v Visitor)  { v.VisitLine(s) }

// Block is a statement sequence bounded by a matched Indent/Dedent pair.
// It may be empty. Block is itself one of the Statement payload kinds,
// not a wrapper around one.
type Block struct {
	Statements []Statement
}

func (*Block) isStatement()       {}
func (b *Block) Accept(v Visitor) { v.VisitBlock(b) }

// Clause is one branch of an IfStatement: an optional condition
// expression plus an ordered body. A nil Expression marks the terminal
// else clause.
type Clause struct {
	Expression Expression
	Statements []Statement
}

// IfStatement holds the clauses of an if/elseif*/else? chain. There is
// always at least one clause, the first clause always has a condition,
// and at most the last clause may lack one.
type IfStatement struct {
	Clauses []Clause
}

func (*IfStatement) isStatement()       {}
func (s *IfStatement) Accept(v Visitor) { v.VisitIf(s) }

// OptionStatement is a link to another dialogue node: `[[label|dest]]` or
// the label-less `[[dest]]`. Label is nil in the second form.
type OptionStatement struct {
	Destination string
	Label       *string
}

func (*OptionStatement) isStatement()       {}
func (s *OptionStatement) Accept(v Visitor) { v.VisitOption(s) }

// ShortcutOption is one `->`-introduced choice inside a
// ShortcutOptionGroup. Condition is nil when the option has no `<<if>>`
// guard; Body is nil when the option has no nested block. When present,
// Body's name is "<enclosingNode>.<1-based index>".
type ShortcutOption struct {
	Label     string
	Condition Expression
	Body      *Node
}

// ShortcutOptionGroup is a contiguous run of `->` options followed by a
// synthetic epilogue node ("<enclosingNode>.Epilogue") that all options
// rejoin to. Parsing a shortcut group consumes the remainder of its
// enclosing node's statement list as that epilogue.
type ShortcutOptionGroup struct {
	Options  []ShortcutOption
	Epilogue *Node
}

func (*ShortcutOptionGroup) isStatement()       {}
func (s *ShortcutOptionGroup) Accept(v Visitor) { v.VisitShortcutGroup(s) }

// AssignOp is one of the five assignment operator spellings a
// AssignmentStatement may use.
type AssignOp string

const (
	AssignSet      AssignOp = "="
	AssignAdd      AssignOp = "+="
	AssignSubtract AssignOp = "-="
	AssignMultiply AssignOp = "*="
	AssignDivide   AssignOp = "/="
)

// AssignOpFromToken maps the lexer's assignment token kinds onto AssignOp.
// It is used by the parser, exported here so both packages share one
// source of truth for the mapping.
func AssignOpFromToken(kind token.Kind) (AssignOp, bool) {
	switch kind {
	case token.Assign:
		return AssignSet, true
	case token.PlusAssign:
		return AssignAdd, true
	case token.MinusAssign:
		return AssignSubtract, true
	case token.StarAssign:
		return AssignMultiply, true
	case token.SlashAssign:
		return AssignDivide, true
	default:
		return "", false
	}
}

// AssignmentStatement is `<<set $var OP expr>>`.
type AssignmentStatement struct {
	Variable string
	Operator AssignOp
	Value    Expression
}

func (*AssignmentStatement) isStatement()       {}
func (s *AssignmentStatement) Accept(v Visitor) { v.VisitAssignment(s) }

// CustomCommand is an opaque `<<...>>` command the parser does not itself
// understand as a keyword, kept for the (external) code generator to
// interpret. Command is rebuilt from the command's tokens joined by single
// spaces, not copied from the source text (see parser.parseCustomCommand).
type CustomCommand struct {
	Command string
}

func (*CustomCommand) isStatement()       {}
func (s *CustomCommand) Accept(v Visitor) { v.VisitCustomCommand(s) }

// ValueKind discriminates the five literal/reference forms a Value may
// hold.
type ValueKind string

const (
	ValueNumber   ValueKind = "Number"
	ValueVariable ValueKind = "Variable"
	ValueString   ValueKind = "String"
	ValueBool     ValueKind = "Bool"
	ValueNull     ValueKind = "Null"
)

// Value is an expression operand: at most one of Number/Name/Literal/Bool
// is meaningful, selected by Kind (none for ValueNull).
type Value struct {
	Kind    ValueKind
	Number  float64
	Name    string // set when Kind == ValueVariable
	Literal string // set when Kind == ValueString
	Bool    bool   // set when Kind == ValueBool
}

func (*Value) isExpression()     {}
func (e *Value) Accept(v Visitor) { v.VisitValue(e) }

// OperatorCategory classifies an Operator by precedence family, purely
// for downstream consumers that want to branch on category rather than
// exact token (e.g. a type checker that treats all comparisons alike).
type OperatorCategory string

const (
	CategoryArithmetic OperatorCategory = "Arithmetic"
	CategoryComparison OperatorCategory = "Comparison"
	CategoryLogical    OperatorCategory = "Logical"
)

// Operator names the operator of a Compound expression. It appears only
// inside Compound.
type Operator struct {
	Token    token.Kind
	Category OperatorCategory
}

// Compound is a unary or binary operator application. LHS is nil for a
// unary operator; binary operators always have both LHS and RHS set.
type Compound struct {
	LHS Expression
	Op  Operator
	RHS Expression
}

func (*Compound) isExpression()      {}
func (e *Compound) Accept(v Visitor) { v.VisitCompound(e) }

// Call is a function-call expression operand, `name(arg, arg, ...)`.
type Call struct {
	Callee string
	Args   []Expression
}

func (*Call) isExpression()     {}
func (e *Call) Accept(v Visitor) { v.VisitCall(e) }

// String renders an expression back to narrata source syntax. Re-emitting
// an AST through String() and re-parsing it yields a structurally equal
// tree.
func (e *Value) String() string {
	switch e.Kind {
	case ValueNumber:
		return strconv.FormatFloat(e.Number, 'f', -1, 64)
	case ValueVariable:
		return "$" + e.Name
	case ValueString:
		escaper := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
		return `"` + escaper.Replace(e.Literal) + `"`
	case ValueBool:
		if e.Bool {
			return "true"
		}
		return "false"
	case ValueNull:
		return "null"
	default:
		return ""
	}
}

// String renders a Compound expression back to source syntax, parenthesized
// to make evaluation order unambiguous on re-parse.
func (e *Compound) String() string {
	if e.LHS == nil {
		return "(" + string(e.Op.Token) + elementString(e.RHS) + ")"
	}
	return "(" + elementString(e.LHS) + " " + string(e.Op.Token) + " " + elementString(e.RHS) + ")"
}

// String renders a Call expression back to source syntax.
func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = elementString(a)
	}
	return e.Callee + "(" + strings.Join(args, ", ") + ")"
}

// elementString renders any Expression via its own String method,
// dispatching on the concrete expression types this package defines.
func elementString(e Expression) string {
	switch v := e.(type) {
	case *Value:
		return v.String()
	case *Compound:
		return v.String()
	case *Call:
		return v.String()
	default:
		return ""
	}
}
