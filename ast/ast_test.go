package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nandinimehta/narrata/token"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		Name  string
		Value *Value
		Want  string
	}{
		{"number", &Value{Kind: ValueNumber, Number: 42}, "42"},
		{"variable", &Value{Kind: ValueVariable, Name: "gold"}, "$gold"},
		{"string", &Value{Kind: ValueString, Literal: "hi"}, `"hi"`},
		{"bool true", &Value{Kind: ValueBool, Bool: true}, "true"},
		{"bool false", &Value{Kind: ValueBool, Bool: false}, "false"},
		{"null", &Value{Kind: ValueNull}, "null"},
	}
	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, tc.Value.String())
		})
	}
}

func TestCompound_String(t *testing.T) {
	sum := &Compound{
		LHS: &Value{Kind: ValueNumber, Number: 1},
		Op:  Operator{Token: token.Plus, Category: CategoryArithmetic},
		RHS: &Value{Kind: ValueNumber, Number: 2},
	}
	assert.Equal(t, "(1 + 2)", sum.String())

	neg := &Compound{
		Op: Operator{Token: token.Minus, Category: CategoryArithmetic},
		RHS: &Value{Kind: ValueNumber, Number: 5},
	}
	assert.Equal(t, "(-5)", neg.String())
}

func TestCall_String(t *testing.T) {
	call := &Call{
		Callee: "secondsUntil",
		Args:   []Expression{&Value{Kind: ValueNumber, Number: 5}},
	}
	assert.Equal(t, "secondsUntil(5)", call.String())
}

func TestAssignOpFromToken(t *testing.T) {
	tests := []struct {
		Kind token.Kind
		Want AssignOp
		Ok   bool
	}{
		{token.Assign, AssignSet, true},
		{token.PlusAssign, AssignAdd, true},
		{token.MinusAssign, AssignSubtract, true},
		{token.StarAssign, AssignMultiply, true},
		{token.SlashAssign, AssignDivide, true},
		{token.Plus, "", false},
	}
	for _, tc := range tests {
		got, ok := AssignOpFromToken(tc.Kind)
		assert.Equal(t, tc.Ok, ok)
		if tc.Ok {
			assert.Equal(t, tc.Want, got)
		}
	}
}

// fakeVisitor counts how many times each Visit method fires, enough to
// exercise Walk's full document-order traversal.
type fakeVisitor struct {
	nodes, lines, blocks, ifs, options, groups, assigns, commands int
	values, compounds, calls                                     int
}

func (f *fakeVisitor) VisitNode(n *Node)                         { f.nodes++ }
func (f *fakeVisitor) VisitLine(s *LineStatement)                { f.lines++ }
func (f *fakeVisitor) VisitBlock(s *Block)                       { f.blocks++ }
func (f *fakeVisitor) VisitIf(s *IfStatement)                    { f.ifs++ }
func (f *fakeVisitor) VisitOption(s *OptionStatement)            { f.options++ }
func (f *fakeVisitor) VisitShortcutGroup(s *ShortcutOptionGroup) { f.groups++ }
func (f *fakeVisitor) VisitAssignment(s *AssignmentStatement)    { f.assigns++ }
func (f *fakeVisitor) VisitCustomCommand(s *CustomCommand)       { f.commands++ }
func (f *fakeVisitor) VisitValue(e *Value)                       { f.values++ }
func (f *fakeVisitor) VisitCompound(e *Compound)                 { f.compounds++ }
func (f *fakeVisitor) VisitCall(e *Call)                         { f.calls++ }

func TestWalk_VisitsEveryNode(t *testing.T) {
	node := &Node{
		Name: "Start",
		Statements: []Statement{
			&LineStatement{Text: "Hi"},
			&Block{Statements: []Statement{&LineStatement{Text: "Nested"}}},
			&IfStatement{Clauses: []Clause{
				{Expression: &Value{Kind: ValueBool, Bool: true}, Statements: []Statement{&LineStatement{Text: "A"}}},
				{Statements: []Statement{&LineStatement{Text: "B"}}},
			}},
			&AssignmentStatement{Variable: "x", Operator: AssignSet, Value: &Compound{
				Op:  Operator{Token: token.Plus, Category: CategoryArithmetic},
				LHS: &Value{Kind: ValueNumber, Number: 1},
				RHS: &Call{Callee: "f", Args: []Expression{&Value{Kind: ValueNumber, Number: 2}}},
			}},
			&CustomCommand{Command: "wait 1"},
		},
	}

	v := &fakeVisitor{}
	Walk(v, node)

	assert.Equal(t, 1, v.nodes)
	assert.Equal(t, 4, v.lines) // Hi, Nested, A, B
	assert.Equal(t, 1, v.blocks)
	assert.Equal(t, 1, v.ifs)
	assert.Equal(t, 1, v.assigns)
	assert.Equal(t, 1, v.commands)
	assert.Equal(t, 1, v.compounds)
	assert.Equal(t, 1, v.calls)
}

func TestWalk_ShortcutGroupVisitsOptionsAndEpilogue(t *testing.T) {
	node := &Node{
		Name: "Start",
		Statements: []Statement{
			&ShortcutOptionGroup{
				Options: []ShortcutOption{
					{Label: "Yes", Body: &Node{Name: "Start.1", Statements: []Statement{&LineStatement{Text: "ok"}}}},
					{Label: "No"},
				},
				Epilogue: &Node{Name: "Start.Epilogue", Statements: []Statement{&LineStatement{Text: "after"}}},
			},
		},
	}

	v := &fakeVisitor{}
	Walk(v, node)

	assert.Equal(t, 1, v.groups)
	// Start + Start.1 + Start.Epilogue
	assert.Equal(t, 3, v.nodes)
	assert.Equal(t, 2, v.lines)
}
