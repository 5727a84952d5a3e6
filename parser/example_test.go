package parser_test

import (
	"bytes"
	"fmt"

	"github.com/nandinimehta/narrata/ast"
	"github.com/nandinimehta/narrata/parser"
)

// printingVisitor renders a parsed tree as text: a Visitor walking the
// tree into a bytes.Buffer, driven through ast.Walk.
type printingVisitor struct {
	buf bytes.Buffer
}

func (p *printingVisitor) line(format string, args ...any) {
	fmt.Fprintf(&p.buf, format+"\n", args...)
}

func (p *printingVisitor) VisitNode(n *ast.Node) { p.line("Node %s", n.Name) }
func (p *printingVisitor) VisitLine(s *ast.LineStatement) {
	p.line("Line %q", s.Text)
}
func (p *printingVisitor) VisitBlock(s *ast.Block)           { p.line("Block") }
func (p *printingVisitor) VisitIf(s *ast.IfStatement)        { p.line("If (%d clauses)", len(s.Clauses)) }
func (p *printingVisitor) VisitOption(s *ast.OptionStatement) {
	p.line("Option -> %s", s.Destination)
}
func (p *printingVisitor) VisitShortcutGroup(s *ast.ShortcutOptionGroup) {
	p.line("ShortcutGroup (%d options)", len(s.Options))
}
func (p *printingVisitor) VisitAssignment(s *ast.AssignmentStatement) {
	p.line("Assign %s %s ...", s.Variable, s.Operator)
}
func (p *printingVisitor) VisitCustomCommand(s *ast.CustomCommand) {
	p.line("Command %s", s.Command)
}
func (p *printingVisitor) VisitValue(e *ast.Value)       {}
func (p *printingVisitor) VisitCompound(e *ast.Compound) {}
func (p *printingVisitor) VisitCall(e *ast.Call)         {}

// Example demonstrates parsing a small dialogue node and rendering it
// through a Visitor.
func Example() {
	src := "Welcome, traveler.\n" +
		"<<if $metYou == 1>>\n" +
		"    Good to see you again.\n" +
		"<<else>>\n" +
		"    Nice to meet you.\n" +
		"<<endif>>\n"

	node, err := parser.Parse(src)
	if err != nil {
		fmt.Println(err)
		return
	}

	v := &printingVisitor{}
	ast.Walk(v, node)
	fmt.Print(v.buf.String())

	// Output:
	// Node Start
	// Line "Welcome, traveler."
	// If (2 clauses)
	// Line "Good to see you again."
	// Line "Nice to meet you."
}
