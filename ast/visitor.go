package ast

// Visitor is the double-dispatch traversal contract: each method
// corresponds to exactly one concrete AST type, and traversal order is
// document order.
//
// A Visitor implementation is responsible for recursing into children
// itself (by calling Accept on them) if it wants a full-tree walk.
// Accept only dispatches one level; Walk below does the recursion for
// callers that just want every node visited.
type Visitor interface {
	VisitNode(n *Node)

	VisitLine(s *LineStatement)
	VisitBlock(s *Block)
	VisitIf(s *IfStatement)
	VisitOption(s *OptionStatement)
	VisitShortcutGroup(s *ShortcutOptionGroup)
	VisitAssignment(s *AssignmentStatement)
	VisitCustomCommand(s *CustomCommand)

	VisitValue(e *Value)
	VisitCompound(e *Compound)
	VisitCall(e *Call)
}

// Walk performs a full, document-order traversal of n and every statement,
// clause, and expression beneath it, invoking v's Visit methods along the
// way. It is the convenience entry point callers reach for instead of
// hand-writing the recursion every Visitor implementation would otherwise
// have to duplicate.
func Walk(v Visitor, n *Node) {
	n.Accept(v)
	walkStatements(v, n.Statements)
}

func walkStatements(v Visitor, stmts []Statement) {
	for _, s := range stmts {
		walkStatement(v, s)
	}
}

func walkStatement(v Visitor, s Statement) {
	s.Accept(v)
	switch node := s.(type) {
	case *LineStatement:
		// leaf
	case *Block:
		walkStatements(v, node.Statements)
	case *IfStatement:
		for _, clause := range node.Clauses {
			if clause.Expression != nil {
				walkExpression(v, clause.Expression)
			}
			walkStatements(v, clause.Statements)
		}
	case *OptionStatement:
		// leaf
	case *ShortcutOptionGroup:
		for _, opt := range node.Options {
			if opt.Condition != nil {
				walkExpression(v, opt.Condition)
			}
			if opt.Body != nil {
				Walk(v, opt.Body)
			}
		}
		if node.Epilogue != nil {
			Walk(v, node.Epilogue)
		}
	case *AssignmentStatement:
		walkExpression(v, node.Value)
	case *CustomCommand:
		// leaf
	}
}

func walkExpression(v Visitor, e Expression) {
	e.Accept(v)
	switch expr := e.(type) {
	case *Value:
		// leaf
	case *Compound:
		if expr.LHS != nil {
			walkExpression(v, expr.LHS)
		}
		walkExpression(v, expr.RHS)
	case *Call:
		for _, arg := range expr.Args {
			walkExpression(v, arg)
		}
	}
}
