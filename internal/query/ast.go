// Package query parses boolean search queries into a small AST and
// renders them back to a canonical string form, grounded on
// original_source/src/query_parser.cpp and its header.
package query

import "strings"

// NodeType tags which concrete node a Node is.
type NodeType int

const (
	Term NodeType = iota
	And
	Or
	Not
)

// Node is one AST node. Only the fields relevant to its Type are
// populated: TermValue for Term, Operand for Not, Operands for And/Or.
type Node struct {
	Type      NodeType
	TermValue string
	Operand   *Node
	Operands  []*Node
}

// String renders the AST in the canonical debug form the original
// implementation uses ("AND(a, b)", "NOT(a)", bare term for Term).
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case Term:
		return n.TermValue
	case Not:
		return "NOT(" + n.Operand.String() + ")"
	case And:
		return joinOperands("AND", n.Operands)
	case Or:
		return joinOperands("OR", n.Operands)
	default:
		return ""
	}
}

func joinOperands(name string, operands []*Node) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, op := range operands {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(op.String())
	}
	b.WriteByte(')')
	return b.String()
}
