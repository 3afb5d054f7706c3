// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package infix

import (
	"strings"
)

// Kind identifies the variant of an abstract syntax tree node.
type Kind uint8

// CALCULATION is the root node: an ordered sequence of assignments and
// outputs.
const CALCULATION Kind = 0

// ASSIGN binds a name to an expression.  Children: [IDENT, EXPRESSION].
const ASSIGN Kind = 1

// OUTPUT prints a labelled expression.  Children: [STRING, EXPRESSION].
const OUTPUT Kind = 2

// EXPRESSION wraps exactly one operator, literal or reference node.  The
// wrapping is structural rather than semantic, but it is part of tree
// identity and must survive a round trip through the concrete syntax.
const EXPRESSION Kind = 3

// REF is a reference to a bound name.  Children: [IDENT].
const REF Kind = 4

// IDENT is an identifier; its text is the name.
const IDENT Kind = 5

// INT is an integer literal; its text is the lexical form.
const INT Kind = 6

// FLOAT is a floating-point literal; its text is the lexical form.
const FLOAT Kind = 7

// STRING is a string literal; its text includes the enclosing quotes.
const STRING Kind = 8

// TUPLE is a tuple literal with zero or more EXPRESSION children.
const TUPLE Kind = 9

// APPEND concatenates zero or more tuples; EXPRESSION children.
const APPEND Kind = 10

// TUPLE_IDX selects an element of a tuple.  Children: [EXPRESSION, EXPRESSION].
const TUPLE_IDX Kind = 11

// ADD is binary addition.  Children: [EXPRESSION, EXPRESSION].
const ADD Kind = 12

// SUBTRACT is binary subtraction.  Children: [EXPRESSION, EXPRESSION].
const SUBTRACT Kind = 13

// MULTIPLY is binary multiplication.  Children: [EXPRESSION, EXPRESSION].
const MULTIPLY Kind = 14

// DIVIDE is binary division.  Children: [EXPRESSION, EXPRESSION].
const DIVIDE Kind = 15

var kindNames = []string{
	"calculation", "assign", "output", "expression", "ref", "ident",
	"int", "float", "string", "tuple", "append", "tupleidx",
	"add", "subtract", "multiply", "divide",
}

// String returns the printable name of this kind.
func (k Kind) String() string {
	return kindNames[k]
}

// Glyph returns the lexical operator text for a binary operator kind.
func (k Kind) Glyph() string {
	switch k {
	case ADD:
		return "+"
	case SUBTRACT:
		return "-"
	case MULTIPLY:
		return "*"
	case DIVIDE:
		return "/"
	case TUPLE_IDX:
		return "."
	}
	//
	panic("kind has no operator glyph")
}

// Node is a uniform tagged tree node.  The meaning of Text and Children
// depends on Kind (see the kind constants).  Nodes are built bottom-up and,
// once handed to another component, treated as immutable apart from scope
// resolution (see BuildScopes).
type Node struct {
	// Kind of this node.
	Kind Kind
	// Lexical payload: literal text, identifier name, or operator glyph.
	Text string
	// Child nodes, in syntactic order.
	Children []*Node
	// Assignment this reference resolves to (REF nodes only).  Set by
	// BuildScopes and ignored by structural equality.
	binding *Node
}

// NewNode constructs a fresh node of the given kind.
func NewNode(kind Kind, text string, children ...*Node) *Node {
	return &Node{kind, text, children, nil}
}

// NewInt constructs an integer literal from its lexical form.
func NewInt(text string) *Node {
	return NewNode(INT, text)
}

// NewFloat constructs a float literal from its lexical form.
func NewFloat(text string) *Node {
	return NewNode(FLOAT, text)
}

// NewString constructs a string literal (text includes quotes).
func NewString(text string) *Node {
	return NewNode(STRING, text)
}

// NewIdent constructs an identifier node.
func NewIdent(name string) *Node {
	return NewNode(IDENT, name)
}

// NewRef constructs a reference to the given name.
func NewRef(name string) *Node {
	return NewNode(REF, "", NewIdent(name))
}

// NewExpression wraps a single operator, literal or reference node.
func NewExpression(child *Node) *Node {
	return NewNode(EXPRESSION, "", child)
}

// NewBinary constructs a binary operator node over two expression operands,
// recording the operator glyph as its text.
func NewBinary(kind Kind, lhs *Node, rhs *Node) *Node {
	return NewNode(kind, kind.Glyph(), lhs, rhs)
}

// NewTuple constructs a tuple literal over zero or more expressions.
func NewTuple(elements ...*Node) *Node {
	return NewNode(TUPLE, "", elements...)
}

// NewAppend constructs an append over zero or more expressions.
func NewAppend(elements ...*Node) *Node {
	return NewNode(APPEND, "", elements...)
}

// NewAssign binds a name to an expression.
func NewAssign(name string, value *Node) *Node {
	return NewNode(ASSIGN, "", NewIdent(name), value)
}

// NewOutput prints a labelled expression.
func NewOutput(label string, value *Node) *Node {
	return NewNode(OUTPUT, "", NewString(label), value)
}

// NewCalculation constructs the root node over a sequence of statements.
func NewCalculation(statements ...*Node) *Node {
	return NewNode(CALCULATION, "", statements...)
}

// Clone produces a deep copy of this node, sharing nothing with the original.
// Scope bindings are not carried over; they must be rebuilt on the clone.
func (p *Node) Clone() *Node {
	children := make([]*Node, len(p.Children))
	//
	for i, child := range p.Children {
		children[i] = child.Clone()
	}
	//
	return &Node{p.Kind, p.Text, children, nil}
}

// Equal determines whether two trees are structurally identical: same kinds,
// same texts, same shapes.  Scope bindings are ignored.
func (p *Node) Equal(other *Node) bool {
	if other == nil || p.Kind != other.Kind || p.Text != other.Text ||
		len(p.Children) != len(other.Children) {
		return false
	}
	//
	for i, child := range p.Children {
		if !child.Equal(other.Children[i]) {
			return false
		}
	}
	//
	return true
}

// HasTupleOps determines whether this tree contains a tuple literal, append
// or tuple index anywhere within it.
func (p *Node) HasTupleOps() bool {
	if p.Kind == TUPLE || p.Kind == APPEND || p.Kind == TUPLE_IDX {
		return true
	}
	//
	for _, child := range p.Children {
		if child.HasTupleOps() {
			return true
		}
	}
	//
	return false
}

// Binding returns the assignment a resolved REF node refers to, or nil.
func (p *Node) Binding() *Node {
	return p.binding
}

// String produces an indented, lisp-style dump of this tree, suitable for
// diagnostics and recorded test fixtures.
func (p *Node) String() string {
	var builder strings.Builder
	//
	p.dump(&builder, 0)
	//
	return builder.String()
}

func (p *Node) dump(builder *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		builder.WriteString("  ")
	}
	//
	builder.WriteString("(")
	builder.WriteString(p.Kind.String())
	//
	if p.Text != "" {
		builder.WriteString(" ")
		builder.WriteString(p.Text)
	}
	//
	for _, child := range p.Children {
		builder.WriteString("\n")
		child.dump(builder, depth+1)
	}
	//
	builder.WriteString(")")
}
