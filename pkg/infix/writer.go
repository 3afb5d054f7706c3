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
	"fmt"

	"github.com/fhackett/infix/pkg/util/collection/rope"
)

// Write renders a tree in canonical form: fully parenthesised, every tuple
// and append carrying a trailing comma.  Two distinct trees never write to
// the same text, which makes the output usable as a structural fingerprint.
func Write(node *Node) (string, error) {
	text, err := write(node)
	if err != nil {
		return "", err
	}
	//
	return text.String(), nil
}

func write(node *Node) (rope.Rope, error) {
	switch node.Kind {
	case CALCULATION:
		return writeSeq(node.Children, rope.Leaf(""), rope.Leaf("\n"))
	case ASSIGN:
		return writeAssign(node)
	case OUTPUT:
		return writeOutput(node)
	case EXPRESSION:
		return write(node.Children[0])
	case REF:
		return write(node.Children[0])
	case IDENT, INT, FLOAT:
		return rope.Leaf(node.Text), nil
	case STRING:
		quoted := rope.Leaf("\"").Concat(rope.Leaf(node.Text))
		return quoted.Concat(rope.Leaf("\"")), nil
	case TUPLE:
		return writeGroup(node, rope.Leaf("("))
	case APPEND:
		return writeGroup(node, rope.Leaf("append("))
	case TUPLE_IDX, ADD, SUBTRACT, MULTIPLY, DIVIDE:
		return writeBinary(node)
	}
	//
	return rope.Rope{}, fmt.Errorf("malformed tree (unexpected %s node)", node.Kind)
}

func writeAssign(node *Node) (rope.Rope, error) {
	name, err := write(node.Children[0])
	if err != nil {
		return rope.Rope{}, err
	}
	//
	value, err := write(node.Children[1])
	if err != nil {
		return rope.Rope{}, err
	}
	//
	text := name.Concat(rope.Leaf(" = ")).Concat(value)
	//
	return text.Concat(rope.Leaf(";")), nil
}

func writeOutput(node *Node) (rope.Rope, error) {
	label, err := write(node.Children[0])
	if err != nil {
		return rope.Rope{}, err
	}
	//
	value, err := write(node.Children[1])
	if err != nil {
		return rope.Rope{}, err
	}
	//
	text := rope.Leaf("print ").Concat(label).Concat(rope.Leaf(" ")).Concat(value)
	//
	return text.Concat(rope.Leaf(";")), nil
}

// Binary operators write as "(lhs op rhs)", including tuple indexing which
// writes as "(lhs . rhs)".
func writeBinary(node *Node) (rope.Rope, error) {
	lhs, err := write(node.Children[0])
	if err != nil {
		return rope.Rope{}, err
	}
	//
	rhs, err := write(node.Children[1])
	if err != nil {
		return rope.Rope{}, err
	}
	//
	glyph := rope.Leaf(" ").Concat(rope.Leaf(node.Kind.Glyph())).Concat(rope.Leaf(" "))
	text := rope.Leaf("(").Concat(lhs).Concat(glyph).Concat(rhs)
	//
	return text.Concat(rope.Leaf(")")), nil
}

// Tuples and appends write with an unconditional trailing comma, so that the
// empty, singleton and general cases all share one shape: "(,)", "(1,)",
// "(1, 2,)".
func writeGroup(node *Node, open rope.Rope) (rope.Rope, error) {
	if len(node.Children) == 0 {
		return open.Concat(rope.Leaf(",)")), nil
	}
	//
	body, err := writeSeq(node.Children, rope.Leaf(" "), rope.Leaf(","))
	if err != nil {
		return rope.Rope{}, err
	}
	//
	return open.Concat(body).Concat(rope.Leaf(")")), nil
}

// writeSeq joins the written forms of nodes, placing sep before every
// element but the first, and term after every element.
func writeSeq(nodes []*Node, sep rope.Rope, term rope.Rope) (rope.Rope, error) {
	var text rope.Rope
	//
	for i, node := range nodes {
		written, err := write(node)
		if err != nil {
			return rope.Rope{}, err
		}
		//
		if i != 0 {
			text = text.Concat(sep)
		}
		//
		text = text.Concat(written).Concat(term)
	}
	//
	return text, nil
}
