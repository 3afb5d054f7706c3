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
package progspace

import (
	"fmt"

	"github.com/fhackett/infix/pkg/infix"
	"github.com/fhackett/infix/pkg/util/collection/rope"
)

// Canonical renders a tree in its one fully parenthesised, trailing-comma
// form.  This is written independently of the production writer on purpose:
// the two are cross-checked against each other to catch either one drifting.
func Canonical(node *infix.Node) (string, error) {
	text, err := canonical(node)
	if err != nil {
		return "", err
	}
	//
	return text.String(), nil
}

func canonical(node *infix.Node) (rope.Rope, error) {
	var empty rope.Rope
	//
	switch node.Kind {
	case infix.CALCULATION:
		res := rope.Leaf("")
		//
		for _, statement := range node.Children {
			text, err := canonical(statement)
			if err != nil {
				return empty, err
			}
			//
			res = res.Concat(text).Concat(rope.Leaf("\n"))
		}
		//
		return res, nil
	case infix.ASSIGN:
		value, err := canonical(node.Children[1])
		if err != nil {
			return empty, err
		}
		//
		res := rope.Leaf(node.Children[0].Text).Concat(rope.Leaf(" = "))
		//
		return res.Concat(value).Concat(rope.Leaf(";")), nil
	case infix.OUTPUT:
		value, err := canonical(node.Children[1])
		if err != nil {
			return empty, err
		}
		//
		res := rope.Leaf("print \"" + node.Children[0].Text + "\" ")
		//
		return res.Concat(value).Concat(rope.Leaf(";")), nil
	case infix.EXPRESSION, infix.REF:
		return canonical(node.Children[0])
	case infix.IDENT, infix.INT, infix.FLOAT:
		return rope.Leaf(node.Text), nil
	case infix.TUPLE_IDX, infix.ADD, infix.SUBTRACT, infix.MULTIPLY, infix.DIVIDE:
		lhs, err := canonical(node.Children[0])
		if err != nil {
			return empty, err
		}
		//
		rhs, err := canonical(node.Children[1])
		if err != nil {
			return empty, err
		}
		//
		res := rope.Leaf("(").Concat(lhs)
		res = res.Concat(rope.Leaf(" " + node.Kind.Glyph() + " ")).Concat(rhs)
		//
		return res.Concat(rope.Leaf(")")), nil
	case infix.TUPLE:
		return canonicalGroup(node, "(")
	case infix.APPEND:
		return canonicalGroup(node, "append(")
	}
	//
	return empty, fmt.Errorf("malformed tree (unexpected %s node)", node.Kind)
}

func canonicalGroup(node *infix.Node, open string) (rope.Rope, error) {
	res := rope.Leaf(open)
	//
	for i, child := range node.Children {
		text, err := canonical(child)
		if err != nil {
			return rope.Rope{}, err
		}
		//
		if i != 0 {
			res = res.Concat(rope.Leaf(", "))
		}
		//
		res = res.Concat(text)
	}
	//
	return res.Concat(rope.Leaf(",)")), nil
}
