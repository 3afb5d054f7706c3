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

import "fmt"

// BuildScopes resolves every reference in a calculation to the assignment
// which defines it, recording the resolution on the REF node itself.  Names
// obey strict definition-before-use ordering, and a later assignment to the
// same name shadows any earlier one.  Any references which cannot be
// resolved are reported as errors.
func BuildScopes(root *Node) []error {
	var (
		errs  []error
		scope = make(map[string]*Node)
	)
	//
	if root.Kind != CALCULATION {
		return []error{fmt.Errorf("malformed tree (expected calculation, got %s)", root.Kind)}
	}
	//
	for _, stmt := range root.Children {
		switch stmt.Kind {
		case ASSIGN:
			name := stmt.Children[0]
			// resolve the value before the name comes into scope, so that
			// "x = x + 1;" only sees an earlier x.
			errs = append(errs, resolveRefs(stmt.Children[1], scope)...)
			scope[name.Text] = stmt
		case OUTPUT:
			errs = append(errs, resolveRefs(stmt.Children[1], scope)...)
		default:
			errs = append(errs, fmt.Errorf("malformed tree (unexpected %s statement)", stmt.Kind))
		}
	}
	//
	return errs
}

func resolveRefs(node *Node, scope map[string]*Node) []error {
	if node.Kind == REF {
		name := node.Children[0].Text
		//
		if def, ok := scope[name]; ok {
			node.binding = def
			return nil
		}
		//
		return []error{fmt.Errorf("undefined variable %q", name)}
	}
	//
	var errs []error
	//
	for _, child := range node.Children {
		errs = append(errs, resolveRefs(child, scope)...)
	}
	//
	return errs
}
