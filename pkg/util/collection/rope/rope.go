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
package rope

import (
	"strings"

	"github.com/fhackett/infix/pkg/util/collection/stack"
)

// Rope is an immutable string representation supporting O(1) concatenation.
// A rope is either a leaf holding a flat string, or the concatenation of two
// sub-ropes.  Sub-ropes are shared structurally between larger ropes and never
// mutated, so building millions of slightly different candidate strings costs
// only a node per concatenation.  Materialisation is deferred until String()
// is called.
type Rope struct {
	// Leaf text (only meaningful when lhs == nil).
	text string
	// Children (either both nil, or both non-nil).
	lhs *Rope
	rhs *Rope
}

// Leaf constructs a rope holding a single flat string.
func Leaf(text string) Rope {
	return Rope{text, nil, nil}
}

// Concat constructs the concatenation of two ropes without copying either.
func (p Rope) Concat(other Rope) Rope {
	return Rope{"", &p, &other}
}

// String materialises the rope into a flat string, visiting leaves in order.
// The traversal uses an explicit stack since rope depth is unbounded (deep
// enumerations routinely build ropes far deeper than a safe call stack).
func (p Rope) String() string {
	var builder strings.Builder
	//
	worklist := stack.NewStack[*Rope]()
	worklist.Push(&p)
	//
	for !worklist.IsEmpty() {
		node := worklist.Pop()
		//
		if node.lhs != nil {
			// Left child materialises first, so it must pop first.
			worklist.PushReversed([]*Rope{node.lhs, node.rhs})
		} else {
			builder.WriteString(node.text)
		}
	}
	//
	return builder.String()
}
