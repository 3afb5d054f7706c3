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

// Package progspace enumerates the space of valid programs up to a bounded
// expression depth, together with every legal way of rendering each program
// as text.  Enumeration is lazy throughout: nothing beyond the element under
// the consumer's cursor is ever held in memory.
package progspace

import (
	"slices"

	"github.com/fhackett/infix/pkg/infix"
	"github.com/fhackett/infix/pkg/util/collection/stream"
)

// DefaultNames is the pool from which generated calculations draw their
// variables, in assignment order.
var DefaultNames = []string{"foo", "bar", "ping", "bnorg"}

// Scope holds the names in scope at some point of a calculation, in
// lexicographic order.
type Scope []string

// With returns a scope extended with the given name, leaving the receiver
// untouched.  Adding a name already present is a no-op.
func (p Scope) With(name string) Scope {
	index, found := slices.BinarySearch(p, name)
	if found {
		return p
	}
	//
	extended := make(Scope, 0, len(p)+1)
	extended = append(extended, p[:index]...)
	extended = append(extended, name)
	//
	return append(extended, p[index:]...)
}

// Expressions enumerates every expression of exactly the given depth over a
// given scope.  At depth zero these are the atoms: the literals 0 and 1, a
// reference for every name in scope, the empty tuple and the empty append.  At
// depth n+1, every pair of depth-n subtrees is combined under every operator.
// Emitted trees are freshly cloned, so consumers may mutate them freely.
func Expressions(scope Scope, depth uint) stream.Stream[*infix.Node] {
	if depth == 0 {
		return atoms(scope)
	}
	//
	sub := Expressions(scope, depth-1)
	//
	return stream.FlatMap(sub, func(lhs *infix.Node) stream.Stream[*infix.Node] {
		res := stream.Unit(infix.NewExpression(infix.NewTuple(lhs.Clone())))
		res = res.ConcatFn(func() stream.Stream[*infix.Node] {
			return stream.Unit(infix.NewExpression(infix.NewAppend(lhs.Clone())))
		})
		//
		return res.ConcatFn(func() stream.Stream[*infix.Node] {
			return stream.FlatMap(sub, func(rhs *infix.Node) stream.Stream[*infix.Node] {
				return combinations(lhs, rhs)
			})
		})
	})
}

func atoms(scope Scope) stream.Stream[*infix.Node] {
	res := stream.Unit(infix.NewExpression(infix.NewInt("0")))
	res = res.ConcatFn(func() stream.Stream[*infix.Node] {
		return stream.Unit(infix.NewExpression(infix.NewInt("1")))
	})
	//
	for _, name := range scope {
		name := name
		res = res.ConcatFn(func() stream.Stream[*infix.Node] {
			return stream.Unit(infix.NewExpression(infix.NewRef(name)))
		})
	}
	//
	res = res.ConcatFn(func() stream.Stream[*infix.Node] {
		return stream.Unit(infix.NewExpression(infix.NewTuple()))
	})
	//
	return res.ConcatFn(func() stream.Stream[*infix.Node] {
		return stream.Unit(infix.NewExpression(infix.NewAppend()))
	})
}

// combinations yields every two-operand combination of a given pair of
// subtrees, cloning the operands into each so no tree is shared between
// branches.
func combinations(lhs *infix.Node, rhs *infix.Node) stream.Stream[*infix.Node] {
	binary := func(kind infix.Kind) stream.Stream[*infix.Node] {
		return stream.Unit(infix.NewExpression(
			infix.NewBinary(kind, lhs.Clone(), rhs.Clone())))
	}
	//
	res := binary(infix.ADD)
	res = res.ConcatFn(func() stream.Stream[*infix.Node] { return binary(infix.SUBTRACT) })
	res = res.ConcatFn(func() stream.Stream[*infix.Node] { return binary(infix.MULTIPLY) })
	res = res.ConcatFn(func() stream.Stream[*infix.Node] { return binary(infix.DIVIDE) })
	res = res.ConcatFn(func() stream.Stream[*infix.Node] {
		return stream.Unit(infix.NewExpression(infix.NewTuple(lhs.Clone(), rhs.Clone())))
	})
	res = res.ConcatFn(func() stream.Stream[*infix.Node] {
		return stream.Unit(infix.NewExpression(infix.NewAppend(lhs.Clone(), rhs.Clone())))
	})
	//
	return res.ConcatFn(func() stream.Stream[*infix.Node] { return binary(infix.TUPLE_IDX) })
}

// Assignments enumerates every assignment of a depth-bounded expression to
// the given name.
func Assignments(scope Scope, name string, depth uint) stream.Stream[*infix.Node] {
	return stream.Map(Expressions(scope, depth), func(value *infix.Node) *infix.Node {
		return infix.NewAssign(name, value.Clone())
	})
}

// prefix pairs a partially built calculation with the names its assignments
// have brought into scope so far.
type prefix struct {
	calculation *infix.Node
	scope       Scope
}

// Calculations enumerates every calculation assigning one depth-bounded
// expression to each of the given names in order.  Each assignment sees the
// names bound before it, so later expressions range over a larger space than
// earlier ones.
func Calculations(names []string, depth uint) stream.Stream[*infix.Node] {
	acc := stream.Unit(prefix{infix.NewCalculation(), nil})
	//
	for _, name := range names {
		acc = extend(acc, name, depth)
	}
	//
	return stream.Map(acc, func(p prefix) *infix.Node { return p.calculation })
}

func extend(acc stream.Stream[prefix], name string, depth uint) stream.Stream[prefix] {
	return stream.FlatMap(acc, func(p prefix) stream.Stream[prefix] {
		assigns := Assignments(p.scope, name, depth)
		//
		return stream.Map(assigns, func(assign *infix.Node) prefix {
			calculation := p.calculation.Clone()
			calculation.Children = append(calculation.Children, assign)
			//
			return prefix{calculation, p.scope.With(name)}
		})
	})
}
