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
	"github.com/fhackett/infix/pkg/util/collection/stream"
)

// Candidate is one legal rendering of a tree, along with whether any tuple
// within it was rendered without its parentheses.  That flag predicts parse
// failure under a configuration which mandates tuple parenthesisation.
type Candidate struct {
	Text rope.Rope
	// TupleParensOmitted indicates some tuple in Text lacks parentheses.
	TupleParensOmitted bool
}

func text(s string) Candidate {
	return Candidate{rope.Leaf(s), false}
}

// Concat joins two candidates, with the omission flag of either tainting the
// whole.
func (p Candidate) Concat(other Candidate) Candidate {
	return Candidate{
		p.Text.Concat(other.Text),
		p.TupleParensOmitted || other.TupleParensOmitted,
	}
}

// ParensOmitted marks this candidate as containing an unparenthesised tuple.
func (p Candidate) ParensOmitted() Candidate {
	return Candidate{p.Text, true}
}

// cat builds the lazy cross product of two candidate streams, concatenating
// every prefix with every suffix.
func cat(lhs stream.Stream[Candidate], rhs stream.Stream[Candidate]) stream.Stream[Candidate] {
	return stream.FlatMap(lhs, func(prefix Candidate) stream.Stream[Candidate] {
		return stream.Map(rhs, func(suffix Candidate) Candidate {
			return prefix.Concat(suffix)
		})
	})
}

func catAll(streams ...stream.Stream[Candidate]) stream.Stream[Candidate] {
	res := stream.Unit(text(""))
	//
	for _, s := range streams {
		res = cat(res, s)
	}
	//
	return res
}

// GroupPrecedence tracks how tightly the surrounding context binds, which
// decides whether a subexpression may legally drop its parentheses.  Lower
// levels bind more loosely; the associativity flag permits an operator to
// chain unparenthesised at its own level.
type GroupPrecedence struct {
	Level      int
	AllowAssoc bool
}

// Precedence levels for each operator, with the root context binding loosest
// of all.
const (
	tupleIdxLevel = 0
	mulDivLevel   = -1
	addSubLevel   = -2
	groupLevel    = -3
	rootLevel     = -4
)

// Root returns the context in which a whole statement's expression renders.
func Root() GroupPrecedence {
	return GroupPrecedence{Level: rootLevel}
}

// WithLevel returns this context at a different precedence level.
func (p GroupPrecedence) WithLevel(level int) GroupPrecedence {
	return GroupPrecedence{level, p.AllowAssoc}
}

// WithAssoc returns this context with associative chaining permitted or not.
func (p GroupPrecedence) WithAssoc(allow bool) GroupPrecedence {
	return GroupPrecedence{p.Level, allow}
}

// wrapGroup renders an operator of the given level within this context.
// When the context binds loosely enough, both the bare form and a
// redundantly parenthesised form are produced (bare first); otherwise
// parentheses are mandatory and only one form results.
func (p GroupPrecedence) wrapGroup(level int,
	fn func(GroupPrecedence) stream.Stream[Candidate]) stream.Stream[Candidate] {
	grouped := func() stream.Stream[Candidate] {
		return catAll(
			stream.Unit(text("(")),
			fn(GroupPrecedence{Level: level}),
			stream.Unit(text(")")))
	}
	//
	if (level >= p.Level && p.AllowAssoc) || level > p.Level {
		return fn(GroupPrecedence{level, false}).ConcatFn(grouped)
	}
	//
	return grouped()
}

// ExpressionStrings enumerates every legal rendering of an expression within
// the given context.  Each independent choice point (operand
// parenthesisation, tuple paren omission, trailing commas) forks the stream,
// so the result is the full cross product of all of them.
func ExpressionStrings(precedence GroupPrecedence, expression *infix.Node) stream.Stream[Candidate] {
	if expression.Kind != infix.EXPRESSION {
		panic(fmt.Sprintf("malformed tree (rendering %s as expression)", expression.Kind))
	}
	//
	expression = expression.Children[0]
	if expression.Kind == infix.REF {
		expression = expression.Children[0]
	}
	//
	switch expression.Kind {
	case infix.INT, infix.FLOAT, infix.STRING, infix.IDENT:
		return stream.Unit(text(expression.Text))
	case infix.TUPLE_IDX:
		return binaryStrings(precedence, tupleIdxLevel, expression)
	case infix.MULTIPLY, infix.DIVIDE:
		return binaryStrings(precedence, mulDivLevel, expression)
	case infix.ADD, infix.SUBTRACT:
		return binaryStrings(precedence, addSubLevel, expression)
	case infix.TUPLE:
		return tupleStrings(precedence, expression)
	case infix.APPEND:
		return catAll(
			stream.Unit(text("append(")),
			commaSeparated(expression.Children,
				precedence.WithLevel(groupLevel).WithAssoc(false)),
			stream.Unit(text(")")))
	}
	//
	panic(fmt.Sprintf("malformed tree (unexpected %s node)", expression.Kind))
}

// Binary operators permit associative chaining on the left only, since the
// grammar folds them left to right.
func binaryStrings(precedence GroupPrecedence, level int, expression *infix.Node) stream.Stream[Candidate] {
	return precedence.wrapGroup(level, func(inner GroupPrecedence) stream.Stream[Candidate] {
		return catAll(
			ExpressionStrings(inner.WithAssoc(true), expression.Children[0]),
			stream.Unit(text(" "+expression.Kind.Glyph()+" ")),
			ExpressionStrings(inner.WithAssoc(false), expression.Children[1]))
	})
}

func tupleStrings(precedence GroupPrecedence, expression *infix.Node) stream.Stream[Candidate] {
	children := expression.Children
	// Empty and singleton tuples always need their parentheses, since the
	// trailing comma alone does not delimit them.
	var omitted stream.Stream[bool]
	//
	if len(children) > 1 &&
		((groupLevel >= precedence.Level && precedence.AllowAssoc) ||
			groupLevel > precedence.Level) {
		omitted = stream.Unit(true).ConcatFn(func() stream.Stream[bool] {
			return stream.Unit(false)
		})
	} else {
		omitted = stream.Unit(false)
	}
	//
	return stream.FlatMap(omitted, func(omit bool) stream.Stream[Candidate] {
		body := commaSeparated(children,
			precedence.WithLevel(groupLevel).WithAssoc(false))
		//
		if omit {
			return stream.Map(body, func(c Candidate) Candidate {
				return c.ParensOmitted()
			})
		}
		//
		return catAll(stream.Unit(text("(")), body, stream.Unit(text(")")))
	})
}

// commaSeparated renders tuple or append contents.  Empty and singleton
// bodies take a mandatory trailing comma; longer ones fork on it, with the
// comma-free forms enumerated first.
func commaSeparated(children []*infix.Node, precedence GroupPrecedence) stream.Stream[Candidate] {
	res := stream.Unit(text(""))
	//
	for i, child := range children {
		if i != 0 {
			res = cat(res, stream.Unit(text(", ")))
		}
		//
		res = cat(res, ExpressionStrings(precedence, child))
	}
	//
	if len(children) < 2 {
		return cat(res, stream.Unit(text(",")))
	}
	//
	base := res
	//
	return base.ConcatFn(func() stream.Stream[Candidate] {
		return cat(base, stream.Unit(text(",")))
	})
}

// AssignStrings enumerates every rendering of an assignment statement.
func AssignStrings(assign *infix.Node) stream.Stream[Candidate] {
	if assign.Kind != infix.ASSIGN {
		panic(fmt.Sprintf("malformed tree (rendering %s as assign)", assign.Kind))
	}
	//
	return catAll(
		stream.Unit(text(assign.Children[0].Text+" = ")),
		ExpressionStrings(Root(), assign.Children[1]),
		stream.Unit(text(";\n")))
}

// CalculationStrings enumerates every rendering of a whole calculation, the
// cross product of the renderings of its statements.
func CalculationStrings(calculation *infix.Node) stream.Stream[Candidate] {
	res := stream.Unit(text(""))
	//
	for _, statement := range calculation.Children {
		res = cat(res, AssignStrings(statement))
	}
	//
	return res
}
