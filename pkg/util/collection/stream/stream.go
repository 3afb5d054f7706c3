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
package stream

// Stream is a lazy, restartable sequence of values produced on demand.  A
// stream is either empty, or holds one realised value along with a deferred
// computation producing the remainder.  Nothing beyond the first value is
// computed until a consumer advances past it, which is what allows streams to
// describe combinatorially large (or unbounded) search spaces.  Generation
// must be deterministic: traversing a freshly obtained stream twice yields the
// same values both times.
type Stream[T any] struct {
	cell *cell[T]
}

type cell[T any] struct {
	value T
	// Deferred producer of the remainder of the stream.
	next func() Stream[T]
}

// Empty constructs a stream with no elements.
func Empty[T any]() Stream[T] {
	return Stream[T]{nil}
}

// Unit constructs a stream holding exactly one element.
func Unit[T any](value T) Stream[T] {
	return Cons(value, Empty[T])
}

// Cons constructs a stream from one realised element and a deferred producer
// of the remainder.  The producer is invoked only when a consumer advances
// past the first element.
func Cons[T any](value T, next func() Stream[T]) Stream[T] {
	return Stream[T]{&cell[T]{value, next}}
}

// NonEmpty checks whether at least one element is available, without forcing
// any further computation.
func (p Stream[T]) NonEmpty() bool {
	return p.cell != nil
}

// Head returns the first element of a non-empty stream.
func (p Stream[T]) Head() T {
	if p.cell == nil {
		panic("head of empty stream")
	}
	//
	return p.cell.value
}

// Tail forces the continuation, producing the remainder of the stream.
func (p Stream[T]) Tail() Stream[T] {
	if p.cell == nil {
		panic("tail of empty stream")
	}
	//
	return p.cell.next()
}

// Concat appends another stream after this one exhausts.
func (p Stream[T]) Concat(other Stream[T]) Stream[T] {
	return p.ConcatFn(func() Stream[T] { return other })
}

// ConcatFn appends a deferred stream after this one exhausts.  The given
// producer is not invoked until a consumer has actually drained this stream.
func (p Stream[T]) ConcatFn(fn func() Stream[T]) Stream[T] {
	if p.cell == nil {
		return fn()
	}
	//
	next := p.cell.next
	//
	return Cons(p.cell.value, func() Stream[T] { return next().ConcatFn(fn) })
}

// Collect drains the stream into a freshly allocated array.
func (p Stream[T]) Collect() []T {
	items := make([]T, 0)
	//
	for it := p; it.NonEmpty(); it = it.Tail() {
		items = append(items, it.Head())
	}
	//
	return items
}

// Map lazily transforms every element of a stream.  The function is applied
// to each element only as it is demanded.  This must be a package-level
// function since Go methods cannot introduce new type parameters.
func Map[S, T any](s Stream[S], fn func(S) T) Stream[T] {
	if s.cell == nil {
		return Empty[T]()
	}
	//
	next := s.cell.next
	//
	return Cons(fn(s.cell.value), func() Stream[T] { return Map(next(), fn) })
}

// FlatMap maps every element of a stream to a sub-stream, flattening the
// sub-streams into one output stream in order.  It scans input elements
// (forcing each and applying fn) until it finds one whose sub-stream is
// non-empty; that sub-stream's first value becomes the head of the result,
// and the rest is deferred as the sub-stream's remainder followed by FlatMap
// of the not-yet-scanned input.  Later input elements are thus never forced
// ahead of demand, making this the workhorse for lazy Cartesian products.
func FlatMap[S, T any](s Stream[S], fn func(S) Stream[T]) Stream[T] {
	var res Stream[T]
	// Scan for the first element producing a non-empty sub-stream.
	for !res.NonEmpty() && s.NonEmpty() {
		res = fn(s.Head())
		s = s.Tail()
	}
	//
	if !res.NonEmpty() {
		// Entire input exhausted without finding a head.
		return Empty[T]()
	}
	//
	rest := s
	//
	return res.ConcatFn(func() Stream[T] { return FlatMap(rest, fn) })
}
