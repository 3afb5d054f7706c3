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

import (
	"testing"
)

func Test_Stream_Empty(t *testing.T) {
	checkStream(t, Empty[uint](), []uint{})
}

func Test_Stream_Unit(t *testing.T) {
	checkStream(t, Unit[uint](1), []uint{1})
}

func Test_Stream_Cons(t *testing.T) {
	s := Cons(uint(1), func() Stream[uint] { return Unit[uint](2) })
	checkStream(t, s, []uint{1, 2})
}

func Test_Stream_Concat_1(t *testing.T) {
	s := Unit[uint](1).Concat(Unit[uint](2))
	checkStream(t, s, []uint{1, 2})
}

func Test_Stream_Concat_2(t *testing.T) {
	// s.concat(empty) traverses identically to s
	s := Unit[uint](1).Concat(Unit[uint](2))
	checkStream(t, s.Concat(Empty[uint]()), []uint{1, 2})
}

func Test_Stream_Concat_3(t *testing.T) {
	// empty.concat(s) traverses identically to s
	s := Unit[uint](1).Concat(Unit[uint](2))
	checkStream(t, Empty[uint]().Concat(s), []uint{1, 2})
}

func Test_Stream_Concat_4(t *testing.T) {
	// deferred rhs is not forced until lhs exhausts
	forced := false
	s := Unit[uint](1).ConcatFn(func() Stream[uint] {
		forced = true
		return Unit[uint](2)
	})
	//
	if forced {
		t.Errorf("continuation forced before traversal")
	}
	//
	if s.Head() != 1 || forced {
		t.Errorf("continuation forced by head")
	}
	//
	checkStream(t, s, []uint{1, 2})
	//
	if !forced {
		t.Errorf("continuation never forced")
	}
}

func Test_Stream_Map_1(t *testing.T) {
	s := range3()
	checkStream(t, Map(s, func(x uint) uint { return x * 2 }), []uint{0, 2, 4})
}

func Test_Stream_Map_2(t *testing.T) {
	// mapping is lazy beyond the head
	count := 0
	s := Map(range3(), func(x uint) uint {
		count++
		return x
	})
	// Only the head has been realised at this point.
	if s.NonEmpty() && count != 1 {
		t.Errorf("expected 1 application, saw %d", count)
	}
	//
	checkStream(t, s, []uint{0, 1, 2})
	//
	if count != 3 {
		t.Errorf("expected 3 applications, saw %d", count)
	}
}

func Test_Stream_FlatMap_1(t *testing.T) {
	s := FlatMap(range3(), func(x uint) Stream[uint] {
		return Unit(x).Concat(Unit(x + 10))
	})
	checkStream(t, s, []uint{0, 10, 1, 11, 2, 12})
}

func Test_Stream_FlatMap_2(t *testing.T) {
	// elements mapping to empty sub-streams are skipped
	s := FlatMap(range3(), func(x uint) Stream[uint] {
		if x%2 == 0 {
			return Empty[uint]()
		}
		return Unit(x)
	})
	checkStream(t, s, []uint{1})
}

func Test_Stream_FlatMap_3(t *testing.T) {
	// everything empty gives empty
	s := FlatMap(range3(), func(uint) Stream[uint] { return Empty[uint]() })
	checkStream(t, s, []uint{})
}

func Test_Stream_FlatMap_4(t *testing.T) {
	// flat_map associativity: s.flat_map(f).flat_map(g) traverses identically
	// to s.flat_map(x => f(x).flat_map(g)).
	f := func(x uint) Stream[uint] { return Unit(x).Concat(Unit(x + 1)) }
	g := func(x uint) Stream[uint] { return Unit(x * 10) }
	//
	lhs := FlatMap(FlatMap(range3(), f), g)
	rhs := FlatMap(range3(), func(x uint) Stream[uint] { return FlatMap(f(x), g) })
	//
	checkSameStream(t, lhs, rhs)
}

func Test_Stream_FlatMap_5(t *testing.T) {
	// input elements beyond the scan position are not forced ahead of demand.
	// Constructing the range realises its first cell; finding the head of the
	// flat-map realises one more (the scan stops one past its match).
	forced := 0
	input := countingRange(5, &forced)
	//
	if forced != 1 {
		t.Errorf("expected 1 forced element, saw %d", forced)
	}
	//
	s := FlatMap(input, Unit)
	//
	if !s.NonEmpty() || forced != 2 {
		t.Errorf("expected 2 forced elements, saw %d", forced)
	}
	//
	s = s.Tail()
	//
	if !s.NonEmpty() || forced != 3 {
		t.Errorf("expected 3 forced elements, saw %d", forced)
	}
}

func Test_Stream_Restartable(t *testing.T) {
	// re-traversing a freshly constructed stream yields the same values
	s := FlatMap(range3(), func(x uint) Stream[uint] { return Unit(x + 1) })
	checkStream(t, s, []uint{1, 2, 3})
	checkStream(t, s, []uint{1, 2, 3})
}

// ===================================================================
// Test Helpers
// ===================================================================

func range3() Stream[uint] {
	return Unit[uint](0).Concat(Unit[uint](1)).Concat(Unit[uint](2))
}

// countingRange produces 0..n-1 whilst counting how many elements have been
// realised so far through the given counter.
func countingRange(n uint, counter *int) Stream[uint] {
	return rangeFrom(0, n, counter)
}

func rangeFrom(i uint, n uint, counter *int) Stream[uint] {
	if i >= n {
		return Empty[uint]()
	}
	//
	*counter++
	//
	return Cons(i, func() Stream[uint] { return rangeFrom(i+1, n, counter) })
}

func checkStream(t *testing.T, s Stream[uint], expected []uint) {
	t.Helper()
	//
	actual := s.Collect()
	//
	if len(actual) != len(expected) {
		t.Errorf("expected %v, got %v", expected, actual)
		return
	}
	//
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, actual)
			return
		}
	}
}

func checkSameStream(t *testing.T, lhs Stream[uint], rhs Stream[uint]) {
	t.Helper()
	checkStream(t, lhs, rhs.Collect())
}
