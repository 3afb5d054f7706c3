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
	"testing"
)

func Test_Rope_Leaf(t *testing.T) {
	checkRope(t, Leaf("hello"), "hello")
}

func Test_Rope_EmptyLeaf(t *testing.T) {
	checkRope(t, Leaf(""), "")
}

func Test_Rope_Concat_1(t *testing.T) {
	// materialize(a.concat(b)) == materialize(a) + materialize(b)
	checkRope(t, Leaf("foo").Concat(Leaf("bar")), "foobar")
}

func Test_Rope_Concat_2(t *testing.T) {
	lhs := Leaf("a").Concat(Leaf("b"))
	rhs := Leaf("c").Concat(Leaf("d"))
	checkRope(t, lhs.Concat(rhs), "abcd")
}

func Test_Rope_Concat_3(t *testing.T) {
	// structural sharing: the same sub-rope used twice
	sub := Leaf("ab").Concat(Leaf("cd"))
	checkRope(t, sub.Concat(sub), "abcdabcd")
}

func Test_Rope_DeepRight(t *testing.T) {
	// right-leaning rope far deeper than any safe call stack
	r := Leaf("")
	for i := 0; i < 200_000; i++ {
		r = Leaf("x").Concat(r)
	}
	//
	if actual := r.String(); actual != strings.Repeat("x", 200_000) {
		t.Errorf("unexpected materialisation of deep rope (%d chars)", len(actual))
	}
}

func Test_Rope_DeepLeft(t *testing.T) {
	r := Leaf("")
	for i := 0; i < 200_000; i++ {
		r = r.Concat(Leaf("y"))
	}
	//
	if actual := r.String(); actual != strings.Repeat("y", 200_000) {
		t.Errorf("unexpected materialisation of deep rope (%d chars)", len(actual))
	}
}

func checkRope(t *testing.T, r Rope, expected string) {
	t.Helper()
	//
	if actual := r.String(); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}
