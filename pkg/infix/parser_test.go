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
	"testing"
)

var (
	cfgPlain  = Config{EnableTuples: false, TuplesRequireParens: false}
	cfgTuples = Config{EnableTuples: true, TuplesRequireParens: false}
	cfgParens = Config{EnableTuples: true, TuplesRequireParens: true}
)

// ============================================================================
// Literals & operators
// ============================================================================

func Test_Parse_01(t *testing.T) {
	checkParse(t, cfgPlain, "foo = 1;", "foo = 1;\n")
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, cfgPlain, "foo = 1.5;", "foo = 1.5;\n")
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, cfgPlain, "foo = 1.5e10;", "foo = 1.5e10;\n")
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, cfgPlain, "foo = 1 + 2;", "foo = (1 + 2);\n")
}

func Test_Parse_05(t *testing.T) {
	// multiplication binds tighter than addition
	checkParse(t, cfgPlain, "foo = 1 + 2 * 3;", "foo = (1 + (2 * 3));\n")
}

func Test_Parse_06(t *testing.T) {
	checkParse(t, cfgPlain, "foo = 1 * 2 + 3;", "foo = ((1 * 2) + 3);\n")
}

func Test_Parse_07(t *testing.T) {
	// subtraction is left associative
	checkParse(t, cfgPlain, "foo = 1 - 2 - 3;", "foo = ((1 - 2) - 3);\n")
}

func Test_Parse_08(t *testing.T) {
	checkParse(t, cfgPlain, "foo = 8 / 4 / 2;", "foo = ((8 / 4) / 2);\n")
}

func Test_Parse_09(t *testing.T) {
	// explicit grouping overrides precedence
	checkParse(t, cfgPlain, "foo = (1 + 2) * 3;", "foo = ((1 + 2) * 3);\n")
}

func Test_Parse_10(t *testing.T) {
	checkParse(t, cfgPlain, "foo = ((((1))));", "foo = 1;\n")
}

// ============================================================================
// Statements
// ============================================================================

func Test_Parse_11(t *testing.T) {
	checkParse(t, cfgPlain, "foo = 1; bar = foo + 1;",
		"foo = 1;\nbar = (foo + 1);\n")
}

func Test_Parse_12(t *testing.T) {
	checkParse(t, cfgPlain, "foo = 1; print \"sum\" foo + 2;",
		"foo = 1;\nprint \"sum\" (foo + 2);\n")
}

func Test_Parse_13(t *testing.T) {
	// comments and whitespace are discarded
	checkParse(t, cfgPlain, "foo = 1; // trailing\n// full line\nbar = 2;",
		"foo = 1;\nbar = 2;\n")
}

func Test_Parse_14(t *testing.T) {
	checkParse(t, cfgPlain, "", "")
}

// ============================================================================
// Tuples
// ============================================================================

func Test_Parse_15(t *testing.T) {
	checkParse(t, cfgTuples, "foo = (1, 2);", "foo = (1, 2,);\n")
}

func Test_Parse_16(t *testing.T) {
	// one trailing comma is permitted
	checkParse(t, cfgTuples, "foo = (1, 2,);", "foo = (1, 2,);\n")
}

func Test_Parse_17(t *testing.T) {
	// singleton tuples need the trailing comma
	checkParse(t, cfgTuples, "foo = (1,);", "foo = (1,);\n")
}

func Test_Parse_18(t *testing.T) {
	checkParse(t, cfgTuples, "foo = (,);", "foo = (,);\n")
}

func Test_Parse_19(t *testing.T) {
	// parens around a tuple are optional here
	checkParse(t, cfgTuples, "foo = 1, 2;", "foo = (1, 2,);\n")
}

func Test_Parse_20(t *testing.T) {
	checkParse(t, cfgTuples, "foo = ,;", "foo = (,);\n")
}

func Test_Parse_21(t *testing.T) {
	checkParse(t, cfgTuples, "foo = ((1, 2), 3);", "foo = ((1, 2,), 3,);\n")
}

func Test_Parse_22(t *testing.T) {
	checkParse(t, cfgTuples, "foo = append(1, 2);", "foo = append(1, 2,);\n")
}

func Test_Parse_23(t *testing.T) {
	checkParse(t, cfgTuples, "foo = append(,);", "foo = append(,);\n")
}

func Test_Parse_24(t *testing.T) {
	checkParse(t, cfgTuples, "foo = append(1,);", "foo = append(1,);\n")
}

func Test_Parse_25(t *testing.T) {
	checkParse(t, cfgTuples, "foo = (1, 2) . 0;", "foo = ((1, 2,) . 0);\n")
}

func Test_Parse_26(t *testing.T) {
	// indexing binds tighter than multiplication
	checkParse(t, cfgTuples, "foo = (1, 2) . 0 * 3;", "foo = (((1, 2,) . 0) * 3);\n")
}

func Test_Parse_27(t *testing.T) {
	// mandatory parenthesisation still accepts parenthesised tuples
	checkParse(t, cfgParens, "foo = (1, 2);", "foo = (1, 2,);\n")
}

func Test_Parse_28(t *testing.T) {
	checkParse(t, cfgParens, "foo = (,);", "foo = (,);\n")
}

// ============================================================================
// Malformed inputs
// ============================================================================

func Test_Parse_29(t *testing.T) {
	// empty parens never parse, under any configuration
	checkParseFails(t, cfgPlain, "foo = ();")
	checkParseFails(t, cfgTuples, "foo = ();")
	checkParseFails(t, cfgParens, "foo = ();")
}

func Test_Parse_30(t *testing.T) {
	checkParseFails(t, cfgPlain, "foo = (1, 2);")
}

func Test_Parse_31(t *testing.T) {
	checkParseFails(t, cfgPlain, "foo = 1, 2;")
}

func Test_Parse_32(t *testing.T) {
	checkParseFails(t, cfgPlain, "foo = (1, 2) . 0;")
}

func Test_Parse_33(t *testing.T) {
	checkParseFails(t, cfgPlain, "foo = append(1, 2);")
}

func Test_Parse_34(t *testing.T) {
	// bare tuples need parens here
	checkParseFails(t, cfgParens, "foo = 1, 2;")
}

func Test_Parse_35(t *testing.T) {
	checkParseFails(t, cfgParens, "foo = ,;")
}

func Test_Parse_36(t *testing.T) {
	// append requires tuple-shaped contents
	checkParseFails(t, cfgTuples, "foo = append(1);")
}

func Test_Parse_37(t *testing.T) {
	checkParseFails(t, cfgTuples, "foo = append 1;")
}

func Test_Parse_38(t *testing.T) {
	// at most one trailing comma
	checkParseFails(t, cfgTuples, "foo = (1, 2,,);")
}

func Test_Parse_39(t *testing.T) {
	checkParseFails(t, cfgTuples, "foo = (, 1);")
}

func Test_Parse_40(t *testing.T) {
	checkParseFails(t, cfgPlain, "foo = \"text\";")
}

func Test_Parse_41(t *testing.T) {
	checkParseFails(t, cfgPlain, "foo = 1")
}

func Test_Parse_42(t *testing.T) {
	checkParseFails(t, cfgPlain, "foo = ;")
}

func Test_Parse_43(t *testing.T) {
	checkParseFails(t, cfgPlain, "foo = (1;")
}

func Test_Parse_44(t *testing.T) {
	checkParseFails(t, cfgPlain, "foo 1;")
}

func Test_Parse_45(t *testing.T) {
	checkParseFails(t, cfgPlain, "print 1;")
}

func Test_Parse_46(t *testing.T) {
	checkParseFails(t, cfgPlain, "append = 1;")
}

func Test_Parse_47(t *testing.T) {
	checkParseFails(t, cfgPlain, "foo = 1 +;")
}

func Test_Parse_48(t *testing.T) {
	checkParseFails(t, cfgPlain, "foo = @;")
}

// ============================================================================
// Structure
// ============================================================================

func Test_Parse_49(t *testing.T) {
	tree, errs := ParseString("foo = 1 + bar;", cfgPlain)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	//
	expected := NewCalculation(
		NewAssign("foo", NewExpression(NewBinary(ADD,
			NewExpression(NewInt("1")),
			NewExpression(NewRef("bar"))))))
	//
	if !tree.Equal(expected) {
		t.Errorf("got:\n%s\nexpected:\n%s", tree, expected)
	}
}

func Test_Parse_50(t *testing.T) {
	// parentheses leave no trace in the tree
	lhs, errs1 := ParseString("foo = (1 + 2) * 3;", cfgPlain)
	rhs, errs2 := ParseString("foo = ((1 + 2)) * (3);", cfgPlain)
	//
	if len(errs1) != 0 || len(errs2) != 0 {
		t.Fatalf("unexpected errors: %v %v", errs1, errs2)
	}
	//
	if !lhs.Equal(rhs) {
		t.Errorf("trees differ:\n%s\nversus:\n%s", lhs, rhs)
	}
}

func Test_Parse_51(t *testing.T) {
	// syntax errors carry positions
	_, errs := ParseString("foo = 1 +\n@;", cfgPlain)
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	//
	line := errs[0].FirstEnclosingLine()
	if line.Number() != 2 {
		t.Errorf("expected error on line 2, was on line %d", line.Number())
	}
	//
	if span := errs[0].Span(); span.Start() != 10 {
		t.Errorf("expected error at offset 10, was at %d", span.Start())
	}
	//
	if msg := errs[0].Message(); msg != "unknown text encountered" {
		t.Errorf("unexpected message %q", msg)
	}
}

// ============================================================================
// Helpers
// ============================================================================

// checkParse parses text under the given configuration and compares the
// canonical form of the result against that expected.
func checkParse(t *testing.T, config Config, text string, canonical string) {
	t.Helper()
	//
	tree, errs := ParseString(text, config)
	if len(errs) != 0 {
		t.Fatalf("parsing %q failed: %v", text, errs)
	}
	//
	written, err := Write(tree)
	if err != nil {
		t.Fatalf("writing %q failed: %v", text, err)
	}
	//
	if written != canonical {
		t.Errorf("parsing %q: got %q, expected %q", text, written, canonical)
	}
	// canonical text parses back to an identical tree
	reparsed, errs := ParseString(written, config)
	if len(errs) != 0 {
		t.Fatalf("reparsing %q failed: %v", written, errs)
	}
	//
	if !tree.Equal(reparsed) {
		t.Errorf("reparsing %q:\n%s\nversus:\n%s", written, tree, reparsed)
	}
}

func checkParseFails(t *testing.T, config Config, text string) {
	t.Helper()
	//
	if tree, errs := ParseString(text, config); len(errs) == 0 {
		t.Errorf("parsing %q under %s unexpectedly succeeded:\n%s", text, config, tree)
	}
}
