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
	"github.com/fhackett/infix/pkg/util/source"
	"github.com/fhackett/infix/pkg/util/source/lex"
)

// Token tags produced by the infix lexer.  Keywords (print, append) are not
// distinguished here; they lex as identifiers and are recognised by the
// parser, which avoids needing word-boundary lookahead in the scanner.
const (
	tokEOF uint = iota
	tokWhitespace
	tokComment
	tokLParen
	tokRParen
	tokInt
	tokFloat
	tokString
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokDot
	tokComma
	tokSemi
	tokEquals
)

var lexWhitespace lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit(' '),
	lex.Unit('\t'),
	lex.Unit('\r'),
	lex.Unit('\n')))

// Line comments run to (but exclude) the end of the line; the newline itself
// lexes as whitespace.  And() rather than Then() here: the second scanner
// re-reads from the comment start and subsumes the "//" prefix.
var lexComment lex.Scanner[rune] = lex.And(
	lex.String("//"),
	lex.Many(lex.Not(lex.Or(lex.Unit('\n'), lex.Unit('\r')))))

var lexDigits lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

var lexExponent lex.Scanner[rune] = lex.Then(
	lex.Unit('e'),
	lex.Or(
		lex.Then(lex.Or(lex.Unit('+'), lex.Unit('-')), lexDigits),
		lexDigits))

var lexFloatPlain lex.Scanner[rune] = lex.Then(
	lexDigits, lex.Then(lex.Unit('.'), lexDigits))

var lexFloat lex.Scanner[rune] = lex.Or(
	lex.Then(lexFloatPlain, lexExponent),
	lexFloatPlain)

var lexString lex.Scanner[rune] = lex.Then(
	lex.Unit('"'),
	lex.Then(lex.Many(lex.Not(lex.Unit('"'))), lex.Unit('"')))

var lexIdentStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var lexIdentRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

var lexIdent lex.Scanner[rune] = lex.And(lexIdentStart, lexIdentRest)

// Lexing rules, in match priority order.  Floats must precede ints so that
// "1.5" does not lex as an int followed by a dot.
var lexRules = []lex.LexRule[rune]{
	lex.Rule(lexComment, tokComment),
	lex.Rule(lexWhitespace, tokWhitespace),
	lex.Rule(lex.Unit('('), tokLParen),
	lex.Rule(lex.Unit(')'), tokRParen),
	lex.Rule(lexFloat, tokFloat),
	lex.Rule(lexDigits, tokInt),
	lex.Rule(lexString, tokString),
	lex.Rule(lexIdent, tokIdent),
	lex.Rule(lex.Unit('+'), tokPlus),
	lex.Rule(lex.Unit('-'), tokMinus),
	lex.Rule(lex.Unit('*'), tokStar),
	lex.Rule(lex.Unit('/'), tokSlash),
	lex.Rule(lex.Unit('.'), tokDot),
	lex.Rule(lex.Unit(','), tokComma),
	lex.Rule(lex.Unit(';'), tokSemi),
	lex.Rule(lex.Unit('='), tokEquals),
	lex.Rule(lex.Eof[rune](), tokEOF),
}

// Lex tokenises a source file, discarding whitespace and comments.  The
// final token always carries the tokEOF tag.  A syntax error is produced if
// any input cannot be tokenised.
func Lex(srcfile *source.File) ([]lex.Token, []source.SyntaxError) {
	lexer := lex.NewLexer(srcfile.Contents(), lexRules...)
	tokens := lexer.Collect()
	// Check whether anything was left unconsumed.
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		//
		return nil, []source.SyntaxError{*err}
	}
	// Drop whitespace and comments.
	filtered := make([]lex.Token, 0, len(tokens))
	//
	for _, token := range tokens {
		if token.Kind != tokWhitespace && token.Kind != tokComment {
			filtered = append(filtered, token)
		}
	}
	//
	return filtered, nil
}
