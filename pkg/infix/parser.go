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
	"slices"

	"github.com/fhackett/infix/pkg/util/source"
	"github.com/fhackett/infix/pkg/util/source/lex"
)

// Parse a source file into a CALCULATION tree under the given configuration.
// The resulting tree has exactly the structure produced by the generator:
// every operand wrapped in an EXPRESSION node, parentheses adding no nodes of
// their own.  Errors carry spans into the original source.
func Parse(srcfile *source.File, config Config) (*Node, []source.SyntaxError) {
	tokens, errs := Lex(srcfile)
	if len(errs) != 0 {
		return nil, errs
	}
	//
	parser := &parser{config, srcfile, tokens, 0}
	//
	return parser.parseCalculation()
}

// ParseString is a convenience wrapper around Parse for in-memory sources.
func ParseString(text string, config Config) (*Node, []source.SyntaxError) {
	return Parse(source.NewSourceFile("synthetic", []byte(text)), config)
}

type parser struct {
	config  Config
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// ============================================================================
// Statements
// ============================================================================

func (p *parser) parseCalculation() (*Node, []source.SyntaxError) {
	var statements []*Node
	//
	for !p.follows(tokEOF) {
		statement, errs := p.parseStatement()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		statements = append(statements, statement)
	}
	//
	return NewCalculation(statements...), nil
}

func (p *parser) parseStatement() (*Node, []source.SyntaxError) {
	token := p.lookahead()
	//
	if token.Kind != tokIdent {
		return nil, p.syntaxErrors(token, "expected statement")
	}
	//
	if p.string(token) == "print" {
		return p.parseOutput()
	}
	//
	return p.parseAssign()
}

// assign := IDENT '=' expr ';'
func (p *parser) parseAssign() (*Node, []source.SyntaxError) {
	name := p.expect(tokIdent)
	// keywords cannot be assigned to
	if p.string(name) == "append" {
		return nil, p.syntaxErrors(name, "invalid assign")
	}
	//
	if !p.match(tokEquals) {
		return nil, p.syntaxErrors(p.lookahead(), "invalid assign")
	}
	//
	value, errs := p.parseExprList(false)
	if len(errs) != 0 {
		return nil, errs
	}
	//
	if !p.match(tokSemi) {
		return nil, p.syntaxErrors(p.lookahead(), "expected ';'")
	}
	//
	return NewAssign(p.string(name), value), nil
}

// output := 'print' STRING expr ';'
func (p *parser) parseOutput() (*Node, []source.SyntaxError) {
	p.expect(tokIdent) // print
	//
	if !p.follows(tokString) {
		return nil, p.syntaxErrors(p.lookahead(), "invalid output")
	}
	//
	label := p.expect(tokString)
	// strip enclosing quotes
	text := p.string(label)
	text = text[1 : len(text)-1]
	//
	value, errs := p.parseExprList(false)
	if len(errs) != 0 {
		return nil, errs
	}
	//
	if !p.match(tokSemi) {
		return nil, p.syntaxErrors(p.lookahead(), "expected ';'")
	}
	//
	return NewOutput(text, value), nil
}

// ============================================================================
// Expressions
// ============================================================================

// parseExprList parses an expression at the loosest (comma) level.  Commas
// build tuple literals, but only where the configuration allows: never with
// tuples disabled, and only inside parentheses when parenthesisation is
// mandatory.  A lone comma immediately before the terminator denotes the
// empty tuple.
func (p *parser) parseExprList(inParens bool) (*Node, []source.SyntaxError) {
	commasAllowed := p.config.EnableTuples &&
		(inParens || !p.config.TuplesRequireParens)
	terminator := uint(tokSemi)
	//
	if inParens {
		terminator = tokRParen
	}
	// Empty tuple: "," directly before the terminator.
	if commasAllowed && p.follows(tokComma) {
		comma := p.expect(tokComma)
		//
		if !p.follows(terminator) {
			return nil, p.syntaxErrors(comma, "invalid use of comma")
		}
		//
		return NewExpression(NewTuple()), nil
	}
	//
	first, errs := p.parseAddSubtract()
	if len(errs) != 0 || !commasAllowed {
		return first, errs
	}
	// Gather comma-separated elements, allowing one trailing comma.
	elements := []*Node{first}
	trailing := false
	sawComma := false
	//
	for p.follows(tokComma) {
		p.expect(tokComma)
		//
		sawComma = true
		//
		if p.follows(terminator) {
			trailing = true
			break
		}
		//
		next, errs := p.parseAddSubtract()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		elements = append(elements, next)
	}
	//
	switch {
	case !sawComma:
		return first, nil
	case len(elements) == 1 && !trailing:
		// unreachable: a single element with a comma implies trailing
		panic("unreachable")
	default:
		return NewExpression(NewTuple(elements...)), nil
	}
}

func (p *parser) parseAddSubtract() (*Node, []source.SyntaxError) {
	lhs, errs := p.parseMultiplyDivide()
	//
	for len(errs) == 0 && p.follows(tokPlus, tokMinus) {
		kind := ADD
		if p.lookahead().Kind == tokMinus {
			kind = SUBTRACT
		}
		//
		p.expect(p.lookahead().Kind)
		//
		var rhs *Node
		//
		rhs, errs = p.parseMultiplyDivide()
		if len(errs) == 0 {
			lhs = NewExpression(NewBinary(kind, lhs, rhs))
		}
	}
	//
	return lhs, errs
}

func (p *parser) parseMultiplyDivide() (*Node, []source.SyntaxError) {
	lhs, errs := p.parseTupleIndex()
	//
	for len(errs) == 0 && p.follows(tokStar, tokSlash) {
		kind := MULTIPLY
		if p.lookahead().Kind == tokSlash {
			kind = DIVIDE
		}
		//
		p.expect(p.lookahead().Kind)
		//
		var rhs *Node
		//
		rhs, errs = p.parseTupleIndex()
		if len(errs) == 0 {
			lhs = NewExpression(NewBinary(kind, lhs, rhs))
		}
	}
	//
	return lhs, errs
}

func (p *parser) parseTupleIndex() (*Node, []source.SyntaxError) {
	lhs, errs := p.parseUnit()
	//
	for len(errs) == 0 && p.follows(tokDot) {
		if !p.config.EnableTuples {
			return nil, p.syntaxErrors(p.lookahead(), "tuples are disabled")
		}
		//
		p.expect(tokDot)
		//
		var rhs *Node
		//
		rhs, errs = p.parseUnit()
		if len(errs) == 0 {
			lhs = NewExpression(NewBinary(TUPLE_IDX, lhs, rhs))
		}
	}
	//
	return lhs, errs
}

func (p *parser) parseUnit() (*Node, []source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case tokInt:
		p.expect(tokInt)
		return NewExpression(NewInt(p.string(token))), nil
	case tokFloat:
		p.expect(tokFloat)
		return NewExpression(NewFloat(p.string(token))), nil
	case tokString:
		return nil, p.syntaxErrors(token, "expressions cannot contain strings")
	case tokIdent:
		return p.parseIdentOrAppend()
	case tokLParen:
		return p.parseParen()
	case tokComma:
		return nil, p.syntaxErrors(token, "invalid use of comma")
	}
	//
	return nil, p.syntaxErrors(token, "unknown expression")
}

func (p *parser) parseIdentOrAppend() (*Node, []source.SyntaxError) {
	token := p.expect(tokIdent)
	name := p.string(token)
	//
	switch name {
	case "append":
		return p.parseAppend(token)
	case "print":
		return nil, p.syntaxErrors(token, "invalid output")
	}
	//
	return NewExpression(NewRef(name)), nil
}

// append := 'append' '(' elements ')'.  The parenthesised group must itself
// be tuple-shaped: "append(e)" without any comma is invalid.
func (p *parser) parseAppend(keyword lex.Token) (*Node, []source.SyntaxError) {
	if !p.config.EnableTuples {
		return nil, p.syntaxErrors(keyword, "tuples are disabled")
	}
	//
	if !p.match(tokLParen) {
		return nil, p.syntaxErrors(p.lookahead(), "invalid append")
	}
	//
	group, errs := p.parseParenGroup(keyword)
	if len(errs) != 0 {
		return nil, errs
	}
	// the group must have resolved to a tuple
	inner := group.Children[0]
	if inner.Kind != TUPLE {
		return nil, p.syntaxErrors(keyword, "invalid use of append")
	}
	//
	return NewExpression(NewAppend(inner.Children...)), nil
}

// parseParen parses a parenthesised group after '(' has been recognised (but
// not yet consumed).  The result is either the inner expression itself (no
// extra node for the parentheses), or a tuple when commas are present.
func (p *parser) parseParen() (*Node, []source.SyntaxError) {
	open := p.expect(tokLParen)
	//
	return p.parseParenGroup(open)
}

func (p *parser) parseParenGroup(open lex.Token) (*Node, []source.SyntaxError) {
	// "()" is always malformed, under every configuration.
	if p.follows(tokRParen) {
		return nil, p.syntaxErrors(open, "invalid paren")
	}
	//
	inner, errs := p.parseExprList(true)
	if len(errs) != 0 {
		return nil, errs
	}
	//
	if !p.match(tokRParen) {
		return nil, p.syntaxErrors(p.lookahead(), "expected ')'")
	}
	//
	return inner, nil
}

// ============================================================================
// Helpers
// ============================================================================

func (p *parser) lookahead() lex.Token {
	// EOF token is always present, so this is safe.
	return p.tokens[min(p.index, len(p.tokens)-1)]
}

func (p *parser) follows(kinds ...uint) bool {
	return slices.Contains(kinds, p.lookahead().Kind)
}

// match consumes the next token if it has the given kind.
func (p *parser) match(kind uint) bool {
	if p.follows(kind) {
		p.index++
		return true
	}
	//
	return false
}

// expect consumes the next token, which must have the given kind.
func (p *parser) expect(kind uint) lex.Token {
	token := p.lookahead()
	//
	if token.Kind != kind {
		panic("internal parser error (unexpected token)")
	}
	//
	p.index++
	//
	return token
}

// string extracts the source text covered by a given token.
func (p *parser) string(token lex.Token) string {
	span := token.Span
	//
	return string(p.srcfile.Contents()[span.Start():span.End()])
}

func (p *parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	err := p.srcfile.SyntaxError(token.Span, msg)
	//
	return []source.SyntaxError{*err}
}
