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

// Package oracle cross-checks the generator, renderer, writer and parser
// against each other: every rendering of every generated program must either
// reparse to the identical tree, or fail exactly when the parser
// configuration predicts it should.  Any other outcome indicts one of the
// four components and aborts the whole run.
package oracle

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/fhackett/infix/pkg/infix"
	"github.com/fhackett/infix/pkg/progspace"
	"github.com/fhackett/infix/pkg/util/collection/rope"
	"github.com/fhackett/infix/pkg/util/collection/stream"
)

// Every rendering is exercised against each of these parser configurations.
// Together they cover both prediction rules: tuple operations must fail with
// tuples disabled, and flagged candidates must fail when parens are
// mandatory.
var parserConfigs = []infix.Config{
	{EnableTuples: false, TuplesRequireParens: false},
	{EnableTuples: true, TuplesRequireParens: false},
	{EnableTuples: true, TuplesRequireParens: true},
}

// Oracle drives a depth-bounded exploration run.
type Oracle struct {
	config Config
	// Progress, when set, receives the running count of checked cases.
	Progress func(depth uint, cases uint)
}

// New constructs an exploration driver, filling configuration defaults and
// rejecting configurations the generator cannot satisfy.
func New(config Config) (*Oracle, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	//
	return &Oracle{config: config}, nil
}

// Explore checks every program up to the configured depth, returning the
// number of cases checked along with the first violation found (if any).
// Cases are verified concurrently, but violations are reported in
// enumeration order, as if the run were sequential.
func (p *Oracle) Explore() (uint, error) {
	var cases uint
	//
	for depth := uint(0); depth <= p.config.MaxDepth; depth++ {
		log.Debugf("exploring depth %d", depth)
		//
		if err := p.exploreDepth(depth, &cases); err != nil {
			return cases, err
		}
	}
	//
	return cases, nil
}

func (p *Oracle) exploreDepth(depth uint, cases *uint) error {
	var (
		firstErr error
		queue    []chan error
		names    = p.config.Names[:p.config.OpCount]
	)
	// retire completed cases, oldest first, until at most target remain
	pump := func(target uint) {
		for uint(len(queue)) > target {
			err := <-queue[0]
			queue = queue[1:]
			//
			if err != nil && firstErr == nil {
				firstErr = err
			}
			//
			*cases++
			//
			if p.Progress != nil && firstErr == nil {
				p.Progress(depth, *cases)
			}
		}
	}
	//
	for calcs := progspace.Calculations(names, depth); calcs.NonEmpty(); calcs = calcs.Tail() {
		calculation := calcs.Head()
		//
		candidates, err := p.candidates(calculation)
		if err != nil {
			pump(0)
			return err
		}
		//
		for cs := candidates; cs.NonEmpty(); cs = cs.Tail() {
			candidate := cs.Head()
			//
			for _, parserConfig := range parserConfigs {
				pump(p.config.Concurrency - 1)
				//
				if firstErr != nil {
					// later errors are noise once one case has failed
					pump(0)
					return firstErr
				}
				//
				done := make(chan error, 1)
				queue = append(queue, done)
				//
				go func(parserConfig infix.Config) {
					done <- checkCase(calculation, candidate, parserConfig)
				}(parserConfig)
			}
		}
	}
	//
	pump(0)
	//
	return firstErr
}

// candidates yields every rendering of a calculation, plus the production
// writer's canonical form as one extra unflagged candidate.  The canonical
// form is first cross-checked against this package's independent rendering
// of it; disagreement means one of the two writers has drifted.
func (p *Oracle) candidates(calculation *infix.Node) (stream.Stream[progspace.Candidate], error) {
	var empty stream.Stream[progspace.Candidate]
	//
	written, err := infix.Write(calculation)
	if err != nil {
		return empty, fmt.Errorf("cannot write generated program:\n%s\n(%v)", calculation, err)
	}
	//
	canonical, err := progspace.Canonical(calculation)
	if err != nil {
		return empty, fmt.Errorf("cannot render generated program:\n%s\n(%v)", calculation, err)
	}
	//
	if written != canonical {
		return empty, fmt.Errorf(
			"writer desync on this program:\n%s\nwriter output (diffy view against renderer):\n%s",
			calculation, Diffy(canonical, written))
	}
	//
	extra := progspace.Candidate{Text: rope.Leaf(written)}
	//
	return progspace.CalculationStrings(calculation).ConcatFn(func() stream.Stream[progspace.Candidate] {
		return stream.Unit(extra)
	}), nil
}

// checkCase round-trips one rendering of one program through the parser
// under one configuration.
func checkCase(calculation *infix.Node, candidate progspace.Candidate, config infix.Config) error {
	prog := calculation.Clone()
	// name resolution must succeed on anything we built ourselves
	if errs := infix.BuildScopes(prog); len(errs) != 0 {
		return fmt.Errorf("cannot resolve names in generated program:\n%s\n(%v)", prog, errs)
	}
	//
	var (
		rendered   = candidate.Text.String()
		expectFail = (!config.EnableTuples && prog.HasTupleOps()) ||
			(config.TuplesRequireParens && candidate.TupleParensOmitted)
	)
	//
	reparsed, errs := infix.ParseString(rendered, config)
	//
	if len(errs) != 0 {
		if expectFail {
			return nil
		}
		//
		return fmt.Errorf("error reparsing %q under %s:\n%v\nprogram was:\n%s",
			rendered, config, errs, prog)
	}
	//
	if expectFail {
		// a mis-parse satisfies the prediction; only an exact reproduction
		// means the configuration was not enforced
		if prog.Equal(reparsed) {
			return fmt.Errorf("should have failed reparsing %q under %s\nprogram was:\n%s",
				rendered, config, prog)
		}
		//
		return nil
	}
	//
	if !prog.Equal(reparsed) {
		return fmt.Errorf(
			"did not reparse the same program\ngenerated:\n%s\nrendered: %q\nreparsed (diffy view):\n%s",
			prog, rendered, Diffy(prog.String(), reparsed.String()))
	}
	//
	return nil
}
