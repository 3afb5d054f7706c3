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

import "fmt"

// Config determines which constructs the parser accepts.
type Config struct {
	// EnableTuples permits tuple literals, append and tuple indexing.  When
	// false, commas, dots and the append keyword are rejected outright.
	EnableTuples bool
	// TuplesRequireParens restricts tuple literals to parenthesised form.
	// Bare comma-separated tuples such as "x = 1, 2;" become errors.  Only
	// meaningful when EnableTuples is set.
	TuplesRequireParens bool
}

// String summarises this configuration in a compact, loggable form.
func (p Config) String() string {
	return fmt.Sprintf("{tuples=%t parens=%t}", p.EnableTuples, p.TuplesRequireParens)
}
