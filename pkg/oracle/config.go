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
package oracle

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/fhackett/infix/pkg/progspace"
)

// Config bounds an exploration run.  Zero values take defaults through
// Finalise, so a partial TOML file (or none at all) is acceptable.
type Config struct {
	// MaxDepth is the deepest expression nesting explored, inclusive.
	MaxDepth uint `toml:"max_depth"`
	// OpCount is how many assignments each generated program contains.
	OpCount uint `toml:"op_count"`
	// Names is the pool of variable names drawn from, in assignment order.
	Names []string `toml:"names"`
	// Concurrency bounds how many cases are checked at once.
	Concurrency uint `toml:"concurrency"`
}

// DefaultConfig explores single-assignment programs of depth zero.
func DefaultConfig() Config {
	return Config{
		MaxDepth:    0,
		OpCount:     1,
		Names:       progspace.DefaultNames,
		Concurrency: uint(runtime.NumCPU()),
	}
}

// ReadConfig loads a configuration from a TOML file, leaving any unset
// option at its default.
func ReadConfig(filename string) (Config, error) {
	config := DefaultConfig()
	//
	meta, err := toml.DecodeFile(filename, &config)
	if err != nil {
		return config, err
	}
	//
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return config, fmt.Errorf("unknown configuration key %q", undecoded[0].String())
	}
	//
	return config, config.Validate()
}

// Finalise replaces any zeroed option with its default.
func (p *Config) Finalise() {
	def := DefaultConfig()
	//
	if p.OpCount == 0 {
		p.OpCount = def.OpCount
	}
	//
	if len(p.Names) == 0 {
		p.Names = def.Names
	}
	//
	if p.Concurrency == 0 {
		p.Concurrency = def.Concurrency
	}
}

// Validate checks a configuration is usable, filling defaults first.
func (p *Config) Validate() error {
	p.Finalise()
	//
	if p.OpCount > uint(len(p.Names)) {
		return fmt.Errorf("op count %d exceeds the %d available names",
			p.OpCount, len(p.Names))
	}
	//
	seen := make(map[string]bool, len(p.Names))
	//
	for _, name := range p.Names {
		if !validName(name) {
			return fmt.Errorf("invalid variable name %q", name)
		}
		//
		if seen[name] {
			return fmt.Errorf("duplicate variable name %q", name)
		}
		//
		seen[name] = true
	}
	//
	return nil
}

// valid names follow the identifier grammar, and avoid the keywords.
func validName(name string) bool {
	if name == "" || name == "print" || name == "append" {
		return false
	}
	//
	for i, c := range name {
		head := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		//
		if !head && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}
	//
	return true
}
