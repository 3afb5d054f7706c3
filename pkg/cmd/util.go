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
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fhackett/infix/pkg/infix"
	"github.com/fhackett/infix/pkg/util/source"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected uint, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Extract the parser configuration flags shared by several commands.
func getParserConfig(cmd *cobra.Command) infix.Config {
	return infix.Config{
		EnableTuples:        getFlag(cmd, "enable-tuples"),
		TuplesRequireParens: getFlag(cmd, "require-parens"),
	}
}

// Parse a source file, reporting any syntax errors and exiting on failure.
func parseSourceFile(filename string, config infix.Config) *infix.Node {
	srcfile, err := source.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	tree, errs := infix.Parse(srcfile, config)
	if len(errs) != 0 {
		for _, e := range errs {
			fmt.Println(e.Error())
		}
		//
		os.Exit(1)
	}
	//
	return tree
}
