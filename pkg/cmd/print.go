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
)

// printCmd represents the print command
var printCmd = &cobra.Command{
	Use:   "print [flags] source_file",
	Short: "Parse a program and print it back in canonical form.",
	Long: `Parse the given source file and print the result, either as the
	fully parenthesised canonical text (the default) or as an indented tree
	dump (with --ast).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		tree := parseSourceFile(args[0], getParserConfig(cmd))
		//
		if getFlag(cmd, "ast") {
			fmt.Println(tree.String())
			return
		}
		//
		text, err := infix.Write(tree)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Print(text)
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().Bool("enable-tuples", false, "permit tuple literals, append and tuple indexing")
	printCmd.Flags().Bool("require-parens", false, "restrict tuple literals to parenthesised form")
	printCmd.Flags().Bool("ast", false, "print the tree rather than canonical text")
}
