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
	"golang.org/x/term"

	"github.com/fhackett/infix/pkg/oracle"
)

// exploreCmd represents the explore command
var exploreCmd = &cobra.Command{
	Use:   "explore [flags]",
	Short: "Exhaustively round-trip all generated programs.",
	Long: `Generate every program up to the given depth and operation count,
	render each in every legal way, and check that every rendering either
	reparses to the identical tree or fails exactly when the parser
	configuration predicts.  Any other outcome aborts the run.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		config := oracle.DefaultConfig()
		// Load the harness file first, so direct flags win
		if filename := getString(cmd, "config"); filename != "" {
			var err error
			//
			if config, err = oracle.ReadConfig(filename); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
		//
		if cmd.Flags().Changed("depth") {
			config.MaxDepth = getUint(cmd, "depth")
		}
		//
		if cmd.Flags().Changed("op-count") {
			config.OpCount = getUint(cmd, "op-count")
		}
		//
		if cmd.Flags().Changed("concurrency") {
			config.Concurrency = getUint(cmd, "concurrency")
		}
		//
		driver, err := oracle.New(config)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// mirror the defaults the driver filled in, so the banner is accurate
		config.Finalise()
		//
		ansiEscapes := term.IsTerminal(int(os.Stdout.Fd())) && !getFlag(cmd, "no-ansi")
		//
		fmt.Printf("Testing generated programs, up to depth %d. [concurrency factor = %d]\n",
			config.MaxDepth, config.Concurrency)
		//
		driver.Progress = progressPrinter(ansiEscapes)
		//
		cases, err := driver.Explore()
		if err != nil {
			fmt.Println(err)
			fmt.Println("Aborting.")
			os.Exit(1)
		}
		//
		fmt.Printf("Tested %d cases, all ok.\n", cases)
	},
}

// progressPrinter periodically reports the running case count, rewriting the
// current line via VT100 escapes when the output is a terminal.
func progressPrinter(ansiEscapes bool) func(uint, uint) {
	var (
		lastDepth  uint
		firstPrint = true
		firstCount = true
	)
	//
	return func(depth uint, cases uint) {
		if firstPrint || depth != lastDepth {
			fmt.Printf("Exploring depth %d...\n", depth)
			//
			lastDepth = depth
			firstPrint = false
			firstCount = true
			//
			return
		}
		// thin out reports as the counts grow
		if cases%1000 != 0 && (cases > 1000 || cases%100 != 0) {
			return
		}
		//
		if ansiEscapes && !firstCount {
			// go up one line, clear it, and return to its start
			fmt.Print("\033[1A\033[2K\r")
		}
		//
		firstCount = false
		//
		fmt.Printf("%d cases ok...\n", cases)
	}
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	exploreCmd.Flags().Uint("depth", 0, "how deeply nested generated expressions are")
	exploreCmd.Flags().Uint("op-count", 1, "how many assignments each program contains")
	exploreCmd.Flags().Uint("concurrency", 0, "how many cases to check at once (defaults to core count)")
	exploreCmd.Flags().String("config", "", "harness configuration file (TOML)")
	exploreCmd.Flags().Bool("no-ansi", false, "disable VT100 escapes in progress output")
}
