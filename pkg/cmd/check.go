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
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fhackett/infix/pkg/infix"
	"github.com/fhackett/infix/pkg/oracle"
	"github.com/fhackett/infix/pkg/util/source"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] test_dir",
	Short: "Check a directory of example programs against expected trees.",
	Long: `Scan a directory for .infix files and check each against its
	.expected companion.  The companion opens with one or more "//!" header
	lines naming the parser configuration for a run, followed by the tree the
	parse should produce.  A run headed --expect-fail succeeds when the parse
	reports errors.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		checked, err := checkDirectory(args[0])
		if err != nil {
			fmt.Println(err)
			fmt.Println("Aborting.")
			os.Exit(1)
		}
		//
		if checked == 0 {
			fmt.Println("No test files found.")
			os.Exit(1)
		}
		//
		fmt.Printf("Checked %d runs, all ok.\n", checked)
	},
}

func checkDirectory(dir string) (uint, error) {
	var checked uint
	//
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() || filepath.Ext(path) != ".infix" {
			return err
		}
		//
		expected := strings.TrimSuffix(path, ".infix") + ".expected"
		if _, err := os.Stat(expected); err != nil {
			fmt.Printf("Expected file %s not found, skipping.\n", expected)
			return nil
		}
		//
		return checkFixture(path, expected, &checked)
	})
	//
	return checked, err
}

// checkFixture runs every header of one expected file against its source.
func checkFixture(srcPath string, expectedPath string, checked *uint) error {
	headers, body, err := readExpected(expectedPath)
	if err != nil {
		return err
	}
	//
	srcfile, err := source.ReadFile(srcPath)
	if err != nil {
		return err
	}
	//
	for _, header := range headers {
		fmt.Printf("Testing file %s, %s ... ", srcPath, header)
		//
		config, expectFail, err := parseHeader(header)
		if err != nil {
			return err
		}
		//
		if err := checkRun(srcfile, config, expectFail, body); err != nil {
			return err
		}
		//
		fmt.Println("ok.")
		//
		*checked++
	}
	//
	return nil
}

func checkRun(srcfile *source.File, config infix.Config, expectFail bool, body string) error {
	tree, errs := infix.Parse(srcfile, config)
	//
	if len(errs) != 0 {
		if expectFail {
			return nil
		}
		//
		fmt.Println("unexpected failure:")
		//
		for _, e := range errs {
			fmt.Println(e.Error())
		}
		//
		return fmt.Errorf("parsing %s failed", srcfile.Filename())
	}
	//
	if expectFail {
		return fmt.Errorf("parsing %s unexpectedly succeeded", srcfile.Filename())
	}
	//
	if actual := tree.String() + "\n"; actual != body {
		fmt.Println("unexpected output:")
		fmt.Print(oracle.Diffy(body, actual))
		//
		return fmt.Errorf("wrong tree for %s", srcfile.Filename())
	}
	//
	return nil
}

// readExpected splits an expected file into its "//!" headers and the tree
// dump which follows them.
func readExpected(filename string) ([]string, string, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, "", err
	}
	//
	var (
		headers []string
		lines   = strings.Split(string(bytes), "\n")
		pos     int
	)
	//
	for pos < len(lines) && strings.HasPrefix(lines[pos], "//!") {
		headers = append(headers, strings.TrimSpace(strings.TrimPrefix(lines[pos], "//!")))
		pos++
	}
	//
	if len(headers) == 0 {
		return nil, "", fmt.Errorf("test file %s has no test arguments in it", filename)
	}
	//
	return headers, strings.Join(lines[pos:], "\n"), nil
}

func parseHeader(header string) (infix.Config, bool, error) {
	var (
		config     infix.Config
		expectFail bool
	)
	//
	for _, field := range strings.Fields(header) {
		switch field {
		case "--enable-tuples":
			config.EnableTuples = true
		case "--require-parens":
			config.TuplesRequireParens = true
		case "--expect-fail":
			expectFail = true
		default:
			return config, false, fmt.Errorf("unknown test argument %q", field)
		}
	}
	//
	return config, expectFail, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
