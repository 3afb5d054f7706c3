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
	"strings"
)

// Diffy formats a line-by-line view of actual against expected: matching
// lines indented, differing lines marked "!", surplus lines marked "+" and
// truncated after a few with an ellipsis.
func Diffy(expected string, actual string) string {
	var (
		builder       strings.Builder
		expectedLines = splitLines(expected)
		actualLines   = splitLines(actual)
	)
	//
	for pos, actualLine := range actualLines {
		switch {
		case pos < len(expectedLines) && actualLine == expectedLines[pos]:
			builder.WriteString("  ")
		case pos < len(expectedLines):
			builder.WriteString("! ")
		case pos-len(expectedLines) > 3:
			builder.WriteString("...\n")
			return builder.String()
		default:
			builder.WriteString("+ ")
		}
		//
		builder.WriteString(actualLine)
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	// a trailing newline does not mean a trailing empty line
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	//
	return lines
}
