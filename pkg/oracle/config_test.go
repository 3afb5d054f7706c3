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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_01(t *testing.T) {
	config, err := readConfigString(t, `
max_depth = 2
op_count = 3
names = ["a", "b", "c"]
concurrency = 4
`)
	require.NoError(t, err)
	assert.Equal(t, uint(2), config.MaxDepth)
	assert.Equal(t, uint(3), config.OpCount)
	assert.Equal(t, []string{"a", "b", "c"}, config.Names)
	assert.Equal(t, uint(4), config.Concurrency)
}

func Test_Config_02(t *testing.T) {
	// unset options fall back to defaults
	config, err := readConfigString(t, `max_depth = 1`)
	require.NoError(t, err)
	assert.Equal(t, uint(1), config.MaxDepth)
	assert.Equal(t, DefaultConfig().OpCount, config.OpCount)
	assert.Equal(t, DefaultConfig().Names, config.Names)
	assert.NotZero(t, config.Concurrency)
}

func Test_Config_03(t *testing.T) {
	_, err := readConfigString(t, `op_count = 9`)
	assert.ErrorContains(t, err, "exceeds")
}

func Test_Config_04(t *testing.T) {
	_, err := readConfigString(t, `names = ["ok", "append"]`)
	assert.ErrorContains(t, err, "invalid variable name")
}

func Test_Config_05(t *testing.T) {
	_, err := readConfigString(t, `names = ["dup", "dup"]`)
	assert.ErrorContains(t, err, "duplicate")
}

func Test_Config_06(t *testing.T) {
	_, err := readConfigString(t, `depht = 1`)
	assert.ErrorContains(t, err, "unknown configuration key")
}

func Test_Config_07(t *testing.T) {
	_, err := readConfigString(t, `names = ["1up"]`)
	assert.ErrorContains(t, err, "invalid variable name")
}

func readConfigString(t *testing.T, contents string) (Config, error) {
	t.Helper()
	//
	filename := filepath.Join(t.TempDir(), "harness.toml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0600))
	//
	return ReadConfig(filename)
}
