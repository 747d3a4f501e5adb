// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package run

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordSepNormalizeFunc(t *testing.T) {
	testCases := map[string]struct {
		name string
		want string
	}{
		"underscores": {name: "log_file_max_size", want: "log-file-max-size"},
		"dashes":      {name: "stack-trace", want: "stack-trace"},
		"single word": {name: "v", want: "v"},
	}
	for tn, tc := range testCases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, string(wordSepNormalizeFunc(nil, tc.name)))
		})
	}
}

func TestGetMain(t *testing.T) {
	cmd := GetMain(context.Background())

	for _, name := range []string{"log_dir", "log-dir", "vmodule", "stack-trace"} {
		f := cmd.PersistentFlags().Lookup(name)
		if assert.NotNil(t, f, name) {
			assert.True(t, f.Hidden, name)
		}
	}
	v := cmd.PersistentFlags().Lookup("v")
	require.NotNil(t, v)
	assert.False(t, v.Hidden)

	for _, path := range [][]string{
		{"submodule", "update"},
		{"submodule", "list"},
		{"sub", "ls"},
		{"version"},
	} {
		c, _, err := cmd.Find(path)
		require.NoError(t, err, path)
		assert.NotEqual(t, cmd, c, path)
	}
}

func TestGetMain_versionPerRoot(t *testing.T) {
	first := GetMain(context.Background())
	second := GetMain(context.Background())

	v1, _, err := first.Find([]string{"version"})
	require.NoError(t, err)
	v2, _, err := second.Find([]string{"version"})
	require.NoError(t, err)
	assert.NotSame(t, v1, v2)
	assert.Same(t, first, v1.Parent())
	assert.Same(t, second, v2.Parent())
}
