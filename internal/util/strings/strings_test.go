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

package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinStringsWithQuotes(t *testing.T) {
	testCases := map[string]struct {
		slice    []string
		expected string
	}{
		"empty slice": {
			slice:    []string{},
			expected: ``,
		},
		"single element": {
			slice:    []string{"url"},
			expected: `"url"`,
		},
		"multiple elements": {
			slice:    []string{"path", "url", "autoupdate-branch"},
			expected: `"path", "url", "autoupdate-branch"`,
		},
	}

	for tn, tc := range testCases {
		t.Run(tn, func(t *testing.T) {
			res := JoinStringsWithQuotes(tc.slice)
			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestSplitFirstLine(t *testing.T) {
	testCases := map[string]struct {
		input         string
		expectedFirst string
		expectedRest  string
	}{
		"single line": {
			input:         "lib: Update to v2.0",
			expectedFirst: "lib: Update to v2.0",
			expectedRest:  "",
		},
		"commit message with body": {
			input:         "lib: Update to v2.0\n\nChanges between a and b:\n\n- b: fix\n",
			expectedFirst: "lib: Update to v2.0",
			expectedRest:  "Changes between a and b:\n\n- b: fix\n",
		},
		"crlf line endings": {
			input:         "subject\r\n\r\nbody",
			expectedFirst: "subject",
			expectedRest:  "body",
		},
	}

	for tn, tc := range testCases {
		t.Run(tn, func(t *testing.T) {
			first, rest := SplitFirstLine(tc.input)
			assert.Equal(t, tc.expectedFirst, first)
			assert.Equal(t, tc.expectedRest, rest)
		})
	}
}
