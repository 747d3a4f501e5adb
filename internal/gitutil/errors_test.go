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

package gitutil

import (
	"fmt"
	"testing"

	"github.com/espressif/github-actions/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestDetermineErrorType(t *testing.T) {
	testCases := map[string]struct {
		stdErr   string
		expected GitExecErrorType
	}{
		"unknown revision": {
			stdErr:   "fatal: ambiguous argument 'foo': unknown revision or path not in the working tree.",
			expected: UnknownReference,
		},
		"no tags at all": {
			stdErr:   "fatal: No names found, cannot describe anything.",
			expected: NoTagFound,
		},
		"no annotated tags": {
			stdErr:   "fatal: No annotated tags can describe '4b825dc642cb6eb9a060e54bf8d69288fbee4904'.",
			expected: NoTagFound,
		},
		"no tags matching": {
			stdErr:   "fatal: No tags can describe '4b825dc642cb6eb9a060e54bf8d69288fbee4904'.",
			expected: NoTagFound,
		},
		"auth required": {
			stdErr:   "fatal: could not read Username for 'https://github.com': terminal prompts disabled",
			expected: HTTPSAuthRequired,
		},
		"host unavailable": {
			stdErr:   "fatal: unable to access 'https://nope.invalid/': Could not resolve host: nope.invalid",
			expected: RepositoryUnavailable,
		},
		"repository not found": {
			stdErr:   "remote: Repository not found.\nfatal: repository 'https://github.com/a/b/' not found",
			expected: RepositoryNotFound,
		},
		"anything else": {
			stdErr:   "error: something went wrong",
			expected: Unknown,
		},
	}

	for tn, tc := range testCases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.expected, determineErrorType(tc.stdErr))
		})
	}
}

func TestExitCode(t *testing.T) {
	err := errors.E(errors.Op("test"), errors.Git, &GitExecError{
		Err:      fmt.Errorf("exit status 1"),
		ExitCode: 1,
		Type:     NoTagFound,
	})
	assert.Equal(t, 1, ExitCode(err))
	assert.True(t, IsType(err, NoTagFound))
	assert.False(t, IsType(err, UnknownReference))

	assert.Equal(t, -1, ExitCode(fmt.Errorf("not a git error")))
}
