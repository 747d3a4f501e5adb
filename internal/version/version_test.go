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

package version_test

import (
	"testing"

	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	testCases := map[string]struct {
		tag      string
		expr     string
		expected version.SemanticVersion
		wantErr  bool
	}{
		"v prefix, three components": {
			tag:      "v1.2.3",
			expected: version.SemanticVersion{Major: 1, Minor: 2, Patch: 3},
		},
		"no prefix, three components": {
			tag:      "1.2.3",
			expected: version.SemanticVersion{Major: 1, Minor: 2, Patch: 3},
		},
		"two components means patch zero": {
			tag:      "1.2",
			expected: version.SemanticVersion{Major: 1, Minor: 2, Patch: 0},
		},
		"custom regex": {
			tag:      "R_2_4_9",
			expr:     `R_(\d+)_(\d+)_(\d+)`,
			expected: version.SemanticVersion{Major: 2, Minor: 4, Patch: 9},
		},
		"custom two group regex": {
			tag:      "release-10.4",
			expr:     `release-(\d+)\.(\d+)$`,
			expected: version.SemanticVersion{Major: 10, Minor: 4},
		},
		"pre-release suffix": {
			tag:     "v1.2.3-rc1",
			wantErr: true,
		},
		"prefix before the version": {
			tag:     "qa-test-v1.2.3",
			wantErr: true,
		},
		"four components": {
			tag:     "v1.2.3.4",
			wantErr: true,
		},
		"single component": {
			tag:     "v1",
			wantErr: true,
		},
		"non numeric group": {
			tag:     "vX.2",
			expr:    `v(\w+)\.(\d+)$`,
			wantErr: true,
		},
		"empty required group": {
			tag:     "v.2",
			expr:    `v(\d*)\.(\d+)$`,
			wantErr: true,
		},
	}

	for tn, tc := range testCases {
		t.Run(tn, func(t *testing.T) {
			p := version.Default
			if tc.expr != "" {
				var err error
				p, err = version.Compile(tc.expr)
				require.NoError(t, err)
			}

			v, err := p.Extract(tc.tag)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidVersionFormat))
				assert.Equal(t, errors.Version, errors.KindOf(err))
				assert.Contains(t, err.Error(), tc.tag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestCompile(t *testing.T) {
	testCases := map[string]struct {
		expr          string
		expectedArity int
		expectedErr   string
	}{
		"default": {
			expr:          version.DefaultExpr,
			expectedArity: 3,
		},
		"two groups": {
			expr:          `(\d+)\.(\d+)`,
			expectedArity: 2,
		},
		"one group": {
			expr:        `v(\d+)`,
			expectedErr: "must have 2 or 3 capture groups, got 1",
		},
		"four groups": {
			expr:        `(\d+)\.(\d+)\.(\d+)\.(\d+)`,
			expectedErr: "must have 2 or 3 capture groups, got 4",
		},
		"invalid syntax": {
			expr:        `v(\d+`,
			expectedErr: "invalid version regex",
		},
	}

	for tn, tc := range testCases {
		t.Run(tn, func(t *testing.T) {
			p, err := version.Compile(tc.expr)
			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)
				assert.Equal(t, errors.Config, errors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedArity, p.Arity())
			assert.Equal(t, tc.expr, p.String())
		})
	}
}

func TestSemanticVersion(t *testing.T) {
	v := version.SemanticVersion{Major: 2, Minor: 0, Patch: 1}
	assert.Equal(t, "2.0.1", v.String())
	assert.True(t, v.Semver().GreaterThan(version.SemanticVersion{Major: 1, Minor: 9, Patch: 9}.Semver()))
	assert.True(t, v.Semver().Equal(version.SemanticVersion{Major: 2, Patch: 1}.Semver()))
}
