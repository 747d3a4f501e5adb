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

package submodule_test

import (
	"bytes"
	"testing"

	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/gitutil"
	"github.com/espressif/github-actions/internal/printer/fake"
	. "github.com/espressif/github-actions/internal/submodule"
	"github.com/espressif/github-actions/internal/testutil"
	"github.com/espressif/github-actions/internal/types"
	"github.com/espressif/github-actions/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfigs(t *testing.T, gitmodules string) ([]Config, string, error) {
	t.Helper()
	repo := testutil.NewTestGitRepo(t, "main")
	if gitmodules != "" {
		repo.WriteFile(GitmodulesFile, gitmodules)
	}
	runner, err := gitutil.NewLocalGitRunner(repo.RepoDirectory)
	require.NoError(t, err)

	var out bytes.Buffer
	configs, err := LoadConfigs(fake.CtxWithPrinter(&out, &out), runner)
	return configs, out.String(), err
}

func TestLoadConfigs(t *testing.T) {
	testCases := map[string]struct {
		gitmodules string
		expected   []Config
		output     string
	}{
		"no .gitmodules": {
			gitmodules: "",
			expected:   nil,
		},
		"all keys": {
			gitmodules: `[submodule "components/foo"]
	path = components/foo
	url = https://github.com/espressif/foo.git
	autoupdate = true
	autoupdate-branch = release/v1
	autoupdate-tag-glob = v1.*
	autoupdate-include-lightweight = true
	autoupdate-manifest = components/foo/idf_component.yml
	autoupdate-ver-regex = foo-(\\d+)\\.(\\d+)
`,
			expected: []Config{
				{
					Name:               "components/foo",
					Path:               "components/foo",
					URL:                "https://github.com/espressif/foo.git",
					Branch:             "release/v1",
					TagGlob:            "v1.*",
					IncludeLightweight: true,
					Manifest:           "components/foo/idf_component.yml",
				},
			},
		},
		"defaults": {
			gitmodules: `[submodule "bar"]
	path = third_party/bar
	url = ../bar.git
	autoupdate = true
	autoupdate-branch = main
`,
			expected: []Config{
				{
					Name:   "bar",
					Path:   "third_party/bar",
					URL:    "../bar.git",
					Branch: "main",
				},
			},
		},
		"valueless autoupdate is true": {
			gitmodules: `[submodule "bar"]
	path = bar
	url = ../bar.git
	autoupdate
	autoupdate-branch = main
`,
			expected: []Config{
				{
					Name:   "bar",
					Path:   "bar",
					URL:    "../bar.git",
					Branch: "main",
				},
			},
		},
		"disabled and absent autoupdate are skipped": {
			gitmodules: `[submodule "a"]
	path = a
	url = ../a.git
	autoupdate = false
[submodule "b"]
	path = b
	url = ../b.git
[submodule "c"]
	path = c
	url = ../c.git
	autoupdate = true
	autoupdate-branch = master
`,
			expected: []Config{
				{
					Name:   "c",
					Path:   "c",
					URL:    "../c.git",
					Branch: "master",
				},
			},
			output: "Skipping submodule a, autoupdate not enabled\n" +
				"Skipping submodule b, autoupdate not enabled\n",
		},
		"file order is kept": {
			gitmodules: `[submodule "z"]
	path = z
	url = ../z.git
	autoupdate = true
	autoupdate-branch = main
[submodule "a"]
	path = a
	url = ../a.git
	autoupdate = true
	autoupdate-branch = main
`,
			expected: []Config{
				{Name: "z", Path: "z", URL: "../z.git", Branch: "main"},
				{Name: "a", Path: "a", URL: "../a.git", Branch: "main"},
			},
		},
	}

	for tn, tc := range testCases {
		t.Run(tn, func(t *testing.T) {
			configs, output, err := loadConfigs(t, tc.gitmodules)
			require.NoError(t, err)
			assert.Equal(t, tc.output, output)
			require.Len(t, configs, len(tc.expected))
			for i := range configs {
				require.NotNil(t, configs[i].VersionPattern)
				configs[i].VersionPattern = nil
			}
			assert.Equal(t, tc.expected, configs)
		})
	}
}

func TestLoadConfigs_versionPattern(t *testing.T) {
	configs, _, err := loadConfigs(t, `[submodule "foo"]
	path = foo
	url = ../foo.git
	autoupdate = true
	autoupdate-branch = main
	autoupdate-ver-regex = foo-(\\d+)\\.(\\d+)
[submodule "bar"]
	path = bar
	url = ../bar.git
	autoupdate = true
	autoupdate-branch = main
`)
	require.NoError(t, err)
	require.Len(t, configs, 2)

	assert.Equal(t, `foo-(\d+)\.(\d+)`, configs[0].VersionPattern.String())
	assert.Equal(t, 2, configs[0].VersionPattern.Arity())
	v, err := configs[0].VersionPattern.Extract("foo-3.4")
	require.NoError(t, err)
	assert.Equal(t, version.SemanticVersion{Major: 3, Minor: 4}, v)

	assert.Same(t, version.Default, configs[1].VersionPattern)
}

func TestLoadConfigs_errors(t *testing.T) {
	testCases := map[string]struct {
		gitmodules string
		fields     []string
	}{
		"invalid boolean": {
			gitmodules: `[submodule "foo"]
	path = foo
	url = ../foo.git
	autoupdate = yes
	autoupdate-branch = main
`,
			fields: []string{"autoupdate"},
		},
		"invalid lightweight boolean": {
			gitmodules: `[submodule "foo"]
	path = foo
	url = ../foo.git
	autoupdate = true
	autoupdate-branch = main
	autoupdate-include-lightweight = 1
`,
			fields: []string{"autoupdate-include-lightweight"},
		},
		"missing required keys": {
			gitmodules: `[submodule "foo"]
	path = foo
	autoupdate = true
`,
			fields: []string{"url", "autoupdate-branch"},
		},
		"invalid glob": {
			gitmodules: `[submodule "foo"]
	path = foo
	url = ../foo.git
	autoupdate = true
	autoupdate-branch = main
	autoupdate-tag-glob = v[1
`,
			fields: []string{"autoupdate-tag-glob"},
		},
		"brace alternation in glob": {
			gitmodules: `[submodule "foo"]
	path = foo
	url = ../foo.git
	autoupdate = true
	autoupdate-branch = main
	autoupdate-tag-glob = v{1,2}*
`,
			fields: []string{"autoupdate-tag-glob"},
		},
		"manifest outside of the repository": {
			gitmodules: `[submodule "foo"]
	path = foo
	url = ../foo.git
	autoupdate = true
	autoupdate-branch = main
	autoupdate-manifest = ../idf_component.yml
`,
			fields: []string{"autoupdate-manifest"},
		},
		"version regex with one group": {
			gitmodules: `[submodule "foo"]
	path = foo
	url = ../foo.git
	autoupdate = true
	autoupdate-branch = main
	autoupdate-ver-regex = v(\\d+)
`,
			fields: []string{"autoupdate-ver-regex"},
		},
	}

	for tn, tc := range testCases {
		t.Run(tn, func(t *testing.T) {
			_, _, err := loadConfigs(t, tc.gitmodules)
			require.Error(t, err)
			assert.Equal(t, errors.Config, errors.KindOf(err))

			var kerr *errors.Error
			require.True(t, errors.As(err, &kerr))
			assert.Equal(t, types.SubmodulePath("foo"), kerr.Submodule)

			var verr *errors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.fields, verr.Violations.Fields())
		})
	}
}

func TestConfig_ShortName(t *testing.T) {
	assert.Equal(t, "foo", Config{Path: "components/foo"}.ShortName())
	assert.Equal(t, "bar", Config{Path: "bar"}.ShortName())
}
