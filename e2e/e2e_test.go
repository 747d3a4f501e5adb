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

package e2e_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/espressif/github-actions/e2e"
	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/errors/resolver"
	"github.com/espressif/github-actions/run"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmoduleUpdate(t *testing.T) {
	type testCase struct {
		name        string
		keys        map[string]string
		data        string
		args        []string
		wantBranch  string
		wantVersion string
	}

	tests := []testCase{
		{
			name:       "update",
			wantBranch: "update/bar_v2.0",
		},
		{
			name:       "dry-run",
			args:       []string{"--dry-run"},
			wantBranch: "",
		},
		{
			name:        "manifest",
			keys:        map[string]string{"autoupdate-manifest": "idf_component.yml"},
			data:        "testdata/component",
			wantBranch:  "update/bar_v2.0",
			wantVersion: "testdata/component-v2.0/idf_component.yml",
		},
		{
			name:       "tag glob excludes every tag",
			keys:       map[string]string{"autoupdate-tag-glob": "release-*"},
			wantBranch: "",
		},
	}

	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			_, parent := e2e.SetupSubmoduleRepos(t, "components/bar", test.keys)
			if test.data != "" {
				parent.CopyData(test.data)
				parent.Git("add", ".")
				parent.Git("commit", "--quiet", "-m", "add manifest")
			}
			head := parent.Head()

			cmd := run.GetMain(context.Background())
			args := append([]string{
				"submodule", "update",
				"--repo", parent.RepoDirectory,
				"--push-to-remote=",
			}, test.args...)
			cmd.SetArgs(args)

			if test.name == "tag glob excludes every tag" {
				err := cmd.Execute()
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrNoMatchingTag))
				res, ok := resolver.ResolveError(err)
				require.True(t, ok)
				assert.Contains(t, res.Message, "release-*")
			} else {
				e2e.Exec(t, cmd)
			}

			assert.Equal(t, "main", parent.CurrentBranch())
			assert.Equal(t, head, parent.Head())
			assert.Equal(t, test.wantBranch,
				parent.Git("branch", "--list", "--format=%(refname:short)", "update/*"))
			if test.wantVersion != "" {
				want, err := os.ReadFile(test.wantVersion)
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(string(want)),
					parent.Git("show", test.wantBranch+":idf_component.yml"))
			}
		})
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := run.GetMain(context.Background())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	e2e.Exec(t, cmd)
	assert.Equal(t, "unknown\n", out.String())
}
