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

// Package e2e holds helpers for tests that drive the ghactions binary
// through its root command.
package e2e

import (
	"testing"

	"github.com/espressif/github-actions/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// SetupSubmoduleRepos returns a dependency repository tagged v1.0 and
// v2.0, and a parent repository tracking its main branch at subPath with
// autoupdate enabled. The parent pins the commit tagged v1.0.
func SetupSubmoduleRepos(t *testing.T, subPath string, keys map[string]string) (dep, parent *testutil.TestGitRepo) {
	t.Helper()
	testutil.SetGitEnv(t)

	dep = testutil.NewTestGitRepo(t, "main")
	v1 := dep.CommitTag("v1.0")
	dep.CommitFile("a.txt", "1", "Add feature one")
	dep.CommitTag("v2.0")

	parent = testutil.NewTestGitRepo(t, "main")
	parent.CommitFile("README.md", "parent\n", "initial commit")
	allKeys := map[string]string{
		"autoupdate":        "true",
		"autoupdate-branch": "main",
	}
	for k, v := range keys {
		allKeys[k] = v
	}
	parent.AddSubmodule(dep, subPath, "main", allKeys)
	parent.PinSubmodule(subPath, v1)
	return dep, parent
}

// Exec runs a cobra command and fails if the command fails
func Exec(t *testing.T, cmd *cobra.Command) {
	if !assert.NoError(t, cmd.Execute()) {
		t.FailNow()
	}
}
