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

// Package testutil builds throwaway git repositories for tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/otiai10/copy"
	assertnow "gotest.tools/assert"
)

// GitEnv is the environment used for every git command run by tests. It
// pins the commit identity and allows file:// transport for submodules,
// which recent git versions refuse by default.
var GitEnv = []string{
	"GIT_AUTHOR_NAME=Test Author",
	"GIT_AUTHOR_EMAIL=author@example.com",
	"GIT_COMMITTER_NAME=Test Committer",
	"GIT_COMMITTER_EMAIL=committer@example.com",
	"GIT_CONFIG_NOSYSTEM=1",
	"GIT_CONFIG_COUNT=2",
	"GIT_CONFIG_KEY_0=protocol.file.allow",
	"GIT_CONFIG_VALUE_0=always",
	"GIT_CONFIG_KEY_1=commit.gpgsign",
	"GIT_CONFIG_VALUE_1=false",
}

// SetGitEnv sets GitEnv in the environment of the test process, for code
// that runs git without an explicit environment.
func SetGitEnv(t *testing.T) {
	t.Helper()
	for _, kv := range GitEnv {
		k, v, _ := strings.Cut(kv, "=")
		t.Setenv(k, v)
	}
}

// SkipIfNoGit skips the test when there is no git executable on the path.
func SkipIfNoGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}
}

// TestGitRepo manages a local git repository for testing
type TestGitRepo struct {
	// RepoDirectory is the temp directory of the git repo
	RepoDirectory string

	t *testing.T
}

// NewTestGitRepo initializes an empty repository with the given initial
// branch in a new temporary directory.
func NewTestGitRepo(t *testing.T, branch string) *TestGitRepo {
	t.Helper()
	SkipIfNoGit(t)
	g := &TestGitRepo{
		RepoDirectory: t.TempDir(),
		t:             t,
	}
	g.Git("init", "--quiet", "--initial-branch="+branch)
	return g
}

// Git runs a git command in the repository and returns its trimmed stdout.
// The test fails if the command fails.
func (g *TestGitRepo) Git(args ...string) string {
	g.t.Helper()
	return RunGit(g.t, g.RepoDirectory, args...)
}

// RunGit runs a git command in dir with GitEnv and returns its trimmed
// stdout. The test fails if the command fails.
func RunGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), GitEnv...)
	out, err := cmd.CombinedOutput()
	assertnow.NilError(t, err, "git %s: %s", strings.Join(args, " "), string(out))
	return strings.TrimSpace(string(out))
}

// WriteFile writes content to the file name relative to the repository
// root, creating parent directories.
func (g *TestGitRepo) WriteFile(name, content string) {
	g.t.Helper()
	p := filepath.Join(g.RepoDirectory, name)
	assertnow.NilError(g.t, os.MkdirAll(filepath.Dir(p), 0700))
	assertnow.NilError(g.t, os.WriteFile(p, []byte(content), 0600))
}

// ReadFile returns the content of the file name relative to the repository
// root.
func (g *TestGitRepo) ReadFile(name string) string {
	g.t.Helper()
	b, err := os.ReadFile(filepath.Join(g.RepoDirectory, name))
	assertnow.NilError(g.t, err)
	return string(b)
}

// CommitFile creates or overwrites a file, commits it and returns the hash
// of the new commit.
func (g *TestGitRepo) CommitFile(name, content, message string) string {
	g.t.Helper()
	g.WriteFile(name, content)
	g.Git("add", name)
	g.Git("commit", "--quiet", "-m", message)
	return g.Head()
}

// CommitTag commits a release file and tags the commit with an annotated
// tag. It returns the hash of the tagged commit.
func (g *TestGitRepo) CommitTag(tag string) string {
	g.t.Helper()
	commit := g.CommitFile("release_"+tag+".md", "", "Release "+tag)
	g.Tag(tag, commit, true)
	return commit
}

// Tag tags commit. Annotated tags carry a message, lightweight tags don't.
func (g *TestGitRepo) Tag(tag, commit string, annotated bool) {
	g.t.Helper()
	if annotated {
		g.Git("tag", "-a", "-m", "Release "+tag, tag, commit)
		return
	}
	g.Git("tag", tag, commit)
}

// CheckoutBranch checks out a branch, creating it first if create is true.
func (g *TestGitRepo) CheckoutBranch(branch string, create bool) {
	g.t.Helper()
	if create {
		g.Git("checkout", "--quiet", "-b", branch)
		return
	}
	g.Git("checkout", "--quiet", branch)
}

// Head returns the hash of the commit HEAD points to.
func (g *TestGitRepo) Head() string {
	g.t.Helper()
	return g.Git("rev-parse", "HEAD")
}

// CurrentBranch returns the checked out branch.
func (g *TestGitRepo) CurrentBranch() string {
	g.t.Helper()
	return g.Git("rev-parse", "--abbrev-ref", "HEAD")
}

// AddSubmodule adds dep as a submodule at path tracking branch, applies the
// given .gitmodules keys (without the "submodule.<path>." prefix) and
// commits the result.
func (g *TestGitRepo) AddSubmodule(dep *TestGitRepo, path, branch string, keys map[string]string) {
	g.t.Helper()
	g.Git("submodule", "--quiet", "add", "-b", branch, dep.RepoDirectory, path)
	for k, v := range keys {
		g.Git("config", "--file", ".gitmodules", "submodule."+path+"."+k, v)
	}
	g.Git("add", ".gitmodules", path)
	g.Git("commit", "--quiet", "-m", "added "+path+" as a submodule")
}

// PinSubmodule moves the submodule at path to commit and commits the new
// pointer in the parent repository.
func (g *TestGitRepo) PinSubmodule(path, commit string) {
	g.t.Helper()
	sub := filepath.Join(g.RepoDirectory, path)
	RunGit(g.t, sub, "fetch", "--quiet", "--tags", "origin")
	RunGit(g.t, sub, "checkout", "--quiet", commit)
	g.Git("add", path)
	g.Git("commit", "--quiet", "-m", "update "+path+" to "+commit)
}

// SubmoduleHead returns the commit the submodule at path has checked out.
func (g *TestGitRepo) SubmoduleHead(path string) string {
	g.t.Helper()
	return RunGit(g.t, filepath.Join(g.RepoDirectory, path), "rev-parse", "HEAD")
}

// CopyData copies the directory data (usually under testdata) into the
// repository root.
func (g *TestGitRepo) CopyData(data string) {
	g.t.Helper()
	assertnow.NilError(g.t, copy.Copy(data, g.RepoDirectory))
}
