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

// Package gitutil runs git commands against local repositories.
package gitutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/espressif/github-actions/internal/errors"
	"k8s.io/klog/v2"
)

// NewLocalGitRunner returns a new GitLocalRunner for a local repository.
func NewLocalGitRunner(dir string) (*GitLocalRunner, error) {
	const op errors.Op = "gitutil.NewLocalGitRunner"
	p, err := exec.LookPath("git")
	if err != nil {
		return nil, errors.E(op, errors.Git, &GitExecError{
			Type: GitExecutableNotFound,
			Err:  fmt.Errorf("no 'git' program on path: %w", err),
		})
	}

	return &GitLocalRunner{
		gitPath: p,
		Dir:     dir,
	}, nil
}

// GitLocalRunner runs git commands in a local git repo.
type GitLocalRunner struct {
	// Path to the git executable.
	gitPath string

	// Dir is the directory the commands are run in.
	Dir string

	// Env holds additional environment variables in the form KEY=VALUE.
	// They are appended to the environment of the current process.
	Env []string
}

// In returns a runner for the directory dir, sharing the git executable and
// environment of g. Relative paths are resolved against g.Dir.
func (g *GitLocalRunner) In(dir string) *GitLocalRunner {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(g.Dir, dir)
	}
	return &GitLocalRunner{
		gitPath: g.gitPath,
		Dir:     dir,
		Env:     g.Env,
	}
}

type RunResult struct {
	Stdout string
	Stderr string
}

// Run runs a git command.
// Omit the 'git' part of the command.
// The first return value contains the output to Stdout and Stderr when
// running the command.
func (g *GitLocalRunner) Run(ctx context.Context, command string, args ...string) (RunResult, error) {
	return g.run(ctx, false, command, args...)
}

// RunVerbose runs a git command and mirrors its output to the output
// streams of the process.
// Omit the 'git' part of the command.
func (g *GitLocalRunner) RunVerbose(ctx context.Context, command string, args ...string) (RunResult, error) {
	return g.run(ctx, true, command, args...)
}

// run runs a git command.
// Omit the 'git' part of the command.
// The first return value contains the output to Stdout and Stderr when
// running the command.
func (g *GitLocalRunner) run(ctx context.Context, verbose bool, command string, args ...string) (RunResult, error) {
	const op errors.Op = "gitutil.run"

	fullArgs := append([]string{command}, args...)
	cmd := exec.CommandContext(ctx, g.gitPath, fullArgs...)
	cmd.Dir = g.Dir
	cmd.Env = append(os.Environ(), g.Env...)

	cmdStdout := &bytes.Buffer{}
	cmdStderr := &bytes.Buffer{}
	if verbose {
		cmd.Stdout = io.MultiWriter(cmdStdout, os.Stdout)
		cmd.Stderr = io.MultiWriter(cmdStderr, os.Stderr)
	} else {
		cmd.Stdout = cmdStdout
		cmd.Stderr = cmdStderr
	}

	klog.V(4).Infof("running git %s in %s", strings.Join(fullArgs, " "), g.Dir)
	err := cmd.Run()
	klog.V(6).Infof("git %s: stdout=%q stderr=%q", command, cmdStdout.String(), cmdStderr.String())
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return RunResult{}, errors.E(op, errors.Git, &GitExecError{
			Type:     determineErrorType(cmdStderr.String()),
			Args:     args,
			Command:  command,
			Err:      err,
			ExitCode: exitCode,
			StdOut:   cmdStdout.String(),
			StdErr:   cmdStderr.String(),
		})
	}
	return RunResult{
		Stdout: cmdStdout.String(),
		Stderr: cmdStderr.String(),
	}, nil
}

// RevParse resolves rev to a full commit hash.
func (g *GitLocalRunner) RevParse(ctx context.Context, rev string) (string, error) {
	const op errors.Op = "gitutil.RevParse"
	rr, err := g.Run(ctx, "rev-parse", "--verify", "--quiet", rev)
	if err != nil {
		AmendGitExecError(err, func(e *GitExecError) {
			e.Ref = rev
			if e.Type == Unknown {
				e.Type = UnknownReference
			}
		})
		return "", errors.E(op, err)
	}
	return strings.TrimSpace(rr.Stdout), nil
}

// CurrentBranch returns the name of the checked out branch. The second
// return value is false if HEAD is detached.
func (g *GitLocalRunner) CurrentBranch(ctx context.Context) (string, bool, error) {
	const op errors.Op = "gitutil.CurrentBranch"
	rr, err := g.Run(ctx, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err != nil {
		if ExitCode(err) == 1 {
			return "", false, nil
		}
		return "", false, errors.E(op, err)
	}
	return strings.TrimSpace(rr.Stdout), true, nil
}

// IsDirty returns true if the working tree or the index contain changes to
// tracked files. Untracked files are ignored.
func (g *GitLocalRunner) IsDirty(ctx context.Context) (bool, error) {
	const op errors.Op = "gitutil.IsDirty"
	rr, err := g.Run(ctx, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, errors.E(op, err)
	}
	return strings.TrimSpace(rr.Stdout) != "", nil
}
