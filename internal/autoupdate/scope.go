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

package autoupdate

import (
	"context"
	"fmt"
	"strings"

	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/gitutil"
	"k8s.io/klog/v2"
)

// restoreScope remembers the state of the parent repository before a
// submodule is processed so that it can be put back afterwards, whatever
// happened in between.
type restoreScope struct {
	runner *gitutil.GitLocalRunner

	// branch is the checked out branch, empty if HEAD was detached.
	branch string
	commit string

	// touched lists the paths staged or modified in the working tree.
	touched []string

	// committed is set once the touched paths have been committed.
	committed bool
}

func enterScope(ctx context.Context, runner *gitutil.GitLocalRunner) (*restoreScope, error) {
	const op errors.Op = "autoupdate.enterScope"
	branch, _, err := runner.CurrentBranch(ctx)
	if err != nil {
		return nil, errors.E(op, errors.Git, err)
	}
	commit, err := runner.RevParse(ctx, "HEAD")
	if err != nil {
		return nil, errors.E(op, errors.Git, err)
	}
	return &restoreScope{
		runner: runner,
		branch: branch,
		commit: commit,
	}, nil
}

// touch records that path is about to be modified.
func (s *restoreScope) touch(path string) {
	for _, p := range s.touched {
		if p == path {
			return
		}
	}
	s.touched = append(s.touched, path)
}

// stage adds path to the index.
func (s *restoreScope) stage(ctx context.Context, path string) error {
	const op errors.Op = "autoupdate.stage"
	s.touch(path)
	if _, err := s.runner.Run(ctx, "add", "--", path); err != nil {
		return errors.E(op, errors.Git, err)
	}
	return nil
}

// restore drops uncommitted changes to the touched paths, checks out the
// original branch (or commit) and resets all submodules to the commits
// recorded there. All steps are attempted even if one fails.
func (s *restoreScope) restore(ctx context.Context) error {
	const op errors.Op = "autoupdate.restore"
	ctx = context.WithoutCancel(ctx)
	var errs []error

	if !s.committed && len(s.touched) > 0 {
		klog.V(2).Infof("reverting uncommitted changes to %v", s.touched)
		args := append([]string{"--quiet", "HEAD", "--"}, s.touched...)
		if _, err := s.runner.Run(ctx, "reset", args...); err != nil {
			errs = append(errs, err)
		}
		// the working trees of submodules are reset by "submodule update" below
		tracked, err := s.trackedInHead(ctx)
		if err != nil {
			errs = append(errs, err)
		} else if len(tracked) > 0 {
			args = append([]string{"HEAD", "--"}, tracked...)
			if _, err := s.runner.Run(ctx, "checkout", args...); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if s.branch != "" {
		klog.V(2).Infof("checking out original branch %s", s.branch)
		if _, err := s.runner.Run(ctx, "checkout", "--quiet", s.branch); err != nil {
			errs = append(errs, err)
		}
	} else {
		klog.V(2).Infof("checking out original commit %s", s.commit)
		if _, err := s.runner.Run(ctx, "checkout", "--quiet", "--detach", s.commit); err != nil {
			errs = append(errs, err)
		}
	}

	if _, err := s.runner.Run(ctx, "submodule", "update", "--recursive"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.E(op, errors.Git, fmt.Errorf("cannot restore repository: %w", errors.Join(errs...)))
	}
	return nil
}

// trackedInHead returns the touched paths that exist in the HEAD commit.
func (s *restoreScope) trackedInHead(ctx context.Context) ([]string, error) {
	args := append([]string{"-z", "--name-only", "HEAD", "--"}, s.touched...)
	rr, err := s.runner.Run(ctx, "ls-tree", args...)
	if err != nil {
		return nil, err
	}
	var tracked []string
	for _, p := range strings.Split(rr.Stdout, "\x00") {
		if p != "" {
			tracked = append(tracked, p)
		}
	}
	return tracked, nil
}
