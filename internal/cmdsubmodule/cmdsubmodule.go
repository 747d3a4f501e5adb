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

package cmdsubmodule

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/espressif/github-actions/internal/errors"
	"github.com/espressif/github-actions/internal/gitutil"
)

// openRepo returns a runner for the root of the git repository containing
// path. An empty path means the current directory.
func openRepo(ctx context.Context, path string) (*gitutil.GitLocalRunner, error) {
	const op errors.Op = "cmdsubmodule.openRepo"
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.E(op, errors.IO,
				fmt.Errorf("error looking up current working directory: %w", err))
		}
		path = wd
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.E(op, errors.IO, err)
	}

	runner, err := gitutil.NewLocalGitRunner(abs)
	if err != nil {
		return nil, errors.E(op, err)
	}
	rr, err := runner.Run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, errors.E(op, errors.InvalidParam,
			fmt.Errorf("%s is not inside a git work tree: %w", abs, err))
	}
	runner.Dir = strings.TrimSpace(rr.Stdout)
	return runner, nil
}
