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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/espressif/github-actions/internal/errors/resolver"
	"github.com/espressif/github-actions/run"
	"k8s.io/klog/v2"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	defer klog.Flush()

	if err := run.CheckGit(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx := context.Background()
	cmd := run.GetMain(ctx)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	return handleErr(cmd.ErrOrStderr(), err)
}

// handleErr prints a user friendly message for err and returns the exit
// code for it.
func handleErr(w io.Writer, err error) int {
	res, ok := resolver.ResolveError(err)
	if !ok {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "%s\n", res.Message)
	return res.ExitCode
}
