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
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintSummary writes a table with one row per result to w.
func PrintSummary(w io.Writer, results []Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"SUBMODULE", "BRANCH", "CURRENT", "TAG", "ACTION", "UPDATE BRANCH", "PULL REQUEST"})
	for _, r := range results {
		t.AppendRow([]interface{}{
			r.Path,
			r.Branch,
			shortHash(r.OldCommit),
			r.Tag,
			r.Action,
			r.UpdateBranch,
			r.PullRequestURL,
		})
	}
	t.Render()
}

func shortHash(h string) string {
	if len(h) > 8 {
		return h[:8]
	}
	return h
}
