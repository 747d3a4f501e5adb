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

// Package strings holds small string helpers that don't belong to a
// specific domain package.
package strings

import (
	"fmt"
	"strings"
)

// JoinStringsWithQuotes quotes every element of the slice and joins them
// with a comma.
func JoinStringsWithQuotes(strs []string) string {
	quoted := make([]string, 0, len(strs))
	for _, s := range strs {
		quoted = append(quoted, fmt.Sprintf("%q", s))
	}
	return strings.Join(quoted, ", ")
}

// SplitFirstLine splits s into its first line and the text following it.
// Blank lines separating the two are dropped from the remainder, so a commit
// message splits into its subject and body.
func SplitFirstLine(s string) (string, string) {
	first, rest, _ := strings.Cut(s, "\n")
	return strings.TrimRight(first, "\r"), strings.TrimLeft(rest, "\r\n")
}
