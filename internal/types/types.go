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

// Package types defines the basic types shared across the codebase.
package types

import (
	"path"
	"strings"
)

// SubmodulePath is the slash-separated path of a submodule relative to the
// root of the repository that contains it. It is the unique key of a
// submodule in .gitmodules.
type SubmodulePath string

// String returns the path in string format.
func (p SubmodulePath) String() string {
	return string(p)
}

// Empty returns true if the path is empty.
func (p SubmodulePath) Empty() bool {
	return len(strings.TrimSpace(string(p))) == 0
}

// Base returns the last element of the path, e.g. "mbedtls" for
// "components/mbedtls/mbedtls".
func (p SubmodulePath) Base() string {
	return path.Base(strings.TrimSuffix(string(p), "/"))
}
