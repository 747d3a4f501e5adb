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

package submodule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckTagGlob(t *testing.T) {
	testCases := map[string]struct {
		glob   string
		reason string
	}{
		"empty":              {glob: ""},
		"star":               {glob: "v*"},
		"character class":    {glob: "v[0-9].*"},
		"question mark":      {glob: "v?.?"},
		"brace alternation":  {glob: "v{1,2}*", reason: "brace alternation is not supported by git describe --match"},
		"unbalanced brace":   {glob: "v{2*", reason: "brace alternation is not supported by git describe --match"},
		"unterminated class": {glob: "v[1", reason: "not a valid glob pattern"},
	}
	for tn, tc := range testCases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.reason, checkTagGlob(tc.glob))
		})
	}
}
