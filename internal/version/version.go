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

// Package version extracts semantic versions from tag names.
package version

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/espressif/github-actions/internal/errors"
)

// DefaultExpr matches tags like "v1.2", "1.2.3" and "v1.2.3".
const DefaultExpr = `v?(\d+)\.(\d+)(?:\.(\d+))?$`

// Default is the pattern used when a submodule doesn't configure one.
var Default = MustCompile(DefaultExpr)

// SemanticVersion is a major.minor.patch triple.
type SemanticVersion struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// String returns the "X.Y.Z" representation.
func (v SemanticVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Semver returns v as a semver.Version, for comparisons.
func (v SemanticVersion) Semver() *semver.Version {
	return semver.New(v.Major, v.Minor, v.Patch, "", "")
}

// Pattern is a compiled tag version expression. The expression is matched
// from the beginning of the tag name and has either two capture groups
// (major, minor) or three (major, minor, patch).
type Pattern struct {
	expr  string
	re    *regexp.Regexp
	arity int
}

// Compile parses expr and checks that it has 2 or 3 capture groups.
func Compile(expr string) (*Pattern, error) {
	const op errors.Op = "version.Compile"
	re, err := regexp.Compile(`^(?:` + expr + `)`)
	if err != nil {
		return nil, errors.E(op, errors.Config,
			fmt.Errorf("invalid version regex %q: %w", expr, err))
	}
	arity := re.NumSubexp()
	if arity != 2 && arity != 3 {
		return nil, errors.E(op, errors.Config,
			fmt.Errorf("version regex %q must have 2 or 3 capture groups, got %d", expr, arity))
	}
	return &Pattern{
		expr:  expr,
		re:    re,
		arity: arity,
	}, nil
}

// MustCompile is like Compile but panics if expr is invalid.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the expression the pattern was compiled from.
func (p *Pattern) String() string {
	return p.expr
}

// Arity returns the number of capture groups of the pattern.
func (p *Pattern) Arity() int {
	return p.arity
}

// Extract parses the version out of tag. The error wraps
// errors.ErrInvalidVersionFormat if the tag doesn't match the pattern in
// the expected shape.
func (p *Pattern) Extract(tag string) (SemanticVersion, error) {
	const op errors.Op = "version.Extract"
	m := p.re.FindStringSubmatch(tag)
	if m == nil {
		return SemanticVersion{}, errors.E(op, errors.Version,
			fmt.Errorf("tag %q doesn't match version regex %q: %w", tag, p.expr, errors.ErrInvalidVersionFormat))
	}

	var groups []string
	for _, g := range m[1:] {
		if g != "" {
			groups = append(groups, g)
		}
	}
	// an optional third group that didn't participate leaves two
	if (len(groups) != 2 && len(groups) != 3) || m[1] == "" || m[2] == "" {
		return SemanticVersion{}, errors.E(op, errors.Version,
			fmt.Errorf("tag %q: version regex %q must yield 2 or 3 non-empty groups, got %d: %w",
				tag, p.expr, len(groups), errors.ErrInvalidVersionFormat))
	}

	var v SemanticVersion
	var err error
	if v.Major, err = parseComponent(tag, m[1]); err != nil {
		return SemanticVersion{}, errors.E(op, errors.Version, err)
	}
	if v.Minor, err = parseComponent(tag, m[2]); err != nil {
		return SemanticVersion{}, errors.E(op, errors.Version, err)
	}
	if p.arity == 3 && m[3] != "" {
		if v.Patch, err = parseComponent(tag, m[3]); err != nil {
			return SemanticVersion{}, errors.E(op, errors.Version, err)
		}
	}
	return v, nil
}

func parseComponent(tag, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("tag %q: version component %q is not a number: %w",
			tag, s, errors.ErrInvalidVersionFormat)
	}
	return n, nil
}
