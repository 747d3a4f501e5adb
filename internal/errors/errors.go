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

// Package errors defines the error handling used by the codebase.
package errors

import (
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/espressif/github-actions/internal/types"
)

// Error is an implementation of the error interface used in the codebase.
// It is based on the design in https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html
type Error struct {
	// Submodule is the path of the submodule involved in the operation.
	Submodule types.SubmodulePath

	// Op is the operation being performed, for ex. autoupdate.Run
	Op Op

	// Kind refers to classs of errors
	Kind Kind

	// Err refers to wrapped error (if any)
	Err error
}

func (e *Error) Error() string {
	b := new(strings.Builder)

	if e.Op != "" {
		pad(b, ": ")
		b.WriteString(string(e.Op))
	}

	if e.Submodule != "" {
		pad(b, ": ")
		b.WriteString("submodule ")
		b.WriteString(string(e.Submodule))
	}

	if e.Kind != 0 {
		pad(b, ": ")
		b.WriteString(e.Kind.String())
	}

	if e.Err != nil {
		if wrappedErr, ok := e.Err.(*Error); ok {
			if !wrappedErr.Zero() {
				pad(b, ":\n\t")
				b.WriteString(wrappedErr.Error())
			}
		} else {
			pad(b, ": ")
			b.WriteString(e.Err.Error())
		}
	}
	if b.Len() == 0 {
		return "no error"
	}
	return b.String()
}

// Unwrap returns the wrapped error so that Is and As can see through an
// Error.
func (e *Error) Unwrap() error {
	return e.Err
}

// pad appends given str to the string buffer.
func pad(b *strings.Builder, str string) {
	if b.Len() == 0 {
		return
	}
	b.WriteString(str)
}

func (e *Error) Zero() bool {
	return e.Op == "" && e.Submodule == "" && e.Kind == 0 && e.Err == nil
}

// Op describes the operation being performed.
type Op string

// Kind describes the class of errors encountered.
type Kind int

const (
	Other        Kind = iota // Unclassified. Will not be printed.
	Internal                 // Internal error.
	InvalidParam             // Value is not valid.
	MissingParam             // Required value is missing or empty.
	Config                   // Invalid submodule configuration.
	Git                      // Errors from Git
	Version                  // Tag name does not carry a usable version.
	Manifest                 // Manifest file can not be patched.
	Remote                   // Errors from a hosting service API.
	Precondition             // Repository is not in a state we can work with.
	IO                       // Errors reading or writing files.
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other error"
	case Internal:
		return "internal error"
	case InvalidParam:
		return "invalid parameter value"
	case MissingParam:
		return "missing parameter value"
	case Config:
		return "configuration error"
	case Git:
		return "git error"
	case Version:
		return "invalid version format"
	case Manifest:
		return "manifest error"
	case Remote:
		return "remote error"
	case Precondition:
		return "precondition failed"
	case IO:
		return "I/O error"
	}
	return "unknown kind"
}

// Conditions reported by the update engine. Callers match them with Is.
var (
	ErrNoMatchingTag        = goerrors.New("no matching tag")
	ErrInvalidVersionFormat = goerrors.New("invalid version format")
	ErrNoVersionLine        = goerrors.New("no version line")
	ErrDuplicateVersionLine = goerrors.New("duplicate version lines")
	ErrDirtyRepo            = goerrors.New("repository has uncommitted changes")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return goerrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return goerrors.As(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return goerrors.Join(errs...)
}

func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("errors.E must have at least one argument")
	}

	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case types.SubmodulePath:
			e.Submodule = a
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case *Error:
			cp := *a
			e.Err = &cp
		case error:
			e.Err = a
		case string:
			e.Err = goerrors.New(a)
		default:
			panic(fmt.Errorf("unknown type %T for value %v in call to error.E", a, a))
		}
	}

	wrappedErr, ok := e.Err.(*Error)
	if !ok {
		return e
	}

	if e.Submodule == wrappedErr.Submodule {
		wrappedErr.Submodule = ""
	}

	if e.Op == wrappedErr.Op {
		wrappedErr.Op = ""
	}

	if e.Kind == wrappedErr.Kind {
		wrappedErr.Kind = 0
	}

	return e
}

// KindOf returns the first non-zero Kind found in the chain of err, or
// Other if there is none.
func KindOf(err error) Kind {
	var e *Error
	for err != nil {
		if !goerrors.As(err, &e) {
			return Other
		}
		if e.Kind != Other {
			return e.Kind
		}
		err = e.Err
	}
	return Other
}
