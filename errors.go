// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "fmt"

// All failures are fatal: errors funnel to main which reports the
// message and exits nonzero. The kinds below exist so the diagnostic
// identifies what was missing or violated.

// ConfigurationError reports a missing or invalid required argument.
type ConfigurationError string

func (e ConfigurationError) Error() string { return "invalid configuration: " + string(e) }

// DependencyError reports a required external program or helper that
// could not be found.
type DependencyError struct {
	Err error
}

func (e DependencyError) Error() string { return fmt.Sprintf("missing dependency: %v", e.Err) }
func (e DependencyError) Unwrap() error { return e.Err }

// InputError reports an unusable input file.
type InputError struct {
	Path string
	Err  error
}

func (e InputError) Error() string { return fmt.Sprintf("bad input %s: %v", e.Path, e.Err) }
func (e InputError) Unwrap() error { return e.Err }

// ConstraintViolation reports a logo-mode request whose combined window
// size exceeds the renderable limit.
type ConstraintViolation struct {
	NumOut, NumIn, Limit int
}

func (e ConstraintViolation) Error() string {
	return fmt.Sprintf("logo mode limited to %d positions per end: -O %d + -I %d = %d",
		e.Limit, e.NumOut, e.NumIn, e.NumOut+e.NumIn)
}

// CollaboratorFailure reports a failed external fetch or render step.
type CollaboratorFailure struct {
	Stage string
	Err   error
}

func (e CollaboratorFailure) Error() string { return fmt.Sprintf("%s failed: %v", e.Stage, e.Err) }
func (e CollaboratorFailure) Unwrap() error { return e.Err }
