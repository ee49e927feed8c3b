// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package levdiff

import (
	"errors"
)

var (
	ErrStdinTwice = errors.New("stdin can only be read once")
)

// ErrExitCode carries the process exit status.
type ErrExitCode struct {
	ExitCode int
	Message  string
}

func IsExitCode(err error, i int) bool {
	if err == nil {
		return false
	}
	var e *ErrExitCode
	if errors.As(err, &e) {
		return e.ExitCode == i
	}
	return false
}

func (e *ErrExitCode) Error() string {
	return e.Message
}
