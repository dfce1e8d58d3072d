// SPDX-License-Identifier: MIT

package shell

import (
	"errors"

	"github.com/katalvlaran/frozencore/elements"
)

var (
	// ErrUnknownElement aliases elements.ErrUnknownElement so callers of this
	// package can match it without importing elements.
	ErrUnknownElement = elements.ErrUnknownElement

	// ErrPartialShell indicates a frozen/active split that would freeze part of
	// a shell, i.e. active orbital electrons would be frozen.
	ErrPartialShell = errors.New("shell: active orbital electrons would be frozen")

	// ErrNegativeLevel indicates a negative entry in a Levels vector.
	ErrNegativeLevel = errors.New("shell: level must be non-negative")
)
