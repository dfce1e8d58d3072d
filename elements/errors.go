// SPDX-License-Identifier: MIT

package elements

import "errors"

var (
	// ErrUnknownElement is returned for identifiers that do not name an
	// element of the reference table (atomic numbers outside 0..118).
	ErrUnknownElement = errors.New("elements: unknown element")
)
