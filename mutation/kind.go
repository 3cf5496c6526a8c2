// SPDX-License-Identifier: MIT

package mutation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates a Kind (or name) that has no operator.
var ErrUnknownKind = errors.New("mutation: unknown operator kind")

// Kind enumerates the available mutation operators.
type Kind int

const (
	// Swap exchanges two positions.
	Swap Kind = iota
	// Inversion reverses a segment.
	Inversion
)

// Kinds lists every supported Kind in declaration order.
func Kinds() []Kind { return []Kind{Swap, Inversion} }

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Swap:
		return "swap"
	case Inversion:
		return "inversion"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a case-insensitive name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "swap":
		return Swap, nil
	case "inversion", "invert", "reverse":
		return Inversion, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}
