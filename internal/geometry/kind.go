package geometry

import (
	"errors"
	"fmt"
)

// ErrUnknownShapeKind is returned when a kind name does not match any
// supported shape family.
var ErrUnknownShapeKind = errors.New("unknown shape kind")

// ShapeKind identifies one of the supported solid-of-revolution families.
type ShapeKind string

const (
	// KindSolid is the single-shell family: two cap fans and one side wall.
	KindSolid ShapeKind = "solid"

	// KindHollow is the double-shell family: outer and inner walls sealed
	// by annular caps.
	KindHollow ShapeKind = "hollow"
)

// String returns the kind name.
func (k ShapeKind) String() string { return string(k) }

// ParseShapeKind maps a kind name to a ShapeKind.
func ParseShapeKind(name string) (ShapeKind, error) {
	switch name {
	case "solid":
		return KindSolid, nil
	case "hollow":
		return KindHollow, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShapeKind, name)
}

// Kinds returns the supported shape kinds in a stable order.
func Kinds() []ShapeKind {
	return []ShapeKind{KindSolid, KindHollow}
}
