package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned when a shape is constructed from a
// non-textual colour or a dimension that is not a positive number.
var ErrInvalidArgument = errors.New("invalid argument")

// Kind identifies a concrete shape type
type Kind int

const (
	KindSquare Kind = iota + 1
	KindRectangle
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "square"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind resolves a kind from its name
func ParseKind(name string) (Kind, error) {
	for _, k := range []Kind{KindSquare, KindRectangle, KindCircle} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown shape kind %q", ErrInvalidArgument, name)
}

// Shape is anything with a colour and an area
type Shape interface {
	Kind() Kind
	Colour() string
	Area() float64
}

// Polygon is a shape that also has a perimeter
type Polygon interface {
	Shape
	Perimeter() float64
}

func checkDimension(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidArgument, name, value)
	}
	return nil
}

// checkMeasurements rejects dimensions so large that a derived value overflows
func checkMeasurements(kind Kind, values ...float64) error {
	for _, v := range values {
		if math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is too large to measure", ErrInvalidArgument, kind)
		}
	}
	return nil
}
