package geometry

import "fmt"

// Square is a polygon with four equal sides
type Square struct {
	colour string
	length float64
}

// NewSquare creates a square with the given side length
func NewSquare(colour string, length float64) (Square, error) {
	if err := checkDimension("length", length); err != nil {
		return Square{}, err
	}
	s := Square{colour: colour, length: length}
	if err := checkMeasurements(KindSquare, s.Area(), s.Perimeter()); err != nil {
		return Square{}, err
	}
	return s, nil
}

func (s Square) Kind() Kind      { return KindSquare }
func (s Square) Colour() string  { return s.colour }
func (s Square) Length() float64 { return s.length }

// Area returns length²
func (s Square) Area() float64 {
	return s.length * s.length
}

// Perimeter returns 4·length
func (s Square) Perimeter() float64 {
	return 4 * s.length
}

func (s Square) String() string {
	return fmt.Sprintf("%s square (length %g)", s.colour, s.length)
}
