package geometry

import "fmt"

// Rectangle is a polygon with a length and a width
type Rectangle struct {
	colour string
	length float64
	width  float64
}

// NewRectangle creates a rectangle. Both dimensions must be positive.
func NewRectangle(colour string, length, width float64) (Rectangle, error) {
	if err := checkDimension("length", length); err != nil {
		return Rectangle{}, err
	}
	if err := checkDimension("width", width); err != nil {
		return Rectangle{}, err
	}
	r := Rectangle{colour: colour, length: length, width: width}
	if err := checkMeasurements(KindRectangle, r.Area(), r.Perimeter()); err != nil {
		return Rectangle{}, err
	}
	return r, nil
}

func (r Rectangle) Kind() Kind      { return KindRectangle }
func (r Rectangle) Colour() string  { return r.colour }
func (r Rectangle) Length() float64 { return r.length }
func (r Rectangle) Width() float64  { return r.width }

// Area returns length·width
func (r Rectangle) Area() float64 {
	return r.length * r.width
}

// Perimeter returns 2·(length+width)
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.length + r.width)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%s rectangle (length %g, width %g)", r.colour, r.length, r.width)
}
