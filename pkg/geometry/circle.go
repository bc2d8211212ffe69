package geometry

import (
	"fmt"
	"math"
)

// Circle is a round shape defined by its radius. It is not a polygon, so it
// reports a circumference instead of a perimeter.
type Circle struct {
	colour string
	radius float64
}

// NewCircle creates a circle with the given radius
func NewCircle(colour string, radius float64) (Circle, error) {
	if err := checkDimension("radius", radius); err != nil {
		return Circle{}, err
	}
	c := Circle{colour: colour, radius: radius}
	if err := checkMeasurements(KindCircle, c.Area(), c.Circumference()); err != nil {
		return Circle{}, err
	}
	return c, nil
}

func (c Circle) Kind() Kind      { return KindCircle }
func (c Circle) Colour() string  { return c.colour }
func (c Circle) Radius() float64 { return c.radius }

// Area returns π·radius²
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Circumference returns 2·π·radius
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

func (c Circle) String() string {
	return fmt.Sprintf("%s circle (radius %g)", c.colour, c.radius)
}
