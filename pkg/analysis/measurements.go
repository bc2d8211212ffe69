package analysis

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/shapecalc/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Quantity names a value that can be derived from a shape
type Quantity int

const (
	Area Quantity = iota + 1
	Perimeter
	Circumference
	Colour
)

func (q Quantity) String() string {
	switch q {
	case Area:
		return "Area"
	case Perimeter:
		return "Perimeter"
	case Circumference:
		return "Circumference"
	case Colour:
		return "Colour"
	}
	return fmt.Sprintf("Quantity(%d)", int(q))
}

// Quantities lists what can be asked of a shape, in menu order
func Quantities(s geometry.Shape) []Quantity {
	if _, ok := s.(geometry.Polygon); ok {
		return []Quantity{Area, Perimeter, Colour}
	}
	return []Quantity{Area, Circumference, Colour}
}

// MeasurementResult contains every derived value of a shape
type MeasurementResult struct {
	Kind          string   `json:"kind" yaml:"kind"`
	Colour        string   `json:"colour" yaml:"colour"`
	Area          float64  `json:"area" yaml:"area"`
	Perimeter     *float64 `json:"perimeter,omitempty" yaml:"perimeter,omitempty"`
	Circumference *float64 `json:"circumference,omitempty" yaml:"circumference,omitempty"`
}

type circumferencer interface {
	Circumference() float64
}

// AnalyzeShape computes all quantities of a shape
func AnalyzeShape(s geometry.Shape) *MeasurementResult {
	result := &MeasurementResult{
		Kind:   s.Kind().String(),
		Colour: s.Colour(),
		Area:   s.Area(),
	}

	if p, ok := s.(geometry.Polygon); ok {
		perimeter := p.Perimeter()
		result.Perimeter = &perimeter
	}
	if c, ok := s.(circumferencer); ok {
		circumference := c.Circumference()
		result.Circumference = &circumference
	}

	return result
}

// Measure returns a single quantity of a shape formatted for display
func Measure(s geometry.Shape, q Quantity, precision int) (string, error) {
	switch q {
	case Area:
		return FormatMeasurement(s.Area(), precision), nil
	case Colour:
		return s.Colour(), nil
	case Perimeter:
		if p, ok := s.(geometry.Polygon); ok {
			return FormatMeasurement(p.Perimeter(), precision), nil
		}
	case Circumference:
		if c, ok := s.(circumferencer); ok {
			return FormatMeasurement(c.Circumference(), precision), nil
		}
	}
	return "", fmt.Errorf("%s has no %s", s.Kind(), strings.ToLower(q.String()))
}

// FormatMeasurement formats a value with the given number of decimals.
// A negative precision selects the shortest exact representation.
func FormatMeasurement(value float64, precision int) string {
	if precision < 0 {
		precision = -1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// Report output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WriteReport writes the result in the requested format
func WriteReport(w io.Writer, result *MeasurementResult, format string, precision int) error {
	switch format {
	case FormatText, "":
		return writeText(w, result, precision)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q (must be %s, %s or %s)", format, FormatText, FormatJSON, FormatYAML)
}

func writeText(w io.Writer, result *MeasurementResult, precision int) error {
	var b strings.Builder

	b.WriteString("Shape Information\n")
	b.WriteString("=================\n")
	fmt.Fprintf(&b, "Kind: %s\n", result.Kind)
	fmt.Fprintf(&b, "Colour: %s\n", result.Colour)
	fmt.Fprintf(&b, "Area: %s\n", FormatMeasurement(result.Area, precision))
	if result.Perimeter != nil {
		fmt.Fprintf(&b, "Perimeter: %s\n", FormatMeasurement(*result.Perimeter, precision))
	}
	if result.Circumference != nil {
		fmt.Fprintf(&b, "Circumference: %s\n", FormatMeasurement(*result.Circumference, precision))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
