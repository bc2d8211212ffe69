package analysis

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/philipparndt/shapecalc/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestQuantities(t *testing.T) {
	sq, _ := geometry.NewSquare("Blue", 2)
	c, _ := geometry.NewCircle("Orange", 6)

	assert.Equal(t, []Quantity{Area, Perimeter, Colour}, Quantities(sq))
	assert.Equal(t, []Quantity{Area, Circumference, Colour}, Quantities(c))
}

func TestMeasure(t *testing.T) {
	sq, _ := geometry.NewSquare("Blue", 2)
	rect, _ := geometry.NewRectangle("Yellow", 2, 5)
	c, _ := geometry.NewCircle("Orange", 6)

	tests := []struct {
		shape     geometry.Shape
		quantity  Quantity
		precision int
		expected  string
	}{
		{sq, Area, -1, "4"},
		{sq, Perimeter, -1, "8"},
		{sq, Colour, -1, "Blue"},
		{rect, Area, -1, "10"},
		{rect, Perimeter, 2, "14.00"},
		{c, Area, 3, "113.097"},
		{c, Circumference, 3, "37.699"},
		{c, Colour, 3, "Orange"},
	}

	for _, tt := range tests {
		got, err := Measure(tt.shape, tt.quantity, tt.precision)
		require.NoError(t, err)
		assert.Equalf(t, tt.expected, got, "%s of %s", tt.quantity, tt.shape.Kind())
	}
}

func TestMeasureNotApplicable(t *testing.T) {
	sq, _ := geometry.NewSquare("Blue", 2)
	c, _ := geometry.NewCircle("Orange", 6)

	_, err := Measure(sq, Circumference, -1)
	assert.EqualError(t, err, "square has no circumference")

	_, err = Measure(c, Perimeter, -1)
	assert.EqualError(t, err, "circle has no perimeter")
}

func TestAnalyzeShape(t *testing.T) {
	rect, _ := geometry.NewRectangle("Yellow", 2, 5)
	result := AnalyzeShape(rect)

	assert.Equal(t, "rectangle", result.Kind)
	assert.Equal(t, "Yellow", result.Colour)
	assert.Equal(t, 10.0, result.Area)
	require.NotNil(t, result.Perimeter)
	assert.Equal(t, 14.0, *result.Perimeter)
	assert.Nil(t, result.Circumference)

	c, _ := geometry.NewCircle("Orange", 6)
	result = AnalyzeShape(c)
	assert.Nil(t, result.Perimeter)
	require.NotNil(t, result.Circumference)
	assert.InDelta(t, 37.699, *result.Circumference, 1e-3)
}

func TestWriteReport(t *testing.T) {
	c, _ := geometry.NewCircle("Orange", 6)
	result := AnalyzeShape(c)

	var text bytes.Buffer
	require.NoError(t, WriteReport(&text, result, FormatText, 3))
	assert.Equal(t, "Shape Information\n=================\nKind: circle\nColour: Orange\nArea: 113.097\nCircumference: 37.699\n", text.String())

	var jsonOut bytes.Buffer
	require.NoError(t, WriteReport(&jsonOut, result, FormatJSON, -1))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &decoded))
	assert.Equal(t, "Orange", decoded["colour"])
	assert.NotContains(t, decoded, "perimeter")

	var yamlOut bytes.Buffer
	require.NoError(t, WriteReport(&yamlOut, result, FormatYAML, -1))
	decoded = nil
	require.NoError(t, yaml.Unmarshal(yamlOut.Bytes(), &decoded))
	assert.Equal(t, "circle", decoded["kind"])
	assert.Contains(t, decoded, "circumference")

	assert.Error(t, WriteReport(&text, result, "xml", -1))
}
