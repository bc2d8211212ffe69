package geometry

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// dimensions lists the keys each kind is measured by
var dimensions = map[Kind][]string{
	KindSquare:    {"length"},
	KindRectangle: {"length", "width"},
	KindCircle:    {"radius"},
}

// Decode builds a shape from a YAML (or JSON) document such as
//
//	kind: circle
//	colour: Orange
//	radius: 6
//
// Values are checked dynamically, so a non-textual colour or a non-numeric
// dimension is reported as ErrInvalidArgument.
func Decode(data []byte) (Shape, error) {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse shape definition: %w", err)
	}
	if values == nil {
		return nil, fmt.Errorf("%w: empty shape definition", ErrInvalidArgument)
	}
	return FromValues(values)
}

// FromValues builds a shape from loosely typed values keyed by
// kind, colour (or color), length, width and radius. Keys that do not
// describe the given kind are rejected.
func FromValues(values map[string]any) (Shape, error) {
	kindName, ok := values["kind"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: kind must be a string", ErrInvalidArgument)
	}
	kind, err := ParseKind(kindName)
	if err != nil {
		return nil, err
	}

	for _, key := range slices.Sorted(maps.Keys(values)) {
		switch key {
		case "kind", "colour", "color":
			continue
		}
		if !slices.Contains(dimensions[kind], key) {
			return nil, fmt.Errorf("%w: %s does not apply to a %s", ErrInvalidArgument, key, kind)
		}
	}

	rawColour, found := values["colour"]
	if !found {
		rawColour = values["color"]
	}
	colour, ok := rawColour.(string)
	if !ok {
		return nil, fmt.Errorf("%w: colour must be a string, got %T", ErrInvalidArgument, rawColour)
	}

	switch kind {
	case KindSquare:
		length, err := number(values, "length")
		if err != nil {
			return nil, err
		}
		return NewSquare(colour, length)

	case KindRectangle:
		length, err := number(values, "length")
		if err != nil {
			return nil, err
		}
		width, err := number(values, "width")
		if err != nil {
			return nil, err
		}
		return NewRectangle(colour, length, width)

	default:
		radius, err := number(values, "radius")
		if err != nil {
			return nil, err
		}
		return NewCircle(colour, radius)
	}
}

func number(values map[string]any, key string) (float64, error) {
	switch v := values[key].(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float64:
		return v, nil
	case nil:
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidArgument, key)
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %T", ErrInvalidArgument, key, v)
	}
}
