package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/philipparndt/shapecalc/pkg/analysis"
	"github.com/philipparndt/shapecalc/pkg/geometry"
	"go.uber.org/zap"
)

const (
	Banner   = "+++===WELCOME TO SHAPE MAKER/CALCULATOR===+++"
	moreText = "You can create more shapes now:"
)

// Config holds the settings of an interactive session
type Config struct {
	// Precision is the number of decimals printed; negative means shortest.
	Precision int
	// Echo writes each reply back to the output.
	Echo bool
}

// App drives the interactive shape calculator
type App struct {
	config Config
	prompt *Prompter
	out    io.Writer
	logger *zap.Logger
}

// New creates an app reading replies from in and writing prompts to out
func New(in io.Reader, out io.Writer, config Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		config: config,
		prompt: NewPrompter(in, out, config.Echo, logger),
		out:    out,
		logger: logger,
	}
}

// Run prints the banner and asks for shapes until the input is exhausted.
// Running out of input is not an error.
func (a *App) Run() error {
	fmt.Fprintln(a.out, Banner)

	for {
		err := a.round()
		if errors.Is(err, io.EOF) {
			a.logger.Debug("input closed")
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, moreText)
	}
}

// round asks for one shape and prints the quantity the user picks
func (a *App) round() error {
	category, err := a.prompt.Choose("What type of shape would you like to use for calculations?", []string{"Polygon", "Circle"})
	if err != nil {
		return err
	}

	var shape geometry.Shape
	if category == 0 {
		shape, err = a.askPolygon()
	} else {
		shape, err = a.askCircle()
	}
	if err != nil {
		return err
	}

	a.logger.Debug("shape created",
		zap.Stringer("kind", shape.Kind()),
		zap.String("colour", shape.Colour()),
		zap.Float64("area", shape.Area()),
	)

	quantities := analysis.Quantities(shape)
	names := make([]string, len(quantities))
	for i, q := range quantities {
		names[i] = q.String()
	}

	choice, err := a.prompt.Choose("What do you want to get?", names)
	if err != nil {
		return err
	}

	q := quantities[choice]
	value, err := analysis.Measure(shape, q, a.config.Precision)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %s\n", q, value)
	return nil
}

func (a *App) askPolygon() (geometry.Shape, error) {
	kind, err := a.prompt.Choose("What type of polygon would you like to use for the calculations?", []string{"Square", "Rectangle"})
	if err != nil {
		return nil, err
	}

	colour, err := a.prompt.Text("What colour is it?")
	if err != nil {
		return nil, err
	}

	for {
		length, err := a.prompt.PositiveNumber("length", "What is the length?")
		if err != nil {
			return nil, err
		}

		var shape geometry.Shape
		if kind == 0 {
			shape, err = geometry.NewSquare(colour, length)
		} else {
			width, werr := a.prompt.PositiveNumber("width", "What is the width?")
			if werr != nil {
				return nil, werr
			}
			shape, err = geometry.NewRectangle(colour, length, width)
		}

		if !a.rejected(err) {
			return shape, err
		}
	}
}

func (a *App) askCircle() (geometry.Shape, error) {
	colour, err := a.prompt.Text("What colour is your circle?")
	if err != nil {
		return nil, err
	}

	for {
		radius, err := a.prompt.PositiveNumber("radius", "What is the radius of your circle?")
		if err != nil {
			return nil, err
		}

		circle, err := geometry.NewCircle(colour, radius)
		if !a.rejected(err) {
			return circle, err
		}
	}
}

// rejected reports construction errors that the user can fix by answering again
func (a *App) rejected(err error) bool {
	if !errors.Is(err, geometry.ErrInvalidArgument) {
		return false
	}

	a.logger.Debug("rejected dimensions", zap.Error(err))
	fmt.Fprintln(a.out, "Those dimensions are too large, please try smaller ones")
	return true
}
