package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/shapecalc/internal/logging"
	"github.com/philipparndt/shapecalc/pkg/analysis"
	"github.com/philipparndt/shapecalc/pkg/geometry"
	"github.com/philipparndt/shapecalc/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const watchDebounce = 200 * time.Millisecond

var (
	describeKind   string
	describeColour string
	describeLength float64
	describeWidth  float64
	describeRadius float64
	describeFile   string
	describeOutput string
	describeWatch  bool
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print every quantity of a single shape",
	Long: `Describe one shape given either by flags or by a YAML/JSON definition file.

  shapecalc describe --kind rectangle --colour Yellow --length 2 --width 5
  shapecalc describe --file circle.yaml --output json

A definition file looks like:

  kind: circle
  colour: Orange
  radius: 6

Use --file - to read the definition from stdin. With --watch the report is
printed again every time the definition file is saved.`,
	Args: cobra.NoArgs,
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringVar(&describeKind, "kind", "", "Shape kind: square, rectangle or circle")
	describeCmd.Flags().StringVar(&describeColour, "colour", "", "Colour label")
	describeCmd.Flags().Float64Var(&describeLength, "length", 0, "Side length (square, rectangle)")
	describeCmd.Flags().Float64Var(&describeWidth, "width", 0, "Width (rectangle)")
	describeCmd.Flags().Float64Var(&describeRadius, "radius", 0, "Radius (circle)")
	describeCmd.Flags().StringVarP(&describeFile, "file", "f", "", "Read the shape definition from a YAML or JSON file")
	describeCmd.Flags().StringVarP(&describeOutput, "output", "o", analysis.FormatText, "Output format: text, json or yaml")
	describeCmd.Flags().BoolVarP(&describeWatch, "watch", "w", false, "Print the report again whenever the definition file changes")

	describeCmd.MarkFlagsMutuallyExclusive("file", "kind")
	describeCmd.MarkFlagsOneRequired("file", "kind")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	if describeWatch {
		return watchDescribe(cmd)
	}
	return describe(cmd)
}

func describe(cmd *cobra.Command) error {
	shape, err := describedShape(cmd)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeShape(shape)
	return analysis.WriteReport(cmd.OutOrStdout(), result, describeOutput, precision)
}

func watchDescribe(cmd *cobra.Command) error {
	if describeFile == "" || describeFile == "-" {
		return errors.New("--watch needs a definition file")
	}

	logger, err := logging.ForVerbosity(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	fw, err := watcher.NewFileWatcher(watchDebounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report := func() {
		if err := describe(cmd); err != nil {
			logger.Debug("definition rejected", zap.String("file", describeFile), zap.Error(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}

	report()
	return fw.Watch(ctx, describeFile, func() {
		fmt.Fprintln(cmd.OutOrStdout())
		report()
	})
}

func describedShape(cmd *cobra.Command) (geometry.Shape, error) {
	if describeFile != "" {
		data, err := readDefinition(cmd.InOrStdin(), describeFile)
		if err != nil {
			return nil, err
		}
		return geometry.Decode(data)
	}

	values := map[string]any{
		"kind":   describeKind,
		"colour": describeColour,
	}
	dimensions := map[string]float64{
		"length": describeLength,
		"width":  describeWidth,
		"radius": describeRadius,
	}
	for name, value := range dimensions {
		if cmd.Flags().Changed(name) {
			values[name] = value
		}
	}

	return geometry.FromValues(values)
}

func readDefinition(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read definition from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	return data, nil
}
