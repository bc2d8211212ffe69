package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func runSession(t *testing.T, input string, config Config) string {
	t.Helper()

	var out bytes.Buffer
	a := New(strings.NewReader(input), &out, config, nil)
	require.NoError(t, a.Run())
	return out.String()
}

func TestSquareArea(t *testing.T) {
	out := runSession(t, "1\n1\nBlue\n2\n1\n", Config{Precision: -1})

	assert.True(t, strings.HasPrefix(out, Banner+"\n"))
	assert.Contains(t, out, "(1) Polygon")
	assert.Contains(t, out, "(2) Rectangle")
	assert.Contains(t, out, "What colour is it?\n> ")
	assert.Contains(t, out, "> Area: 4\n")
	assert.Contains(t, out, moreText)
}

func TestRectanglePerimeter(t *testing.T) {
	out := runSession(t, "1\n2\nYellow\n2\n5\n2\n", Config{Precision: -1})

	assert.Contains(t, out, "What is the width?")
	assert.Contains(t, out, "Perimeter: 14\n")
}

func TestCircleQuantities(t *testing.T) {
	input := "2\nOrange\n6\n2\n" +
		"2\nOrange\n6\n1\n" +
		"2\nOrange\n6\n3\n"
	out := runSession(t, input, Config{Precision: 3})

	assert.Contains(t, out, "What colour is your circle?")
	assert.Contains(t, out, "(2) Circumference")
	assert.Contains(t, out, "Circumference: 37.699\n")
	assert.Contains(t, out, "Area: 113.097\n")
	assert.Contains(t, out, "Colour: Orange\n")
	assert.Equal(t, 3, strings.Count(out, moreText))
}

func TestRepromptsOnInvalidReplies(t *testing.T) {
	input := "0\nthree\n1\n7\n1\nGreen\n-1\nabc\nNaN\n0\n2.5\n9\n3\n"
	out := runSession(t, input, Config{Precision: -1})

	assert.Equal(t, 3, strings.Count(out, "You need to enter numbers 1 to 2\n"))
	assert.Equal(t, 1, strings.Count(out, "You need to enter numbers 1 to 3\n"))
	assert.Equal(t, 4, strings.Count(out, "That is not a possible length\n"))
	assert.Contains(t, out, "Colour: Green\n")
}

func TestRepromptsOnOverflowingDimensions(t *testing.T) {
	out := runSession(t, "1\n1\nBlue\n1e200\n3\n1\n"+"2\nRed\n1e160\n2\n1\n", Config{Precision: -1})

	assert.Equal(t, 2, strings.Count(out, "Those dimensions are too large, please try smaller ones\n"))
	assert.Contains(t, out, "Area: 9\n")
	assert.Contains(t, out, "Area: 12.566370614359172\n")
	assert.NotContains(t, out, "Inf")
}

func TestEndOfInput(t *testing.T) {
	out := runSession(t, "", Config{})
	assert.Contains(t, out, Banner)
	assert.NotContains(t, out, moreText)

	// last reply without trailing newline still counts
	out = runSession(t, "1\n1\nBlue\n3\n2", Config{Precision: -1})
	assert.Contains(t, out, "Perimeter: 12\n")
}

func TestEcho(t *testing.T) {
	out := runSession(t, "2\nRed\n1\n3\n", Config{Precision: -1, Echo: true})

	assert.Contains(t, out, "> 2\n")
	assert.Contains(t, out, "> Red\n")
	assert.Contains(t, out, "Colour: Red\n")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestReadErrorPropagates(t *testing.T) {
	a := New(failingReader{}, &bytes.Buffer{}, Config{}, nil)
	assert.EqualError(t, a.Run(), "read failed")
}

func TestLogsRejectedReplies(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	var out bytes.Buffer
	a := New(strings.NewReader("5\n2\nRed\n1\n3\n"), &out, Config{}, zap.New(core))
	require.NoError(t, a.Run())

	assert.Equal(t, 1, logs.FilterMessage("rejected menu reply").Len())
	created := logs.FilterMessage("shape created").All()
	require.Len(t, created, 1)
	assert.Equal(t, "circle", created[0].ContextMap()["kind"])
}
