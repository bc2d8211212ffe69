package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidSelection is returned for a menu reply outside the offered range
// or a numeric reply that is not a positive number.
var ErrInvalidSelection = errors.New("invalid selection")

// Prompter asks questions on a writer and reads the replies line by line.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	echo   bool
	logger *zap.Logger
}

// NewPrompter creates a prompter. With echo set, every reply is written back
// after its prompt, which keeps transcripts of piped input readable.
func NewPrompter(in io.Reader, out io.Writer, echo bool, logger *zap.Logger) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
		echo:   echo,
		logger: logger,
	}
}

// readLine returns the next reply without surrounding whitespace.
// io.EOF is only returned once the input has no more text.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	line = strings.TrimSpace(line)
	if p.echo {
		fmt.Fprintln(p.out, line)
	}
	return line, nil
}

// Choose asks a multiple-choice question until the reply is a number between
// 1 and len(options) and returns the zero-based index of the chosen option.
func (p *Prompter) Choose(question string, options []string) (int, error) {
	for {
		fmt.Fprintf(p.out, "\n%s\n", question)
		for i, option := range options {
			fmt.Fprintf(p.out, "\n(%d) %s\n", i+1, option)
		}
		fmt.Fprint(p.out, "> ")

		reply, err := p.readLine()
		if err != nil {
			return 0, err
		}

		index, err := parseChoice(reply, len(options))
		if err == nil {
			return index, nil
		}

		p.logger.Debug("rejected menu reply", zap.String("question", question), zap.String("reply", reply), zap.Error(err))
		fmt.Fprintf(p.out, "You need to enter numbers 1 to %d\n", len(options))
	}
}

// Text asks a free-form question
func (p *Prompter) Text(question string) (string, error) {
	fmt.Fprintf(p.out, "%s\n> ", question)
	return p.readLine()
}

// PositiveNumber asks for a dimension until the reply is a positive number
func (p *Prompter) PositiveNumber(name, question string) (float64, error) {
	for {
		fmt.Fprintf(p.out, "%s\n> ", question)

		reply, err := p.readLine()
		if err != nil {
			return 0, err
		}

		value, err := parsePositive(reply)
		if err == nil {
			return value, nil
		}

		p.logger.Debug("rejected numeric reply", zap.String("name", name), zap.String("reply", reply), zap.Error(err))
		fmt.Fprintf(p.out, "That is not a possible %s\n", name)
	}
}

func parseChoice(reply string, count int) (int, error) {
	n, err := strconv.Atoi(reply)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, reply)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidSelection, n, count)
	}
	return n - 1, nil
}

func parsePositive(reply string) (float64, error) {
	// only plain decimal notation, no digit separators or hex floats
	if strings.ContainsAny(reply, "_xXpP") {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, reply)
	}

	value, err := strconv.ParseFloat(reply, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, reply)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: %v is not positive", ErrInvalidSelection, value)
	}
	return value, nil
}
