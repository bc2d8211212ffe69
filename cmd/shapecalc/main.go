package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/philipparndt/shapecalc/internal/app"
	"github.com/philipparndt/shapecalc/internal/logging"
	"github.com/philipparndt/shapecalc/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	precision int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "shapecalc",
	Short: "Interactive calculator for squares, rectangles and circles",
	Long: `shapecalc asks for a shape, its colour and its dimensions, then prints
the area, perimeter (circumference for circles) or colour you pick.
It keeps asking for new shapes until the input ends or it is interrupted.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&precision, "precision", -1, "Digits after the decimal point (-1 for the shortest exact form)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	logger, err := logging.ForVerbosity(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	out := &lockedWriter{w: cmd.OutOrStdout()}

	stop := watchInterrupts(out, logger)
	defer stop()

	in := cmd.InOrStdin()
	config := app.Config{
		Precision: precision,
		Echo:      !isTerminal(in),
	}

	return app.New(in, out, config, logger).Run()
}

// exit is swapped in tests
var exit = os.Exit

// watchInterrupts says goodbye and exits when the session is interrupted.
// The returned function stops watching and waits until the watcher is gone.
func watchInterrupts(out io.Writer, logger *zap.Logger) func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)

		select {
		case sig := <-sigChan:
			logger.Debug("interrupted", zap.Stringer("signal", sig))
			_ = logger.Sync()
			fmt.Fprintln(out, "\nGoodbye!")
			exit(0)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
		<-finished
	}
}

// lockedWriter keeps the goodbye line from interleaving with a prompt
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// isTerminal reports whether replies are typed by a person
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
