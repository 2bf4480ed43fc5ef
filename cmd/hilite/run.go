package hilite

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/highlight"
	"github.com/arthur-debert/hilite/pkg/logging"
	"github.com/arthur-debert/hilite/pkg/rules"
	"github.com/arthur-debert/hilite/pkg/stream"
)

// runOptions carries the resolved flag values for one run
type runOptions struct {
	configPath string
	inputPath  string
	ignoreCase bool
	colorize   bool
}

// run loads the configuration, compiles the engine, and streams stdin or
// the input file through it. Config and compile failures abort before the
// first line is read.
func run(opts runOptions, stdin io.Reader, stdout io.Writer) error {
	logger := logging.GetLogger("cmd.run")
	defer logging.LogDuration(time.Now(), "run")

	ruleList, err := rules.Resolve(opts.configPath)
	if err != nil {
		return err
	}

	engine, err := highlight.New(ruleList, opts.ignoreCase)
	if err != nil {
		return err
	}

	// With colors off, lines pass through unchanged. The engine is
	// still compiled above so config and pattern errors do not depend
	// on the output device.
	if !opts.colorize {
		logger.Debug().Msg("Color disabled, passing lines through")
		engine, _ = highlight.New(nil, false)
	}

	logger.Info().
		Int("rules", len(ruleList)).
		Bool("ignoreCase", opts.ignoreCase).
		Bool("colorize", opts.colorize).
		Str("config", opts.configPath).
		Msg("Starting stream")

	processor := stream.NewProcessor(engine)

	if opts.inputPath != "" {
		f, err := os.Open(opts.inputPath)
		if err != nil {
			return errors.Wrapf(err, errors.ErrStreamRead, MsgErrOpenInput, opts.inputPath)
		}
		defer func() { _ = f.Close() }()
		return processor.Process(f, stdout)
	}

	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(os.Stderr, MsgStdinHint)
	}
	return processor.Process(stdin, stdout)
}
