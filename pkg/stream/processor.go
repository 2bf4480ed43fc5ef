// Package stream drives a compiled highlight engine over a line-oriented
// input stream, writing rendered lines incrementally to an output sink.
package stream

import (
	"bufio"
	"bytes"
	"io"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/highlight"
	"github.com/arthur-debert/hilite/pkg/logging"
)

// Processor renders every line of an input stream through one engine.
// The processor owns its line and output buffers and reuses them across
// lines; the engine itself is never mutated.
type Processor struct {
	engine *highlight.Engine
}

// NewProcessor creates a Processor bound to a compiled engine
func NewProcessor(engine *highlight.Engine) *Processor {
	return &Processor{engine: engine}
}

// Process reads r line by line, renders each line, and writes the result
// to w, preserving input order and line terminators. A final line without
// a terminator is still rendered and written. Output is buffered and
// flushed once the stream is exhausted.
//
// The first read or write failure aborts the run; lines already written
// stay written.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	logger := logging.GetLogger("stream.processor")

	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)
	var out bytes.Buffer

	lines := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrap(err, errors.ErrStreamRead, "cannot read input")
		}
		if line != "" {
			p.engine.RenderLine(line, &out)
			if _, werr := writer.Write(out.Bytes()); werr != nil {
				return errors.Wrap(werr, errors.ErrStreamWrite, "cannot write output")
			}
			lines++
		}
		if err == io.EOF {
			break
		}
	}

	if err := writer.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrStreamWrite, "cannot write output")
	}

	logger.Debug().Int("lines", lines).Msg("Stream processed")
	return nil
}
