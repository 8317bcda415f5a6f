package dat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-adsr/dsp/core"
)

const defaultPrecision = 6

var ErrMalformedLine = errors.New("dat: malformed line")

// Option configures a Writer.
type Option func(*config) error

type config struct {
	precision int
}

// WithPrecision sets the number of digits after the decimal point.
func WithPrecision(digits int) Option {
	return func(cfg *config) error {
		if digits < 0 || digits > 17 {
			return fmt.Errorf("dat: precision must be in [0, 17]: %d", digits)
		}

		cfg.precision = digits

		return nil
	}
}

// Writer formats samples as fixed-point text lines.
type Writer struct {
	w         *bufio.Writer
	precision int
	line      []byte
}

// NewWriter wraps w. Call Flush when done.
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	cfg := config{precision: defaultPrecision}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Writer{w: bufio.NewWriter(w), precision: cfg.precision}, nil
}

// WriteSample writes one line.
func (w *Writer) WriteSample(s core.Sample) error {
	w.line = strconv.AppendFloat(w.line[:0], s.Time, 'f', w.precision, 64)
	w.line = append(w.line, '\t')
	w.line = strconv.AppendFloat(w.line, s.Amplitude, 'f', w.precision, 64)
	w.line = append(w.line, '\n')

	_, err := w.w.Write(w.line)
	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Write writes samples to w in order and flushes.
func Write(w io.Writer, samples []core.Sample, opts ...Option) error {
	dw, err := NewWriter(w, opts...)
	if err != nil {
		return err
	}

	for _, s := range samples {
		if err := dw.WriteSample(s); err != nil {
			return fmt.Errorf("dat: write: %w", err)
		}
	}

	if err := dw.Flush(); err != nil {
		return fmt.Errorf("dat: flush: %w", err)
	}

	return nil
}

// Read parses all samples from r. Parse failures wrap ErrMalformedLine and
// name the 1-based line number.
func Read(r io.Reader) ([]core.Sample, error) {
	var out []core.Sample

	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w %d: want 2 columns, got %d", ErrMalformedLine, lineNo, len(fields))
		}

		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w %d: time: %w", ErrMalformedLine, lineNo, err)
		}

		a, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w %d: amplitude: %w", ErrMalformedLine, lineNo, err)
		}

		out = append(out, core.Sample{Time: t, Amplitude: a})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dat: read: %w", err)
	}

	return out, nil
}
