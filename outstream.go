// Package outstream provides a buffered byte stream that batches writes and
// hands them to a destination only when its buffer fills, on Flush, or on Close.
//
//	var dst outstream.StringDestination
//	err := outstream.Use(&dst, func(s *outstream.Stream) error {
//		_, err := s.WriteString("hello")
//		return err
//	}, outstream.WithBufferSize(4096))
//
// A Stream is single-owner: it is not safe for concurrent use.
package outstream

import (
	"io"

	"github.com/caser789/outstream/internal/writer"
	"go.uber.org/zap"
)

type (
	Stream         = writer.Stream
	Mode           = writer.Mode
	BufferedWriter = writer.BufferedWriter
)

const (
	Buffered   = writer.Buffered
	Unbuffered = writer.Unbuffered

	DefaultBufferSize = 1024
)

var (
	// ErrInvalidSize reports a non-positive buffer size.
	ErrInvalidSize = writer.ErrInvalidSize
	// ErrNilDestination reports a stream created without a destination.
	ErrNilDestination = writer.ErrNilDestination
)

// ParseMode parses "buffered" or "unbuffered".
func ParseMode(s string) (Mode, error) {
	return writer.ParseMode(s)
}

type options struct {
	mode   Mode
	size   int
	logger *zap.Logger
	err    error
}

func defaultOptions() *options {
	return &options{
		mode:   Buffered,
		size:   DefaultBufferSize,
		logger: zap.NewNop(),
	}
}

// Option configures a stream built by this package.
type Option func(*options)

func WithBufferMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithBufferSize sets the buffer capacity. Non-positive sizes are rejected
// when the stream is built.
func WithBufferSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithLogger sets the logger receiving raw write diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfig applies the buffer mode and size of cfg. An invalid cfg,
// including a zero size, fails the build of the stream.
func WithConfig(cfg *Config) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		if err := cfg.Validate(); err != nil {
			o.err = err
			return
		}
		mode, _ := ParseMode(cfg.BufferMode)
		o.mode = mode
		o.size = cfg.BufferSize
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New returns a Stream writing to dst.
func New(dst io.Writer, opts ...Option) (*Stream, error) {
	return newStream(dst, buildOptions(opts))
}

func newStream(dst io.Writer, o *options) (*Stream, error) {
	if o.err != nil {
		return nil, o.err
	}
	return writer.NewStreamWriterSize(dst, o.size,
		writer.WithMode(o.mode),
		writer.WithLogger(o.logger),
	)
}
