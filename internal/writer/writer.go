package writer

import (
	"io"

	"github.com/pkg/errors"
)

const (
	defaultBufSize = 1024
)

var (
	// ErrInvalidSize is returned when a stream is configured with a non-positive buffer size.
	ErrInvalidSize = errors.New("writer: buffer size must be positive")
	// ErrNilDestination is returned when a stream is created without a destination.
	ErrNilDestination = errors.New("writer: nil destination")
)

type BufferedWriter interface {
	Write(p []byte) (n int, err error)
	Flush() error
}

var (
	_ BufferedWriter  = (*Stream)(nil)
	_ io.StringWriter = (*Stream)(nil)
	_ io.ByteWriter   = (*Stream)(nil)
	_ io.Closer       = (*Stream)(nil)
)
