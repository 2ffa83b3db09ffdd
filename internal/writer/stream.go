package writer

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Stream accumulates written bytes and hands them to the destination when
// the buffer fills, on Flush, or on Close.
//
// The destination must not retain the slice passed to its Write: the stream
// reuses that storage after the call returns.
//
// A Stream is owned by one goroutine. Callers sharing it must serialize access.
type Stream struct {
	dst    io.Writer
	mode   Mode
	size   int
	buf    []byte
	pos    int64
	logger *zap.Logger
}

// Option configures a Stream.
type Option func(*Stream)

// WithMode sets the buffer mode. The default is Buffered.
func WithMode(mode Mode) Option {
	return func(s *Stream) {
		s.mode = mode
	}
}

// WithLogger sets the logger used for raw write diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Stream) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStreamWriter returns a Stream with the default buffer size.
func NewStreamWriter(w io.Writer, opts ...Option) (*Stream, error) {
	return NewStreamWriterSize(w, defaultBufSize, opts...)
}

// NewStreamWriterSize returns a Stream whose buffer holds at most size bytes.
func NewStreamWriterSize(w io.Writer, size int, opts ...Option) (*Stream, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", size)
	}
	if w == nil {
		return nil, ErrNilDestination
	}
	s := &Stream{
		dst:    w,
		mode:   Buffered,
		size:   size,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.mode == Buffered {
		s.buf = make([]byte, 0, size)
	}
	return s, nil
}

// Write appends p to the stream. Any error comes from the destination and is
// returned unchanged; n is the number of bytes of p consumed before it.
func (s *Stream) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.mode == Unbuffered {
		if err := s.writeRaw(p); err != nil {
			return 0, err
		}
		s.pos += int64(len(p))
		return len(p), nil
	}

	for len(p) > 0 {
		avail := s.size - len(s.buf)
		if len(p) <= avail {
			s.buf = append(s.buf, p...)
			s.pos += int64(len(p))
			return n + len(p), nil
		}

		if len(s.buf) == 0 {
			// avail == size here, so the remainder always fits in the buffer.
			direct := len(p) - len(p)%avail
			if err := s.writeRaw(p[:direct]); err != nil {
				return n, err
			}
			s.pos += int64(direct)
			n += direct
			p = p[direct:]
			continue
		}

		s.buf = append(s.buf, p[:avail]...)
		s.pos += int64(avail)
		n += avail
		p = p[avail:]
		if err := s.Flush(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// WriteString writes the UTF-8 bytes of str.
func (s *Stream) WriteString(str string) (int, error) {
	if s.mode == Buffered && len(str) <= s.Available() {
		s.buf = append(s.buf, str...)
		s.pos += int64(len(str))
		return len(str), nil
	}
	return s.Write([]byte(str))
}

// WriteByte writes a single byte.
func (s *Stream) WriteByte(c byte) error {
	if s.mode == Buffered && s.Available() > 0 {
		s.buf = append(s.buf, c)
		s.pos++
		return nil
	}
	_, err := s.Write([]byte{c})
	return err
}

// WriteRune writes the UTF-8 encoding of r.
func (s *Stream) WriteRune(r rune) (int, error) {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	return s.Write(enc[:n])
}

// Flush writes any buffered bytes to the destination. The buffer is emptied
// even if the destination fails; those bytes are not retried.
func (s *Stream) Flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	err := s.writeRaw(s.buf)
	s.buf = s.buf[:0]
	return err
}

// Sync flushes the stream. It lets a Stream serve as a zapcore.WriteSyncer.
func (s *Stream) Sync() error {
	return s.Flush()
}

// Close flushes the stream. It does not close the destination, which the
// stream never owns. Every stream must be closed or flushed before it is dropped.
func (s *Stream) Close() error {
	return s.Flush()
}

// Reset discards any buffered bytes and directs further output to w.
// A nil w keeps the current destination.
func (s *Stream) Reset(w io.Writer) {
	s.buf = s.buf[:0]
	if w != nil {
		s.dst = w
	}
}

// Buffered returns the number of bytes held in the buffer.
func (s *Stream) Buffered() int { return len(s.buf) }

// Available returns how many bytes fit in the buffer before a flush is needed.
func (s *Stream) Available() int {
	if s.mode == Unbuffered {
		return 0
	}
	return s.size - len(s.buf)
}

// Size returns the buffer capacity.
func (s *Stream) Size() int { return s.size }

// Mode returns the buffer mode.
func (s *Stream) Mode() Mode { return s.mode }

// Position returns the total number of bytes accepted by the stream.
func (s *Stream) Position() int64 { return s.pos }

// Pending returns a copy of the buffered bytes not yet flushed.
func (s *Stream) Pending() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

func (s *Stream) writeRaw(p []byte) error {
	n, err := s.dst.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.logger.Warn("raw write failed",
			zap.Int("bytes", len(p)),
			zap.Int("written", n),
			zap.Error(err),
		)
		return err
	}
	if ce := s.logger.Check(zap.DebugLevel, "raw write"); ce != nil {
		ce.Write(zap.Int("bytes", n), zap.Stringer("mode", s.mode))
	}
	return nil
}
