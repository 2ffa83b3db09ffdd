package outstream

import (
	"io"

	"github.com/hashicorp/go-multierror"
)

// Use creates a Stream over dst, passes it to fn and flushes it on every
// exit path, including a panic in fn, which propagates once the flush is done.
// Errors from fn and from the final flush are both reported.
func Use(dst io.Writer, fn func(s *Stream) error, opts ...Option) (err error) {
	s, err := New(dst, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if ferr := s.Close(); ferr != nil {
			err = multierror.Append(err, ferr).ErrorOrNil()
		}
	}()
	return fn(s)
}

// FlushAll flushes every writer, reporting all failures.
func FlushAll(ws ...BufferedWriter) error {
	var res *multierror.Error
	for _, w := range ws {
		if err := w.Flush(); err != nil {
			res = multierror.Append(res, err)
		}
	}
	return res.ErrorOrNil()
}
