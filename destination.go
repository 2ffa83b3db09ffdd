package outstream

import (
	"io"
	"strings"
)

// StringDestination collects raw writes into text it owns.
// The zero value is ready to use.
type StringDestination struct {
	sb strings.Builder
}

func (d *StringDestination) Write(p []byte) (int, error) {
	return d.sb.Write(p)
}

func (d *StringDestination) String() string { return d.sb.String() }

func (d *StringDestination) Len() int { return d.sb.Len() }

func (d *StringDestination) Reset() { d.sb.Reset() }

// WriteFunc adapts a function to a destination. The function must consume
// all of p or return an error, and must not keep p after returning.
type WriteFunc func(p []byte) error

func (f WriteFunc) Write(p []byte) (int, error) {
	if err := f(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

var (
	_ io.Writer = (*StringDestination)(nil)
	_ io.Writer = WriteFunc(nil)
)
