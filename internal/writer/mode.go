package writer

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode selects whether writes are batched in the buffer or passed straight through.
type Mode uint8

const (
	Buffered Mode = iota
	Unbuffered
)

func (m Mode) String() string {
	switch m {
	case Buffered:
		return "buffered"
	case Unbuffered:
		return "unbuffered"
	}
	return "unknown"
}

// ParseMode parses "buffered" or "unbuffered", ignoring case. An empty string is Buffered.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "buffered":
		return Buffered, nil
	case "unbuffered":
		return Unbuffered, nil
	}
	return Buffered, errors.Errorf("writer: unknown buffer mode %q", s)
}
