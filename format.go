package outstream

import (
	"io"

	"github.com/caser789/outstream/internal/format"
)

// WriteJSONEscaped writes s escaped for a JSON string literal, without quotes.
func WriteJSONEscaped(w io.Writer, s string) error {
	return format.WriteJSONEscaped(w, s)
}

// WriteJSON writes v as compact JSON with sorted map keys.
func WriteJSON(w io.Writer, v interface{}) error {
	return format.WriteJSON(w, v)
}

// WriteSeparatedList writes items joined by sep.
func WriteSeparatedList(w io.Writer, items []string, sep string) error {
	return format.WriteSeparatedList(w, items, sep)
}
