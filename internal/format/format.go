// Package format writes escaped and structured text to a byte stream.
//
// Each helper assembles its output in a pooled buffer and hands it to the
// destination with a single Write.
package format

import (
	"io"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap/buffer"
)

const _hex = "0123456789abcdef"

var _pool = buffer.NewPool()

var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// WriteJSONEscaped writes s escaped for use inside a JSON string literal.
// Surrounding quotes are not written.
func WriteJSONEscaped(w io.Writer, s string) error {
	buf := _pool.Get()
	defer buf.Free()

	appendEscaped(buf, s)
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteJSON writes the JSON encoding of v without a trailing newline.
func WriteJSON(w io.Writer, v interface{}) error {
	buf := _pool.Get()
	defer buf.Free()

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return err
	}
	buf.TrimNewline()
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteSeparatedList writes items joined by sep.
func WriteSeparatedList(w io.Writer, items []string, sep string) error {
	if len(items) == 0 {
		return nil
	}
	buf := _pool.Get()
	defer buf.Free()

	for i, item := range items {
		if i > 0 {
			buf.AppendString(sep)
		}
		buf.AppendString(item)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func appendEscaped(buf *buffer.Buffer, s string) {
	for i := 0; i < len(s); {
		if tryAddRuneSelf(buf, s[i]) {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf.AppendString(`\ufffd`)
			i++
			continue
		}
		buf.AppendString(s[i : i+size])
		i += size
	}
}

// tryAddRuneSelf appends b if it is a single byte UTF-8 character.
func tryAddRuneSelf(buf *buffer.Buffer, b byte) bool {
	if b >= utf8.RuneSelf {
		return false
	}
	if 0x20 <= b && b != '\\' && b != '"' {
		buf.AppendByte(b)
		return true
	}
	switch b {
	case '\\', '"':
		buf.AppendByte('\\')
		buf.AppendByte(b)
	case '\b':
		buf.AppendString(`\b`)
	case '\f':
		buf.AppendString(`\f`)
	case '\n':
		buf.AppendString(`\n`)
	case '\r':
		buf.AppendString(`\r`)
	case '\t':
		buf.AppendString(`\t`)
	default:
		buf.AppendString(`\u00`)
		buf.AppendByte(_hex[b>>4])
		buf.AppendByte(_hex[b&0xF])
	}
	return true
}
