package outstream_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/caser789/outstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringDestination(t *testing.T) {
	var dst outstream.StringDestination
	s, err := outstream.New(&dst)
	require.NoError(t, err)

	var want strings.Builder
	for i := 0; i < 10000; i++ {
		msg := fmt.Sprintf("hello %d", i)
		want.WriteString(msg)
		_, err := s.WriteString(msg)
		require.NoError(t, err)
		require.LessOrEqual(t, s.Buffered(), outstream.DefaultBufferSize)
	}
	require.NoError(t, s.Close())
	assert.Equal(t, want.String(), dst.String())
	assert.Equal(t, int64(want.Len()), s.Position())
}

func TestBasics(t *testing.T) {
	var dst outstream.StringDestination
	s, err := outstream.New(&dst)
	require.NoError(t, err)

	_, err = s.WriteString("Hello")
	require.NoError(t, err)
	require.NoError(t, s.WriteByte(','))
	_, err = s.WriteRune(' ')
	require.NoError(t, err)
	_, err = s.Write([]byte("wor"))
	require.NoError(t, err)
	_, err = s.Write([]byte("world")[3:5])
	require.NoError(t, err)
	_, err = s.WriteRune('!')
	require.NoError(t, err)

	assert.Equal(t, 0, dst.Len())
	require.NoError(t, s.Flush())

	assert.Equal(t, int64(len("Hello, world!")), s.Position())
	assert.Equal(t, "Hello, world!", dst.String())
}

func TestNewOptions(t *testing.T) {
	var dst outstream.StringDestination
	s, err := outstream.New(&dst,
		outstream.WithBufferSize(4),
		outstream.WithBufferMode(outstream.Unbuffered),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Size())
	assert.Equal(t, outstream.Unbuffered, s.Mode())

	_, err = s.WriteString("ab")
	require.NoError(t, err)
	assert.Equal(t, "ab", dst.String())
}

func TestNewInvalidSize(t *testing.T) {
	s, err := outstream.New(&outstream.StringDestination{}, outstream.WithBufferSize(0))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, outstream.ErrInvalidSize)

	_, err = outstream.New(nil)
	assert.ErrorIs(t, err, outstream.ErrNilDestination)
}

func TestWithConfig(t *testing.T) {
	var dst outstream.StringDestination
	s, err := outstream.New(&dst, outstream.WithConfig(&outstream.Config{
		BufferMode: "unbuffered",
		BufferSize: 16,
	}))
	require.NoError(t, err)
	assert.Equal(t, 16, s.Size())
	assert.Equal(t, outstream.Unbuffered, s.Mode())

	_, err = outstream.New(&dst, outstream.WithConfig(&outstream.Config{BufferMode: "sometimes", BufferSize: 16}))
	assert.Error(t, err)

	s, err = outstream.New(&dst, outstream.WithConfig(&outstream.Config{BufferMode: "buffered"}))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, outstream.ErrInvalidSize)
}

func TestWriteFunc(t *testing.T) {
	var calls [][]byte
	dst := outstream.WriteFunc(func(p []byte) error {
		calls = append(calls, append([]byte(nil), p...))
		return nil
	})
	s, err := outstream.New(dst, outstream.WithBufferSize(4))
	require.NoError(t, err)

	_, err = s.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	require.NoError(t, s.Flush())
	assert.Equal(t, [][]byte{{1, 2, 3, 4, 5, 6, 7, 8}, {9}}, calls)
}

func TestWriteFuncError(t *testing.T) {
	boom := errors.New("boom")
	dst := outstream.WriteFunc(func(p []byte) error { return boom })
	s, err := outstream.New(dst, outstream.WithBufferSize(4))
	require.NoError(t, err)

	_, err = s.WriteString("abc")
	require.NoError(t, err)
	assert.Same(t, boom, s.Flush())
}

func TestFormatHelpers(t *testing.T) {
	var dst outstream.StringDestination
	s, err := outstream.New(&dst, outstream.WithBufferSize(8))
	require.NoError(t, err)

	require.NoError(t, outstream.WriteJSON(s, map[string]string{"hello": "world\n"}))
	require.NoError(t, s.WriteByte(' '))
	require.NoError(t, outstream.WriteSeparatedList(s, []string{"hello", "world"}, ", "))
	require.NoError(t, s.WriteByte(' '))
	require.NoError(t, outstream.WriteJSONEscaped(s, "\"q\""))
	require.NoError(t, s.Close())

	assert.Equal(t, `{"hello":"world\n"} hello, world \"q\"`, dst.String())
}
