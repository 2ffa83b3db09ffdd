package lumberjack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caser789/outstream/internal/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatingWriter(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.log")
	rw := NewRotatingWriter(name, RotateOptions{MaxSize: 1, MaxBackups: 2})
	defer rw.Close()

	assert.Equal(t, name, rw.Filename)
	assert.Equal(t, 1, rw.MaxSize)
	assert.Equal(t, 2, rw.MaxBackups)

	s, err := writer.NewStreamWriterSize(rw, 8)
	require.NoError(t, err)
	_, err = s.Write([]byte("hello rotating world\n"))
	require.NoError(t, err)
	require.NoError(t, s.Flush())

	got, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "hello rotating world\n", string(got))
}
