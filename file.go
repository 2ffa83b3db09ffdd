package outstream

import (
	"io"
	"os"
	"path/filepath"

	"github.com/caser789/outstream/internal/lumberjack"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// RotateConfig controls size based rotation of a file destination.
type RotateConfig struct {
	// MaxSize is the size in megabytes a file may reach before it is rotated.
	MaxSize    int  `yaml:"maxSize"`
	MaxAge     int  `yaml:"maxAge"`
	MaxBackups int  `yaml:"maxBackups"`
	Compress   bool `yaml:"compress"`
	LocalTime  bool `yaml:"localTime"`
}

var defaultRotateConfig = RotateConfig{
	MaxSize:    100,
	MaxAge:     7,
	MaxBackups: 10,
}

// FileStream is a Stream over a file it owns. Close flushes the stream and
// then closes the file.
type FileStream struct {
	*Stream
	path   string
	file   io.WriteCloser
	closed bool
}

// OpenFile creates or truncates path, creating parent directories, and
// returns a FileStream writing to it.
func OpenFile(path string, opts ...Option) (*FileStream, error) {
	return openFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, opts)
}

// AppendFile opens path for appending, creating it if needed.
func AppendFile(path string, opts ...Option) (*FileStream, error) {
	return openFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, opts)
}

func openFile(path string, flag int, opts []Option) (*FileStream, error) {
	o := buildOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "create directory for %s", path)
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return newFileStream(path, f, o)
}

// OpenRotatingFile returns a FileStream over a file that is rotated once it
// grows past cfg.MaxSize megabytes. A zero cfg uses 100MB, 7 days, 10 backups.
func OpenRotatingFile(path string, cfg RotateConfig, opts ...Option) (*FileStream, error) {
	o := buildOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	if cfg == (RotateConfig{}) {
		cfg = defaultRotateConfig
	}
	rw := lumberjack.NewRotatingWriter(path, lumberjack.RotateOptions{
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
		LocalTime:  cfg.LocalTime,
	})
	return newFileStream(path, rw, o)
}

func newFileStream(path string, f io.WriteCloser, o *options) (*FileStream, error) {
	s, err := newStream(f, o)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &FileStream{Stream: s, path: path, file: f}, nil
}

// Path returns the path the stream writes to.
func (f *FileStream) Path() string { return f.path }

// Close flushes buffered bytes and closes the file. The file is closed even
// when the flush fails. Calling Close again is a no-op.
func (f *FileStream) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	var res *multierror.Error
	if err := f.Stream.Close(); err != nil {
		res = multierror.Append(res, err)
	}
	if err := f.file.Close(); err != nil {
		res = multierror.Append(res, errors.Wrapf(err, "close %s", f.path))
	}
	return res.ErrorOrNil()
}
