package outstream

import (
	"os"

	"github.com/caser789/outstream/internal/utils/env"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes a stream and, optionally, the file it writes to.
type Config struct {
	// BufferMode is "buffered" (default) or "unbuffered".
	BufferMode string `yaml:"bufferMode"`
	// BufferSize is the buffer capacity in bytes, 1024 if unset.
	BufferSize int `yaml:"bufferSize"`
	// Path - Output directory. Falls back to OUTSTREAM_DIR, then ./log.
	Path string `yaml:"path"`
	// FileName - Output file name. A .log extension is added when it has none.
	FileName string `yaml:"fileName"`
	// Rotate enables size based rotation of the output file.
	Rotate *RotateConfig `yaml:"rotate"`
	// Level - Minimum level of loggers built with NewLogger: debug, info, warn or error.
	Level string `yaml:"level"`
}

var (
	defaultConfig = &Config{
		BufferMode: Buffered.String(),
		BufferSize: DefaultBufferSize,
		FileName:   "output",
	}
)

// DefaultConfig returns the default configuration with environment overrides applied.
func DefaultConfig() (*Config, error) {
	cfg := *defaultConfig
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads a YAML configuration from path. Unset fields keep their
// defaults and OUTSTREAM_BUFFER_MODE / OUTSTREAM_BUFFER_SIZE take precedence
// over the file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	cfg := *defaultConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports a non-positive buffer size, an unknown buffer mode or an unknown level.
func (c *Config) Validate() error {
	if c.BufferSize <= 0 {
		return errors.Wrapf(ErrInvalidSize, "size %d", c.BufferSize)
	}
	if _, err := ParseMode(c.BufferMode); err != nil {
		return err
	}
	if c.Level != "" {
		if _, err := parseLevel(c.Level); err != nil {
			return err
		}
	}
	return nil
}

// FilePath returns the output file path.
func (c *Config) FilePath() string {
	return env.GetFilePath(c.Path, c.FileName)
}

// Open opens the configured output file as a FileStream.
func (c *Config) Open(opts ...Option) (*FileStream, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts = append([]Option{WithConfig(c)}, opts...)
	if c.Rotate != nil {
		return OpenRotatingFile(c.FilePath(), *c.Rotate, opts...)
	}
	return OpenFile(c.FilePath(), opts...)
}

func (c *Config) applyEnv() error {
	if mode, ok := env.BufferMode(); ok {
		c.BufferMode = mode
	}
	size, ok, err := env.BufferSize()
	if err != nil {
		return err
	}
	if ok {
		c.BufferSize = size
	}
	return nil
}
