package env

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	BufferModeKey = "OUTSTREAM_BUFFER_MODE"
	BufferSizeKey = "OUTSTREAM_BUFFER_SIZE"
	OutputDirKey  = "OUTSTREAM_DIR"
)

func GetEnv() string {
	val, ok := os.LookupEnv("ENV")
	if !ok {
		val = "dev"
	}
	return val
}

func IsLive() bool {
	return GetEnv() == "live"
}

// BufferMode returns the buffer mode override, if set.
func BufferMode() (string, bool) {
	val, ok := os.LookupEnv(BufferModeKey)
	if !ok || strings.TrimSpace(val) == "" {
		return "", false
	}
	return strings.TrimSpace(val), true
}

// BufferSize returns the buffer size override, if set.
// A value that is not an integer is reported as an error.
func BufferSize() (int, bool, error) {
	val, ok := os.LookupEnv(BufferSizeKey)
	if !ok || strings.TrimSpace(val) == "" {
		return 0, false, nil
	}
	size, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, true, errors.Wrap(err, BufferSizeKey)
	}
	return size, true, nil
}

// GetFilePath joins the output directory and file name, adding a .log
// extension when the name has none. An empty dir falls back to
// OUTSTREAM_DIR, then ./log.
func GetFilePath(dir, filename string) string {
	if dir == "" {
		dir = os.Getenv(OutputDirKey)
	}
	if dir == "" {
		dir = "./log"
	}
	if filepath.Ext(filename) == "" {
		filename = fmt.Sprintf("%s.log", filename)
	}
	return filepath.Join(dir, filename)
}
