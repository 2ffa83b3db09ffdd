package main

import (
	"bufio"
	"os"

	"github.com/caser789/outstream"
	"go.uber.org/zap"
)

// Copies stdin to ./log/output.log through a buffered stream, logging
// progress to stdout through a second, unbuffered one.
func main() {
	console, err := outstream.New(os.Stdout, outstream.WithBufferMode(outstream.Unbuffered))
	if err != nil {
		panic(err)
	}
	logger := outstream.NewLogger(console)
	defer logger.Sync()

	cfg, err := outstream.DefaultConfig()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	out, err := cfg.Open(outstream.WithLogger(logger))
	if err != nil {
		logger.Fatal("open output", zap.Error(err))
	}

	lines := 0
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if _, err := out.Write(scanner.Bytes()); err != nil {
			logger.Error("write", zap.Error(err))
			break
		}
		if err := out.WriteByte('\n'); err != nil {
			logger.Error("write", zap.Error(err))
			break
		}
		lines++
	}
	if err := out.Close(); err != nil {
		logger.Error("close output", zap.Error(err))
	}
	logger.Info("done", zap.Int("lines", lines), zap.Int64("bytes", out.Position()), zap.String("path", out.Path()))
}
