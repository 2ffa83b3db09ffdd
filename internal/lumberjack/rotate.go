package lumberjack

import (
	natefinch "gopkg.in/natefinch/lumberjack.v2"
)

type RotateOptions struct {
	// MaxSize is the size in megabytes a file may reach before it is rotated.
	MaxSize    int
	MaxAge     int
	MaxBackups int
	Compress   bool
	LocalTime  bool
}

// NewRotatingWriter returns a file writer that rotates filename by size.
func NewRotatingWriter(filename string, opt RotateOptions) *natefinch.Logger {
	return &natefinch.Logger{
		LocalTime:  opt.LocalTime,
		Filename:   filename,
		MaxSize:    opt.MaxSize,
		MaxBackups: opt.MaxBackups,
		MaxAge:     opt.MaxAge,
		Compress:   opt.Compress,
	}
}
