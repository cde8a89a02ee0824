// Package logging builds app loggers.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes logger output.
type Config struct {
	// Level - one of logrus levels: debug, info, warn, error...
	Level string
	// File - optional path of rotated log file, written in addition to stderr.
	File string
	// FileMaxSizeMB - size of log file that triggers rotation.
	FileMaxSizeMB int
	// FileMaxBackups - number of rotated files kept.
	FileMaxBackups int
}

// New creates logger writing to stderr and, if conf.File is set, to a rotated file.
// Returned closer must be closed on exit.
func New(conf Config) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(conf.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	l := logrus.New()
	l.Level = level
	l.Out = os.Stderr

	if conf.File == "" {
		return l, io.NopCloser(nil), nil
	}

	file := &lumberjack.Logger{
		Filename:   conf.File,
		MaxSize:    conf.FileMaxSizeMB,
		MaxBackups: conf.FileMaxBackups,
	}
	l.Out = io.MultiWriter(os.Stderr, file)

	return l, file, nil
}
