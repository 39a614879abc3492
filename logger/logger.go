// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package logger provides the structured logging interface shared by all
// LaunchPlan components.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Logger defines the interface for logging operations used across the service.
type Logger interface {
	Debug(msg string, keyValuePairs ...any)
	Info(msg string, keyValuePairs ...any)
	Warn(msg string, keyValuePairs ...any)
	Error(msg string, keyValuePairs ...any)
	Flush() error
}

// Options controls logger construction.
type Options struct {
	// Debug enables debug level output. Info and above otherwise.
	Debug bool

	// File, when set, mirrors log output to the given file in JSON format.
	File string

	// JSON switches console output to JSON format. Plain text otherwise.
	JSON bool
}

type logrusLogger struct {
	log  *logrus.Logger
	file *os.File
}

// New creates a logger writing to stderr, optionally mirrored to a file.
func New(opts Options) (Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	log.SetLevel(logrus.InfoLevel)
	if opts.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	l := &logrusLogger{log: log}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open log file %s", opts.File)
		}
		l.file = f
		log.SetOutput(io.MultiWriter(os.Stderr, f))
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return l, nil
}

// NewNop returns a logger that discards everything. Intended for tests.
func NewNop() Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &logrusLogger{log: log}
}

func (l *logrusLogger) Debug(msg string, keyValuePairs ...any) {
	l.log.WithFields(toFields(keyValuePairs)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, keyValuePairs ...any) {
	l.log.WithFields(toFields(keyValuePairs)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, keyValuePairs ...any) {
	l.log.WithFields(toFields(keyValuePairs)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, keyValuePairs ...any) {
	l.log.WithFields(toFields(keyValuePairs)).Error(msg)
}

func (l *logrusLogger) Flush() error {
	if l.file != nil {
		return l.file.Sync()
	}
	return nil
}

// toFields folds alternating key/value arguments into logrus fields. A
// dangling key is kept with a placeholder value rather than dropped.
func toFields(keyValuePairs []any) logrus.Fields {
	fields := make(logrus.Fields, len(keyValuePairs)/2+1)
	for i := 0; i+1 < len(keyValuePairs); i += 2 {
		key, ok := keyValuePairs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keyValuePairs[i])
		}
		fields[key] = keyValuePairs[i+1]
	}
	if len(keyValuePairs)%2 == 1 {
		key, ok := keyValuePairs[len(keyValuePairs)-1].(string)
		if !ok {
			key = fmt.Sprintf("%v", keyValuePairs[len(keyValuePairs)-1])
		}
		fields[key] = "(missing)"
	}
	return fields
}
