package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var (
	errInvalidDirection = errors.New("invalid direction")
	errInvalidLogFormat = errors.New("invalid log format")
)

// direction selects which neighbour set the neighbors command prints.
type direction string

const (
	dirOut direction = "out"
	dirIn  direction = "in"
	dirAll direction = "all"
)

var _ pflag.Value = (*direction)(nil)

func (d *direction) String() string { return string(*d) }

func (d *direction) Set(s string) error {
	switch direction(s) {
	case dirOut, dirIn, dirAll:
		*d = direction(s)
		return nil
	default:
		return fmt.Errorf("%q (want out|in|all): %w", s, errInvalidDirection)
	}
}

func (*direction) Type() string { return "direction" }

// logFormat selects the logrus formatter.
type logFormat string

const (
	formatText logFormat = "text"
	formatJSON logFormat = "json"
)

var _ pflag.Value = (*logFormat)(nil)

func (f *logFormat) String() string { return string(*f) }

func (f *logFormat) Set(s string) error {
	switch logFormat(s) {
	case formatText, formatJSON:
		*f = logFormat(s)
		return nil
	default:
		return fmt.Errorf("%q (want text|json): %w", s, errInvalidLogFormat)
	}
}

func (*logFormat) Type() string { return "format" }

func (f logFormat) formatter() logrus.Formatter {
	if f == formatJSON {
		return &logrus.JSONFormatter{}
	}

	return &logrus.TextFormatter{DisableTimestamp: true}
}
