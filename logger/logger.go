// Copyright 2025 The probdist Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger provides leveled, module-tagged logging for the
// command line tools.
package logger

import (
	"os"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// Logger is the logging handle handed to commands.
type Logger = *logging.Logger

// LogLevelFlag selects the log level on the command line.
var LogLevelFlag = cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "level of the logging (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG)",
	Value:   "INFO",
}

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{color}%{level:-8s}%{color:reset} %{module}: %{message}`,
)

// NewLogger returns a logger for the given module at the given level.
// An unrecognized level falls back to INFO.
func NewLogger(level string, module string) Logger {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, module)
	log := logging.MustGetLogger(module)
	log.SetBackend(leveled)
	return log
}
