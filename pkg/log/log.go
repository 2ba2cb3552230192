// Package log is the convenience entry point for applications using linelog.
//
// It creates loggers from the LINELOG_* environment (LINELOG_NAME,
// LINELOG_OUTPUT, LINELOG_COLOR) with sensible defaults, so most programs
// only need:
//
//	logger, err := log.New("Main")
//	if err != nil {
//		panic(err)
//	}
//
//	logger.Info("Program started.")
package log

import (
	"os"

	"github.com/hyp3rd/linelog"
	"github.com/hyp3rd/linelog/internal/constants"
	"github.com/hyp3rd/linelog/pkg/configloader"
)

// New creates a logger configured from the environment. A non-empty name
// overrides any LINELOG_NAME value.
func New(name string) (*linelog.Logger, error) {
	config, err := configloader.FromEnv(constants.EnvPrefix)
	if err != nil {
		return nil, err
	}

	if name != "" {
		config.Name = name
	}

	return linelog.NewFromConfig(*config)
}

// NewWithDefaults creates a logger with the given name writing to standard
// output, ignoring the environment.
func NewWithDefaults(name string) *linelog.Logger {
	return linelog.New(name, os.Stdout)
}
