package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/giantswarm/mkdirt"
)

const (
	modeFlagName             = "mode"
	tolerateExistingFlagName = "tolerate-existing"
	logLevelFlagName         = "log-level"
)

// appFlags returns fresh flag values for every app. urfave/cli writes
// environment values back into the flag struct, so flags are not shared
// between apps.
func appFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    modeFlagName,
			Aliases: []string{"m"},
			EnvVars: []string{"MKDIRT_MODE"},
			Usage:   "Octal mode for directories that get created",
			Value:   fmt.Sprintf("%04o", uint32(mkdirt.DefaultMode.Perm())),
		},
		&cli.BoolFlag{
			Name:    tolerateExistingFlagName,
			EnvVars: []string{"MKDIRT_TOLERATE_EXISTING"},
			Usage:   "Accept a directory created concurrently by another process instead of failing with EEXIST",
		},
		&cli.StringFlag{
			Name:    logLevelFlagName,
			EnvVars: []string{"MKDIRT_LOG_LEVEL"},
			Usage:   "Log level: debug, info, warn, error",
			Value:   "info",
		},
	}
}
