// Command mkdirt creates a directory and any missing parent directories.
//
//	mkdirt [--mode 0775] [--tolerate-existing] [--log-level info] <path>
//
// It prints "Done!" on success and "Error: <message>" on failure.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/giantswarm/mkdirt"
)

var errUsage = errors.New("expected exactly one path argument")

// ensureTree is replaced in tests to inject a file system.
var ensureTree = mkdirt.EnsureTree

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "mkdirt",
		Usage:     "Create a directory tree",
		ArgsUsage: "<path>",
		Flags:     appFlags(),
		Writer:    stdout,
		ErrWriter: stderr,
		// Errors are printed by run in a single "Error: ..." line.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errUsage
			}

			mode, err := parseMode(c.String(modeFlagName))
			if err != nil {
				return err
			}

			logger := newLogger(c.String(logLevelFlagName), stderr)
			mkdirt.SetLogger(logger.With("component", "mkdirt"))
			defer mkdirt.SetLogger(nil)

			var opts []mkdirt.Option
			if c.Bool(tolerateExistingFlagName) {
				opts = append(opts, mkdirt.WithExistPolicy(mkdirt.ExistRecheck))
			}

			if err := ensureTree(c.Args().First(), mode, opts...); err != nil {
				return err
			}

			fmt.Fprintln(stdout, "Done!")
			return nil
		},
	}
}
