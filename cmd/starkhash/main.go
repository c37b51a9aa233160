// Command starkhash evaluates the STARK hash functions from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.New()

var verboseFlag = &cli.BoolFlag{
	Name:    "verbose",
	Aliases: []string{"v"},
	Usage:   "enable debug logging",
	EnvVars: []string{"STARKHASH_VERBOSE"},
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "starkhash",
		Usage:     "algebraic hash functions over the 128-bit STARK field",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     []cli.Flag{verboseFlag},
		Before: func(ctx *cli.Context) error {
			log.SetOutput(stderr)
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if ctx.Bool(verboseFlag.Name) {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.InfoLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			listCommand,
			hashCommand,
			digestCommand,
			batchCommand,
		},
	}
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
