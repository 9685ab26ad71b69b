package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "mathsets"

func run(args []string, outWriter, errWriter io.Writer) error {
	return newApp(outWriter, errWriter).Run(args)
}

type App struct {
	outWriter io.Writer
	errWriter io.Writer
}

func newApp(outWriter, errWriter io.Writer) App {
	return App{outWriter: outWriter, errWriter: errWriter}
}

func (a App) Run(args []string) error {
	cliApp := &cli.App{
		Name:  appName,
		Usage: "intersect math sets and locate points against the intersection",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "run the analysis described by a config file",
				Action: a.run,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   "config.toml",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
					},
					&cli.BoolFlag{
						Name:    "print",
						Aliases: []string{"p"},
						Usage:   "also print the result as a table",
					},
					&cli.BoolFlag{
						Name:  "coalesce",
						Usage: "merge result intervals sharing a bound",
					},
				},
			},
			{
				Name:   "sample",
				Usage:  "write a sample config file and data file",
				Action: a.sample,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Value: ".",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "list results kept in a result store",
				Action: a.history,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "store",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "kind",
						Value: "bbolt",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 10,
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
					},
				},
			},
		},
		HideHelpCommand: true,
		ErrWriter:       a.errWriter,
		ExitErrHandler:  func(*cli.Context, error) {},
		Writer:          a.outWriter,
	}

	for _, cmd := range cliApp.Commands {
		cmd.Before = a.noArgs
	}
	return cliApp.Run(args)
}

func (a App) noArgs(c *cli.Context) error {
	if c.NArg() > 0 {
		return fmt.Errorf("unexpected arguments used without flags: %s", strings.Join(c.Args().Slice(), " "))
	}
	return nil
}

// logger writes JSON records at info level, or human readable ones down to debug when verbose.
func (a App) logger(verbose bool) *zap.Logger {
	level := zap.InfoLevel
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if verbose {
		level = zap.DebugLevel
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(a.errWriter), level))
}
