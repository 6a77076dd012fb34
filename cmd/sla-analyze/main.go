// Command sla-analyze is the CLI surface around package spatial (spec.md
// §1 lists "HTTP and CLI surfaces" as thin, external collaborators of the
// core). It resolves a document manifest to grounded text, optionally via
// package ocr, runs the pipeline, and prints the resulting tree as JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

type loggerKey struct{}

func contextWithLogger(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

func loggerFromContext(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

func initializeLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	log, err := newLogger(cmd.Bool("debug"))
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare logger: %w", err)
	}
	return contextWithLogger(ctx, log), nil
}

func destroyLogger(ctx context.Context, _ *cli.Command) error {
	log := loggerFromContext(ctx)
	_ = log.Sync()
	return nil
}

var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	loggerFromContext(ctx).Error("command failed", zap.Error(err))
	errWasHandled = true
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            "sla-analyze",
		Usage:           "spatial layout analyzer: grounded text in, document tree out",
		HideHelpCommand: true,
		Before:          initializeLogger,
		After:           destroyLogger,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "enable debug-level logging"},
		},
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "run the pipeline over a document manifest and print its tree",
				Action: analyze,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "document manifest `FILE` (YAML)"},
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "pipeline configuration `FILE` (YAML); defaults used if absent"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the tree to `FILE` instead of stdout"},
					&cli.BoolFlag{Name: "pretty", Usage: "indent the JSON output"},
				},
			},
			{
				Name:   "dumpconfig",
				Usage:  "print the active or default pipeline configuration (YAML)",
				Action: dumpConfig,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "pipeline configuration `FILE` (YAML)"},
					&cli.BoolFlag{Name: "default", Usage: "print spatial.DefaultConfig instead of loading --config"},
				},
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "sla-analyze: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
