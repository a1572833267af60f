package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/wiedzmin/loadchk/impl"
	"github.com/wiedzmin/loadchk/impl/env"
	"github.com/wiedzmin/loadchk/impl/load"
	"github.com/wiedzmin/loadchk/impl/report"
	"github.com/wiedzmin/loadchk/impl/shell"
	"github.com/wiedzmin/loadchk/impl/tberrors"
	"go.uber.org/zap"
)

var logger *zap.Logger

type deps struct {
	settings *env.Settings
	sampler  load.Sampler
	helper   report.Helper
	stdout   io.Writer
	stderr   io.Writer
}

func usageError(ctx *cli.Context, reason string) error {
	fmt.Fprintf(ctx.App.ErrWriter, "usage: %s [-t threshold]: %s\n", ctx.App.Name, reason)
	return tberrors.ErrUsage{Reason: reason}
}

func perform(d deps) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		l := logger.Sugar()
		if ctx.Args().Present() {
			return usageError(ctx, fmt.Sprintf("unexpected argument '%s'", ctx.Args().First()))
		}
		threshold := ctx.Float64("threshold")
		l.Debugw("[perform]", "threshold", threshold)

		sample, err := d.sampler.Sample()
		if err != nil {
			var unavailable tberrors.ErrLoadUnavailable
			if !errors.As(err, &unavailable) {
				err = tberrors.ErrLoadUnavailable{Err: err}
			}
			l.Errorw("[perform]", "err", err)
			return err
		}
		l.Debugw("[perform]", "sample", sample)

		outcome := report.NewReporter(ctx.App.Writer, ctx.App.ErrWriter, d.helper, logger).Report(sample.One(), threshold)
		l.Debugw("[perform]", "outcome", outcome.String())
		return nil
	}
}

func createCLI(d deps) *cli.App {
	app := cli.NewApp()
	app.Name = "loadchk"
	app.Usage = "Reports busiest processes if load average exceeds threshold"
	app.Description = "Samples 1-minute load average once and stays silent unless it is above threshold"
	app.Version = "0.0.1#master"
	app.HideHelp = true
	app.HideVersion = true
	app.Writer = d.stdout
	app.ErrWriter = d.stderr

	app.Flags = []cli.Flag{
		&cli.Float64Flag{
			Name:     "threshold",
			Aliases:  []string{"t"},
			Usage:    "Load average above which report is printed",
			Value:    d.settings.Threshold,
			Required: false,
		},
	}
	app.OnUsageError = func(ctx *cli.Context, err error, _ bool) error {
		return usageError(ctx, err.Error())
	}
	// exit status is derived in main
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Action = perform(d)
	return app
}

func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return tberrors.ExitUsage
}

func main() {
	logger = impl.NewLogger()
	l := logger.Sugar()
	settings, err := env.Load(impl.EnvPrefix)
	if err != nil {
		l.Warnw("[main] falling back to defaults", "err", err)
		settings = env.Defaults()
	}
	app := createCLI(deps{
		settings: settings,
		sampler:  load.NewSystem(),
		helper:   shell.NewSnapshot(settings.HelperCommand, settings.HelperLines),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	})
	err = app.Run(os.Args)
	_ = logger.Sync()
	os.Exit(exitStatus(err))
}
