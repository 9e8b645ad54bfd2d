package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/prometheus/common/version"
	"github.com/rs/zerolog"

	gauntlet "github.com/input-output-hk/gauntlet/src"
	"github.com/input-output-hk/gauntlet/src/config"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	args := &CLI{}
	parser, err := parseArgs(args)
	abort(parser, err)

	logger, err := config.ConfigureLogger(args.Debug)
	abort(parser, err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	abort(parser, Run(ctx, parser, args, logger))
}

type CLI struct {
	Debug bool               `arg:"--debug" help:"debugging output"`
	Start *gauntlet.StartCmd `arg:"subcommand:start" help:"serve the API and execute runs it accepts"`
	Run   *gauntlet.RunCmd   `arg:"subcommand:run" help:"evaluate an event and run its jobs locally"`
	Plan  *gauntlet.PlanCmd  `arg:"subcommand:plan" help:"print the jobs an event would start"`
}

func (CLI) Version() string {
	return version.Print("gauntlet")
}

func abort(parser *arg.Parser, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(os.Stderr)
		os.Exit(0)
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(os.Stdout, version.Print("gauntlet"))
		os.Exit(0)
	case errors.Is(err, gauntlet.ErrRunFailed):
		os.Exit(1)
	default:
		fmt.Fprint(os.Stderr, err, "\n")
		os.Exit(1)
	}
}

func parseArgs(args *CLI) (parser *arg.Parser, err error) {
	parser, err = arg.NewParser(arg.Config{}, args)
	if err != nil {
		return
	}

	err = parser.Parse(os.Args[1:])
	return
}

func Run(ctx context.Context, parser *arg.Parser, args *CLI, logger *zerolog.Logger) error {
	switch {
	case args.Start != nil:
		return args.Start.Run(ctx, logger)
	case args.Run != nil:
		return args.Run.Run(ctx, logger)
	case args.Plan != nil:
		return args.Plan.Run(logger)
	default:
		parser.WriteHelp(os.Stderr)
	}
	return nil
}
