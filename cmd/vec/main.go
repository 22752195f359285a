package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cfoust/geom/pkg/config"
	"github.com/cfoust/geom/pkg/version"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type cli struct {
	Version kong.VersionFlag `help:"Print version information and exit." short:"v"`
	Debug   bool             `help:"Whether to enable debug logging."`

	Run struct {
		Configs []string `arg:"" name:"configs" help:"Job files to run, applied in order." type:"file"`
	} `cmd:"" help:"Run the jobs described in one or more configuration files."`

	Eval struct {
		Op      string   `arg:"" name:"op" help:"Operation to apply."`
		Args    []string `arg:"" optional:"" passthrough:"" name:"args" help:"Operands, e.g. 2.5 or -1,2,3. Flags must come before the op."`
		Epsilon *float64 `help:"Tolerance for approximate comparisons. Defaults to the configured epsilon."`
	} `cmd:"" help:"Apply a single operation."`

	Ops struct {
	} `cmd:"" help:"List the available operations."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

var CLI cli

const description = "evaluate 2D and 3D vector operations"

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("vec"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf(
				"vec %s (commit %s, built %s)",
				version.Version,
				version.GitCommit,
				version.BuildTime,
			),
		},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	switch ctx.Command() {
	case "run <configs>":
		err := runCommand(os.Stdout, CLI.Run.Configs)
		if err != nil {
			writeError(err)
		}
	case "eval <op>", "eval <op> <args>":
		err := evalCommand(os.Stdout, CLI.Eval.Op, CLI.Eval.Args, CLI.Eval.Epsilon)
		if err != nil {
			writeError(err)
		}
	case "ops":
		opsCommand(os.Stdout)
	case "config":
		os.Stdout.Write(config.DEFAULT)
	}
}
