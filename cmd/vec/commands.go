package main

import (
	"fmt"
	"io"

	"github.com/cfoust/geom/pkg/config"
	"github.com/cfoust/geom/pkg/ops"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type outcomeDocument struct {
	Name   string      `yaml:"name"`
	Op     string      `yaml:"op"`
	Result interface{} `yaml:"result,omitempty"`
	Error  string      `yaml:"error,omitempty"`
}

func writeOutcomes(out io.Writer, format config.Format, outcomes []ops.Outcome) error {
	switch format {
	case config.FormatYAML:
		documents := make([]outcomeDocument, 0, len(outcomes))
		for _, outcome := range outcomes {
			document := outcomeDocument{
				Name: outcome.Job.Name,
				Op:   outcome.Job.Op,
			}
			if outcome.Err != nil {
				document.Error = outcome.Err.Error()
			} else {
				document.Result = outcome.Result.Value()
			}
			documents = append(documents, document)
		}

		encoder := yaml.NewEncoder(out)
		defer encoder.Close()
		return encoder.Encode(documents)
	default:
		for _, outcome := range outcomes {
			var err error
			if outcome.Err != nil {
				_, err = fmt.Fprintf(out, "%s: error: %s\n", outcome.Job.Name, outcome.Err)
			} else {
				_, err = fmt.Fprintf(out, "%s: %s\n", outcome.Job.Name, outcome.Result)
			}
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func runCommand(out io.Writer, configs []string) error {
	cfg, err := config.Process(configs)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %v", err)
	}

	log.Info().Int("jobs", len(cfg.Jobs)).Msg("running jobs")

	outcomes := ops.NewRunner(ops.DefaultRegistry()).Run(cfg)
	if err := writeOutcomes(out, cfg.Format, outcomes); err != nil {
		return err
	}

	if failed := ops.Failed(outcomes); failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(outcomes))
	}

	return nil
}

// evalCommand applies a single operation. A nil epsilon falls back to the
// default configuration.
func evalCommand(out io.Writer, name string, arguments []string, epsilon *float64) error {
	cfg, err := config.Default()
	if err != nil {
		return err
	}

	tolerance := cfg.Epsilon
	if epsilon != nil {
		tolerance = *epsilon
	}

	args, err := ops.ParseOperands(arguments)
	if err != nil {
		return err
	}

	log.Debug().
		Str("op", name).
		Strs("args", arguments).
		Float64("epsilon", tolerance).
		Msg("evaluating")

	result, err := ops.DefaultRegistry().Apply(name, args, tolerance)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, result)
	return err
}

func opsCommand(out io.Writer) {
	fmt.Fprintln(out, ops.DefaultRegistry().Help())
}
