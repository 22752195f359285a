package ops

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cfoust/geom/pkg/config"

	"github.com/cespare/xxhash/v2"
	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
)

type Outcome struct {
	Job    config.Job
	Result Result
	Err    error
	// Whether the result came from an identical earlier job
	Cached bool
}

// Runner applies configured jobs against a registry. Results of successful
// jobs are cached, so repeating a job in a batch does not recompute it.
type Runner struct {
	registry *Registry

	mutex deadlock.Mutex
	cache map[uint64]Result
}

func NewRunner(registry *Registry) *Runner {
	return &Runner{
		registry: registry,
		cache:    make(map[uint64]Result),
	}
}

func jobKey(op string, args [][]float64, epsilon float64) uint64 {
	digest := xxhash.New()
	var buffer [8]byte

	writeUint := func(value uint64) {
		binary.LittleEndian.PutUint64(buffer[:], value)
		digest.Write(buffer[:])
	}

	digest.WriteString(op)
	writeUint(uint64(len(args)))
	for _, arg := range args {
		writeUint(uint64(len(arg)))
		for _, value := range arg {
			writeUint(math.Float64bits(value))
		}
	}
	writeUint(math.Float64bits(epsilon))

	return digest.Sum64()
}

// RunJob applies a single job with the given tolerance.
func (r *Runner) RunJob(job config.Job, epsilon float64) Outcome {
	outcome := Outcome{Job: job}

	op := r.registry.Lookup(job.Op)
	if opt.IsNone(op) {
		outcome.Err = fmt.Errorf("%w: %s", ErrUnknownOperation, job.Op)
		return outcome
	}

	// Aliases share a cache entry with their operation, and the tolerance
	// only distinguishes jobs whose operation reads it.
	keyEpsilon := 0.0
	if op.Value.UsesEpsilon {
		keyEpsilon = epsilon
	}
	key := jobKey(op.Value.Name, job.Args, keyEpsilon)

	r.mutex.Lock()
	cached, ok := r.cache[key]
	r.mutex.Unlock()
	if ok {
		log.Debug().Str("job", job.Name).Msg("using cached result")
		outcome.Result = cached
		outcome.Cached = true
		return outcome
	}

	args := make([]Operand, 0, len(job.Args))
	for i, values := range job.Args {
		operand, err := OperandFromValues(values)
		if err != nil {
			outcome.Err = fmt.Errorf("argument %d: %w", i+1, err)
			return outcome
		}
		args = append(args, operand)
	}

	result, err := r.registry.Apply(op.Value.Name, args, epsilon)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	r.mutex.Lock()
	r.cache[key] = result
	r.mutex.Unlock()

	outcome.Result = result
	return outcome
}

// Run applies every job in the configuration in order. A failing job is
// logged and does not stop the remaining jobs.
func (r *Runner) Run(cfg *config.Config) []Outcome {
	outcomes := make([]Outcome, 0, len(cfg.Jobs))
	for _, job := range cfg.Jobs {
		log.Debug().
			Str("job", job.Name).
			Str("op", job.Op).
			Msg("running job")

		outcome := r.RunJob(job, cfg.EpsilonFor(job))
		if outcome.Err != nil {
			log.Error().
				Err(outcome.Err).
				Str("job", job.Name).
				Msg("job failed")
		}

		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func Failed(outcomes []Outcome) int {
	count := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			count++
		}
	}
	return count
}
