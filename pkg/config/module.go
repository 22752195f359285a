package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	J "cuelang.org/go/encoding/json"
	"cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaFile string

//go:embed default.yaml
var DEFAULT []byte

func readFile(ctx *cue.Context, path string) (*cue.Value, error) {
	// Check if this is a valid file
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("does not exist")
	}

	extension := filepath.Ext(path)
	switch extension {
	case ".json":
		dataFile, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		dataExpr, err := J.Extract(path, dataFile)
		if err != nil {
			return nil, err
		}

		value := ctx.BuildExpr(dataExpr)
		if err := value.Err(); err != nil {
			return nil, err
		}

		return &value, nil
	case ".yaml", ".yml":
		yamlFile, err := yaml.Extract(path, nil)
		if err != nil {
			return nil, err
		}

		value := ctx.BuildFile(yamlFile)
		if err := value.Err(); err != nil {
			return nil, err
		}

		return &value, nil
	}

	return nil, fmt.Errorf(
		"not in a valid format",
	)
}

func compileSchema(ctx *cue.Context, definition string) (cue.Value, error) {
	schema := ctx.CompileString(schemaFile)
	if err := schema.Err(); err != nil {
		return cue.Value{}, err
	}

	schema = schema.LookupPath(cue.ParsePath(definition))
	if err := schema.Err(); err != nil {
		return cue.Value{}, err
	}

	return schema, nil
}

// decode unifies value with schema, checks that the result is complete and
// writes it into target.
func decode(schema cue.Value, value cue.Value, target interface{}) error {
	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err
	}

	data, err := unified.MarshalJSON()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, target)
}

func (c *Config) merge(contents *file) {
	if contents.Epsilon != nil {
		c.Epsilon = *contents.Epsilon
	}

	if contents.Format != nil {
		c.Format = *contents.Format
	}

	c.Jobs = append(c.Jobs, contents.Jobs...)
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	ctx := cuecontext.New()

	schema, err := compileSchema(ctx, "#Config")
	if err != nil {
		return nil, err
	}

	yamlFile, err := yaml.Extract("<default>", DEFAULT)
	if err != nil {
		return nil, err
	}

	value := ctx.BuildFile(yamlFile)
	if err := value.Err(); err != nil {
		return nil, err
	}

	var config Config
	if err := decode(schema, value, &config); err != nil {
		return nil, fmt.Errorf(
			"invalid default config file: %v",
			err,
		)
	}

	return &config, nil
}

// Process reads the provided configuration files in order, unifies each one
// with the file schema and layers it on top of the default configuration.
// Keys present in later files override earlier ones, and jobs accumulate in
// file order.
func Process(configPaths []string) (*Config, error) {
	config, err := Default()
	if err != nil {
		return nil, err
	}

	ctx := cuecontext.New()
	schema, err := compileSchema(ctx, "#File")
	if err != nil {
		return nil, err
	}

	for _, path := range configPaths {
		value, err := readFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf(
				"could not process config file %s: %v",
				path,
				err,
			)
		}

		var contents file
		if err := decode(schema, *value, &contents); err != nil {
			return nil, fmt.Errorf(
				"config file %s is not valid: %v",
				path,
				err,
			)
		}

		config.merge(&contents)
	}

	for i := range config.Jobs {
		if config.Jobs[i].Name == "" {
			config.Jobs[i].Name = fmt.Sprintf("%s#%d", config.Jobs[i].Op, i+1)
		}
	}

	return config, nil
}

// Validate checks a configuration built in code against the same schema
// that configuration files are held to.
func (c *Config) Validate() error {
	normalized := *c
	normalized.Jobs = make([]Job, len(c.Jobs))
	for i, job := range c.Jobs {
		if job.Args == nil {
			job.Args = [][]float64{}
		}
		normalized.Jobs[i] = job
	}

	// encoding/json refuses NaN and infinities
	data, err := json.Marshal(normalized)
	if err != nil {
		return err
	}

	ctx := cuecontext.New()
	schema, err := compileSchema(ctx, "#Config")
	if err != nil {
		return err
	}

	dataExpr, err := J.Extract("<config>", data)
	if err != nil {
		return err
	}

	value := ctx.BuildExpr(dataExpr)
	if err := value.Err(); err != nil {
		return err
	}

	return schema.Unify(value).Validate(cue.Concrete(true))
}

// EpsilonFor returns the tolerance that applies to job.
func (c *Config) EpsilonFor(job Job) float64 {
	if job.Epsilon != nil {
		return *job.Epsilon
	}
	return c.Epsilon
}
