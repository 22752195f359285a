package config

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// Job is a single named operation to apply. Each argument is a flat array of
// one (scalar), two (Vector2) or three (Vector3) values.
type Job struct {
	Name string      `yaml:"name" json:"name"`
	Op   string      `yaml:"op" json:"op"`
	Args [][]float64 `yaml:"args" json:"args"`

	// Overrides Config.Epsilon for this job
	Epsilon *float64 `yaml:"epsilon,omitempty" json:"epsilon,omitempty"`
}

type Config struct {
	Epsilon float64 `yaml:"epsilon" json:"epsilon"`
	Format  Format  `yaml:"format" json:"format"`
	Jobs    []Job   `yaml:"jobs" json:"jobs"`
}

// file is the shape of a single configuration file. Pointers distinguish
// keys that were left out from zero values.
type file struct {
	Epsilon *float64 `yaml:"epsilon" json:"epsilon"`
	Format  *Format  `yaml:"format" json:"format"`
	Jobs    []Job    `yaml:"jobs" json:"jobs"`
}
