// Package config builds workflow engines from declarative YAML definitions.
//
// A definition lists the (name, retries, metadata) triples of the step chain
// in execution order:
//
//	steps:
//	  - name: fetch
//	  - name: validate
//	    retries: 1
//	    metadata:
//	      owner: ingest
//	  - name: transform
//
// Step bodies are fixed by the engine; the definition only configures the
// chain, it does not load code.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-workflow/pkg/workflow"
	"github.com/askiada/go-workflow/pkg/workflow/model"
)

var ErrNoSteps = errors.New("definition must contain at least one step")

// StepDefinition is one step entry of a definition file.
type StepDefinition struct {
	Name     string         `yaml:"name"`
	Retries  int            `yaml:"retries"`
	Metadata map[string]any `yaml:"metadata,omitempty"`
}

// Definition is an ordered step chain read from YAML.
type Definition struct {
	Steps []StepDefinition `yaml:"steps"`
}

// Load reads a definition from rdr. Unknown fields are rejected.
func Load(rdr io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(rdr)
	dec.KnownFields(true)

	def := &Definition{}
	err := dec.Decode(def)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode definition")
	}

	if len(def.Steps) == 0 {
		return nil, ErrNoSteps
	}

	return def, nil
}

// LoadFile reads a definition from the file at path.
func LoadFile(path string) (*Definition, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open definition file %s", path)
	}
	defer file.Close()

	return Load(file)
}

// Build creates an engine over the defined step chain.
func (d *Definition) Build(opts ...model.EngineOption) (*workflow.Engine, error) {
	steps := make([]*workflow.Step, len(d.Steps))
	for i, stepDef := range d.Steps {
		stepOpts := []workflow.StepOption{}
		if stepDef.Metadata != nil {
			stepOpts = append(stepOpts, workflow.StepMetadata(stepDef.Metadata))
		}

		step, err := workflow.NewStep(stepDef.Name, stepDef.Retries, stepOpts...)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to build step %d", i)
		}
		steps[i] = step
	}

	eng, err := workflow.New(steps, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build engine")
	}

	return eng, nil
}
