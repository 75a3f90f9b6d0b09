// Package pipeline chains cleaning and scaling steps over a sample
// table. Steps run in sequence and the first failure aborts the run.
package pipeline

import "github.com/trentleslie/gutmetrics/pkg/table"

// Step is one stage of a preprocessing pipeline.
type Step interface {
	Apply(t *table.Table) (*table.Table, error)
}

// StepFunc adapts a plain function to a Step.
type StepFunc func(*table.Table) (*table.Table, error)

func (f StepFunc) Apply(t *table.Table) (*table.Table, error) { return f(t) }

// Validate adapts an error-only check to a pass-through Step.
func Validate(check func(*table.Table) error) Step {
	return StepFunc(func(t *table.Table) (*table.Table, error) {
		if err := check(t); err != nil {
			return nil, err
		}
		return t, nil
	})
}

// Transform adapts an error-free transform to a Step.
func Transform(fn func(*table.Table) *table.Table) Step {
	return StepFunc(func(t *table.Table) (*table.Table, error) {
		return fn(t), nil
	})
}

// Pipeline runs steps in sequence over a table.
type Pipeline struct {
	steps []Step
}

func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run feeds t through every step, returning the first error encountered.
func (p *Pipeline) Run(t *table.Table) (*table.Table, error) {
	for _, step := range p.steps {
		var err error
		t, err = step.Apply(t)
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}
