// Package sample holds the small numeric helpers used by the demo driver:
// vector maths, a Fibonacci generator, line-oriented number parsing and a
// summary of a value set. None of them touch the workflow engine; they only
// produce inputs for it.
package sample

import (
	"fmt"
	"math"
	"strings"
)

// Vector is an immutable list of float components.
type Vector struct {
	components []float64
}

// NewVector creates a vector from its components.
func NewVector(components ...float64) Vector {
	values := make([]float64, len(components))
	copy(values, components)

	return Vector{components: values}
}

func (v Vector) String() string {
	parts := make([]string, len(v.components))
	for i, component := range v.components {
		parts[i] = fmt.Sprintf("%g", component)
	}

	return "Vector(" + strings.Join(parts, ", ") + ")"
}

// Magnitude returns the euclidean length of the vector.
func (v Vector) Magnitude() float64 {
	sum := 0.0
	for _, component := range v.components {
		sum += component * component
	}

	return math.Sqrt(sum)
}

// Normalize returns a unit-length copy of the vector. A zero vector is
// returned unchanged rather than dividing by zero.
func (v Vector) Normalize() Vector {
	length := v.Magnitude()
	if length == 0 {
		length = 1.0
	}

	normalized := make([]float64, len(v.components))
	for i, component := range v.components {
		normalized[i] = component / length
	}

	return Vector{components: normalized}
}

// Components returns a copy of the vector components.
func (v Vector) Components() []float64 {
	values := make([]float64, len(v.components))
	copy(values, v.components)

	return values
}
