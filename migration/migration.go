// SPDX-License-Identifier: MIT

package migration

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fisheries/cohort"
	"github.com/katalvlaran/fisheries/matrix"
)

// ErrShape indicates matrices that do not fit the population tensor.
var ErrShape = errors.New("migration: shape mismatch")

// Engine applies per-class migration matrices. It is read-only after New
// and safe for concurrent use.
type Engine struct {
	byClass []*matrix.Dense
	regions int
}

// New returns an Engine for tensors with len(byClass) classes and the given
// number of regions. byClass[c] is nil for classes that stay put; a nil or
// all-nil slice yields a disabled Engine.
func New(byClass []*matrix.Dense, regions int) (*Engine, error) {
	e := &Engine{regions: regions}
	for c, m := range byClass {
		if m == nil {
			continue
		}
		if err := matrix.ValidateSquareNonNil(m); err != nil {
			return nil, fmt.Errorf("migration: class %d: %w", c, err)
		}
		if m.Rows() != regions {
			return nil, fmt.Errorf("class %d: %dx%d matrix for %d regions: %w", c, m.Rows(), m.Cols(), regions, ErrShape)
		}
		e.byClass = byClass
	}

	return e, nil
}

// Disabled returns the identity Engine.
func Disabled() *Engine { return &Engine{} }

// Enabled reports whether any class migrates.
func (e *Engine) Enabled() bool { return e != nil && e.byClass != nil }

// Apply returns a migrated copy of n; n itself is not modified.
func (e *Engine) Apply(n *cohort.Tensor) (*cohort.Tensor, error) {
	out := n.Clone()
	if err := e.ApplyInPlace(out); err != nil {
		return nil, err
	}

	return out, nil
}

// ApplyInPlace migrates n in place. Use it only on tensors the caller owns
// exclusively.
// Complexity: O(C·S·R²) over migratory classes.
func (e *Engine) ApplyInPlace(n *cohort.Tensor) error {
	if !e.Enabled() {
		return nil
	}
	classes, sexes, regions := n.Shape()
	if classes != len(e.byClass) || regions != e.regions {
		return fmt.Errorf("tensor %dx%dx%d vs %d classes, %d regions: %w",
			classes, sexes, regions, len(e.byClass), e.regions, ErrShape)
	}

	for c, m := range e.byClass {
		if m == nil {
			continue
		}
		for s := 0; s < sexes; s++ {
			row := n.Row(c, s)
			moved, err := matrix.VecMat(row, m)
			if err != nil {
				return fmt.Errorf("migration: class %d sex %d: %w", c, s, err)
			}
			copy(row, moved)
		}
	}

	return nil
}
