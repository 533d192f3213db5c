// SPDX-License-Identifier: MIT

package cohort

import "fmt"

// Table is a class×sex array of per-cohort coefficients.
type Table struct {
	classes, sexes int
	data           []float64
}

// NewTable allocates a zero table.
func NewTable(classes, sexes int) (*Table, error) {
	if classes <= 0 || sexes <= 0 {
		return nil, ErrInvalidShape
	}

	return &Table{classes: classes, sexes: sexes, data: make([]float64, classes*sexes)}, nil
}

// Ones returns a table filled with 1.0, the neutral weight for products.
func Ones(classes, sexes int) (*Table, error) {
	t, err := NewTable(classes, sexes)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = 1
	}

	return t, nil
}

// TableFromSexClass builds a [class][sex] table from [sex][class] input,
// broadcasting a single sex row to all sexes.
//
// A one-row input models pooled-sex parameters; it is repeated so every
// formula can index (class, sex) uniformly.
func TableFromSexClass(v [][]float64, classes, sexes int) (*Table, error) {
	t, err := NewTable(classes, sexes)
	if err != nil {
		return nil, err
	}
	if len(v) != 1 && len(v) != sexes {
		return nil, fmt.Errorf("got %d sex rows, want 1 or %d: %w", len(v), sexes, ErrShapeMismatch)
	}
	for s := 0; s < sexes; s++ {
		src := v[0]
		if len(v) == sexes {
			src = v[s]
		}
		if len(src) != classes {
			return nil, fmt.Errorf("sex row %d has %d classes, want %d: %w", s, len(src), classes, ErrShapeMismatch)
		}
		for c := 0; c < classes; c++ {
			t.data[c*sexes+s] = src[c]
		}
	}

	return t, nil
}

// Shape returns (classes, sexes).
func (t *Table) Shape() (classes, sexes int) { return t.classes, t.sexes }

// At returns the coefficient of (c, s).
func (t *Table) At(c, s int) float64 {
	if c < 0 || c >= t.classes || s < 0 || s >= t.sexes {
		panic(fmt.Sprintf("cohort: table index (%d,%d) out of range for shape (%d,%d)", c, s, t.classes, t.sexes))
	}

	return t.data[c*t.sexes+s]
}

// Set assigns the coefficient of (c, s).
func (t *Table) Set(c, s int, v float64) {
	if c < 0 || c >= t.classes || s < 0 || s >= t.sexes {
		panic(fmt.Sprintf("cohort: table index (%d,%d) out of range for shape (%d,%d)", c, s, t.classes, t.sexes))
	}
	t.data[c*t.sexes+s] = v
}

// Mul returns the element-wise product t⊙o as a new table.
func (t *Table) Mul(o *Table) (*Table, error) {
	if o == nil || o.classes != t.classes || o.sexes != t.sexes {
		return nil, ErrShapeMismatch
	}
	out := &Table{classes: t.classes, sexes: t.sexes, data: make([]float64, len(t.data))}
	for i := range t.data {
		out.data[i] = t.data[i] * o.data[i]
	}

	return out, nil
}

// ToSexClass exports a [sex][class] copy, the orientation used by the
// parameter record.
func (t *Table) ToSexClass() [][]float64 {
	out := make([][]float64, t.sexes)
	for s := 0; s < t.sexes; s++ {
		out[s] = make([]float64, t.classes)
		for c := 0; c < t.classes; c++ {
			out[s][c] = t.data[c*t.sexes+s]
		}
	}

	return out
}
