// SPDX-License-Identifier: MIT

package cohort

import "fmt"

// Tensor is a class×sex×region array of float64 values.
type Tensor struct {
	classes, sexes, regions int
	data                    []float64
}

// NewTensor allocates a zero tensor.
// Complexity: O(classes*sexes*regions).
func NewTensor(classes, sexes, regions int) (*Tensor, error) {
	if classes <= 0 || sexes <= 0 || regions <= 0 {
		return nil, ErrInvalidShape
	}

	return &Tensor{
		classes: classes,
		sexes:   sexes,
		regions: regions,
		data:    make([]float64, classes*sexes*regions),
	}, nil
}

// TensorFrom copies nested [class][sex][region] input into a new Tensor.
func TensorFrom(v [][][]float64) (*Tensor, error) {
	if len(v) == 0 || len(v[0]) == 0 || len(v[0][0]) == 0 {
		return nil, ErrInvalidShape
	}
	t, err := NewTensor(len(v), len(v[0]), len(v[0][0]))
	if err != nil {
		return nil, err
	}
	for c := range v {
		if len(v[c]) != t.sexes {
			return nil, fmt.Errorf("class %d has %d sexes, want %d: %w", c, len(v[c]), t.sexes, ErrRagged)
		}
		for s := range v[c] {
			if len(v[c][s]) != t.regions {
				return nil, fmt.Errorf("class %d sex %d has %d regions, want %d: %w",
					c, s, len(v[c][s]), t.regions, ErrRagged)
			}
			copy(t.Row(c, s), v[c][s])
		}
	}

	return t, nil
}

// Shape returns (classes, sexes, regions).
func (t *Tensor) Shape() (classes, sexes, regions int) {
	return t.classes, t.sexes, t.regions
}

// Classes returns the class axis length.
func (t *Tensor) Classes() int { return t.classes }

// Sexes returns the sex axis length.
func (t *Tensor) Sexes() int { return t.sexes }

// Regions returns the region axis length.
func (t *Tensor) Regions() int { return t.regions }

func (t *Tensor) offset(c, s, r int) int {
	if c < 0 || c >= t.classes || s < 0 || s >= t.sexes || r < 0 || r >= t.regions {
		panic(fmt.Sprintf("cohort: index (%d,%d,%d) out of range for shape (%d,%d,%d)",
			c, s, r, t.classes, t.sexes, t.regions))
	}

	return (c*t.sexes+s)*t.regions + r
}

// At returns N[c][s][r].
func (t *Tensor) At(c, s, r int) float64 { return t.data[t.offset(c, s, r)] }

// Set assigns N[c][s][r] = v.
func (t *Tensor) Set(c, s, r int, v float64) { t.data[t.offset(c, s, r)] = v }

// Row returns the region vector of (c, s). The slice aliases the tensor.
func (t *Tensor) Row(c, s int) []float64 {
	base := t.offset(c, s, 0)

	return t.data[base : base+t.regions : base+t.regions]
}

// Class returns the sex×region block of class c as one flat slice.
// The slice aliases the tensor.
func (t *Tensor) Class(c int) []float64 {
	base := t.offset(c, 0, 0)
	n := t.sexes * t.regions

	return t.data[base : base+n : base+n]
}

// Data exposes the flat row-major buffer. Callers must not change its length.
func (t *Tensor) Data() []float64 { return t.data }

// Fill sets every cell to v.
func (t *Tensor) Fill(v float64) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Clone returns a deep copy.
// Complexity: O(n).
func (t *Tensor) Clone() *Tensor {
	cp := make([]float64, len(t.data))
	copy(cp, t.data)

	return &Tensor{classes: t.classes, sexes: t.sexes, regions: t.regions, data: cp}
}

// SameShape reports whether o has identical dimensions.
func (t *Tensor) SameShape(o *Tensor) bool {
	return o != nil && t.classes == o.classes && t.sexes == o.sexes && t.regions == o.regions
}

// Sum adds every cell. NaN cells make the sum NaN.
func (t *Tensor) Sum() float64 {
	var acc float64
	for _, v := range t.data {
		acc += v
	}

	return acc
}

// ClassTotal sums class c over sexes and regions.
func (t *Tensor) ClassTotal(c int) float64 {
	var acc float64
	for _, v := range t.Class(c) {
		acc += v
	}

	return acc
}

// ToNested exports a freshly allocated [class][sex][region] copy.
func (t *Tensor) ToNested() [][][]float64 {
	out := make([][][]float64, t.classes)
	for c := 0; c < t.classes; c++ {
		out[c] = make([][]float64, t.sexes)
		for s := 0; s < t.sexes; s++ {
			row := make([]float64, t.regions)
			copy(row, t.Row(c, s))
			out[c][s] = row
		}
	}

	return out
}
