// SPDX-License-Identifier: MIT

package params

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk document: one configuration and one record.
type Scenario struct {
	Name   string `yaml:"name,omitempty"`
	Config Config `yaml:"config"`
	Record Record `yaml:"record"`
}

// Decode reads a YAML scenario. Unknown keys are rejected so typos in table
// names surface as errors instead of silently missing tables.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("params: decode scenario: %w", err)
	}

	return &sc, nil
}

// Encode writes a YAML scenario. Floats are written in shortest
// round-trippable form, so Decode(Encode(s)) reproduces every table exactly.
func Encode(w io.Writer, sc *Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return fmt.Errorf("params: encode scenario: %w", err)
	}

	return enc.Close()
}

// Marshal is Encode into a byte slice.
func Marshal(sc *Scenario) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, sc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// LoadFile decodes the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("params: open scenario: %w", err)
	}
	defer f.Close()

	sc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}

	return sc, nil
}
