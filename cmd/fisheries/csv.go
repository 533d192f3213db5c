// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/fisheries/simulate"
)

// writeCSV emits one row per timestep:
// timestep, spawners, harvest_<region>..., value_<region>...
func writeCSV(w io.Writer, res *simulate.Results) error {
	cw := csv.NewWriter(w)

	header := []string{"timestep", "spawners"}
	for _, r := range res.Regions {
		header = append(header, "harvest_"+r)
	}
	for _, r := range res.Regions {
		header = append(header, "value_"+r)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for t := 0; t < res.Timesteps(); t++ {
		row = append(row[:0], strconv.Itoa(t), formatFloat(res.Spawners[t]))
		for _, v := range res.Harvest[t] {
			row = append(row, formatFloat(v))
		}
		for _, v := range res.Value[t] {
			row = append(row, formatFloat(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeCSVFile(path string, res *simulate.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: %w", err)
	}
	if err = writeCSV(f, res); err != nil {
		f.Close()
		return fmt.Errorf("csv %s: %w", path, err)
	}

	return f.Close()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
