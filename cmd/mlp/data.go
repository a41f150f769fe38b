package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/mlp/nn"
)

// xorDataset is the four-row XOR truth table.
func xorDataset() []nn.Example {
	return []nn.Example{
		{Input: []float64{0, 0}, Target: []float64{0}},
		{Input: []float64{0, 1}, Target: []float64{1}},
		{Input: []float64{1, 0}, Target: []float64{1}},
		{Input: []float64{1, 1}, Target: []float64{0}},
	}
}

// loadDataset returns the built-in XOR table for "xor", otherwise reads a CSV file.
func loadDataset(source string, sizes []int) ([]nn.Example, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layers, got %v", nn.ErrInvalidTopology, sizes)
	}
	if source == "xor" {
		if sizes[0] != 2 || sizes[len(sizes)-1] != 1 {
			return nil, fmt.Errorf("xor data needs 2 inputs and 1 output, topology is %v", sizes)
		}
		return xorDataset(), nil
	}

	//nolint:gosec // G304: File path comes from user input, which is expected for dataset loading
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readCSV(file, sizes[0], sizes[len(sizes)-1])
}

// readCSV parses rows of inputs input columns followed by outputs target columns.
//
// Lines starting with '#' are comments. A first row that does not parse as numbers is
// treated as a header and skipped.
func readCSV(r io.Reader, inputs, outputs int) ([]nn.Example, error) {
	if inputs <= 0 || outputs <= 0 {
		return nil, fmt.Errorf("%w: %d inputs, %d outputs", nn.ErrInvalidTopology, inputs, outputs)
	}

	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = inputs + outputs
	reader.TrimLeadingSpace = true

	var data []nn.Example
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		values, err := parseRecord(record)
		if err != nil {
			if row == 1 {
				continue
			}
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		data = append(data, nn.Example{Input: values[:inputs:inputs], Target: values[inputs:]})
	}

	if len(data) == 0 {
		return nil, errors.New("CSV file holds no examples")
	}
	return data, nil
}

func parseRecord(record []string) ([]float64, error) {
	values := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, nil
}

// parseInts parses "784,30,10".
func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseFloats parses "0.5,1,-2".
func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("no values")
	}
	return parseRecord(strings.Split(s, ","))
}

func formatFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return strings.Join(parts, ",")
}
