package storage

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// series is a probe as stored: either a flat list of samples or a list of
// sample vectors.
type series [][]float64

func (s *series) UnmarshalJSON(b []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(b, &rows); err == nil {
		*s = rows
		return nil
	}
	var flat []float64
	if err := json.Unmarshal(b, &flat); err != nil {
		return err
	}
	*s = column(flat)
	return nil
}

func (s *series) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode && len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		var rows [][]float64
		if err := node.Decode(&rows); err != nil {
			return err
		}
		*s = rows
		return nil
	}
	var flat []float64
	if err := node.Decode(&flat); err != nil {
		return err
	}
	*s = column(flat)
	return nil
}

func column(flat []float64) [][]float64 {
	rows := make([][]float64, len(flat))
	for i, v := range flat {
		rows[i] = []float64{v}
	}
	return rows
}

func (s series) dense(id string) (*mat.Dense, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("probe %q is empty", id)
	}
	width := len(s[0])
	if width == 0 {
		return nil, fmt.Errorf("probe %q has no channels", id)
	}
	m := mat.NewDense(len(s), width, nil)
	for i, row := range s {
		if len(row) != width {
			return nil, fmt.Errorf("probe %q: sample %d has %d values, expected %d", id, i, len(row), width)
		}
		m.SetRow(i, row)
	}
	return m, nil
}
