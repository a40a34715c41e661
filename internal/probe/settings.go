package probe

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Vocabulary names a set of basis vectors. Keys[i] labels row i of Vectors,
// which is also column i of a projection.
type Vocabulary struct {
	Keys    []string
	Vectors *mat.Dense
}

func NewVocabulary(keys []string, vectors [][]float64) (Vocabulary, error) {
	if len(keys) != len(vectors) {
		return Vocabulary{}, fmt.Errorf("%w: vocabulary has %d keys but %d vectors",
			ErrDimensionMismatch, len(keys), len(vectors))
	}
	if len(vectors) == 0 {
		return Vocabulary{Keys: keys}, nil
	}
	d := len(vectors[0])
	m := mat.NewDense(len(vectors), d, nil)
	for i, v := range vectors {
		if len(v) != d {
			return Vocabulary{}, &DimensionMismatchError{Probe: keys[i], What: "vocabulary vector width", Want: d, Got: len(v)}
		}
		m.SetRow(i, v)
	}
	return Vocabulary{Keys: keys, Vectors: m}, nil
}

// Dim is the vector dimensionality, 0 for an empty vocabulary.
func (v Vocabulary) Dim() int {
	if v.Vectors == nil {
		return 0
	}
	_, c := v.Vectors.Dims()
	return c
}

// PathLimits are the raw coordinate ranges of a path probe.
type PathLimits struct {
	X [2]float64
	Y [2]float64
}

// ImageShape is the (rows, cols) layout of a flattened image probe.
type ImageShape [2]int

// Settings carries the per-probe configuration the renderers read.
type Settings struct {
	Vocab        map[string]Vocabulary
	NeuronCounts map[string]int
	ImageShapes  map[string]ImageShape
	PathLimits   map[string]PathLimits
	Labels       map[string]string
	Dt           float64
	LegendPos    string
}
