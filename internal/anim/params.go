package anim

import (
	"fmt"

	"github.com/san-kum/probeviz/internal/probe"
	"gonum.org/v1/gonum/mat"
)

// Params holds the free-form parameters of a data function or plot type as
// decoded from YAML.
type Params map[string]any

// Probe loads the probe named by the string parameter name. The probe must
// have one row per sample of the time axis.
func (p Params) Probe(src Source, name string) (*mat.Dense, error) {
	v, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	id, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("parameter %s: want probe id, got %T", name, v)
	}
	m, err := src.Probe(id)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", name, err)
	}
	if rows, _ := m.Dims(); rows != len(src.Trange()) {
		return nil, &probe.DimensionMismatchError{Probe: id, What: "samples vs time axis", Want: len(src.Trange()), Got: rows}
	}
	return m, nil
}

func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

func (p Params) Float(name string, def float64) float64 {
	if f, ok := toFloat(p[name]); ok {
		return f
	}
	return def
}

func (p Params) Int(name string, def int) int {
	if f, ok := toFloat(p[name]); ok {
		return int(f)
	}
	return def
}

// Pair reads a two element list such as an axis limit.
func (p Params) Pair(name string) ([2]float64, bool) {
	list, ok := p[name].([]any)
	if !ok || len(list) != 2 {
		return [2]float64{}, false
	}
	lo, ok1 := toFloat(list[0])
	hi, ok2 := toFloat(list[1])
	return [2]float64{lo, hi}, ok1 && ok2
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
