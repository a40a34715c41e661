package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/probeviz/internal/probe"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// configSuffix names the companion configuration of a recording.
const configSuffix = "_cfg.yaml"

// Recording is a loaded probe recording. Probes are decoded into matrices on
// first access; Close releases them.
type Recording struct {
	Path string

	trange          []float64
	presentInterval float64
	raw             map[string]series
	probes          map[string]*mat.Dense
	closed          bool
}

type document struct {
	Trange          []float64         `json:"trange" yaml:"trange"`
	PresentInterval float64           `json:"present_interval" yaml:"present_interval"`
	Probes          map[string]series `json:"probes" yaml:"probes"`
}

// Options fill in what a recording may leave out.
type Options struct {
	// Dt generates the time axis when the recording has none.
	Dt float64
	// PresentInterval is used when the recording does not store one.
	PresentInterval float64
}

// Open reads a .json, .yaml/.yml or .csv recording.
func Open(path string, opts Options) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.NewDecoder(f).Decode(&doc)
	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&doc)
	case ".csv":
		doc, err = readCSV(f)
	default:
		return nil, &UnsupportedFileFormatError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	rec := &Recording{
		Path:            path,
		trange:          doc.Trange,
		presentInterval: doc.PresentInterval,
		raw:             doc.Probes,
		probes:          make(map[string]*mat.Dense),
	}
	if rec.presentInterval == 0 {
		rec.presentInterval = opts.PresentInterval
	}
	if len(rec.trange) == 0 {
		if err := rec.generateTrange(opts.Dt); err != nil {
			return nil, err
		}
	}
	log.Printf("opened %s: %d probes, %d samples", path, len(rec.raw), len(rec.trange))
	return rec, nil
}

// generateTrange builds 0, dt, 2dt, ... for the length of the first probe.
func (r *Recording) generateTrange(dt float64) error {
	if dt <= 0 {
		return ErrNoTimeStep
	}
	n := 0
	for _, id := range r.ProbeIDs() {
		n = len(r.raw[id])
		break
	}
	r.trange = make([]float64, n)
	for i := range r.trange {
		r.trange[i] = float64(i) * dt
	}
	return nil
}

func (r *Recording) Probe(id string) (*mat.Dense, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if m, ok := r.probes[id]; ok {
		return m, nil
	}
	s, ok := r.raw[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", probe.ErrUnknownProbe, id)
	}
	m, err := s.dense(id)
	if err != nil {
		return nil, err
	}
	r.probes[id] = m
	return m, nil
}

func (r *Recording) Trange() []float64 { return r.trange }

func (r *Recording) PresentInterval() float64 { return r.presentInterval }

// ProbeIDs lists the stored probes in sorted order.
func (r *Recording) ProbeIDs() []string {
	ids := make([]string, 0, len(r.raw))
	for id := range r.raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Recording) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.raw = nil
	r.probes = nil
	log.Printf("closed %s", r.Path)
	return nil
}

// ConfigPath returns the companion configuration file of a recording. For
// CSV recordings only the first two '+'-separated name parts are kept, so
// split runs share one configuration.
func ConfigPath(recording string) string {
	dir, name := filepath.Split(recording)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		parts := strings.Split(base, "+")
		if len(parts) > 2 {
			parts = parts[:2]
		}
		base = strings.Join(parts, "+")
	}
	return filepath.Join(dir, base+configSuffix)
}

// readCSV reads one column per probe channel. Headers are "<probe>" or
// "<probe>[<channel>]"; a "present_interval" column is read from its first
// row.
func readCSV(rd io.Reader) (document, error) {
	r := csv.NewReader(rd)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return document{}, err
	}
	doc := document{Probes: make(map[string]series)}
	if len(records) < 2 {
		return doc, nil
	}

	header := records[0]
	ids := make([]string, len(header))
	for j, h := range header {
		id, _, _ := strings.Cut(strings.TrimSpace(h), "[")
		ids[j] = id
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}
		sample := make(map[string][]float64)
		for j := 0; j < len(record) && j < len(ids); j++ {
			val, err := strconv.ParseFloat(strings.TrimSpace(record[j]), 64)
			if err != nil {
				return document{}, fmt.Errorf("row %d column %q: %w", i, header[j], err)
			}
			if ids[j] == "present_interval" {
				if doc.PresentInterval == 0 {
					doc.PresentInterval = val
				}
				continue
			}
			sample[ids[j]] = append(sample[ids[j]], val)
		}
		for id, vals := range sample {
			doc.Probes[id] = append(doc.Probes[id], vals)
		}
	}
	return doc, nil
}
