package probe

import (
	"fmt"
	"strings"
)

const (
	suffixLen  = 2
	legendFlag = '*'
	penSep     = "."
)

// Type codes of the layout row suffix.
const (
	TypeVocabVector byte = 'V'
	TypeVector      byte = 'v'
	TypeSpike       byte = 's'
	TypeImage       byte = 'i'
	TypePath        byte = 'p'
)

func isTypeCode(c byte) bool {
	switch c {
	case TypeVocabVector, TypeVector, TypeSpike, TypeImage, TypePath:
		return true
	}
	return false
}

type Options struct {
	TypeCode byte
	Legend   bool
}

// Row is a parsed layout row: "<probe_id><type code><digit or '*'>".
type Row struct {
	Raw     string
	ProbeID string
	Options Options
}

func ParseRow(raw string) (Row, error) {
	if len(raw) <= suffixLen {
		return Row{}, fmt.Errorf("%w: %q", ErrMalformedRow, raw)
	}
	suffix := raw[len(raw)-suffixLen:]
	return Row{
		Raw:     raw,
		ProbeID: raw[:len(raw)-suffixLen],
		Options: Options{
			TypeCode: suffix[0],
			Legend:   suffix[1] == legendFlag,
		},
	}, nil
}

// PathProbes splits a path row's probe id into the path probe and the
// optional pen probe.
func (r Row) PathProbes() (path, pen string) {
	path, pen, _ = strings.Cut(r.ProbeID, penSep)
	return path, pen
}

// LabelKey is the probe id used to look up the display label.
func (r Row) LabelKey() string {
	if r.Options.TypeCode == TypePath {
		path, _ := r.PathProbes()
		return path
	}
	return r.ProbeID
}
