package figure

import "log"

// Host owns the open figures of a run.
type Host struct {
	all  []*Figure
	open []*Figure
}

func NewHost() *Host {
	return &Host{}
}

func (h *Host) NewFigure(title string) *Figure {
	f := &Figure{Index: len(h.all) + 1, Title: title}
	h.all = append(h.all, f)
	h.open = append(h.open, f)
	return f
}

// Close closes f and then every figure still open, one at a time, the way a
// window close event on one figure of a group takes the group down with it.
func (h *Host) Close(f *Figure) {
	for f != nil {
		if !h.remove(f) {
			return
		}
		f.closed = true
		log.Printf("figure %d closed", f.Index)
		f = nil
		if len(h.open) > 0 {
			f = h.open[0]
		}
	}
}

func (h *Host) remove(f *Figure) bool {
	for i, o := range h.open {
		if o == f {
			h.open = append(h.open[:i], h.open[i+1:]...)
			return true
		}
	}
	return false
}

// Figures returns every figure created, open or not, in creation order.
func (h *Host) Figures() []*Figure { return h.all }

func (h *Host) Open() []*Figure { return h.open }

func (h *Host) Done() bool { return len(h.open) == 0 }
