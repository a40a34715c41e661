package anim

// Frame is the data of every subplot at one time index.
type Frame struct {
	Index int
	Time  float64
	Data  map[string]Sample
}

// Generator walks the time axis every step samples and evaluates each keyed
// data function there.
type Generator struct {
	times []float64
	step  int
	funcs map[string]DataFunc
	pos   int
}

func NewGenerator(times []float64, step int, funcs map[string]DataFunc) *Generator {
	if step < 1 {
		step = 1
	}
	return &Generator{times: times, step: step, funcs: funcs}
}

// Len is the number of frames.
func (g *Generator) Len() int {
	return (len(g.times) + g.step - 1) / g.step
}

// Frame returns the k-th frame.
func (g *Generator) Frame(k int) Frame {
	i := k * g.step
	f := Frame{Index: i, Time: g.times[i], Data: make(map[string]Sample, len(g.funcs))}
	for key, fn := range g.funcs {
		f.Data[key] = fn(i)
	}
	return f
}

func (g *Generator) Next() (Frame, bool) {
	if g.pos >= g.Len() {
		return Frame{}, false
	}
	f := g.Frame(g.pos)
	g.pos++
	return f, true
}

// Pos is the number of frames already yielded by Next.
func (g *Generator) Pos() int { return g.pos }

func (g *Generator) Reset() { g.pos = 0 }
