package viz

import (
	"image"
	"image/color"
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a Braille pixel grid of Width x Height cells, each cell holding
// 2x4 sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// PixelsX is the canvas width in sub-pixels.
func (c *Canvas) PixelsX() int { return c.Width * 2 }

// PixelsY is the canvas height in sub-pixels.
func (c *Canvas) PixelsY() int { return c.Height * 4 }

// Set sets the sub-pixel at (x, y). Out of range pixels are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Image rasterizes the canvas, each cell becoming charW x charH pixels.
func (c *Canvas) Image(charW, charH int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*charW, c.Height*charH), color.Palette{color.Black, color.White})
	dotW, dotH := charW/2, charH/4
	for y := 0; y < c.PixelsY(); y++ {
		for x := 0; x < c.PixelsX(); x++ {
			if !c.IsSet(x, y) {
				continue
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, 1)
				}
			}
		}
	}
	return img
}

// Viewport maps data coordinates onto a rectangle of canvas sub-pixels.
// Y grows upwards in data space.
type Viewport struct {
	Canvas     *Canvas
	X0, Y0     int
	W, H       int
	XMin, XMax float64
	YMin, YMax float64
}

// Full returns a viewport covering the whole canvas.
func (c *Canvas) Full(xmin, xmax, ymin, ymax float64) Viewport {
	return Viewport{Canvas: c, W: c.PixelsX(), H: c.PixelsY(), XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

func (v Viewport) Project(x, y float64) (int, int) {
	xr, yr := v.XMax-v.XMin, v.YMax-v.YMin
	if xr == 0 {
		xr = 1
	}
	if yr == 0 {
		yr = 1
	}
	px := v.X0 + int(math.Round((x-v.XMin)/xr*float64(v.W-1)))
	py := v.Y0 + v.H - 1 - int(math.Round((y-v.YMin)/yr*float64(v.H-1)))
	return px, py
}

func (v Viewport) inside(px, py int) bool {
	return px >= v.X0 && px < v.X0+v.W && py >= v.Y0 && py < v.Y0+v.H
}

// Polyline draws consecutive points, skipping NaN gaps and clipping to the
// viewport.
func (v Viewport) Polyline(xs, ys []float64) {
	havePrev := false
	var px, py int
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			havePrev = false
			continue
		}
		x, y := v.Project(xs[i], ys[i])
		if havePrev {
			v.line(px, py, x, y)
		} else if v.inside(x, y) {
			v.Canvas.Set(x, y)
		}
		px, py, havePrev = x, y, true
	}
}

func (v Viewport) line(x0, y0, x1, y1 int) {
	if !v.inside(x0, y0) && !v.inside(x1, y1) {
		return
	}
	if v.inside(x0, y0) && v.inside(x1, y1) {
		v.Canvas.DrawLine(x0, y0, x1, y1)
		return
	}
	steps := max(absInt(x1-x0), absInt(y1-y0))
	for i := 0; i <= steps; i++ {
		x := x0 + (x1-x0)*i/max(steps, 1)
		y := y0 + (y1-y0)*i/max(steps, 1)
		if v.inside(x, y) {
			v.Canvas.Set(x, y)
		}
	}
}

// Raster draws a row-major grid over the data rectangle [x0,x1]x[y0,y1],
// lighting pixels whose normalized value is at least threshold.
func (v Viewport) Raster(rows, cols int, at func(r, c int) float64, x0, x1, y0, y1, threshold float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			lo, hi = math.Min(lo, at(r, c)), math.Max(hi, at(r, c))
		}
	}
	if hi <= lo {
		return
	}
	left, top := v.Project(x0, y1)
	right, bottom := v.Project(x1, y0)
	for py := top; py <= bottom; py++ {
		for px := left; px <= right; px++ {
			if !v.inside(px, py) {
				continue
			}
			r := (py - top) * rows / max(bottom-top+1, 1)
			c := (px - left) * cols / max(right-left+1, 1)
			if (at(r, c)-lo)/(hi-lo) >= threshold {
				v.Canvas.Set(px, py)
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
