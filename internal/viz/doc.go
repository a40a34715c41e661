// Package viz draws figures in the terminal.
//
// Subplots with plain traces are plotted with asciigraph; images, pen
// strokes and spike ticks are drawn on a Braille [Canvas], where every
// character cell holds 2x4 pixels. [Viewer] is a Bubble Tea model that pages
// through the figures of a [figure.Host].
//
// # Key Bindings
//
//	n/p - Next/previous figure
//	T   - Cycle color themes
//	?   - Show help line
//	Q   - Close all figures and quit
package viz
