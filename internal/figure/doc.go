// Package figure holds the drawing intents produced by the probe renderers.
//
// Renderers never draw pixels. They describe what an axes should contain:
//
//   - [Line]: a polyline, where a NaN sample breaks the line
//   - [ImageBlock]: a grayscale raster placed on the data coordinates
//   - [Legend]: labels for the leading lines of an axes
//
// A [Host] tracks the figures that are open. Closing any one of them closes
// the rest, so a figure group is always dismissed as a whole.
package figure
