// Package probe turns a layout token list and a recording into figures.
//
// The pipeline is:
//
//   - [ParseLayout]: tokens to figure groups with subplot rows and titles
//   - [Dispatcher]: one row to the renderer registered for its type code
//   - renderers: [VocabRenderer] (V), [VectorRenderer] (v),
//     [SpikeRenderer] (s), [ImageRenderer] (i), [PathRenderer] (p)
//
// Renderers write intents into a [figure.Axes]; nothing here touches a display.
//
// # Thread Safety
//
// A Dispatcher and its [ChangeCache] belong to a single run and are NOT safe
// for concurrent use.
package probe
