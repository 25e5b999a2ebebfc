// Package sink encodes a finished sheet into an output format.
//
// # Overview
//
// A "sink" transforms the rendered canvas into bytes ready to be written:
//
//   - PDF: single print-ready page whose physical size is the canvas size
//     divided by the resolution (1200×1800 px at 300 DPI is 4×6 in)
//   - PNG: lossless raster preview of the same canvas
//
// Basic usage:
//
//	pdf, err := sink.RenderPDF(canvas, sink.WithDPI(300), sink.WithTitle("photo sheet"))
//	png, err := sink.RenderPNG(canvas)
//
// The canvas is embedded in the PDF as a PNG stream, so no recompression
// artifacts are introduced between preview and print.
package sink
