// Package render turns a cropped photo into a tiled, annotated sheet.
//
// # Overview
//
// Rendering runs in three steps, each reading its geometry from a
// [sheet.Config]:
//
//  1. [Frame]: resize the cropped photo to the photo size and pad it with a
//     white border, producing the framed photo
//  2. [Compose]: paste the framed photo into every grid cell of a white canvas
//  3. [DrawGuides]: stroke a solid or dotted cutting guideline around each
//     cell's bordered extent
//
//	framed := render.Frame(cropped, cfg)
//	canvas := render.Compose(framed, cfg.CanvasSize(), cfg.Cells())
//	out, err := render.DrawGuides(canvas, cfg.Cells(), cfg.Guideline)
//
// # Dotted Guidelines
//
// [DottedSegments] splits a line of length L into n = ⌊L / (width+gap)⌋ equal
// sub-segments and keeps the first half of each, giving a dash-gap pattern.
// When n is zero (short or zero-length lines) nothing is drawn.
//
// [sheet.Config]: github.com/matzehuels/photosheet/pkg/sheet.Config
package render
