// Package sheet defines the geometry of a printed photo sheet.
//
// This package is the single source of truth for layout constants: the photo
// pixel size, the white cutting border, the grid shape, the spacing policy and
// the guideline style. Every other stage of the pipeline reads its geometry
// from a [Config].
//
// # Paper
//
// The paper is fixed: 4×6 inches at 300 DPI, which is a 1200×1800 pixel
// canvas. It may be turned to landscape (1800×1200) via
// [GridConfig.Orientation]; no other paper size is supported.
//
// # Grid Placement
//
// [Config.Cells] returns one rectangle per grid cell, row-major. Two spacing
// policies exist:
//
//   - [SpacingCentered]: the R×C block is packed without gaps and centered
//     on the canvas (default)
//   - [SpacingEven]: R+1 and C+1 equal gaps surround the photos
//
// [Config.Validate] rejects any configuration whose cells would leave the
// canvas, so callers may paste into the returned rectangles without clipping.
//
// # Configuration Sources
//
// Configurations are built in layers: [Default] or a named [Preset], then an
// optional TOML file via [LoadFile], then CLI overrides.
//
//	cfg, err := sheet.Preset("standard")
//	cfg, err = sheet.LoadFile("sheet.toml", cfg)
//	cfg.Grid.Rows = 2
//	if err := cfg.Validate(); err != nil { ... }
package sheet
