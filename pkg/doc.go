// Package pkg provides the core libraries for photosheet.
//
// # Overview
//
// Photosheet turns one portrait photo into a printable 4×6 inch sheet of
// identical passport-sized copies with cutting guides. The pkg directory is
// organized into three areas:
//
//  1. Geometry: [sheet] (configuration, presets, grid placement)
//  2. Imaging: [crop], [render], [sink], [io]
//  3. Orchestration: [pipeline], with [observability] hooks and coded [errors]
//
// # Architecture
//
// The data flow through photosheet:
//
//	source photo (JPEG/PNG/GIF/TIFF/BMP/WebP)
//	         ↓
//	    [io] package (decode, EXIF orientation)
//	         ↓
//	    [crop] package (center, smart or face crop to photo aspect)
//	         ↓
//	    [render] package (resize, border, tile, guides)
//	         ↓
//	    [sink] package (PDF or PNG)
//	         ↓
//	    [io] package (atomic write)
//
// # Quick Start
//
//	cfg, _ := sheet.Preset("standard")
//	runner := pipeline.NewRunner(nil)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "me.jpg",
//	    Output: "sheet.pdf",
//	    Config: cfg,
//	})
package pkg
