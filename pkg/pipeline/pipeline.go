// Package pipeline provides the photo sheet pipeline for photosheet.
//
// This package implements the complete load → crop → frame → compose →
// guides → encode → save pipeline behind a single [Runner]. The CLI is the
// only entry point today, but nothing here depends on it.
//
// # Architecture
//
// The pipeline consists of four phases:
//
//  1. Load: Decode the source photo, applying EXIF orientation
//  2. Build: Crop to the photo aspect ratio, resize and frame, tile the
//     framed copy over the canvas and draw cutting guides
//  3. Encode: Produce a single-page PDF (default) or a PNG preview
//  4. Save: Atomically write the document to the output path
//
// The context is checked before every stage, so a cancelled run never
// writes output. Stage timings are reported to [observability.Pipeline].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "photo.jpg",
//	    Output: "sheet.pdf",
//	    Config: sheet.Default(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Copies)
//
// The build phase can run on an already decoded image without any I/O:
//
//	built, err := runner.Build(ctx, img, cfg)
package pipeline

import (
	"image"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/photosheet/pkg/errors"
	"github.com/matzehuels/photosheet/pkg/sheet"
)

// =============================================================================
// Formats and Stages
// =============================================================================

// Format constants for output formats.
const (
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// DefaultFormat is used when neither the options nor the output path pick one.
const DefaultFormat = FormatPDF

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPDF: true,
	FormatPNG: true,
}

// Stage names reported to observability hooks.
const (
	StageLoad    = "load"
	StageCrop    = "crop"
	StageFrame   = "frame"
	StageCompose = "compose"
	StageGuides  = "guides"
	StageEncode  = "encode"
	StageSave    = "save"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input is the source photo path.
	Input string

	// Output is the destination path for the document.
	Output string

	// Format is FormatPDF or FormatPNG. Empty means: derive from the
	// output extension, falling back to DefaultFormat.
	Format string

	// Title is stored in PDF metadata. Empty means the input file name.
	Title string

	// Config is the sheet geometry. It is validated before any I/O.
	Config sheet.Config

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Canvas is the final layout raster, guides included.
	Canvas *image.NRGBA

	// Framed is the single bordered photo that was tiled.
	Framed *image.NRGBA

	// Cells are the bordered extents of every copy, row-major.
	Cells []image.Rectangle

	// Output is the path that was written.
	Output string

	// Format is the encoding that was written.
	Format string

	// Size is the number of bytes written.
	Size int

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SourceSize image.Point
	CropSize   image.Point
	Copies     int
	LoadTime   time.Duration
	BuildTime  time.Duration
	EncodeTime time.Duration
	SaveTime   time.Duration
	TotalTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: pdf, png)", format)
	}
	return nil
}

// FormatFromPath picks the output format from a file extension.
// Anything other than ".png" (case-insensitive) is a PDF.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return DefaultFormat
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks paths, format and geometry and fills in
// defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidatePath(o.Input); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "input path")
	}
	if err := errors.ValidatePath(o.Output); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "output path")
	}
	if o.Format == "" {
		o.Format = FormatFromPath(o.Output)
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.Title == "" {
		o.Title = filepath.Base(o.Input)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
