package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/matzehuels/photosheet/pkg/buildinfo"
	"github.com/matzehuels/photosheet/pkg/crop"
	"github.com/matzehuels/photosheet/pkg/errors"
	psio "github.com/matzehuels/photosheet/pkg/io"
	"github.com/matzehuels/photosheet/pkg/observability"
	"github.com/matzehuels/photosheet/pkg/render"
	"github.com/matzehuels/photosheet/pkg/sheet"
	"github.com/matzehuels/photosheet/pkg/sink"
)

// Runner executes the sheet pipeline.
//
// The Runner holds no per-run state, so multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Built is the in-memory result of the build phase.
type Built struct {
	Canvas   *image.NRGBA
	Framed   *image.NRGBA
	Cells    []image.Rectangle
	CropSize image.Point
}

// Execute runs the complete pipeline. On any error no output file exists
// at opts.Output unless one was there before.
func (r *Runner) Execute(ctx context.Context, opts Options) (res *Result, err error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	runner := &Runner{Logger: logger}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRunStart(ctx, opts.Input, opts.Output)
	defer func() {
		size := 0
		if res != nil {
			size = res.Size
		}
		hooks.OnRunComplete(ctx, opts.Output, size, time.Since(start), err)
	}()

	result := &Result{Output: opts.Output, Format: opts.Format}

	// Stage 1: Load
	var src image.Image
	result.Stats.LoadTime, err = runStage(ctx, StageLoad, func() (err error) {
		src, err = psio.ImportImage(opts.Input)
		return err
	})
	if err != nil {
		return nil, err
	}
	result.Stats.SourceSize = src.Bounds().Size()
	logger.Info("loaded photo",
		"path", opts.Input,
		"size", formatSize(result.Stats.SourceSize),
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	built, err := runner.Build(ctx, src, opts.Config)
	if err != nil {
		return nil, err
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Canvas = built.Canvas
	result.Framed = built.Framed
	result.Cells = built.Cells
	result.Stats.CropSize = built.CropSize
	result.Stats.Copies = len(built.Cells)

	// Stage 3: Encode
	var data []byte
	result.Stats.EncodeTime, err = runStage(ctx, StageEncode, func() (err error) {
		data, err = Encode(built.Canvas, opts.Format, opts.Title)
		return err
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("encoded document",
		"format", opts.Format,
		"bytes", len(data),
		"duration", result.Stats.EncodeTime)

	// Stage 4: Save
	result.Stats.SaveTime, err = runStage(ctx, StageSave, func() error {
		return psio.ExportFile(opts.Output, data)
	})
	if err != nil {
		return nil, err
	}
	result.Size = len(data)
	result.Stats.TotalTime = time.Since(start)

	logger.Info("saved layout",
		"path", opts.Output,
		"format", opts.Format,
		"copies", result.Stats.Copies,
		"bytes", result.Size)

	return result, nil
}

// Build crops, frames and tiles img according to cfg and draws the cutting
// guides. It performs no file I/O beyond reading a face cascade when the
// crop mode needs one. cfg must already be valid.
func (r *Runner) Build(ctx context.Context, img image.Image, cfg sheet.Config) (*Built, error) {
	cropper, err := NewCropper(cfg)
	if err != nil {
		return nil, err
	}

	var cropped image.Image
	_, err = runStage(ctx, StageCrop, func() (err error) {
		cropped, err = cropper.Crop(ctx, img, cfg.AspectRatio())
		return err
	})
	if err != nil {
		return nil, err
	}
	cropSize := cropped.Bounds().Size()
	r.Logger.Info("cropped photo",
		"mode", cfg.Crop.Mode,
		"size", formatSize(cropSize))

	var framed *image.NRGBA
	_, err = runStage(ctx, StageFrame, func() error {
		framed = render.Frame(cropped, cfg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("framed photo",
		"size", formatSize(framed.Bounds().Size()),
		"border", cfg.Photo.Border,
		"filter", cfg.Photo.Resample)

	cells := cfg.Cells()
	var canvas *image.NRGBA
	_, err = runStage(ctx, StageCompose, func() error {
		canvas = render.Compose(framed, cfg.CanvasSize(), cells)
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.Logger.Info("composed layout",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Rows, cfg.Grid.Cols),
		"spacing", cfg.Grid.Spacing,
		"canvas", formatSize(cfg.CanvasSize()))

	_, err = runStage(ctx, StageGuides, func() error {
		guided, err := render.DrawGuides(canvas, cells, cfg.Guideline)
		if err != nil {
			return err
		}
		canvas = imaging.Clone(guided)
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("drew guides", "style", cfg.Guideline.Style, "color", cfg.Guideline.Color)

	return &Built{Canvas: canvas, Framed: framed, Cells: cells, CropSize: cropSize}, nil
}

// Encode renders the canvas in the given format.
func Encode(canvas image.Image, format, title string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatPNG:
		data, err = sink.RenderPNG(canvas)
	case FormatPDF:
		data, err = sink.RenderPDF(canvas,
			sink.WithDPI(sheet.DPI),
			sink.WithTitle(title),
			sink.WithCreator(buildinfo.Creator()))
	default:
		return nil, ValidateFormat(format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	return data, nil
}

// NewCropper returns the cropper selected by cfg.Crop.Mode. Face mode reads
// the cascade file named in the config.
func NewCropper(cfg sheet.Config) (crop.Cropper, error) {
	switch cfg.Crop.Mode {
	case sheet.CropSmart:
		return crop.NewSmart(render.Filter(cfg.Photo.Resample)), nil
	case sheet.CropFace:
		data, err := os.ReadFile(cfg.Crop.FaceCascade)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeInputNotFound, err, "face cascade %s", cfg.Crop.FaceCascade)
			}
			return nil, errors.Wrap(errors.ErrCodeInputUnreadable, err, "face cascade %s", cfg.Crop.FaceCascade)
		}
		return crop.NewFace(data)
	case sheet.CropCenter, "":
		return crop.NewCenter(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown crop mode %q", cfg.Crop.Mode)
	}
}

// runStage checks for cancellation, then runs fn between stage hooks.
func runStage(ctx context.Context, name string, fn func() error) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, name)
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	hooks.OnStageComplete(ctx, name, elapsed, err)
	return elapsed, err
}

func formatSize(p image.Point) string {
	return fmt.Sprintf("%dx%d", p.X, p.Y)
}
