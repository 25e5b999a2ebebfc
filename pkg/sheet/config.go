package sheet

import (
	"image"

	"github.com/matzehuels/photosheet/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Paper and resolution. These are not configurable.
const (
	DPI           = 300
	PaperWidthIn  = 4
	PaperHeightIn = 6
)

// Default photo geometry: 35×45 mm at 300 DPI.
const (
	DefaultPhotoWidth  = 413
	DefaultPhotoHeight = 531
	DefaultBorder      = 20
	DefaultRows        = 3
	DefaultCols        = 2
)

// Default guideline appearance.
const (
	DefaultGuideColor = "grey"
	DefaultGuideWidth = 2
	DefaultGuideGap   = 10
)

// Spacing policies.
const (
	SpacingCentered = "centered"
	SpacingEven     = "even"
)

// Paper orientations.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Guideline styles.
const (
	GuideDotted = "dotted"
	GuideSolid  = "solid"
	GuideNone   = "none"
)

// Crop modes.
const (
	CropCenter = "center"
	CropSmart  = "smart"
	CropFace   = "face"
)

// Resampling filters used when scaling the cropped photo.
const (
	ResampleLanczos    = "lanczos"
	ResampleCatmullRom = "catmullrom"
	ResampleLinear     = "linear"
	ResampleBox        = "box"
	ResampleNearest    = "nearest"
)

// =============================================================================
// Config
// =============================================================================

// Config holds all geometry and appearance settings for one sheet.
// The zero value is not usable; start from [Default] or [Preset].
type Config struct {
	Photo     PhotoConfig     `toml:"photo"`
	Grid      GridConfig      `toml:"grid"`
	Guideline GuidelineConfig `toml:"guideline"`
	Crop      CropConfig      `toml:"crop"`
}

// PhotoConfig is the size of a single printed photo and its white margin.
type PhotoConfig struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Border   int    `toml:"border"`
	Resample string `toml:"resample"`
}

// GridConfig describes how copies are tiled on the paper.
type GridConfig struct {
	Rows        int    `toml:"rows"`
	Cols        int    `toml:"cols"`
	Spacing     string `toml:"spacing"`
	Orientation string `toml:"orientation"`
}

// GuidelineConfig describes the cutting marks drawn around each copy.
type GuidelineConfig struct {
	Style string `toml:"style"`
	Color string `toml:"color"`
	Width int    `toml:"width"`
	Gap   int    `toml:"gap"`
}

// CropConfig selects how the source photo is cut to the photo aspect ratio.
type CropConfig struct {
	Mode        string `toml:"mode"`
	FaceCascade string `toml:"face_cascade"`
}

// Default returns the standard layout: 3×2 centered block of 35×45 mm photos
// with dotted grey guidelines on portrait 4×6 paper.
func Default() Config {
	return Config{
		Photo: PhotoConfig{
			Width:    DefaultPhotoWidth,
			Height:   DefaultPhotoHeight,
			Border:   DefaultBorder,
			Resample: ResampleLanczos,
		},
		Grid: GridConfig{
			Rows:        DefaultRows,
			Cols:        DefaultCols,
			Spacing:     SpacingCentered,
			Orientation: OrientationPortrait,
		},
		Guideline: GuidelineConfig{
			Style: GuideDotted,
			Color: DefaultGuideColor,
			Width: DefaultGuideWidth,
			Gap:   DefaultGuideGap,
		},
		Crop: CropConfig{
			Mode: CropCenter,
		},
	}
}

// =============================================================================
// Derived Geometry
// =============================================================================

// AspectRatio returns the photo width/height ratio.
func (c Config) AspectRatio() float64 {
	return float64(c.Photo.Width) / float64(c.Photo.Height)
}

// PhotoSize returns the photo size in pixels, without border.
func (c Config) PhotoSize() image.Point {
	return image.Pt(c.Photo.Width, c.Photo.Height)
}

// FramedSize returns the photo size plus the border on every side.
func (c Config) FramedSize() image.Point {
	return image.Pt(c.Photo.Width+2*c.Photo.Border, c.Photo.Height+2*c.Photo.Border)
}

// CanvasSize returns the paper size in pixels for the configured orientation.
func (c Config) CanvasSize() image.Point {
	w, h := PaperWidthIn*DPI, PaperHeightIn*DPI
	if c.Grid.Orientation == OrientationLandscape {
		return image.Pt(h, w)
	}
	return image.Pt(w, h)
}

// PageSizeInches returns the paper size in inches for the configured orientation.
func (c Config) PageSizeInches() (w, h float64) {
	s := c.CanvasSize()
	return float64(s.X) / DPI, float64(s.Y) / DPI
}

// Copies returns the number of photos on the sheet.
func (c Config) Copies() int {
	return c.Grid.Rows * c.Grid.Cols
}

// Cells returns the bordered extent of every grid cell in row-major order.
func (c Config) Cells() []image.Rectangle {
	canvas := c.CanvasSize()
	framed := c.FramedSize()
	rows, cols := c.Grid.Rows, c.Grid.Cols

	var originX, originY, stepX, stepY int
	switch c.Grid.Spacing {
	case SpacingEven:
		gapX := (canvas.X - cols*framed.X) / (cols + 1)
		gapY := (canvas.Y - rows*framed.Y) / (rows + 1)
		originX, originY = gapX, gapY
		stepX, stepY = framed.X+gapX, framed.Y+gapY
	default:
		originX = (canvas.X - cols*framed.X) / 2
		originY = (canvas.Y - rows*framed.Y) / 2
		stepX, stepY = framed.X, framed.Y
	}

	cells := make([]image.Rectangle, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			pt := image.Pt(originX+col*stepX, originY+row*stepY)
			cells = append(cells, image.Rectangle{Min: pt, Max: pt.Add(framed)})
		}
	}
	return cells
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks every setting and that the grid fits on the paper.
func (c Config) Validate() error {
	checks := []error{
		errors.ValidatePositive("photo width", c.Photo.Width),
		errors.ValidatePositive("photo height", c.Photo.Height),
		errors.ValidateNonNegative("border", c.Photo.Border),
		errors.ValidateOneOf("resample filter", c.Photo.Resample,
			ResampleLanczos, ResampleCatmullRom, ResampleLinear, ResampleBox, ResampleNearest),
		errors.ValidatePositive("rows", c.Grid.Rows),
		errors.ValidatePositive("cols", c.Grid.Cols),
		errors.ValidateOneOf("spacing", c.Grid.Spacing, SpacingCentered, SpacingEven),
		errors.ValidateOneOf("orientation", c.Grid.Orientation, OrientationPortrait, OrientationLandscape),
		errors.ValidateOneOf("guideline style", c.Guideline.Style, GuideDotted, GuideSolid, GuideNone),
		errors.ValidateOneOf("crop mode", c.Crop.Mode, CropCenter, CropSmart, CropFace),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	// Bound each dimension by the paper before any of them are multiplied.
	canvas := c.CanvasSize()
	side := max(canvas.X, canvas.Y)
	bounds := []struct {
		name  string
		value int
		limit int
	}{
		{"photo width", c.Photo.Width, canvas.X},
		{"photo height", c.Photo.Height, canvas.Y},
		{"border", c.Photo.Border, side},
		{"cols", c.Grid.Cols, canvas.X},
		{"rows", c.Grid.Rows, canvas.Y},
		{"guideline width", c.Guideline.Width, side},
		{"guideline gap", c.Guideline.Gap, side},
	}
	for _, b := range bounds {
		if b.value > b.limit {
			return errors.New(errors.ErrCodeInvalidConfig,
				"%s %d exceeds the %dpx paper (%s)", b.name, b.value, b.limit, c.Grid.Orientation)
		}
	}

	if c.Guideline.Style != GuideNone {
		if err := errors.ValidatePositive("guideline width", c.Guideline.Width); err != nil {
			return err
		}
		if err := errors.ValidateNonNegative("guideline gap", c.Guideline.Gap); err != nil {
			return err
		}
		if _, err := ParseColor(c.Guideline.Color); err != nil {
			return err
		}
	}

	if c.Crop.Mode == CropFace && c.Crop.FaceCascade == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "crop mode %q requires a face cascade file", CropFace)
	}

	framed := c.FramedSize()
	if need := c.Grid.Cols * framed.X; need > canvas.X {
		return errors.New(errors.ErrCodeInvalidConfig,
			"%d columns of %dpx photos need %dpx, paper is %dpx wide (%s)",
			c.Grid.Cols, framed.X, need, canvas.X, c.Grid.Orientation)
	}
	if need := c.Grid.Rows * framed.Y; need > canvas.Y {
		return errors.New(errors.ErrCodeInvalidConfig,
			"%d rows of %dpx photos need %dpx, paper is %dpx tall (%s)",
			c.Grid.Rows, framed.Y, need, canvas.Y, c.Grid.Orientation)
	}
	return nil
}
