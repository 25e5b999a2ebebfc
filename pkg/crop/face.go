package crop

import (
	"context"
	"encoding/binary"
	"image"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"

	"github.com/matzehuels/photosheet/pkg/errors"
)

// Detection tuning. Values follow pigo's reference settings for frontal faces.
const (
	faceMinSize      = 20
	faceShiftFactor  = 0.1
	faceScaleFactor  = 1.1
	faceIoUThreshold = 0.2
	faceMinQuality   = 5.0
)

// Cascade header limits. A pigo cascade starts with 8 reserved bytes, then
// the tree depth and tree count as little-endian uint32.
const (
	cascadeHeaderSize = 16
	cascadeMaxDepth   = 16
	cascadeMaxTrees   = 1 << 16
)

// Face centers the crop window on the most confident detected face.
type Face struct {
	// find returns the face center relative to the image origin.
	find     func(image.Image) (image.Point, bool)
	fallback Cropper
}

// NewFace unpacks a pigo cascade (e.g. the "facefinder" model).
// pigo indexes the packet without bounds checks, so a truncated file is
// reported as an invalid config instead of a panic.
func NewFace(cascade []byte) (f *Face, err error) {
	if err := checkCascade(cascade); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			f, err = nil, errors.New(errors.ErrCodeInvalidConfig, "malformed face cascade: %v", r)
		}
	}()
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "unpack face cascade")
	}
	d := &pigoDetector{classifier: classifier}
	return &Face{find: d.detect, fallback: Center{}}, nil
}

// checkCascade rejects packets whose header describes an empty or
// impossibly large forest, or whose body is too short to hold it.
// Each tree needs at least 4 bytes per leaf.
func checkCascade(data []byte) error {
	if len(data) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "face cascade is empty")
	}
	if len(data) < cascadeHeaderSize {
		return errors.New(errors.ErrCodeInvalidConfig, "face cascade too short (%d bytes)", len(data))
	}
	depth := binary.LittleEndian.Uint32(data[8:12])
	trees := binary.LittleEndian.Uint32(data[12:16])
	if depth == 0 || depth > cascadeMaxDepth || trees == 0 || trees > cascadeMaxTrees {
		return errors.New(errors.ErrCodeInvalidConfig,
			"malformed face cascade: depth %d, %d trees", depth, trees)
	}
	need := uint64(cascadeHeaderSize) + uint64(trees)*(uint64(4)<<depth)
	if uint64(len(data)) < need {
		return errors.New(errors.ErrCodeInvalidConfig,
			"face cascade truncated: %d bytes, need at least %d", len(data), need)
	}
	return nil
}

// Crop implements [Cropper].
func (f *Face) Crop(ctx context.Context, img image.Image, aspect float64) (image.Image, error) {
	if err := checkInput(img, aspect); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	face, ok := f.find(img)
	if !ok {
		return f.fallback.Crop(ctx, img, aspect)
	}

	b := img.Bounds()
	window := CenterRect(b.Dx(), b.Dy(), aspect)
	r := windowAround(b, window.Dx(), window.Dy(), b.Min.X+face.X, b.Min.Y+face.Y)
	return imaging.Crop(img, r), nil
}

type pigoDetector struct {
	classifier *pigo.Pigo
}

// detect returns the center of the most confident face, relative to the
// image origin.
func (d *pigoDetector) detect(img image.Image) (image.Point, bool) {
	src := imaging.Clone(img)
	cols, rows := src.Bounds().Dx(), src.Bounds().Dy()

	params := pigo.CascadeParams{
		MinSize:     faceMinSize,
		MaxSize:     min(cols, rows),
		ShiftFactor: faceShiftFactor,
		ScaleFactor: faceScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(src),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(params, 0.0)
	dets = d.classifier.ClusterDetections(dets, faceIoUThreshold)

	return bestDetection(dets)
}

// bestDetection picks the highest-quality detection above the noise floor.
func bestDetection(dets []pigo.Detection) (image.Point, bool) {
	var best *pigo.Detection
	for i := range dets {
		d := &dets[i]
		if d.Q < faceMinQuality {
			continue
		}
		if best == nil || d.Q > best.Q {
			best = d
		}
	}
	if best == nil {
		return image.Point{}, false
	}
	return image.Pt(best.Col, best.Row), true
}
