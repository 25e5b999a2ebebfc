package crop

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"

	"github.com/matzehuels/photosheet/pkg/errors"
)

// Smart places the crop window where smartcrop finds the most interesting
// content (edges, skin tones, saturation).
type Smart struct {
	resampler imaging.ResampleFilter
}

// NewSmart returns a content-aware cropper. The filter is used for the
// analyzer's internal downscaling.
func NewSmart(filter imaging.ResampleFilter) *Smart {
	return &Smart{resampler: filter}
}

// Crop implements [Cropper].
func (s *Smart) Crop(ctx context.Context, img image.Image, aspect float64) (image.Image, error) {
	if err := checkInput(img, aspect); err != nil {
		return nil, err
	}
	b := img.Bounds()
	window := CenterRect(b.Dx(), b.Dy(), aspect)

	analyzer := smartcrop.NewAnalyzer(&resizer{resampler: s.resampler})

	type cropResult struct {
		crop image.Rectangle
		err  error
	}
	// smartcrop only scores images anchored at the origin correctly.
	src := img
	if b.Min != (image.Point{}) {
		src = imaging.Clone(img)
	}

	resultChan := make(chan cropResult, 1)
	go func() {
		best, err := analyzer.FindBestCrop(src, window.Dx(), window.Dy())
		resultChan <- cropResult{crop: best, err: err}
	}()

	var best image.Rectangle
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, result.err, "finding best crop")
		}
		best = result.crop
	}

	// The window is relative to the origin of src.
	best = best.Add(b.Min)
	center := best.Min.Add(best.Max).Div(2)
	r := windowAround(b, window.Dx(), window.Dy(), center.X, center.Y)
	return imaging.Crop(img, r), nil
}

// resizer implements the smartcrop Resizer interface on top of imaging.
type resizer struct {
	resampler imaging.ResampleFilter
}

func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
