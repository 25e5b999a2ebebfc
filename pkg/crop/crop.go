package crop

import (
	"context"
	"image"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/photosheet/pkg/errors"
)

// Cropper cuts an image to a target width/height ratio.
type Cropper interface {
	Crop(ctx context.Context, img image.Image, aspect float64) (image.Image, error)
}

// CenterRect returns the largest rectangle of the given aspect ratio centered
// in a w×h image, relative to the image origin.
//
// If the image is proportionally wider than aspect, the left and right edges
// are trimmed and the full height is kept; otherwise top and bottom are
// trimmed and the full width is kept.
func CenterRect(w, h int, aspect float64) image.Rectangle {
	if float64(w)/float64(h) > aspect {
		newW := int(float64(h) * aspect)
		left := (w - newW) / 2
		return image.Rect(left, 0, left+newW, h)
	}
	newH := int(float64(w) / aspect)
	top := (h - newH) / 2
	return image.Rect(0, top, w, top+newH)
}

// Center crops symmetrically around the image center.
type Center struct{}

// NewCenter returns the default cropper.
func NewCenter() Center { return Center{} }

// Crop implements [Cropper].
func (Center) Crop(ctx context.Context, img image.Image, aspect float64) (image.Image, error) {
	if err := checkInput(img, aspect); err != nil {
		return nil, err
	}
	b := img.Bounds()
	r := CenterRect(b.Dx(), b.Dy(), aspect)
	return imaging.Crop(img, r.Add(b.Min)), nil
}

func checkInput(img image.Image, aspect float64) error {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return errors.New(errors.ErrCodeInputUnreadable, "image has no pixels (%dx%d)", b.Dx(), b.Dy())
	}
	if !(aspect > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "aspect ratio must be positive, got %v", aspect)
	}
	return nil
}

// windowAround places a w×h window centered on (cx, cy) inside bounds,
// shifting it as needed so it never leaves the image.
func windowAround(bounds image.Rectangle, w, h, cx, cy int) image.Rectangle {
	x := clamp(cx-w/2, bounds.Min.X, bounds.Max.X-w)
	y := clamp(cy-h/2, bounds.Min.Y, bounds.Max.Y-h)
	return image.Rect(x, y, x+w, y+h)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
