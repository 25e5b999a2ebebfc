package crop

import (
	"bytes"
	"context"
	"encoding/binary"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"

	"github.com/matzehuels/photosheet/pkg/errors"
)

const passportAspect = 413.0 / 531.0

func TestCenterRectAspect(t *testing.T) {
	sizes := []image.Point{
		{1000, 1500}, {1500, 1000}, {413, 531}, {1, 1}, {3000, 4000},
		{4000, 3000}, {777, 999}, {10, 1000}, {1000, 10}, {640, 480},
	}
	aspects := []float64{passportAspect, 1.0, 0.75, 2.0 / 3.0, 16.0 / 9.0}

	for _, s := range sizes {
		for _, aspect := range aspects {
			r := CenterRect(s.X, s.Y, aspect)
			if !r.In(image.Rect(0, 0, s.X, s.Y)) {
				t.Errorf("CenterRect(%v, %.3f) = %v leaves the image", s, aspect, r)
				continue
			}
			// Width from height (or vice versa) is within one pixel of exact.
			if r.Dx() == s.X {
				if want := float64(r.Dx()) / aspect; math.Abs(float64(r.Dy())-want) > 1 {
					t.Errorf("CenterRect(%v, %.3f) height = %d, want ~%.1f", s, aspect, r.Dy(), want)
				}
			} else {
				if r.Dy() != s.Y {
					t.Errorf("CenterRect(%v, %.3f) = %v trims both axes", s, aspect, r)
				}
				if want := float64(r.Dy()) * aspect; math.Abs(float64(r.Dx())-want) > 1 {
					t.Errorf("CenterRect(%v, %.3f) width = %d, want ~%.1f", s, aspect, r.Dx(), want)
				}
			}
		}
	}
}

func TestCenterRectMarginsBalanced(t *testing.T) {
	for w := 1; w <= 60; w++ {
		for h := 1; h <= 60; h++ {
			r := CenterRect(w, h, passportAspect)
			left, right := r.Min.X, w-r.Max.X
			top, bottom := r.Min.Y, h-r.Max.Y
			if d := right - left; d < 0 || d > 1 {
				t.Fatalf("CenterRect(%d, %d): left %d right %d", w, h, left, right)
			}
			if d := bottom - top; d < 0 || d > 1 {
				t.Fatalf("CenterRect(%d, %d): top %d bottom %d", w, h, top, bottom)
			}
		}
	}
}

func TestCenterRectKnownValues(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want image.Rectangle
	}{
		// 1500 * 413/531 = 1166.6 > 1000, so height is trimmed: 1000/0.7778 = 1285
		{"tall", 1000, 1500, image.Rect(0, 107, 1000, 107+1285)},
		// 1000 * 0.7778 = 777; (1500-777)/2 = 361
		{"wide", 1500, 1000, image.Rect(361, 0, 361+777, 1000)},
		{"exact", 413, 531, image.Rect(0, 0, 413, 531)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterRect(tt.w, tt.h, passportAspect); got != tt.want {
				t.Errorf("CenterRect(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestCenterCrop(t *testing.T) {
	img := imaging.New(1000, 1500, color.White)
	out, err := NewCenter().Crop(context.Background(), img, passportAspect)
	if err != nil {
		t.Fatalf("Crop() = %v", err)
	}
	if got, want := out.Bounds().Size(), image.Pt(1000, 1285); got != want {
		t.Errorf("Crop() size = %v, want %v", got, want)
	}
}

func TestCenterCropKeepsMiddle(t *testing.T) {
	// Red left third, blue middle third, green right third.
	img := image.NewNRGBA(image.Rect(0, 0, 300, 100))
	for x := 0; x < 300; x++ {
		c := color.NRGBA{B: 255, A: 255}
		switch {
		case x < 100:
			c = color.NRGBA{R: 255, A: 255}
		case x >= 200:
			c = color.NRGBA{G: 255, A: 255}
		}
		for y := 0; y < 100; y++ {
			img.SetNRGBA(x, y, c)
		}
	}

	out, err := NewCenter().Crop(context.Background(), img, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Dx() != 100 {
		t.Fatalf("width = %d, want 100", out.Bounds().Dx())
	}
	r, g, b, _ := out.At(50, 50).RGBA()
	if r != 0 || g != 0 || b == 0 {
		t.Errorf("center pixel = %v, want blue", out.At(50, 50))
	}
}

func TestCenterCropSubImageOrigin(t *testing.T) {
	parent := imaging.New(400, 400, color.White)
	sub := parent.SubImage(image.Rect(100, 100, 300, 400))
	out, err := NewCenter().Crop(context.Background(), sub, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out.Bounds().Size(), image.Pt(200, 200); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
}

func TestCropRejectsDegenerateInput(t *testing.T) {
	ctx := context.Background()
	empty := image.NewNRGBA(image.Rect(0, 0, 0, 10))
	if _, err := NewCenter().Crop(ctx, empty, 1); !errors.Is(err, errors.ErrCodeInputUnreadable) {
		t.Errorf("Crop(empty) = %v, want %v", err, errors.ErrCodeInputUnreadable)
	}
	img := imaging.New(10, 10, color.White)
	if _, err := NewCenter().Crop(ctx, img, 0); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Crop(aspect 0) = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestSmartCropSize(t *testing.T) {
	img := imaging.New(600, 400, color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	// A bright patch right of center for the analyzer to find.
	patch := imaging.New(80, 120, color.NRGBA{R: 230, G: 180, B: 150, A: 255})
	img = imaging.Paste(img, patch, image.Pt(400, 140))

	out, err := NewSmart(imaging.Lanczos).Crop(context.Background(), img, passportAspect)
	if err != nil {
		t.Fatalf("Crop() = %v", err)
	}
	want := CenterRect(600, 400, passportAspect).Size()
	if got := out.Bounds().Size(); got != want {
		t.Errorf("Crop() size = %v, want %v", got, want)
	}
}

func TestSmartCropCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	img := imaging.New(600, 400, color.White)
	// Either the analyzer wins the race or cancellation does; neither may panic.
	if _, err := NewSmart(imaging.Lanczos).Crop(ctx, img, 1); err != nil && err != context.Canceled {
		t.Errorf("Crop() = %v", err)
	}
}

func TestWindowAround(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 200)
	tests := []struct {
		name   string
		cx, cy int
		want   image.Rectangle
	}{
		{"centered", 50, 100, image.Rect(25, 75, 75, 125)},
		{"clamped top left", 0, 0, image.Rect(0, 0, 50, 50)},
		{"clamped bottom right", 100, 200, image.Rect(50, 150, 100, 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowAround(bounds, 50, 50, tt.cx, tt.cy); got != tt.want {
				t.Errorf("windowAround(%d, %d) = %v, want %v", tt.cx, tt.cy, got, tt.want)
			}
		})
	}
}

func TestBestDetection(t *testing.T) {
	if _, ok := bestDetection(nil); ok {
		t.Error("bestDetection(nil) should find nothing")
	}

	dets := []pigo.Detection{
		{Row: 10, Col: 10, Scale: 20, Q: 2},
		{Row: 80, Col: 60, Scale: 40, Q: 12},
		{Row: 30, Col: 90, Scale: 30, Q: 8},
	}
	got, ok := bestDetection(dets)
	if !ok || got != image.Pt(60, 80) {
		t.Errorf("bestDetection() = %v, %v; want (60,80), true", got, ok)
	}

	if _, ok := bestDetection(dets[:1]); ok {
		t.Error("low-quality detections should be ignored")
	}
}

func TestNewFaceRejectsEmptyCascade(t *testing.T) {
	if _, err := NewFace(nil); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("NewFace(nil) = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
}

// cascadeHeader builds a packet header with the given depth and tree count.
func cascadeHeader(depth, trees uint32, body int) []byte {
	data := make([]byte, 16+body)
	binary.LittleEndian.PutUint32(data[8:], depth)
	binary.LittleEndian.PutUint32(data[12:], trees)
	return data
}

func TestNewFaceRejectsMalformedCascade(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"three bytes", []byte{1, 2, 3}},
		{"all zero", make([]byte, 64)},
		{"zero trees", cascadeHeader(6, 0, 1024)},
		{"absurd depth", cascadeHeader(40, 1, 1024)},
		{"truncated body", cascadeHeader(6, 10, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFace(tt.data)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("NewFace() = %v, want %v", err, errors.ErrCodeInvalidConfig)
			}
			if f != nil {
				t.Error("NewFace() should not return a cropper on error")
			}
		})
	}
}

func TestFaceCropFallsBackToCenter(t *testing.T) {
	img := stripes(300, 200)
	noFace := &Face{
		find:     func(image.Image) (image.Point, bool) { return image.Point{}, false },
		fallback: Center{},
	}

	got, err := noFace.Crop(context.Background(), img, passportAspect)
	if err != nil {
		t.Fatal(err)
	}
	want := imaging.Crop(img, CenterRect(300, 200, passportAspect))
	if !bytes.Equal(imaging.Clone(got).Pix, want.Pix) {
		t.Errorf("face crop without detections should equal the center crop")
	}
}

func TestFaceCropCentersOnFace(t *testing.T) {
	img := stripes(300, 200)
	aspect := 1.0
	tests := []struct {
		name string
		face image.Point
		want image.Rectangle
	}{
		{"left face", image.Pt(60, 100), image.Rect(0, 0, 200, 200)},
		{"right face", image.Pt(250, 100), image.Rect(100, 0, 300, 200)},
		{"middle face", image.Pt(160, 90), image.Rect(60, 0, 260, 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Face{
				find:     func(image.Image) (image.Point, bool) { return tt.face, true },
				fallback: Center{},
			}
			got, err := f.Crop(context.Background(), img, aspect)
			if err != nil {
				t.Fatal(err)
			}
			want := imaging.Crop(img, tt.want)
			if !bytes.Equal(imaging.Clone(got).Pix, want.Pix) {
				t.Errorf("crop around %v should cover %v", tt.face, tt.want)
			}
		})
	}
}

func TestSmartCropSubImageMatchesStandalone(t *testing.T) {
	standalone := imaging.New(600, 400, color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	patch := imaging.New(80, 120, color.NRGBA{R: 230, G: 180, B: 150, A: 255})
	standalone = imaging.Paste(standalone, patch, image.Pt(420, 140))

	offset := image.Pt(70, 35)
	parent := imaging.New(800, 500, color.White)
	parent = imaging.Paste(parent, standalone, offset)
	sub := parent.SubImage(standalone.Bounds().Add(offset))

	cropper := NewSmart(imaging.Lanczos)
	want, err := cropper.Crop(context.Background(), standalone, passportAspect)
	if err != nil {
		t.Fatal(err)
	}
	got, err := cropper.Crop(context.Background(), sub, passportAspect)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(imaging.Clone(got).Pix, imaging.Clone(want).Pix) {
		t.Error("smart crop of a sub-image should select the same window as the standalone image")
	}
}

// stripes returns an image whose columns are all distinct, so crops at
// different x offsets never compare equal.
func stripes(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(x >> 8), B: uint8(y), A: 255})
		}
	}
	return img
}
