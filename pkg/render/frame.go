package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/photosheet/pkg/sheet"
)

var filters = map[string]imaging.ResampleFilter{
	sheet.ResampleLanczos:    imaging.Lanczos,
	sheet.ResampleCatmullRom: imaging.CatmullRom,
	sheet.ResampleLinear:     imaging.Linear,
	sheet.ResampleBox:        imaging.Box,
	sheet.ResampleNearest:    imaging.NearestNeighbor,
}

// Filter maps a resample name to an imaging filter. Unknown names fall back
// to Lanczos.
func Filter(name string) imaging.ResampleFilter {
	if f, ok := filters[name]; ok {
		return f
	}
	return imaging.Lanczos
}

// Frame resizes img to the configured photo size and centers it on a white
// canvas that is Border pixels larger on every side.
func Frame(img image.Image, cfg sheet.Config) *image.NRGBA {
	photo := imaging.Resize(img, cfg.Photo.Width, cfg.Photo.Height, Filter(cfg.Photo.Resample))
	size := cfg.FramedSize()
	framed := imaging.New(size.X, size.Y, color.White)
	return imaging.Paste(framed, photo, image.Pt(cfg.Photo.Border, cfg.Photo.Border))
}

// Compose pastes framed into every cell of a white canvas of the given size.
func Compose(framed image.Image, size image.Point, cells []image.Rectangle) *image.NRGBA {
	canvas := imaging.New(size.X, size.Y, color.White)
	for _, cell := range cells {
		canvas = imaging.Paste(canvas, framed, cell.Min)
	}
	return canvas
}
