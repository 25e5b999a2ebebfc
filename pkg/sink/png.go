package sink

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// RenderPNG encodes img as PNG. Speed is preferred over size since the PDF
// sink compresses the page stream again.
func RenderPNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestSpeed)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
