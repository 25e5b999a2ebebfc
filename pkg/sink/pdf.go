package sink

import (
	"bytes"
	"image"

	"github.com/go-pdf/fpdf"
)

// DefaultDPI is the resolution assumed when none is given.
const DefaultDPI = 300.0

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	dpi     float64
	title   string
	creator string
}

// WithDPI sets the resolution used to derive the page size from the pixel size.
func WithDPI(dpi float64) PDFOption {
	return func(r *pdfRenderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// WithTitle sets the document title metadata.
func WithTitle(title string) PDFOption {
	return func(r *pdfRenderer) { r.title = title }
}

// WithCreator sets the document creator metadata.
func WithCreator(creator string) PDFOption {
	return func(r *pdfRenderer) { r.creator = creator }
}

// RenderPDF renders img as a single full-bleed page.
func RenderPDF(img image.Image, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&r)
	}

	raster, err := RenderPNG(img)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	w := float64(b.Dx()) / r.dpi
	h := float64(b.Dy()) / r.dpi

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	if r.title != "" {
		doc.SetTitle(r.title, true)
	}
	if r.creator != "" {
		doc.SetCreator(r.creator, true)
	}
	doc.AddPage()

	imgOpts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("sheet", imgOpts, bytes.NewReader(raster))
	doc.ImageOptions("sheet", 0, 0, w, h, false, imgOpts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
