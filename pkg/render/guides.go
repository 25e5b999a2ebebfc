package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/photosheet/pkg/sheet"
)

// Segment is a straight line from (X0, Y0) to (X1, Y1).
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// DottedSegments returns the visible dashes of a dotted line from (x0, y0) to
// (x1, y1). It returns nil when the line is too short to hold a single dash.
func DottedSegments(x0, y0, x1, y1 float64, width, gap int) []Segment {
	step := width + gap
	if step <= 0 {
		return nil
	}
	dx, dy := x1-x0, y1-y0
	n := int(math.Hypot(dx, dy) / float64(step))
	if n <= 0 {
		return nil
	}

	segs := make([]Segment, n)
	for i := range segs {
		t0 := float64(i) / float64(n)
		t1 := (float64(i) + 0.5) / float64(n)
		segs[i] = Segment{
			X0: x0 + dx*t0, Y0: y0 + dy*t0,
			X1: x0 + dx*t1, Y1: y0 + dy*t1,
		}
	}
	return segs
}

// DottedRect returns the dashes of a dotted rectangle, walking the sides
// clockwise from the top-left corner.
func DottedRect(r image.Rectangle, width, gap int) []Segment {
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)

	var segs []Segment
	segs = append(segs, DottedSegments(x0, y0, x1, y0, width, gap)...)
	segs = append(segs, DottedSegments(x1, y0, x1, y1, width, gap)...)
	segs = append(segs, DottedSegments(x1, y1, x0, y1, width, gap)...)
	segs = append(segs, DottedSegments(x0, y1, x0, y0, width, gap)...)
	return segs
}

// DrawGuides strokes a cutting guideline around every cell and returns the
// annotated image. With style [sheet.GuideNone] img is returned unchanged.
func DrawGuides(img image.Image, cells []image.Rectangle, g sheet.GuidelineConfig) (image.Image, error) {
	if g.Style == sheet.GuideNone || len(cells) == 0 {
		return img, nil
	}
	col, err := sheet.ParseColor(g.Color)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForImage(img)
	dc.SetColor(col)
	dc.SetLineWidth(float64(g.Width))
	dc.SetLineCapButt()

	for _, c := range cells {
		switch g.Style {
		case sheet.GuideSolid:
			dc.DrawRectangle(float64(c.Min.X), float64(c.Min.Y), float64(c.Dx()), float64(c.Dy()))
		default:
			for _, s := range DottedRect(c, g.Width, g.Gap) {
				dc.DrawLine(s.X0, s.Y0, s.X1, s.Y1)
			}
		}
		dc.Stroke()
	}
	return dc.Image(), nil
}
