// Package export renders a curve to a PNG image.
package export

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/olivier-w/curvedit/internal/curve"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	margin     = 24.0
	pointSize  = 6.0
	lineWidth  = 2.0
	labelSize  = 12.0
	minPlotDim = 2 * margin
)

var (
	gridX = []float64{0.2, 0.4, 0.5, 0.6, 0.8}
	gridY = []float64{0.25, 0.5, 0.75}

	gridColor  = color.RGBA{0xDD, 0xDD, 0xDD, 0xFF}
	curveColor = color.RGBA{0x1F, 0x4E, 0x79, 0xFF}
	pointColor = color.RGBA{0xB8, 0x86, 0x0B, 0xFF}
)

// Options controls the size and resolution of the exported image.
type Options struct {
	Width  int
	Height int
	Steps  int
}

// SavePNG renders the curve through pts, which must be sorted by x, to the
// file at path.
func SavePNG(path string, pts []curve.Vec, opts Options) error {
	dc, err := draw(pts, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

func draw(pts []curve.Vec, opts Options) (*gg.Context, error) {
	if float64(opts.Width) <= minPlotDim || float64(opts.Height) <= minPlotDim {
		return nil, fmt.Errorf("image size %dx%d is too small", opts.Width, opts.Height)
	}
	if opts.Steps < 1 {
		return nil, fmt.Errorf("steps must be positive, got %d", opts.Steps)
	}

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(color.White)
	dc.Clear()

	p := plane{w: float64(opts.Width), h: float64(opts.Height)}

	dc.SetLineWidth(1.0)
	dc.SetColor(gridColor)
	for _, x := range gridX {
		x0, y0 := p.at(x, 0)
		x1, y1 := p.at(x, 1)
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
	}
	for _, y := range gridY {
		x0, y0 := p.at(0, y)
		x1, y1 := p.at(1, y)
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
	}
	x0, y0 := p.at(0, 1)
	dc.DrawRectangle(x0, y0, p.w-2*margin, p.h-2*margin)
	dc.Stroke()

	dc.SetLineWidth(lineWidth)
	dc.SetColor(curveColor)
	for i := 0; i <= opts.Steps; i++ {
		t := float32(i) / float32(opts.Steps)
		x, y := p.at(float64(t), float64(curve.Sample(pts, t)))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	dc.SetColor(pointColor)
	for _, pt := range pts {
		x, y := p.at(float64(pt.X), float64(pt.Y))
		dc.DrawRectangle(x-pointSize/2, y-pointSize/2, pointSize, pointSize)
		dc.Fill()
	}

	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    labelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))
	dc.SetColor(color.Black)
	ox, oy := p.at(0, 0)
	dc.DrawStringAnchored("0", ox-4, oy+4, 1, 1)
	ex, _ := p.at(1, 0)
	dc.DrawStringAnchored("1", ex, oy+4, 0.5, 1)
	_, ty := p.at(0, 1)
	dc.DrawStringAnchored("1", ox-4, ty, 1, 0.5)

	return dc, nil
}

// plane maps normalized curve space onto the image, y pointing up.
type plane struct {
	w, h float64
}

func (p plane) at(x, y float64) (float64, float64) {
	return margin + x*(p.w-2*margin), p.h - margin - y*(p.h-2*margin)
}
