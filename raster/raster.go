// Package raster is the pixel backend of the image renderer: each catalog
// entry becomes a true PNG with a simple shape picked by its Shape tag.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/flowbuster/assetgen/catalog"
)

// backdropFactor darkens the canvas behind a silhouette so the shape
// stays visible against its own fill color.
const backdropFactor = 0.55

// Render draws the asset described by a and writes it as PNG to path.
func Render(path string, a catalog.ImageAsset) error {
	fill, err := catalog.ParseHex(a.Hex)
	if err != nil {
		return err
	}

	img := image.NewNRGBA(image.Rect(0, 0, a.Width, a.Height))

	switch a.Shape {
	case catalog.ShapePlayer:
		fillBackdrop(img, fill)
		drawPlayer(img, fill)
	case catalog.ShapeObstacle:
		fillBackdrop(img, fill)
		drawDiamond(img, fill)
	case catalog.ShapeButton:
		fillBackdrop(img, fill)
		drawButton(img, fill)
	case catalog.ShapeNote:
		fillBackdrop(img, fill)
		drawNote(img, fill)
	default:
		drawGradient(img, fill)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func fillBackdrop(img *image.NRGBA, fill catalog.RGB) {
	c := fill.Scale(backdropFactor).NRGBA(255)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// drawGradient fills the whole canvas with a vertical gradient from full
// to 70% alpha of the fill color.
func drawGradient(img *image.NRGBA, fill catalog.RGB) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		alpha := uint8(255)
		if h > 1 {
			alpha = uint8(255 - 77*y/(h-1))
		}
		c := fill.NRGBA(alpha)
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// drawPlayer renders the character silhouette: an ellipse over the
// central half of the canvas plus a bar from mid-height down.
func drawPlayer(img *image.NRGBA, fill catalog.RGB) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	c := fill.NRGBA(255)

	cx, cy := float64(w)/2, float64(h)/2
	rx, ry := float64(w)/4, float64(h)/4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	for y := h / 2; y < 3*h/4; y++ {
		for x := w / 3; x < 2*w/3; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// drawDiamond renders a diamond inscribed in the canvas.
func drawDiamond(img *image.NRGBA, fill catalog.RGB) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	c := fill.NRGBA(255)

	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := abs(float64(x)+0.5-cx) / cx
			dy := abs(float64(y)+0.5-cy) / cy
			if dx+dy <= 1 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// drawButton renders a rounded rectangle inset by 5 with corner radius
// 10, then centers a PLAY label on it.
func drawButton(img *image.NRGBA, fill catalog.RGB) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	c := fill.NRGBA(255)

	const inset, radius = 5.0, 10.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			// Distance from the rounded-rect core.
			qx := clamp(px, inset+radius, float64(w)-inset-radius)
			qy := clamp(py, inset+radius, float64(h)-inset-radius)
			dx, dy := px-qx, py-qy
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, c)
			}
		}
	}

	drawLabel(img, "PLAY")
}

// drawNote renders a note head at (w/3, 2h/3) with a 4px stem.
func drawNote(img *image.NRGBA, fill catalog.RGB) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	c := fill.NRGBA(255)

	cx, cy := float64(w)/3, float64(2*h)/3
	r := float64(w) / 4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	for y := h / 4; y < 3*h/4; y++ {
		for x := 2*w/3 - 2; x < 2*w/3+2; x++ {
			if x >= 0 && x < w {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func drawLabel(img *image.NRGBA, text string) {
	b := img.Bounds()
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()
	x := (b.Dx() - width) / 2
	y := b.Dy()/2 + face.Ascent/2
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
