// assetpreview displays a generated placeholder PNG in the terminal
// using half-block cells, two image rows per text row. Any of q, Escape
// or Ctrl+C quits.
//
// Usage:
//
//	assetpreview public/assets/images/obstacle.png
package main

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: assetpreview <image.png>")
		os.Exit(1)
	}

	img, err := loadImage(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	draw(screen, img)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, img)
		}
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// draw renders the image centered on the screen. Each cell shows two
// vertically stacked pixels via the upper-half-block glyph.
func draw(screen tcell.Screen, img image.Image) {
	screen.Clear()

	termW, termH := screen.Size()
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	// Fit to terminal, preserving aspect. One cell is one pixel wide and
	// two pixels tall.
	cellsW, cellsH := srcW, (srcH+1)/2
	if cellsW > termW || cellsH > termH {
		scaleW := float64(termW) / float64(srcW)
		scaleH := float64(termH*2) / float64(srcH)
		scale := scaleW
		if scaleH < scale {
			scale = scaleH
		}
		cellsW = int(float64(srcW) * scale)
		cellsH = int(float64(srcH) * scale / 2)
	}
	if cellsW < 1 {
		cellsW = 1
	}
	if cellsH < 1 {
		cellsH = 1
	}

	offX := (termW - cellsW) / 2
	offY := (termH - cellsH) / 2
	if offX < 0 {
		offX = 0
	}
	if offY < 0 {
		offY = 0
	}

	style := tcell.StyleDefault
	for cy := 0; cy < cellsH; cy++ {
		for cx := 0; cx < cellsW; cx++ {
			top := sample(img, cx, cy*2, cellsW, cellsH*2)
			bot := sample(img, cx, cy*2+1, cellsW, cellsH*2)
			st := style.Foreground(top).Background(bot)
			screen.SetContent(offX+cx, offY+cy, '▀', nil, st)
		}
	}

	screen.Show()
}

// sample maps a cell-grid coordinate back to a source pixel, nearest
// neighbor.
func sample(img image.Image, x, y, gridW, gridH int) tcell.Color {
	bounds := img.Bounds()
	sx := bounds.Min.X + x*bounds.Dx()/gridW
	sy := bounds.Min.Y + y*bounds.Dy()/gridH
	if sx >= bounds.Max.X {
		sx = bounds.Max.X - 1
	}
	if sy >= bounds.Max.Y {
		sy = bounds.Max.Y - 1
	}

	r, g, b, _ := img.At(sx, sy).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
