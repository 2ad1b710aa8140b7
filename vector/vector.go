// Package vector is the markup backend of the image renderer: it emits
// scalable SVG documents saved under the image-like filenames the game
// expects, plus the fixed app icon.
package vector

import (
	"fmt"
	"os"
	"strings"

	"github.com/flowbuster/assetgen/catalog"
)

// defaultFill is used when a catalog color fails to parse.
const defaultFill = "#6B46C1"

// Document builds the SVG markup for one image asset. Every document
// shares a single linear gradient from full to 0.7 opacity of the fill.
func Document(a catalog.ImageAsset) string {
	fill := a.Hex
	if _, err := catalog.ParseHex(fill); err != nil {
		fill = defaultFill
	}

	w, h := a.Width, a.Height

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">
  <defs>
    <linearGradient id="grad" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%s;stop-opacity:1" />
      <stop offset="100%%" style="stop-color:%s;stop-opacity:0.7" />
    </linearGradient>
  </defs>`, w, h, fill, fill)

	switch a.Shape {
	case catalog.ShapePlayer:
		fmt.Fprintf(&b, `
  <circle cx="%d" cy="%d" r="%d" fill="url(#grad)"/>
  <rect x="%d" y="%d" width="%d" height="%d" fill="url(#grad)"/>`,
			w/2, h/3, w/4,
			w/3, h/2, w/3, h/2)
	case catalog.ShapeObstacle:
		fmt.Fprintf(&b, `
  <polygon points="%d,5 %d,%d %d,%d 5,%d" fill="url(#grad)"/>`,
			w/2, w-5, h/2, w/2, h-5, h/2)
	case catalog.ShapeButton:
		fmt.Fprintf(&b, `
  <rect x="5" y="5" width="%d" height="%d" rx="10" ry="10" fill="url(#grad)"/>
  <text x="%d" y="%d" text-anchor="middle" fill="white" font-family="Arial" font-size="14" font-weight="bold">PLAY</text>`,
			w-10, h-10,
			w/2, h/2+5)
	case catalog.ShapeNote:
		fmt.Fprintf(&b, `
  <circle cx="%d" cy="%d" r="%d" fill="url(#grad)"/>
  <rect x="%d" y="%d" width="4" height="%d" fill="url(#grad)"/>`,
			w/3, h*2/3, w/4,
			w*2/3-2, h/4, h/2)
	default:
		fmt.Fprintf(&b, `
  <rect x="2" y="2" width="%d" height="%d" fill="url(#grad)"/>`,
			w-4, h-4)
	}

	b.WriteString("\n</svg>")
	return b.String()
}

// Render writes the markup document for a to path. The catalog already
// names these files with the raster-style extension the game loads.
func Render(path string, a catalog.ImageAsset) error {
	if err := os.WriteFile(path, []byte(Document(a)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Icon is the fixed 512x512 app icon: a gradient circle with a centered
// note glyph.
const Icon = `<svg xmlns="http://www.w3.org/2000/svg" width="512" height="512">
  <defs>
    <linearGradient id="iconGrad" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#6B46C1;stop-opacity:1" />
      <stop offset="100%" style="stop-color:#EC4899;stop-opacity:1" />
    </linearGradient>
  </defs>
  <circle cx="256" cy="256" r="240" fill="url(#iconGrad)"/>
  <text x="256" y="280" text-anchor="middle" fill="white" font-family="Arial" font-size="120" font-weight="bold">♪</text>
</svg>`

// WriteIcon unconditionally overwrites the icon file at path.
func WriteIcon(path string) error {
	if err := os.WriteFile(path, []byte(Icon), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
