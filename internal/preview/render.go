// Package preview renders a decoded blueprint's entity layout as a top-down
// TGA image, purely as a CLI convenience for spot-checking a decode (spec.md
// §4.L). Never consulted by the core decoder.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// cellPixels is the size, in output pixels, of one blueprint grid cell
// before the final scale-up pass.
const cellPixels = 4

// scale enlarges the rendered grid so single-cell entities remain visible.
const scale = 3

var categoryColor = map[string]color.RGBA{
	"generic":      {180, 180, 180, 255},
	"container":    {210, 160, 60, 255},
	"turret":       {200, 60, 60, 255},
	"rail-vehicle": {60, 120, 200, 255},
}

// Entity is the minimal shape this package needs from a decoded entity map;
// callers project entity["position"] and a category label ("generic",
// "container", "turret" or "rail-vehicle"; any other label renders as
// generic) into this struct.
type Entity struct {
	X, Y     float64
	Category string
}

// Render draws one top-down layout image for entities and writes it to w as
// TGA. Entities are plotted at their grid position, offset and clamped to
// the blueprint's bounding box.
func Render(w io.Writer, entities []Entity) error {
	if len(entities) == 0 {
		return fmt.Errorf("preview: no entities to render")
	}

	minX, minY := entities[0].X, entities[0].Y
	maxX, maxY := entities[0].X, entities[0].Y
	for _, e := range entities {
		minX, maxX = minF(minX, e.X), maxF(maxX, e.X)
		minY, maxY = minF(minY, e.Y), maxF(maxY, e.Y)
	}

	width := int((maxX-minX)*cellPixels) + cellPixels
	height := int((maxY-minY)*cellPixels) + cellPixels
	base := image.NewRGBA(image.Rect(0, 0, width, height))

	bg := color.RGBA{24, 24, 28, 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			base.Set(x, y, bg)
		}
	}

	for _, e := range entities {
		col, ok := categoryColor[e.Category]
		if !ok {
			col = categoryColor["generic"]
		}
		px := int((e.X - minX) * cellPixels)
		py := int((e.Y - minY) * cellPixels)
		fillSquare(base, px, py, cellPixels, col)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), base, base.Bounds(), draw.Over, nil)

	return tga.Encode(w, scaled)
}

func fillSquare(img *image.RGBA, x0, y0, size int, c color.RGBA) {
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			if x >= 0 && y >= 0 && x < img.Bounds().Dx() && y < img.Bounds().Dy() {
				img.Set(x, y, c)
			}
		}
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
