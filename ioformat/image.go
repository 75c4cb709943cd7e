package ioformat

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"

	"github.com/mcppgo/mcpp/grid"
)

// DecodeImage decodes a raster image from r, resizes it to (w,h) using
// cubic (Catmull-Rom) interpolation, and thresholds each resulting pixel
// to a grid cell: luminance 0 is OCCUPIED, anything else FREE.
func DecodeImage(r io.Reader, w, h int) (*grid.Grid, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("ioformat: decoding image: %w", err)
	}

	resized := imaging.Resize(src, w, h, imaging.CatmullRom)
	gray := imaging.Grayscale(resized)

	rows := make([][]grid.Kind, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]grid.Kind, w)
		for x := 0; x < w; x++ {
			lum, _, _, _ := gray.At(x, y).RGBA()
			if lum == 0 {
				rows[y][x] = grid.OCCUPIED
			} else {
				rows[y][x] = grid.FREE
			}
		}
	}

	return grid.New(rows)
}
