package climg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Grayscale reduces img to a single luminance channel using imaging's
// perceptual weighting (0.299 R + 0.587 G + 0.114 B, rounded to nearest).
// The returned raster is anchored at the origin.
func Grayscale(img image.Image) *image.Gray {
	nrgba := imaging.Grayscale(img)

	// All three channels are equal after the grayscale pass, so the red
	// channel is the luminance byte.
	bounds := nrgba.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.SetGray(x, y, color.Gray{Y: nrgba.NRGBAAt(x, y).R})
		}
	}
	return gray
}
