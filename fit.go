package climg

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

const (
	// Each braille symbol addresses a 2 wide by 4 tall block of pixels.
	cellWidth  = 2
	cellHeight = 4

	// Rows kept free below the rendered image for the shell prompt.
	reservedRows = 2

	// Minimum usable geometry. Rows below reservedRows+1 would leave no
	// addressable pixel grid at all, so the fit clamps instead of failing.
	minColumns = 1
	minRows    = reservedRows + 1
)

// Fit computes the pixel resolution an image of the given source size should
// be resampled to so that its braille rendering fills a columns-by-rows
// terminal without overflowing the usable grid. Both returned dimensions are
// at least 1.
func Fit(srcWidth, srcHeight, columns, rows int) (int, int) {
	if columns < minColumns {
		columns = minColumns
	}
	if rows < minRows {
		rows = minRows
	}

	gridWidth := columns * cellWidth
	gridHeight := (rows - reservedRows) * cellHeight

	targetWidth, targetHeight := gridWidth, gridHeight
	aspect := float64(srcHeight) / float64(srcWidth)

	switch {
	case aspect < 1:
		// Wider than tall: fill the width, derive the height.
		targetHeight = int(math.Round(float64(targetWidth) * aspect))
		if targetHeight > gridHeight {
			scale := float64(gridHeight) / float64(targetHeight)
			targetWidth = int(math.Round(float64(targetWidth) * scale))
			targetHeight = int(math.Round(float64(targetHeight) * scale))
		}
	case aspect > 1:
		// Taller than wide: fill the height, derive the width.
		targetWidth = int(math.Round(float64(targetHeight) * aspect))
		if targetWidth > gridWidth {
			scale := float64(gridWidth) / float64(targetWidth)
			targetWidth = int(math.Round(float64(targetWidth) * scale))
			targetHeight = int(math.Round(float64(targetHeight) * scale))
		}
	default:
		// Square: the largest square the grid can hold.
		if gridWidth < gridHeight {
			targetHeight = gridWidth
		} else {
			targetWidth = gridHeight
		}
	}

	if targetWidth < 1 {
		targetWidth = 1
	}
	if targetHeight < 1 {
		targetHeight = 1
	}
	return targetWidth, targetHeight
}

// Resample scales img to the given resolution using Lanczos resampling.
func Resample(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}
