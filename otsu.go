package climg

import "image"

// defaultThreshold is returned when no meaningful split exists: an empty
// raster, or one where every pixel shares a single intensity.
const defaultThreshold = 128

// OtsuThreshold computes the global binarization threshold for img by
// maximizing the between-class variance of its luminance histogram.
// Ties resolve to the lowest maximizing threshold. The search is O(1) in
// the image size once the histogram is built.
// See https://en.wikipedia.org/wiki/Otsu%27s_method
func OtsuThreshold(img *image.Gray) uint8 {
	// Intensities are 8-bit, so a fixed array indexed by value suffices.
	var hist [256]int
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[img.GrayAt(x, y).Y]++
		}
	}

	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return defaultThreshold
	}

	var sumTotal float64
	for i, h := range hist {
		sumTotal += float64(i) * float64(h)
	}

	var sumB, wB float64
	maxVar := -1.0
	threshold := -1

	for t, h := range hist {
		wB += float64(h)
		if wB == 0 {
			// No pixels fall below t yet; not a valid split point.
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			// Nothing remains above t; later candidates are degenerate.
			break
		}
		sumB += float64(t) * float64(h)

		mB := sumB / wB
		mF := (sumTotal - sumB) / wF

		varBetween := wB * wF * (mB - mF) * (mB - mF)
		if varBetween > maxVar {
			maxVar = varBetween
			threshold = t
		}
	}

	// A uniform image skips every candidate and never picks a threshold.
	if threshold < 0 {
		return defaultThreshold
	}
	return uint8(threshold)
}
