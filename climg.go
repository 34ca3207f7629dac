/*
Package climg renders raster images as unicode braille symbols. Braille
symbols are useful for representing monochrome images because any 2x4 pixel
area maps onto one of unicode's 256 braille patterns.
See: https://en.wikipedia.org/wiki/Braille_Patterns

The pipeline fits the image to the terminal's addressable sub-pixel grid,
resamples it, reduces it to a single luminance channel, binarizes it with a
global threshold chosen by Otsu's method, and packs each 2x4 block into one
braille symbol.
*/
package climg

import (
	"errors"
	"image"
	"io"
)

// Option configures an Encoder.
type Option func(enc *Encoder)

// WithInvertedColors flips the on/off predicate so that dark pixels are
// rendered as raised dots.
func WithInvertedColors() Option {
	return func(enc *Encoder) {
		enc.invert = true
	}
}

// WithGeometry pins the terminal geometry to columns x rows character cells
// instead of querying the tty.
func WithGeometry(columns, rows int) Option {
	return func(enc *Encoder) {
		enc.columns = columns
		enc.rows = rows
	}
}

// WithThreshold pins the binarization threshold instead of computing one
// with Otsu's method.
func WithThreshold(t uint8) Option {
	return func(enc *Encoder) {
		enc.threshold = int(t)
	}
}

// Encoder writes images to an output stream as lines of braille symbols.
type Encoder struct {
	writer    io.Writer
	invert    bool
	columns   int // Terminal geometry; zero means query the tty
	rows      int
	threshold int // Fixed threshold; negative means use Otsu's method
}

func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	enc := Encoder{
		writer:    w,
		threshold: -1,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// Encode runs the full pipeline on img and writes the braille rendering to
// the encoder's output. The image is scaled to fit the terminal, so output
// never exceeds the addressable grid.
func (enc *Encoder) Encode(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return errors.New("image has no pixels")
	}

	columns, rows := enc.columns, enc.rows
	if columns < 1 || rows < 1 {
		var err error
		columns, rows, err = TerminalSize()
		if err != nil {
			columns, rows = DefaultColumns, DefaultRows
		}
	}

	width, height := Fit(bounds.Dx(), bounds.Dy(), columns, rows)
	gray := Grayscale(Resample(img, width, height))

	threshold := uint8(enc.threshold)
	if enc.threshold < 0 {
		threshold = OtsuThreshold(gray)
	}

	r := Rasterizer{
		Threshold: threshold,
		Invert:    enc.invert,
	}
	return r.Flush(enc.writer, gray)
}

// Encode renders img to w with default options.
func Encode(w io.Writer, img image.Image) error {
	return NewEncoder(w).Encode(img)
}
