package climg

import (
	"image"
	"io"
)

// Braille represents an 8 dot braille pattern in x,y coordinate space. Eg:
//   +----------+
//   |(0,0)(1,0)|
//   |(0,1)(1,1)|
//   |(0,2)(1,2)|
//   |(0,3)(1,3)|
//   +----------+
type Braille [2][4]int

// Rune maps each point in the pattern to a braille dot identifier and
// calculates the corresponding unicode symbol.
//   +------+
//   |(1)(4)|
//   |(2)(5)|
//   |(3)(6)|
//   |(7)(8)|
//   +------+
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering
func (b Braille) Rune() rune {
	lowEndian := [8]int{b[0][0], b[0][1], b[0][2], b[1][0], b[1][1], b[1][2], b[0][3], b[1][3]}
	var v int
	for i, x := range lowEndian {
		v += x << uint(i)
	}
	return rune(v) + '\u2800'
}

// String returns a unicode braille character.
func (b Braille) String() string {
	return string(b.Rune())
}

// Rasterizer converts a grayscale image into rows of braille symbols by
// applying a global threshold to every 2x4 pixel block.
type Rasterizer struct {
	// Threshold is the luminance cutoff: pixels at or above it are drawn
	// as raised dots. Invert flips the predicate so pixels below the
	// cutoff are drawn instead.
	Threshold uint8
	Invert    bool
}

// Flush writes img to w as lines of braille symbols, one line per 4 rows of
// pixels and one symbol per 2 columns.
func (r Rasterizer) Flush(w io.Writer, img *image.Gray) error {
	// An image's bounds do not necessarily start at (0, 0), so the two loops
	// start at bounds.Min.Y and bounds.Min.X. Looping over Y first and X second
	// is more likely to result in better memory access patterns.
	bounds := img.Bounds()
	for py := bounds.Min.Y; py < bounds.Max.Y; py += 4 {
		for px := bounds.Min.X; px < bounds.Max.X; px += 2 {
			var b Braille
			// Draw left-right, top-bottom.
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					// Braille symbols are 2x4, which may overhang the right
					// or bottom edge of the image. Overhanging dots stay
					// unfilled rather than sampling past the raster.
					if px+x >= bounds.Max.X || py+y >= bounds.Max.Y {
						continue
					}
					b[x][y] = r.dotAt(img, px+x, py+y)
				}
			}
			if _, err := w.Write([]byte(b.String())); err != nil {
				return err
			}
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

func (r Rasterizer) dotAt(img *image.Gray, x, y int) int {
	v := img.GrayAt(x, y).Y
	on := v >= r.Threshold
	if r.Invert {
		on = v < r.Threshold
	}
	if on {
		return 1
	}
	return 0
}
