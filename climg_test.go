package climg

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A solid black image is uniform, so the thresholder falls back to 128 and
// every sample sits below the cutoff: no dots at all.
func TestEncoderSolidBlack(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 8))

	var buf bytes.Buffer
	enc := NewEncoder(&buf, WithGeometry(2, 3))
	require.NoError(t, enc.Encode(img))
	assert.Equal(t, "\u2800\u2800\n", buf.String())
}

func TestEncoderInverted(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 8))

	// The 2x3 terminal fits the image to 4x2 pixels, so only the top two
	// dot rows of each braille cell are in range. Inverting raises those
	// eight dots (1, 2, 4 and 5 per cell) but never the out-of-range ones.
	var buf bytes.Buffer
	enc := NewEncoder(&buf, WithGeometry(2, 3), WithInvertedColors())
	require.NoError(t, enc.Encode(img))
	assert.Equal(t, "⠛⠛\n", buf.String())
}

func TestEncoderThresholdOverride(t *testing.T) {
	img := fillGray(4, 8, func(x, y int) uint8 { return 100 })

	// Same 4x2 fitted raster as above: the pinned threshold turns every
	// in-range sample on, which is the top half of each cell.
	var buf bytes.Buffer
	enc := NewEncoder(&buf, WithGeometry(2, 3), WithThreshold(10))
	require.NoError(t, enc.Encode(img))
	assert.Equal(t, "⠛⠛\n", buf.String())
}

func TestEncoderEmptyImage(t *testing.T) {
	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.Error(t, err)
}

// Without a pinned geometry the encoder queries the tty and falls back to
// the defaults; either way a black image renders as blank cells only.
func TestEncodeDefaults(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 8))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))
	require.NotEmpty(t, buf.String())
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		for _, r := range line {
			assert.Equal(t, '\u2800', r)
		}
	}
}
