package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"small stays", 640, 480, 640, 480},
		{"landscape", 2400, 1200, 1200, 600},
		{"portrait", 1000, 3000, 400, 1200},
		{"square", 1500, 1500, 1200, 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Fit(tt.width, tt.height, 1200)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestCompress(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		for y := 0; y < 100; y++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 80, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	out, err := Compress(buf.Bytes(), 50, 80)
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 50, decoded.Bounds().Dx())
	assert.Equal(t, 25, decoded.Bounds().Dy())
}

func TestCompress_NotImage(t *testing.T) {
	_, err := Compress([]byte("%PDF-1.4"), 1200, 80)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestDetect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	contentType, err := Detect(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	_, err = Detect([]byte("%PDF-1.7"))
	assert.ErrorIs(t, err, ErrNotImage)

	// RIFF container that is not WebP
	_, err = Detect(append([]byte("RIFF\x24\x00\x00\x00WAVEfmt "), make([]byte, 32)...))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestCheckExtension(t *testing.T) {
	assert.NoError(t, CheckExtension("me.JPG"))
	assert.NoError(t, CheckExtension("me.webp"))
	assert.ErrorIs(t, CheckExtension("me.pdf"), ErrNotImage)
	assert.ErrorIs(t, CheckExtension("me"), ErrNotImage)
}
