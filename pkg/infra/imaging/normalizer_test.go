package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/NeuralTrust/TrustProctor/pkg/infra/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 255), G: uint8(y % 255), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decode(t *testing.T, data []byte) (image.Image, string) {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img, format
}

func TestNormalizer_Normalize(t *testing.T) {
	t.Run("wide frame is resized preserving aspect ratio", func(t *testing.T) {
		n := imaging.NewNormalizer(320)

		out, err := n.Normalize(encodePNG(t, 640, 480))

		require.NoError(t, err)
		img, format := decode(t, out)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 320, img.Bounds().Dx())
		assert.Equal(t, 240, img.Bounds().Dy())
	})

	t.Run("narrow frame keeps its size", func(t *testing.T) {
		n := imaging.NewNormalizer(640)

		out, err := n.Normalize(encodePNG(t, 200, 100))

		require.NoError(t, err)
		img, _ := decode(t, out)
		assert.Equal(t, 200, img.Bounds().Dx())
	})

	t.Run("default width", func(t *testing.T) {
		n := imaging.NewNormalizer(0)

		out, err := n.Normalize(encodePNG(t, 1280, 720))

		require.NoError(t, err)
		img, _ := decode(t, out)
		assert.Equal(t, imaging.DefaultMaxWidth, img.Bounds().Dx())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := imaging.NewNormalizer(640).Normalize(nil)
		assert.ErrorIs(t, err, imaging.ErrEmptyImage)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := imaging.NewNormalizer(640).Normalize([]byte("definitely not an image"))
		assert.ErrorIs(t, err, imaging.ErrInvalidImage)
	})

	t.Run("oversized payload", func(t *testing.T) {
		_, err := imaging.NewNormalizer(640).Normalize(make([]byte, imaging.MaxFrameBytes+1))
		assert.ErrorIs(t, err, imaging.ErrImageTooLarge)
	})
}
