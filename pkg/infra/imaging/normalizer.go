package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

const (
	DefaultMaxWidth = 640
	DefaultQuality  = 85
	// MaxFrameBytes bounds the encoded payload accepted from a client.
	MaxFrameBytes = 5 << 20
)

var (
	ErrEmptyImage    = errors.New("empty image")
	ErrImageTooLarge = errors.New("image too large")
	ErrInvalidImage  = errors.New("invalid image")
)

//go:generate mockery --name=Normalizer --dir=. --output=./mocks --filename=normalizer_mock.go --case=underscore --with-expecter
type Normalizer interface {
	// Normalize decodes an uploaded frame, fixes its orientation and re-encodes it as JPEG
	// no wider than the configured width.
	Normalize(data []byte) ([]byte, error)
}

type normalizer struct {
	maxWidth int
	quality  int
}

func NewNormalizer(maxWidth int) Normalizer {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	return &normalizer{
		maxWidth: maxWidth,
		quality:  DefaultQuality,
	}
}

func (n *normalizer) Normalize(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if len(data) > MaxFrameBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrImageTooLarge, len(data))
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	var out image.Image = img
	if img.Bounds().Dx() > n.maxWidth {
		out = imaging.Resize(img, n.maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(n.quality)); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	return buf.Bytes(), nil
}
