package facerecognition

import (
	"context"
	"errors"

	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
)

var (
	ErrFailedDetectionCall = errors.New("face recognition service call failed")
	ErrInvalidResponse     = errors.New("invalid face recognition response")
)

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=face_recognition_client_mock.go --case=underscore --with-expecter
type Client interface {
	// Detect runs face detection and embedding extraction on a single encoded image.
	Detect(ctx context.Context, image []byte) (*domainProctoring.FrameDetectionResult, error)
	Ping(ctx context.Context) error
}

type Credentials struct {
	BaseURL string
	Token   string
}
