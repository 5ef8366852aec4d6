package request

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AnalyzeFrameRequest is the JSON form of a frame upload. Image may be a bare base64 string or a data URL.
type AnalyzeFrameRequest struct {
	SessionID string `json:"sessionId" form:"sessionId"`
	Image     string `json:"image,omitempty"`
}

func (r *AnalyzeFrameRequest) Validate() error {
	if _, err := uuid.Parse(r.SessionID); err != nil {
		return fmt.Errorf("sessionId must be a valid UUID")
	}
	return nil
}

func (r *AnalyzeFrameRequest) SessionUUID() uuid.UUID {
	id, _ := uuid.Parse(r.SessionID)
	return id
}

func (r *AnalyzeFrameRequest) DecodeImage() ([]byte, error) {
	return DecodeBase64Image(r.Image)
}

func DecodeBase64Image(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if i := strings.Index(encoded, ","); strings.HasPrefix(encoded, "data:") && i >= 0 {
		encoded = encoded[i+1:]
	}
	if encoded == "" {
		return nil, fmt.Errorf("image is required")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("image is not valid base64")
	}
	return data, nil
}
