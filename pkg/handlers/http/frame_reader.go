package http

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/NeuralTrust/TrustProctor/pkg/common"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
)

var errFrameTooLarge = errors.New("image exceeds the upload limit")

// readFrame accepts a multipart "image" field, a JSON body with a base64 image, or the raw image bytes.
// The returned request carries the sessionId form or JSON field when present.
func readFrame(c *fiber.Ctx) ([]byte, *request.AnalyzeFrameRequest, error) {
	req := &request.AnalyzeFrameRequest{}
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))

	switch {
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		req.SessionID = c.FormValue("sessionId")
		fh, err := c.FormFile("image")
		if err != nil {
			return nil, req, fmt.Errorf("image is required")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, req, fmt.Errorf("failed to read image: %w", err)
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, common.MaxFrameBytes+1))
		if err != nil {
			return nil, req, fmt.Errorf("failed to read image: %w", err)
		}
		if len(data) > common.MaxFrameBytes {
			return nil, req, errFrameTooLarge
		}
		return data, req, nil

	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		if err := c.BodyParser(req); err != nil {
			return nil, req, errors.New(ErrInvalidJsonPayload)
		}
		data, err := req.DecodeImage()
		if err != nil {
			return nil, req, err
		}
		return data, req, nil

	default:
		body := c.Body()
		if len(body) == 0 {
			return nil, req, fmt.Errorf("image is required")
		}
		if len(body) > common.MaxFrameBytes {
			return nil, req, errFrameTooLarge
		}
		data := make([]byte, len(body))
		copy(data, body)
		req.SessionID = c.Query("sessionId")
		return data, req, nil
	}
}
