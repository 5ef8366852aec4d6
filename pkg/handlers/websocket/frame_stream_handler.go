package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/common"
	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	"github.com/NeuralTrust/TrustProctor/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/ratelimit"
	infraWebsocket "github.com/NeuralTrust/TrustProctor/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	frameTimeout = 15 * time.Second
	writeTimeout = 5 * time.Second
)

type frameStreamHandler struct {
	logger  *logrus.Logger
	service proctoring.Service
	limiter ratelimit.FrameLimiter
}

func NewFrameStreamHandler(
	logger *logrus.Logger,
	service proctoring.Service,
	limiter ratelimit.FrameLimiter,
) Handler {
	return &frameStreamHandler{
		logger:  logger,
		service: service,
		limiter: limiter,
	}
}

// Handle answers every frame of the stream with one analysis message.
// The stream ends when the session stops being active or the client goes away.
func (h *frameStreamHandler) Handle(c *websocket.Conn) {
	if slot, ok := c.Locals(string(common.WsSemaphoreKey)).(*infraWebsocket.Slot); ok {
		defer slot.Release()
	}
	if prometheus.Config.EnableStreams {
		prometheus.ActiveStreams.Inc()
		defer prometheus.ActiveStreams.Dec()
	}

	claims, ok := c.Locals(string(common.UserClaimsKey)).(*jwt.Claims)
	if !ok || claims == nil {
		h.closeWith(c, websocket.ClosePolicyViolation, "authentication required")
		return
	}
	userID, err := claims.UserUUID()
	if err != nil {
		h.closeWith(c, websocket.ClosePolicyViolation, "authentication required")
		return
	}
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		h.closeWith(c, websocket.CloseUnsupportedData, "invalid session ID")
		return
	}

	log := h.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"user_id":    userID,
	})
	log.Info("frame stream opened")
	defer log.Info("frame stream closed")

	var seq uint64
	for {
		mt, payload, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("frame stream read failed")
			}
			return
		}
		seq++

		image, err := decodeFrame(mt, payload)
		if err != nil {
			if !h.write(c, infraWebsocket.ErrorMessage(seq, err.Error())) {
				return
			}
			continue
		}
		if !h.limiter.Allow(userID.String()) {
			if !h.write(c, infraWebsocket.ErrorMessage(seq, "frame rate exceeded")) {
				return
			}
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), frameTimeout)
		analysis, err := h.service.AnalyzeFrame(ctx, sessionID, userID, image)
		cancel()
		if err != nil {
			if errors.Is(err, domain.ErrSessionNotActive) ||
				errors.Is(err, domain.ErrSessionOwnership) ||
				domain.IsNotFoundError(err) {
				h.closeWith(c, websocket.ClosePolicyViolation, err.Error())
				return
			}
			log.WithError(err).Error("frame analysis failed")
			if !h.write(c, infraWebsocket.ErrorMessage(seq, "frame analysis failed")) {
				return
			}
			continue
		}
		if !h.write(c, infraWebsocket.AnalysisMessage(seq, analysis)) {
			return
		}
	}
}

func decodeFrame(messageType int, payload []byte) ([]byte, error) {
	switch messageType {
	case websocket.BinaryMessage:
		if len(payload) == 0 {
			return nil, errors.New("empty frame")
		}
		if len(payload) > common.MaxFrameBytes {
			return nil, errors.New("image exceeds the upload limit")
		}
		return payload, nil
	case websocket.TextMessage:
		var envelope infraWebsocket.FrameEnvelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			return nil, errors.New("text frames must be JSON with a base64 image")
		}
		return request.DecodeBase64Image(envelope.Image)
	default:
		return nil, errors.New("unsupported frame type")
	}
}

func (h *frameStreamHandler) write(c *websocket.Conn, msg infraWebsocket.Message) bool {
	_ = c.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.WriteMessage(websocket.TextMessage, msg.Bytes()); err != nil {
		h.logger.WithError(err).Debug("failed to write frame stream message")
		return false
	}
	return true
}

func (h *frameStreamHandler) closeWith(c *websocket.Conn, code int, reason string) {
	_ = c.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeTimeout),
	)
}
