package websocket

import (
	"encoding/json"
	"io"
	"net"
	"testing"
	"time"

	proctoringMocks "github.com/NeuralTrust/TrustProctor/pkg/app/proctoring/mocks"
	"github.com/NeuralTrust/TrustProctor/pkg/common"
	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/ratelimit"
	ratelimitMocks "github.com/NeuralTrust/TrustProctor/pkg/infra/ratelimit/mocks"
	infraWebsocket "github.com/NeuralTrust/TrustProctor/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func startStreamServer(t *testing.T, h Handler, userID uuid.UUID) string {
	t.Helper()
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use("/ws", func(c *fiber.Ctx) error {
		c.Locals(string(common.UserClaimsKey), &jwt.Claims{UserID: userID.String()})
		return c.Next()
	})
	app.Get("/ws/v1/proctoring/:sessionId", websocket.New(h.Handle))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "ws://" + ln.Addr().String()
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func readMessage(t *testing.T, conn *gorilla.Conn) infraWebsocket.Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg infraWebsocket.Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	return msg
}

func TestFrameStream_AnalyzesEachFrame(t *testing.T) {
	userID := uuid.New()
	sessionID := uuid.New()
	service := proctoringMocks.NewService(t)
	service.EXPECT().AnalyzeFrame(mock.Anything, sessionID, userID, []byte("frame-1")).Return(&domainProctoring.FrameAnalysis{
		SessionID:    sessionID.String(),
		Violations:   []domainProctoring.Violation{},
		FaceDetected: true,
		FaceCount:    1,
	}, nil)
	service.EXPECT().AnalyzeFrame(mock.Anything, sessionID, userID, []byte("frame-2")).Return(&domainProctoring.FrameAnalysis{
		SessionID:    sessionID.String(),
		WarningCount: 1,
	}, nil)

	base := startStreamServer(t, NewFrameStreamHandler(discardLogger(), service, ratelimit.NewFrameLimiter(0, 1, nil)), userID)
	conn, _, err := gorilla.DefaultDialer.Dial(base+"/ws/v1/proctoring/"+sessionID.String(), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(gorilla.BinaryMessage, []byte("frame-1")))
	first := readMessage(t, conn)
	assert.Equal(t, infraWebsocket.MessageTypeAnalysis, first.Type)
	assert.Equal(t, uint64(1), first.Sequence)
	require.NotNil(t, first.Analysis)
	assert.True(t, first.Analysis.FaceDetected)

	// base64 of "frame-2"
	require.NoError(t, conn.WriteMessage(gorilla.TextMessage, []byte(`{"image":"ZnJhbWUtMg=="}`)))
	second := readMessage(t, conn)
	assert.Equal(t, uint64(2), second.Sequence)
	assert.Equal(t, 1, second.Analysis.WarningCount)
}

func TestFrameStream_RateLimited(t *testing.T) {
	userID := uuid.New()
	sessionID := uuid.New()
	service := proctoringMocks.NewService(t)
	limiter := ratelimitMocks.NewFrameLimiter(t)
	limiter.EXPECT().Allow(userID.String()).Return(false)

	base := startStreamServer(t, NewFrameStreamHandler(discardLogger(), service, limiter), userID)
	conn, _, err := gorilla.DefaultDialer.Dial(base+"/ws/v1/proctoring/"+sessionID.String(), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(gorilla.BinaryMessage, []byte("frame")))
	msg := readMessage(t, conn)
	assert.Equal(t, infraWebsocket.MessageTypeError, msg.Type)
	assert.Equal(t, "frame rate exceeded", msg.Error)
}

func TestFrameStream_ClosesWhenSessionEnds(t *testing.T) {
	userID := uuid.New()
	sessionID := uuid.New()
	service := proctoringMocks.NewService(t)
	service.EXPECT().AnalyzeFrame(mock.Anything, sessionID, userID, []byte("frame")).Return(nil, domain.ErrSessionNotActive)

	base := startStreamServer(t, NewFrameStreamHandler(discardLogger(), service, ratelimit.NewFrameLimiter(0, 1, nil)), userID)
	conn, _, err := gorilla.DefaultDialer.Dial(base+"/ws/v1/proctoring/"+sessionID.String(), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(gorilla.BinaryMessage, []byte("frame")))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()

	var closeErr *gorilla.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, gorilla.ClosePolicyViolation, closeErr.Code)
}

func TestDecodeFrame(t *testing.T) {
	_, err := decodeFrame(websocket.BinaryMessage, nil)
	assert.Error(t, err)

	_, err = decodeFrame(websocket.TextMessage, []byte("not json"))
	assert.Error(t, err)

	data, err := decodeFrame(websocket.TextMessage, []byte(`{"image":"data:image/png;base64,ZnJhbWUtMg=="}`))
	require.NoError(t, err)
	assert.Equal(t, []byte("frame-2"), data)
}
