package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	"github.com/NeuralTrust/TrustProctor/pkg/domain/session"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type sessionReportHandler struct {
	logger   *logrus.Logger
	service  proctoring.Service
	sessions session.Repository
}

func NewSessionReportHandler(
	logger *logrus.Logger,
	service proctoring.Service,
	sessions session.Repository,
) Handler {
	return &sessionReportHandler{
		logger:   logger,
		service:  service,
		sessions: sessions,
	}
}

// Handle @Summary Proctoring report of a session
// @Description Candidates see their own sessions; instructors and admins see any session.
// @Tags Proctoring
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sessionId path string true "Session ID"
// @Success 200 {object} proctoring.SessionReport "Report"
// @Router /api/v1/proctoring/sessions/{sessionId}/report [get]
func (h *sessionReportHandler) Handle(c *fiber.Ctx) error {
	claims, userID, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	sessionID, err := parseUUIDParam(c, "sessionId")
	if err != nil {
		return badRequest(c, "invalid session ID")
	}

	examSession, err := h.sessions.Get(c.Context(), sessionID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if examSession.UserID != userID && !claims.Role.CanAuthor() {
		return respondError(c, h.logger, domain.ErrSessionOwnership)
	}

	report, err := h.service.Report(c.Context(), sessionID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"report":        report,
		"warning_count": report.WarningCount(),
	})
}
