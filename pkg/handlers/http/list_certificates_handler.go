package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/certificate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listCertificatesHandler struct {
	logger   *logrus.Logger
	verifier certificate.Verifier
}

func NewListCertificatesHandler(logger *logrus.Logger, verifier certificate.Verifier) Handler {
	return &listCertificatesHandler{
		logger:   logger,
		verifier: verifier,
	}
}

func (h *listCertificatesHandler) Handle(c *fiber.Ctx) error {
	_, userID, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}
	certs, err := h.verifier.ListByUser(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(certs)
}
