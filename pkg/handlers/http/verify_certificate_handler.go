package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/certificate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type verifyCertificateHandler struct {
	logger   *logrus.Logger
	verifier certificate.Verifier
}

func NewVerifyCertificateHandler(logger *logrus.Logger, verifier certificate.Verifier) Handler {
	return &verifyCertificateHandler{
		logger:   logger,
		verifier: verifier,
	}
}

// Handle @Summary Verify a certificate
// @Description Recomputes the certificate hash and compares it with the stored one
// @Tags Certificates
// @Produce json
// @Param id path string true "Certificate ID"
// @Success 200 {object} certificate.Verification "Verification"
// @Router /api/v1/certificates/verify/{id} [get]
func (h *verifyCertificateHandler) Handle(c *fiber.Ctx) error {
	verification, err := h.verifier.Verify(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(verification)
}
