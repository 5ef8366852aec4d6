package http

import (
	"github.com/NeuralTrust/TrustProctor/pkg/app/certificate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getCertificateHandler struct {
	logger   *logrus.Logger
	verifier certificate.Verifier
}

func NewGetCertificateHandler(logger *logrus.Logger, verifier certificate.Verifier) Handler {
	return &getCertificateHandler{
		logger:   logger,
		verifier: verifier,
	}
}

// Handle @Summary Retrieve a certificate
// @Tags Certificates
// @Produce json
// @Param id path string true "Certificate ID"
// @Success 200 {object} certificate.Certificate "Certificate"
// @Failure 404 {object} map[string]interface{} "Certificate not found"
// @Router /api/v1/certificates/{id} [get]
func (h *getCertificateHandler) Handle(c *fiber.Ctx) error {
	cert, err := h.verifier.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(cert)
}
