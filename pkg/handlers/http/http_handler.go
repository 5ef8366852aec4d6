package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport interface {
	GetTransport() HandlerTransport
}

type HandlerTransportDTO struct {
	// System
	HealthHandler     Handler
	GetVersionHandler Handler

	// Users
	RegisterUserHandler Handler
	LoginHandler        Handler

	// Exams
	ListExamsHandler   Handler
	GetExamHandler     Handler
	CreateExamHandler  Handler
	StartExamHandler   Handler
	SubmitExamHandler  Handler
	ExamHistoryHandler Handler
	ExamResultHandler  Handler

	// Proctoring
	RegisterFaceHandler     Handler
	AnalyzeFrameHandler     Handler
	SessionReportHandler    Handler
	ProctoringHealthHandler Handler

	// Certificates
	GetCertificateHandler    Handler
	VerifyCertificateHandler Handler
	ListCertificatesHandler  Handler
}

func (t *HandlerTransportDTO) GetTransport() HandlerTransport {
	return t
}
