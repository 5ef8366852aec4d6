package proctoring

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	domainSession "github.com/NeuralTrust/TrustProctor/pkg/domain/session"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/facerecognition"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/imaging"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/metrics"
	"github.com/NeuralTrust/TrustProctor/pkg/infra/metrics/metric_events"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxWarnings       = 3
	DefaultInitRetryInterval = 10 * time.Second
)

var (
	ErrServiceNotReady  = errors.New("proctoring service is not ready")
	ErrNoFaceDetected   = errors.New("no face detected in image")
	ErrMultipleFaces    = errors.New("multiple faces detected in image")
	ErrMissingEmbedding = errors.New("face detected without embedding")
)

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=service_mock.go --case=underscore --with-expecter
type Service interface {
	// Initialize blocks until the face recognition service answers. A service that is not ready
	// retries on its own from Health, RegisterFace and AnalyzeFrame, at most once per retry interval.
	Initialize(ctx context.Context) error
	State() State
	Health(ctx context.Context) Health
	RegisterFace(ctx context.Context, userID uuid.UUID, image []byte) (*domainProctoring.Enrollment, error)
	AnalyzeFrame(ctx context.Context, sessionID, userID uuid.UUID, image []byte) (*domainProctoring.FrameAnalysis, error)
	Report(ctx context.Context, sessionID uuid.UUID) (domainProctoring.SessionReport, error)
	CloseSession(sessionID uuid.UUID)
}

type Health struct {
	State       State  `json:"state"`
	FaceService string `json:"face_service"`
	Error       string `json:"error,omitempty"`
	CheckedAt   int64  `json:"checked_at"`
}

type ServiceDeps struct {
	Detector    Detector
	Ledger      Ledger
	Faces       facerecognition.Client
	Normalizer  imaging.Normalizer
	Enrollments domainProctoring.EnrollmentRepository
	Sessions    domainSession.Repository
	Metrics     metrics.Worker
}

type ServiceConfig struct {
	MaxWarnings       int
	InitRetryInterval time.Duration
}

type service struct {
	logger *logrus.Logger
	deps   ServiceDeps
	cfg    ServiceConfig
	state  *lifecycle

	initMu      sync.Mutex
	lastAttempt time.Time
}

func NewService(logger *logrus.Logger, deps ServiceDeps, cfg ServiceConfig) Service {
	if cfg.MaxWarnings <= 0 {
		cfg.MaxWarnings = DefaultMaxWarnings
	}
	if cfg.InitRetryInterval <= 0 {
		cfg.InitRetryInterval = DefaultInitRetryInterval
	}
	return &service{
		logger: logger,
		deps:   deps,
		cfg:    cfg,
		state:  newLifecycle(),
	}
}

func (s *service) Initialize(ctx context.Context) error {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	return s.initialize(ctx)
}

// initialize must be called with initMu held.
func (s *service) initialize(ctx context.Context) error {
	if s.state.get() == StateReady {
		return nil
	}
	s.lastAttempt = time.Now()
	if err := s.deps.Faces.Ping(ctx); err != nil {
		s.state.set(StateFailed)
		s.logger.WithError(err).Error("proctoring service failed to initialize")
		return fmt.Errorf("%w: %v", ErrServiceNotReady, err)
	}
	s.state.set(StateReady)
	s.logger.Info("proctoring service ready")
	return nil
}

// ensureReady retries initialization when the service is not ready and the last attempt is
// older than the retry interval. Callers that find another attempt in flight do not wait for it.
func (s *service) ensureReady(ctx context.Context) bool {
	if s.state.get() == StateReady {
		return true
	}
	if !s.initMu.TryLock() {
		return false
	}
	defer s.initMu.Unlock()
	if time.Since(s.lastAttempt) < s.cfg.InitRetryInterval {
		return s.state.get() == StateReady
	}
	return s.initialize(ctx) == nil
}

func (s *service) State() State {
	return s.state.get()
}

// Health pings the face service. A successful ping also promotes a service that is not ready.
func (s *service) Health(ctx context.Context) Health {
	h := Health{
		FaceService: "ok",
		CheckedAt:   time.Now().Unix(),
	}
	if err := s.deps.Faces.Ping(ctx); err != nil {
		h.FaceService = "unreachable"
		h.Error = err.Error()
	} else if s.state.get() != StateReady {
		s.markRecovered()
	}
	h.State = s.state.get()
	return h
}

func (s *service) markRecovered() {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.state.get() == StateReady {
		return
	}
	s.lastAttempt = time.Now()
	s.state.set(StateReady)
	s.logger.Info("proctoring service recovered")
}

func (s *service) RegisterFace(
	ctx context.Context,
	userID uuid.UUID,
	image []byte,
) (*domainProctoring.Enrollment, error) {
	if !s.ensureReady(ctx) {
		return nil, ErrServiceNotReady
	}
	normalized, err := s.deps.Normalizer.Normalize(image)
	if err != nil {
		return nil, err
	}
	detection, err := s.deps.Faces.Detect(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("face registration failed: %w", err)
	}
	switch {
	case !detection.FaceDetected || detection.FaceCount == 0:
		return nil, ErrNoFaceDetected
	case detection.FaceCount > 1:
		return nil, ErrMultipleFaces
	case len(detection.Embeddings) == 0:
		return nil, ErrMissingEmbedding
	}

	enrollment := domainProctoring.NewEnrollment(userID, detection)
	if err := s.deps.Enrollments.Save(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("failed to save face enrollment: %w", err)
	}
	s.logger.WithField("user_id", userID).Info("face registered")
	return enrollment, nil
}

// AnalyzeFrame runs one frame through detection and records the resulting violations.
// Collaborator failures are recorded as violations; only session and persistence problems surface as errors.
func (s *service) AnalyzeFrame(
	ctx context.Context,
	sessionID, userID uuid.UUID,
	image []byte,
) (*domainProctoring.FrameAnalysis, error) {
	examSession, err := s.deps.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if examSession.UserID != userID {
		return nil, domain.ErrSessionOwnership
	}
	if !examSession.InProgress() {
		return nil, domain.ErrSessionNotActive
	}

	start := time.Now()
	if !s.ensureReady(ctx) {
		return s.recordFailure(ctx, examSession, start,
			domainProctoring.ViolationSystemError, "Proctoring service not initialized")
	}

	normalized, err := s.deps.Normalizer.Normalize(image)
	if err != nil {
		return s.recordFailure(ctx, examSession, start,
			domainProctoring.ViolationAnalysisError, fmt.Sprintf("Frame analysis failed: %v", err))
	}
	detection, err := s.deps.Faces.Detect(ctx, normalized)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return s.recordFailure(ctx, examSession, start,
			domainProctoring.ViolationAnalysisError, fmt.Sprintf("Frame analysis failed: %v", err))
	}

	result := s.deps.Detector.Analyze(sessionID, detection, s.enrolledEmbedding(ctx, userID))
	report, err := s.deps.Ledger.Record(ctx, sessionID, result.Violations)
	if err != nil {
		return nil, err
	}

	frameEvent := metric_events.NewFrameEvent(sessionID, metric_events.FrameResultOK, time.Since(start))
	frameEvent.FaceCount = detection.FaceCount
	frameEvent.Confidence = result.Confidence
	s.publish(examSession, frameEvent, result.Violations)

	return s.analysis(sessionID, result.Violations, detection, result.Confidence, report), nil
}

func (s *service) recordFailure(
	ctx context.Context,
	examSession *domainSession.ExamSession,
	start time.Time,
	violationType domainProctoring.ViolationType,
	description string,
) (*domainProctoring.FrameAnalysis, error) {
	s.logger.WithFields(logrus.Fields{
		"session_id": examSession.ID,
		"type":       violationType,
	}).Warn(description)

	violations := []domainProctoring.Violation{
		s.deps.Detector.Failure(examSession.ID, violationType, description),
	}
	report, err := s.deps.Ledger.Record(ctx, examSession.ID, violations)
	if err != nil {
		return nil, err
	}
	s.publish(examSession, metric_events.NewFrameEvent(examSession.ID, metric_events.FrameResultError, time.Since(start)), violations)
	return s.analysis(examSession.ID, violations, nil, 0, report), nil
}

func (s *service) analysis(
	sessionID uuid.UUID,
	violations []domainProctoring.Violation,
	detection *domainProctoring.FrameDetectionResult,
	confidence float64,
	report domainProctoring.SessionReport,
) *domainProctoring.FrameAnalysis {
	if violations == nil {
		violations = []domainProctoring.Violation{}
	}
	out := &domainProctoring.FrameAnalysis{
		SessionID:    sessionID.String(),
		Violations:   violations,
		Confidence:   confidence,
		WarningCount: report.WarningCount(),
	}
	if detection != nil {
		out.FaceDetected = detection.FaceDetected
		out.FaceCount = detection.FaceCount
	}
	out.WarningLimitReached = out.WarningCount > s.cfg.MaxWarnings
	return out
}

// enrolledEmbedding resolves the candidate's enrollment once per frame. Lookup errors skip the identity check.
func (s *service) enrolledEmbedding(ctx context.Context, userID uuid.UUID) EmbeddingLookup {
	enrollment, err := s.deps.Enrollments.Get(ctx, userID)
	if err != nil {
		if !domain.IsNotFoundError(err) {
			s.logger.WithError(err).WithField("user_id", userID).Warn("failed to load face enrollment")
		}
		return nil
	}
	embedding := []float64(enrollment.Embedding)
	return func(uuid.UUID) ([]float64, bool) {
		return embedding, len(embedding) > 0
	}
}

func (s *service) publish(
	examSession *domainSession.ExamSession,
	frameEvent *metric_events.Event,
	violations []domainProctoring.Violation,
) {
	if s.deps.Metrics == nil {
		return
	}
	events := make([]*metric_events.Event, 0, len(violations)+1)
	events = append(events, frameEvent)
	for _, v := range violations {
		events = append(events, metric_events.NewViolationEvent(examSession.ID, metric_events.ViolationEvent{
			ID:          v.ID.String(),
			Type:        string(v.Type),
			Description: v.Description,
			Severity:    v.Severity,
			OccurredAt:  v.Timestamp.Unix(),
		}))
	}
	for _, evt := range events {
		evt.UserID = examSession.UserID.String()
		evt.ExamID = examSession.ExamID.String()
	}
	s.deps.Metrics.Process(events...)
}

func (s *service) Report(ctx context.Context, sessionID uuid.UUID) (domainProctoring.SessionReport, error) {
	return s.deps.Ledger.Report(ctx, sessionID)
}

func (s *service) CloseSession(sessionID uuid.UUID) {
	s.deps.Detector.Reset(sessionID)
}
