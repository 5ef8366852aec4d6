package proctoring_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring/mocks"
	"github.com/NeuralTrust/TrustProctor/pkg/domain"
	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	proctoringMocks "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring/mocks"
	domainSession "github.com/NeuralTrust/TrustProctor/pkg/domain/session"
	sessionMocks "github.com/NeuralTrust/TrustProctor/pkg/domain/session/mocks"
	faceMocks "github.com/NeuralTrust/TrustProctor/pkg/infra/facerecognition/mocks"
	imagingMocks "github.com/NeuralTrust/TrustProctor/pkg/infra/imaging/mocks"
	metricsMocks "github.com/NeuralTrust/TrustProctor/pkg/infra/metrics/mocks"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	faces       *faceMocks.Client
	normalizer  *imagingMocks.Normalizer
	enrollments *proctoringMocks.EnrollmentRepository
	sessions    *sessionMocks.Repository
	ledger      *mocks.Ledger
	detector    proctoring.Detector
	service     proctoring.Service
	session     *domainSession.ExamSession
}

func newServiceFixture(t *testing.T) *serviceFixture {
	return newServiceFixtureWithConfig(t, proctoring.ServiceConfig{MaxWarnings: 3})
}

func newServiceFixtureWithConfig(t *testing.T, cfg proctoring.ServiceConfig) *serviceFixture {
	f := &serviceFixture{
		faces:       faceMocks.NewClient(t),
		normalizer:  imagingMocks.NewNormalizer(t),
		enrollments: proctoringMocks.NewEnrollmentRepository(t),
		sessions:    sessionMocks.NewRepository(t),
		ledger:      mocks.NewLedger(t),
		detector:    newDetector(),
	}
	f.session = domainSession.NewExamSession(uuid.New(), uuid.New(), domainSession.Biodata{}, domainSession.Device{})
	f.session.ID = uuid.New()
	f.service = proctoring.NewService(discardLogger(), proctoring.ServiceDeps{
		Detector:    f.detector,
		Ledger:      f.ledger,
		Faces:       f.faces,
		Normalizer:  f.normalizer,
		Enrollments: f.enrollments,
		Sessions:    f.sessions,
	}, cfg)
	return f
}

func (f *serviceFixture) ready(t *testing.T) {
	f.faces.EXPECT().Ping(mock.Anything).Return(nil).Once()
	require.NoError(t, f.service.Initialize(context.Background()))
}

func reportWith(sessionID uuid.UUID, violations ...domainProctoring.Violation) domainProctoring.SessionReport {
	return domainProctoring.NewSessionReport(sessionID, violations)
}

func TestService_Initialize(t *testing.T) {
	t.Run("ready after a successful ping", func(t *testing.T) {
		f := newServiceFixture(t)
		assert.Equal(t, proctoring.StateUninitialized, f.service.State())

		f.ready(t)

		assert.Equal(t, proctoring.StateReady, f.service.State())
		// Already ready: no second ping.
		assert.NoError(t, f.service.Initialize(context.Background()))
	})

	t.Run("failed then retried", func(t *testing.T) {
		f := newServiceFixture(t)
		f.faces.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()

		err := f.service.Initialize(context.Background())

		assert.ErrorIs(t, err, proctoring.ErrServiceNotReady)
		assert.Equal(t, proctoring.StateFailed, f.service.State())

		f.ready(t)
		assert.Equal(t, proctoring.StateReady, f.service.State())
	})

	t.Run("recovers on the next request once the face service answers", func(t *testing.T) {
		ctx := context.Background()
		userID := uuid.New()
		f := newServiceFixtureWithConfig(t, proctoring.ServiceConfig{InitRetryInterval: time.Millisecond})
		f.faces.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()
		require.Error(t, f.service.Initialize(ctx))
		require.Equal(t, proctoring.StateFailed, f.service.State())

		time.Sleep(5 * time.Millisecond)
		f.faces.EXPECT().Ping(mock.Anything).Return(nil).Once()
		f.normalizer.EXPECT().Normalize([]byte("portrait")).Return([]byte("normalized"), nil)
		f.faces.EXPECT().Detect(ctx, []byte("normalized")).Return(centeredFace(0.1, 0.2, 0.3), nil)
		f.enrollments.EXPECT().Save(ctx, mock.Anything).Return(nil)

		_, err := f.service.RegisterFace(ctx, userID, []byte("portrait"))

		require.NoError(t, err)
		assert.Equal(t, proctoring.StateReady, f.service.State())
	})

	t.Run("does not retry within the retry interval", func(t *testing.T) {
		ctx := context.Background()
		f := newServiceFixtureWithConfig(t, proctoring.ServiceConfig{InitRetryInterval: time.Hour})
		f.faces.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()
		require.Error(t, f.service.Initialize(ctx))

		_, err := f.service.RegisterFace(ctx, uuid.New(), []byte("portrait"))

		assert.ErrorIs(t, err, proctoring.ErrServiceNotReady)
		assert.Equal(t, proctoring.StateFailed, f.service.State())
	})
}

func TestService_Health(t *testing.T) {
	f := newServiceFixture(t)
	f.faces.EXPECT().Ping(mock.Anything).Return(errors.New("timeout")).Once()

	health := f.service.Health(context.Background())

	assert.Equal(t, proctoring.StateUninitialized, health.State)
	assert.Equal(t, "unreachable", health.FaceService)
	assert.Equal(t, "timeout", health.Error)
}

func TestService_HealthPromotesAfterRecovery(t *testing.T) {
	f := newServiceFixture(t)
	f.faces.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()
	require.Error(t, f.service.Initialize(context.Background()))

	f.faces.EXPECT().Ping(mock.Anything).Return(nil).Once()
	health := f.service.Health(context.Background())

	assert.Equal(t, "ok", health.FaceService)
	assert.Equal(t, proctoring.StateReady, health.State)
	assert.Equal(t, proctoring.StateReady, f.service.State())
}

func TestService_AnalyzeFrame(t *testing.T) {
	ctx := context.Background()
	image := []byte("frame")
	normalized := []byte("normalized")

	t.Run("records a system error while the face service is down", func(t *testing.T) {
		f := newServiceFixture(t)
		f.sessions.EXPECT().Get(ctx, f.session.ID).Return(f.session, nil)
		f.faces.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()
		f.ledger.EXPECT().Record(ctx, f.session.ID, mock.Anything).
			RunAndReturn(func(_ context.Context, id uuid.UUID, v []domainProctoring.Violation) (domainProctoring.SessionReport, error) {
				require.Len(t, v, 1)
				assert.Equal(t, domainProctoring.ViolationSystemError, v[0].Type)
				assert.Equal(t, "Proctoring service not initialized", v[0].Description)
				return reportWith(id, v...), nil
			})

		analysis, err := f.service.AnalyzeFrame(ctx, f.session.ID, f.session.UserID, image)

		require.NoError(t, err)
		assert.Len(t, analysis.Violations, 1)
		assert.False(t, analysis.FaceDetected)
		assert.Zero(t, analysis.WarningCount)
	})

	t.Run("collaborator failure becomes an analysis error", func(t *testing.T) {
		f := newServiceFixture(t)
		f.ready(t)
		f.sessions.EXPECT().Get(ctx, f.session.ID).Return(f.session, nil)
		f.normalizer.EXPECT().Normalize(image).Return(normalized, nil)
		f.faces.EXPECT().Detect(ctx, normalized).Return(nil, errors.New("breaker (face-recognition): circuit breaker is open"))
		f.ledger.EXPECT().Record(ctx, f.session.ID, mock.Anything).
			RunAndReturn(func(_ context.Context, id uuid.UUID, v []domainProctoring.Violation) (domainProctoring.SessionReport, error) {
				return reportWith(id, v...), nil
			})

		analysis, err := f.service.AnalyzeFrame(ctx, f.session.ID, f.session.UserID, image)

		require.NoError(t, err)
		require.Len(t, analysis.Violations, 1)
		assert.Equal(t, domainProctoring.ViolationAnalysisError, analysis.Violations[0].Type)
		assert.Contains(t, analysis.Violations[0].Description, "circuit breaker is open")
		assert.InDelta(t, 0.5, analysis.Violations[0].Severity, 1e-9)
	})

	t.Run("invalid image becomes an analysis error", func(t *testing.T) {
		f := newServiceFixture(t)
		f.ready(t)
		f.sessions.EXPECT().Get(ctx, f.session.ID).Return(f.session, nil)
		f.normalizer.EXPECT().Normalize(image).Return(nil, errors.New("invalid image"))
		f.ledger.EXPECT().Record(ctx, f.session.ID, mock.Anything).
			RunAndReturn(func(_ context.Context, id uuid.UUID, v []domainProctoring.Violation) (domainProctoring.SessionReport, error) {
				return reportWith(id, v...), nil
			})

		analysis, err := f.service.AnalyzeFrame(ctx, f.session.ID, f.session.UserID, image)

		require.NoError(t, err)
		assert.Equal(t, domainProctoring.ViolationAnalysisError, analysis.Violations[0].Type)
	})

	t.Run("identity mismatch against the enrollment", func(t *testing.T) {
		f := newServiceFixture(t)
		f.ready(t)
		f.sessions.EXPECT().Get(ctx, f.session.ID).Return(f.session, nil)
		f.normalizer.EXPECT().Normalize(image).Return(normalized, nil)
		f.faces.EXPECT().Detect(ctx, normalized).Return(centeredFace(1, 0, 0), nil)
		f.enrollments.EXPECT().Get(ctx, f.session.UserID).Return(&domainProctoring.Enrollment{
			UserID:    f.session.UserID,
			Embedding: pq.Float64Array{0, 1, 0},
		}, nil)
		f.ledger.EXPECT().Record(ctx, f.session.ID, mock.Anything).
			RunAndReturn(func(_ context.Context, id uuid.UUID, v []domainProctoring.Violation) (domainProctoring.SessionReport, error) {
				return reportWith(id, v...), nil
			})

		analysis, err := f.service.AnalyzeFrame(ctx, f.session.ID, f.session.UserID, image)

		require.NoError(t, err)
		require.Len(t, analysis.Violations, 1)
		assert.Equal(t, domainProctoring.ViolationIdentityMismatch, analysis.Violations[0].Type)
		assert.True(t, analysis.FaceDetected)
		assert.Equal(t, 1, analysis.FaceCount)
		assert.Equal(t, 1, analysis.WarningCount)
		assert.False(t, analysis.WarningLimitReached)
	})

	t.Run("clean frame without enrollment", func(t *testing.T) {
		f := newServiceFixture(t)
		f.ready(t)
		f.sessions.EXPECT().Get(ctx, f.session.ID).Return(f.session, nil)
		f.normalizer.EXPECT().Normalize(image).Return(normalized, nil)
		f.faces.EXPECT().Detect(ctx, normalized).Return(centeredFace(1, 0, 0), nil)
		f.enrollments.EXPECT().Get(ctx, f.session.UserID).
			Return(nil, domain.NewNotFoundError("face enrollment", f.session.UserID))
		f.ledger.EXPECT().Record(ctx, f.session.ID, mock.Anything).
			Return(reportWith(f.session.ID), nil)

		analysis, err := f.service.AnalyzeFrame(ctx, f.session.ID, f.session.UserID, image)

		require.NoError(t, err)
		assert.Empty(t, analysis.Violations)
		assert.NotNil(t, analysis.Violations)
		assert.Zero(t, analysis.Confidence)
	})

	t.Run("warning limit reached above the maximum", func(t *testing.T) {
		f := newServiceFixture(t)
		f.ready(t)
		frame := centeredFace()
		frame.FaceCount = 2
		f.sessions.EXPECT().Get(ctx, f.session.ID).Return(f.session, nil)
		f.normalizer.EXPECT().Normalize(image).Return(normalized, nil)
		f.faces.EXPECT().Detect(ctx, normalized).Return(frame, nil)
		f.enrollments.EXPECT().Get(ctx, f.session.UserID).
			Return(nil, domain.NewNotFoundError("face enrollment", f.session.UserID))

		var previous []domainProctoring.Violation
		for i := 0; i < 3; i++ {
			previous = append(previous, domainProctoring.NewViolation(
				f.session.ID, domainProctoring.ViolationMultiplePersons, "Multiple persons detected", 0.95))
		}
		f.ledger.EXPECT().Record(ctx, f.session.ID, mock.Anything).
			RunAndReturn(func(_ context.Context, id uuid.UUID, v []domainProctoring.Violation) (domainProctoring.SessionReport, error) {
				return reportWith(id, append(previous, v...)...), nil
			})

		analysis, err := f.service.AnalyzeFrame(ctx, f.session.ID, f.session.UserID, image)

		require.NoError(t, err)
		assert.Equal(t, 4, analysis.WarningCount)
		assert.True(t, analysis.WarningLimitReached)
	})

	t.Run("publishes frame and violation events", func(t *testing.T) {
		f := newServiceFixture(t)
		worker := metricsMocks.NewWorker(t)
		f.service = proctoring.NewService(discardLogger(), proctoring.ServiceDeps{
			Detector:    f.detector,
			Ledger:      f.ledger,
			Faces:       f.faces,
			Normalizer:  f.normalizer,
			Enrollments: f.enrollments,
			Sessions:    f.sessions,
			Metrics:     worker,
		}, proctoring.ServiceConfig{})
		f.ready(t)
		frame := centeredFace()
		frame.FaceCount = 2
		f.sessions.EXPECT().Get(ctx, f.session.ID).Return(f.session, nil)
		f.normalizer.EXPECT().Normalize(image).Return(normalized, nil)
		f.faces.EXPECT().Detect(ctx, normalized).Return(frame, nil)
		f.enrollments.EXPECT().Get(ctx, f.session.UserID).
			Return(nil, domain.NewNotFoundError("face enrollment", f.session.UserID))
		f.ledger.EXPECT().Record(ctx, f.session.ID, mock.Anything).
			RunAndReturn(func(_ context.Context, id uuid.UUID, v []domainProctoring.Violation) (domainProctoring.SessionReport, error) {
				return reportWith(id, v...), nil
			})
		worker.EXPECT().Process(mock.Anything, mock.Anything).Return().Once()

		_, err := f.service.AnalyzeFrame(ctx, f.session.ID, f.session.UserID, image)

		require.NoError(t, err)
	})

	t.Run("rejects another user's session", func(t *testing.T) {
		f := newServiceFixture(t)
		f.sessions.EXPECT().Get(ctx, f.session.ID).Return(f.session, nil)

		_, err := f.service.AnalyzeFrame(ctx, f.session.ID, uuid.New(), image)

		assert.ErrorIs(t, err, domain.ErrSessionOwnership)
	})

	t.Run("rejects a completed session", func(t *testing.T) {
		f := newServiceFixture(t)
		f.session.Status = domainSession.StatusCompleted
		f.sessions.EXPECT().Get(ctx, f.session.ID).Return(f.session, nil)

		_, err := f.service.AnalyzeFrame(ctx, f.session.ID, f.session.UserID, image)

		assert.ErrorIs(t, err, domain.ErrSessionNotActive)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newServiceFixture(t)
		f.sessions.EXPECT().Get(ctx, f.session.ID).Return(nil, domain.NewNotFoundError("exam session", f.session.ID))

		_, err := f.service.AnalyzeFrame(ctx, f.session.ID, f.session.UserID, image)

		assert.True(t, domain.IsNotFoundError(err))
	})
}

func TestService_RegisterFace(t *testing.T) {
	ctx := context.Background()
	image := []byte("portrait")
	normalized := []byte("normalized")
	userID := uuid.New()

	t.Run("not ready", func(t *testing.T) {
		f := newServiceFixture(t)
		f.faces.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()

		_, err := f.service.RegisterFace(ctx, userID, image)

		assert.ErrorIs(t, err, proctoring.ErrServiceNotReady)
	})

	t.Run("saves the enrollment", func(t *testing.T) {
		f := newServiceFixture(t)
		f.ready(t)
		f.normalizer.EXPECT().Normalize(image).Return(normalized, nil)
		f.faces.EXPECT().Detect(ctx, normalized).Return(centeredFace(0.1, 0.2, 0.3), nil)
		f.enrollments.EXPECT().Save(ctx, mock.MatchedBy(func(e *domainProctoring.Enrollment) bool {
			return e.UserID == userID && len(e.Embedding) == 3
		})).Return(nil)

		enrollment, err := f.service.RegisterFace(ctx, userID, image)

		require.NoError(t, err)
		assert.Equal(t, userID, enrollment.UserID)
		assert.InDelta(t, 0.4, enrollment.BoundingBox.X, 1e-9)
	})

	rejections := []struct {
		name   string
		frame  *domainProctoring.FrameDetectionResult
		expect error
	}{
		{name: "no face", frame: noFace(), expect: proctoring.ErrNoFaceDetected},
		{name: "multiple faces", frame: &domainProctoring.FrameDetectionResult{FaceDetected: true, FaceCount: 2, Embeddings: []float64{1}}, expect: proctoring.ErrMultipleFaces},
		{name: "no embedding", frame: centeredFace(), expect: proctoring.ErrMissingEmbedding},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			f.ready(t)
			f.normalizer.EXPECT().Normalize(image).Return(normalized, nil)
			f.faces.EXPECT().Detect(ctx, normalized).Return(tt.frame, nil)

			_, err := f.service.RegisterFace(ctx, userID, image)

			assert.ErrorIs(t, err, tt.expect)
		})
	}
}

func TestService_CloseSessionResetsStreaks(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	f.ready(t)
	image := []byte("frame")
	f.sessions.EXPECT().Get(ctx, f.session.ID).Return(f.session, nil)
	f.normalizer.EXPECT().Normalize(image).Return(image, nil)
	f.faces.EXPECT().Detect(ctx, image).Return(noFace(), nil)
	f.enrollments.EXPECT().Get(ctx, f.session.UserID).
		Return(nil, domain.NewNotFoundError("face enrollment", f.session.UserID))
	f.ledger.EXPECT().Record(ctx, f.session.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID, v []domainProctoring.Violation) (domainProctoring.SessionReport, error) {
			return reportWith(id, v...), nil
		})

	for i := 0; i < 5; i++ {
		analysis, err := f.service.AnalyzeFrame(ctx, f.session.ID, f.session.UserID, image)
		require.NoError(t, err)
		assert.Empty(t, analysis.Violations)
	}

	f.service.CloseSession(f.session.ID)

	analysis, err := f.service.AnalyzeFrame(ctx, f.session.ID, f.session.UserID, image)
	require.NoError(t, err)
	assert.Empty(t, analysis.Violations)
}
