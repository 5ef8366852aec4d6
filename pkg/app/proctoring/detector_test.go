package proctoring_test

import (
	"io"
	"sync"
	"testing"

	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetector() proctoring.Detector {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return proctoring.NewDetector(logger, proctoring.DefaultThresholds())
}

func noFace() *domainProctoring.FrameDetectionResult {
	return &domainProctoring.FrameDetectionResult{}
}

func centeredFace(embedding ...float64) *domainProctoring.FrameDetectionResult {
	return &domainProctoring.FrameDetectionResult{
		FaceDetected:  true,
		FaceCount:     1,
		Embeddings:    embedding,
		BoundingBoxes: []domainProctoring.BoundingBox{{X: 0.4, Y: 0.4, Width: 0.2, Height: 0.2}},
	}
}

func cornerFace() *domainProctoring.FrameDetectionResult {
	return &domainProctoring.FrameDetectionResult{
		FaceDetected:  true,
		FaceCount:     1,
		BoundingBoxes: []domainProctoring.BoundingBox{{X: 0, Y: 0, Width: 0.1, Height: 0.1}},
	}
}

func enrolled(embedding ...float64) proctoring.EmbeddingLookup {
	return func(uuid.UUID) ([]float64, bool) {
		return embedding, true
	}
}

func types(violations []domainProctoring.Violation) []domainProctoring.ViolationType {
	out := make([]domainProctoring.ViolationType, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Type)
	}
	return out
}

func TestDetector_NoFaceStreak(t *testing.T) {
	t.Run("five frames stay below the threshold", func(t *testing.T) {
		d := newDetector()
		sessionID := uuid.New()
		var violations []domainProctoring.Violation
		for i := 0; i < 5; i++ {
			violations = append(violations, d.Analyze(sessionID, noFace(), nil).Violations...)
		}
		assert.Empty(t, violations)
	})

	t.Run("sixth frame is flagged", func(t *testing.T) {
		d := newDetector()
		sessionID := uuid.New()
		var violations []domainProctoring.Violation
		for i := 0; i < 6; i++ {
			violations = append(violations, d.Analyze(sessionID, noFace(), nil).Violations...)
		}
		require.Len(t, violations, 1)
		assert.Equal(t, domainProctoring.ViolationNoFaceDetected, violations[0].Type)
		assert.Equal(t, "Student not visible in camera", violations[0].Description)
		assert.InDelta(t, 0.9, violations[0].Severity, 1e-9)
		assert.Equal(t, sessionID, violations[0].SessionID)
	})

	t.Run("every frame past the threshold is flagged", func(t *testing.T) {
		d := newDetector()
		sessionID := uuid.New()
		var violations []domainProctoring.Violation
		for i := 0; i < 8; i++ {
			violations = append(violations, d.Analyze(sessionID, noFace(), nil).Violations...)
		}
		assert.Len(t, violations, 3)
	})

	t.Run("a visible face resets the streak", func(t *testing.T) {
		d := newDetector()
		sessionID := uuid.New()
		for i := 0; i < 5; i++ {
			d.Analyze(sessionID, noFace(), nil)
		}
		assert.Empty(t, d.Analyze(sessionID, centeredFace(), nil).Violations)
		for i := 0; i < 5; i++ {
			assert.Empty(t, d.Analyze(sessionID, noFace(), nil).Violations)
		}
	})
}

func TestDetector_MultiplePersons(t *testing.T) {
	d := newDetector()
	sessionID := uuid.New()
	frame := centeredFace()
	frame.FaceCount = 2

	violations := d.Analyze(sessionID, frame, nil).Violations

	require.Len(t, violations, 1)
	assert.Equal(t, domainProctoring.ViolationMultiplePersons, violations[0].Type)
	assert.InDelta(t, 0.95, violations[0].Severity, 1e-9)

	// No streak requirement: the next frame is flagged too.
	assert.Len(t, d.Analyze(sessionID, frame, nil).Violations, 1)
}

func TestDetector_Identity(t *testing.T) {
	t.Run("same person", func(t *testing.T) {
		d := newDetector()
		result := d.Analyze(uuid.New(), centeredFace(0.1, 0.2, 0.3), enrolled(0.1, 0.2, 0.3))
		assert.Empty(t, result.Violations)
		assert.InDelta(t, 100, result.Confidence, 1e-6)
	})

	t.Run("different person", func(t *testing.T) {
		d := newDetector()
		result := d.Analyze(uuid.New(), centeredFace(1, 0, 0), enrolled(0, 1, 0))
		require.Len(t, result.Violations, 1)
		assert.Equal(t, domainProctoring.ViolationIdentityMismatch, result.Violations[0].Type)
		assert.Equal(t, "Different person detected (similarity: 0.0%)", result.Violations[0].Description)
		assert.InDelta(t, 0.8, result.Violations[0].Severity, 1e-9)
	})

	t.Run("dimension mismatch scores zero", func(t *testing.T) {
		d := newDetector()
		result := d.Analyze(uuid.New(), centeredFace(1, 0, 0), enrolled(1, 0))
		require.Len(t, result.Violations, 1)
		assert.Equal(t, domainProctoring.ViolationIdentityMismatch, result.Violations[0].Type)
	})

	t.Run("missing enrollment skips the check", func(t *testing.T) {
		d := newDetector()
		missing := func(uuid.UUID) ([]float64, bool) { return nil, false }
		result := d.Analyze(uuid.New(), centeredFace(1, 0, 0), missing)
		assert.Empty(t, result.Violations)
		assert.Zero(t, result.Confidence)
	})

	t.Run("no embedding skips the check", func(t *testing.T) {
		d := newDetector()
		assert.Empty(t, d.Analyze(uuid.New(), centeredFace(), enrolled(1, 0, 0)).Violations)
	})
}

func TestDetector_LookingAway(t *testing.T) {
	d := newDetector()
	sessionID := uuid.New()

	for i := 0; i < 10; i++ {
		assert.Empty(t, d.Analyze(sessionID, cornerFace(), nil).Violations)
	}
	violations := d.Analyze(sessionID, cornerFace(), nil).Violations
	require.Len(t, violations, 1)
	assert.Equal(t, domainProctoring.ViolationLookingAway, violations[0].Type)
	assert.InDelta(t, 0.7, violations[0].Severity, 1e-9)

	// Looking back at the screen resets the streak.
	assert.Empty(t, d.Analyze(sessionID, centeredFace(), nil).Violations)
	assert.Empty(t, d.Analyze(sessionID, cornerFace(), nil).Violations)
}

func TestDetector_ViolationOrder(t *testing.T) {
	d := newDetector()
	sessionID := uuid.New()
	frame := &domainProctoring.FrameDetectionResult{
		FaceDetected:  true,
		FaceCount:     2,
		Embeddings:    []float64{1, 0},
		BoundingBoxes: []domainProctoring.BoundingBox{{X: 0, Y: 0, Width: 0.1, Height: 0.1}},
	}
	for i := 0; i < 10; i++ {
		d.Analyze(sessionID, frame, enrolled(0, 1))
	}

	violations := d.Analyze(sessionID, frame, enrolled(0, 1)).Violations

	assert.Equal(t, []domainProctoring.ViolationType{
		domainProctoring.ViolationMultiplePersons,
		domainProctoring.ViolationIdentityMismatch,
		domainProctoring.ViolationLookingAway,
	}, types(violations))
}

func TestDetector_SessionsAreIsolated(t *testing.T) {
	d := newDetector()
	first, second := uuid.New(), uuid.New()

	for i := 0; i < 5; i++ {
		d.Analyze(first, noFace(), nil)
	}
	// A face in another session must not reset the first session's streak.
	d.Analyze(second, centeredFace(), nil)

	assert.Len(t, d.Analyze(first, noFace(), nil).Violations, 1)
	assert.Empty(t, d.Analyze(second, noFace(), nil).Violations)
}

func TestDetector_Reset(t *testing.T) {
	d := newDetector()
	sessionID := uuid.New()
	for i := 0; i < 5; i++ {
		d.Analyze(sessionID, noFace(), nil)
	}

	d.Reset(sessionID)

	assert.Empty(t, d.Analyze(sessionID, noFace(), nil).Violations)
}

func TestDetector_Failure(t *testing.T) {
	d := newDetector()
	sessionID := uuid.New()

	v := d.Failure(sessionID, domainProctoring.ViolationAnalysisError, "Frame analysis failed: timeout")

	assert.Equal(t, sessionID, v.SessionID)
	assert.Equal(t, domainProctoring.ViolationAnalysisError, v.Type)
	assert.InDelta(t, 0.5, v.Severity, 1e-9)
	assert.NotEqual(t, uuid.Nil, v.ID)
}

func TestDetector_ConcurrentSessions(t *testing.T) {
	d := newDetector()
	var wg sync.WaitGroup
	counts := make([]int, 8)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessionID := uuid.New()
			for j := 0; j < 6; j++ {
				counts[i] += len(d.Analyze(sessionID, noFace(), nil).Violations)
			}
		}(i)
	}
	wg.Wait()

	for _, c := range counts {
		assert.Equal(t, 1, c)
	}
}
