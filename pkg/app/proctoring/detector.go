package proctoring

import (
	"fmt"
	"math"
	"sync"

	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	severityNoFace           = 0.9
	severityMultiplePersons  = 0.95
	severityIdentityMismatch = 0.8
	severityLookingAway      = 0.7
	severityFailure          = 0.5
)

type Thresholds struct {
	NoFaceStreak       int
	LookAwayStreak     int
	GazeDistance       float64
	IdentitySimilarity float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		NoFaceStreak:       5,
		LookAwayStreak:     10,
		GazeDistance:       0.3,
		IdentitySimilarity: 0.7,
	}
}

// EmbeddingLookup returns the enrolled embedding of the candidate sitting sessionID.
type EmbeddingLookup func(sessionID uuid.UUID) ([]float64, bool)

type Detection struct {
	Violations []domainProctoring.Violation
	// Confidence is the identity similarity as a percentage, 0 when no identity check ran.
	Confidence float64
}

//go:generate mockery --name=Detector --dir=. --output=./mocks --filename=detector_mock.go --case=underscore --with-expecter
type Detector interface {
	Analyze(sessionID uuid.UUID, detection *domainProctoring.FrameDetectionResult, lookup EmbeddingLookup) Detection
	Failure(sessionID uuid.UUID, violationType domainProctoring.ViolationType, description string) domainProctoring.Violation
	Reset(sessionID uuid.UUID)
}

type streaks struct {
	noFace         int
	lookAway       int
	multiplePerson int
}

type detector struct {
	logger     *logrus.Logger
	thresholds Thresholds
	mu         sync.Mutex
	sessions   map[uuid.UUID]*streaks
}

func NewDetector(logger *logrus.Logger, thresholds Thresholds) Detector {
	return &detector{
		logger:     logger,
		thresholds: thresholds,
		sessions:   make(map[uuid.UUID]*streaks),
	}
}

func (d *detector) Analyze(
	sessionID uuid.UUID,
	detection *domainProctoring.FrameDetectionResult,
	lookup EmbeddingLookup,
) Detection {
	var out Detection

	similarity, identityChecked := d.identity(sessionID, detection, lookup)
	if identityChecked {
		out.Confidence = similarity * 100
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	state, ok := d.sessions[sessionID]
	if !ok {
		state = &streaks{}
		d.sessions[sessionID] = state
	}

	if !detection.FaceDetected || detection.FaceCount == 0 {
		state.noFace++
		if state.noFace > d.thresholds.NoFaceStreak {
			out.Violations = append(out.Violations, domainProctoring.NewViolation(
				sessionID,
				domainProctoring.ViolationNoFaceDetected,
				"Student not visible in camera",
				severityNoFace,
			))
		}
	} else {
		state.noFace = 0
	}

	if detection.FaceCount > 1 {
		state.multiplePerson++
		out.Violations = append(out.Violations, domainProctoring.NewViolation(
			sessionID,
			domainProctoring.ViolationMultiplePersons,
			"Multiple persons detected",
			severityMultiplePersons,
		))
	} else {
		state.multiplePerson = 0
	}

	if identityChecked && similarity < d.thresholds.IdentitySimilarity {
		out.Violations = append(out.Violations, domainProctoring.NewViolation(
			sessionID,
			domainProctoring.ViolationIdentityMismatch,
			fmt.Sprintf("Different person detected (similarity: %.1f%%)", similarity*100),
			severityIdentityMismatch,
		))
	}

	if detection.FaceDetected && len(detection.BoundingBoxes) > 0 {
		if d.lookingAway(detection.BoundingBoxes[0]) {
			state.lookAway++
			if state.lookAway > d.thresholds.LookAwayStreak {
				out.Violations = append(out.Violations, domainProctoring.NewViolation(
					sessionID,
					domainProctoring.ViolationLookingAway,
					"Student looking away from screen",
					severityLookingAway,
				))
			}
		} else {
			state.lookAway = 0
		}
	}

	return out
}

// identity compares the frame embedding with the enrolled one. A missing enrollment skips the check.
func (d *detector) identity(
	sessionID uuid.UUID,
	detection *domainProctoring.FrameDetectionResult,
	lookup EmbeddingLookup,
) (float64, bool) {
	if !detection.FaceDetected || len(detection.Embeddings) == 0 || lookup == nil {
		return 0, false
	}
	registered, found := lookup(sessionID)
	if !found {
		return 0, false
	}
	if len(registered) != len(detection.Embeddings) {
		d.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"frame":      len(detection.Embeddings),
			"enrolled":   len(registered),
		}).WithError(ErrDimensionMismatch).Warn("embedding dimension mismatch")
	}
	return CosineSimilarity(detection.Embeddings, registered), true
}

func (d *detector) lookingAway(box domainProctoring.BoundingBox) bool {
	cx, cy := box.Center()
	distance := math.Hypot(cx-0.5, cy-0.5)
	return distance > d.thresholds.GazeDistance
}

func (d *detector) Failure(
	sessionID uuid.UUID,
	violationType domainProctoring.ViolationType,
	description string,
) domainProctoring.Violation {
	return domainProctoring.NewViolation(sessionID, violationType, description, severityFailure)
}

func (d *detector) Reset(sessionID uuid.UUID) {
	d.mu.Lock()
	delete(d.sessions, sessionID)
	d.mu.Unlock()
}
