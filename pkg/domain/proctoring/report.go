package proctoring

import "github.com/google/uuid"

type Recommendation string

const (
	RecommendationPass           Recommendation = "PASS"
	RecommendationFlag           Recommendation = "FLAG"
	RecommendationReviewRequired Recommendation = "REVIEW_REQUIRED"
)

const (
	reviewRiskThreshold = 5.0
	flagRiskThreshold   = 2.0
)

// RecommendationFor maps a risk score to a recommendation. Both thresholds are exclusive.
func RecommendationFor(riskScore float64) Recommendation {
	switch {
	case riskScore > reviewRiskThreshold:
		return RecommendationReviewRequired
	case riskScore > flagRiskThreshold:
		return RecommendationFlag
	default:
		return RecommendationPass
	}
}

type SessionReport struct {
	SessionID           uuid.UUID             `json:"session_id"`
	TotalViolations     int                   `json:"total_violations"`
	ViolationTypeCounts map[ViolationType]int `json:"violation_types"`
	RiskScore           float64               `json:"risk_score"`
	Recommendation      Recommendation        `json:"recommendation"`
}

// NewSessionReport aggregates the violations that belong to sessionID. Violations of other sessions are ignored.
func NewSessionReport(sessionID uuid.UUID, violations []Violation) SessionReport {
	report := SessionReport{
		SessionID:           sessionID,
		ViolationTypeCounts: make(map[ViolationType]int),
	}
	for _, v := range violations {
		if v.SessionID != sessionID {
			continue
		}
		report.TotalViolations++
		report.ViolationTypeCounts[v.Type]++
		report.RiskScore += v.Severity
	}
	report.Recommendation = RecommendationFor(report.RiskScore)
	return report
}

// WarningCount is the number of violations caused by the candidate, excluding analysis failures.
func (r SessionReport) WarningCount() int {
	count := r.TotalViolations
	count -= r.ViolationTypeCounts[ViolationAnalysisError]
	count -= r.ViolationTypeCounts[ViolationSystemError]
	return count
}
