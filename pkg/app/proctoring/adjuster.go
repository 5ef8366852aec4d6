package proctoring

import (
	"math"

	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
)

const (
	deductionRiskThreshold = 3.0
	penaltyPerRiskPoint    = 5.0
	certificateRiskLimit   = 3.0
)

type Outcome struct {
	AdjustedScore       float64 `json:"adjusted_score"`
	Passed              bool    `json:"passed"`
	CertificateEligible bool    `json:"certificate_eligible"`
}

// FinalizeScore deducts points above a risk of 3 and decides pass and certificate eligibility.
// A risk of exactly 3 keeps the full score but is not eligible for a certificate.
func FinalizeScore(rawScore float64, report domainProctoring.SessionReport, passingScore float64) Outcome {
	adjusted := rawScore
	if report.RiskScore > deductionRiskThreshold {
		adjusted = math.Max(0, rawScore-report.RiskScore*penaltyPerRiskPoint)
	}
	passed := adjusted >= passingScore
	return Outcome{
		AdjustedScore:       adjusted,
		Passed:              passed,
		CertificateEligible: passed && report.RiskScore < certificateRiskLimit,
	}
}
