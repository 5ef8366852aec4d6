package proctoring_test

import (
	"testing"

	"github.com/NeuralTrust/TrustProctor/pkg/app/proctoring"
	domainProctoring "github.com/NeuralTrust/TrustProctor/pkg/domain/proctoring"
	"github.com/stretchr/testify/assert"
)

func TestFinalizeScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     float64
		risk    float64
		passing float64
		want    proctoring.Outcome
	}{
		{
			name: "risk above 3 deducts five points per risk point",
			raw:  80, risk: 4, passing: 70,
			want: proctoring.Outcome{AdjustedScore: 60, Passed: false, CertificateEligible: false},
		},
		{
			name: "low risk keeps the score and earns a certificate",
			raw:  90, risk: 2, passing: 70,
			want: proctoring.Outcome{AdjustedScore: 90, Passed: true, CertificateEligible: true},
		},
		{
			// No deduction at exactly 3, yet no certificate either.
			name: "risk of exactly 3 passes without certificate",
			raw:  90, risk: 3, passing: 70,
			want: proctoring.Outcome{AdjustedScore: 90, Passed: true, CertificateEligible: false},
		},
		{
			name: "deduction floors at zero",
			raw:  20, risk: 10, passing: 70,
			want: proctoring.Outcome{AdjustedScore: 0, Passed: false, CertificateEligible: false},
		},
		{
			name: "passing after deduction but not eligible",
			raw:  100, risk: 3.5, passing: 70,
			want: proctoring.Outcome{AdjustedScore: 82.5, Passed: true, CertificateEligible: false},
		},
		{
			name: "score equal to passing score passes",
			raw:  70, risk: 0, passing: 70,
			want: proctoring.Outcome{AdjustedScore: 70, Passed: true, CertificateEligible: true},
		},
		{
			name: "failing without risk",
			raw:  50, risk: 0, passing: 70,
			want: proctoring.Outcome{AdjustedScore: 50, Passed: false, CertificateEligible: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := proctoring.FinalizeScore(tt.raw, domainProctoring.SessionReport{RiskScore: tt.risk}, tt.passing)
			assert.InDelta(t, tt.want.AdjustedScore, got.AdjustedScore, 1e-9)
			assert.Equal(t, tt.want.Passed, got.Passed)
			assert.Equal(t, tt.want.CertificateEligible, got.CertificateEligible)
		})
	}
}
