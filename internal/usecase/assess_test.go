package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pladria/internal/domain"
)

func healthyInputs(rates map[string]float64) AssessmentInputs {
	if rates == nil {
		rates = map[string]float64{DimMismatch: 0, DimMissing: 0, DimDuplicates: 0}
	}
	return AssessmentInputs{
		SourceAPresent:        true,
		SourceBPresent:        true,
		SourceAStructureValid: true,
		SourceBStructureValid: true,
		DimensionErrorRates:   rates,
	}
}

func TestAssess_MissingSourceOverridesEverything(t *testing.T) {
	// Even a perfect score is not authoritative without both sources.
	in := healthyInputs(nil)
	in.SourceAPresent = false

	got, err := Assess(nil, in, DefaultAssessmentConfig())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusKO, got.Status)
	assert.Equal(t, domain.ReasonMissingSourceA, got.StatusReason)
	assert.Zero(t, got.ConformityPercentage)
}

func TestAssess_StatusReasonCascade(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AssessmentInputs)
		want   domain.StatusReason
	}{
		{
			name:   "missing A beats missing B",
			mutate: func(in *AssessmentInputs) { in.SourceAPresent = false; in.SourceBPresent = false },
			want:   domain.ReasonMissingSourceA,
		},
		{
			name:   "missing B beats invalid structure",
			mutate: func(in *AssessmentInputs) { in.SourceBPresent = false; in.SourceAStructureValid = false },
			want:   domain.ReasonMissingSourceB,
		},
		{
			name:   "invalid A beats invalid B",
			mutate: func(in *AssessmentInputs) { in.SourceAStructureValid = false; in.SourceBStructureValid = false },
			want:   domain.ReasonInvalidStructureA,
		},
		{
			name:   "invalid B alone",
			mutate: func(in *AssessmentInputs) { in.SourceBStructureValid = false },
			want:   domain.ReasonInvalidStructureB,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := healthyInputs(nil)
			tt.mutate(&in)
			got, err := Assess(nil, in, DefaultAssessmentConfig())
			require.NoError(t, err)
			assert.Equal(t, domain.StatusKO, got.Status)
			assert.Equal(t, tt.want, got.StatusReason)
		})
	}
}

func TestAssess_ThresholdBoundary(t *testing.T) {
	cfg := DefaultAssessmentConfig()
	cfg.Weights = map[string]float64{DimMismatch: 1}

	// Exactly at the threshold passes; only strictly below fails.
	atThreshold, err := Assess(nil, healthyInputs(map[string]float64{DimMismatch: 0.1}), cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOK, atThreshold.Status)
	assert.InDelta(t, 90.0, atThreshold.ConformityPercentage, 1e-9)

	below, err := Assess(nil, healthyInputs(map[string]float64{DimMismatch: 0.1001}), cfg)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusKO, below.Status)
	assert.Equal(t, domain.ReasonThresholdFail, below.StatusReason)
	assert.InDelta(t, 89.99, below.ConformityPercentage, 1e-9)
}

func TestAssess_WeightedScore(t *testing.T) {
	cfg := DefaultAssessmentConfig() // mismatch 0.5, missing 0.4, duplicates 0.1
	rates := map[string]float64{
		DimMismatch:   0.2,
		DimMissing:    0.5,
		DimDuplicates: 1.0,
	}

	got, err := Assess(nil, healthyInputs(rates), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, got.WeightedErrorScore, 1e-9) // 0.1 + 0.2 + 0.1
	assert.InDelta(t, 60.0, got.ConformityPercentage, 1e-9)
	assert.Equal(t, domain.ReasonThresholdFail, got.StatusReason)
}

func TestAssess_UnknownWeightKeyIsConfigError(t *testing.T) {
	cfg := DefaultAssessmentConfig()
	cfg.Weights = map[string]float64{"no_such_dimension": 1}

	_, err := Assess(nil, healthyInputs(nil), cfg)
	assert.ErrorContains(t, err, "no_such_dimension")
}

func TestAssess_DiscrepancyCounts(t *testing.T) {
	rows := []domain.ReconciliationRow{
		{Identifier: "X1", Outcome: domain.OutcomeMatch},
		{Identifier: "X2", Outcome: domain.OutcomeMissingInB},
		{Identifier: "X3", Outcome: domain.OutcomeMissingInA},
		{Identifier: "X4", Outcome: domain.OutcomeMismatch},
		{Identifier: "X5", Outcome: domain.OutcomeMatchWithDuplicates},
	}

	got, err := Assess(rows, healthyInputs(nil), DefaultAssessmentConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, got.MissingCount)
	assert.Equal(t, 1, got.MismatchCount)
	assert.Equal(t, 3, got.TotalDiscrepancies, "duplicates are not discrepancies")
}

func TestAssess_HardFaults(t *testing.T) {
	cfg := DefaultAssessmentConfig()
	cfg.ForbiddenTags = []string{"AD CREE"}
	cfg.MaxDuplicateGroups = 1
	cfg.MaxDiscrepancies = 1

	rows := []domain.ReconciliationRow{
		{Identifier: "X1", PresentInA: true, PresentInB: true, CategoryInA: "AD CREE", CategoryInB: "AD CREE", Outcome: domain.OutcomeMatch},
		{Identifier: "X2", Outcome: domain.OutcomeMatchWithDuplicates},
		{Identifier: "X3", Outcome: domain.OutcomeMatchWithDuplicates},
		{Identifier: "X4", Outcome: domain.OutcomeMissingInB},
		{Identifier: "X5", Outcome: domain.OutcomeMismatch},
	}
	// Rates kept clean so the score alone would pass; hard faults must
	// still force the KO.
	got, err := Assess(rows, healthyInputs(nil), cfg)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusKO, got.Status)
	assert.Equal(t, domain.ReasonHardFault, got.StatusReason)

	var types []domain.HardFaultType
	for _, f := range got.HardFaults {
		types = append(types, f.Type)
	}
	assert.ElementsMatch(t, []domain.HardFaultType{
		domain.FaultForbiddenCategory,
		domain.FaultExcessDuplicates,
		domain.FaultExcessDiscrepancy,
	}, types)
}

func TestAssess_GradeAboveThreshold(t *testing.T) {
	cfg := DefaultAssessmentConfig()
	cfg.Weights = map[string]float64{DimMismatch: 1}

	tests := []struct {
		rate float64
		want string
	}{
		{rate: 0.0, want: "excellent"},
		{rate: 0.04, want: "good"},
		{rate: 0.08, want: "acceptable"},
	}
	for _, tt := range tests {
		got, err := Assess(nil, healthyInputs(map[string]float64{DimMismatch: tt.rate}), cfg)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusOK, got.Status)
		assert.Equal(t, tt.want, got.Grade)
	}
}

func TestDimensionErrorRates(t *testing.T) {
	rows := []domain.ReconciliationRow{
		{Outcome: domain.OutcomeMatch},
		{Outcome: domain.OutcomeMismatch},
		{Outcome: domain.OutcomeMissingInA},
		{Outcome: domain.OutcomeMatchWithDuplicates},
	}
	rates := DimensionErrorRates(rows)
	assert.InDelta(t, 0.25, rates[DimMismatch], 1e-9)
	assert.InDelta(t, 0.25, rates[DimMissing], 1e-9)
	assert.InDelta(t, 0.25, rates[DimDuplicates], 1e-9)

	empty := DimensionErrorRates(nil)
	assert.Zero(t, empty[DimMismatch])
	assert.Zero(t, empty[DimMissing])
	assert.Zero(t, empty[DimDuplicates])
}
