package usecase

import (
	"fmt"
	"sort"

	"pladria/internal/domain"
)

// AssessmentConfig carries the tunable parts of the conformity verdict.
// Zero values mean "use the default"; load overrides from the audit config
// file or leave DefaultAssessmentConfig as-is.
type AssessmentConfig struct {
	// ThresholdPct is the minimum conformity percentage; strictly below
	// fails, exactly at the threshold passes.
	ThresholdPct float64 `yaml:"threshold_pct" json:"threshold_pct"`

	// Weights blends the per-dimension error rates into one score. Every
	// key must name a computed dimension; an unknown key is a
	// configuration bug and Assess returns an error for it.
	Weights map[string]float64 `yaml:"weights" json:"weights"`

	// ForbiddenTags are categories whose presence on any row is a hard
	// fault once MaxForbidden is exceeded.
	ForbiddenTags []string `yaml:"forbidden_tags" json:"forbidden_tags"`
	MaxForbidden  int      `yaml:"max_forbidden" json:"max_forbidden"`

	// MaxDuplicateGroups caps tolerated MATCH_WITH_DUPLICATES rows.
	MaxDuplicateGroups int `yaml:"max_duplicate_groups" json:"max_duplicate_groups"`

	// MaxDiscrepancies caps tolerated missing+mismatch rows.
	MaxDiscrepancies int `yaml:"max_discrepancies" json:"max_discrepancies"`
}

// Score dimension keys computed by DimensionErrorRates.
const (
	DimMismatch   = "mismatch"
	DimMissing    = "missing"
	DimDuplicates = "duplicates"
)

// DefaultAssessmentConfig returns the standard audit tuning.
func DefaultAssessmentConfig() AssessmentConfig {
	return AssessmentConfig{
		ThresholdPct: 90.0,
		Weights: map[string]float64{
			DimMismatch:   0.5,
			DimMissing:    0.4,
			DimDuplicates: 0.1,
		},
		ForbiddenTags:      []string{},
		MaxForbidden:       0,
		MaxDuplicateGroups: 5,
		MaxDiscrepancies:   20,
	}
}

// AssessmentInputs carries the facts about one audit run that do not come
// from the rows themselves.
type AssessmentInputs struct {
	SourceAPresent        bool
	SourceBPresent        bool
	SourceAStructureValid bool
	SourceBStructureValid bool

	// DimensionErrorRates holds per-dimension error rates in [0,1], keyed
	// by dimension name. Usually computed by DimensionErrorRates.
	DimensionErrorRates map[string]float64
}

// DimensionErrorRates derives the standard score dimensions from a
// reconciliation run: the share of rows that mismatched, that were missing
// from one source, and that carried duplicate identifiers.
func DimensionErrorRates(rows []domain.ReconciliationRow) map[string]float64 {
	rates := map[string]float64{
		DimMismatch:   0,
		DimMissing:    0,
		DimDuplicates: 0,
	}
	if len(rows) == 0 {
		return rates
	}
	var mismatch, missing, dups int
	for _, row := range rows {
		switch row.Outcome {
		case domain.OutcomeMismatch:
			mismatch++
		case domain.OutcomeMissingInA, domain.OutcomeMissingInB:
			missing++
		case domain.OutcomeMatchWithDuplicates:
			dups++
		}
	}
	total := float64(len(rows))
	rates[DimMismatch] = float64(mismatch) / total
	rates[DimMissing] = float64(missing) / total
	rates[DimDuplicates] = float64(dups) / total
	return rates
}

// Assess produces the final conformity verdict for one audit run. The status
// is decided by a strict cascade, first applicable rule wins:
//
//  1. a missing source is KO, no score is authoritative;
//  2. a present source with a broken shape is KO;
//  3. weighted conformity strictly below the threshold is KO;
//  4. any triggered hard fault is KO even when the score passes;
//  5. otherwise OK, with a cosmetic grade.
//
// The only error condition is invalid configuration (a weight for a
// dimension that was never computed); data-quality problems never error.
func Assess(rows []domain.ReconciliationRow, in AssessmentInputs, cfg AssessmentConfig) (domain.ConformityAssessment, error) {
	if cfg.ThresholdPct == 0 {
		cfg.ThresholdPct = DefaultAssessmentConfig().ThresholdPct
	}
	if cfg.Weights == nil {
		cfg.Weights = DefaultAssessmentConfig().Weights
	}

	a := domain.ConformityAssessment{
		Status:     domain.StatusOK,
		HardFaults: []domain.HardFault{},
	}
	for _, row := range rows {
		switch row.Outcome {
		case domain.OutcomeMissingInA, domain.OutcomeMissingInB:
			a.MissingCount++
		case domain.OutcomeMismatch:
			a.MismatchCount++
		}
	}
	a.TotalDiscrepancies = a.MissingCount + a.MismatchCount
	a.HardFaults = scanHardFaults(rows, a.TotalDiscrepancies, cfg)

	// Hard gates: never report a numeric score as meaningful when the
	// foundational inputs are absent or malformed.
	switch {
	case !in.SourceAPresent:
		a.Status = domain.StatusKO
		a.StatusReason = domain.ReasonMissingSourceA
		return a, nil
	case !in.SourceBPresent:
		a.Status = domain.StatusKO
		a.StatusReason = domain.ReasonMissingSourceB
		return a, nil
	case !in.SourceAStructureValid:
		a.Status = domain.StatusKO
		a.StatusReason = domain.ReasonInvalidStructureA
		return a, nil
	case !in.SourceBStructureValid:
		a.Status = domain.StatusKO
		a.StatusReason = domain.ReasonInvalidStructureB
		return a, nil
	}

	score, err := weightedErrorScore(in.DimensionErrorRates, cfg.Weights)
	if err != nil {
		return domain.ConformityAssessment{}, err
	}
	a.WeightedErrorScore = score
	a.ConformityPercentage = 100 * (1 - score)

	if a.ConformityPercentage < cfg.ThresholdPct {
		a.Status = domain.StatusKO
		a.StatusReason = domain.ReasonThresholdFail
		return a, nil
	}
	if len(a.HardFaults) > 0 {
		a.Status = domain.StatusKO
		a.StatusReason = domain.ReasonHardFault
		return a, nil
	}

	a.Grade = grade(a.ConformityPercentage)
	return a, nil
}

func weightedErrorScore(rates, weights map[string]float64) (float64, error) {
	// Iterate sorted so a config error always names the same key.
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var score float64
	for _, k := range keys {
		rate, ok := rates[k]
		if !ok {
			return 0, fmt.Errorf("weight configured for unknown dimension %q", k)
		}
		score += rate * weights[k]
	}
	return score, nil
}

func scanHardFaults(rows []domain.ReconciliationRow, discrepancies int, cfg AssessmentConfig) []domain.HardFault {
	faults := []domain.HardFault{}

	if len(cfg.ForbiddenTags) > 0 {
		forbidden := make(map[string]bool, len(cfg.ForbiddenTags))
		for _, t := range cfg.ForbiddenTags {
			forbidden[t] = true
		}
		var hits int
		for _, row := range rows {
			if row.PresentInA && forbidden[row.CategoryInA] {
				hits++
			} else if row.PresentInB && forbidden[row.CategoryInB] {
				hits++
			}
		}
		if hits > cfg.MaxForbidden {
			faults = append(faults, domain.HardFault{
				Type:        domain.FaultForbiddenCategory,
				Description: fmt.Sprintf("%d records carry a forbidden category (tolerated: %d)", hits, cfg.MaxForbidden),
				Severity:    "critical",
				Count:       hits,
				Threshold:   cfg.MaxForbidden,
			})
		}
	}

	if cfg.MaxDuplicateGroups > 0 {
		var dups int
		for _, row := range rows {
			if row.Outcome == domain.OutcomeMatchWithDuplicates {
				dups++
			}
		}
		if dups > cfg.MaxDuplicateGroups {
			faults = append(faults, domain.HardFault{
				Type:        domain.FaultExcessDuplicates,
				Description: fmt.Sprintf("%d duplicate identifier groups (tolerated: %d)", dups, cfg.MaxDuplicateGroups),
				Severity:    "major",
				Count:       dups,
				Threshold:   cfg.MaxDuplicateGroups,
			})
		}
	}

	if cfg.MaxDiscrepancies > 0 && discrepancies > cfg.MaxDiscrepancies {
		faults = append(faults, domain.HardFault{
			Type:        domain.FaultExcessDiscrepancy,
			Description: fmt.Sprintf("%d unresolved discrepancies (tolerated: %d)", discrepancies, cfg.MaxDiscrepancies),
			Severity:    "major",
			Count:       discrepancies,
			Threshold:   cfg.MaxDiscrepancies,
		})
	}

	return faults
}

func grade(pct float64) string {
	switch {
	case pct >= 98:
		return "excellent"
	case pct >= 95:
		return "good"
	default:
		return "acceptable"
	}
}
