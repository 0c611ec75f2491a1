package usecase

import (
	"fmt"

	"pladria/internal/domain"
)

// SummarizeByCategory rolls up reconciliation rows per category: how many
// records carry each category in source A versus source B. The universe is
// the configured taxonomy, not the data, so categories with zero occurrences
// still appear in the report. This answers "how many of category X in total",
// complementing the per-identifier rows.
func SummarizeByCategory(rows []domain.ReconciliationRow, universe []string) []domain.CategoryGapSummary {
	countA := make(map[string]int)
	countB := make(map[string]int)
	for _, row := range rows {
		if row.PresentInA {
			countA[row.CategoryInA]++
		}
		if row.PresentInB {
			countB[row.CategoryInB]++
		}
	}

	out := make([]domain.CategoryGapSummary, 0, len(universe))
	for _, cat := range universe {
		s := domain.CategoryGapSummary{
			Category:   cat,
			CountA:     countA[cat],
			CountB:     countB[cat],
			Difference: countA[cat] - countB[cat],
		}
		switch {
		case s.Difference == 0:
			s.Status = domain.GapStatusOK
			s.Detail = fmt.Sprintf("%d in each source", s.CountA)
		case s.Difference > 0:
			s.Status = domain.GapStatusGap
			s.Detail = fmt.Sprintf("source A has %d more than source B (%d vs %d)", s.Difference, s.CountA, s.CountB)
		default:
			s.Status = domain.GapStatusGap
			s.Detail = fmt.Sprintf("source B has %d more than source A (%d vs %d)", -s.Difference, s.CountB, s.CountA)
		}
		out = append(out, s)
	}
	return out
}
