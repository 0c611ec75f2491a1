package usecase

import (
	"fmt"
	"sort"

	"pladria/internal/domain"
)

// Reconcile joins the two indexes on identifier and classifies every
// identifier seen in either source. Rows come back sorted by identifier so
// repeated runs over the same inputs produce identical output.
//
// If either index is empty the join is meaningless: Reconcile returns an
// empty list and leaves the "missing source" verdict to Assess.
func Reconcile(indexA, indexB *SourceIndex) []domain.ReconciliationRow {
	if indexA.Empty() || indexB.Empty() {
		return []domain.ReconciliationRow{}
	}

	union := make(map[string]bool, indexA.Size()+indexB.Size())
	for _, id := range indexA.Identifiers() {
		union[id] = true
	}
	for _, id := range indexB.Identifiers() {
		union[id] = true
	}
	ids := make([]string, 0, len(union))
	for id := range union {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]domain.ReconciliationRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, classify(id, indexA.Get(id), indexB.Get(id)))
	}
	return rows
}

func classify(id string, inA, inB []domain.NormalizedRecord) domain.ReconciliationRow {
	row := domain.ReconciliationRow{
		Identifier:    id,
		PresentInA:    len(inA) > 0,
		PresentInB:    len(inB) > 0,
		DuplicatesInA: dupCount(inA),
		DuplicatesInB: dupCount(inB),
	}

	switch {
	case row.PresentInA && !row.PresentInB:
		row.CategoryInA = inA[0].Category
		row.Outcome = domain.OutcomeMissingInB
		row.Detail = fmt.Sprintf("identifier present only in source A (category %s)", row.CategoryInA)
		row.RecommendedAction = "add to source B"
	case !row.PresentInA && row.PresentInB:
		row.CategoryInB = inB[0].Category
		row.Outcome = domain.OutcomeMissingInA
		row.Detail = fmt.Sprintf("identifier present only in source B (category %s)", row.CategoryInB)
		row.RecommendedAction = "add to source A"
	default:
		row.CategoryInA = inA[0].Category
		row.CategoryInB = inB[0].Category
		// Equality is purely string-based post-normalization; unmapped
		// categories compare like any other value.
		if row.CategoryInA != row.CategoryInB {
			row.Outcome = domain.OutcomeMismatch
			row.Detail = fmt.Sprintf("category mismatch: source A has %s, source B has %s", row.CategoryInA, row.CategoryInB)
			row.RecommendedAction = "review and reconcile"
		} else if row.DuplicatesInA > 0 || row.DuplicatesInB > 0 {
			row.Outcome = domain.OutcomeMatchWithDuplicates
			row.Detail = fmt.Sprintf("categories agree (%s) but identifier is duplicated (%d in A, %d in B)",
				row.CategoryInA, len(inA), len(inB))
			row.RecommendedAction = "verify duplicate records manually"
		} else {
			row.Outcome = domain.OutcomeMatch
			row.Detail = fmt.Sprintf("categories agree (%s)", row.CategoryInA)
			row.RecommendedAction = "none"
		}
	}
	return row
}

func dupCount(recs []domain.NormalizedRecord) int {
	if len(recs) > 1 {
		return len(recs)
	}
	return 0
}
