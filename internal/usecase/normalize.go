package usecase

import (
	"strings"

	"pladria/internal/domain"
	"pladria/internal/taxonomy"
)

// Normalize canonicalizes one raw record: the identifier is trimmed and
// uppercased (an identifier that trims to nothing is absent), the category
// label is resolved through the synonym table. Unmapped labels are kept
// as-is, flagged, so downstream counts stay accurate. Pure function, never
// fails.
func Normalize(rec domain.Record, tax *taxonomy.Taxonomy) domain.NormalizedRecord {
	id := strings.ToUpper(strings.TrimSpace(rec.Identifier))
	cat, mapped := tax.Canonical(rec.Category)
	return domain.NormalizedRecord{
		Identifier:  id,
		Category:    cat,
		RawCategory: rec.Category,
		Unmapped:    !mapped && cat != "",
		RawFields:   rec.RawFields,
	}
}

// NormalizeAll maps Normalize over a slice, preserving order.
func NormalizeAll(recs []domain.Record, tax *taxonomy.Taxonomy) []domain.NormalizedRecord {
	out := make([]domain.NormalizedRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, Normalize(r, tax))
	}
	return out
}
