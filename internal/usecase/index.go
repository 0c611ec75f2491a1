package usecase

import (
	"sort"

	"pladria/internal/domain"
)

// SourceIndex is the per-source lookup: identifier -> records carrying it.
// More than one record under a key is a duplicate group; the extra records
// are kept, not collapsed, so the engine can report "match with duplicates"
// distinctly from a clean match.
type SourceIndex struct {
	entries             map[string][]domain.NormalizedRecord
	skippedNoIdentifier int
}

// BuildIndex indexes normalized records by identifier. Records without an
// identifier are skipped but counted for diagnostics.
func BuildIndex(records []domain.NormalizedRecord) *SourceIndex {
	idx := &SourceIndex{entries: make(map[string][]domain.NormalizedRecord, len(records))}
	for _, r := range records {
		if !r.HasIdentifier() {
			idx.skippedNoIdentifier++
			continue
		}
		idx.entries[r.Identifier] = append(idx.entries[r.Identifier], r)
	}
	return idx
}

// Empty reports whether the index holds no identifiers. A nil index is empty.
func (x *SourceIndex) Empty() bool {
	return x == nil || len(x.entries) == 0
}

// Size returns the number of distinct identifiers.
func (x *SourceIndex) Size() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// Get returns the records indexed under id.
func (x *SourceIndex) Get(id string) []domain.NormalizedRecord {
	if x == nil {
		return nil
	}
	return x.entries[id]
}

// Identifiers returns all indexed identifiers, sorted.
func (x *SourceIndex) Identifiers() []string {
	if x == nil {
		return nil
	}
	ids := make([]string, 0, len(x.entries))
	for id := range x.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Duplicates returns the identifiers carried by more than one record.
func (x *SourceIndex) Duplicates() map[string]bool {
	dups := make(map[string]bool)
	if x == nil {
		return dups
	}
	for id, recs := range x.entries {
		if len(recs) > 1 {
			dups[id] = true
		}
	}
	return dups
}

// SkippedNoIdentifier returns how many input records lacked a join key.
func (x *SourceIndex) SkippedNoIdentifier() int {
	if x == nil {
		return 0
	}
	return x.skippedNoIdentifier
}
