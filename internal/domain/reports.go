package domain

import "time"

// Outcome classifies one identifier after reconciling both sources.
type Outcome string

const (
	OutcomeMatch               Outcome = "MATCH"
	OutcomeMismatch            Outcome = "MISMATCH"
	OutcomeMatchWithDuplicates Outcome = "MATCH_WITH_DUPLICATES"
	OutcomeMissingInA          Outcome = "MISSING_IN_A"
	OutcomeMissingInB          Outcome = "MISSING_IN_B"
)

// ReconciliationRow is the per-identifier verdict. One row exists for every
// identifier seen in either source; rows are immutable once built.
type ReconciliationRow struct {
	Identifier        string  `json:"identifier"`
	PresentInA        bool    `json:"present_in_a"`
	PresentInB        bool    `json:"present_in_b"`
	CategoryInA       string  `json:"category_in_a,omitempty"`
	CategoryInB       string  `json:"category_in_b,omitempty"`
	DuplicatesInA     int     `json:"duplicates_in_a,omitempty"`
	DuplicatesInB     int     `json:"duplicates_in_b,omitempty"`
	Outcome           Outcome `json:"outcome"`
	Detail            string  `json:"detail"`
	RecommendedAction string  `json:"recommended_action"`
}

// GapStatus marks whether a category's counts agree across sources.
type GapStatus string

const (
	GapStatusOK  GapStatus = "OK"
	GapStatusGap GapStatus = "GAP"
)

// CategoryGapSummary aggregates one category across all rows: how many
// records carry it in each source, regardless of whether individual
// identifiers match.
type CategoryGapSummary struct {
	Category   string    `json:"category"`
	CountA     int       `json:"count_a"`
	CountB     int       `json:"count_b"`
	Difference int       `json:"difference"` // CountA - CountB
	Status     GapStatus `json:"status"`
	Detail     string    `json:"detail"`
}

// Status is the final pass/fail verdict of an audit.
type Status string

const (
	StatusOK Status = "OK"
	StatusKO Status = "KO"
)

// StatusReason explains a KO verdict. Reasons are priority-ordered: the
// assessor reports the first applicable one, never a blend.
type StatusReason string

const (
	ReasonMissingSourceA    StatusReason = "MISSING_SOURCE_A"
	ReasonMissingSourceB    StatusReason = "MISSING_SOURCE_B"
	ReasonInvalidStructureA StatusReason = "INVALID_STRUCTURE_A"
	ReasonInvalidStructureB StatusReason = "INVALID_STRUCTURE_B"
	ReasonThresholdFail     StatusReason = "THRESHOLD_FAIL"
	ReasonHardFault         StatusReason = "HARD_FAULT"
)

// HardFaultType tags a condition that forces a KO regardless of the score.
type HardFaultType string

const (
	FaultForbiddenCategory HardFaultType = "FORBIDDEN_CATEGORY"
	FaultExcessDuplicates  HardFaultType = "EXCESS_DUPLICATES"
	FaultExcessDiscrepancy HardFaultType = "EXCESS_DISCREPANCIES"
)

// HardFault describes one triggered hard-fault condition.
type HardFault struct {
	Type        HardFaultType `json:"type"`
	Description string        `json:"description"`
	Severity    string        `json:"severity"`
	Count       int           `json:"count"`
	Threshold   int           `json:"threshold"`
}

// ConformityAssessment is the terminal verdict of one audit run. Callers must
// check Status and StatusReason before trusting ConformityPercentage.
type ConformityAssessment struct {
	WeightedErrorScore   float64      `json:"weighted_error_score"`
	ConformityPercentage float64      `json:"conformity_percentage"`
	Status               Status       `json:"status"`
	StatusReason         StatusReason `json:"status_reason,omitempty"`
	Grade                string       `json:"grade,omitempty"`
	HardFaults           []HardFault  `json:"hard_faults"`

	// Discrepancies count individual identifier-level problems, not
	// category-level aggregate gaps. MATCH_WITH_DUPLICATES rows are not
	// discrepancies: their categories agree, duplicates are surfaced apart.
	MissingCount       int `json:"missing_count"`
	MismatchCount      int `json:"mismatch_count"`
	TotalDiscrepancies int `json:"total_discrepancies"`
}

// SourceStats carries per-source ingestion diagnostics.
type SourceStats struct {
	Path                 string `json:"path,omitempty"`
	Present              bool   `json:"present"`
	StructureValid       bool   `json:"structure_valid"`
	StructureError       string `json:"structure_error,omitempty"`
	Rows                 int    `json:"rows"`
	SkippedNoIdentifier  int    `json:"skipped_no_identifier"`
	DuplicateIdentifiers int    `json:"duplicate_identifiers"`
}

// AuditReport is the top-level output of one audit run.
type AuditReport struct {
	AuditID     string               `json:"audit_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	SourceA     SourceStats          `json:"source_a"`
	SourceB     SourceStats          `json:"source_b"`
	Rows        []ReconciliationRow  `json:"rows"`
	GapSummary  []CategoryGapSummary `json:"gap_summary"`
	Assessment  ConformityAssessment `json:"assessment"`
}
