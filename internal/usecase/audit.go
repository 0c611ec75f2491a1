package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pladria/internal/domain"
	"pladria/internal/logging"
	"pladria/internal/taxonomy"
)

// AuditUseCase orchestrates one full audit: ingestion, normalization,
// indexing, reconciliation, gap summary and the conformity verdict.
type AuditUseCase struct {
	repo RecordRepository
	tax  *taxonomy.Taxonomy
	cfg  AssessmentConfig
	log  *slog.Logger
}

// NewAuditUseCase wires an audit usecase. A nil taxonomy falls back to the
// default Plan Adressage table.
func NewAuditUseCase(repo RecordRepository, tax *taxonomy.Taxonomy, cfg AssessmentConfig) *AuditUseCase {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &AuditUseCase{
		repo: repo,
		tax:  tax,
		cfg:  cfg,
		log:  logging.New("audit"),
	}
}

// RunAudit loads both sources and produces the complete audit report.
// Missing or malformed sources do not abort the run: they flow into the
// assessment as first-class KO reasons. Only real I/O or configuration
// failures return an error.
func (uc *AuditUseCase) RunAudit(ctx context.Context, pathA, pathB string, mapA, mapB domain.ColumnMapping) (*domain.AuditReport, error) {
	srcA, err := uc.repo.GetSourceRecords(ctx, pathA, mapA)
	if err != nil {
		return nil, fmt.Errorf("could not load source A: %w", err)
	}
	srcB, err := uc.repo.GetSourceRecords(ctx, pathB, mapB)
	if err != nil {
		return nil, fmt.Errorf("could not load source B: %w", err)
	}

	indexA := BuildIndex(NormalizeAll(srcA.Records, uc.tax))
	indexB := BuildIndex(NormalizeAll(srcB.Records, uc.tax))

	var rows []domain.ReconciliationRow
	if usable(srcA) && usable(srcB) {
		rows = Reconcile(indexA, indexB)
	} else {
		rows = []domain.ReconciliationRow{}
		uc.log.Warn("skipping reconciliation, source unusable",
			"source_a_present", srcA.Present, "source_b_present", srcB.Present,
			"source_a_valid", srcA.StructureValid, "source_b_valid", srcB.StructureValid)
	}

	assessment, err := Assess(rows, AssessmentInputs{
		SourceAPresent:        srcA.Present,
		SourceBPresent:        srcB.Present,
		SourceAStructureValid: !srcA.Present || srcA.StructureValid,
		SourceBStructureValid: !srcB.Present || srcB.StructureValid,
		DimensionErrorRates:   DimensionErrorRates(rows),
	}, uc.cfg)
	if err != nil {
		return nil, err
	}

	report := &domain.AuditReport{
		AuditID:     uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		SourceA:     sourceStats(pathA, srcA, indexA),
		SourceB:     sourceStats(pathB, srcB, indexB),
		Rows:        rows,
		GapSummary:  SummarizeByCategory(rows, uc.tax.Tags()),
		Assessment:  assessment,
	}

	uc.log.Info("audit complete",
		"audit_id", report.AuditID,
		"rows", len(rows),
		"status", assessment.Status,
		"conformity_pct", assessment.ConformityPercentage,
		"discrepancies", assessment.TotalDiscrepancies)
	return report, nil
}

func usable(src domain.SourceData) bool {
	return src.Present && src.StructureValid
}

func sourceStats(path string, src domain.SourceData, idx *SourceIndex) domain.SourceStats {
	return domain.SourceStats{
		Path:                 path,
		Present:              src.Present,
		StructureValid:       src.StructureValid,
		StructureError:       src.StructureError,
		Rows:                 len(src.Records),
		SkippedNoIdentifier:  idx.SkippedNoIdentifier(),
		DuplicateIdentifiers: len(idx.Duplicates()),
	}
}
