package usecase

import (
	"context"

	"pladria/internal/domain"
)

// RecordRepository defines the interface for loading source records.
// The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go RecordRepository
type RecordRepository interface {
	// GetSourceRecords loads one source file. A missing file or a broken
	// shape is reported inside SourceData, not as an error; errors are
	// reserved for real I/O failures.
	GetSourceRecords(ctx context.Context, path string, mapping domain.ColumnMapping) (domain.SourceData, error)
}
