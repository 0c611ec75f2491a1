package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"pladria/internal/domain"
	"pladria/internal/logging"
)

// CSVRecordRepository implements the RecordRepository interface for CSV
// exports. Column positions are resolved from the header once, per the
// declared ColumnMapping; the rest of the row travels as raw fields.
type CSVRecordRepository struct {
	log *slog.Logger
}

// NewCSVRecordRepository creates a new repository instance.
func NewCSVRecordRepository() *CSVRecordRepository {
	return &CSVRecordRepository{log: logging.New("gateway")}
}

// GetSourceRecords reads one source file. A file that does not exist comes
// back as Present=false, and a header missing the mapped columns as
// StructureValid=false; neither is an error. Errors are reserved for real
// I/O and parse failures.
func (r *CSVRecordRepository) GetSourceRecords(ctx context.Context, path string, mapping domain.ColumnMapping) (domain.SourceData, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		r.log.Warn("source file not found", "path", path)
		return domain.SourceData{Present: false}, nil
	}
	if err != nil {
		return domain.SourceData{}, fmt.Errorf("failed to open source file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return domain.SourceData{Present: true, StructureValid: false, StructureError: "file is empty"}, nil
	}
	if err != nil {
		return domain.SourceData{}, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	idCol := findColumn(header, mapping.IdentifierColumn)
	catCol := findColumn(header, mapping.CategoryColumn)
	if idCol < 0 || catCol < 0 {
		var missing []string
		if idCol < 0 {
			missing = append(missing, mapping.IdentifierColumn)
		}
		if catCol < 0 {
			missing = append(missing, mapping.CategoryColumn)
		}
		return domain.SourceData{
			Present:        true,
			StructureValid: false,
			StructureError: fmt.Sprintf("required columns missing: %s", strings.Join(missing, ", ")),
		}, nil
	}

	var records []domain.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.SourceData{}, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		rec := domain.Record{RawFields: make(map[string]string)}
		for i, v := range row {
			if i >= len(header) {
				break
			}
			switch i {
			case idCol:
				rec.Identifier = v
			case catCol:
				rec.Category = v
			default:
				rec.RawFields[header[i]] = v
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return domain.SourceData{
			Present:        true,
			StructureValid: false,
			StructureError: "no data rows",
		}, nil
	}

	r.log.Info("source loaded", "path", path, "rows", len(records))
	return domain.SourceData{Present: true, StructureValid: true, Records: records}, nil
}

// findColumn resolves a column name against the header, case-insensitively
// and ignoring surrounding whitespace.
func findColumn(header []string, name string) int {
	want := strings.ToUpper(strings.TrimSpace(name))
	for i, h := range header {
		if strings.ToUpper(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return -1
}
