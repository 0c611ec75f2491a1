package domain

// Record is one raw row from a source file, before normalization.
type Record struct {
	Identifier string            `json:"identifier"`
	Category   string            `json:"category"`
	RawFields  map[string]string `json:"raw_fields,omitempty"`
}

// NormalizedRecord is a Record after identifier and category normalization.
// Category holds the canonical tag when the synonym table matched, otherwise
// the trimmed/uppercased original with Unmapped set.
type NormalizedRecord struct {
	Identifier  string            `json:"identifier"`
	Category    string            `json:"category"`
	RawCategory string            `json:"raw_category"`
	Unmapped    bool              `json:"unmapped,omitempty"`
	RawFields   map[string]string `json:"raw_fields,omitempty"`
}

// HasIdentifier reports whether the record carries a usable join key.
// An identifier that trimmed down to nothing is absent, not an empty key.
func (r NormalizedRecord) HasIdentifier() bool {
	return r.Identifier != ""
}

// ColumnMapping declares where a source file keeps the join key and the
// category label. Column positions and names are resolved here, once, at
// ingestion; the reconciliation logic never sees column references.
type ColumnMapping struct {
	IdentifierColumn string `json:"identifier_column" yaml:"identifier_column"`
	CategoryColumn   string `json:"category_column" yaml:"category_column"`
}

// SourceData is the result of loading one source file. A missing file is not
// an error: Present is false and the audit surfaces it as a first-class
// status. Likewise a present file with a broken shape sets StructureValid
// false instead of failing the run.
type SourceData struct {
	Present        bool     `json:"present"`
	StructureValid bool     `json:"structure_valid"`
	StructureError string   `json:"structure_error,omitempty"`
	Records        []Record `json:"-"`
}
