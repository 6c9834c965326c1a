package pipeline

import "indicator-engine/internal/domain"

// Warning is a non-fatal diagnostic. A warning with an empty RecordID
// concerns the batch (for example a rate-table issue), not one item.
type Warning struct {
	RecordID string `json:"recordId,omitempty"`
	Message  string `json:"message"`
}

// ItemError is a per-item failure. The offending item is excluded from
// Data; the rest of the batch always completes.
type ItemError struct {
	RecordID string `json:"recordId"`
	Type     string `json:"type"`
	Message  string `json:"message"`
}

// Error types used in ItemError.Type.
const (
	ErrorTypeMissingRate   = "missing_rate"
	ErrorTypeInvalidRate   = "invalid_rate"
	ErrorTypeUnknownPeriod = "unknown_period"
	ErrorTypeProcessing    = "processing"
)

// Result is the outcome of one pipeline run.
type Result struct {
	RunID string `json:"runId"`

	// Data holds successfully normalized records, in input order.
	Data []domain.NormalizedRecord `json:"data"`

	// IncompatibleUnits holds records filtered out by the strict
	// peer-group unit check. Empty unless strict mode is on.
	IncompatibleUnits []domain.NormalizedRecord `json:"incompatibleUnits,omitempty"`

	Warnings []Warning   `json:"warnings,omitempty"`
	Errors   []ItemError `json:"errors,omitempty"`

	// Corrections is the audit trail of auto-corrected FX rates.
	// Silently applied corrections would be indistinguishable from clean
	// input, so every correction is surfaced here.
	Corrections []domain.RateCorrection `json:"corrections,omitempty"`
}
