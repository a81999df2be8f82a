package usecase

// RawRecord is one loosely-typed row of an upload, as produced by the payload codec.
type RawRecord = map[string]any

// SkipReason explains why a row of a batch was not written.
type SkipReason string

// Skip reasons reported in upload diagnostics.
const (
	SkipInvalidRecord       SkipReason = "invalid_record"
	SkipPersonNotFound      SkipReason = "person_not_found"
	SkipSenderNotFound      SkipReason = "sender_not_found"
	SkipRecipientNotFound   SkipReason = "recipient_not_found"
	SkipDuplicateExternalID SkipReason = "duplicate_external_id"
	SkipStorageError        SkipReason = "storage_error"
)

// SkippedRow describes a row left out of a committed batch.
type SkippedRow struct {
	Index  int        `json:"index"`            // Zero-based position in the upload.
	Reason SkipReason `json:"reason"`           // Machine-readable cause.
	Key    string     `json:"key,omitempty"`    // Identifying value of the row (email, phone, external id, identifiers).
	Detail string     `json:"detail,omitempty"` // Human-readable explanation.
}

// BatchResult is the outcome of one upload. Succeeded keeps input order and omits skipped rows.
type BatchResult[T any] struct {
	Received  int          `json:"received"`
	Succeeded []T          `json:"records"`
	Skipped   []SkippedRow `json:"skipped"`
}
