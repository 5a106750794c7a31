package constants

// InvoiceStatus is the canonical lifecycle status for rows in invoices.
type InvoiceStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    InvoiceStatus = "pending"    // created at upload, not yet claimed
	StatusProcessing InvoiceStatus = "processing" // pipeline holds the lease
	StatusProcessed  InvoiceStatus = "processed"  // extraction + validation succeeded
	StatusApproved   InvoiceStatus = "approved"   // user approved
	StatusPaid       InvoiceStatus = "paid"       // payment recorded, terminal
	StatusRejected   InvoiceStatus = "rejected"   // fatal failure or user rejection, terminal
	StatusDuplicate  InvoiceStatus = "duplicate"  // exact duplicate of an earlier invoice, terminal
)

// AllStatuses lists every legal invoice status.
var AllStatuses = []InvoiceStatus{
	StatusPending,
	StatusProcessing,
	StatusProcessed,
	StatusApproved,
	StatusPaid,
	StatusRejected,
	StatusDuplicate,
}

// IsTerminal reports whether no transition is defined out of s.
func (s InvoiceStatus) IsTerminal() bool {
	return s == StatusPaid || s == StatusRejected || s == StatusDuplicate
}

// Valid reports whether s is a member of the defined status set.
func (s InvoiceStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// StatusValues returns the status set as plain strings for schema validators.
func StatusValues() []string {
	out := make([]string, len(AllStatuses))
	for i, s := range AllStatuses {
		out[i] = string(s)
	}
	return out
}

// Stage names the pipeline stage a processing-log entry belongs to.
type Stage string

const (
	StageTextExtraction   Stage = "text_extraction"
	StageAIExtraction     Stage = "ai_extraction"
	StageVendorResolution Stage = "vendor_resolution"
	StageDuplicateCheck   Stage = "duplicate_check"
	StageValidation       Stage = "validation"
	StageTransition       Stage = "status_transition"
)

// StageValues returns the stage set as plain strings for schema validators.
func StageValues() []string {
	return []string{
		string(StageTextExtraction),
		string(StageAIExtraction),
		string(StageVendorResolution),
		string(StageDuplicateCheck),
		string(StageValidation),
		string(StageTransition),
	}
}

// LogStatus is the outcome recorded on a processing-log entry.
type LogStatus string

const (
	LogSuccess LogStatus = "success"
	LogFailure LogStatus = "failure"
	LogRetry   LogStatus = "retry"
)

// LogStatusValues returns the outcome set as plain strings for schema validators.
func LogStatusValues() []string {
	return []string{string(LogSuccess), string(LogFailure), string(LogRetry)}
}
