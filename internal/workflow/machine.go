package workflow

import (
	"fmt"

	"github.com/paperpilot/invoicer/constants"
	"github.com/paperpilot/invoicer/internal/common"
)

// Event is a lifecycle trigger applied to an invoice's status.
type Event string

const (
	EventExtractionStarted Event = "extraction_started"
	EventProcessingOK      Event = "processing_succeeded"
	EventProcessingFailed  Event = "processing_failed"
	EventExactDuplicate    Event = "exact_duplicate_found"
	EventApprove           Event = "user_approved"
	EventReject            Event = "user_rejected"
	EventPaymentRecorded   Event = "payment_recorded"
	// EventReset is the only way back into pending; it clears extracted
	// fields but preserves the processing log.
	EventReset Event = "reset"
)

type key struct {
	from  constants.InvoiceStatus
	event Event
}

// transitions is the full legal transition table. paid, rejected and
// duplicate are terminal except for the explicit reset/retry path.
var transitions = map[key]constants.InvoiceStatus{
	{constants.StatusPending, EventExtractionStarted}:  constants.StatusProcessing,
	{constants.StatusProcessing, EventProcessingOK}:    constants.StatusProcessed,
	{constants.StatusProcessing, EventProcessingFailed}: constants.StatusRejected,
	{constants.StatusProcessed, EventExactDuplicate}:   constants.StatusDuplicate,
	{constants.StatusProcessed, EventApprove}:          constants.StatusApproved,
	{constants.StatusProcessed, EventReject}:           constants.StatusRejected,
	{constants.StatusApproved, EventPaymentRecorded}:   constants.StatusPaid,

	// Re-processing is permitted only through reset, never in place.
	{constants.StatusProcessed, EventReset}: constants.StatusPending,
	{constants.StatusApproved, EventReset}:  constants.StatusPending,
	{constants.StatusRejected, EventReset}:  constants.StatusPending,
}

// IllegalTransitionError reports an attempted transition not in the table.
// State is left unchanged by the caller; the attempt is always logged.
type IllegalTransitionError struct {
	From  constants.InvoiceStatus
	Event Event
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition: no edge from %q on %q", e.From, e.Event)
}

func (e *IllegalTransitionError) Unwrap() error { return common.ErrIllegalTransition }

// Next returns the status an invoice in from moves to on event.
func Next(from constants.InvoiceStatus, event Event) (constants.InvoiceStatus, error) {
	to, ok := transitions[key{from, event}]
	if !ok {
		return from, &IllegalTransitionError{From: from, Event: event}
	}
	return to, nil
}

// CanFire reports whether event is legal from the given status.
func CanFire(from constants.InvoiceStatus, event Event) bool {
	_, ok := transitions[key{from, event}]
	return ok
}

// Advancing reports whether a transition should emit an analytics event.
// Every terminal-or-advancing transition qualifies; reset does not.
func Advancing(event Event) bool {
	return event != EventReset
}

// Initial is the status every invoice is created in at upload.
func Initial() constants.InvoiceStatus { return constants.StatusPending }
