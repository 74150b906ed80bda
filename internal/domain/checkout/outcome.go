// internal/domain/checkout/outcome.go
package checkout

import (
	"time"
)

// State represents a stage of the checkout state machine
type State string

const (
	StateIdle              State = "idle"
	StateValidating        State = "validating"
	StateProcessingPayment State = "processing_payment"
	StateCreatingOrder     State = "creating_order"
	StateSucceeded         State = "succeeded"
	StateFailed            State = "failed"
)

// FailureReason classifies a terminal checkout failure
type FailureReason string

const (
	// FailureValidation: user input failed a local rule. Recoverable by
	// correcting input; no external call has been made.
	FailureValidation FailureReason = "validation_failure"

	// FailurePayment: the payment gateway rejected or errored. The whole
	// attempt may be retried; no order exists.
	FailurePayment FailureReason = "payment_failure"

	// FailureOrderCreation: payment nominally succeeded but the order
	// was not recorded. Not safely retryable without idempotency on the
	// caller's side; money may have moved without a confirmed order.
	FailureOrderCreation FailureReason = "order_creation_failure"

	// FailureCancelled: the attempt was cancelled between steps before
	// the next collaborator was invoked.
	FailureCancelled FailureReason = "cancelled"
)

// Failure describes why a checkout attempt terminated in StateFailed
type Failure struct {
	Reason FailureReason `json:"reason"`
	Field  string        `json:"field,omitempty"` // set for validation failures
	Detail string        `json:"detail,omitempty"`
	At     State         `json:"at"` // state the attempt failed in
}

// Outcome is the terminal result of one checkout attempt. Exactly one
// of the success fields or Failure is populated.
type Outcome struct {
	State     State     `json:"state"`
	OrderID   string    `json:"order_id,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Failure   *Failure  `json:"failure,omitempty"`
}

// Succeeded reports whether the attempt reached StateSucceeded
func (o *Outcome) Succeeded() bool {
	return o.State == StateSucceeded
}

func succeeded(orderID string, ts time.Time) *Outcome {
	return &Outcome{
		State:     StateSucceeded,
		OrderID:   orderID,
		Timestamp: ts,
	}
}

func failed(at State, reason FailureReason, field, detail string) *Outcome {
	return &Outcome{
		State: StateFailed,
		Failure: &Failure{
			Reason: reason,
			Field:  field,
			Detail: detail,
			At:     at,
		},
	}
}
