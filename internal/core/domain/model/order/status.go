package order

import (
	"fmt"

	"replenish/internal/pkg/errs"
)

// Status represents the lifecycle state of a replenishment order.
// It implements a state machine with guarded transitions so orders follow
// the branch/manager workflow in the correct sequence.
//
// State transitions:
//
//	UnderReview ──> ConfirmPending ──> ApprovedOrder ──> Arranging ──> Arranged
//	     ▲               │   ▲              │                               │
//	     │               │   └── RaisedIssue ◄──(requester raises issue)    │
//	     └──(initial)    │                                                  ▼
//	                     │                                        SentForPackaging
//	                     │                                                  │
//	                     ▼                                                  ▼
//	           (requester confirms)                               UnderPackaging
//	                                                                        │
//	       ClosedOrder ◄── ConfirmOrderReceived ◄── InTransit ◄─────────────┘
//
// A manager reply to a raised issue lands the order back in ConfirmPending so
// the requester re-confirms the possibly adjusted quantities. ClosedOrder is
// terminal and only reachable through the auto-close scheduler.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// UnderReview is the initial status: the order awaits a manager decision.
	UnderReview

	// ConfirmPending means a manager has set approved quantities and the
	// requester must confirm them.
	ConfirmPending

	// RaisedIssue means the requester raised a concern that blocks forward
	// progress until the manager replies.
	RaisedIssue

	// ApprovedOrder means the requester confirmed the approved quantities.
	ApprovedOrder

	// Arranging is the first fulfillment sub-stage.
	Arranging

	// Arranged means arrangement finished, proven by evidence attachments.
	Arranged

	// SentForPackaging means the goods were handed to packaging, with evidence.
	SentForPackaging

	// UnderPackaging means packaging is in progress.
	UnderPackaging

	// InTransit means the order was dispatched with tracking details.
	InTransit

	// ConfirmOrderReceived means the requester confirmed receipt; the
	// auto-close deadline is running.
	ConfirmOrderReceived

	// ClosedOrder is the terminal status, set by the auto-close scheduler.
	ClosedOrder
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		UnderReview:          "UnderReview",
		ConfirmPending:       "ConfirmPending",
		RaisedIssue:          "RaisedIssue",
		ApprovedOrder:        "ApprovedOrder",
		Arranging:            "Arranging",
		Arranged:             "Arranged",
		SentForPackaging:     "SentForPackaging",
		UnderPackaging:       "UnderPackaging",
		InTransit:            "InTransit",
		ConfirmOrderReceived: "ConfirmOrderReceived",
		ClosedOrder:          "ClosedOrder",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown and out-of-range values are rejected.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == ClosedOrder
}

// transition returns next when the status equals from, otherwise an
// InvalidStateError naming the attempted action.
func (s Status) transition(action string, from, next Status) (Status, error) {
	if s != from {
		return Unknown, errs.NewInvalidStateError(action, s.String())
	}
	return next, nil
}

// Approve transitions UnderReview -> ConfirmPending.
// Used when a manager sets approved quantities.
func (s Status) Approve() (Status, error) {
	return s.transition("approve", UnderReview, ConfirmPending)
}

// Confirm transitions ConfirmPending -> ApprovedOrder.
// Used when the requester accepts the approved quantities.
func (s Status) Confirm() (Status, error) {
	return s.transition("confirm", ConfirmPending, ApprovedOrder)
}

// RaiseIssue transitions ConfirmPending or ApprovedOrder -> RaisedIssue.
// An issue blocks forward progress until the manager replies.
func (s Status) RaiseIssue() (Status, error) {
	if s != ConfirmPending && s != ApprovedOrder {
		return Unknown, errs.NewInvalidStateError("raise an issue on", s.String())
	}
	return RaisedIssue, nil
}

// ReplyToIssue transitions RaisedIssue -> ConfirmPending. The requester must
// then re-confirm the possibly adjusted quantities.
func (s Status) ReplyToIssue() (Status, error) {
	return s.transition("reply to an issue on", RaisedIssue, ConfirmPending)
}

// StartArranging transitions ApprovedOrder -> Arranging.
func (s Status) StartArranging() (Status, error) {
	return s.transition("start arranging", ApprovedOrder, Arranging)
}

// MarkArranged transitions Arranging -> Arranged. The caller must supply
// evidence; the aggregate enforces that rule.
func (s Status) MarkArranged() (Status, error) {
	return s.transition("mark arranged", Arranging, Arranged)
}

// SendForPackaging transitions Arranged -> SentForPackaging.
func (s Status) SendForPackaging() (Status, error) {
	return s.transition("send for packaging", Arranged, SentForPackaging)
}

// StartPackaging transitions SentForPackaging -> UnderPackaging.
func (s Status) StartPackaging() (Status, error) {
	return s.transition("start packaging", SentForPackaging, UnderPackaging)
}

// Dispatch transitions UnderPackaging -> InTransit. Tracking details and
// evidence are required by the aggregate.
func (s Status) Dispatch() (Status, error) {
	return s.transition("dispatch", UnderPackaging, InTransit)
}

// ConfirmReceived transitions InTransit -> ConfirmOrderReceived and starts
// the auto-close deadline.
func (s Status) ConfirmReceived() (Status, error) {
	return s.transition("confirm receipt of", InTransit, ConfirmOrderReceived)
}

// Close transitions ConfirmOrderReceived -> ClosedOrder. Only the auto-close
// scheduler performs this transition; manual close is not exposed.
func (s Status) Close() (Status, error) {
	return s.transition("close", ConfirmOrderReceived, ClosedOrder)
}
