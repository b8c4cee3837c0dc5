package models

import (
	"time"

	id "republic/pkg/domain"
)

// BillStatus is the legislative pipeline stage of a bill.
type BillStatus string

const (
	BillStatusDraft        BillStatus = "draft"
	BillStatusProposed     BillStatus = "proposed"
	BillStatusDeliberation BillStatus = "deliberation"
	BillStatusEnacted      BillStatus = "enacted"
	BillStatusRejected     BillStatus = "rejected"
	BillStatusRepealed     BillStatus = "repealed"
)

func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusDraft, BillStatusProposed, BillStatusDeliberation,
		BillStatusEnacted, BillStatusRejected, BillStatusRepealed:
		return true
	}
	return false
}

// CanTransitionTo reports whether the legislative pipeline permits moving
// from s to target. Enacted and rejected are terminal except for
// enacted → repealed.
func (s BillStatus) CanTransitionTo(target BillStatus) bool {
	switch s {
	case BillStatusDraft:
		return target == BillStatusProposed
	case BillStatusProposed:
		return target == BillStatusDeliberation
	case BillStatusDeliberation:
		return target == BillStatusEnacted || target == BillStatusRejected
	case BillStatusEnacted:
		return target == BillStatusRepealed
	}
	return false
}

// Label returns the display name for the status.
func (s BillStatus) Label() string {
	switch s {
	case BillStatusDraft:
		return "Draft"
	case BillStatusProposed:
		return "Proposed"
	case BillStatusDeliberation:
		return "In Session"
	case BillStatusEnacted:
		return "Enacted"
	case BillStatusRejected:
		return "Rejected"
	case BillStatusRepealed:
		return "Repealed"
	}
	return string(s)
}

// DebateDecision is the outcome of a parliament session. Any decision other
// than enact rejects the bill.
type DebateDecision string

const (
	DebateDecisionEnact  DebateDecision = "enact"
	DebateDecisionReject DebateDecision = "reject"
)

// DebatePoint is a single argument raised during deliberation.
type DebatePoint struct {
	ID        id.PointID `json:"id"`
	Text      string     `json:"text"`
	AddedDate time.Time  `json:"addedDate"`
}

// Debate holds the deliberation record of a bill. Nil until the bill enters
// deliberation; conclusion fields stay empty until the session is decided.
type Debate struct {
	Pros        []DebatePoint  `json:"pros"`
	Cons        []DebatePoint  `json:"cons"`
	Conclusion  string         `json:"conclusion"`
	DecidedDate *time.Time     `json:"decidedDate"`
	Decision    DebateDecision `json:"decision,omitempty"`
}

// Bill is a proposed rule progressing through the legislative pipeline.
//
// Invariants:
//   - Status transitions follow BillStatus.CanTransitionTo
//   - Debate is nil until deliberation opens, never nil afterwards
//   - EnactedDate is set exactly when the bill is enacted
//   - Repeal requires a reason and is only valid from enacted
type Bill struct {
	ID           id.BillID  `json:"id"`
	Number       string     `json:"number"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Department   string     `json:"department"`
	Status       BillStatus `json:"status"`
	ProposedDate time.Time  `json:"proposedDate"`
	EnactedDate  *time.Time `json:"enactedDate"`
	RepealedDate *time.Time `json:"repealedDate"`
	RepealReason string     `json:"repealReason,omitempty"`
	Debate       *Debate    `json:"debate"`
}

// NewBill constructs a draft bill carrying the next official number.
func NewBill(billID id.BillID, number, title, description, department string, now time.Time) *Bill {
	return &Bill{
		ID:           billID,
		Number:       number,
		Title:        title,
		Description:  description,
		Department:   department,
		Status:       BillStatusDraft,
		ProposedDate: now,
	}
}

// CanAdvance reports whether the bill has a next pipeline stage. Only draft
// and proposed bills advance; everything else is a no-op.
func (b *Bill) CanAdvance() bool {
	return b.Status == BillStatusDraft || b.Status == BillStatusProposed
}

// ApplyAdvance moves the bill one stage forward and returns the new status.
// Entering deliberation initializes an empty debate record. Must only be
// called after CanAdvance returns true.
func (b *Bill) ApplyAdvance() BillStatus {
	switch b.Status {
	case BillStatusDraft:
		b.Status = BillStatusProposed
	case BillStatusProposed:
		b.Status = BillStatusDeliberation
		b.Debate = &Debate{Pros: []DebatePoint{}, Cons: []DebatePoint{}}
	}
	return b.Status
}

// InDeliberation reports whether the parliament session is open.
func (b *Bill) InDeliberation() bool {
	return b.Status == BillStatusDeliberation && b.Debate != nil
}

// ApplyConclusion records the session outcome. An enact decision enacts the
// bill and stamps EnactedDate; any other decision rejects it. The debate
// conclusion, decision, and decided date are always recorded.
func (b *Bill) ApplyConclusion(decision DebateDecision, conclusion string, now time.Time) {
	b.Debate.Conclusion = conclusion
	b.Debate.DecidedDate = &now
	b.Debate.Decision = decision
	if decision == DebateDecisionEnact {
		b.Status = BillStatusEnacted
		b.EnactedDate = &now
	} else {
		b.Status = BillStatusRejected
	}
}

// CanRepeal reports whether the bill is an enacted law.
func (b *Bill) CanRepeal() bool {
	return b.Status.CanTransitionTo(BillStatusRepealed)
}

// ApplyRepeal retires an enacted law, recording when and why.
func (b *Bill) ApplyRepeal(reason string, now time.Time) {
	b.Status = BillStatusRepealed
	b.RepealedDate = &now
	b.RepealReason = reason
}

// NextAction describes the advance affordance for a bill status, if any.
type NextAction struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// NextBillAction returns the advance affordance for the given status, or nil
// when the bill cannot advance.
func NextBillAction(s BillStatus) *NextAction {
	switch s {
	case BillStatusDraft:
		return &NextAction{Label: "Propose", Icon: "📤"}
	case BillStatusProposed:
		return &NextAction{Label: "Open Session", Icon: "🏛️"}
	}
	return nil
}
