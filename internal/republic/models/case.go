package models

import (
	"time"

	id "republic/pkg/domain"
)

// Verdict is the judicial outcome of a case. Pending is the only
// non-terminal value; a verdict is issued once and never revisited.
type Verdict string

const (
	VerdictPending   Verdict = "pending"
	VerdictGuilty    Verdict = "guilty"
	VerdictNotGuilty Verdict = "not-guilty"
	VerdictPardoned  Verdict = "pardoned"
)

func (v Verdict) IsValid() bool {
	switch v {
	case VerdictPending, VerdictGuilty, VerdictNotGuilty, VerdictPardoned:
		return true
	}
	return false
}

// IsResolved reports whether a verdict has been issued.
func (v Verdict) IsResolved() bool {
	return v != VerdictPending && v.IsValid()
}

// IsFavorable reports whether the verdict counts toward law adherence.
func (v Verdict) IsFavorable() bool {
	return v == VerdictNotGuilty || v == VerdictPardoned
}

// Label returns the display name for the verdict.
func (v Verdict) Label() string {
	switch v {
	case VerdictPending:
		return "Pending"
	case VerdictGuilty:
		return "Guilty"
	case VerdictNotGuilty:
		return "Not Guilty"
	case VerdictPardoned:
		return "Pardoned"
	}
	return string(v)
}

// Case is an accountability incident filed by the citizen against themselves.
//
// Invariants:
//   - Verdict transitions pending → {guilty, not-guilty, pardoned} exactly once
//   - Only guilty verdicts carry a non-nil sentence; any sentence supplied
//     with another verdict is discarded
//   - RelatedLawID references a bill by id only, nil when the case cites no law
type Case struct {
	ID                id.CaseID  `json:"id"`
	Number            string     `json:"number"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	RelatedLawID      *id.BillID `json:"relatedLawId"`
	Department        string     `json:"department"`
	FiledDate         time.Time  `json:"filedDate"`
	Verdict           Verdict    `json:"verdict"`
	VerdictDate       *time.Time `json:"verdictDate"`
	VerdictNotes      string     `json:"verdictNotes"`
	Sentence          *string    `json:"sentence"`
	SentenceCompleted bool       `json:"sentenceCompleted"`
}

// NewCase constructs a pending case carrying the next official number.
func NewCase(caseID id.CaseID, number, title, description string, relatedLawID *id.BillID, department string, now time.Time) *Case {
	return &Case{
		ID:           caseID,
		Number:       number,
		Title:        title,
		Description:  description,
		RelatedLawID: relatedLawID,
		Department:   department,
		FiledDate:    now,
		Verdict:      VerdictPending,
	}
}

// CanResolve reports whether the case is still awaiting a verdict.
func (c *Case) CanResolve() bool {
	return c.Verdict == VerdictPending
}

// ApplyVerdict records the terminal verdict. The sentence is kept only for
// guilty verdicts regardless of what the caller supplied.
func (c *Case) ApplyVerdict(verdict Verdict, notes, sentence string, now time.Time) {
	c.Verdict = verdict
	c.VerdictDate = &now
	c.VerdictNotes = notes
	if verdict == VerdictGuilty {
		c.Sentence = &sentence
	} else {
		c.Sentence = nil
	}
}

// ApplySentenceCompletion marks the sentence served. The original tracker
// never checked that a sentence exists; that permissive behavior is kept, so
// the call is an unconditional idempotent set.
func (c *Case) ApplySentenceCompletion() {
	c.SentenceCompleted = true
}
