package models

import (
	"time"

	id "republic/pkg/domain"
)

// Republic is the citizen's governance profile, created once via setup.
type Republic struct {
	Name          string     `json:"name"`
	Motto         string     `json:"motto"`
	FoundedDate   *time.Time `json:"foundedDate"`
	SetupComplete bool       `json:"setupComplete"`
}

// Constitution holds the preamble and the append-only article list.
type Constitution struct {
	Preamble string     `json:"preamble"`
	Articles []*Article `json:"articles"`
}

// Legislature holds bills plus the monotonically increasing bill counter.
// The counter is never reused: entries are only ever status-transitioned,
// never deleted.
type Legislature struct {
	Bills       []*Bill `json:"bills"`
	NextBillNum int     `json:"nextBillNum"`
}

// Judiciary holds cases plus the monotonically increasing case counter.
type Judiciary struct {
	Cases       []*Case `json:"cases"`
	NextCaseNum int     `json:"nextCaseNum"`
}

// Executive holds orders plus the monotonically increasing order counter.
type Executive struct {
	Orders       []*Order `json:"orders"`
	NextOrderNum int      `json:"nextOrderNum"`
}

// Document is the single root aggregate. It is owned exclusively by the
// service; collaborators only ever see deep-copy snapshots. All entity
// relationships are by id reference, never embedding.
type Document struct {
	Republic     Republic        `json:"republic"`
	Constitution Constitution    `json:"constitution"`
	Legislature  Legislature     `json:"legislature"`
	Judiciary    Judiciary       `json:"judiciary"`
	Executive    Executive       `json:"executive"`
	Activity     []ActivityEntry `json:"activity"`
}

// DefaultDocument returns the empty document shape: no entities, all
// counters at 1.
func DefaultDocument() *Document {
	return &Document{
		Constitution: Constitution{Articles: []*Article{}},
		Legislature:  Legislature{Bills: []*Bill{}, NextBillNum: 1},
		Judiciary:    Judiciary{Cases: []*Case{}, NextCaseNum: 1},
		Executive:    Executive{Orders: []*Order{}, NextOrderNum: 1},
		Activity:     []ActivityEntry{},
	}
}

// WithDefaults deep-merges a loaded document against the default shape so
// fields added after the document was persisted are always present. Each
// top-level section is defaulted independently; the activity journal is taken
// wholesale if present, defaulted otherwise.
func (d *Document) WithDefaults() *Document {
	out := *d
	if out.Constitution.Articles == nil {
		out.Constitution.Articles = []*Article{}
	}
	if out.Legislature.Bills == nil {
		out.Legislature.Bills = []*Bill{}
	}
	if out.Legislature.NextBillNum < 1 {
		out.Legislature.NextBillNum = 1
	}
	if out.Judiciary.Cases == nil {
		out.Judiciary.Cases = []*Case{}
	}
	if out.Judiciary.NextCaseNum < 1 {
		out.Judiciary.NextCaseNum = 1
	}
	if out.Executive.Orders == nil {
		out.Executive.Orders = []*Order{}
	}
	if out.Executive.NextOrderNum < 1 {
		out.Executive.NextOrderNum = 1
	}
	if out.Activity == nil {
		out.Activity = []ActivityEntry{}
	}
	return &out
}

// Clone returns a deep copy. Snapshots handed to collaborators and to the
// persistence saver must never alias the document the service keeps mutating.
func (d *Document) Clone() *Document {
	out := *d

	out.Constitution.Articles = make([]*Article, len(d.Constitution.Articles))
	for i, a := range d.Constitution.Articles {
		cp := *a
		if a.AmendmentOf != nil {
			ref := *a.AmendmentOf
			cp.AmendmentOf = &ref
		}
		out.Constitution.Articles[i] = &cp
	}

	out.Legislature.Bills = make([]*Bill, len(d.Legislature.Bills))
	for i, b := range d.Legislature.Bills {
		out.Legislature.Bills[i] = cloneBill(b)
	}

	out.Judiciary.Cases = make([]*Case, len(d.Judiciary.Cases))
	for i, c := range d.Judiciary.Cases {
		out.Judiciary.Cases[i] = cloneCase(c)
	}

	out.Executive.Orders = make([]*Order, len(d.Executive.Orders))
	for i, o := range d.Executive.Orders {
		out.Executive.Orders[i] = cloneOrder(o)
	}

	out.Activity = make([]ActivityEntry, len(d.Activity))
	copy(out.Activity, d.Activity)

	if d.Republic.FoundedDate != nil {
		t := *d.Republic.FoundedDate
		out.Republic.FoundedDate = &t
	}

	return &out
}

func cloneBill(b *Bill) *Bill {
	cp := *b
	cp.EnactedDate = cloneTime(b.EnactedDate)
	cp.RepealedDate = cloneTime(b.RepealedDate)
	if b.Debate != nil {
		debate := *b.Debate
		debate.Pros = make([]DebatePoint, len(b.Debate.Pros))
		copy(debate.Pros, b.Debate.Pros)
		debate.Cons = make([]DebatePoint, len(b.Debate.Cons))
		copy(debate.Cons, b.Debate.Cons)
		debate.DecidedDate = cloneTime(b.Debate.DecidedDate)
		cp.Debate = &debate
	}
	return &cp
}

func cloneCase(c *Case) *Case {
	cp := *c
	cp.VerdictDate = cloneTime(c.VerdictDate)
	if c.RelatedLawID != nil {
		ref := *c.RelatedLawID
		cp.RelatedLawID = &ref
	}
	if c.Sentence != nil {
		s := *c.Sentence
		cp.Sentence = &s
	}
	return &cp
}

func cloneOrder(o *Order) *Order {
	cp := *o
	cp.Deadline = cloneTime(o.Deadline)
	cp.CompletedDate = cloneTime(o.CompletedDate)
	return &cp
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// FindArticle returns the article with the given id, or nil.
func (d *Document) FindArticle(articleID id.ArticleID) *Article {
	for _, a := range d.Constitution.Articles {
		if a.ID == articleID {
			return a
		}
	}
	return nil
}

// FindBill returns the bill with the given id, or nil.
func (d *Document) FindBill(billID id.BillID) *Bill {
	for _, b := range d.Legislature.Bills {
		if b.ID == billID {
			return b
		}
	}
	return nil
}

// FindCase returns the case with the given id, or nil.
func (d *Document) FindCase(caseID id.CaseID) *Case {
	for _, c := range d.Judiciary.Cases {
		if c.ID == caseID {
			return c
		}
	}
	return nil
}

// FindOrder returns the order with the given id, or nil.
func (d *Document) FindOrder(orderID id.OrderID) *Order {
	for _, o := range d.Executive.Orders {
		if o.ID == orderID {
			return o
		}
	}
	return nil
}
