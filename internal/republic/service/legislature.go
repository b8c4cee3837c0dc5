package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"republic/internal/republic/models"
	"republic/pkg/domain"
)

// DebateSide selects which column of the debate a point belongs to.
type DebateSide string

const (
	DebateSidePro DebateSide = "pro"
	DebateSideCon DebateSide = "con"
)

// ProposeBill drafts a new bill carrying the next legislative record number.
// The sequence counter never resets, even across year boundaries.
func (s *Service) ProposeBill(ctx context.Context, title, description, department string) *models.Document {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if title == "" {
			return false
		}
		seq := doc.Legislature.NextBillNum
		number := domain.GenerateNumber(domain.PrefixBill, now.Year(), seq)
		bill := models.NewBill(domain.NewBillID(), number, title, description, department, now)
		doc.Legislature.Bills = append([]*models.Bill{bill}, doc.Legislature.Bills...)
		doc.Legislature.NextBillNum = seq + 1
		journal(doc, models.ActivityLegislature, "📜",
			fmt.Sprintf("Drafted Bill %s: %s", number, title), now)
		if s.metrics != nil {
			s.metrics.IncrementBillsProposed()
		}
		return true
	})
}

// AdvanceBill moves a bill one pipeline stage forward: draft → proposed or
// proposed → deliberation (opening an empty parliament session). Any other
// status is a no-op.
func (s *Service) AdvanceBill(ctx context.Context, billID domain.BillID) *models.Document {
	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		bill := doc.FindBill(billID)
		if bill == nil || !bill.CanAdvance() {
			return false
		}
		switch bill.ApplyAdvance() {
		case models.BillStatusProposed:
			journal(doc, models.ActivityLegislature, "📜",
				fmt.Sprintf("Proposed Bill %s: %s", bill.Number, bill.Title), now)
		case models.BillStatusDeliberation:
			journal(doc, models.ActivityLegislature, "🏛️",
				fmt.Sprintf("Parliament Session opened for %s: %s", bill.Number, bill.Title), now)
		}
		return true
	})
}

// AddDebatePoint records an argument on one side of an open session.
// Only permitted once the debate exists; not journaled.
func (s *Service) AddDebatePoint(ctx context.Context, billID domain.BillID, side DebateSide, text string) *models.Document {
	text = strings.TrimSpace(text)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if text == "" {
			return false
		}
		bill := doc.FindBill(billID)
		if bill == nil || bill.Debate == nil {
			return false
		}
		point := models.DebatePoint{ID: domain.NewPointID(), Text: text, AddedDate: now}
		if side == DebateSidePro {
			bill.Debate.Pros = append(bill.Debate.Pros, point)
		} else {
			bill.Debate.Cons = append(bill.Debate.Cons, point)
		}
		return true
	})
}

// RemoveDebatePoint withdraws an argument from an open session. Not journaled.
func (s *Service) RemoveDebatePoint(ctx context.Context, billID domain.BillID, side DebateSide, pointID domain.PointID) *models.Document {
	return s.mutate(ctx, func(doc *models.Document, _ time.Time) bool {
		bill := doc.FindBill(billID)
		if bill == nil || bill.Debate == nil {
			return false
		}
		points := &bill.Debate.Cons
		if side == DebateSidePro {
			points = &bill.Debate.Pros
		}
		for i, p := range *points {
			if p.ID == pointID {
				*points = append((*points)[:i], (*points)[i+1:]...)
				return true
			}
		}
		return false
	})
}

// ConcludeDebate closes the parliament session. An enact decision enacts the
// law; any other decision rejects the bill. The conclusion, decision, and
// decided date are always recorded on the debate.
func (s *Service) ConcludeDebate(ctx context.Context, billID domain.BillID, decision models.DebateDecision, conclusion string) *models.Document {
	conclusion = strings.TrimSpace(conclusion)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		bill := doc.FindBill(billID)
		if bill == nil || !bill.InDeliberation() {
			return false
		}
		bill.ApplyConclusion(decision, conclusion, now)
		if bill.Status == models.BillStatusEnacted {
			journal(doc, models.ActivityLegislature, "✅",
				fmt.Sprintf("Parliament enacted Law %s: %s", bill.Number, bill.Title), now)
			if s.metrics != nil {
				s.metrics.IncrementBillsEnacted()
			}
		} else {
			journal(doc, models.ActivityLegislature, "❌",
				fmt.Sprintf("Parliament rejected Bill %s: %s", bill.Number, bill.Title), now)
		}
		return true
	})
}

// AmendBillText edits a bill's title and description mid-flight.
func (s *Service) AmendBillText(ctx context.Context, billID domain.BillID, title, description string) *models.Document {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if title == "" {
			return false
		}
		bill := doc.FindBill(billID)
		if bill == nil {
			return false
		}
		bill.Title = title
		bill.Description = description
		journal(doc, models.ActivityLegislature, "✏️",
			fmt.Sprintf("Amended Bill %s during session", bill.Number), now)
		return true
	})
}

// RepealBill retires an enacted law. A reason is required; repeal from any
// status other than enacted is a no-op.
func (s *Service) RepealBill(ctx context.Context, billID domain.BillID, reason string) *models.Document {
	reason = strings.TrimSpace(reason)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if reason == "" {
			return false
		}
		bill := doc.FindBill(billID)
		if bill == nil || !bill.CanRepeal() {
			return false
		}
		bill.ApplyRepeal(reason, now)
		journal(doc, models.ActivityLegislature, "📜",
			fmt.Sprintf("Repealed Law %s: %s", bill.Number, bill.Title), now)
		return true
	})
}
