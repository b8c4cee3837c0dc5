package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"republic/internal/republic/models"
	"republic/pkg/domain"
)

// FileCase opens an accountability case carrying the next court record
// number. The related law is an id reference, nil when no law is cited.
func (s *Service) FileCase(ctx context.Context, title, description string, relatedLawID *domain.BillID, department string) *models.Document {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if title == "" {
			return false
		}
		seq := doc.Judiciary.NextCaseNum
		number := domain.GenerateNumber(domain.PrefixCase, now.Year(), seq)
		c := models.NewCase(domain.NewCaseID(), number, title, description, relatedLawID, department, now)
		doc.Judiciary.Cases = append([]*models.Case{c}, doc.Judiciary.Cases...)
		doc.Judiciary.NextCaseNum = seq + 1
		journal(doc, models.ActivityJudiciary, "⚖️",
			fmt.Sprintf("Filed Case %s: %s", number, title), now)
		if s.metrics != nil {
			s.metrics.IncrementCasesFiled()
		}
		return true
	})
}

// IssueVerdict resolves a pending case. The verdict is terminal and never
// revisited; a sentence supplied with anything but a guilty verdict is
// discarded. An invalid or pending verdict value is a no-op.
func (s *Service) IssueVerdict(ctx context.Context, caseID domain.CaseID, verdict models.Verdict, notes, sentence string) *models.Document {
	notes = strings.TrimSpace(notes)
	sentence = strings.TrimSpace(sentence)

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if !verdict.IsResolved() {
			return false
		}
		c := doc.FindCase(caseID)
		if c == nil || !c.CanResolve() {
			return false
		}
		c.ApplyVerdict(verdict, notes, sentence, now)
		journal(doc, models.ActivityJudiciary, "⚖️",
			fmt.Sprintf("Verdict on %s: %s", c.Number, verdict.Label()), now)
		if s.metrics != nil {
			s.metrics.IncrementVerdicts(string(verdict))
		}
		return true
	})
}

// CompleteSentence marks the sentence served. Idempotent, not journaled, and
// deliberately permissive: the engine does not verify the case is guilty or
// that a sentence exists.
func (s *Service) CompleteSentence(ctx context.Context, caseID domain.CaseID) *models.Document {
	return s.mutate(ctx, func(doc *models.Document, _ time.Time) bool {
		c := doc.FindCase(caseID)
		if c == nil {
			return false
		}
		c.ApplySentenceCompletion()
		return true
	})
}
