package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "republic/pkg/domain"
)

func TestCloneIsDeep(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	lawID := id.NewBillID()
	sentence := "extra workout"

	doc := DefaultDocument()
	doc.Republic = Republic{Name: "Atlantis", FoundedDate: &now, SetupComplete: true}
	doc.Constitution.Preamble = "We the citizen"

	article := NewArticle(id.NewArticleID(), 1, "Health first", "body", now)
	amendment := NewAmendment(id.NewArticleID(), 2, "Health above all", "body", article.ID, now)
	doc.Constitution.Articles = []*Article{article, amendment}

	bill := NewBill(id.NewBillID(), "LR-2025-001", "No phone in bed", "", "health", now)
	bill.ApplyAdvance()
	bill.ApplyAdvance()
	bill.Debate.Pros = append(bill.Debate.Pros, DebatePoint{ID: id.NewPointID(), Text: "sleep", AddedDate: now})
	bill.ApplyConclusion(DebateDecisionEnact, "clear win", now)
	doc.Legislature.Bills = []*Bill{bill}

	c := NewCase(id.NewCaseID(), "CR-2025-001", "Skipped gym", "", &lawID, "health", now)
	c.ApplyVerdict(VerdictGuilty, "breach", sentence, now)
	doc.Judiciary.Cases = []*Case{c}

	order := NewOrder(id.NewOrderID(), "EO-2025-001", "Ship it", "career", PriorityHigh, &now, now)
	doc.Executive.Orders = []*Order{order}

	doc.Activity = []ActivityEntry{NewActivityEntry(ActivityRepublic, "🏛️", "Founded", now)}

	clone := doc.Clone()

	// Mutate the clone everywhere pointers could alias.
	clone.Republic.Name = "tampered"
	*clone.Republic.FoundedDate = now.Add(time.Hour)
	clone.Constitution.Articles[0].Title = "tampered"
	*clone.Constitution.Articles[1].AmendmentOf = id.NewArticleID()
	clone.Legislature.Bills[0].Debate.Pros[0].Text = "tampered"
	*clone.Legislature.Bills[0].EnactedDate = now.Add(time.Hour)
	*clone.Judiciary.Cases[0].Sentence = "tampered"
	*clone.Judiciary.Cases[0].RelatedLawID = id.NewBillID()
	*clone.Executive.Orders[0].Deadline = now.Add(time.Hour)
	clone.Activity[0].Text = "tampered"

	assert.Equal(t, "Atlantis", doc.Republic.Name)
	assert.True(t, doc.Republic.FoundedDate.Equal(now))
	assert.Equal(t, "Health first", doc.Constitution.Articles[0].Title)
	assert.Equal(t, article.ID, *doc.Constitution.Articles[1].AmendmentOf)
	assert.Equal(t, "sleep", doc.Legislature.Bills[0].Debate.Pros[0].Text)
	assert.True(t, doc.Legislature.Bills[0].EnactedDate.Equal(now))
	assert.Equal(t, sentence, *doc.Judiciary.Cases[0].Sentence)
	assert.Equal(t, lawID, *doc.Judiciary.Cases[0].RelatedLawID)
	assert.True(t, doc.Executive.Orders[0].Deadline.Equal(now))
	assert.Equal(t, "Founded", doc.Activity[0].Text)
}

func TestWithDefaults(t *testing.T) {
	t.Run("fills missing sections", func(t *testing.T) {
		doc := (&Document{}).WithDefaults()

		assert.NotNil(t, doc.Constitution.Articles)
		assert.NotNil(t, doc.Legislature.Bills)
		assert.NotNil(t, doc.Judiciary.Cases)
		assert.NotNil(t, doc.Executive.Orders)
		assert.NotNil(t, doc.Activity)
		assert.Equal(t, 1, doc.Legislature.NextBillNum)
		assert.Equal(t, 1, doc.Judiciary.NextCaseNum)
		assert.Equal(t, 1, doc.Executive.NextOrderNum)
	})

	t.Run("keeps populated sections", func(t *testing.T) {
		now := time.Now()
		in := &Document{
			Legislature: Legislature{
				Bills:       []*Bill{NewBill(id.NewBillID(), "LR-2025-004", "t", "", "health", now)},
				NextBillNum: 5,
			},
		}

		doc := in.WithDefaults()
		require.Len(t, doc.Legislature.Bills, 1)
		assert.Equal(t, 5, doc.Legislature.NextBillNum)
		assert.Equal(t, 1, doc.Executive.NextOrderNum)
	})
}

func TestPrependActivity(t *testing.T) {
	now := time.Now()

	t.Run("newest first without mutating the input", func(t *testing.T) {
		journal := []ActivityEntry{NewActivityEntry(ActivityRepublic, "", "old", now)}
		out := PrependActivity(journal, NewActivityEntry(ActivityRepublic, "", "new", now))

		require.Len(t, out, 2)
		assert.Equal(t, "new", out[0].Text)
		assert.Equal(t, "old", out[1].Text)
		assert.Equal(t, "old", journal[0].Text)
		assert.Len(t, journal, 1)
	})

	t.Run("truncates at the limit", func(t *testing.T) {
		journal := []ActivityEntry{}
		for i := 0; i < ActivityLimit; i++ {
			journal = PrependActivity(journal, NewActivityEntry(ActivityRepublic, "", "filler", now))
		}
		out := PrependActivity(journal, NewActivityEntry(ActivityRepublic, "", "newest", now))

		assert.Len(t, out, ActivityLimit)
		assert.Equal(t, "newest", out[0].Text)
	})
}

func TestBillStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BillStatus
		allowed  bool
	}{
		{BillStatusDraft, BillStatusProposed, true},
		{BillStatusDraft, BillStatusDeliberation, false},
		{BillStatusProposed, BillStatusDeliberation, true},
		{BillStatusDeliberation, BillStatusEnacted, true},
		{BillStatusDeliberation, BillStatusRejected, true},
		{BillStatusEnacted, BillStatusRepealed, true},
		{BillStatusEnacted, BillStatusDraft, false},
		{BillStatusRejected, BillStatusRepealed, false},
		{BillStatusRepealed, BillStatusEnacted, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	for _, target := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled, OrderStatusExpired} {
		assert.True(t, OrderStatusActive.CanTransitionTo(target))
	}
	for _, from := range []OrderStatus{OrderStatusCompleted, OrderStatusCancelled, OrderStatusExpired} {
		for _, target := range []OrderStatus{OrderStatusActive, OrderStatusCompleted, OrderStatusCancelled, OrderStatusExpired} {
			assert.False(t, from.CanTransitionTo(target), "%s -> %s", from, target)
		}
	}
}

func TestVerdictPredicates(t *testing.T) {
	assert.False(t, VerdictPending.IsResolved())
	assert.False(t, Verdict("bogus").IsResolved())
	assert.True(t, VerdictGuilty.IsResolved())
	assert.False(t, VerdictGuilty.IsFavorable())
	assert.True(t, VerdictNotGuilty.IsFavorable())
	assert.True(t, VerdictPardoned.IsFavorable())
}

func TestNextBillAction(t *testing.T) {
	require.NotNil(t, NextBillAction(BillStatusDraft))
	assert.Equal(t, "Propose", NextBillAction(BillStatusDraft).Label)
	require.NotNil(t, NextBillAction(BillStatusProposed))
	assert.Equal(t, "Open Session", NextBillAction(BillStatusProposed).Label)
	assert.Nil(t, NextBillAction(BillStatusDeliberation))
	assert.Nil(t, NextBillAction(BillStatusEnacted))
}

func TestOrderIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	overdue := NewOrder(id.NewOrderID(), "EO-2025-001", "t", "d", PriorityStandard, &past, now.Add(-2*time.Hour))
	assert.True(t, overdue.IsOverdue(now))

	notDue := NewOrder(id.NewOrderID(), "EO-2025-002", "t", "d", PriorityStandard, &future, now)
	assert.False(t, notDue.IsOverdue(now))

	noDeadline := NewOrder(id.NewOrderID(), "EO-2025-003", "t", "d", PriorityStandard, nil, now)
	assert.False(t, noDeadline.IsOverdue(now))

	overdue.ApplyCompletion(now)
	assert.False(t, overdue.IsOverdue(now))
}
