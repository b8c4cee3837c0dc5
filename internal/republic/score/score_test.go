package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"republic/internal/republic/models"
	id "republic/pkg/domain"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func resolvedCase(verdict models.Verdict) *models.Case {
	c := models.NewCase(id.NewCaseID(), "CR-2024-001", "Skipped workout", "", nil, "health", testNow)
	if verdict != models.VerdictPending {
		c.ApplyVerdict(verdict, "notes", "sentence", testNow)
	}
	return c
}

func orderWithStatus(status models.OrderStatus, issued time.Time) *models.Order {
	o := models.NewOrder(id.NewOrderID(), "EO-2024-001", "Morning run", "health", models.PriorityStandard, nil, issued)
	o.Status = status
	return o
}

func activeArticle(n int) *models.Article {
	return models.NewArticle(id.NewArticleID(), n, "Principle", "Body", testNow)
}

func enactedBill() *models.Bill {
	b := models.NewBill(id.NewBillID(), "LR-2024-001", "No sugar", "", "health", testNow)
	b.ApplyAdvance()
	b.ApplyAdvance()
	b.ApplyConclusion(models.DebateDecisionEnact, "", testNow)
	return b
}

func TestHealthScore(t *testing.T) {
	t.Run("empty document scores 75", func(t *testing.T) {
		// law adherence 100, order completion 100, coverage 0, activity 0,
		// diligence 100 → 35 + 30 + 0 + 0 + 10 = 75
		doc := models.DefaultDocument()
		assert.Equal(t, 75, HealthScore(doc, testNow))
	})

	t.Run("full marks in every factor scores 100", func(t *testing.T) {
		doc := models.DefaultDocument()
		for i := 1; i <= 5; i++ {
			doc.Constitution.Articles = append(doc.Constitution.Articles, activeArticle(i))
		}
		for i := 0; i < 3; i++ {
			doc.Legislature.Bills = append(doc.Legislature.Bills, enactedBill())
		}
		doc.Judiciary.Cases = append(doc.Judiciary.Cases, resolvedCase(models.VerdictNotGuilty))
		doc.Executive.Orders = append(doc.Executive.Orders, orderWithStatus(models.OrderStatusCompleted, testNow))
		assert.Equal(t, 100, HealthScore(doc, testNow))
	})

	t.Run("guilty verdicts drag law adherence down", func(t *testing.T) {
		doc := models.DefaultDocument()
		doc.Judiciary.Cases = append(doc.Judiciary.Cases,
			resolvedCase(models.VerdictGuilty),
			resolvedCase(models.VerdictNotGuilty),
		)
		b := ComputeBreakdown(doc, testNow)
		assert.InDelta(t, 50, b.LawAdherence, 0.001)
		// both cases resolved, so diligence stays perfect
		assert.InDelta(t, 100, b.JudicialDiligence, 0.001)
	})

	t.Run("pardoned counts as favorable", func(t *testing.T) {
		doc := models.DefaultDocument()
		doc.Judiciary.Cases = append(doc.Judiciary.Cases, resolvedCase(models.VerdictPardoned))
		b := ComputeBreakdown(doc, testNow)
		assert.InDelta(t, 100, b.LawAdherence, 0.001)
	})

	t.Run("pending cases lower diligence but not adherence", func(t *testing.T) {
		doc := models.DefaultDocument()
		doc.Judiciary.Cases = append(doc.Judiciary.Cases,
			resolvedCase(models.VerdictPending),
			resolvedCase(models.VerdictNotGuilty),
		)
		b := ComputeBreakdown(doc, testNow)
		assert.InDelta(t, 100, b.LawAdherence, 0.001)
		assert.InDelta(t, 50, b.JudicialDiligence, 0.001)
	})
}

func TestOrderCompletionWindow(t *testing.T) {
	t.Run("no recent orders scores 100", func(t *testing.T) {
		doc := models.DefaultDocument()
		old := testNow.Add(-31 * 24 * time.Hour)
		doc.Executive.Orders = append(doc.Executive.Orders, orderWithStatus(models.OrderStatusActive, old))
		b := ComputeBreakdown(doc, testNow)
		assert.InDelta(t, 100, b.OrderCompletion, 0.001)
	})

	t.Run("recent but undecided orders score neutral 50", func(t *testing.T) {
		doc := models.DefaultDocument()
		doc.Executive.Orders = append(doc.Executive.Orders, orderWithStatus(models.OrderStatusActive, testNow))
		b := ComputeBreakdown(doc, testNow)
		assert.InDelta(t, 50, b.OrderCompletion, 0.001)
	})

	t.Run("expired orders count against completion", func(t *testing.T) {
		doc := models.DefaultDocument()
		doc.Executive.Orders = append(doc.Executive.Orders,
			orderWithStatus(models.OrderStatusCompleted, testNow),
			orderWithStatus(models.OrderStatusExpired, testNow),
		)
		b := ComputeBreakdown(doc, testNow)
		assert.InDelta(t, 50, b.OrderCompletion, 0.001)
	})

	t.Run("cancelled orders are not decided", func(t *testing.T) {
		doc := models.DefaultDocument()
		doc.Executive.Orders = append(doc.Executive.Orders,
			orderWithStatus(models.OrderStatusCompleted, testNow),
			orderWithStatus(models.OrderStatusCancelled, testNow),
		)
		b := ComputeBreakdown(doc, testNow)
		assert.InDelta(t, 100, b.OrderCompletion, 0.001)
	})
}

func TestCoverageAndActivityTargets(t *testing.T) {
	t.Run("coverage caps at five active articles", func(t *testing.T) {
		doc := models.DefaultDocument()
		for i := 1; i <= 8; i++ {
			doc.Constitution.Articles = append(doc.Constitution.Articles, activeArticle(i))
		}
		b := ComputeBreakdown(doc, testNow)
		assert.InDelta(t, 100, b.ConstitutionCoverage, 0.001)
	})

	t.Run("amended articles do not count toward coverage", func(t *testing.T) {
		doc := models.DefaultDocument()
		a := activeArticle(1)
		a.ApplySupersession()
		doc.Constitution.Articles = append(doc.Constitution.Articles, a, activeArticle(2))
		b := ComputeBreakdown(doc, testNow)
		assert.InDelta(t, 20, b.ConstitutionCoverage, 0.001)
	})

	t.Run("activity caps at three enacted laws", func(t *testing.T) {
		doc := models.DefaultDocument()
		for i := 0; i < 2; i++ {
			doc.Legislature.Bills = append(doc.Legislature.Bills, enactedBill())
		}
		b := ComputeBreakdown(doc, testNow)
		assert.InDelta(t, 100.0*2/3, b.LegislativeActivity, 0.001)
	})
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Exemplary Republic"},
		{90, "Exemplary Republic"},
		{89, "Stable Democracy"},
		{70, "Stable Democracy"},
		{69, "Under Pressure"},
		{50, "Under Pressure"},
		{49, "State of Emergency"},
		{0, "State of Emergency"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.score).Name, "score %d", tt.score)
	}
}
