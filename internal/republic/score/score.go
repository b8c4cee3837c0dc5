// Package score derives analytics from the republic document. Every function
// is pure: given the same document and clock it always returns the same
// result, and nothing here ever mutates the document.
package score

import (
	"math"
	"time"

	"republic/internal/republic/models"
)

// Sub-score weights. They sum to 1.
const (
	weightLawAdherence         = 0.35
	weightOrderCompletion      = 0.30
	weightConstitutionCoverage = 0.15
	weightLegislativeActivity  = 0.10
	weightJudicialDiligence    = 0.10
)

// Coverage targets: five active articles and three enacted laws count as
// full marks.
const (
	fullCoverageArticles = 5
	fullActivityLaws     = 3
)

// recentOrderWindow bounds the order-completion sub-score to the trailing
// 30 days.
const recentOrderWindow = 30 * 24 * time.Hour

// Breakdown holds the five sub-scores, each already clamped to [0,100].
type Breakdown struct {
	LawAdherence         float64 `json:"lawAdherence"`
	OrderCompletion      float64 `json:"orderCompletion"`
	ConstitutionCoverage float64 `json:"constitutionCoverage"`
	LegislativeActivity  float64 `json:"legislativeActivity"`
	JudicialDiligence    float64 `json:"judicialDiligence"`
}

// HealthScore computes the weighted governance health score in [0,100].
func HealthScore(doc *models.Document, now time.Time) int {
	b := ComputeBreakdown(doc, now)
	weighted := b.LawAdherence*weightLawAdherence +
		b.OrderCompletion*weightOrderCompletion +
		b.ConstitutionCoverage*weightConstitutionCoverage +
		b.LegislativeActivity*weightLegislativeActivity +
		b.JudicialDiligence*weightJudicialDiligence
	return int(clamp(math.Round(weighted)))
}

// ComputeBreakdown computes the five sub-scores individually.
func ComputeBreakdown(doc *models.Document, now time.Time) Breakdown {
	return Breakdown{
		LawAdherence:         clamp(lawAdherence(doc.Judiciary.Cases)),
		OrderCompletion:      clamp(orderCompletion(doc.Executive.Orders, now)),
		ConstitutionCoverage: clamp(constitutionCoverage(doc.Constitution.Articles)),
		LegislativeActivity:  clamp(legislativeActivity(doc.Legislature.Bills)),
		JudicialDiligence:    clamp(judicialDiligence(doc.Judiciary.Cases)),
	}
}

// lawAdherence is the share of resolved cases with a favorable verdict.
// No resolved cases means no violations on record, which is a perfect score.
func lawAdherence(cases []*models.Case) float64 {
	var resolved, favorable int
	for _, c := range cases {
		if !c.Verdict.IsResolved() {
			continue
		}
		resolved++
		if c.Verdict.IsFavorable() {
			favorable++
		}
	}
	if resolved == 0 {
		return 100
	}
	return float64(favorable) / float64(resolved) * 100
}

// orderCompletion is the share of decided orders (completed or expired)
// among orders issued in the trailing 30 days. Recent orders with no
// decisions yet score a neutral 50; no recent orders at all scores 100.
func orderCompletion(orders []*models.Order, now time.Time) float64 {
	cutoff := now.Add(-recentOrderWindow)
	var recent, completed, decided int
	for _, o := range orders {
		if o.IssuedDate.Before(cutoff) {
			continue
		}
		recent++
		if !o.Status.IsDecided() {
			continue
		}
		decided++
		if o.Status == models.OrderStatusCompleted {
			completed++
		}
	}
	switch {
	case decided > 0:
		return float64(completed) / float64(decided) * 100
	case recent > 0:
		return 50
	default:
		return 100
	}
}

func constitutionCoverage(articles []*models.Article) float64 {
	var active int
	for _, a := range articles {
		if a.IsActive() {
			active++
		}
	}
	return math.Min(float64(active)/fullCoverageArticles, 1) * 100
}

func legislativeActivity(bills []*models.Bill) float64 {
	var enacted int
	for _, b := range bills {
		if b.Status == models.BillStatusEnacted {
			enacted++
		}
	}
	return math.Min(float64(enacted)/fullActivityLaws, 1) * 100
}

// judicialDiligence is the share of all-time cases that are resolved.
func judicialDiligence(cases []*models.Case) float64 {
	if len(cases) == 0 {
		return 100
	}
	var resolved int
	for _, c := range cases {
		if c.Verdict.IsResolved() {
			resolved++
		}
	}
	return float64(resolved) / float64(len(cases)) * 100
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
