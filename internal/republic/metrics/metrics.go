package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the republic engine.
type Metrics struct {
	ArticlesRatified prometheus.Counter
	BillsProposed    prometheus.Counter
	BillsEnacted     prometheus.Counter
	CasesFiled       prometheus.Counter
	Verdicts         *prometheus.CounterVec
	OrdersIssued     prometheus.Counter
	OrdersCompleted  prometheus.Counter
	SaveFailures     prometheus.Counter
	HealthScore      prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		ArticlesRatified: promauto.NewCounter(prometheus.CounterOpts{
			Name: "republic_articles_ratified_total",
			Help: "Total number of constitutional articles ratified (originals and amendments)",
		}),
		BillsProposed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "republic_bills_proposed_total",
			Help: "Total number of bills drafted",
		}),
		BillsEnacted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "republic_bills_enacted_total",
			Help: "Total number of bills enacted into law",
		}),
		CasesFiled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "republic_cases_filed_total",
			Help: "Total number of accountability cases filed",
		}),
		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "republic_verdicts_total",
			Help: "Total number of verdicts issued, by outcome",
		}, []string{"verdict"}),
		OrdersIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "republic_orders_issued_total",
			Help: "Total number of executive orders issued",
		}),
		OrdersCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "republic_orders_completed_total",
			Help: "Total number of executive orders completed",
		}),
		SaveFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "republic_document_save_failures_total",
			Help: "Total number of failed background document writes",
		}),
		HealthScore: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "republic_health_score",
			Help: "Current governance health score (0-100)",
		}),
	}
}

func (m *Metrics) IncrementArticlesRatified() { m.ArticlesRatified.Inc() }
func (m *Metrics) IncrementBillsProposed()    { m.BillsProposed.Inc() }
func (m *Metrics) IncrementBillsEnacted()     { m.BillsEnacted.Inc() }
func (m *Metrics) IncrementCasesFiled()       { m.CasesFiled.Inc() }
func (m *Metrics) IncrementOrdersIssued()     { m.OrdersIssued.Inc() }
func (m *Metrics) IncrementOrdersCompleted()  { m.OrdersCompleted.Inc() }

func (m *Metrics) IncrementVerdicts(verdict string) {
	m.Verdicts.WithLabelValues(verdict).Inc()
}

func (m *Metrics) IncrementSaveFailures() { m.SaveFailures.Inc() }

func (m *Metrics) SetHealthScore(score int) {
	m.HealthScore.Set(float64(score))
}
