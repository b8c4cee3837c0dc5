// Package handler wires the republic HTTP surface to the domain engine.
// Handlers stay thin: decode, parse ids, call the service, write the
// snapshot. Domain guards are silent no-ops by design, so mutations always
// answer 200 with the resulting document.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"republic/internal/judge"
	"republic/internal/republic/metrics"
	"republic/internal/republic/models"
	"republic/internal/republic/score"
	"republic/internal/republic/service"
	"republic/pkg/domain"
	dErrors "republic/pkg/domain-errors"
	"republic/pkg/platform/httputil"
	"republic/pkg/requestcontext"
)

// Judge evaluates a case against the citizen's constitution and laws.
// *judge.Client satisfies it.
type Judge interface {
	Evaluate(ctx context.Context, req judge.Request) (*judge.Ruling, error)
}

// Handler wires republic endpoints to the domain engine.
type Handler struct {
	engine  *service.Service
	judge   Judge
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs the handler. judge may be nil when no judge endpoint is
// configured; the judge route then answers unavailable.
func New(engine *service.Service, j Judge, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{engine: engine, judge: j, logger: logger, metrics: m}
}

// Register mounts all republic endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/republic", func(r chi.Router) {
		r.Post("/setup", h.HandleSetup)
		r.Get("/", h.HandleGetDocument)
		r.Get("/dashboard", h.HandleDashboard)
		r.Post("/activity", h.HandleAddActivity)
	})
	r.Route("/constitution", func(r chi.Router) {
		r.Put("/preamble", h.HandleSetPreamble)
		r.Post("/articles", h.HandleAddArticle)
		r.Post("/articles/{articleID}/amend", h.HandleAmendArticle)
	})
	r.Route("/legislature/bills", func(r chi.Router) {
		r.Post("/", h.HandleProposeBill)
		r.Post("/{billID}/advance", h.HandleAdvanceBill)
		r.Patch("/{billID}", h.HandleAmendBillText)
		r.Post("/{billID}/debate/points", h.HandleAddDebatePoint)
		r.Delete("/{billID}/debate/points/{pointID}", h.HandleRemoveDebatePoint)
		r.Post("/{billID}/conclude", h.HandleConcludeDebate)
		r.Post("/{billID}/repeal", h.HandleRepealBill)
	})
	r.Route("/judiciary/cases", func(r chi.Router) {
		r.Post("/", h.HandleFileCase)
		r.Post("/{caseID}/verdict", h.HandleIssueVerdict)
		r.Post("/{caseID}/sentence/complete", h.HandleCompleteSentence)
		r.Post("/{caseID}/judge", h.HandleJudgeCase)
	})
	r.Route("/executive/orders", func(r chi.Router) {
		r.Post("/", h.HandleIssueOrder)
		r.Post("/{orderID}/complete", h.HandleCompleteOrder)
		r.Post("/{orderID}/cancel", h.HandleCancelOrder)
		r.Post("/expire", h.HandleExpireOrders)
	})
}

// ready rejects requests until the startup load has completed.
func (h *Handler) ready(w http.ResponseWriter) bool {
	if !h.engine.Ready() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "document not loaded yet"))
		return false
	}
	return true
}

func (h *Handler) writeDocument(w http.ResponseWriter, doc *models.Document) {
	httputil.WriteJSON(w, http.StatusOK, doc)
}

// HandleSetup handles POST /republic/setup.
func (h *Handler) HandleSetup(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	req, ok := decode[setupRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.SetupRepublic(r.Context(), req.Name, req.Motto))
}

// HandleGetDocument handles GET /republic.
func (h *Handler) HandleGetDocument(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	h.writeDocument(w, h.engine.Document())
}

// HandleDashboard handles GET /republic/dashboard: the read-only analytics
// composition. Computing the score here also refreshes the gauge.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	now := requestcontext.Now(r.Context())
	doc := h.engine.Document()

	healthScore := score.HealthScore(doc, now)
	if h.metrics != nil {
		h.metrics.SetHealthScore(healthScore)
	}

	httputil.WriteJSON(w, http.StatusOK, dashboardResponse{
		HealthScore:    healthScore,
		Tier:           score.TierFor(healthScore),
		Streak:         score.Streak(doc.Executive.Orders, now),
		Breakdown:      score.ComputeBreakdown(doc, now),
		RecentActivity: doc.Activity,
		Departments:    domain.Departments,
	})
}

// HandleAddActivity handles POST /republic/activity.
func (h *Handler) HandleAddActivity(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	req, ok := decode[activityRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.AddActivity(r.Context(), models.ActivityType(req.Type), req.Icon, req.Text))
}

// HandleSetPreamble handles PUT /constitution/preamble.
func (h *Handler) HandleSetPreamble(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	req, ok := decode[preambleRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.SetPreamble(r.Context(), req.Preamble))
}

// HandleAddArticle handles POST /constitution/articles.
func (h *Handler) HandleAddArticle(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	req, ok := decode[articleRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.AddArticle(r.Context(), req.Title, req.Body))
}

// HandleAmendArticle handles POST /constitution/articles/{articleID}/amend.
func (h *Handler) HandleAmendArticle(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	articleID, err := domain.ParseArticleID(chi.URLParam(r, "articleID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[articleRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.AmendArticle(r.Context(), articleID, req.Title, req.Body))
}

// HandleProposeBill handles POST /legislature/bills.
func (h *Handler) HandleProposeBill(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	req, ok := decode[billRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.ProposeBill(r.Context(), req.Title, req.Description, req.Department))
}

// HandleAdvanceBill handles POST /legislature/bills/{billID}/advance.
func (h *Handler) HandleAdvanceBill(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	billID, err := domain.ParseBillID(chi.URLParam(r, "billID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.writeDocument(w, h.engine.AdvanceBill(r.Context(), billID))
}

// HandleAmendBillText handles PATCH /legislature/bills/{billID}.
func (h *Handler) HandleAmendBillText(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	billID, err := domain.ParseBillID(chi.URLParam(r, "billID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[amendBillRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.AmendBillText(r.Context(), billID, req.Title, req.Description))
}

// HandleAddDebatePoint handles POST /legislature/bills/{billID}/debate/points.
func (h *Handler) HandleAddDebatePoint(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	billID, err := domain.ParseBillID(chi.URLParam(r, "billID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[debatePointRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.AddDebatePoint(r.Context(), billID, debateSide(req.Side), req.Text))
}

// HandleRemoveDebatePoint handles
// DELETE /legislature/bills/{billID}/debate/points/{pointID}?side=pro|con.
func (h *Handler) HandleRemoveDebatePoint(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	billID, err := domain.ParseBillID(chi.URLParam(r, "billID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	pointID, err := domain.ParsePointID(chi.URLParam(r, "pointID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	side := debateSide(r.URL.Query().Get("side"))
	h.writeDocument(w, h.engine.RemoveDebatePoint(r.Context(), billID, side, pointID))
}

// HandleConcludeDebate handles POST /legislature/bills/{billID}/conclude.
func (h *Handler) HandleConcludeDebate(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	billID, err := domain.ParseBillID(chi.URLParam(r, "billID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[concludeRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.ConcludeDebate(r.Context(), billID, models.DebateDecision(req.Decision), req.Conclusion))
}

// HandleRepealBill handles POST /legislature/bills/{billID}/repeal.
func (h *Handler) HandleRepealBill(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	billID, err := domain.ParseBillID(chi.URLParam(r, "billID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[repealRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.RepealBill(r.Context(), billID, req.Reason))
}

// HandleFileCase handles POST /judiciary/cases.
func (h *Handler) HandleFileCase(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	req, ok := decode[caseRequest](w, r)
	if !ok {
		return
	}
	var relatedLawID *domain.BillID
	if req.RelatedLawID != nil && *req.RelatedLawID != "" {
		lawID, err := domain.ParseBillID(*req.RelatedLawID)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		relatedLawID = &lawID
	}
	h.writeDocument(w, h.engine.FileCase(r.Context(), req.Title, req.Description, relatedLawID, req.Department))
}

// HandleIssueVerdict handles POST /judiciary/cases/{caseID}/verdict.
func (h *Handler) HandleIssueVerdict(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	caseID, err := domain.ParseCaseID(chi.URLParam(r, "caseID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := decode[verdictRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.IssueVerdict(r.Context(), caseID, models.Verdict(req.Verdict), req.Notes, req.Sentence))
}

// HandleCompleteSentence handles POST /judiciary/cases/{caseID}/sentence/complete.
func (h *Handler) HandleCompleteSentence(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	caseID, err := domain.ParseCaseID(chi.URLParam(r, "caseID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.writeDocument(w, h.engine.CompleteSentence(r.Context(), caseID))
}

// HandleJudgeCase handles POST /judiciary/cases/{caseID}/judge: composes the
// case material from the current document, asks the judge, and records the
// ruling as the verdict. Judge failures leave the case untouched.
func (h *Handler) HandleJudgeCase(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	if h.judge == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "no judge endpoint configured"))
		return
	}
	caseID, err := domain.ParseCaseID(chi.URLParam(r, "caseID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	doc := h.engine.Document()
	c := doc.FindCase(caseID)
	if c == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "case not found"))
		return
	}
	if !c.CanResolve() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "case already has a verdict"))
		return
	}

	ruling, err := h.judge.Evaluate(r.Context(), judge.Request{
		CaseTitle:       c.Title,
		CaseDescription: c.Description,
		RelatedLaw:      relatedLawText(doc, c),
		Constitution:    constitutionText(doc),
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "judge evaluation failed",
			"case_number", c.Number,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.writeDocument(w, h.engine.IssueVerdict(r.Context(), caseID, ruling.Verdict, ruling.Notes, ruling.Sentence))
}

// HandleIssueOrder handles POST /executive/orders.
func (h *Handler) HandleIssueOrder(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	req, ok := decode[orderRequest](w, r)
	if !ok {
		return
	}
	h.writeDocument(w, h.engine.IssueOrder(r.Context(), req.Title, req.Department, models.OrderPriority(req.Priority), req.Deadline))
}

// HandleCompleteOrder handles POST /executive/orders/{orderID}/complete.
func (h *Handler) HandleCompleteOrder(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	orderID, err := domain.ParseOrderID(chi.URLParam(r, "orderID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.writeDocument(w, h.engine.CompleteOrder(r.Context(), orderID))
}

// HandleCancelOrder handles POST /executive/orders/{orderID}/cancel.
func (h *Handler) HandleCancelOrder(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	orderID, err := domain.ParseOrderID(chi.URLParam(r, "orderID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.writeDocument(w, h.engine.CancelOrder(r.Context(), orderID))
}

// HandleExpireOrders handles POST /executive/orders/expire.
func (h *Handler) HandleExpireOrders(w http.ResponseWriter, r *http.Request) {
	if !h.ready(w) {
		return
	}
	h.writeDocument(w, h.engine.ExpireOverdueOrders(r.Context()))
}

// debateSide maps a wire value to a side, defaulting to con like the
// engine's own fallback.
func debateSide(raw string) service.DebateSide {
	if raw == string(service.DebateSidePro) {
		return service.DebateSidePro
	}
	return service.DebateSideCon
}

// relatedLawText renders the law a case cites, empty when none.
func relatedLawText(doc *models.Document, c *models.Case) string {
	if c.RelatedLawID == nil {
		return ""
	}
	bill := doc.FindBill(*c.RelatedLawID)
	if bill == nil {
		return ""
	}
	if bill.Description == "" {
		return bill.Title
	}
	return fmt.Sprintf("%s: %s", bill.Title, bill.Description)
}

// constitutionText renders the preamble and active articles for the judge.
func constitutionText(doc *models.Document) string {
	var b strings.Builder
	if doc.Constitution.Preamble != "" {
		b.WriteString(doc.Constitution.Preamble)
	}
	for _, a := range doc.Constitution.Articles {
		if !a.IsActive() {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Article %s: %s", domain.ToRoman(a.Number), a.Title)
		if a.Body != "" {
			b.WriteString(" - " + a.Body)
		}
	}
	return b.String()
}
