package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"republic/internal/republic/models"
	"republic/pkg/domain"
)

// IssueOrder creates an active executive order carrying the next order
// number. An invalid priority defaults to standard; the deadline is optional.
func (s *Service) IssueOrder(ctx context.Context, title, department string, priority models.OrderPriority, deadline *time.Time) *models.Document {
	title = strings.TrimSpace(title)
	if !priority.IsValid() {
		priority = models.PriorityStandard
	}

	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		if title == "" {
			return false
		}
		seq := doc.Executive.NextOrderNum
		number := domain.GenerateNumber(domain.PrefixOrder, now.Year(), seq)
		order := models.NewOrder(domain.NewOrderID(), number, title, department, priority, deadline, now)
		doc.Executive.Orders = append([]*models.Order{order}, doc.Executive.Orders...)
		doc.Executive.NextOrderNum = seq + 1
		journal(doc, models.ActivityExecutive, "🎖️",
			fmt.Sprintf("Issued Order %s: %s", number, title), now)
		if s.metrics != nil {
			s.metrics.IncrementOrdersIssued()
		}
		return true
	})
}

// CompleteOrder marks an active order done and stamps the completion time.
func (s *Service) CompleteOrder(ctx context.Context, orderID domain.OrderID) *models.Document {
	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		order := doc.FindOrder(orderID)
		if order == nil || !order.CanComplete() {
			return false
		}
		order.ApplyCompletion(now)
		journal(doc, models.ActivityExecutive, "🎖️",
			fmt.Sprintf("Completed Order %s: %s", order.Number, order.Title), now)
		if s.metrics != nil {
			s.metrics.IncrementOrdersCompleted()
		}
		return true
	})
}

// CancelOrder withdraws an active order. Not journaled.
func (s *Service) CancelOrder(ctx context.Context, orderID domain.OrderID) *models.Document {
	return s.mutate(ctx, func(doc *models.Document, _ time.Time) bool {
		order := doc.FindOrder(orderID)
		if order == nil || !order.CanCancel() {
			return false
		}
		order.ApplyCancellation()
		return true
	})
}

// ExpireOverdueOrders sweeps active orders whose deadline has passed and
// marks them expired. Idempotent and not journaled; this is the only writer
// of the expired status. The sweep runs only when explicitly invoked — no
// other operation triggers it.
func (s *Service) ExpireOverdueOrders(ctx context.Context) *models.Document {
	return s.mutate(ctx, func(doc *models.Document, now time.Time) bool {
		changed := false
		for _, order := range doc.Executive.Orders {
			if order.IsOverdue(now) {
				order.ApplyExpiry()
				changed = true
			}
		}
		return changed
	})
}
