package models

import (
	"time"

	id "republic/pkg/domain"
)

// OrderStatus is the lifecycle state of an executive order.
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusExpired is written only by the deadline sweep
	// (Service.ExpireOverdueOrders), never by completion or cancellation.
	OrderStatusExpired OrderStatus = "expired"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusActive, OrderStatusCompleted, OrderStatusCancelled, OrderStatusExpired:
		return true
	}
	return false
}

// CanTransitionTo reports whether the order lifecycle permits moving from s
// to target. All transitions leave active; completed, cancelled, and expired
// are terminal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s != OrderStatusActive {
		return false
	}
	switch target {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusExpired:
		return true
	}
	return false
}

// IsDecided reports whether the order reached an outcome that counts toward
// the completion rate: completed or expired. Cancelled orders are excluded.
func (s OrderStatus) IsDecided() bool {
	return s == OrderStatusCompleted || s == OrderStatusExpired
}

// OrderPriority ranks how urgent an order is.
type OrderPriority string

const (
	PriorityCritical OrderPriority = "critical"
	PriorityHigh     OrderPriority = "high"
	PriorityStandard OrderPriority = "standard"
)

func (p OrderPriority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityStandard:
		return true
	}
	return false
}

// Label returns the display name for the priority.
func (p OrderPriority) Label() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityStandard:
		return "Standard"
	}
	return string(p)
}

// Order is a daily actionable commitment.
//
// Invariants:
//   - Status transitions follow OrderStatus.CanTransitionTo
//   - CompletedDate is set exactly when the order is completed
//   - Deadline is optional; only the expiry sweep acts on it
type Order struct {
	ID            id.OrderID    `json:"id"`
	Number        string        `json:"number"`
	Title         string        `json:"title"`
	Department    string        `json:"department"`
	Priority      OrderPriority `json:"priority"`
	Status        OrderStatus   `json:"status"`
	IssuedDate    time.Time     `json:"issuedDate"`
	Deadline      *time.Time    `json:"deadline"`
	CompletedDate *time.Time    `json:"completedDate"`
}

// NewOrder constructs an active order carrying the next official number.
func NewOrder(orderID id.OrderID, number, title, department string, priority OrderPriority, deadline *time.Time, now time.Time) *Order {
	return &Order{
		ID:         orderID,
		Number:     number,
		Title:      title,
		Department: department,
		Priority:   priority,
		Status:     OrderStatusActive,
		IssuedDate: now,
		Deadline:   deadline,
	}
}

// CanComplete reports whether the order can transition to completed.
func (o *Order) CanComplete() bool {
	return o.Status.CanTransitionTo(OrderStatusCompleted)
}

// ApplyCompletion marks the order done and stamps the completion time.
func (o *Order) ApplyCompletion(now time.Time) {
	o.Status = OrderStatusCompleted
	o.CompletedDate = &now
}

// CanCancel reports whether the order can transition to cancelled.
func (o *Order) CanCancel() bool {
	return o.Status.CanTransitionTo(OrderStatusCancelled)
}

// ApplyCancellation withdraws the order.
func (o *Order) ApplyCancellation() {
	o.Status = OrderStatusCancelled
}

// IsOverdue reports whether an active order has a deadline in the past.
func (o *Order) IsOverdue(now time.Time) bool {
	return o.Status == OrderStatusActive && o.Deadline != nil && o.Deadline.Before(now)
}

// ApplyExpiry marks an overdue order as expired.
func (o *Order) ApplyExpiry() {
	o.Status = OrderStatusExpired
}
