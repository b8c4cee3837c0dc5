package handler

import (
	"republic/internal/republic/models"
	"republic/internal/republic/score"
	"republic/pkg/domain"
)

// dashboardResponse is the read-only composition served at
// GET /republic/dashboard.
type dashboardResponse struct {
	HealthScore    int                    `json:"healthScore"`
	Tier           score.Tier             `json:"tier"`
	Streak         int                    `json:"streak"`
	Breakdown      score.Breakdown        `json:"breakdown"`
	RecentActivity []models.ActivityEntry `json:"recentActivity"`
	Departments    []domain.Department    `json:"departments"`
}
