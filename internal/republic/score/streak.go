package score

import (
	"time"

	"republic/internal/republic/models"
)

// streakHorizon bounds the backward scan.
const streakHorizon = 365

// Streak counts consecutive trailing days on which every issued order was
// completed, walking backward day by day from the local midnight of now.
//
// Day rules:
//   - a day with no orders ends the scan, except today, which is skipped
//   - a day where every order is completed adds one and the scan continues
//   - a day with an incomplete order ends the scan, except today, which is
//     forgiving: it contributes nothing but still lets yesterday count
func Streak(orders []*models.Order, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	streak := 0

	for i := 0; i < streakHorizon; i++ {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		total, completed := 0, 0
		for _, o := range orders {
			if o.IssuedDate.Before(dayStart) || !o.IssuedDate.Before(dayEnd) {
				continue
			}
			total++
			if o.Status == models.OrderStatusCompleted {
				completed++
			}
		}

		if total == 0 {
			if i == 0 {
				continue
			}
			break
		}

		if completed == total {
			streak++
		} else if i > 0 {
			break
		}
	}

	return streak
}
