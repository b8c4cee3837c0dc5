package models

import (
	"time"

	id "republic/pkg/domain"
)

// ActivityLimit caps the journal at the most recent entries.
const ActivityLimit = 50

// ActivityType groups journal entries by the branch that produced them.
type ActivityType string

const (
	ActivityConstitution ActivityType = "constitution"
	ActivityLegislature  ActivityType = "legislature"
	ActivityJudiciary    ActivityType = "judiciary"
	ActivityExecutive    ActivityType = "executive"
	ActivityRepublic     ActivityType = "republic"
)

// ActivityEntry is one line in the append-only journal, newest first.
type ActivityEntry struct {
	ID        id.ActivityID `json:"id"`
	Type      ActivityType  `json:"type"`
	Icon      string        `json:"icon"`
	Text      string        `json:"text"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewActivityEntry constructs a journal entry stamped with now.
func NewActivityEntry(entryType ActivityType, icon, text string, now time.Time) ActivityEntry {
	return ActivityEntry{
		ID:        id.NewActivityID(),
		Type:      entryType,
		Icon:      icon,
		Text:      text,
		Timestamp: now,
	}
}

// PrependActivity adds an entry at the front of the journal and truncates to
// ActivityLimit. The input slice is not mutated.
func PrependActivity(journal []ActivityEntry, entry ActivityEntry) []ActivityEntry {
	out := make([]ActivityEntry, 0, min(len(journal)+1, ActivityLimit))
	out = append(out, entry)
	for _, e := range journal {
		if len(out) == ActivityLimit {
			break
		}
		out = append(out, e)
	}
	return out
}
