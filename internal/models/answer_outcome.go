package models

import "time"

// AnswerOutcome is a served-answer count per topic category and source.
// Message text is never stored.
type AnswerOutcome struct {
	Category   string
	Source     string
	Count      int64
	LastSeenAt time.Time
}
