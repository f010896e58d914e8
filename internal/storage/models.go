package storage

import "time"

type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type Completion struct {
	ID            int64
	Activity      string
	CompletedAt   time.Time
	PointsAwarded int
}
