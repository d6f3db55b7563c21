package model

import "time"

// DailyLog records one per-day fact: on LogDate the task was or was not
// completed. The composite unique index is the duplicate guard; concurrent
// writers racing past an application-level check lose at commit time.
// Entries are immutable once written.
type DailyLog struct {
	ID        uint      `gorm:"primaryKey"`
	TaskID    uint      `gorm:"uniqueIndex:idx_task_log_day"`
	LogDate   time.Time `gorm:"uniqueIndex:idx_task_log_day"`
	Completed bool
	CreatedAt time.Time
}
