package model

import "time"

// Streak tracks consecutive completions for one task. Created lazily on
// the first completion. LongestStreak never drops below CurrentStreak.
type Streak struct {
	ID                uint `gorm:"primaryKey"`
	TaskID            uint `gorm:"uniqueIndex"`
	CurrentStreak     int
	LongestStreak     int
	LastCompletedDate *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
