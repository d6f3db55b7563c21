package model

import "time"

// RewardTypeStreakBonus marks rewards issued for streak milestones.
const RewardTypeStreakBonus = "streak_bonus"

// Reward is an append-only record of a milestone being reached.
type Reward struct {
	ID         uint `gorm:"primaryKey"`
	TaskID     uint `gorm:"index"`
	RewardType string
	Value      int
	IssuedAt   time.Time `gorm:"autoCreateTime"`
}
