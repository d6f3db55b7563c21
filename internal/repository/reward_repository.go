package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"habit-engine/internal/model"
)

// RewardRepository handles the append-only reward log.
type RewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

func (r *RewardRepository) Create(ctx context.Context, reward *model.Reward) error {
	if err := r.db.WithContext(ctx).Create(reward).Error; err != nil {
		return fmt.Errorf("create reward: %w", err)
	}
	return nil
}

func (r *RewardRepository) ListByTask(ctx context.Context, taskID uint) ([]model.Reward, error) {
	var rewards []model.Reward
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("issued_at ASC").
		Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *RewardRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Reward{}).
		Joins("JOIN tasks ON tasks.id = rewards.task_id").
		Where("tasks.user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count rewards: %w", err)
	}
	return count, nil
}
