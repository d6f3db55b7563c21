package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"habit-engine/internal/model"
)

// StreakRepository handles per-task streak records.
type StreakRepository struct {
	db *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{db: db}
}

func (r *StreakRepository) FindByTask(ctx context.Context, taskID uint) (*model.Streak, error) {
	var streak model.Streak
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).First(&streak).Error; err != nil {
		return nil, err
	}
	return &streak, nil
}

func (r *StreakRepository) Save(ctx context.Context, streak *model.Streak) error {
	if err := r.db.WithContext(ctx).Save(streak).Error; err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	return nil
}

func (r *StreakRepository) ListByUser(ctx context.Context, userID uint) ([]model.Streak, error) {
	var streaks []model.Streak
	if err := r.db.WithContext(ctx).
		Joins("JOIN tasks ON tasks.id = streaks.task_id").
		Where("tasks.user_id = ?", userID).
		Find(&streaks).Error; err != nil {
		return nil, err
	}
	return streaks, nil
}

// CountActiveByUser counts the user's tasks with a running streak.
func (r *StreakRepository) CountActiveByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Streak{}).
		Joins("JOIN tasks ON tasks.id = streaks.task_id").
		Where("tasks.user_id = ? AND streaks.current_streak > 0", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count active streaks: %w", err)
	}
	return count, nil
}
