package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"habit-engine/internal/model"
)

// LogRepository handles the append-only daily completion ledger.
type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Create appends one ledger entry. A duplicate (task_id, log_date) pair
// fails with gorm.ErrDuplicatedKey; callers decide how to surface it.
func (r *LogRepository) Create(ctx context.Context, entry *model.DailyLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create log entry: %w", err)
	}
	return nil
}

func (r *LogRepository) FindByTaskAndDay(ctx context.Context, taskID uint, day time.Time) (*model.DailyLog, error) {
	var entry model.DailyLog
	if err := r.db.WithContext(ctx).
		Where("task_id = ? AND log_date = ?", taskID, day).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListCompletedByUser returns every completed ledger entry across all of
// the user's tasks, oldest first.
func (r *LogRepository) ListCompletedByUser(ctx context.Context, userID uint) ([]model.DailyLog, error) {
	var entries []model.DailyLog
	if err := r.db.WithContext(ctx).
		Joins("JOIN tasks ON tasks.id = daily_logs.task_id").
		Where("tasks.user_id = ? AND daily_logs.completed = ?", userID, true).
		Order("daily_logs.log_date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *LogRepository) ListByTask(ctx context.Context, taskID uint) ([]model.DailyLog, error) {
	var entries []model.DailyLog
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("log_date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *LogRepository) ListAllCompleted(ctx context.Context) ([]model.DailyLog, error) {
	var entries []model.DailyLog
	if err := r.db.WithContext(ctx).
		Where("completed = ?", true).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *LogRepository) CountCompletedByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.DailyLog{}).
		Joins("JOIN tasks ON tasks.id = daily_logs.task_id").
		Where("tasks.user_id = ? AND daily_logs.completed = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count completed logs: %w", err)
	}
	return count, nil
}

func (r *LogRepository) CountCompletedOnDay(ctx context.Context, userID uint, day time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.DailyLog{}).
		Joins("JOIN tasks ON tasks.id = daily_logs.task_id").
		Where("tasks.user_id = ? AND daily_logs.completed = ? AND daily_logs.log_date = ?", userID, true, day).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count logs for day: %w", err)
	}
	return count, nil
}
