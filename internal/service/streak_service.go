package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"habit-engine/internal/dateutil"
	"habit-engine/internal/model"
	"habit-engine/internal/repository"
)

// StreakService maintains per-task consecutive-completion counts.
type StreakService struct {
	streakRepo *repository.StreakRepository
}

func NewStreakService(streakRepo *repository.StreakRepository) *StreakService {
	return &StreakService{streakRepo: streakRepo}
}

// RecordCompletion advances or resets the task's streak for a completion
// on the given day and returns the updated record. The caller must have
// established that this is the first ledger entry for (task, day).
//
// Any day that is not exactly one after the last completed date resets the
// count to 1, including backdated days. Out-of-order entries are not
// reinserted into the historical sequence.
func (s *StreakService) RecordCompletion(ctx context.Context, taskID uint, day time.Time) (*model.Streak, error) {
	day = dateutil.Day(day)

	streak, err := s.streakRepo.FindByTask(ctx, taskID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		streak = &model.Streak{
			TaskID:            taskID,
			CurrentStreak:     1,
			LongestStreak:     1,
			LastCompletedDate: &day,
		}
	case err != nil:
		return nil, fmt.Errorf("find streak: %w", err)
	default:
		if streak.LastCompletedDate != nil && dateutil.IsConsecutiveDay(*streak.LastCompletedDate, day) {
			streak.CurrentStreak++
		} else {
			streak.CurrentStreak = 1
		}
		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
		streak.LastCompletedDate = &day
	}

	if err := s.streakRepo.Save(ctx, streak); err != nil {
		return nil, err
	}
	return streak, nil
}
