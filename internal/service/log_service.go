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

// LogResult is what a single completion log produces. Streak and Reward
// are set only when the entry was marked completed.
type LogResult struct {
	Entry  *model.DailyLog
	Streak *model.Streak
	Reward *model.Reward
}

// LogService owns the daily completion ledger and drives the streak and
// reward updates that follow a completed entry.
type LogService struct {
	taskRepo  *repository.TaskRepository
	logRepo   *repository.LogRepository
	streakSvc *StreakService
	rewardSvc *RewardService
}

func NewLogService(taskRepo *repository.TaskRepository, logRepo *repository.LogRepository, streakSvc *StreakService, rewardSvc *RewardService) *LogService {
	return &LogService{taskRepo: taskRepo, logRepo: logRepo, streakSvc: streakSvc, rewardSvc: rewardSvc}
}

// LogCompletion appends one ledger entry for (task, day). A second entry
// for the same pair fails with ErrDuplicateLog and leaves the streak
// untouched. When completed is true the task's streak is updated and a
// milestone reward may be issued; a "not completed" entry is a bare record
// with no downstream effect.
func (s *LogService) LogCompletion(ctx context.Context, userID, taskID uint, day time.Time, completed bool) (*LogResult, error) {
	task, err := s.taskRepo.FindByID(ctx, userID, taskID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrTaskNotFound
	case err != nil:
		return nil, fmt.Errorf("find task: %w", err)
	}

	day = dateutil.Day(day)

	if _, err := s.logRepo.FindByTaskAndDay(ctx, task.ID, day); err == nil {
		return nil, ErrDuplicateLog
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing log: %w", err)
	}

	entry := &model.DailyLog{TaskID: task.ID, LogDate: day, Completed: completed}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		// Two writers can pass the check above; the unique index
		// decides, and the loser sees the same duplicate error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateLog
		}
		return nil, err
	}

	result := &LogResult{Entry: entry}
	if !completed {
		return result, nil
	}

	streak, err := s.streakSvc.RecordCompletion(ctx, task.ID, day)
	if err != nil {
		return nil, err
	}
	result.Streak = streak

	reward, err := s.rewardSvc.IssueIfEarned(ctx, task.ID, streak.CurrentStreak)
	if err != nil {
		return nil, err
	}
	result.Reward = reward

	return result, nil
}
