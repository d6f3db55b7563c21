package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"habit-engine/internal/dateutil"
	"habit-engine/internal/model"
	"habit-engine/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title         string
	Description   string
	Category      string
	ScheduledTime string
}

// TaskPatch carries optional edits; nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Category    *string
	Description *string
}

// TaskStatus is a task annotated with its streak and today's state.
type TaskStatus struct {
	Task             model.Task
	CurrentStreak    int
	LongestStreak    int
	IsCompletedToday bool
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo   *repository.TaskRepository
	streakRepo *repository.StreakRepository
	logRepo    *repository.LogRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, streakRepo *repository.StreakRepository, logRepo *repository.LogRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, streakRepo: streakRepo, logRepo: logRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, userID uint, input TaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	category := input.Category
	if category == "" {
		category = model.CategoryOthers
	}
	if !model.ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	task := model.Task{
		UserID:        userID,
		Title:         title,
		Description:   input.Description,
		Category:      category,
		IsActive:      true,
		ScheduledTime: input.ScheduledTime,
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}

	return &task, nil
}

// UpdateTask applies a partial edit to title, category or description.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint, patch TaskPatch) (*model.Task, error) {
	task, err := s.findOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, fmt.Errorf("title is required")
		}
		task.Title = title
	}
	if patch.Category != nil {
		if !model.ValidCategory(*patch.Category) {
			return nil, fmt.Errorf("unknown category %q", *patch.Category)
		}
		task.Category = *patch.Category
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	return task, nil
}

// DeactivateTask clears the active flag. Tasks are never hard-deleted so
// the ledger and streak history stay attached.
func (s *TaskService) DeactivateTask(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	task, err := s.findOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	task.IsActive = false
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListWithStatus returns the user's active tasks, each annotated with its
// streak counters and whether it was already completed today.
func (s *TaskService) ListWithStatus(ctx context.Context, userID uint, today time.Time) ([]TaskStatus, error) {
	today = dateutil.Day(today)

	tasks, err := s.taskRepo.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	streaks, err := s.streakRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byTask := make(map[uint]model.Streak, len(streaks))
	for _, st := range streaks {
		byTask[st.TaskID] = st
	}

	statuses := make([]TaskStatus, 0, len(tasks))
	for _, task := range tasks {
		status := TaskStatus{Task: task}
		if st, ok := byTask[task.ID]; ok {
			status.CurrentStreak = st.CurrentStreak
			status.LongestStreak = st.LongestStreak
		}
		entry, err := s.logRepo.FindByTaskAndDay(ctx, task.ID, today)
		switch {
		case err == nil:
			status.IsCompletedToday = entry.Completed
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("find today's log: %w", err)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func (s *TaskService) findOwned(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, userID, taskID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrTaskNotFound
	case err != nil:
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}
