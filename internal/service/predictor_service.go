package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"habit-engine/internal/dateutil"
	"habit-engine/internal/model"
	"habit-engine/internal/repository"
)

// FeatureRow is one labeled training example for the external success
// classifier. It is the whole contract with that collaborator.
type FeatureRow struct {
	Category         string `json:"category"`
	ScheduledMinutes int    `json:"scheduled_minutes"`
	DayOfWeek        int    `json:"day_of_week"`
	TitleLength      int    `json:"title_length"`
	IsWeekend        bool   `json:"is_weekend"`
	Completed        bool   `json:"completed"`
}

// Classifier is the external model. Predict returns a success probability
// in [0,100], or ErrModelUntrained while no model exists.
type Classifier interface {
	Predict(ctx context.Context, row FeatureRow) (int, error)
}

type logKey struct {
	taskID uint
	day    time.Time
}

// PredictorService builds the feature table the classifier trains on.
type PredictorService struct {
	taskRepo   *repository.TaskRepository
	logRepo    *repository.LogRepository
	classifier Classifier
}

func NewPredictorService(taskRepo *repository.TaskRepository, logRepo *repository.LogRepository, classifier Classifier) *PredictorService {
	return &PredictorService{taskRepo: taskRepo, logRepo: logRepo, classifier: classifier}
}

// BuildTrainingRows emits one row per (task, day) for every day in
// [asOf-lookbackDays, asOf-1] on or after the task's creation day.
//
// Labels are closed-world: a day without a completed ledger entry counts
// as not completed, so a forgotten log and a genuine skip look the same.
func (s *PredictorService) BuildTrainingRows(ctx context.Context, asOf time.Time, lookbackDays int) ([]FeatureRow, error) {
	asOf = dateutil.Day(asOf)

	tasks, err := s.taskRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.logRepo.ListAllCompleted(ctx)
	if err != nil {
		return nil, err
	}

	completedOn := make(map[logKey]bool, len(entries))
	for _, e := range entries {
		completedOn[logKey{taskID: e.TaskID, day: dateutil.Day(e.LogDate)}] = true
	}

	var rows []FeatureRow
	for _, task := range tasks {
		created := dateutil.Day(task.CreatedAt)
		for i := 1; i <= lookbackDays; i++ {
			day := asOf.AddDate(0, 0, -i)
			if created.After(day) {
				continue
			}
			rows = append(rows, featureRow(task, day, completedOn[logKey{taskID: task.ID, day: day}]))
		}
	}
	return rows, nil
}

func featureRow(task model.Task, day time.Time, completed bool) FeatureRow {
	return FeatureRow{
		Category:         taskCategory(task),
		ScheduledMinutes: scheduledMinutes(task.ScheduledTime),
		DayOfWeek:        dateutil.Weekday(day),
		TitleLength:      len(task.Title),
		IsWeekend:        dateutil.IsWeekend(day),
		Completed:        completed,
	}
}

func taskCategory(task model.Task) string {
	if task.Category == "" {
		return model.CategoryOthers
	}
	return task.Category
}

func scheduledMinutes(raw string) int {
	if raw == "" {
		return 0
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 0 {
		return 0
	}
	return minutes
}

// ExportTrainingRows writes the current feature table to path as JSON
// lines for the external classifier to pick up.
func (s *PredictorService) ExportTrainingRows(ctx context.Context, path string, asOf time.Time, lookbackDays int) (int, error) {
	rows, err := s.BuildTrainingRows(ctx, asOf, lookbackDays)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return 0, fmt.Errorf("encode row: %w", err)
		}
	}
	return len(rows), nil
}

// PredictSuccess asks the classifier for the probability of completing
// the task today. ErrModelUntrained passes through untouched; callers
// show "no prediction available" rather than an error.
func (s *PredictorService) PredictSuccess(ctx context.Context, task model.Task, today time.Time) (int, error) {
	if s.classifier == nil {
		return 0, ErrModelUntrained
	}
	row := featureRow(task, dateutil.Day(today), false)
	return s.classifier.Predict(ctx, row)
}
