package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"habit-engine/internal/model"
	"habit-engine/internal/repository"
)

// testEnv wires every repo and service against a throwaway sqlite file.
type testEnv struct {
	userRepo   *repository.UserRepository
	taskRepo   *repository.TaskRepository
	logRepo    *repository.LogRepository
	streakRepo *repository.StreakRepository
	rewardRepo *repository.RewardRepository

	users     *UserService
	tasks     *TaskService
	logs      *LogService
	streaks   *StreakService
	rewards   *RewardService
	analytics *AnalyticsService
	predictor *PredictorService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "engine.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	env := &testEnv{
		userRepo:   repository.NewUserRepository(db),
		taskRepo:   repository.NewTaskRepository(db),
		logRepo:    repository.NewLogRepository(db),
		streakRepo: repository.NewStreakRepository(db),
		rewardRepo: repository.NewRewardRepository(db),
	}
	env.users = NewUserService(env.userRepo)
	env.streaks = NewStreakService(env.streakRepo)
	env.rewards = NewRewardService(env.rewardRepo)
	env.tasks = NewTaskService(env.taskRepo, env.streakRepo, env.logRepo)
	env.logs = NewLogService(env.taskRepo, env.logRepo, env.streaks, env.rewards)
	env.analytics = NewAnalyticsService(env.userRepo, env.taskRepo, env.logRepo, env.streakRepo, env.rewardRepo)
	env.predictor = NewPredictorService(env.taskRepo, env.logRepo, nil)
	return env
}

func (env *testEnv) mustUser(t *testing.T, username string) *model.User {
	t.Helper()
	user, err := env.users.Register(context.Background(), username)
	require.NoError(t, err)
	return user
}

func (env *testEnv) mustTask(t *testing.T, userID uint, title string) *model.Task {
	t.Helper()
	task, err := env.tasks.CreateTask(context.Background(), userID, TaskInput{Title: title})
	require.NoError(t, err)
	return task
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
