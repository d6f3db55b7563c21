package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"habit-engine/internal/model"
)

func TestCreateTaskDefaultsCategory(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ana")

	task, err := env.tasks.CreateTask(context.Background(), user.ID, TaskInput{Title: "Read"})
	require.NoError(t, err)
	require.Equal(t, model.CategoryOthers, task.Category)
	require.True(t, task.IsActive)
}

func TestCreateTaskRejectsUnknownCategory(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ana")

	_, err := env.tasks.CreateTask(context.Background(), user.ID, TaskInput{Title: "Read", Category: "Chores"})
	require.Error(t, err)
}

func TestCreateTaskDuplicateTitlePerUser(t *testing.T) {
	env := newTestEnv(t)
	ana := env.mustUser(t, "ana")
	bob := env.mustUser(t, "bob")
	ctx := context.Background()

	_, err := env.tasks.CreateTask(ctx, ana.ID, TaskInput{Title: "Read"})
	require.NoError(t, err)

	_, err = env.tasks.CreateTask(ctx, ana.ID, TaskInput{Title: "Read"})
	require.ErrorIs(t, err, ErrDuplicateTitle)

	// Same title under another user is fine.
	_, err = env.tasks.CreateTask(ctx, bob.ID, TaskInput{Title: "Read"})
	require.NoError(t, err)
}

func TestUpdateTaskPartialPatch(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ana")
	task := env.mustTask(t, user.ID, "Read")
	ctx := context.Background()

	newTitle := "Read more"
	newCategory := model.CategoryAcademics
	updated, err := env.tasks.UpdateTask(ctx, user.ID, task.ID, TaskPatch{
		Title:    &newTitle,
		Category: &newCategory,
	})
	require.NoError(t, err)
	require.Equal(t, "Read more", updated.Title)
	require.Equal(t, model.CategoryAcademics, updated.Category)
	require.Equal(t, task.Description, updated.Description)

	_, err = env.tasks.UpdateTask(ctx, user.ID, 999, TaskPatch{Title: &newTitle})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeactivateTaskKeepsHistory(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ana")
	task := env.mustTask(t, user.ID, "Read")
	ctx := context.Background()

	_, err := env.logs.LogCompletion(ctx, user.ID, task.ID, day(2026, 3, 10), true)
	require.NoError(t, err)

	deactivated, err := env.tasks.DeactivateTask(ctx, user.ID, task.ID)
	require.NoError(t, err)
	require.False(t, deactivated.IsActive)

	// Streak and ledger stay attached to the deactivated task.
	streak, err := env.streakRepo.FindByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, 1, streak.CurrentStreak)

	entries, err := env.logRepo.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestListWithStatus(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ana")
	read := env.mustTask(t, user.ID, "Read")
	run := env.mustTask(t, user.ID, "Run")
	idle := env.mustTask(t, user.ID, "Stretch")
	ctx := context.Background()
	today := day(2026, 3, 12)

	for d := 10; d <= 12; d++ {
		_, err := env.logs.LogCompletion(ctx, user.ID, read.ID, day(2026, 3, d), true)
		require.NoError(t, err)
	}
	_, err := env.logs.LogCompletion(ctx, user.ID, run.ID, today, false)
	require.NoError(t, err)

	statuses, err := env.tasks.ListWithStatus(ctx, user.ID, today)
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	byTitle := make(map[string]TaskStatus, len(statuses))
	for _, st := range statuses {
		byTitle[st.Task.Title] = st
	}

	require.Equal(t, 3, byTitle["Read"].CurrentStreak)
	require.Equal(t, 3, byTitle["Read"].LongestStreak)
	require.True(t, byTitle["Read"].IsCompletedToday)

	// A "not completed" entry today does not count as completed.
	require.False(t, byTitle["Run"].IsCompletedToday)
	require.Equal(t, 0, byTitle["Run"].CurrentStreak)

	require.False(t, byTitle["Stretch"].IsCompletedToday)
	require.Equal(t, 0, byTitle["Stretch"].CurrentStreak)

	// Deactivated tasks disappear from the listing.
	_, err = env.tasks.DeactivateTask(ctx, user.ID, idle.ID)
	require.NoError(t, err)
	statuses, err = env.tasks.ListWithStatus(ctx, user.ID, today)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, "ana")
	require.NoError(t, err)
	_, err = env.users.Register(ctx, "ana")
	require.ErrorIs(t, err, ErrUsernameTaken)
}
