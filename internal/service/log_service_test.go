package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLogCompletionUnknownTask(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ana")

	_, err := env.logs.LogCompletion(context.Background(), user.ID, 999, day(2026, 3, 10), true)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestLogCompletionForeignTaskLooksMissing(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustUser(t, "ana")
	other := env.mustUser(t, "bob")
	task := env.mustTask(t, owner.ID, "Read")

	_, err := env.logs.LogCompletion(context.Background(), other.ID, task.ID, day(2026, 3, 10), true)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestLogCompletionDuplicateDayRejected(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ana")
	task := env.mustTask(t, user.ID, "Read")
	ctx := context.Background()

	first, err := env.logs.LogCompletion(ctx, user.ID, task.ID, day(2026, 3, 10), true)
	require.NoError(t, err)
	require.Equal(t, 1, first.Streak.CurrentStreak)

	_, err = env.logs.LogCompletion(ctx, user.ID, task.ID, day(2026, 3, 10), true)
	require.ErrorIs(t, err, ErrDuplicateLog)

	// The rejected attempt must not have touched the streak.
	streak, err := env.streakRepo.FindByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, 1, streak.CurrentStreak)
	require.Equal(t, 1, streak.LongestStreak)
}

func TestLogCompletionNotCompletedIsBareRecord(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ana")
	task := env.mustTask(t, user.ID, "Read")
	ctx := context.Background()

	res, err := env.logs.LogCompletion(ctx, user.ID, task.ID, day(2026, 3, 10), false)
	require.NoError(t, err)
	require.NotNil(t, res.Entry)
	require.False(t, res.Entry.Completed)
	require.Nil(t, res.Streak)
	require.Nil(t, res.Reward)

	// No streak record is created for a "not completed" entry.
	_, err = env.streakRepo.FindByTask(ctx, task.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The day is still used up: a later completion for it is a duplicate.
	_, err = env.logs.LogCompletion(ctx, user.ID, task.ID, day(2026, 3, 10), true)
	require.ErrorIs(t, err, ErrDuplicateLog)
}

func TestLogCompletionMilestoneScenario(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ana")
	task := env.mustTask(t, user.ID, "Read")
	ctx := context.Background()

	// Days 1-3 consecutive: streak climbs to 3 and earns one reward.
	var lastReward *LogResult
	for d := 1; d <= 3; d++ {
		res, err := env.logs.LogCompletion(ctx, user.ID, task.ID, day(2026, 5, d), true)
		require.NoError(t, err)
		lastReward = res
		if d < 3 {
			require.Nil(t, res.Reward)
		}
	}
	require.NotNil(t, lastReward.Reward)
	require.Equal(t, 3, lastReward.Reward.Value)
	require.Equal(t, "streak_bonus", lastReward.Reward.RewardType)

	// Day 4 skipped, day 5 completed: reset, longest kept, no new reward.
	res, err := env.logs.LogCompletion(ctx, user.ID, task.ID, day(2026, 5, 5), true)
	require.NoError(t, err)
	require.Equal(t, 1, res.Streak.CurrentStreak)
	require.Equal(t, 3, res.Streak.LongestStreak)
	require.Nil(t, res.Reward)

	rewards, err := env.rewardRepo.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
}

func TestLogCompletionSevenDayMilestone(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ana")
	task := env.mustTask(t, user.ID, "Read")
	ctx := context.Background()

	for d := 1; d <= 8; d++ {
		res, err := env.logs.LogCompletion(ctx, user.ID, task.ID, day(2026, 5, d), true)
		require.NoError(t, err)
		switch d {
		case 3:
			require.NotNil(t, res.Reward)
			require.Equal(t, 3, res.Reward.Value)
		case 7:
			require.NotNil(t, res.Reward)
			require.Equal(t, 7, res.Reward.Value)
		default:
			require.Nil(t, res.Reward)
		}
	}
}
