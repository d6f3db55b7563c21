package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssueIfEarnedMilestones(t *testing.T) {
	env := newTestEnv(t)
	user := env.mustUser(t, "ana")
	task := env.mustTask(t, user.ID, "Read")
	ctx := context.Background()

	for _, milestone := range []int{3, 7, 30} {
		reward, err := env.rewards.IssueIfEarned(ctx, task.ID, milestone)
		require.NoError(t, err)
		require.NotNil(t, reward)
		require.Equal(t, milestone, reward.Value)
		require.Equal(t, "streak_bonus", reward.RewardType)
	}

	for _, off := range []int{0, 1, 2, 4, 6, 8, 14, 29, 31, 60} {
		reward, err := env.rewards.IssueIfEarned(ctx, task.ID, off)
		require.NoError(t, err)
		require.Nil(t, reward)
	}

	rewards, err := env.rewardRepo.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, rewards, 3)
}
