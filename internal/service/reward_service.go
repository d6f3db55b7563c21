package service

import (
	"context"

	"habit-engine/internal/model"
	"habit-engine/internal/repository"
)

// Milestone streak lengths that earn a bonus. Exact match only; a streak
// of 4 or 8 earns nothing.
var rewardMilestones = map[int]bool{3: true, 7: true, 30: true}

// RewardService issues milestone rewards for streak transitions.
type RewardService struct {
	rewardRepo *repository.RewardRepository
}

func NewRewardService(rewardRepo *repository.RewardRepository) *RewardService {
	return &RewardService{rewardRepo: rewardRepo}
}

// IssueIfEarned records a streak_bonus reward when currentStreak sits on a
// milestone, and returns nil otherwise. It does not dedupe: calling it
// twice with the same value issues two rewards. The ledger's one-entry-
// per-day rule is what keeps a milestone from firing twice in practice.
func (s *RewardService) IssueIfEarned(ctx context.Context, taskID uint, currentStreak int) (*model.Reward, error) {
	if !rewardMilestones[currentStreak] {
		return nil, nil
	}

	reward := &model.Reward{
		TaskID:     taskID,
		RewardType: model.RewardTypeStreakBonus,
		Value:      currentStreak,
	}
	if err := s.rewardRepo.Create(ctx, reward); err != nil {
		return nil, err
	}
	return reward, nil
}
