package service

import (
	"context"
	"sort"
	"time"

	"habit-engine/internal/dateutil"
	"habit-engine/internal/repository"
)

// Trend labels for the 7-day window.
const (
	TrendImproving = "Improving"
	TrendDeclining = "Declining"
	TrendStable    = "Stable"
)

// Snapshot is the per-user dashboard summary. ActiveStreak and
// LongestStreak both carry the walk-back global streak; the true
// historical longest is not tracked here.
type Snapshot struct {
	TotalTasks       int
	ActiveTasks      int
	CompletedToday   int
	TotalCompletions int
	TotalRewards     int
	ActiveStreak     int
	LongestStreak    int
}

// DayCount pairs one calendar day with its completion count.
type DayCount struct {
	Day   time.Time
	Count int
}

// Trend is the 7-day completion trend, oldest day first.
type Trend struct {
	Days  []DayCount
	Label string
}

// LeaderboardEntry summarizes one user for the community board.
type LeaderboardEntry struct {
	Username          string
	CompletedCount    int
	ActiveStreakCount int
}

// AnalyticsService derives dashboard figures from the ledger, the task
// table and the streak records. Everything here is read-only and
// recomputed on demand; a user with no tasks or logs gets zero values.
type AnalyticsService struct {
	userRepo   *repository.UserRepository
	taskRepo   *repository.TaskRepository
	logRepo    *repository.LogRepository
	streakRepo *repository.StreakRepository
	rewardRepo *repository.RewardRepository
}

func NewAnalyticsService(userRepo *repository.UserRepository, taskRepo *repository.TaskRepository, logRepo *repository.LogRepository, streakRepo *repository.StreakRepository, rewardRepo *repository.RewardRepository) *AnalyticsService {
	return &AnalyticsService{
		userRepo:   userRepo,
		taskRepo:   taskRepo,
		logRepo:    logRepo,
		streakRepo: streakRepo,
		rewardRepo: rewardRepo,
	}
}

// Snapshot builds the per-user dashboard counts for the given day.
func (s *AnalyticsService) Snapshot(ctx context.Context, userID uint, today time.Time) (*Snapshot, error) {
	today = dateutil.Day(today)

	total, active, err := s.taskRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	completedToday, err := s.logRepo.CountCompletedOnDay(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	totalCompletions, err := s.logRepo.CountCompletedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalRewards, err := s.rewardRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.logRepo.ListCompletedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	days := make([]time.Time, 0, len(entries))
	seen := make(map[time.Time]bool)
	for _, e := range entries {
		d := dateutil.Day(e.LogDate)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	global := globalStreak(days, today)

	return &Snapshot{
		TotalTasks:       int(total),
		ActiveTasks:      int(active),
		CompletedToday:   int(completedToday),
		TotalCompletions: int(totalCompletions),
		TotalRewards:     int(totalRewards),
		ActiveStreak:     global,
		LongestStreak:    global,
	}, nil
}

// globalStreak counts consecutive days with at least one completion,
// walking backward from the most recent day. The run only counts when it
// reaches today or yesterday; otherwise the streak is considered broken.
func globalStreak(days []time.Time, today time.Time) int {
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	latest := days[0]
	if !dateutil.SameDay(latest, today) && !dateutil.IsConsecutiveDay(latest, today) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if !dateutil.IsConsecutiveDay(days[i], days[i-1]) {
			break
		}
		streak++
	}
	return streak
}

// WeeklyPattern buckets all-time completions by day of week, Monday=0.
func (s *AnalyticsService) WeeklyPattern(ctx context.Context, userID uint) ([7]int, error) {
	var pattern [7]int
	entries, err := s.logRepo.ListCompletedByUser(ctx, userID)
	if err != nil {
		return pattern, err
	}
	for _, e := range entries {
		pattern[dateutil.Weekday(e.LogDate)]++
	}
	return pattern, nil
}

// CategoryDistribution counts completed entries per owning-task category.
func (s *AnalyticsService) CategoryDistribution(ctx context.Context, userID uint) (map[string]int, error) {
	entries, err := s.logRepo.ListCompletedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories := make(map[uint]string, len(tasks))
	for _, t := range tasks {
		categories[t.ID] = t.Category
	}

	dist := make(map[string]int)
	for _, e := range entries {
		cat, ok := categories[e.TaskID]
		if !ok || cat == "" {
			cat = "Unknown"
		}
		dist[cat]++
	}
	return dist, nil
}

// Trend counts completions for the 7 days ending today and labels the
// direction by comparing the most recent 3 days against the earliest 3.
func (s *AnalyticsService) Trend(ctx context.Context, userID uint, today time.Time) (*Trend, error) {
	today = dateutil.Day(today)
	start := today.AddDate(0, 0, -6)

	entries, err := s.logRepo.ListCompletedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	perDay := make(map[time.Time]int)
	for _, e := range entries {
		perDay[dateutil.Day(e.LogDate)]++
	}

	trend := &Trend{Days: make([]DayCount, 0, 7)}
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		trend.Days = append(trend.Days, DayCount{Day: day, Count: perDay[day]})
	}

	earlier := trend.Days[0].Count + trend.Days[1].Count + trend.Days[2].Count
	recent := trend.Days[4].Count + trend.Days[5].Count + trend.Days[6].Count
	switch {
	case recent > earlier:
		trend.Label = TrendImproving
	case recent < earlier:
		trend.Label = TrendDeclining
	default:
		trend.Label = TrendStable
	}
	return trend, nil
}

// Leaderboard ranks all users by total completed entries, descending.
func (s *AnalyticsService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	board := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		completed, err := s.logRepo.CountCompletedByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		activeStreaks, err := s.streakRepo.CountActiveByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		board = append(board, LeaderboardEntry{
			Username:          u.Username,
			CompletedCount:    int(completed),
			ActiveStreakCount: int(activeStreaks),
		})
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].CompletedCount > board[j].CompletedCount
	})
	return board, nil
}
