package services

import (
	"context"
	"time"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/milestone"
	"pureHeartAPI/internal/repository"
	"pureHeartAPI/internal/urgelog"
	"pureHeartAPI/internal/user"
	"pureHeartAPI/utils"
)

// RelapseThreshold is the intensity at and above which an urge event counts
// as a relapse and resets the current streak.
const RelapseThreshold = 4

type RecordUrgeResult struct {
	Log         *urgelog.UrgeLog `json:"log"`
	StreakReset bool             `json:"streakReset"`
	User        *user.User       `json:"user"`
}

type StreakService struct {
	users repository.UserRepository
	logs  repository.UrgeLogRepository
	locks *EntityLocks
}

func NewStreakService(users repository.UserRepository, logs repository.UrgeLogRepository, locks *EntityLocks) *StreakService {
	return &StreakService{users: users, logs: logs, locks: locks}
}

func validTrigger(t urgelog.Trigger) bool {
	switch t {
	case urgelog.TriggerStress, urgelog.TriggerBoredom, urgelog.TriggerLoneliness,
		urgelog.TriggerAnger, urgelog.TriggerCuriosity, urgelog.TriggerHabit:
		return true
	}
	return false
}

// RecordUrgeEvent stores an urge log with its derived reward fields computed
// exactly once, credits the rewards to the user, and resets the current
// streak when the intensity classifies as a relapse. Best streak and total
// clean days are historical high-water marks and are never rolled back.
func (s *StreakService) RecordUrgeEvent(ctx context.Context, req *urgelog.CreateUrgeLogRequest) (*RecordUrgeResult, error) {
	if req.Intensity < 1 || req.Intensity > 5 {
		return nil, apperr.Validationf("intensity must be between 1 and 5, got %d", req.Intensity)
	}
	if !validTrigger(req.Trigger) {
		return nil, apperr.Validationf("unknown trigger %q", req.Trigger)
	}

	unlock := s.locks.Lock(userKey(req.UserID))
	defer unlock()

	u, err := s.users.Get(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	points, growth := utils.ScoreUrgeLog(utils.UrgeScoreInput{
		CopingStrategy: req.CopingStrategy,
		EmotionalState: req.EmotionalState,
		Notes:          req.Notes,
	})

	l := &urgelog.UrgeLog{
		UserID:               req.UserID,
		Intensity:            req.Intensity,
		Trigger:              req.Trigger,
		EmotionalState:       req.EmotionalState,
		CopingStrategy:       req.CopingStrategy,
		Notes:                req.Notes,
		TransformationPoints: points,
		SpiritualGrowth:      growth,
	}
	if req.Timestamp != nil {
		l.Timestamp = *req.Timestamp
	}

	stored, err := s.logs.Create(ctx, l)
	if err != nil {
		return nil, err
	}

	reset := req.Intensity >= RelapseThreshold
	if reset {
		u.CurrentStreak = 0
	}
	u.Points += points
	u.Level = user.LevelForPoints(u.Points)
	u.SpiritualScore += growth

	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return nil, err
	}

	return &RecordUrgeResult{Log: stored, StreakReset: reset, User: updated}, nil
}

// AdvanceDailyStreak marks one completed clean day. Advancement is keyed by
// calendar day, not call count: a second call on the same day returns the
// user unchanged.
func (s *StreakService) AdvanceDailyStreak(ctx context.Context, userID int) (*user.User, error) {
	unlock := s.locks.Lock(userKey(userID))
	defer unlock()

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if u.LastCleanDay != nil && utils.SameDay(*u.LastCleanDay, now) {
		return u, nil
	}

	u.CurrentStreak++
	if u.CurrentStreak > u.BestStreak {
		u.BestStreak = u.CurrentStreak
	}
	u.TotalCleanDays++
	u.LastCleanDay = &now

	for _, m := range milestone.Evaluate(u.CurrentStreak).Achieved {
		if !u.HasBadge(m.Title) {
			u.Badges = append(u.Badges, m.Title)
		}
	}

	return s.users.Update(ctx, u)
}

// ResetStreak zeroes the current streak without touching best streak or
// total clean days. This is the relapse path exposed directly.
func (s *StreakService) ResetStreak(ctx context.Context, userID int) (*user.User, error) {
	unlock := s.locks.Lock(userKey(userID))
	defer unlock()

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.CurrentStreak = 0
	return s.users.Update(ctx, u)
}
