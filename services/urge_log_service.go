package services

import (
	"context"
	"math"
	"time"

	"pureHeartAPI/internal/repository"
	"pureHeartAPI/internal/stats"
	"pureHeartAPI/internal/urgelog"
	"pureHeartAPI/utils"
)

type UrgeLogService struct {
	logs  repository.UrgeLogRepository
	users repository.UserRepository
}

func NewUrgeLogService(logs repository.UrgeLogRepository, users repository.UserRepository) *UrgeLogService {
	return &UrgeLogService{logs: logs, users: users}
}

func (s *UrgeLogService) GetLog(ctx context.Context, id int) (*urgelog.UrgeLog, error) {
	return s.logs.Get(ctx, id)
}

func (s *UrgeLogService) ListByUser(ctx context.Context, userID int) ([]*urgelog.UrgeLog, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.logs.ListByUser(ctx, userID)
}

// Recent returns the user's logs from the last N days.
func (s *UrgeLogService) Recent(ctx context.Context, userID, days int) ([]*urgelog.UrgeLog, error) {
	logs, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	recent := []*urgelog.UrgeLog{}
	for _, l := range logs {
		if l.Timestamp.After(cutoff) {
			recent = append(recent, l)
		}
	}
	return recent, nil
}

// Weekly returns the user's logs within the Monday-to-Sunday week containing
// the anchor date.
func (s *UrgeLogService) Weekly(ctx context.Context, userID int, anchor time.Time) ([]*urgelog.UrgeLog, error) {
	logs, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	start, end := utils.WeekBounds(anchor)
	week := []*urgelog.UrgeLog{}
	for _, l := range logs {
		if !l.Timestamp.Before(start) && l.Timestamp.Before(end) {
			week = append(week, l)
		}
	}
	return week, nil
}

// Summarize reduces the user's whole urge-log history to a report. Read-only.
// Mode ties are broken by the first value encountered in log order, so the
// result is stable across calls; an empty history yields zeroes and nil
// modes instead of failing.
func (s *UrgeLogService) Summarize(ctx context.Context, userID int) (*stats.Summary, error) {
	logs, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &stats.Summary{}
	if len(logs) == 0 {
		return summary, nil
	}

	intensitySum := 0
	for _, l := range logs {
		summary.TotalTransformations++
		summary.TotalPointsEarned += l.TransformationPoints
		summary.TotalSpiritualGrowth += l.SpiritualGrowth
		intensitySum += l.Intensity
	}

	if trigger := modeOf(logs, func(l *urgelog.UrgeLog) string { return string(l.Trigger) }); trigger != "" {
		summary.MostCommonTrigger = &trigger
	}
	if coping := modeOf(logs, func(l *urgelog.UrgeLog) string { return l.CopingStrategy }); coping != "" {
		summary.MostUsedCoping = &coping
	}

	avg := float64(intensitySum) / float64(len(logs))
	summary.AverageIntensity = math.Round(avg*10) / 10
	return summary, nil
}

// modeOf finds the most frequent non-empty key. Only a strictly greater count
// displaces the current winner, which is what pins ties to first occurrence.
func modeOf(logs []*urgelog.UrgeLog, key func(*urgelog.UrgeLog) string) string {
	counts := map[string]int{}
	best := ""
	bestCount := 0
	for _, l := range logs {
		k := key(l)
		if k == "" {
			continue
		}
		counts[k]++
		if counts[k] > bestCount {
			best = k
			bestCount = counts[k]
		}
	}
	return best
}
