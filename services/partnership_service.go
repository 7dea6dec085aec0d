package services

import (
	"context"
	"strings"
	"time"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/partnership"
	"pureHeartAPI/internal/repository"
	"pureHeartAPI/utils"
)

// PartnershipService runs the pending → active → ended state machine and the
// shared-streak counter between paired users.
type PartnershipService struct {
	partnerships repository.PartnershipRepository
	users        repository.UserRepository
	locks        *EntityLocks
}

func NewPartnershipService(partnerships repository.PartnershipRepository, users repository.UserRepository, locks *EntityLocks) *PartnershipService {
	return &PartnershipService{partnerships: partnerships, users: users, locks: locks}
}

// GetCurrent returns the user's pending or active partnership, or nil when
// the user has none.
func (s *PartnershipService) GetCurrent(ctx context.Context, userID int) (*partnership.Partnership, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	return s.partnerships.CurrentForUser(ctx, userID)
}

// Request creates a pending partnership. Each user can be in at most one
// partnership that is not ended.
func (s *PartnershipService) Request(ctx context.Context, userID, partnerID int) (*partnership.Partnership, error) {
	if userID == partnerID {
		return nil, apperr.Validationf("cannot partner with yourself")
	}
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.users.Get(ctx, partnerID); err != nil {
		return nil, err
	}

	// Lock both members in id order so concurrent requests cannot deadlock.
	first, second := userID, partnerID
	if second < first {
		first, second = second, first
	}
	unlockFirst := s.locks.Lock(userKey(first))
	defer unlockFirst()
	unlockSecond := s.locks.Lock(userKey(second))
	defer unlockSecond()

	for _, id := range []int{userID, partnerID} {
		current, err := s.partnerships.CurrentForUser(ctx, id)
		if err != nil {
			return nil, err
		}
		if current != nil {
			return nil, apperr.Conflictf("user %d already has a partnership", id)
		}
	}

	p := &partnership.Partnership{
		User1ID: userID,
		User2ID: partnerID,
		Status:  partnership.StatusPending,
	}
	return s.partnerships.Create(ctx, p)
}

// Accept promotes a pending partnership to active. Any other starting state
// is an invalid transition.
func (s *PartnershipService) Accept(ctx context.Context, id int) (*partnership.Partnership, error) {
	unlock := s.locks.Lock(partnershipKey(id))
	defer unlock()

	p, err := s.partnerships.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != partnership.StatusPending {
		return nil, apperr.Statef("partnership %d is %s, only pending partnerships can be accepted", id, p.Status)
	}

	now := time.Now()
	p.Status = partnership.StatusActive
	p.AcceptedAt = &now
	return s.partnerships.Update(ctx, p)
}

// CheckIn advances the shared streak by one, at most once per calendar day
// per partnership. A same-day repeat returns the partnership unchanged.
func (s *PartnershipService) CheckIn(ctx context.Context, userID, partnerID int) (*partnership.Partnership, error) {
	current, err := s.GetCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperr.Statef("user %d has no active partnership", userID)
	}

	unlock := s.locks.Lock(partnershipKey(current.ID))
	defer unlock()

	// Re-read under the lock; a concurrent check-in may have applied first.
	p, err := s.partnerships.Get(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	if p.Status != partnership.StatusActive {
		return nil, apperr.Statef("partnership %d is %s, check-in requires an active partnership", p.ID, p.Status)
	}
	if !p.Involves(userID) || p.PartnerOf(userID) != partnerID {
		return nil, apperr.Validationf("partnership %d does not pair users %d and %d", p.ID, userID, partnerID)
	}

	now := time.Now()
	if p.LastCheckIn != nil && utils.SameDay(*p.LastCheckIn, now) {
		return p, nil
	}

	p.SharedStreak++
	p.LastCheckIn = &now
	return s.partnerships.Update(ctx, p)
}

// End terminates the user's current partnership. Ended is terminal; the
// record stays for history but no longer matches current lookups, and
// neither member's personal streak is touched.
func (s *PartnershipService) End(ctx context.Context, userID int) (*partnership.Partnership, error) {
	current, err := s.GetCurrent(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperr.NotFoundf("user %d has no partnership to end", userID)
	}

	unlock := s.locks.Lock(partnershipKey(current.ID))
	defer unlock()

	p, err := s.partnerships.Get(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	if p.Status == partnership.StatusEnded {
		return p, nil
	}

	now := time.Now()
	p.Status = partnership.StatusEnded
	p.EndedAt = &now
	return s.partnerships.Update(ctx, p)
}

// SendMessage appends a timestamped text entry to the partner channel.
// Fire-and-record: no delivery guarantees, no read receipts.
func (s *PartnershipService) SendMessage(ctx context.Context, fromID, toID int, body string) (*partnership.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperr.Validationf("message body is required")
	}
	if _, err := s.users.Get(ctx, fromID); err != nil {
		return nil, err
	}
	if _, err := s.users.Get(ctx, toID); err != nil {
		return nil, err
	}

	m := &partnership.Message{
		FromUserID: fromID,
		ToUserID:   toID,
		Body:       body,
	}
	return s.partnerships.AddMessage(ctx, m)
}

func (s *PartnershipService) Messages(ctx context.Context, userA, userB int) ([]*partnership.Message, error) {
	return s.partnerships.MessagesBetween(ctx, userA, userB)
}
