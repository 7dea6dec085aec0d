package services

import (
	"context"
	"strings"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/repository"
	"pureHeartAPI/internal/user"
)

type UserService struct {
	users        repository.UserRepository
	partnerships repository.PartnershipRepository
	locks        *EntityLocks
}

func NewUserService(users repository.UserRepository, partnerships repository.PartnershipRepository, locks *EntityLocks) *UserService {
	return &UserService{users: users, partnerships: partnerships, locks: locks}
}

func (s *UserService) GetUser(ctx context.Context, id int) (*user.User, error) {
	return s.users.Get(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*user.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		return nil, apperr.Validationf("displayName is required")
	}

	u := &user.User{
		DisplayName:     name,
		Level:           1,
		Badges:          []string{},
		SpiritualScore:  req.SpiritualScore,
		Triggers:        req.Triggers,
		Vulnerabilities: req.Vulnerabilities,
	}
	if u.Triggers == nil {
		u.Triggers = []string{}
	}
	if u.Vulnerabilities == nil {
		u.Vulnerabilities = []string{}
	}
	return s.users.Create(ctx, u)
}

// AddPoints credits transformation points to the user's balance. Points only
// accumulate; a negative amount is rejected before any read.
func (s *UserService) AddPoints(ctx context.Context, id int, amount int) (*user.User, error) {
	if amount < 0 {
		return nil, apperr.Validationf("point amount must be non-negative, got %d", amount)
	}

	unlock := s.locks.Lock(userKey(id))
	defer unlock()

	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Points += amount
	u.Level = user.LevelForPoints(u.Points)
	return s.users.Update(ctx, u)
}

// AvailablePartners lists users who could accept a partnership request:
// everyone except the requester and anyone already in a pending or active
// partnership.
func (s *UserService) AvailablePartners(ctx context.Context, userID int) ([]*user.User, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}

	all, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	available := []*user.User{}
	for _, u := range all {
		if u.ID == userID {
			continue
		}
		current, err := s.partnerships.CurrentForUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			available = append(available, u)
		}
	}
	return available, nil
}
