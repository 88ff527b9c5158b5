package service

import (
	"context"
	"fmt"
	"sort"

	"mpt/internal/modules/roster/domain"
	rosterout "mpt/internal/modules/roster/port/out"
	apperrors "mpt/internal/platform/errors"
)

type RosterService struct {
	users rosterout.UserStore
}

func NewRosterService(users rosterout.UserStore) *RosterService {
	return &RosterService{users: users}
}

// List returns users matching the query and enrolment filter, sorted by id.
func (s *RosterService) List(ctx context.Context, query, enrolFilter string) ([]domain.User, error) {
	all, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.User, 0, len(all))
	for _, user := range all {
		if !user.Matches(query) {
			continue
		}
		if enrolFilter != "" && user.Enrolled != enrolFilter {
			continue
		}
		matched = append(matched, user)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (s *RosterService) Get(ctx context.Context, id string) (domain.User, error) {
	all, err := s.users.All(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, user := range all {
		if user.ID == id {
			return user, nil
		}
	}
	return domain.User{}, fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
}

// Add appends a user unless the id is already on the roster. An existing id is
// not an error; details on record win, even when they differ.
func (s *RosterService) Add(ctx context.Context, user domain.User) (bool, error) {
	if err := user.Validate(); err != nil {
		return false, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	all, err := s.users.All(ctx)
	if err != nil {
		return false, err
	}
	for _, existing := range all {
		if existing.ID == user.ID {
			return false, nil
		}
	}
	if err := s.users.Append(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}
