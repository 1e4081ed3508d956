package application

import (
	"context"
	"fmt"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/cadrebook/cadrebook-cli/internal/ports"
)

// DirectoryService covers user search, profiles, and the optimistic follow
// toggle. Search results live in an observable list; profiles are owned by
// the caller, with the service acting purely as mediator.
type DirectoryService struct {
	gateway ports.UserGateway
	mutator *Mutator
	results *List[domain.UserSummary]
}

func NewDirectoryService(gateway ports.UserGateway, mutator *Mutator) *DirectoryService {
	return &DirectoryService{
		gateway: gateway,
		mutator: mutator,
		results: NewList(func(u domain.UserSummary) int64 { return int64(u.ID) }),
	}
}

// Results exposes the observable search result list.
func (s *DirectoryService) Results() *List[domain.UserSummary] {
	return s.results
}

func (s *DirectoryService) Search(ctx context.Context, query string) error {
	users, err := s.gateway.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search users: %w", err)
	}

	s.results.Set(users)
	return nil
}

func (s *DirectoryService) Profile(ctx context.Context, username string) (domain.Profile, error) {
	profile, err := s.gateway.Profile(ctx, username)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("load profile %s: %w", username, err)
	}
	return profile, nil
}

func (s *DirectoryService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.Profile, error) {
	profile, err := s.gateway.UpdateProfile(ctx, update)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

// ToggleFollowResult flips the follow edge for a user in the search results.
func (s *DirectoryService) ToggleFollowResult(ctx context.Context, id domain.UserID) (*Pending, error) {
	prior, ok := s.results.Get(int64(id))
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}

	return Apply(ctx, s.mutator, prior, Intent[domain.UserSummary]{
		Kind:    KindFollow,
		Entity:  userRef(id),
		Predict: domain.UserSummary.WithFollowToggled,
		Apply:   func(u domain.UserSummary) { s.results.Replace(u) },
		Commit: func(ctx context.Context, predicted domain.UserSummary) (domain.UserSummary, error) {
			state, err := s.commitFollow(ctx, predicted.Username, predicted.IsFollowing)
			if err != nil {
				return domain.UserSummary{}, err
			}
			next := predicted
			next.IsFollowing = state.Following
			return next, nil
		},
	})
}

// ToggleFollowProfile flips the follow edge on a profile the caller owns.
// The caller supplies publish and stores whatever states it receives; the
// follower counter moves by one optimistically and is reconciled with the
// server's canonical counts.
func (s *DirectoryService) ToggleFollowProfile(ctx context.Context, prior domain.Profile, publish func(domain.Profile)) (*Pending, error) {
	return Apply(ctx, s.mutator, prior, Intent[domain.Profile]{
		Kind:    KindFollow,
		Entity:  userRef(prior.ID),
		Predict: domain.Profile.WithFollowToggled,
		Apply:   publish,
		Commit: func(ctx context.Context, predicted domain.Profile) (domain.Profile, error) {
			state, err := s.commitFollow(ctx, predicted.Username, predicted.IsFollowing)
			if err != nil {
				return domain.Profile{}, err
			}
			next := predicted
			next.IsFollowing = state.Following
			next.FollowersCount = state.FollowersCount
			return next, nil
		},
	})
}

func (s *DirectoryService) commitFollow(ctx context.Context, username string, follow bool) (domain.FollowState, error) {
	if follow {
		return s.gateway.Follow(ctx, username)
	}
	return s.gateway.Unfollow(ctx, username)
}

func userRef(id domain.UserID) string {
	return fmt.Sprintf("user/%d", id)
}
