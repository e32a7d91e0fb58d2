package mock

import (
	"context"

	"github.com/hostwalk/hostwalk"
)

var _ hostwalk.WalkService = (*WalkService)(nil)

// WalkService is a mock implementation of hostwalk.WalkService.
type WalkService struct {
	CreateWalkFn   func(ctx context.Context, rec *hostwalk.WalkRecord) error
	FindWalkByIDFn func(ctx context.Context, id string) (*hostwalk.WalkRecord, error)
	FindWalksFn    func(ctx context.Context, filter hostwalk.WalkFilter) ([]*hostwalk.WalkRecord, error)
	DeleteWalkFn   func(ctx context.Context, id string) error
}

func (s *WalkService) CreateWalk(ctx context.Context, rec *hostwalk.WalkRecord) error {
	return s.CreateWalkFn(ctx, rec)
}

func (s *WalkService) FindWalkByID(ctx context.Context, id string) (*hostwalk.WalkRecord, error) {
	return s.FindWalkByIDFn(ctx, id)
}

func (s *WalkService) FindWalks(ctx context.Context, filter hostwalk.WalkFilter) ([]*hostwalk.WalkRecord, error) {
	return s.FindWalksFn(ctx, filter)
}

func (s *WalkService) DeleteWalk(ctx context.Context, id string) error {
	return s.DeleteWalkFn(ctx, id)
}
