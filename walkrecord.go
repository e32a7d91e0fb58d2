package hostwalk

import (
	"context"
	"time"
)

// WalkRecord is the stored report of one completed traversal. Records
// describe outcomes only; frontier and visited-set state is never
// persisted, so a walk cannot be resumed from a record.
type WalkRecord struct {
	ID            string        `json:"id"`
	StartURL      string        `json:"startUrl"`
	Strategy      Strategy      `json:"strategy"`
	Visited       int           `json:"visited"`
	Failed        int           `json:"failed"`
	RobotsSkipped int           `json:"robotsSkipped"`
	Fingerprint   string        `json:"fingerprint"`
	Duration      time.Duration `json:"duration"`
	StartedAt     time.Time     `json:"startedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *WalkRecord) Validate() error {
	if r.StartURL == "" {
		return Errorf(EINVALID, "walk start URL required")
	}
	if !r.Strategy.Valid() {
		return Errorf(EINVALID, "walk strategy required")
	}
	return nil
}

// WalkService represents a service for managing walk records.
type WalkService interface {
	// CreateWalk stores a new walk record.
	CreateWalk(ctx context.Context, rec *WalkRecord) error

	// FindWalkByID retrieves a walk record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindWalkByID(ctx context.Context, id string) (*WalkRecord, error)

	// FindWalks retrieves walk records matching the filter,
	// most recent first.
	FindWalks(ctx context.Context, filter WalkFilter) ([]*WalkRecord, error)

	// DeleteWalk permanently removes a walk record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteWalk(ctx context.Context, id string) error
}

// WalkFilter represents a filter for FindWalks.
type WalkFilter struct {
	ID       *string `json:"id"`
	StartURL *string `json:"startUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
