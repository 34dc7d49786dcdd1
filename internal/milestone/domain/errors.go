package domain

import (
	"github.com/skywalker/milestones/internal/errors"
)

// Milestone errors.
var (
	// ErrMilestoneNotFound indicates the milestone does not exist or belongs
	// to another user. Both cases look the same to the caller so record IDs
	// cannot be probed across accounts.
	ErrMilestoneNotFound = errors.Wrap(errors.ErrNotFound, "milestone not found")
)
