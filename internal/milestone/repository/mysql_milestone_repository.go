// Package repository provides data persistence implementations for milestone entities.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/skywalker/milestones/internal/database"
	"github.com/skywalker/milestones/internal/milestone/domain"

	apperrors "github.com/skywalker/milestones/internal/errors"
)

// MySQLMilestoneRepository handles milestone persistence for MySQL
type MySQLMilestoneRepository struct {
	db *sql.DB
}

// NewMySQLMilestoneRepository creates a new MySQLMilestoneRepository
func NewMySQLMilestoneRepository(db *sql.DB) *MySQLMilestoneRepository {
	return &MySQLMilestoneRepository{
		db: db,
	}
}

// Create inserts a new milestone
func (r *MySQLMilestoneRepository) Create(ctx context.Context, milestone *domain.Milestone) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO milestones (id, user_id, title, description, completed, achieve_date, completed_date, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUIDs to bytes for MySQL BINARY(16)
	idBytes, err := milestone.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	userIDBytes, err := milestone.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		idBytes, userIDBytes, milestone.Title, milestone.Description,
		milestone.Completed, milestone.AchieveDate, milestone.CompletedDate,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create milestone")
	}
	return nil
}

// GetByID retrieves a milestone by ID, scoped to its owner
func (r *MySQLMilestoneRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Milestone, error) {
	var milestone domain.Milestone
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, title, description, completed, achieve_date, completed_date, created_at, updated_at
			  FROM milestones WHERE id = ? AND user_id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var rowID, rowUserID []byte
	err = querier.QueryRowContext(ctx, query, idBytes, userIDBytes).Scan(
		&rowID, &rowUserID, &milestone.Title, &milestone.Description,
		&milestone.Completed, &milestone.AchieveDate, &milestone.CompletedDate,
		&milestone.CreatedAt, &milestone.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMilestoneNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get milestone by id")
	}

	if err := milestone.ID.UnmarshalBinary(rowID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := milestone.UserID.UnmarshalBinary(rowUserID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &milestone, nil
}

// ListByUser retrieves all milestones owned by the given user
func (r *MySQLMilestoneRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Milestone, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, title, description, completed, achieve_date, completed_date, created_at, updated_at
			  FROM milestones WHERE user_id = ? ORDER BY created_at`

	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	rows, err := querier.QueryContext(ctx, query, userIDBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list milestones")
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		var milestone domain.Milestone
		var rowID, rowUserID []byte
		err := rows.Scan(
			&rowID, &rowUserID, &milestone.Title, &milestone.Description,
			&milestone.Completed, &milestone.AchieveDate, &milestone.CompletedDate,
			&milestone.CreatedAt, &milestone.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan milestone")
		}
		if err := milestone.ID.UnmarshalBinary(rowID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		if err := milestone.UserID.UnmarshalBinary(rowUserID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		milestones = append(milestones, &milestone)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate milestones")
	}

	return milestones, nil
}

// Update persists changes to a milestone, scoped to its owner
func (r *MySQLMilestoneRepository) Update(ctx context.Context, milestone *domain.Milestone) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE milestones
			  SET title = ?, description = ?, completed = ?, achieve_date = ?, completed_date = ?, updated_at = NOW()
			  WHERE id = ? AND user_id = ?`

	idBytes, err := milestone.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	userIDBytes, err := milestone.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query,
		milestone.Title, milestone.Description, milestone.Completed,
		milestone.AchieveDate, milestone.CompletedDate,
		idBytes, userIDBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update milestone")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrMilestoneNotFound
	}

	return nil
}

// Delete removes a milestone, scoped to its owner
func (r *MySQLMilestoneRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM milestones WHERE id = ? AND user_id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, idBytes, userIDBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete milestone")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrMilestoneNotFound
	}

	return nil
}
