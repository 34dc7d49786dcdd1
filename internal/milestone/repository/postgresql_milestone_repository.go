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

// PostgreSQLMilestoneRepository handles milestone persistence for PostgreSQL
type PostgreSQLMilestoneRepository struct {
	db *sql.DB
}

// NewPostgreSQLMilestoneRepository creates a new PostgreSQLMilestoneRepository
func NewPostgreSQLMilestoneRepository(db *sql.DB) *PostgreSQLMilestoneRepository {
	return &PostgreSQLMilestoneRepository{
		db: db,
	}
}

// Create inserts a new milestone
func (r *PostgreSQLMilestoneRepository) Create(ctx context.Context, milestone *domain.Milestone) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO milestones (id, user_id, title, description, completed, achieve_date, completed_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		milestone.ID, milestone.UserID, milestone.Title, milestone.Description,
		milestone.Completed, milestone.AchieveDate, milestone.CompletedDate,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create milestone")
	}
	return nil
}

// GetByID retrieves a milestone by ID, scoped to its owner
func (r *PostgreSQLMilestoneRepository) GetByID(
	ctx context.Context,
	userID, id uuid.UUID,
) (*domain.Milestone, error) {
	var milestone domain.Milestone
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, title, description, completed, achieve_date, completed_date, created_at, updated_at
			  FROM milestones WHERE id = $1 AND user_id = $2`

	err := querier.QueryRowContext(ctx, query, id, userID).Scan(
		&milestone.ID, &milestone.UserID, &milestone.Title, &milestone.Description,
		&milestone.Completed, &milestone.AchieveDate, &milestone.CompletedDate,
		&milestone.CreatedAt, &milestone.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMilestoneNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get milestone by id")
	}

	return &milestone, nil
}

// ListByUser retrieves all milestones owned by the given user
func (r *PostgreSQLMilestoneRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Milestone, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, title, description, completed, achieve_date, completed_date, created_at, updated_at
			  FROM milestones WHERE user_id = $1 ORDER BY created_at`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list milestones")
	}
	defer rows.Close()

	var milestones []*domain.Milestone
	for rows.Next() {
		var milestone domain.Milestone
		err := rows.Scan(
			&milestone.ID, &milestone.UserID, &milestone.Title, &milestone.Description,
			&milestone.Completed, &milestone.AchieveDate, &milestone.CompletedDate,
			&milestone.CreatedAt, &milestone.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan milestone")
		}
		milestones = append(milestones, &milestone)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate milestones")
	}

	return milestones, nil
}

// Update persists changes to a milestone, scoped to its owner
func (r *PostgreSQLMilestoneRepository) Update(ctx context.Context, milestone *domain.Milestone) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE milestones
			  SET title = $1, description = $2, completed = $3, achieve_date = $4, completed_date = $5, updated_at = NOW()
			  WHERE id = $6 AND user_id = $7`

	result, err := querier.ExecContext(ctx, query,
		milestone.Title, milestone.Description, milestone.Completed,
		milestone.AchieveDate, milestone.CompletedDate,
		milestone.ID, milestone.UserID,
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
func (r *PostgreSQLMilestoneRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM milestones WHERE id = $1 AND user_id = $2`

	result, err := querier.ExecContext(ctx, query, id, userID)
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
