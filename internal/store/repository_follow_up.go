package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

type followUpRepository struct {
	*DB
	logger *logger.Logger
}

func NewFollowUpRepository(db *DB, logger *logger.Logger) FollowUpRepository {
	return &followUpRepository{
		DB:     db,
		logger: logger,
	}
}

// ListFollowUps returns follow-ups ordered by due time. An empty status or
// "all" lists every follow-up.
func (r *followUpRepository) ListFollowUps(ctx context.Context, status models.FollowUpStatus) ([]models.FollowUpView, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListFollowUpsQuery(status)
	if err != nil {
		log.Err(err).Str("func", "followUpRepository.ListFollowUps").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "followUpRepository.ListFollowUps").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	views := make([]models.FollowUpView, 0, 8)
	for rows.Next() {
		var (
			v            models.FollowUpView
			status, prio string
		)
		scanErr := rows.Scan(
			&v.ID,
			&v.CampaignID,
			&v.ContactID,
			&v.Notes,
			&v.DueAt,
			&status,
			&prio,
			&v.CampaignName,
			&v.ContactName,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "followUpRepository.ListFollowUps").Msg("failed to scan follow-up")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		v.Status = models.FollowUpStatus(status)
		v.Priority = models.Priority(prio)
		views = append(views, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return views, nil
}

func (r *followUpRepository) CreateFollowUp(ctx context.Context, followUp models.FollowUp) (models.FollowUp, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertFollowUpQuery(followUp)
	if err != nil {
		return models.FollowUp{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&followUp.ID); err != nil {
		log.Err(err).Str("func", "followUpRepository.CreateFollowUp").Msg("failed to insert follow-up")
		return models.FollowUp{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return followUp, nil
}

func (r *followUpRepository) SetFollowUpStatus(ctx context.Context, id int64, status models.FollowUpStatus) error {
	return r.setStatus(ctx, tableFollowUps, id, string(status), ErrFollowUpNotFound)
}

func (r *followUpRepository) FollowUpStats(ctx context.Context) (models.FollowUpStats, error) {
	var stats models.FollowUpStats

	query, args, err := r.buildFollowUpStatsQuery()
	if err != nil {
		return stats, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&stats.Scheduled, &stats.Done, &stats.Overdue); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "followUpRepository.FollowUpStats").Msg("failed to count follow-ups")
		return stats, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}

func (r *followUpRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildMarkOverdueQuery(now.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.execRetrying(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "followUpRepository.MarkOverdue").Msg("failed to mark overdue follow-ups")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
