package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

type campaignRepository struct {
	*DB
	logger *logger.Logger
}

func NewCampaignRepository(db *DB, logger *logger.Logger) CampaignRepository {
	return &campaignRepository{
		DB:     db,
		logger: logger,
	}
}

func scanCampaign(row rowScanner) (models.Campaign, error) {
	var (
		c           models.Campaign
		status      string
		scheduledAt sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Audience,
		&status,
		&c.Sent,
		&c.Delivered,
		&c.Read,
		&c.Replied,
		&c.Progress,
		&scheduledAt,
		&c.Message,
		&c.Objective,
	)
	if err != nil {
		return models.Campaign{}, err
	}

	c.Status = models.CampaignStatus(status)
	if scheduledAt.Valid {
		at := scheduledAt.Time
		c.ScheduledAt = &at
	}
	return c, nil
}

func (r *campaignRepository) ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListCampaignsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.ListCampaigns").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.ListCampaigns").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	campaigns := make([]models.Campaign, 0, 8)
	for rows.Next() {
		c, scanErr := scanCampaign(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "campaignRepository.ListCampaigns").Msg("failed to scan campaign")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		campaigns = append(campaigns, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return campaigns, nil
}

func (r *campaignRepository) GetCampaign(ctx context.Context, id int64) (models.Campaign, error) {
	query, args, err := r.builder.Select(campaignColumns...).From(tableCampaigns).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanCampaign(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Campaign{}, ErrCampaignNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "campaignRepository.GetCampaign").Int64("campaign_id", id).Msg("failed to get campaign")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertCampaignQuery(campaign)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&campaign.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Campaign{}, ErrAlreadyExists
		}
		log.Err(err).Str("func", "campaignRepository.CreateCampaign").Msg("failed to insert campaign")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return campaign, nil
}

func (r *campaignRepository) SetCampaignStatus(ctx context.Context, id int64, status models.CampaignStatus) error {
	return r.setStatus(ctx, tableCampaigns, id, string(status), ErrCampaignNotFound)
}

// CampaignTotals sums the counters over every campaign regardless of status.
func (r *campaignRepository) CampaignTotals(ctx context.Context) (models.CampaignTotals, error) {
	var totals models.CampaignTotals

	query, args, err := r.buildCampaignTotalsQuery()
	if err != nil {
		return totals, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&totals.Sent, &totals.Delivered, &totals.Replied); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "campaignRepository.CampaignTotals").Msg("failed to sum campaigns")
		return totals, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return totals, nil
}
