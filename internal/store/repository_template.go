package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

type templateRepository struct {
	*DB
	logger *logger.Logger
}

func NewTemplateRepository(db *DB, logger *logger.Logger) TemplateRepository {
	return &templateRepository{
		DB:     db,
		logger: logger,
	}
}

func scanTemplate(row rowScanner) (models.Template, error) {
	var (
		t          models.Template
		status     string
		headerType string
		buttons    string
	)

	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Category,
		&t.Language,
		&status,
		&t.LastUpdated,
		&t.BodyPreview,
		&t.Usage,
		&t.Channel,
		&t.ProviderID,
		&headerType,
		&t.HeaderText,
		&t.Footer,
		&buttons,
	)
	if err != nil {
		return models.Template{}, err
	}

	t.Status = models.TemplateState(status)
	t.HeaderType = models.TemplateHeaderType(headerType)
	t.Buttons = models.ParseTemplateButtons(buttons)
	return t, nil
}

func (r *templateRepository) ListTemplates(ctx context.Context, filter models.TemplateFilter) ([]models.Template, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListTemplatesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "templateRepository.ListTemplates").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "templateRepository.ListTemplates").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	templates := make([]models.Template, 0, 8)
	for rows.Next() {
		t, scanErr := scanTemplate(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "templateRepository.ListTemplates").Msg("failed to scan template")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		templates = append(templates, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return templates, nil
}

func (r *templateRepository) GetTemplate(ctx context.Context, id int64) (models.Template, error) {
	query, args, err := r.builder.Select(templateColumns...).From(tableTemplates).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Template{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	t, err := scanTemplate(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Template{}, ErrTemplateNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "templateRepository.GetTemplate").Int64("template_id", id).Msg("failed to get template")
		return models.Template{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return t, nil
}

func (r *templateRepository) CreateTemplate(ctx context.Context, tpl models.Template) (models.Template, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertTemplateQuery(tpl)
	if err != nil {
		return models.Template{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&tpl.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Template{}, ErrAlreadyExists
		}
		log.Err(err).Str("func", "templateRepository.CreateTemplate").Msg("failed to insert template")
		return models.Template{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "templateRepository.CreateTemplate").Int64("template_id", tpl.ID).Msg("template created")
	return tpl, nil
}

// SetTemplateStatus stores a new approval state and bumps last_updated.
func (r *templateRepository) SetTemplateStatus(ctx context.Context, id int64, status models.TemplateState, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Update(tableTemplates).
		Set("status", string(status)).
		Set("last_updated", updatedAt.UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.execRetrying(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "templateRepository.SetTemplateStatus").Int64("template_id", id).Msg("failed to update template")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

func (r *templateRepository) TemplateStats(ctx context.Context) (models.TemplateStats, error) {
	var stats models.TemplateStats

	query, args, err := r.buildTemplateStatsQuery()
	if err != nil {
		return stats, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&stats.Total, &stats.Approved, &stats.Drafts); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "templateRepository.TemplateStats").Msg("failed to count templates")
		return stats, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}

func (r *templateRepository) ListCategories(ctx context.Context) ([]string, error) {
	query, args, err := r.buildDistinctQuery(tableTemplates, "category")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.queryStrings(ctx, query, args...)
}

func (r *templateRepository) ListLanguages(ctx context.Context) ([]string, error) {
	query, args, err := r.buildDistinctQuery(tableTemplates, "language")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.queryStrings(ctx, query, args...)
}
