// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// contactRepository is the SQL implementation of [ContactRepository] over the
// "contacts" table.
type contactRepository struct {
	*DB
	logger *logger.Logger
}

func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	return &contactRepository{
		DB:     db,
		logger: logger,
	}
}

func scanContact(row rowScanner) (models.Contact, error) {
	var (
		c           models.Contact
		status      string
		tags        string
		preferences string
	)

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&status,
		&tags,
		&c.LastContact,
		&c.Timezone,
		&preferences,
		&c.AccountValue,
		&c.Notes,
	)
	if err != nil {
		return models.Contact{}, err
	}

	c.Status = models.ContactStatus(status)
	c.Tags = decodeList(tags)
	c.Preferences = decodeList(preferences)
	return c, nil
}

// ListContacts returns the contacts matching filter ordered by id.
func (r *contactRepository) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListContactsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.ListContacts").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.ListContacts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, 16)
	for rows.Next() {
		c, scanErr := scanContact(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "contactRepository.ListContacts").Msg("failed to scan contact")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		if isFilterSet(filter.Tag) && !c.HasTag(filter.Tag) {
			continue
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "contactRepository.ListContacts").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

func (r *contactRepository) GetContact(ctx context.Context, id int64) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select(contactColumns...).From(tableContacts).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanContact(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrContactNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "contactRepository.GetContact").Int64("contact_id", id).Msg("failed to get contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// CreateContact inserts contact and returns it with the assigned id.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertContactQuery(contact)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&contact.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Contact{}, ErrAlreadyExists
		}
		log.Err(err).Str("func", "contactRepository.CreateContact").Msg("failed to insert contact")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "contactRepository.CreateContact").Int64("contact_id", contact.ID).Msg("contact created")
	return contact, nil
}

func (r *contactRepository) SetContactStatus(ctx context.Context, id int64, status models.ContactStatus) error {
	return r.setStatus(ctx, tableContacts, id, string(status), ErrContactNotFound)
}

func (r *contactRepository) ContactStats(ctx context.Context) (models.ContactStats, error) {
	var stats models.ContactStats

	query, args, err := r.buildContactStatsQuery()
	if err != nil {
		return stats, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&stats.Total, &stats.Active, &stats.Blocked); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contactRepository.ContactStats").Msg("failed to count contacts")
		return stats, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}

func (r *contactRepository) ListTags(ctx context.Context) ([]string, error) {
	query, args, err := r.buildDistinctQuery(tableContacts, "tags")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	encoded, err := r.queryStrings(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "contactRepository.ListTags").Msg("failed to list tags")
		return nil, err
	}

	var tags []string
	for _, raw := range encoded {
		for _, tag := range decodeList(raw) {
			if !slices.Contains(tags, tag) {
				tags = append(tags, tag)
			}
		}
	}
	slices.Sort(tags)

	return tags, nil
}
