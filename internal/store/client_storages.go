package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/logger"
)

// ClientStorages groups the catalog repositories into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	Contacts      ContactRepository
	Campaigns     CampaignRepository
	Templates     TemplateRepository
	FollowUps     FollowUpRepository
	Conversations ConversationRepository

	db *DB
}

// NewClientStorages initialises the catalog storage layer:
//  1. Opens the database named by cfg.DB.DSN (SQLite unless it is a
//     postgres:// URL).
//  2. Applies the schema and sample data via [DB.Migrate].
//  3. Wires every repository to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Contacts:      NewContactRepository(db, logger),
		Campaigns:     NewCampaignRepository(db, logger),
		Templates:     NewTemplateRepository(db, logger),
		FollowUps:     NewFollowUpRepository(db, logger),
		Conversations: NewConversationRepository(db, logger),
		db:            db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
