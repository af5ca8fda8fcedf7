package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/models"
)

// conversationRepository reads inbox threads joined with their contact.
type conversationRepository struct {
	*DB
	logger *logger.Logger
}

func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	return &conversationRepository{
		DB:     db,
		logger: logger,
	}
}

func scanConversation(row rowScanner) (models.Conversation, error) {
	var c models.Conversation
	err := row.Scan(&c.ID, &c.ContactID, &c.Name, &c.Phone, &c.LastMessage, &c.LastAt, &c.Unread)
	return c, err
}

// ListConversations returns threads newest first. search matches contact
// name, phone and the last message.
func (r *conversationRepository) ListConversations(ctx context.Context, search string) ([]models.Conversation, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListConversationsQuery(search)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "conversationRepository.ListConversations").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	conversations := make([]models.Conversation, 0, 8)
	for rows.Next() {
		c, scanErr := scanConversation(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "conversationRepository.ListConversations").Msg("failed to scan conversation")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		conversations = append(conversations, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return conversations, nil
}

func (r *conversationRepository) GetConversation(ctx context.Context, id int64) (models.Conversation, error) {
	query, args, err := r.buildGetConversationQuery(id)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanConversation(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Conversation{}, ErrConversationNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "conversationRepository.GetConversation").Int64("conversation_id", id).Msg("failed to get conversation")
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// ListChatEntries returns the stored thread of a conversation, oldest first.
func (r *conversationRepository) ListChatEntries(ctx context.Context, conversationID int64) ([]models.ChatEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListChatEntriesQuery(conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "conversationRepository.ListChatEntries").Int64("conversation_id", conversationID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ChatEntry, 0, 16)
	for rows.Next() {
		var (
			id        int64
			direction string
			e         models.ChatEntry
		)
		if scanErr := rows.Scan(&id, &e.Body, &e.At, &direction, &e.Status); scanErr != nil {
			log.Err(scanErr).Str("func", "conversationRepository.ListChatEntries").Msg("failed to scan chat entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		e.ID = strconv.FormatInt(id, 10)
		e.Direction = models.Direction(direction)
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
