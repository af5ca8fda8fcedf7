package service

import (
	"context"

	"github.com/MKhiriev/go-wa-desk/internal/store"
	"github.com/MKhiriev/go-wa-desk/models"
)

type inboxService struct {
	conversations store.ConversationRepository
}

func NewInboxService(conversations store.ConversationRepository) InboxService {
	return &inboxService{conversations: conversations}
}

func (s *inboxService) Conversations(ctx context.Context, search string) ([]models.Conversation, error) {
	return s.conversations.ListConversations(ctx, search)
}

func (s *inboxService) Thread(ctx context.Context, conversationID int64) ([]models.ChatEntry, error) {
	return s.conversations.ListChatEntries(ctx, conversationID)
}
