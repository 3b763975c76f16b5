package services

import (
	"context"
	"fmt"

	"github.com/stillpoint-health/backend/internal/model"
	"github.com/stillpoint-health/backend/internal/store"
)

// MessageService relays direct messages between identities.
type MessageService struct {
	store store.Store
}

func NewMessageService(s store.Store) *MessageService { return &MessageService{store: s} }

// Send inserts one message. A message can never be created on behalf of
// another identity: the sender must be the authenticated caller.
func (s *MessageService) Send(ctx context.Context, caller *model.Identity, msg *model.Message) (*model.Message, error) {
	if msg.SenderID != caller.ID {
		return nil, fmt.Errorf("%w: cannot send message as another user", model.ErrForbidden)
	}
	return s.store.Messages().Insert(ctx, msg)
}

// Thread resolves the conversation between the caller and another user via
// the store's named RPC.
func (s *MessageService) Thread(ctx context.Context, callerID, otherID string) ([]model.Message, error) {
	msgs, err := s.store.Messages().Thread(ctx, callerID, otherID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []model.Message{}
	}
	return msgs, nil
}
