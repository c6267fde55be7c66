package message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/repository"
	"go.uber.org/zap"
)

const (
	previewLength  = 50
	defaultHistory = 50
	maxHistory     = 200
)

type MessageUseCase struct {
	userRepo  repository.UserRepository
	matchRepo repository.MatchRepository
	msgRepo   repository.MessageRepository
	notifier  domain.Notifier
	logger    *zap.Logger
}

func NewMessageUseCase(
	userRepo repository.UserRepository,
	matchRepo repository.MatchRepository,
	msgRepo repository.MessageRepository,
	notifier domain.Notifier,
	logger *zap.Logger,
) *MessageUseCase {
	return &MessageUseCase{
		userRepo:  userRepo,
		matchRepo: matchRepo,
		msgRepo:   msgRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Send stores a message inside a match the sender participates in. The
// receiver is always the other participant; it is derived, never taken
// from the request.
func (uc *MessageUseCase) Send(ctx context.Context, senderID, matchID, content string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrInvalidInput
	}

	m, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.HasUser(senderID) {
		return nil, domain.ErrNotMatchParticipant
	}

	// Resolved before the insert so a lookup failure cannot fail a send
	// whose row was already persisted.
	sender, err := uc.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		MatchID:    matchID,
		SenderID:   senderID,
		ReceiverID: m.OtherUserID(senderID),
		Content:    content,
	}
	if err := uc.msgRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if err := uc.matchRepo.Touch(ctx, matchID); err != nil {
		uc.logger.Warn("failed to bump match activity",
			zap.String("match_id", matchID), zap.Error(err))
	}

	unread, err := uc.msgRepo.UnreadCount(ctx, msg.ReceiverID)
	if err != nil {
		uc.logger.Warn("failed to count unread messages",
			zap.String("receiver_id", msg.ReceiverID), zap.Error(err))
		unread = 0
	}

	uc.notifier.BroadcastToMatch(matchID, domain.PushEvent{
		Type:    domain.PushNewMessage,
		MatchID: matchID,
		Message: msg,
	})
	uc.notifier.Deliver(msg.ReceiverID, domain.PushEvent{
		Type:       domain.PushNewMessage,
		MatchID:    matchID,
		SenderID:   senderID,
		SenderName: sender.Name,
		Preview:    preview(content),
	})
	uc.notifier.Deliver(msg.ReceiverID, domain.PushEvent{
		Type:        domain.PushUnreadCount,
		UnreadCount: &unread,
	})

	return msg, nil
}

// MarkRead marks a message read. Only the receiver may do this; marking
// an already-read message succeeds without effect.
func (uc *MessageUseCase) MarkRead(ctx context.Context, userID, messageID string) error {
	msg, err := uc.msgRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.ReceiverID != userID {
		return domain.ErrNotMessageReceiver
	}
	if msg.IsRead {
		return nil
	}
	return uc.msgRepo.MarkRead(ctx, messageID)
}

// UnreadCount returns the user's total unread messages across matches.
func (uc *MessageUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	return uc.msgRepo.UnreadCount(ctx, userID)
}

// History pages through a match's messages in ascending creation order.
func (uc *MessageUseCase) History(ctx context.Context, userID, matchID string, limit, offset int) ([]*domain.Message, error) {
	m, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.HasUser(userID) {
		return nil, domain.ErrNotMatchParticipant
	}

	if limit < 1 {
		limit = defaultHistory
	}
	if limit > maxHistory {
		limit = maxHistory
	}
	if offset < 0 {
		offset = 0
	}
	return uc.msgRepo.MatchMessages(ctx, matchID, limit, offset)
}

// Conversations lists the user's matches as a chat inbox, most recently
// active first. Matches without messages still appear so a fresh match
// is visible immediately.
func (uc *MessageUseCase) Conversations(ctx context.Context, userID string) ([]*domain.Conversation, error) {
	matches, err := uc.matchRepo.UserMatches(ctx, userID)
	if err != nil {
		return nil, err
	}

	convs := make([]*domain.Conversation, 0, len(matches))
	for _, m := range matches {
		other, err := uc.userRepo.GetByID(ctx, m.OtherUserID(userID))
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		last, err := uc.msgRepo.LastMessage(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		unread, err := uc.msgRepo.UnreadCountByMatch(ctx, m.ID, userID)
		if err != nil {
			return nil, err
		}
		convs = append(convs, &domain.Conversation{
			MatchID:     m.ID,
			OtherUser:   other.Summary(),
			LastMessage: last,
			UnreadCount: unread,
			UpdatedAt:   m.UpdatedAt,
		})
	}
	return convs, nil
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength])
}
