package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/repository"
	"go.uber.org/zap"
)

type MatchUseCase struct {
	userRepo  repository.UserRepository
	likeRepo  repository.LikeRepository
	matchRepo repository.MatchRepository
	notifier  domain.Notifier
	logger    *zap.Logger
}

func NewMatchUseCase(
	userRepo repository.UserRepository,
	likeRepo repository.LikeRepository,
	matchRepo repository.MatchRepository,
	notifier domain.Notifier,
	logger *zap.Logger,
) *MatchUseCase {
	return &MatchUseCase{
		userRepo:  userRepo,
		likeRepo:  likeRepo,
		matchRepo: matchRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// LikeResult tells the liker whether their like closed a mutual pair.
type LikeResult struct {
	Matched bool          `json:"matched"`
	Match   *domain.Match `json:"match,omitempty"`
}

// MatchView is a match as listed to one of its participants.
type MatchView struct {
	ID        string             `json:"id"`
	OtherUser domain.UserSummary `json:"other_user"`
	CreatedAt string             `json:"created_at"`
}

// Like records likerID liking likedID. If the liked user already likes
// the liker back, the pair transitions to a match and both sides are
// notified; otherwise the liked user gets a PROFILE_LIKED push.
func (uc *MatchUseCase) Like(ctx context.Context, likerID, likedID string) (*LikeResult, error) {
	if likerID == likedID {
		return nil, domain.ErrSelfLike
	}

	liked, err := uc.userRepo.GetByID(ctx, likedID)
	if err != nil {
		return nil, err
	}
	liker, err := uc.userRepo.GetByID(ctx, likerID)
	if err != nil {
		return nil, err
	}

	if err := uc.likeRepo.Create(ctx, &domain.Like{LikerID: likerID, LikedID: likedID}); err != nil {
		return nil, err
	}

	reverse, err := uc.likeRepo.GetByUsers(ctx, likedID, likerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check reciprocal like: %w", err)
	}

	if reverse == nil {
		uc.notifier.Deliver(likedID, domain.PushEvent{
			Type:       domain.PushProfileLiked,
			SenderID:   likerID,
			SenderName: liker.Name,
		})
		return &LikeResult{Matched: false}, nil
	}

	m := &domain.Match{User1ID: likerID, User2ID: likedID}
	if err := uc.matchRepo.Create(ctx, m); err != nil {
		// Concurrent mutual likes both reach this point; the unique pair
		// constraint keeps a single row and the loser surfaces the
		// conflict instead of double-inserting.
		return nil, err
	}

	uc.logger.Info("match created",
		zap.String("match_id", m.ID),
		zap.String("user1_id", m.User1ID),
		zap.String("user2_id", m.User2ID))

	likerSummary := liker.Summary()
	likedSummary := liked.Summary()
	uc.notifier.Deliver(likerID, domain.PushEvent{
		Type:      domain.PushNewMatch,
		MatchID:   m.ID,
		OtherUser: &likedSummary,
	})
	uc.notifier.Deliver(likedID, domain.PushEvent{
		Type:      domain.PushNewMatch,
		MatchID:   m.ID,
		OtherUser: &likerSummary,
	})

	return &LikeResult{Matched: true, Match: m}, nil
}

// Pass acknowledges a skip. Nothing is persisted, so a passed profile may
// reappear in later feeds.
func (uc *MatchUseCase) Pass(ctx context.Context, passerID, passedID string) error {
	if passerID == passedID {
		return domain.ErrSelfLike
	}
	if _, err := uc.userRepo.GetByID(ctx, passedID); err != nil {
		return err
	}
	return nil
}

// UserMatches lists the caller's matches, most recently active first.
func (uc *MatchUseCase) UserMatches(ctx context.Context, userID string) ([]*MatchView, error) {
	matches, err := uc.matchRepo.UserMatches(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*MatchView, 0, len(matches))
	for _, m := range matches {
		other, err := uc.userRepo.GetByID(ctx, m.OtherUserID(userID))
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		views = append(views, &MatchView{
			ID:        m.ID,
			OtherUser: other.Summary(),
			CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return views, nil
}

// LikesReceived lists users who liked the caller and are not yet matched
// with them.
func (uc *MatchUseCase) LikesReceived(ctx context.Context, userID string, limit, offset int) ([]domain.UserSummary, error) {
	likes, err := uc.likeRepo.LikesReceived(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.UserSummary, 0, len(likes))
	for _, l := range likes {
		if _, err := uc.matchRepo.GetByUsers(ctx, l.LikerID, userID); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrMatchNotFound) {
			return nil, err
		}
		liker, err := uc.userRepo.GetByID(ctx, l.LikerID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		summaries = append(summaries, liker.Summary())
	}
	return summaries, nil
}
