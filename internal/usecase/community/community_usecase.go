package community

import (
	"context"
	"strings"
	"time"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/repository"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

type CommunityUseCase struct {
	communityRepo repository.CommunityRepository
	logger        *zap.Logger
}

func NewCommunityUseCase(communityRepo repository.CommunityRepository, logger *zap.Logger) *CommunityUseCase {
	return &CommunityUseCase{communityRepo: communityRepo, logger: logger}
}

type CreatePostInput struct {
	Content string          `json:"content" binding:"required,max=2000"`
	Type    domain.PostType `json:"type" binding:"required,post_type"`
	Verse   *string         `json:"verse"`
}

type CreateEventInput struct {
	Title        string           `json:"title" binding:"required,max=200"`
	Description  string           `json:"description" binding:"required,max=2000"`
	Type         domain.EventType `json:"type" binding:"required,event_type"`
	Date         time.Time        `json:"date" binding:"required"`
	Time         string           `json:"time" binding:"required"`
	Location     string           `json:"location" binding:"required"`
	IsVirtual    bool             `json:"is_virtual"`
	MaxAttendees *int             `json:"max_attendees" binding:"omitempty,min=2"`
}

type CreatePrayerRequestInput struct {
	Content     string `json:"content" binding:"required,max=2000"`
	IsAnonymous bool   `json:"is_anonymous"`
}

func (uc *CommunityUseCase) CreatePost(ctx context.Context, userID string, in *CreatePostInput) (*domain.CommunityPost, error) {
	post := &domain.CommunityPost{
		UserID:  userID,
		Content: strings.TrimSpace(in.Content),
		Type:    in.Type,
		Verse:   in.Verse,
	}
	if post.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.communityRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (uc *CommunityUseCase) ListPosts(ctx context.Context, page, pageSize int) ([]*domain.CommunityPost, error) {
	limit, offset := pageBounds(page, pageSize)
	return uc.communityRepo.ListPosts(ctx, limit, offset)
}

func (uc *CommunityUseCase) LikePost(ctx context.Context, userID, postID string) error {
	return uc.communityRepo.LikePost(ctx, userID, postID)
}

func (uc *CommunityUseCase) UnlikePost(ctx context.Context, userID, postID string) error {
	return uc.communityRepo.UnlikePost(ctx, userID, postID)
}

func (uc *CommunityUseCase) CommentOnPost(ctx context.Context, userID, postID, content string) (*domain.PostComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrInvalidInput
	}
	comment := &domain.PostComment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := uc.communityRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *CommunityUseCase) CreateEvent(ctx context.Context, hostID string, in *CreateEventInput) (*domain.Event, error) {
	event := &domain.Event{
		HostID:       hostID,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Type:         in.Type,
		Date:         in.Date,
		Time:         in.Time,
		Location:     in.Location,
		IsVirtual:    in.IsVirtual,
		MaxAttendees: in.MaxAttendees,
	}
	if err := uc.communityRepo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	// The host attends their own event.
	if err := uc.communityRepo.JoinEvent(ctx, hostID, event.ID); err != nil {
		uc.logger.Warn("failed to add host as attendee",
			zap.String("event_id", event.ID), zap.Error(err))
	} else {
		event.AttendeeCount = 1
	}
	return event, nil
}

func (uc *CommunityUseCase) ListUpcomingEvents(ctx context.Context, page, pageSize int) ([]*domain.Event, error) {
	limit, offset := pageBounds(page, pageSize)
	return uc.communityRepo.ListUpcomingEvents(ctx, limit, offset)
}

func (uc *CommunityUseCase) JoinEvent(ctx context.Context, userID, eventID string) error {
	return uc.communityRepo.JoinEvent(ctx, userID, eventID)
}

func (uc *CommunityUseCase) LeaveEvent(ctx context.Context, userID, eventID string) error {
	return uc.communityRepo.LeaveEvent(ctx, userID, eventID)
}

// CreatePrayerRequest stores a prayer request. Anonymous requests drop
// the author link entirely so later listings cannot expose it.
func (uc *CommunityUseCase) CreatePrayerRequest(ctx context.Context, userID string, in *CreatePrayerRequestInput) (*domain.PrayerRequest, error) {
	req := &domain.PrayerRequest{
		Content:     strings.TrimSpace(in.Content),
		IsAnonymous: in.IsAnonymous,
	}
	if req.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.IsAnonymous {
		req.UserID = &userID
	}
	if err := uc.communityRepo.CreatePrayerRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (uc *CommunityUseCase) ListPrayerRequests(ctx context.Context, page, pageSize int) ([]*domain.PrayerRequest, error) {
	limit, offset := pageBounds(page, pageSize)
	return uc.communityRepo.ListPrayerRequests(ctx, limit, offset)
}

func (uc *CommunityUseCase) Pray(ctx context.Context, userID, prayerRequestID string) error {
	return uc.communityRepo.Pray(ctx, userID, prayerRequestID)
}

func (uc *CommunityUseCase) CreateBlessWallEntry(ctx context.Context, userID, content string) (*domain.BlessWallEntry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrInvalidInput
	}
	entry := &domain.BlessWallEntry{UserID: userID, Content: content}
	if err := uc.communityRepo.CreateBlessWallEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (uc *CommunityUseCase) ListBlessWall(ctx context.Context, page, pageSize int) ([]*domain.BlessWallEntry, error) {
	limit, offset := pageBounds(page, pageSize)
	return uc.communityRepo.ListBlessWallEntries(ctx, limit, offset)
}

func pageBounds(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageSize, (page - 1) * pageSize
}
