package repository

import (
	"context"

	"github.com/faithbliss/backend/internal/domain"
)

type CommunityRepository interface {
	CreatePost(ctx context.Context, post *domain.CommunityPost) error
	ListPosts(ctx context.Context, limit, offset int) ([]*domain.CommunityPost, error)
	LikePost(ctx context.Context, userID, postID string) error
	UnlikePost(ctx context.Context, userID, postID string) error
	CreateComment(ctx context.Context, comment *domain.PostComment) error

	CreateEvent(ctx context.Context, event *domain.Event) error
	ListUpcomingEvents(ctx context.Context, limit, offset int) ([]*domain.Event, error)
	JoinEvent(ctx context.Context, userID, eventID string) error
	LeaveEvent(ctx context.Context, userID, eventID string) error

	CreatePrayerRequest(ctx context.Context, req *domain.PrayerRequest) error
	ListPrayerRequests(ctx context.Context, limit, offset int) ([]*domain.PrayerRequest, error)
	Pray(ctx context.Context, userID, prayerRequestID string) error

	CreateBlessWallEntry(ctx context.Context, entry *domain.BlessWallEntry) error
	ListBlessWallEntries(ctx context.Context, limit, offset int) ([]*domain.BlessWallEntry, error)
}
