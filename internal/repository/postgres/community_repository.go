package postgres

import (
	"context"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type communityRepository struct {
	db *sqlx.DB
}

func NewCommunityRepository(db *sqlx.DB) repository.CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) CreatePost(ctx context.Context, post *domain.CommunityPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	query := `
		INSERT INTO community_posts (id, user_id, content, type, verse)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query,
		post.ID, post.UserID, post.Content, post.Type, post.Verse,
	).Scan(&post.CreatedAt)
}

func (r *communityRepository) ListPosts(ctx context.Context, limit, offset int) ([]*domain.CommunityPost, error) {
	query := `
		SELECT p.id, p.user_id, p.content, p.type, p.verse, p.created_at,
		       u.id, u.name, u.age, u.profile_photo_1,
		       (SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id),
		       (SELECT COUNT(*) FROM post_comments pc WHERE pc.post_id = p.id)
		FROM community_posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.CommunityPost
	for rows.Next() {
		var p domain.CommunityPost
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Content, &p.Type, &p.Verse, &p.CreatedAt,
			&p.Author.ID, &p.Author.Name, &p.Author.Age, &p.Author.ProfilePhoto1,
			&p.LikeCount, &p.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

func (r *communityRepository) LikePost(ctx context.Context, userID, postID string) error {
	query := `INSERT INTO post_likes (user_id, post_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, userID, postID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPostAlreadyLiked
		}
		return err
	}
	return nil
}

func (r *communityRepository) UnlikePost(ctx context.Context, userID, postID string) error {
	query := `DELETE FROM post_likes WHERE user_id = $1 AND post_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, postID)
	return err
}

func (r *communityRepository) CreateComment(ctx context.Context, comment *domain.PostComment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO post_comments (id, post_id, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query,
		comment.ID, comment.PostID, comment.UserID, comment.Content,
	).Scan(&comment.CreatedAt)
}

func (r *communityRepository) CreateEvent(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	query := `
		INSERT INTO events (id, host_id, title, description, type, date, time, location, is_virtual, max_attendees)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query,
		event.ID, event.HostID, event.Title, event.Description, event.Type,
		event.Date, event.Time, event.Location, event.IsVirtual, event.MaxAttendees,
	).Scan(&event.CreatedAt)
}

func (r *communityRepository) ListUpcomingEvents(ctx context.Context, limit, offset int) ([]*domain.Event, error) {
	query := `
		SELECT e.id, e.host_id, e.title, e.description, e.type, e.date, e.time,
		       e.location, e.is_virtual, e.max_attendees, e.created_at,
		       u.id, u.name, u.age, u.profile_photo_1,
		       (SELECT COUNT(*) FROM event_attendees ea WHERE ea.event_id = e.id)
		FROM events e
		JOIN users u ON u.id = e.host_id
		WHERE e.date >= NOW()
		ORDER BY e.date ASC, e.id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		var e domain.Event
		err := rows.Scan(
			&e.ID, &e.HostID, &e.Title, &e.Description, &e.Type, &e.Date, &e.Time,
			&e.Location, &e.IsVirtual, &e.MaxAttendees, &e.CreatedAt,
			&e.Host.ID, &e.Host.Name, &e.Host.Age, &e.Host.ProfilePhoto1,
			&e.AttendeeCount,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

func (r *communityRepository) JoinEvent(ctx context.Context, userID, eventID string) error {
	query := `INSERT INTO event_attendees (user_id, event_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, userID, eventID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyAttending
		}
		return err
	}
	return nil
}

func (r *communityRepository) LeaveEvent(ctx context.Context, userID, eventID string) error {
	query := `DELETE FROM event_attendees WHERE user_id = $1 AND event_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, eventID)
	return err
}

func (r *communityRepository) CreatePrayerRequest(ctx context.Context, req *domain.PrayerRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	query := `
		INSERT INTO prayer_requests (id, user_id, content, is_anonymous)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query,
		req.ID, req.UserID, req.Content, req.IsAnonymous,
	).Scan(&req.CreatedAt)
}

func (r *communityRepository) ListPrayerRequests(ctx context.Context, limit, offset int) ([]*domain.PrayerRequest, error) {
	query := `
		SELECT pr.id, pr.user_id, pr.content, pr.is_anonymous, pr.created_at,
		       u.id, u.name, u.age, u.profile_photo_1,
		       (SELECT COUNT(*) FROM prayers p WHERE p.prayer_request_id = pr.id)
		FROM prayer_requests pr
		LEFT JOIN users u ON u.id = pr.user_id
		ORDER BY pr.created_at DESC, pr.id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*domain.PrayerRequest
	for rows.Next() {
		var (
			pr     domain.PrayerRequest
			author domain.UserSummary
			// Anonymous requests carry no user row.
			authorID   *string
			authorName *string
			authorAge  *int
		)
		err := rows.Scan(
			&pr.ID, &pr.UserID, &pr.Content, &pr.IsAnonymous, &pr.CreatedAt,
			&authorID, &authorName, &authorAge, &author.ProfilePhoto1,
			&pr.PrayerCount,
		)
		if err != nil {
			return nil, err
		}
		if !pr.IsAnonymous && authorID != nil {
			author.ID = *authorID
			author.Name = *authorName
			author.Age = *authorAge
			pr.Author = &author
		}
		reqs = append(reqs, &pr)
	}
	return reqs, rows.Err()
}

func (r *communityRepository) Pray(ctx context.Context, userID, prayerRequestID string) error {
	query := `INSERT INTO prayers (user_id, prayer_request_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, userID, prayerRequestID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyPrayed
		}
		return err
	}
	return nil
}

func (r *communityRepository) CreateBlessWallEntry(ctx context.Context, entry *domain.BlessWallEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO bless_wall_entries (id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.Content,
	).Scan(&entry.CreatedAt)
}

func (r *communityRepository) ListBlessWallEntries(ctx context.Context, limit, offset int) ([]*domain.BlessWallEntry, error) {
	query := `
		SELECT b.id, b.user_id, b.content, b.created_at,
		       u.id, u.name, u.age, u.profile_photo_1
		FROM bless_wall_entries b
		JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.BlessWallEntry
	for rows.Next() {
		var e domain.BlessWallEntry
		err := rows.Scan(
			&e.ID, &e.UserID, &e.Content, &e.CreatedAt,
			&e.Author.ID, &e.Author.Name, &e.Author.Age, &e.Author.ProfilePhoto1,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
