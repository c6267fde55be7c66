package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// "values" needs quoting, it is a reserved word.
const userColumns = `id, email, password_hash, name, gender, age, denomination, location,
	latitude, longitude, bio, field_of_study, profession, hobbies, "values",
	favorite_verse, faith_journey, sunday_activity, looking_for,
	profile_photo_1, profile_photo_2, profile_photo_3,
	is_active, is_verified, onboarding_completed, last_seen, created_at, updated_at`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	query := `
		INSERT INTO users (
			id, email, password_hash, name, gender, age, denomination, location,
			latitude, longitude, bio, field_of_study, profession, hobbies, "values",
			favorite_verse, faith_journey, sunday_activity, looking_for,
			profile_photo_1, profile_photo_2, profile_photo_3,
			is_active, is_verified, onboarding_completed, last_seen
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, NOW())
		RETURNING last_seen, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Gender, user.Age,
		user.Denomination, user.Location, user.Latitude, user.Longitude, user.Bio,
		user.FieldOfStudy, user.Profession, pq.Array(user.Hobbies), pq.Array(user.Values),
		user.FavoriteVerse, nullableEnum(user.FaithJourney), nullableEnum(user.SundayActivity),
		pq.Array(enumsToStrings(user.LookingFor)),
		user.ProfilePhoto1, user.ProfilePhoto2, user.ProfilePhoto3,
		user.IsActive, user.IsVerified, user.OnboardingCompleted,
	).Scan(&user.LastSeen, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return r.getOne(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return r.getOne(ctx, query, email)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, age = $2, denomination = $3, location = $4,
		    latitude = $5, longitude = $6, bio = $7, field_of_study = $8,
		    profession = $9, hobbies = $10, "values" = $11, favorite_verse = $12,
		    faith_journey = $13, sunday_activity = $14, looking_for = $15,
		    profile_photo_1 = $16, profile_photo_2 = $17, profile_photo_3 = $18,
		    is_verified = $19, onboarding_completed = $20,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $21
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Age, user.Denomination, user.Location,
		user.Latitude, user.Longitude, user.Bio, user.FieldOfStudy,
		user.Profession, pq.Array(user.Hobbies), pq.Array(user.Values), user.FavoriteVerse,
		nullableEnum(user.FaithJourney), nullableEnum(user.SundayActivity),
		pq.Array(enumsToStrings(user.LookingFor)),
		user.ProfilePhoto1, user.ProfilePhoto2, user.ProfilePhoto3,
		user.IsVerified, user.OnboardingCompleted,
		user.ID,
	).Scan(&user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrUserNotFound
	}
	return err
}

func (r *userRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE users SET is_active = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) SetLastSeen(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_seen = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, at, id)
	return err
}

func (r *userRepository) FindCandidates(ctx context.Context, filter *domain.CandidateFilter, excludeIDs []string, limit, offset int) ([]*domain.User, error) {
	query, args := buildCandidateQuery(fmt.Sprintf(`SELECT %s FROM users`, userColumns), filter, excludeIDs)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) CountCandidates(ctx context.Context, filter *domain.CandidateFilter, excludeIDs []string) (int, error) {
	query, args := buildCandidateQuery(`SELECT COUNT(*) FROM users`, filter, excludeIDs)
	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	return count, err
}

// buildCandidateQuery appends the base eligibility predicate, the
// exclusion set and every set filter condition. Unset conditions add
// nothing: absence means "no constraint", never "exclude all".
func buildCandidateQuery(selectClause string, filter *domain.CandidateFilter, excludeIDs []string) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(selectClause)
	sb.WriteString(" WHERE is_active = true AND onboarding_completed = true")

	args := []interface{}{}
	arg := func(v interface{}) int {
		args = append(args, v)
		return len(args)
	}

	if len(excludeIDs) > 0 {
		fmt.Fprintf(&sb, " AND id != ALL($%d)", arg(pq.Array(excludeIDs)))
	}
	if filter.Gender != nil {
		fmt.Fprintf(&sb, " AND gender = $%d", arg(*filter.Gender))
	}
	if len(filter.Denominations) > 0 {
		fmt.Fprintf(&sb, " AND denomination = ANY($%d)", arg(pq.Array(enumsToStrings(filter.Denominations))))
	}
	if filter.MinAge != nil {
		fmt.Fprintf(&sb, " AND age >= $%d", arg(*filter.MinAge))
	}
	if filter.MaxAge != nil {
		fmt.Fprintf(&sb, " AND age <= $%d", arg(*filter.MaxAge))
	}
	if len(filter.FaithJourneys) > 0 {
		fmt.Fprintf(&sb, " AND faith_journey = ANY($%d)", arg(pq.Array(enumsToStrings(filter.FaithJourneys))))
	}
	if len(filter.ChurchAttendance) > 0 {
		fmt.Fprintf(&sb, " AND sunday_activity = ANY($%d)", arg(pq.Array(enumsToStrings(filter.ChurchAttendance))))
	}
	if len(filter.RelationshipGoals) > 0 {
		// Array overlap: at least one requested goal in the candidate's
		// own list.
		fmt.Fprintf(&sb, " AND looking_for && $%d", arg(pq.Array(enumsToStrings(filter.RelationshipGoals))))
	}
	if filter.Location != nil && strings.TrimSpace(*filter.Location) != "" {
		fmt.Fprintf(&sb, " AND location ILIKE $%d", arg("%"+strings.TrimSpace(*filter.Location)+"%"))
	}
	if filter.Interest != nil && strings.TrimSpace(*filter.Interest) != "" {
		fmt.Fprintf(&sb, " AND EXISTS (SELECT 1 FROM unnest(hobbies) h WHERE h ILIKE $%d)",
			arg("%"+strings.TrimSpace(*filter.Interest)+"%"))
	}
	if filter.Verse != nil && strings.TrimSpace(*filter.Verse) != "" {
		fmt.Fprintf(&sb, " AND favorite_verse ILIKE $%d", arg("%"+strings.TrimSpace(*filter.Verse)+"%"))
	}
	if filter.VerifiedOnly != nil && *filter.VerifiedOnly {
		sb.WriteString(" AND is_verified = true")
	}
	if filter.OnlineSince != nil {
		fmt.Fprintf(&sb, " AND last_seen >= $%d", arg(*filter.OnlineSince))
	}

	return sb.String(), args
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u              domain.User
		hobbies        pq.StringArray
		values         pq.StringArray
		lookingFor     pq.StringArray
		faithJourney   sql.NullString
		sundayActivity sql.NullString
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Gender, &u.Age,
		&u.Denomination, &u.Location, &u.Latitude, &u.Longitude, &u.Bio,
		&u.FieldOfStudy, &u.Profession, &hobbies, &values,
		&u.FavoriteVerse, &faithJourney, &sundayActivity, &lookingFor,
		&u.ProfilePhoto1, &u.ProfilePhoto2, &u.ProfilePhoto3,
		&u.IsActive, &u.IsVerified, &u.OnboardingCompleted,
		&u.LastSeen, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Hobbies = hobbies
	u.Values = values
	u.LookingFor = stringsToEnums[domain.RelationshipGoal](lookingFor)
	if faithJourney.Valid {
		fj := domain.FaithJourney(faithJourney.String)
		u.FaithJourney = &fj
	}
	if sundayActivity.Valid {
		sa := domain.ChurchAttendance(sundayActivity.String)
		u.SundayActivity = &sa
	}
	return &u, nil
}
