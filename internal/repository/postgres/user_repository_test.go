package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/faithbliss/backend/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userTestColumns = []string{
	"id", "email", "password_hash", "name", "gender", "age", "denomination", "location",
	"latitude", "longitude", "bio", "field_of_study", "profession", "hobbies", "values",
	"favorite_verse", "faith_journey", "sunday_activity", "looking_for",
	"profile_photo_1", "profile_photo_2", "profile_photo_3",
	"is_active", "is_verified", "onboarding_completed", "last_seen", "created_at", "updated_at",
}

func addUserRow(rows *sqlmock.Rows, id, name string, gender domain.Gender, age int, denom domain.Denomination) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, id+"@example.com", "hash", name, string(gender), age, string(denom), "Lagos, Nigeria",
		nil, nil, nil, nil, nil, "{}", "{}",
		nil, nil, nil, "{RELATIONSHIP}",
		nil, nil, nil,
		true, false, true, now, now, now,
	)
}

func TestUserCreate_DuplicateEmailReturnsTaken(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	user := &domain.User{
		ID:           "user-1",
		Email:        "a@example.com",
		PasswordHash: "hash",
		Name:         "A",
		Gender:       domain.GenderMale,
		Age:          28,
		Denomination: domain.DenominationBaptist,
	}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: uniqueViolation})

	err := repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCandidates_BaseEligibilityPredicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := addUserRow(sqlmock.NewRows(userTestColumns), "user-b", "B", domain.GenderFemale, 25, domain.DenominationMethodist)

	// Inactive and un-onboarded users are filtered in SQL, always.
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE is_active = true AND onboarding_completed = true ORDER BY created_at DESC, id DESC`).
		WithArgs(20, 0).
		WillReturnRows(rows)

	users, err := repo.FindCandidates(context.Background(), &domain.CandidateFilter{}, nil, 20, 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "user-b", users[0].ID)
	assert.Equal(t, []domain.RelationshipGoal{domain.GoalRelationship}, users[0].LookingFor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCandidates_AppliesAgeBoundsAndExclusions(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	gender := domain.GenderFemale
	minAge, maxAge := 22, 35
	filter := &domain.CandidateFilter{
		Gender:        &gender,
		Denominations: []domain.Denomination{domain.DenominationBaptist, domain.DenominationMethodist},
		MinAge:        &minAge,
		MaxAge:        &maxAge,
	}

	rows := addUserRow(sqlmock.NewRows(userTestColumns), "user-b", "B", domain.GenderFemale, 25, domain.DenominationMethodist)

	mock.ExpectQuery(`AND id != ALL(.+) AND gender = (.+) AND denomination = ANY(.+) AND age >= (.+) AND age <= (.+) ORDER BY`).
		WithArgs(
			pq.Array([]string{"liked-1", "user-a"}),
			string(domain.GenderFemale),
			pq.Array([]string{"BAPTIST", "METHODIST"}),
			22, 35, 20, 0,
		).
		WillReturnRows(rows)

	users, err := repo.FindCandidates(context.Background(), filter, []string{"liked-1", "user-a"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 25, users[0].Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCandidates_VerseContainment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	verse := "John 3"
	rows := addUserRow(sqlmock.NewRows(userTestColumns), "user-b", "B", domain.GenderFemale, 25, domain.DenominationMethodist)

	mock.ExpectQuery(`AND favorite_verse ILIKE (.+) ORDER BY`).
		WithArgs("%John 3%", 20, 0).
		WillReturnRows(rows)

	users, err := repo.FindCandidates(context.Background(), &domain.CandidateFilter{Verse: &verse}, nil, 20, 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCandidates_EmptyFilterAddsNoConditions(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	// Only limit and offset reach the query when nothing is set.
	mock.ExpectQuery(`FROM users WHERE is_active = true AND onboarding_completed = true ORDER BY`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(userTestColumns))

	users, err := repo.FindCandidates(context.Background(), &domain.CandidateFilter{}, nil, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountCandidates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT COUNT(.+) FROM users WHERE is_active = true AND onboarding_completed = true`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountCandidates(context.Background(), &domain.CandidateFilter{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetActive_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("UPDATE users SET is_active").
		WithArgs(false, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetActive(context.Background(), "missing", false)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
