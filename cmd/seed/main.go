package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/faithbliss/backend/internal/config"
	"github.com/faithbliss/backend/internal/domain"
	"github.com/faithbliss/backend/internal/infrastructure/database"
	"github.com/faithbliss/backend/internal/repository/postgres"
	"github.com/faithbliss/backend/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a handful of demo accounts for local development. Every account
// uses the password "password123".
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()

	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	prefsRepo := postgres.NewPreferencesRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password", zap.Error(err))
	}

	for _, u := range demoUsers() {
		u.PasswordHash = string(hash)
		if err := userRepo.Create(ctx, u); err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				log.Info("user already seeded", zap.String("email", u.Email))
				continue
			}
			log.Fatal("failed to create user", zap.String("email", u.Email), zap.Error(err))
		}
		if err := prefsRepo.Create(ctx, domain.DefaultPreferences(u)); err != nil {
			log.Fatal("failed to create preferences", zap.String("email", u.Email), zap.Error(err))
		}
		log.Info("seeded user", zap.String("email", u.Email), zap.String("id", u.ID))
	}
}

func demoUsers() []*domain.User {
	growing := domain.FaithJourneyGrowing
	rooted := domain.FaithJourneyRooted
	weekly := domain.AttendanceWeekly
	monthly := domain.AttendanceMonthly
	bio1 := "Worship leader who loves hiking and bad puns."
	bio2 := "Medical student, choir alto, amateur baker."
	bio3 := "Engineer by day, Bible study host by night."
	bio4 := "Teacher, runner, always up for coffee after service."

	return []*domain.User{
		{
			Email:               "daniel@example.com",
			Name:                "Daniel",
			Gender:              domain.GenderMale,
			Age:                 28,
			Denomination:        domain.DenominationBaptist,
			Location:            "Lagos, Nigeria",
			Bio:                 &bio1,
			Hobbies:             []string{"hiking", "guitar", "chess"},
			FaithJourney:        &rooted,
			SundayActivity:      &weekly,
			LookingFor:          []domain.RelationshipGoal{domain.GoalMarriageMinded},
			IsActive:            true,
			OnboardingCompleted: true,
		},
		{
			Email:               "grace@example.com",
			Name:                "Grace",
			Gender:              domain.GenderFemale,
			Age:                 26,
			Denomination:        domain.DenominationBaptist,
			Location:            "Lagos, Nigeria",
			Bio:                 &bio2,
			Hobbies:             []string{"baking", "choir", "reading"},
			FaithJourney:        &growing,
			SundayActivity:      &weekly,
			LookingFor:          []domain.RelationshipGoal{domain.GoalRelationship, domain.GoalMarriageMinded},
			IsActive:            true,
			OnboardingCompleted: true,
		},
		{
			Email:               "samuel@example.com",
			Name:                "Samuel",
			Gender:              domain.GenderMale,
			Age:                 31,
			Denomination:        domain.DenominationPentecostal,
			Location:            "Abuja, Nigeria",
			Bio:                 &bio3,
			Hobbies:             []string{"football", "cooking"},
			FaithJourney:        &rooted,
			SundayActivity:      &monthly,
			LookingFor:          []domain.RelationshipGoal{domain.GoalFriendship},
			IsActive:            true,
			OnboardingCompleted: true,
		},
		{
			Email:               "esther@example.com",
			Name:                "Esther",
			Gender:              domain.GenderFemale,
			Age:                 24,
			Denomination:        domain.DenominationCatholic,
			Location:            "Accra, Ghana",
			Bio:                 &bio4,
			Hobbies:             []string{"running", "hiking", "photography"},
			FaithJourney:        &growing,
			SundayActivity:      &weekly,
			LookingFor:          []domain.RelationshipGoal{domain.GoalRelationship},
			IsActive:            true,
			OnboardingCompleted: true,
		},
	}
}
