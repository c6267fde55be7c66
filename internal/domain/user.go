package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Opposite returns the other gender. Used to seed default preferences
// at registration.
func (g Gender) Opposite() Gender {
	if g == GenderMale {
		return GenderFemale
	}
	return GenderMale
}

type Denomination string

const (
	DenominationBaptist             Denomination = "BAPTIST"
	DenominationMethodist           Denomination = "METHODIST"
	DenominationPresbyterian        Denomination = "PRESBYTERIAN"
	DenominationPentecostal         Denomination = "PENTECOSTAL"
	DenominationCatholic            Denomination = "CATHOLIC"
	DenominationOrthodox            Denomination = "ORTHODOX"
	DenominationAnglican            Denomination = "ANGLICAN"
	DenominationLutheran            Denomination = "LUTHERAN"
	DenominationAssembliesOfGod     Denomination = "ASSEMBLIES_OF_GOD"
	DenominationSeventhDayAdventist Denomination = "SEVENTH_DAY_ADVENTIST"
	DenominationOther               Denomination = "OTHER"
)

type FaithJourney string

const (
	FaithJourneyGrowing    FaithJourney = "GROWING"
	FaithJourneyRooted     FaithJourney = "ROOTED"
	FaithJourneyExploring  FaithJourney = "EXPLORING"
	FaithJourneyPassionate FaithJourney = "PASSIONATE"
)

// ChurchAttendance describes how often a user attends church. Stored in
// the sunday_activity column, a name inherited from the data model.
type ChurchAttendance string

const (
	AttendanceWeekly       ChurchAttendance = "WEEKLY"
	AttendanceBiweekly     ChurchAttendance = "BIWEEKLY"
	AttendanceMonthly      ChurchAttendance = "MONTHLY"
	AttendanceOccasionally ChurchAttendance = "OCCASIONALLY"
	AttendanceRarely       ChurchAttendance = "RARELY"
)

type RelationshipGoal string

const (
	GoalFriendship     RelationshipGoal = "FRIENDSHIP"
	GoalRelationship   RelationshipGoal = "RELATIONSHIP"
	GoalMarriageMinded RelationshipGoal = "MARRIAGE_MINDED"
)

const (
	MinUserAge = 18
	MaxUserAge = 100
)

type User struct {
	ID                  string             `json:"id" db:"id"`
	Email               string             `json:"email" db:"email"`
	PasswordHash        string             `json:"-" db:"password_hash"`
	Name                string             `json:"name" db:"name"`
	Gender              Gender             `json:"gender" db:"gender"`
	Age                 int                `json:"age" db:"age"`
	Denomination        Denomination       `json:"denomination" db:"denomination"`
	Location            string             `json:"location" db:"location"`
	Latitude            *float64           `json:"latitude" db:"latitude"`
	Longitude           *float64           `json:"longitude" db:"longitude"`
	Bio                 *string            `json:"bio" db:"bio"`
	FieldOfStudy        *string            `json:"field_of_study" db:"field_of_study"`
	Profession          *string            `json:"profession" db:"profession"`
	Hobbies             []string           `json:"hobbies" db:"hobbies"`
	Values              []string           `json:"values" db:"values"`
	FavoriteVerse       *string            `json:"favorite_verse" db:"favorite_verse"`
	FaithJourney        *FaithJourney      `json:"faith_journey" db:"faith_journey"`
	SundayActivity      *ChurchAttendance  `json:"sunday_activity" db:"sunday_activity"`
	LookingFor          []RelationshipGoal `json:"looking_for" db:"looking_for"`
	ProfilePhoto1       *string            `json:"profile_photo_1" db:"profile_photo_1"`
	ProfilePhoto2       *string            `json:"profile_photo_2" db:"profile_photo_2"`
	ProfilePhoto3       *string            `json:"profile_photo_3" db:"profile_photo_3"`
	IsActive            bool               `json:"is_active" db:"is_active"`
	IsVerified          bool               `json:"is_verified" db:"is_verified"`
	OnboardingCompleted bool               `json:"onboarding_completed" db:"onboarding_completed"`
	LastSeen            time.Time          `json:"last_seen" db:"last_seen"`
	CreatedAt           time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at" db:"updated_at"`
}

// UserSummary is the trimmed-down card shown in match lists, conversations
// and push payloads.
type UserSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	ProfilePhoto1 *string `json:"profile_photo_1"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:            u.ID,
		Name:          u.Name,
		Age:           u.Age,
		ProfilePhoto1: u.ProfilePhoto1,
	}
}

// Discoverable reports whether the user may appear in anyone's candidate
// feed. Users who never finished onboarding stay invisible.
func (u *User) Discoverable() bool {
	return u.IsActive && u.OnboardingCompleted
}
