package domain

import "time"

// Preferences holds a user's stored matching preferences. A row is created
// alongside the user at registration with defaults derived from the user's
// own gender, denomination and age, so it always exists once the user does.
//
// An empty slice means "no constraint", never "match nothing". The
// CandidateFilter built from these fields keeps that distinction explicit.
type Preferences struct {
	UserID                    string             `json:"user_id" db:"user_id"`
	PreferredGender           *Gender            `json:"preferred_gender" db:"preferred_gender"`
	PreferredDenomination     []Denomination     `json:"preferred_denomination" db:"preferred_denomination"`
	MinAge                    *int               `json:"min_age" db:"min_age"`
	MaxAge                    *int               `json:"max_age" db:"max_age"`
	MaxDistance               *int               `json:"max_distance" db:"max_distance"`
	PreferredFaithJourney     []FaithJourney     `json:"preferred_faith_journey" db:"preferred_faith_journey"`
	PreferredChurchAttendance []ChurchAttendance `json:"preferred_church_attendance" db:"preferred_church_attendance"`
	PreferredRelationshipGoal []RelationshipGoal `json:"preferred_relationship_goals" db:"preferred_relationship_goals"`
	CreatedAt                 time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt                 time.Time          `json:"updated_at" db:"updated_at"`
}

// DefaultPreferences derives the initial preferences for a freshly
// registered user: opposite gender, their own denomination, and an age
// window of [age-5, age+10] clamped to the platform minimum.
func DefaultPreferences(u *User) *Preferences {
	gender := u.Gender.Opposite()
	minAge := u.Age - 5
	if minAge < MinUserAge {
		minAge = MinUserAge
	}
	maxAge := u.Age + 10
	maxDistance := 50

	return &Preferences{
		UserID:                u.ID,
		PreferredGender:       &gender,
		PreferredDenomination: []Denomination{u.Denomination},
		MinAge:                &minAge,
		MaxAge:                &maxAge,
		MaxDistance:           &maxDistance,
	}
}

// CandidateFilter is the explicit, fully optional predicate applied on top
// of the base eligibility check (active + onboarded). A nil pointer or an
// empty slice disables that individual condition. All set conditions are
// combined with AND; relationship goals match if at least one requested
// goal appears in the candidate's own list.
type CandidateFilter struct {
	Gender            *Gender
	Denominations     []Denomination
	MinAge            *int
	MaxAge            *int
	FaithJourneys     []FaithJourney
	ChurchAttendance  []ChurchAttendance
	RelationshipGoals []RelationshipGoal

	// Location is matched by case-insensitive substring containment, not
	// geographic distance.
	Location *string
	// Interest is matched by case-insensitive substring containment
	// against any of the candidate's hobbies.
	Interest *string
	// Verse is matched by case-insensitive substring containment against
	// the candidate's favorite verse reference.
	Verse        *string
	VerifiedOnly *bool

	// OnlineSince keeps only candidates seen after the given instant.
	OnlineSince *time.Time
}

// Empty reports whether no optional condition is set, i.e. the filter is
// already the base predicate.
func (f *CandidateFilter) Empty() bool {
	return f.Gender == nil &&
		len(f.Denominations) == 0 &&
		f.MinAge == nil && f.MaxAge == nil &&
		len(f.FaithJourneys) == 0 &&
		len(f.ChurchAttendance) == 0 &&
		len(f.RelationshipGoals) == 0 &&
		f.Location == nil &&
		f.Interest == nil &&
		f.Verse == nil &&
		f.VerifiedOnly == nil &&
		f.OnlineSince == nil
}

// FilterFromPreferences translates stored preferences into the candidate
// predicate used by discovery. MaxDistance is deliberately not applied:
// the platform has no real geo-distance matching.
func FilterFromPreferences(p *Preferences) *CandidateFilter {
	return &CandidateFilter{
		Gender:            p.PreferredGender,
		Denominations:     p.PreferredDenomination,
		MinAge:            p.MinAge,
		MaxAge:            p.MaxAge,
		FaithJourneys:     p.PreferredFaithJourney,
		ChurchAttendance:  p.PreferredChurchAttendance,
		RelationshipGoals: p.PreferredRelationshipGoal,
	}
}
