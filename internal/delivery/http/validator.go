package http

import (
	"github.com/faithbliss/backend/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators hooks the domain enum checks into gin's binding
// validator so handlers reject unknown enum values at bind time.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("gender", enumValidation(
		domain.GenderMale, domain.GenderFemale,
	))
	v.RegisterValidation("denomination", enumValidation(
		domain.DenominationBaptist, domain.DenominationMethodist,
		domain.DenominationPresbyterian, domain.DenominationPentecostal,
		domain.DenominationCatholic, domain.DenominationOrthodox,
		domain.DenominationAnglican, domain.DenominationLutheran,
		domain.DenominationAssembliesOfGod, domain.DenominationSeventhDayAdventist,
		domain.DenominationOther,
	))
	v.RegisterValidation("faith_journey", enumValidation(
		domain.FaithJourneyGrowing, domain.FaithJourneyRooted,
		domain.FaithJourneyExploring, domain.FaithJourneyPassionate,
	))
	v.RegisterValidation("church_attendance", enumValidation(
		domain.AttendanceWeekly, domain.AttendanceBiweekly,
		domain.AttendanceMonthly, domain.AttendanceOccasionally,
		domain.AttendanceRarely,
	))
	v.RegisterValidation("post_type", enumValidation(
		domain.PostTypePost, domain.PostTypeTestimony,
		domain.PostTypeVerseOfDay, domain.PostTypeEncouragement,
	))
	v.RegisterValidation("event_type", enumValidation(
		domain.EventTypeBibleStudy, domain.EventTypeWorship,
		domain.EventTypeSocial, domain.EventTypeService,
	))
}

func enumValidation[T ~string](allowed ...T) validator.Func {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[string(a)] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}
