package workinghours

import (
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/bilingual"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/utils"
)

// ValidateStructure checks a submitted week in isolation: duplicate days,
// incomplete time pairs, ordering, and break placement. One error per
// violation; time fields on non-working days are ignored entirely.
func ValidateStructure(schedule []requests.DayScheduleInput) []responses.ScheduleValidationError {
	var errs []responses.ScheduleValidationError
	seen := make(map[string]bool, len(schedule))

	for _, day := range schedule {
		if seen[day.DayOfWeek] {
			errs = append(errs, responses.ScheduleValidationError{
				DayOfWeek: day.DayOfWeek,
				Message:   bilingual.Newf(constvars.MsgStructDuplicateDayEn, constvars.MsgStructDuplicateDayAr, day.DayOfWeek),
			})
		}
		seen[day.DayOfWeek] = true

		if !day.IsWorkingDay {
			continue
		}
		errs = append(errs, validateDayTimes(day)...)
	}
	return errs
}

func validateDayTimes(day requests.DayScheduleInput) []responses.ScheduleValidationError {
	var errs []responses.ScheduleValidationError
	structErr := func(enFormat, arFormat string) responses.ScheduleValidationError {
		return responses.ScheduleValidationError{
			DayOfWeek: day.DayOfWeek,
			Message:   bilingual.Newf(enFormat, arFormat, day.DayOfWeek),
		}
	}

	opening, closing := -1, -1
	switch {
	case day.OpeningTime == nil && day.ClosingTime == nil:
		// Open all day; nothing to check.
	case day.OpeningTime == nil || day.ClosingTime == nil:
		errs = append(errs, structErr(constvars.MsgStructOpeningPairEn, constvars.MsgStructOpeningPairAr))
	default:
		var err error
		opening, err = utils.ParseClockTime(*day.OpeningTime)
		if err == nil {
			closing, err = utils.ParseClockTime(*day.ClosingTime)
		}
		if err != nil {
			return append(errs, structErr(constvars.MsgStructInvalidTimeFormatEn, constvars.MsgStructInvalidTimeFormatAr))
		}
		if opening >= closing {
			errs = append(errs, structErr(constvars.MsgStructOpeningOrderEn, constvars.MsgStructOpeningOrderAr))
		}
	}

	switch {
	case day.BreakStartTime == nil && day.BreakEndTime == nil:
		return errs
	case day.BreakStartTime == nil || day.BreakEndTime == nil:
		return append(errs, structErr(constvars.MsgStructBreakPairEn, constvars.MsgStructBreakPairAr))
	}

	breakStart, err := utils.ParseClockTime(*day.BreakStartTime)
	if err != nil {
		return append(errs, structErr(constvars.MsgStructInvalidTimeFormatEn, constvars.MsgStructInvalidTimeFormatAr))
	}
	breakEnd, err := utils.ParseClockTime(*day.BreakEndTime)
	if err != nil {
		return append(errs, structErr(constvars.MsgStructInvalidTimeFormatEn, constvars.MsgStructInvalidTimeFormatAr))
	}
	if breakStart >= breakEnd {
		errs = append(errs, structErr(constvars.MsgStructBreakOrderEn, constvars.MsgStructBreakOrderAr))
	} else if opening >= 0 && closing >= 0 && (breakStart < opening || breakEnd > closing) {
		errs = append(errs, structErr(constvars.MsgStructBreakOutsideHoursEn, constvars.MsgStructBreakOutsideHoursAr))
	}
	return errs
}

// ValidateAgainstParent decides whether a child week nests inside the
// parent's stored hours. A parent with zero active records passes everything:
// absent constraints mean no constraint, not always closed.
//
// Structural violations short-circuit before any hierarchy comparison. Each
// violated bound yields its own error carrying the parent's range as a
// suggested correction; a day the parent does not work yields exactly one
// error with no suggested range.
func ValidateAgainstParent(child []requests.DayScheduleInput, parent []models.DaySchedule, childLabel, parentLabel string) *responses.ValidationResult {
	if structural := ValidateStructure(child); len(structural) > 0 {
		return &responses.ValidationResult{IsValid: false, Errors: structural}
	}

	result := &responses.ValidationResult{IsValid: true, Errors: []responses.ScheduleValidationError{}}
	if len(parent) == 0 {
		return result
	}

	parentByDay := make(map[models.DayOfWeek]models.DaySchedule, len(parent))
	for _, day := range parent {
		parentByDay[day.DayOfWeek] = day
	}

	for _, day := range child {
		if !day.IsWorkingDay {
			continue
		}

		parentDay, ok := parentByDay[models.DayOfWeek(day.DayOfWeek)]
		if !ok || !parentDay.IsWorkingDay {
			result.Errors = append(result.Errors, responses.ScheduleValidationError{
				DayOfWeek: day.DayOfWeek,
				Message:   bilingual.Newf(constvars.MsgHierarchyParentClosedEn, constvars.MsgHierarchyParentClosedAr, childLabel, day.DayOfWeek, parentLabel),
			})
			continue
		}

		if day.OpeningTime == nil || day.ClosingTime == nil || !parentDay.HasTimeBounds() {
			continue
		}

		childOpening, _ := utils.ParseClockTime(*day.OpeningTime)
		childClosing, _ := utils.ParseClockTime(*day.ClosingTime)
		parentOpening, _ := utils.ParseClockTime(*parentDay.OpeningTime)
		parentClosing, _ := utils.ParseClockTime(*parentDay.ClosingTime)
		suggested := &responses.TimeRange{
			OpeningTime: *parentDay.OpeningTime,
			ClosingTime: *parentDay.ClosingTime,
		}

		if childOpening < parentOpening {
			result.Errors = append(result.Errors, responses.ScheduleValidationError{
				DayOfWeek:      day.DayOfWeek,
				Message:        bilingual.Newf(constvars.MsgHierarchyOpensTooEarlyEn, constvars.MsgHierarchyOpensTooEarlyAr, childLabel, *day.OpeningTime, parentLabel, *parentDay.OpeningTime),
				SuggestedRange: suggested,
			})
		}
		if childClosing > parentClosing {
			result.Errors = append(result.Errors, responses.ScheduleValidationError{
				DayOfWeek:      day.DayOfWeek,
				Message:        bilingual.Newf(constvars.MsgHierarchyClosesTooLateEn, constvars.MsgHierarchyClosesTooLateAr, childLabel, *day.ClosingTime, parentLabel, *parentDay.ClosingTime),
				SuggestedRange: suggested,
			})
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
