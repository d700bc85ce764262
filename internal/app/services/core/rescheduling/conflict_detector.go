package rescheduling

import (
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/bilingual"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"
)

// dayWindow is one weekday of a schedule reduced to minute offsets.
type dayWindow struct {
	working    bool
	hasBounds  bool
	opening    int
	closing    int
	hasBreak   bool
	breakStart int
	breakEnd   int
}

// ScheduleWindows indexes a submitted week by weekday so each appointment
// check is a single lookup.
type ScheduleWindows map[models.DayOfWeek]dayWindow

func BuildScheduleWindows(schedule []requests.DayScheduleInput) (ScheduleWindows, error) {
	windows := make(ScheduleWindows, len(schedule))
	for _, day := range schedule {
		window := dayWindow{working: day.IsWorkingDay}
		if day.IsWorkingDay && day.OpeningTime != nil && day.ClosingTime != nil {
			opening, err := utils.ParseClockTime(*day.OpeningTime)
			if err != nil {
				return nil, exceptions.ErrCannotParseTime(err)
			}
			closing, err := utils.ParseClockTime(*day.ClosingTime)
			if err != nil {
				return nil, exceptions.ErrCannotParseTime(err)
			}
			window.hasBounds = true
			window.opening = opening
			window.closing = closing

			if day.BreakStartTime != nil && day.BreakEndTime != nil {
				breakStart, err := utils.ParseClockTime(*day.BreakStartTime)
				if err != nil {
					return nil, exceptions.ErrCannotParseTime(err)
				}
				breakEnd, err := utils.ParseClockTime(*day.BreakEndTime)
				if err != nil {
					return nil, exceptions.ErrCannotParseTime(err)
				}
				window.hasBreak = true
				window.breakStart = breakStart
				window.breakEnd = breakEnd
			}
		}
		windows[models.DayOfWeek(day.DayOfWeek)] = window
	}
	return windows, nil
}

// EvaluateAppointment returns the first failing rule's reason, checked in
// fixed order: working day, opening bound, closing bound, break overlap.
// A nil reason means the appointment still fits. A working day without time
// bounds accepts everything, mirroring the no-constraint-means-pass policy
// of hierarchy validation.
func (windows ScheduleWindows) EvaluateAppointment(appointment *models.Appointment, defaultDurationMinutes int) (*bilingual.Message, error) {
	day := appointment.Weekday()
	window, ok := windows[day]
	if !ok || !window.working {
		reason := bilingual.Newf(constvars.MsgConflictDayNotWorkingEn, constvars.MsgConflictDayNotWorkingAr, day.String())
		return &reason, nil
	}
	if !window.hasBounds {
		return nil, nil
	}

	start, err := utils.ParseClockTime(appointment.AppointmentTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	end := start + effectiveDuration(appointment, defaultDurationMinutes)

	if start < window.opening {
		reason := bilingual.Newf(constvars.MsgConflictBeforeOpeningEn, constvars.MsgConflictBeforeOpeningAr, appointment.AppointmentTime, utils.FormatClockTime(window.opening))
		return &reason, nil
	}
	if end > window.closing {
		reason := bilingual.Newf(constvars.MsgConflictAfterClosingEn, constvars.MsgConflictAfterClosingAr, utils.FormatClockTime(end), utils.FormatClockTime(window.closing))
		return &reason, nil
	}
	if window.hasBreak && start < window.breakEnd && end > window.breakStart {
		reason := bilingual.Newf(constvars.MsgConflictDuringBreakEn, constvars.MsgConflictDuringBreakAr, appointment.AppointmentTime, utils.FormatClockTime(window.breakStart), utils.FormatClockTime(window.breakEnd))
		return &reason, nil
	}
	return nil, nil
}

// findReschedulingSlot keeps the original start when it already fits,
// otherwise scans forward from the day's opening in fixed increments for the
// first start whose full duration clears the break. The scan is bounded by
// the opening-to-closing span, so it always terminates.
func (windows ScheduleWindows) findReschedulingSlot(day models.DayOfWeek, start, duration, step int) (int, bool) {
	window, ok := windows[day]
	if !ok || !window.working {
		return 0, false
	}
	if !window.hasBounds {
		return start, true
	}
	if window.accommodates(start, duration) {
		return start, true
	}
	for slot := window.opening; slot+duration <= window.closing; slot += step {
		if window.accommodates(slot, duration) {
			return slot, true
		}
	}
	return 0, false
}

func (w dayWindow) accommodates(start, duration int) bool {
	end := start + duration
	if start < w.opening || end > w.closing {
		return false
	}
	return !w.hasBreak || end <= w.breakStart || start >= w.breakEnd
}

func effectiveDuration(appointment *models.Appointment, defaultDurationMinutes int) int {
	if appointment.DurationMinutes > 0 {
		return appointment.DurationMinutes
	}
	return defaultDurationMinutes
}
