package constvars

import "clinicore-service/internal/pkg/bilingual"

// Source descriptor used when a suggestion falls back to the standard
// business-hours template because no ancestor schedule exists.
const SuggestionSourceStandard = "standard"

var StandardScheduleSourceName = bilingual.Message{
	En: "Standard business hours",
	Ar: "ساعات العمل القياسية",
}

// Hierarchy validation messages, En/Ar format pairs. Args are label and
// time values in the same order for both locales.
const (
	MsgHierarchyParentClosedEn = "%s is open on %s but %s is closed that day"
	MsgHierarchyParentClosedAr = "%s مفتوح يوم %s بينما %s مغلق في ذلك اليوم"

	MsgHierarchyOpensTooEarlyEn = "%s cannot open at %s before %s opens at %s"
	MsgHierarchyOpensTooEarlyAr = "لا يمكن أن يفتح %s في %s قبل أن يفتح %s في %s"

	MsgHierarchyClosesTooLateEn = "%s cannot close at %s after %s closes at %s"
	MsgHierarchyClosesTooLateAr = "لا يمكن أن يغلق %s في %s بعد أن يغلق %s في %s"
)

// Structural validation messages, formatted with the day name.
const (
	MsgStructInvalidTimeFormatEn = "invalid time format on %s, expected HH:mm"
	MsgStructInvalidTimeFormatAr = "تنسيق وقت غير صالح في يوم %s، المطلوب HH:mm"

	MsgStructOpeningPairEn = "openingTime and closingTime must be provided together on %s"
	MsgStructOpeningPairAr = "يجب إدخال وقت الفتح ووقت الإغلاق معاً في يوم %s"

	MsgStructOpeningOrderEn = "openingTime must be before closingTime on %s"
	MsgStructOpeningOrderAr = "يجب أن يكون وقت الفتح قبل وقت الإغلاق في يوم %s"

	MsgStructBreakPairEn = "breakStartTime and breakEndTime must be provided together on %s"
	MsgStructBreakPairAr = "يجب إدخال وقت بداية الاستراحة ووقت نهايتها معاً في يوم %s"

	MsgStructBreakOrderEn = "breakStartTime must be before breakEndTime on %s"
	MsgStructBreakOrderAr = "يجب أن يكون وقت بداية الاستراحة قبل وقت نهايتها في يوم %s"

	MsgStructBreakOutsideHoursEn = "break times must lie within opening hours on %s"
	MsgStructBreakOutsideHoursAr = "يجب أن تقع أوقات الاستراحة ضمن ساعات العمل في يوم %s"

	MsgStructDuplicateDayEn = "%s appears more than once in the schedule"
	MsgStructDuplicateDayAr = "يوم %s يظهر أكثر من مرة في الجدول"
)

// Appointment conflict reasons, selected by the first failing rule.
const (
	MsgConflictDayNotWorkingEn = "%s is no longer a working day"
	MsgConflictDayNotWorkingAr = "لم يعد يوم %s يوم عمل"

	MsgConflictBeforeOpeningEn = "appointment at %s is before new opening time %s"
	MsgConflictBeforeOpeningAr = "الموعد في الساعة %s قبل وقت الفتح الجديد %s"

	MsgConflictAfterClosingEn = "appointment ending at %s is after new closing time %s"
	MsgConflictAfterClosingAr = "الموعد المنتهي في الساعة %s بعد وقت الإغلاق الجديد %s"

	MsgConflictDuringBreakEn = "appointment at %s falls within the break time %s-%s"
	MsgConflictDuringBreakAr = "الموعد في الساعة %s يقع ضمن وقت الاستراحة %s-%s"
)

// Patient notification templates, formatted with appointment date and time.
const (
	NotificationRescheduledTitleEn = "Appointment Rescheduled"
	NotificationRescheduledTitleAr = "تم تغيير موعدك"
	NotificationRescheduledBodyEn  = "your appointment on %s at %s has been moved to %s due to updated working hours"
	NotificationRescheduledBodyAr  = "تم نقل موعدك بتاريخ %s من الساعة %s إلى الساعة %s بسبب تحديث ساعات العمل"

	NotificationNeedsReschedulingTitleEn = "Appointment Needs Rescheduling"
	NotificationNeedsReschedulingTitleAr = "موعدك بحاجة إلى إعادة جدولة"
	NotificationNeedsReschedulingBodyEn  = "your appointment on %s at %s no longer fits the updated working hours, please contact the clinic to reschedule"
	NotificationNeedsReschedulingBodyAr  = "موعدك بتاريخ %s في الساعة %s لم يعد ضمن ساعات العمل المحدثة، يرجى التواصل مع العيادة لإعادة الجدولة"

	NotificationCancelledTitleEn = "Appointment Cancelled"
	NotificationCancelledTitleAr = "تم إلغاء موعدك"
	NotificationCancelledBodyEn  = "your appointment on %s at %s has been cancelled due to updated working hours"
	NotificationCancelledBodyAr  = "تم إلغاء موعدك بتاريخ %s في الساعة %s بسبب تحديث ساعات العمل"
)

// Default reasons applied when the caller supplies none.
const (
	DefaultReschedulingReasonEn = "working hours have been updated"
	DefaultReschedulingReasonAr = "تم تحديث ساعات العمل"
)
