package constvars

import "clinicore-service/internal/pkg/bilingual"

var (
	// Working-hours messages
	ValidateScheduleSuccessMessage   = bilingual.New("schedule validated successfully", "تم التحقق من جدول العمل بنجاح")
	GetWorkingHoursSuccessMessage    = bilingual.New("get working hours successfully", "تم جلب ساعات العمل بنجاح")
	UpdateWorkingHoursSuccessMessage = bilingual.New("working hours updated successfully", "تم تحديث ساعات العمل بنجاح")
	RescheduleSuccessMessage         = bilingual.New("working hours updated and conflicting appointments handled successfully", "تم تحديث ساعات العمل ومعالجة المواعيد المتعارضة بنجاح")
	CheckConflictsSuccessMessage     = bilingual.New("conflict check completed successfully", "اكتمل فحص التعارضات بنجاح")
	SuggestScheduleSuccessMessage    = bilingual.New("suggested working hours generated successfully", "تم إنشاء ساعات العمل المقترحة بنجاح")
)
