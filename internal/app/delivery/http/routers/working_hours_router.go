package routers

import (
	"clinicore-service/internal/app/delivery/http/controllers"
	"clinicore-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachWorkingHoursRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	workingHoursController *controllers.WorkingHoursController,
	reschedulingController *controllers.ReschedulingController,
) {
	router.Post("/validate", workingHoursController.ValidateSchedule)
	router.Post("/check-conflicts", reschedulingController.CheckConflicts)
	router.Get("/suggested", workingHoursController.SuggestSchedule)

	router.Get("/{entityType}/{entityId}", workingHoursController.GetWorkingHours)
	router.Get("/{entityType}/{entityId}/suggested", workingHoursController.SuggestForEntity)
	router.With(middlewares.ScheduleLock).Put("/{entityType}/{entityId}", workingHoursController.UpdateWorkingHours)
	router.With(middlewares.MutationRateLimit, middlewares.ScheduleLock).Put("/{entityType}/{entityId}/reschedule", reschedulingController.UpdateWithRescheduling)
}
