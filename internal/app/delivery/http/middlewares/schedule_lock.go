package middlewares

import (
	"fmt"
	"net/http"
	"time"

	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ScheduleLock serializes schedule mutations per entity through a Redis
// lock so two concurrent updates cannot interleave their writes. The lock
// is released when the wrapped handler returns; the TTL only matters if
// the process dies mid-request.
func (m *Middlewares) ScheduleLock(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entityType := chi.URLParam(r, constvars.URLParamEntityType)
		entityID := chi.URLParam(r, constvars.URLParamEntityID)

		lockKey := fmt.Sprintf(constvars.RedisKeyScheduleLock, entityType, entityID)
		lockTTL := time.Duration(m.InternalConfig.WorkingHours.UpdateLockTTLInSeconds) * time.Second

		acquired, lockValue, err := m.LockerService.TryLock(r.Context(), lockKey, lockTTL)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !acquired {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrScheduleLocked(entityType, entityID))
			return
		}

		defer func() {
			if unlockErr := m.LockerService.Unlock(r.Context(), lockKey, lockValue); unlockErr != nil {
				m.Log.Error("failed to release schedule lock",
					zap.String(constvars.LoggingRedisKey, lockKey),
					zap.Error(unlockErr),
				)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
