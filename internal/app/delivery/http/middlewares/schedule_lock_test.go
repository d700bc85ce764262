package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]string
	tryErr   error
	unlocked []string
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]string)}
}

func (f *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tryErr != nil {
		return false, "", f.tryErr
	}
	if _, taken := f.held[key]; taken {
		return false, "", nil
	}
	token := "token-" + key
	f.held[key] = token
	return true, token, nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.held, key)
	f.unlocked = append(f.unlocked, key)
	return nil
}

func (f *fakeLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}

func lockTestRequest(entityType, entityID string) *http.Request {
	req := httptest.NewRequest("PUT", "/api/v1/working-hours/"+entityType+"/"+entityID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(constvars.URLParamEntityType, entityType)
	rctx.URLParams.Add(constvars.URLParamEntityID, entityID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestScheduleLock(t *testing.T) {
	internalConfig := &config.InternalConfig{
		WorkingHours: config.AppWorkingHours{UpdateLockTTLInSeconds: 30},
	}

	t.Run("Acquires And Releases Around The Handler", func(t *testing.T) {
		locker := newFakeLocker()
		middlewares := &Middlewares{Log: zap.NewNop(), LockerService: locker, InternalConfig: internalConfig}

		var heldDuringHandler bool
		handler := middlewares.ScheduleLock(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locker.mu.Lock()
			_, heldDuringHandler = locker.held[fmt.Sprintf(constvars.RedisKeyScheduleLock, "clinic", "abc")]
			locker.mu.Unlock()
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, lockTestRequest("clinic", "abc"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, heldDuringHandler, "lock should be held while the handler runs")
		assert.Empty(t, locker.held, "lock should be released after the handler returns")
		assert.Len(t, locker.unlocked, 1)
	})

	t.Run("Concurrent Update Is Rejected", func(t *testing.T) {
		locker := newFakeLocker()
		locker.held[fmt.Sprintf(constvars.RedisKeyScheduleLock, "clinic", "abc")] = "someone-else"
		middlewares := &Middlewares{Log: zap.NewNop(), LockerService: locker, InternalConfig: internalConfig}

		handlerCalled := false
		handler := middlewares.ScheduleLock(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, lockTestRequest("clinic", "abc"))

		assert.Equal(t, constvars.StatusLocked, rr.Code, "should return 423 while another update holds the lock")
		assert.False(t, handlerCalled, "handler should not run without the lock")
	})

	t.Run("Different Entities Do Not Contend", func(t *testing.T) {
		locker := newFakeLocker()
		locker.held[fmt.Sprintf(constvars.RedisKeyScheduleLock, "clinic", "abc")] = "someone-else"
		middlewares := &Middlewares{Log: zap.NewNop(), LockerService: locker, InternalConfig: internalConfig}

		handler := middlewares.ScheduleLock(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, lockTestRequest("clinic", "def"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Lock Backend Failure", func(t *testing.T) {
		locker := newFakeLocker()
		locker.tryErr = fmt.Errorf("redis down")
		middlewares := &Middlewares{Log: zap.NewNop(), LockerService: locker, InternalConfig: internalConfig}

		handler := middlewares.ScheduleLock(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run when the lock backend fails")
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, lockTestRequest("clinic", "abc"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
