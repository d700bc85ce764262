package workinghours

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/bilingual"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeWorkingHoursRepo struct {
	weeks      map[string][]models.DaySchedule
	findCalls  int
	findErr    error
	replaceErr error
}

func newFakeWorkingHoursRepo() *fakeWorkingHoursRepo {
	return &fakeWorkingHoursRepo{weeks: make(map[string][]models.DaySchedule)}
}

func weekKey(entityType models.EntityType, entityID string) string {
	return entityType.String() + "/" + entityID
}

func (f *fakeWorkingHoursRepo) FindActiveByEntity(ctx context.Context, entityType models.EntityType, entityID string) ([]models.DaySchedule, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.weeks[weekKey(entityType, entityID)], nil
}

func (f *fakeWorkingHoursRepo) ReplaceForEntity(ctx context.Context, entityType models.EntityType, entityID string, week []models.DaySchedule) ([]models.DaySchedule, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	stored := make([]models.DaySchedule, len(week))
	copy(stored, week)
	for i := range stored {
		stored[i].ID = primitive.NewObjectID()
	}
	f.weeks[weekKey(entityType, entityID)] = stored
	return stored, nil
}

func (f *fakeWorkingHoursRepo) DeactivateForEntity(ctx context.Context, entityType models.EntityType, entityID string) error {
	delete(f.weeks, weekKey(entityType, entityID))
	return nil
}

type fakeEntityRepo struct {
	organizations map[string]*models.Organization
	complexes     map[string]*models.MedicalComplex
	clinics       map[string]*models.Clinic
	users         map[string]*models.User
	findErr       error
}

func newFakeEntityRepo() *fakeEntityRepo {
	return &fakeEntityRepo{
		organizations: make(map[string]*models.Organization),
		complexes:     make(map[string]*models.MedicalComplex),
		clinics:       make(map[string]*models.Clinic),
		users:         make(map[string]*models.User),
	}
}

func (f *fakeEntityRepo) FindOrganizationByID(ctx context.Context, organizationID string) (*models.Organization, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.organizations[organizationID], nil
}

func (f *fakeEntityRepo) FindComplexByID(ctx context.Context, complexID string) (*models.MedicalComplex, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.complexes[complexID], nil
}

func (f *fakeEntityRepo) FindClinicByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.clinics[clinicID], nil
}

func (f *fakeEntityRepo) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[userID], nil
}

// fakeRedis mirrors the real repository's behavior of storing values as JSON
// so the read-through decode path is exercised for real.
type fakeRedis struct {
	entries     map[string]string
	getCalls    int
	setCalls    int
	deleteCalls int
	getErr      error
	setErr      error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{entries: make(map[string]string)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	f.getCalls++
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.entries[key], nil
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = string(data)
	return nil
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error {
	f.deleteCalls++
	delete(f.entries, key)
	return nil
}

func (f *fakeRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, exists := f.entries[key]; exists {
		return false, nil
	}
	return true, f.Set(ctx, key, value, exp)
}

type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type usecaseFixture struct {
	usecase      *workingHoursUsecase
	workingHours *fakeWorkingHoursRepo
	entities     *fakeEntityRepo
	redis        *fakeRedis
	tx           *passthroughTxManager
	config       *config.InternalConfig
}

func newUsecaseFixture() *usecaseFixture {
	workingHours := newFakeWorkingHoursRepo()
	entities := newFakeEntityRepo()
	redis := newFakeRedis()
	tx := &passthroughTxManager{}
	internalConfig := &config.InternalConfig{
		WorkingHours: config.AppWorkingHours{CacheTTLInMinutes: 10},
	}

	return &usecaseFixture{
		usecase: &workingHoursUsecase{
			WorkingHoursRepository: workingHours,
			EntityRepository:       entities,
			RedisRepository:        redis,
			TransactionManager:     tx,
			ParentResolver:         NewParentResolver(entities),
			InternalConfig:         internalConfig,
			Log:                    zap.NewNop(),
		},
		workingHours: workingHours,
		entities:     entities,
		redis:        redis,
		tx:           tx,
		config:       internalConfig,
	}
}

func (f *usecaseFixture) storeWeek(entityType models.EntityType, entityID string, week []models.DaySchedule) {
	entityOID, _ := primitive.ObjectIDFromHex(entityID)
	for i := range week {
		week[i].ID = primitive.NewObjectID()
		week[i].EntityType = entityType
		week[i].EntityID = entityOID
	}
	f.workingHours.weeks[weekKey(entityType, entityID)] = week
}

func standardWeekdays() []models.DaySchedule {
	return []models.DaySchedule{
		storedDay(models.Monday, true, timePtr("09:00"), timePtr("17:00")),
		storedDay(models.Tuesday, true, timePtr("09:00"), timePtr("17:00")),
		storedDay(models.Wednesday, true, timePtr("09:00"), timePtr("17:00")),
		storedDay(models.Thursday, true, timePtr("09:00"), timePtr("17:00")),
		storedDay(models.Friday, true, timePtr("09:00"), timePtr("17:00")),
		storedDay(models.Saturday, false, nil, nil),
		storedDay(models.Sunday, false, nil, nil),
	}
}

func assertCustomErrorStatus(t *testing.T, err error, statusCode int) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	if assert.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err) {
		assert.Equal(t, statusCode, customErr.StatusCode)
	}
	return customErr
}

func TestWorkingHoursUsecase_ValidateSchedule(t *testing.T) {
	ctx := context.Background()
	clinicID := primitive.NewObjectID().Hex()
	complexID := primitive.NewObjectID().Hex()

	t.Run("Violations Come Back As Data", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.storeWeek(models.EntityTypeComplex, complexID, standardWeekdays())

		result, err := fixture.usecase.ValidateSchedule(ctx, &requests.ValidateSchedule{
			EntityType:       "clinic",
			EntityID:         clinicID,
			ParentEntityType: "complex",
			ParentEntityID:   complexID,
			Schedule: []requests.DayScheduleInput{
				workingDay("monday", "08:00", "17:00"),
			},
		})

		assert.NoError(t, err, "hierarchy violations are a verdict, not a failure")
		assert.False(t, result.IsValid)
		assert.Len(t, result.Errors, 1)
	})

	t.Run("Valid Schedule", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.storeWeek(models.EntityTypeComplex, complexID, standardWeekdays())

		result, err := fixture.usecase.ValidateSchedule(ctx, &requests.ValidateSchedule{
			EntityType:       "clinic",
			EntityID:         clinicID,
			ParentEntityType: "complex",
			ParentEntityID:   complexID,
			Schedule: []requests.DayScheduleInput{
				workingDay("monday", "10:00", "16:00"),
			},
		})

		assert.NoError(t, err)
		assert.True(t, result.IsValid)
	})

	t.Run("Parent Without Hours Passes", func(t *testing.T) {
		fixture := newUsecaseFixture()

		result, err := fixture.usecase.ValidateSchedule(ctx, &requests.ValidateSchedule{
			EntityType:       "clinic",
			EntityID:         clinicID,
			ParentEntityType: "complex",
			ParentEntityID:   complexID,
			Schedule: []requests.DayScheduleInput{
				workingDay("sunday", "00:00", "23:59"),
			},
		})

		assert.NoError(t, err)
		assert.True(t, result.IsValid, "no stored parent hours means no constraint")
	})

	t.Run("Unknown Parent Entity Type", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.ValidateSchedule(ctx, &requests.ValidateSchedule{
			EntityType:       "clinic",
			EntityID:         clinicID,
			ParentEntityType: "warehouse",
			ParentEntityID:   complexID,
			Schedule:         []requests.DayScheduleInput{workingDay("monday", "09:00", "17:00")},
		})

		assertCustomErrorStatus(t, err, constvars.StatusBadRequest)
	})

	t.Run("Second Validation Hits The Cache", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.storeWeek(models.EntityTypeComplex, complexID, standardWeekdays())

		request := &requests.ValidateSchedule{
			EntityType:       "clinic",
			EntityID:         clinicID,
			ParentEntityType: "complex",
			ParentEntityID:   complexID,
			Schedule:         []requests.DayScheduleInput{workingDay("monday", "10:00", "16:00")},
		}

		_, err := fixture.usecase.ValidateSchedule(ctx, request)
		assert.NoError(t, err)
		_, err = fixture.usecase.ValidateSchedule(ctx, request)
		assert.NoError(t, err)

		assert.Equal(t, 1, fixture.workingHours.findCalls, "the second read should be served from the cache")
	})

	t.Run("Cache Read Failure Falls Back To Repository", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.storeWeek(models.EntityTypeComplex, complexID, standardWeekdays())
		fixture.redis.getErr = errors.New("redis down")

		result, err := fixture.usecase.ValidateSchedule(ctx, &requests.ValidateSchedule{
			EntityType:       "clinic",
			EntityID:         clinicID,
			ParentEntityType: "complex",
			ParentEntityID:   complexID,
			Schedule:         []requests.DayScheduleInput{workingDay("monday", "10:00", "16:00")},
		})

		assert.NoError(t, err, "a broken cache must not break validation")
		assert.True(t, result.IsValid)
		assert.Equal(t, 1, fixture.workingHours.findCalls)
	})

	t.Run("Repository Failure Propagates", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.workingHours.findErr = errors.New("mongo unavailable")

		_, err := fixture.usecase.ValidateSchedule(ctx, &requests.ValidateSchedule{
			EntityType:       "clinic",
			EntityID:         clinicID,
			ParentEntityType: "complex",
			ParentEntityID:   complexID,
			Schedule:         []requests.DayScheduleInput{workingDay("monday", "10:00", "16:00")},
		})

		assert.Error(t, err, "the explicit validation endpoint reports store failures")
	})
}

func TestWorkingHoursUsecase_GetWorkingHours(t *testing.T) {
	ctx := context.Background()
	clinicID := primitive.NewObjectID().Hex()

	t.Run("Returns Stored Week", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.storeWeek(models.EntityTypeClinic, clinicID, standardWeekdays())

		week, err := fixture.usecase.GetWorkingHours(ctx, "clinic", clinicID)

		assert.NoError(t, err)
		assert.Len(t, week, 7)
		assert.Equal(t, "clinic", week[0].EntityType)
		assert.Equal(t, clinicID, week[0].EntityID)
	})

	t.Run("Missing Schedule Is Not Found", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.GetWorkingHours(ctx, "clinic", clinicID)

		assertCustomErrorStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("Unknown Entity Type", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.GetWorkingHours(ctx, "department", clinicID)

		assertCustomErrorStatus(t, err, constvars.StatusBadRequest)
	})

	t.Run("Read Skips The Cache", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.storeWeek(models.EntityTypeClinic, clinicID, standardWeekdays())

		_, err := fixture.usecase.GetWorkingHours(ctx, "clinic", clinicID)
		assert.NoError(t, err)
		_, err = fixture.usecase.GetWorkingHours(ctx, "clinic", clinicID)
		assert.NoError(t, err)

		assert.Equal(t, 2, fixture.workingHours.findCalls, "own-schedule reads always go to the repository")
		assert.Equal(t, 0, fixture.redis.getCalls)
	})
}

func TestWorkingHoursUsecase_UpdateWorkingHours(t *testing.T) {
	ctx := context.Background()

	organizationID := primitive.NewObjectID()
	complexID := primitive.NewObjectID()
	clinicID := primitive.NewObjectID()

	setupHierarchy := func(fixture *usecaseFixture) {
		fixture.entities.organizations[organizationID.Hex()] = &models.Organization{ID: organizationID}
		fixture.entities.complexes[complexID.Hex()] = &models.MedicalComplex{ID: complexID, OrganizationID: organizationID}
		fixture.entities.clinics[clinicID.Hex()] = &models.Clinic{ID: clinicID, ComplexID: complexID}
	}

	t.Run("Replaces The Whole Week", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.storeWeek(models.EntityTypeClinic, clinicID.Hex(), standardWeekdays())

		week, err := fixture.usecase.UpdateWorkingHours(ctx, &requests.UpdateWorkingHours{
			EntityType: "clinic",
			EntityID:   clinicID.Hex(),
			Schedule: []requests.DayScheduleInput{
				workingDay("monday", "10:00", "14:00"),
				closedDay("tuesday"),
			},
		})

		assert.NoError(t, err)
		assert.Len(t, week, 2, "the stored week is replaced, not merged")
		assert.Len(t, fixture.workingHours.weeks[weekKey(models.EntityTypeClinic, clinicID.Hex())], 2)
		assert.Equal(t, 1, fixture.tx.calls, "the replace must run inside a transaction")
	})

	t.Run("Times On Closed Days Are Dropped", func(t *testing.T) {
		fixture := newUsecaseFixture()

		closed := requests.DayScheduleInput{
			DayOfWeek:   "sunday",
			OpeningTime: timePtr("09:00"),
			ClosingTime: timePtr("17:00"),
		}

		week, err := fixture.usecase.UpdateWorkingHours(ctx, &requests.UpdateWorkingHours{
			EntityType: "clinic",
			EntityID:   clinicID.Hex(),
			Schedule:   []requests.DayScheduleInput{closed},
		})

		assert.NoError(t, err)
		assert.False(t, week[0].IsWorkingDay)
		assert.Nil(t, week[0].OpeningTime, "a closed day never persists time bounds")
		assert.Nil(t, week[0].ClosingTime)
	})

	t.Run("Structural Violation", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.UpdateWorkingHours(ctx, &requests.UpdateWorkingHours{
			EntityType: "clinic",
			EntityID:   clinicID.Hex(),
			Schedule:   []requests.DayScheduleInput{workingDay("monday", "17:00", "09:00")},
		})

		customErr := assertCustomErrorStatus(t, err, constvars.StatusBadRequest)
		assert.NotNil(t, customErr.Details, "details carry the per-day violations")
		assert.Empty(t, fixture.workingHours.weeks, "nothing is written on a rejected update")
	})

	t.Run("Hierarchy Violation When Parent Validation Requested", func(t *testing.T) {
		fixture := newUsecaseFixture()
		setupHierarchy(fixture)
		fixture.storeWeek(models.EntityTypeComplex, complexID.Hex(), standardWeekdays())

		_, err := fixture.usecase.UpdateWorkingHours(ctx, &requests.UpdateWorkingHours{
			EntityType:     "clinic",
			EntityID:       clinicID.Hex(),
			Schedule:       []requests.DayScheduleInput{workingDay("saturday", "10:00", "14:00")},
			ValidateParent: true,
		})

		assertCustomErrorStatus(t, err, constvars.StatusUnprocessableEntity)
	})

	t.Run("No Parent Validation By Default", func(t *testing.T) {
		fixture := newUsecaseFixture()
		setupHierarchy(fixture)
		fixture.storeWeek(models.EntityTypeComplex, complexID.Hex(), standardWeekdays())

		_, err := fixture.usecase.UpdateWorkingHours(ctx, &requests.UpdateWorkingHours{
			EntityType: "clinic",
			EntityID:   clinicID.Hex(),
			Schedule:   []requests.DayScheduleInput{workingDay("saturday", "10:00", "14:00")},
		})

		assert.NoError(t, err, "hierarchy checks only run when explicitly requested")
	})

	t.Run("Parent Resolution Failure Does Not Block Update", func(t *testing.T) {
		fixture := newUsecaseFixture()
		setupHierarchy(fixture)
		fixture.storeWeek(models.EntityTypeComplex, complexID.Hex(), standardWeekdays())
		fixture.entities.findErr = errors.New("directory unavailable")

		_, err := fixture.usecase.UpdateWorkingHours(ctx, &requests.UpdateWorkingHours{
			EntityType:     "clinic",
			EntityID:       clinicID.Hex(),
			Schedule:       []requests.DayScheduleInput{workingDay("saturday", "10:00", "14:00")},
			ValidateParent: true,
		})

		assert.NoError(t, err, "an unreachable directory degrades to skipping the check")
	})

	t.Run("Organization Has No Parent To Validate", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.UpdateWorkingHours(ctx, &requests.UpdateWorkingHours{
			EntityType:     "organization",
			EntityID:       organizationID.Hex(),
			Schedule:       []requests.DayScheduleInput{workingDay("monday", "08:00", "20:00")},
			ValidateParent: true,
		})

		assert.NoError(t, err)
	})

	t.Run("Cache Kept By Default", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.UpdateWorkingHours(ctx, &requests.UpdateWorkingHours{
			EntityType: "clinic",
			EntityID:   clinicID.Hex(),
			Schedule:   []requests.DayScheduleInput{workingDay("monday", "09:00", "17:00")},
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, fixture.redis.deleteCalls, "writes do not evict cached hours unless configured")
	})

	t.Run("Cache Evicted When Configured", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.config.WorkingHours.CacheInvalidateOnWrite = true

		_, err := fixture.usecase.UpdateWorkingHours(ctx, &requests.UpdateWorkingHours{
			EntityType: "clinic",
			EntityID:   clinicID.Hex(),
			Schedule:   []requests.DayScheduleInput{workingDay("monday", "09:00", "17:00")},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, fixture.redis.deleteCalls)
	})

	t.Run("Replace Failure Propagates", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.workingHours.replaceErr = errors.New("write conflict")

		_, err := fixture.usecase.UpdateWorkingHours(ctx, &requests.UpdateWorkingHours{
			EntityType: "clinic",
			EntityID:   clinicID.Hex(),
			Schedule:   []requests.DayScheduleInput{workingDay("monday", "09:00", "17:00")},
		})

		assert.Error(t, err)
	})
}

func TestWorkingHoursUsecase_SuggestForRole(t *testing.T) {
	ctx := context.Background()
	clinicID := primitive.NewObjectID()
	complexID := primitive.NewObjectID()

	t.Run("Doctor Gets Clinic Hours", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.entities.clinics[clinicID.Hex()] = &models.Clinic{ID: clinicID, Name: bilingual.New("Downtown Clinic", "عيادة وسط المدينة")}
		fixture.storeWeek(models.EntityTypeClinic, clinicID.Hex(), standardWeekdays())

		suggestion, err := fixture.usecase.SuggestForRole(ctx, &requests.SuggestSchedule{
			Role:     constvars.RoleDoctor,
			ClinicID: clinicID.Hex(),
		})

		assert.NoError(t, err)
		assert.Len(t, suggestion.SuggestedSchedule, 7)
		assert.Equal(t, "sunday", suggestion.SuggestedSchedule[0].DayOfWeek, "suggestions are ordered Sunday first")
		assert.Equal(t, "clinic", suggestion.Source.EntityType)
		assert.Equal(t, clinicID.Hex(), suggestion.Source.EntityID)
		assert.Equal(t, "Downtown Clinic", suggestion.Source.EntityName.En)
		assert.True(t, suggestion.CanModify)
	})

	t.Run("Staff Gets Complex Hours", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.entities.complexes[complexID.Hex()] = &models.MedicalComplex{ID: complexID, Name: bilingual.New("North Complex", "المجمع الشمالي")}
		fixture.storeWeek(models.EntityTypeComplex, complexID.Hex(), standardWeekdays())

		suggestion, err := fixture.usecase.SuggestForRole(ctx, &requests.SuggestSchedule{
			Role:      constvars.RoleStaff,
			ComplexID: complexID.Hex(),
		})

		assert.NoError(t, err)
		assert.Equal(t, "complex", suggestion.Source.EntityType)
	})

	t.Run("Doctor Without Clinic ID", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.SuggestForRole(ctx, &requests.SuggestSchedule{Role: constvars.RoleDoctor})

		assertCustomErrorStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("Unknown Clinic", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.SuggestForRole(ctx, &requests.SuggestSchedule{
			Role:     constvars.RoleDoctor,
			ClinicID: clinicID.Hex(),
		})

		assertCustomErrorStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("Clinic Without Hours", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.entities.clinics[clinicID.Hex()] = &models.Clinic{ID: clinicID}

		_, err := fixture.usecase.SuggestForRole(ctx, &requests.SuggestSchedule{
			Role:     constvars.RoleDoctor,
			ClinicID: clinicID.Hex(),
		})

		assertCustomErrorStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("Unknown Role", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.SuggestForRole(ctx, &requests.SuggestSchedule{Role: "janitor"})

		assertCustomErrorStatus(t, err, constvars.StatusBadRequest)
	})
}

func TestWorkingHoursUsecase_SuggestForEntity(t *testing.T) {
	ctx := context.Background()

	organizationID := primitive.NewObjectID()
	complexID := primitive.NewObjectID()
	clinicID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	setup := func(fixture *usecaseFixture) {
		fixture.entities.organizations[organizationID.Hex()] = &models.Organization{ID: organizationID, Name: bilingual.New("Care Group", "مجموعة الرعاية")}
		fixture.entities.complexes[complexID.Hex()] = &models.MedicalComplex{ID: complexID, OrganizationID: organizationID, Name: bilingual.New("North Complex", "المجمع الشمالي")}
		fixture.entities.clinics[clinicID.Hex()] = &models.Clinic{ID: clinicID, ComplexID: complexID, Name: bilingual.New("Downtown Clinic", "عيادة وسط المدينة")}
		fixture.entities.users[userID.Hex()] = &models.User{ID: userID, ClinicID: clinicID, Role: constvars.RoleDoctor}
	}

	t.Run("Direct Parent Has Hours", func(t *testing.T) {
		fixture := newUsecaseFixture()
		setup(fixture)
		fixture.storeWeek(models.EntityTypeClinic, clinicID.Hex(), standardWeekdays())

		suggestion, err := fixture.usecase.SuggestForEntity(ctx, "user", userID.Hex())

		assert.NoError(t, err)
		assert.Equal(t, "clinic", suggestion.Source.EntityType)
		assert.Equal(t, "Downtown Clinic", suggestion.Source.EntityName.En)
	})

	t.Run("Walks Past Parents Without Hours", func(t *testing.T) {
		fixture := newUsecaseFixture()
		setup(fixture)
		fixture.storeWeek(models.EntityTypeOrganization, organizationID.Hex(), standardWeekdays())

		suggestion, err := fixture.usecase.SuggestForEntity(ctx, "user", userID.Hex())

		assert.NoError(t, err)
		assert.Equal(t, "organization", suggestion.Source.EntityType, "the nearest ancestor with hours wins, however far up")
	})

	t.Run("No Ancestor Hours Falls Back To Template", func(t *testing.T) {
		fixture := newUsecaseFixture()
		setup(fixture)

		suggestion, err := fixture.usecase.SuggestForEntity(ctx, "user", userID.Hex())

		assert.NoError(t, err)
		assert.Equal(t, constvars.SuggestionSourceStandard, suggestion.Source.EntityType)
		assert.Equal(t, constvars.StandardScheduleSourceName, suggestion.Source.EntityName)
		assert.Len(t, suggestion.SuggestedSchedule, 7)

		for _, day := range suggestion.SuggestedSchedule {
			if day.DayOfWeek == "saturday" || day.DayOfWeek == "sunday" {
				assert.False(t, day.IsWorkingDay, "%s should be closed in the template", day.DayOfWeek)
				continue
			}
			assert.True(t, day.IsWorkingDay)
			if assert.NotNil(t, day.OpeningTime) {
				assert.Equal(t, constvars.StandardOpeningTime, *day.OpeningTime)
			}
			if assert.NotNil(t, day.ClosingTime) {
				assert.Equal(t, constvars.StandardClosingTime, *day.ClosingTime)
			}
		}
	})

	t.Run("Organization Falls Back Immediately", func(t *testing.T) {
		fixture := newUsecaseFixture()
		setup(fixture)

		suggestion, err := fixture.usecase.SuggestForEntity(ctx, "organization", organizationID.Hex())

		assert.NoError(t, err)
		assert.Equal(t, constvars.SuggestionSourceStandard, suggestion.Source.EntityType)
	})

	t.Run("Missing Entity Falls Back To Template", func(t *testing.T) {
		fixture := newUsecaseFixture()

		suggestion, err := fixture.usecase.SuggestForEntity(ctx, "user", userID.Hex())

		assert.NoError(t, err, "a dangling reference degrades to the template, not an error")
		assert.Equal(t, constvars.SuggestionSourceStandard, suggestion.Source.EntityType)
	})

	t.Run("Unknown Entity Type", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.SuggestForEntity(ctx, "ward", userID.Hex())

		assertCustomErrorStatus(t, err, constvars.StatusBadRequest)
	})
}
