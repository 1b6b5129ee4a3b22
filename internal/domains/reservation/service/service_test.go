package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/elizhang33/room-reservations-api/config"
	"github.com/elizhang33/room-reservations-api/infras/kafka"
	kafkaMocks "github.com/elizhang33/room-reservations-api/infras/kafka/mocks"
	"github.com/elizhang33/room-reservations-api/infras/otel/mocks"
	"github.com/elizhang33/room-reservations-api/internal/domains/inventory"
	reservationMocks "github.com/elizhang33/room-reservations-api/internal/domains/reservation/mocks"
	"github.com/elizhang33/room-reservations-api/internal/domains/reservation/model"
	"github.com/elizhang33/room-reservations-api/internal/domains/reservation/model/dto"
	"github.com/elizhang33/room-reservations-api/internal/domains/reservation/repository"
	"github.com/elizhang33/room-reservations-api/internal/domains/reservation/service"
	cacheMocks "github.com/elizhang33/room-reservations-api/shared/cache/mocks"
	gDto "github.com/elizhang33/room-reservations-api/shared/dto"
	"github.com/elizhang33/room-reservations-api/shared/failure"
	gModel "github.com/elizhang33/room-reservations-api/shared/model"
)

func testCatalog(t *testing.T) *inventory.Catalog {
	t.Helper()

	catalog, err := inventory.New([]inventory.Building{
		{
			Name: "Main Hall",
			Rooms: []inventory.Room{
				{Code: "MH-5", Capacity: 5},
				{Code: "MH-8", Capacity: 8},
				{Code: "MH-10", Capacity: 10},
				{Code: "MH-12", Capacity: 12},
				{Code: "MH-15", Capacity: 15},
			},
		},
		{
			Name: "Library",
			Rooms: []inventory.Room{
				{Code: "LB-4", Capacity: 4},
				{Code: "LB-8", Capacity: 8},
			},
		},
	})
	require.NoError(t, err)

	return catalog
}

func intPtr(v int) *int {
	return &v
}

func reserveRequest(groupSize int) dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		UserID:    "user-1",
		GroupSize: intPtr(groupSize),
		StartTime: "2026-03-14T10:00:00Z",
		EndTime:   "2026-03-14T11:00:00Z",
	}
}

func confirmed(roomCode string, startHour, endHour int) model.Reservation {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	return model.Reservation{
		ID:        "existing-" + roomCode,
		UserID:    "user-9",
		Building:  "Main Hall",
		RoomCode:  roomCode,
		StartTime: day.Add(time.Duration(startHour) * time.Hour),
		EndTime:   day.Add(time.Duration(endHour) * time.Hour),
		Status:    model.StatusConfirmed,
		Metadata:  gModel.Metadata{CreatedBy: "user-9", ModifiedBy: "user-9"},
	}
}

func newTestService(t *testing.T, ctrl *gomock.Controller) (service.Reservation, *reservationMocks.MockReservation, *cacheMocks.MockRedisCache, *kafkaMocks.MockClient) {
	t.Helper()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topic.ReservationEvents = "reservation-events"

	catalog := testCatalog(t)

	svc := service.New(mockRepo, catalog, cfg, mockCache, mockOtel, mockKafka)

	return svc, mockRepo, mockCache, mockKafka
}

func allowAsyncEffects(mockCache *cacheMocks.MockRedisCache, mockKafka *kafkaMocks.MockClient) {
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestReservationService_Reserve_BestFit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, mockKafka := newTestService(t, ctrl)
	allowAsyncEffects(mockCache, mockKafka)

	mockRepo.EXPECT().
		ConflictingReservations(gomock.Any(), "Main Hall", gomock.Any()).
		Return(nil, nil)

	var committed model.Reservation

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
			committed = reservation

			return nil
		})

	res, err := svc.Reserve(context.Background(), reserveRequest(6))

	require.NoError(t, err)
	assert.True(t, res.Available)
	require.NotNil(t, res.Reservation)
	assert.Equal(t, "MH-8", committed.RoomCode, "smallest sufficient room wins")
	assert.Equal(t, model.StatusConfirmed, committed.Status)
	assert.NotEmpty(t, committed.ID)

	time.Sleep(10 * time.Millisecond)
}

func TestReservationService_Reserve_NoCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestService(t, ctrl)

	mockRepo.EXPECT().
		ConflictingReservations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(2)

	res, err := svc.Reserve(context.Background(), reserveRequest(50))

	require.NoError(t, err, "no capacity is a normal outcome, not an error")
	assert.False(t, res.Available)
	assert.Nil(t, res.Reservation)
	assert.NotEmpty(t, res.Message)
}

func TestReservationService_Reserve_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestService(t, ctrl)

	testCases := []struct {
		name string
		req  dto.CreateReservationRequest
	}{
		{
			name: "missing group size",
			req: dto.CreateReservationRequest{
				UserID:    "user-1",
				StartTime: "2026-03-14T10:00:00Z",
				EndTime:   "2026-03-14T11:00:00Z",
			},
		},
		{
			name: "non-positive group size",
			req: dto.CreateReservationRequest{
				UserID:    "user-1",
				GroupSize: intPtr(0),
				StartTime: "2026-03-14T10:00:00Z",
				EndTime:   "2026-03-14T11:00:00Z",
			},
		},
		{
			name: "inverted window",
			req: dto.CreateReservationRequest{
				UserID:    "user-1",
				GroupSize: intPtr(4),
				StartTime: "2026-03-14T11:00:00Z",
				EndTime:   "2026-03-14T10:00:00Z",
			},
		},
		{
			name: "malformed start time",
			req: dto.CreateReservationRequest{
				UserID:    "user-1",
				GroupSize: intPtr(4),
				StartTime: "tomorrow at ten",
				EndTime:   "2026-03-14T11:00:00Z",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Reserve(context.Background(), tc.req)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestReservationService_Reserve_RetriesAfterCommitRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, mockKafka := newTestService(t, ctrl)
	allowAsyncEffects(mockCache, mockKafka)

	mockRepo.EXPECT().
		ConflictingReservations(gomock.Any(), "Main Hall", gomock.Any()).
		Return(nil, nil).
		Times(2)

	var committed []string

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
			committed = append(committed, reservation.RoomCode)
			if len(committed) == 1 {
				return failure.Conflict("reservation window conflicts with an existing booking")
			}

			return nil
		}).
		Times(2)

	res, err := svc.Reserve(context.Background(), reserveRequest(6))

	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, []string{"MH-8", "MH-10"}, committed, "losing room is excluded on retry")

	time.Sleep(10 * time.Millisecond)
}

func TestReservationService_Reserve_StrictVsFallback(t *testing.T) {
	fullyBooked := []model.Reservation{
		confirmed("MH-5", 10, 11),
		confirmed("MH-8", 10, 11),
		confirmed("MH-10", 10, 11),
		confirmed("MH-12", 10, 11),
		confirmed("MH-15", 10, 11),
	}

	t.Run("strict yields no capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, _, _ := newTestService(t, ctrl)

		mockRepo.EXPECT().
			ConflictingReservations(gomock.Any(), "Main Hall", gomock.Any()).
			Return(fullyBooked, nil)

		req := reserveRequest(6)
		req.BuildingPreference = "Main Hall"
		req.Strict = true

		res, err := svc.Reserve(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, res.Available)
	})

	t.Run("fallback finds a room elsewhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockCache, mockKafka := newTestService(t, ctrl)
		allowAsyncEffects(mockCache, mockKafka)

		mockRepo.EXPECT().
			ConflictingReservations(gomock.Any(), "Main Hall", gomock.Any()).
			Return(fullyBooked, nil)
		mockRepo.EXPECT().
			ConflictingReservations(gomock.Any(), "Library", gomock.Any()).
			Return(nil, nil)

		var committed model.Reservation

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
				committed = reservation

				return nil
			})

		req := reserveRequest(6)
		req.BuildingPreference = "Main Hall"

		res, err := svc.Reserve(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, "Library", committed.Building)
		assert.Equal(t, "LB-8", committed.RoomCode)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestReservationService_Reserve_UnknownPreference(t *testing.T) {
	t.Run("strict unknown building is no capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _, _ := newTestService(t, ctrl)

		req := reserveRequest(4)
		req.BuildingPreference = "Observatory"
		req.Strict = true

		res, err := svc.Reserve(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, res.Available)
	})

	t.Run("non-strict unknown building falls back to full catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockCache, mockKafka := newTestService(t, ctrl)
		allowAsyncEffects(mockCache, mockKafka)

		mockRepo.EXPECT().
			ConflictingReservations(gomock.Any(), "Main Hall", gomock.Any()).
			Return(nil, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		req := reserveRequest(4)
		req.BuildingPreference = "Observatory"

		res, err := svc.Reserve(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, res.Available)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestReservationService_Reserve_BoundaryTouchIsFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, mockKafka := newTestService(t, ctrl)
	allowAsyncEffects(mockCache, mockKafka)

	// The coarse store filter may hand back boundary rows; the exact
	// predicate must not treat [10,11) and [11,12) as a conflict.
	mockRepo.EXPECT().
		ConflictingReservations(gomock.Any(), "Main Hall", gomock.Any()).
		Return([]model.Reservation{confirmed("MH-8", 10, 11)}, nil)

	var committed model.Reservation

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
			committed = reservation

			return nil
		})

	req := reserveRequest(6)
	req.StartTime = "2026-03-14T11:00:00Z"
	req.EndTime = "2026-03-14T12:00:00Z"

	res, err := svc.Reserve(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, "MH-8", committed.RoomCode)

	time.Sleep(10 * time.Millisecond)
}

func TestReservationService_CheckAvailability_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newTestService(t, ctrl)

	existing := []model.Reservation{confirmed("MH-8", 10, 11)}

	mockRepo.EXPECT().
		ConflictingReservations(gomock.Any(), "Main Hall", gomock.Any()).
		Return(existing, nil).
		Times(2)

	req := dto.AvailabilityRequest{
		GroupSize: intPtr(6),
		StartTime: "2026-03-14T10:00:00Z",
		EndTime:   "2026-03-14T11:00:00Z",
	}

	first, err := svc.CheckAvailability(context.Background(), req)
	require.NoError(t, err)

	second, err := svc.CheckAvailability(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, first.Available)
	assert.Equal(t, "MH-10", first.RoomCode, "capacity-8 room is taken, next is capacity-10")
	assert.Equal(t, first, second, "identical inputs with no intervening commits return the same candidate")
}

// raceRepo is an in-memory store whose Insert enforces the same
// exclusion rule the database constraint does: under one lock, an
// overlapping confirmed row on the same building and room rejects the
// insert with a conflict.
type raceRepo struct {
	mu           sync.Mutex
	reservations []model.Reservation
}

var _ repository.Reservation = (*raceRepo)(nil)

func (r *raceRepo) Insert(_ context.Context, reservation model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reservations {
		if existing.Building == reservation.Building &&
			existing.RoomCode == reservation.RoomCode &&
			existing.Status == model.StatusConfirmed &&
			reservation.Window().Overlaps(existing.Window()) {
			return failure.Conflict("reservation window conflicts with an existing booking")
		}
	}

	r.reservations = append(r.reservations, reservation)

	return nil
}

func (r *raceRepo) ConflictingReservations(_ context.Context, building string, window model.TimeWindow) ([]model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches := []model.Reservation{}

	for _, existing := range r.reservations {
		if existing.Building == building &&
			existing.Status == model.StatusConfirmed &&
			window.Overlaps(existing.Window()) {
			matches = append(matches, existing)
		}
	}

	return matches, nil
}

func (r *raceRepo) Get(context.Context, gDto.FilterGroup, ...string) (model.Reservation, error) {
	return model.Reservation{}, nil
}

func (r *raceRepo) GetAll(context.Context, gDto.QueryParams, gDto.FilterGroup, ...string) ([]model.Reservation, error) {
	return nil, nil
}

func (r *raceRepo) Exist(context.Context, gDto.FilterGroup) (bool, error) {
	return false, nil
}

func (r *raceRepo) Count(context.Context, gDto.FilterGroup) (int, error) {
	return 0, nil
}

func (r *raceRepo) Update(context.Context, map[string]any, gDto.FilterGroup) error {
	return nil
}

func (r *raceRepo) Delete(context.Context, gDto.FilterGroup) error {
	return nil
}

// noopCache and noopEvents keep the concurrency test free of mock
// bookkeeping, the goroutines here outlive individual assertions.
type noopCache struct{}

func (noopCache) Save(context.Context, string, any, int) error { return nil }
func (noopCache) Get(context.Context, string, any) error       { return errors.New("cache miss") }
func (noopCache) Delete(context.Context, string) error         { return nil }
func (noopCache) Clear(context.Context, string) error          { return nil }

func TestReservationService_Reserve_ExactlyOneWinsTheRace(t *testing.T) {
	catalog, err := inventory.New([]inventory.Building{
		{
			Name:  "Main Hall",
			Rooms: []inventory.Room{{Code: "MH-8", Capacity: 8}},
		},
	})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	repo := &raceRepo{}
	svc := service.New(repo, catalog, cfg, noopCache{}, mocks.NewOtel(), kafkaDropAll{})

	const attempts = 16

	var wg sync.WaitGroup

	results := make([]dto.ReserveResult, attempts)
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			results[i], errs[i] = svc.Reserve(context.Background(), reserveRequest(6))
		}(i)
	}

	wg.Wait()

	granted := 0

	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i], "losers must see a no-capacity outcome, not an error")

		if results[i].Available {
			granted++
		}
	}

	assert.Equal(t, 1, granted, "exactly one concurrent request may win the room")
	assert.Len(t, repo.reservations, 1)
}

type kafkaDropAll struct{}

func (kafkaDropAll) SendMessages(context.Context, string, ...kafka.Message) error { return nil }

func (kafkaDropAll) Consume(context.Context, string, string, func(kafkaGo.Message)) {}

func (kafkaDropAll) Reader(string, string) *kafkaGo.Reader { return nil }

func TestReservationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, _ := newTestService(t, ctrl)

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("found on cache miss", func(t *testing.T) {
		existing := confirmed("MH-8", 10, 11)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		res, err := svc.Get(context.Background(), existing.ID)

		require.NoError(t, err)
		assert.Equal(t, existing.ID, res.ID)
		assert.Equal(t, "MH-8", res.RoomCode)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestReservationService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _, _ := newTestService(t, ctrl)

		err := svc.Update(context.Background(), dto.UpdateReservationRequest{}, "some-id")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, _, _ := newTestService(t, ctrl)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		err := svc.Update(context.Background(), dto.UpdateReservationRequest{Equipment: "projector"}, "missing-id")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("window change surfaces a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, _, _ := newTestService(t, ctrl)

		existing := confirmed("MH-8", 10, 11)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.Conflict("reservation window conflicts with an existing booking"))

		req := dto.UpdateReservationRequest{
			StartTime: "2026-03-14T12:00:00Z",
			EndTime:   "2026-03-14T13:00:00Z",
		}

		err := svc.Update(context.Background(), req, existing.ID)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("window change applies merged bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockCache, mockKafka := newTestService(t, ctrl)
		allowAsyncEffects(mockCache, mockKafka)

		existing := confirmed("MH-8", 10, 11)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil).
			Times(2)

		var applied map[string]any

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				applied = fields

				return nil
			})

		req := dto.UpdateReservationRequest{EndTime: "2026-03-14T12:00:00Z"}

		err := svc.Update(context.Background(), req, existing.ID)

		require.NoError(t, err)
		assert.Equal(t, existing.StartTime, applied[model.FieldStartTime], "unchanged bound is kept from the stored window")
		assert.Equal(t, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), applied[model.FieldEndTime])

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("rejects inverted merged window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, _, _ := newTestService(t, ctrl)

		existing := confirmed("MH-8", 10, 11)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		req := dto.UpdateReservationRequest{EndTime: "2026-03-14T09:00:00Z"}

		err := svc.Update(context.Background(), req, existing.ID)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReservationService_Cancel(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, _, _ := newTestService(t, ctrl)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		err := svc.Cancel(context.Background(), "missing-id")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockCache, mockKafka := newTestService(t, ctrl)
		allowAsyncEffects(mockCache, mockKafka)

		existing := confirmed("MH-8", 10, 11)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Cancel(context.Background(), existing.ID)

		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})
}

