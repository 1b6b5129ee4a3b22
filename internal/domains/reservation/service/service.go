package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/elizhang33/room-reservations-api/config"
	"github.com/elizhang33/room-reservations-api/infras/kafka"
	"github.com/elizhang33/room-reservations-api/infras/otel"
	"github.com/elizhang33/room-reservations-api/internal/domains/inventory"
	"github.com/elizhang33/room-reservations-api/internal/domains/reservation/model"
	"github.com/elizhang33/room-reservations-api/internal/domains/reservation/model/dto"
	"github.com/elizhang33/room-reservations-api/internal/domains/reservation/repository"
	"github.com/elizhang33/room-reservations-api/shared"
	"github.com/elizhang33/room-reservations-api/shared/cache"
	"github.com/elizhang33/room-reservations-api/shared/constant"
	gDto "github.com/elizhang33/room-reservations-api/shared/dto"
	"github.com/elizhang33/room-reservations-api/shared/failure"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"

	eventReservationConfirmed = "reservation.confirmed"
	eventReservationUpdated   = "reservation.updated"
	eventReservationCancelled = "reservation.cancelled"
)

type Reservation interface {
	Reserve(ctx context.Context, req dto.CreateReservationRequest) (dto.ReserveResult, error)
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Cancel(ctx context.Context, id string) error
}

type candidate struct {
	building string
	room     inventory.Room
}

type serviceImpl struct {
	repo    repository.Reservation
	catalog *inventory.Catalog
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	events  kafka.Client
}

func New(repo repository.Reservation, catalog *inventory.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, events kafka.Client) Reservation {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		events:  events,
	}
}

// Reserve drives the allocation search and the commit retry loop. The
// search result is only a hint; the insert can still lose to a
// concurrent commit, in which case the losing room is excluded and the
// search re-runs. The loop is bounded by the number of rooms in the
// catalog, every retry shrinks the candidate set by one.
func (s *serviceImpl) Reserve(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReserveResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.GroupSize == nil || *req.GroupSize <= 0 {
		return res, failure.BadRequestFromString("group_size must be a positive integer")
	}

	window, err := req.Window()
	if err != nil {
		return res, err
	}

	excluded := map[string]struct{}{}

	for {
		found, err := s.findRoom(ctx, req.BuildingPreference, *req.GroupSize, window, req.Strict, excluded)
		if err != nil {
			log.Error().Err(err).Msg("failed to search for a room")

			return res, fmt.Errorf("failed to search for a room: %w", err)
		}

		if found == nil {
			return dto.ReserveResult{
				Available: false,
				Message:   "no room available for the requested window",
			}, nil
		}

		reservation := req.ToModel(found.building, found.room.Code, window)

		err = s.repo.Insert(ctx, reservation)
		if failure.IsConflict(err) {
			log.Info().
				Str("building", found.building).
				Str("roomCode", found.room.Code).
				Msg("room lost a commit race, retrying search without it")

			excluded[candidateKey(found.building, found.room.Code)] = struct{}{}

			continue
		}

		if err != nil {
			log.Error().Err(err).Msg("failed to commit reservation")

			return res, fmt.Errorf("failed to commit reservation: %w", err)
		}

		var response dto.ReservationResponse
		response.FromModel(reservation)

		s.publishEvent(ctx, eventReservationConfirmed, response)

		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
			shared.InvalidateCaches(c, s.cache, cacheCountReservation)
		}()

		return dto.ReserveResult{Available: true, Reservation: &response}, nil
	}
}

// CheckAvailability runs the same search read-only. Repeated calls with
// no intervening commits return the same candidate.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.GroupSize == nil || *req.GroupSize <= 0 {
		return res, failure.BadRequestFromString("group_size must be a positive integer")
	}

	window, err := req.Window()
	if err != nil {
		return res, err
	}

	found, err := s.findRoom(ctx, req.BuildingPreference, *req.GroupSize, window, req.Strict, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to search for a room")

		return res, fmt.Errorf("failed to search for a room: %w", err)
	}

	if found == nil {
		return dto.AvailabilityResponse{
			Available: false,
			Message:   "no room available for the requested window",
		}, nil
	}

	return dto.AvailabilityResponse{
		Available: true,
		Building:  found.building,
		RoomCode:  found.room.Code,
		Capacity:  found.room.Capacity,
	}, nil
}

// findRoom walks the candidate buildings in policy order and returns
// the first conflict-free room with enough capacity, or nil when every
// candidate is exhausted. Room order within a building is the declared
// catalog order, ascending capacity, so the smallest sufficient room
// wins and larger rooms stay free for larger groups.
func (s *serviceImpl) findRoom(ctx context.Context, preference string, groupSize int, window model.TimeWindow, strict bool, excluded map[string]struct{}) (*candidate, error) {
	for _, buildingName := range s.candidateBuildings(preference, strict) {
		conflicts, err := s.repo.ConflictingReservations(ctx, buildingName, window)
		if err != nil {
			return nil, fmt.Errorf("failed to load conflicting reservations: %w", err)
		}

		rooms, ok := s.catalog.Rooms(buildingName)
		if !ok {
			continue
		}

		for _, room := range rooms {
			if room.Capacity < groupSize {
				continue
			}

			if _, skip := excluded[candidateKey(buildingName, room.Code)]; skip {
				continue
			}

			if roomHasConflict(conflicts, room.Code, window) {
				continue
			}

			return &candidate{building: buildingName, room: room}, nil
		}
	}

	return nil, nil //nolint:nilnil
}

// candidateBuildings resolves the search order. Strict confines the
// search to the preferred building; an unknown preference under strict
// yields no candidates, while a non-strict unknown preference falls
// back to the full catalog order.
func (s *serviceImpl) candidateBuildings(preference string, strict bool) []string {
	names := s.catalog.BuildingNames()

	if preference == "" {
		return names
	}

	preferred, known := s.catalog.Normalize(preference)
	if !known {
		if strict {
			return nil
		}

		return names
	}

	if strict {
		return []string{preferred}
	}

	ordered := make([]string, 0, len(names))
	ordered = append(ordered, preferred)

	for _, name := range names {
		if name != preferred {
			ordered = append(ordered, name)
		}
	}

	return ordered
}

func roomHasConflict(conflicts []model.Reservation, roomCode string, window model.TimeWindow) bool {
	for _, existing := range conflicts {
		if existing.RoomCode == roomCode && window.Overlaps(existing.Window()) {
			return true
		}
	}

	return false
}

func candidateKey(building, roomCode string) string {
	return building + "/" + roomCode
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// Update patches the enumerated mutable fields. Window changes are
// merged over the stored bounds, re-validated, and remain guarded by
// the storage exclusion constraint, so a patch can never move a
// reservation onto an occupied slot.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateReservationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if existing.ID == constant.Empty {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, existing.UserID)

	if req.TouchesWindow() {
		window, err := req.Window(existing.Window())
		if err != nil {
			return err
		}

		updatedFields[model.FieldStartTime] = window.Start
		updatedFields[model.FieldEndTime] = window.End
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		if failure.IsConflict(err) {
			return err
		}

		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err == nil && updated.ID != constant.Empty {
		var response dto.ReservationResponse
		response.FromModel(updated)

		s.publishEvent(ctx, eventReservationUpdated, response)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return nil
}

// Cancel removes the reservation. Cancellation is a deletion in this
// model, a cancelled slot frees immediately.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if existing.ID == constant.Empty {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	existing.Status = model.StatusCancelled

	var response dto.ReservationResponse
	response.FromModel(existing)

	s.publishEvent(ctx, eventReservationCancelled, response)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return nil
}

type reservationEvent struct {
	Type        string                  `json:"type"`
	Reservation dto.ReservationResponse `json:"reservation"`
}

// publishEvent emits a fire and forget domain event. Event delivery is
// best effort and never blocks or fails the request.
func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, reservation dto.ReservationResponse) {
	c := context.WithoutCancel(ctx)

	go func() {
		message := kafka.Message{
			Key: reservation.ID,
			Value: reservationEvent{
				Type:        eventType,
				Reservation: reservation,
			},
		}

		if err := s.events.SendMessages(c, s.cfg.Kafka.Topic.ReservationEvents, message); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish reservation event")
		}
	}()
}
