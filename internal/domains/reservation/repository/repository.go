package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/elizhang33/room-reservations-api/infras/otel"
	"github.com/elizhang33/room-reservations-api/infras/postgres"
	"github.com/elizhang33/room-reservations-api/internal/domains/reservation/model"
	"github.com/elizhang33/room-reservations-api/shared/constant"
	gDto "github.com/elizhang33/room-reservations-api/shared/dto"
	"github.com/elizhang33/room-reservations-api/shared/failure"
	gRepo "github.com/elizhang33/room-reservations-api/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ConflictingReservations(ctx context.Context, building string, window model.TimeWindow) ([]model.Reservation, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists a reservation. The reservations table carries a
// temporal exclusion constraint over (building, room_code, window) for
// CONFIRMED rows, so two overlapping inserts can never both commit; the
// loser surfaces here as a conflict.
func (r *repositoryImpl) Insert(ctx context.Context, reservation model.Reservation) error {
	err := r.Repository.Insert(ctx, reservation)
	if err != nil {
		return asConflict(err)
	}

	return nil
}

// Update applies enumerated column changes. Window changes stay subject
// to the exclusion constraint, an update cannot move a reservation onto
// an occupied slot.
func (r *repositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	err := r.Repository.Update(ctx, req, filter)
	if err != nil {
		return asConflict(err)
	}

	return nil
}

// ConflictingReservations returns the CONFIRMED reservations in a
// building whose stored window overlaps the requested one. It narrows
// candidates for the allocation search; it is never a commit-time
// guarantee because rows can land between this read and the insert.
func (r *repositoryImpl) ConflictingReservations(ctx context.Context, building string, window model.TimeWindow) ([]model.Reservation, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBuilding,
				Value:    building,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusConfirmed,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartTime,
				ArgName:  "window_end",
				Value:    window.End,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndTime,
				ArgName:  "window_start",
				Value:    window.Start,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}

	reservations, err := r.Repository.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicting reservations: %w", err)
	}

	return reservations, nil
}

func asConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return failure.Conflict("reservation window conflicts with an existing booking") //nolint:wrapcheck
	}

	return err
}
