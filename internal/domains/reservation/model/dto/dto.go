package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/elizhang33/room-reservations-api/internal/domains/reservation/model"
	"github.com/elizhang33/room-reservations-api/shared"
	"github.com/elizhang33/room-reservations-api/shared/constant"
	gDto "github.com/elizhang33/room-reservations-api/shared/dto"
	"github.com/elizhang33/room-reservations-api/shared/failure"
	gModel "github.com/elizhang33/room-reservations-api/shared/model"
	"github.com/elizhang33/room-reservations-api/shared/timezone"
)

type CreateReservationRequest struct {
	UserID             string `json:"user_id"             validate:"required,max=100"`
	BuildingPreference string `json:"building_preference" validate:"omitempty,max=100"`
	GroupSize          *int   `json:"group_size"          validate:"required,gt=0"`
	StartTime          string `json:"start_time"          validate:"required"`
	EndTime            string `json:"end_time"            validate:"required"`
	Equipment          string `json:"equipment"           validate:"omitempty,max=500"`
	Strict             bool   `json:"strict"`
}

// Window parses the requested interval. Times are RFC3339 so the
// instants are unambiguous regardless of the caller's zone.
func (c *CreateReservationRequest) Window() (model.TimeWindow, error) {
	start, err := time.Parse(constant.DateFormat, c.StartTime)
	if err != nil {
		return model.TimeWindow{}, failure.BadRequestFromString("start_time must be RFC3339")
	}

	end, err := time.Parse(constant.DateFormat, c.EndTime)
	if err != nil {
		return model.TimeWindow{}, failure.BadRequestFromString("end_time must be RFC3339")
	}

	window := model.TimeWindow{Start: start, End: end}
	if err := window.Validate(); err != nil {
		return model.TimeWindow{}, err
	}

	return window, nil
}

// ToModel builds the reservation for the room the allocation search
// selected. The id is generated here, one per commit attempt.
func (c *CreateReservationRequest) ToModel(building, roomCode string, window model.TimeWindow) model.Reservation {
	return model.Reservation{
		ID:        uuid.NewString(),
		UserID:    c.UserID,
		Building:  building,
		RoomCode:  roomCode,
		GroupSize: c.GroupSize,
		StartTime: window.Start,
		EndTime:   window.End,
		Equipment: c.Equipment,
		Status:    model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  c.UserID,
			ModifiedBy: c.UserID,
		},
	}
}

type UpdateReservationRequest struct {
	GroupSize *int   `db:"group_size" json:"group_size" validate:"omitempty,gt=0"`
	Equipment string `db:"equipment"  json:"equipment"  validate:"omitempty,max=500"`
	Status    string `db:"status"     json:"status"     validate:"omitempty,oneof=CONFIRMED CANCELLED"`
	StartTime string `json:"start_time"                 validate:"omitempty"`
	EndTime   string `json:"end_time"                   validate:"omitempty"`
}

// TouchesWindow reports whether the update moves either interval bound.
func (u *UpdateReservationRequest) TouchesWindow() bool {
	return u.StartTime != "" || u.EndTime != ""
}

// Window merges the requested bounds over the currently stored window
// and validates the result.
func (u *UpdateReservationRequest) Window(current model.TimeWindow) (model.TimeWindow, error) {
	window := current

	if u.StartTime != "" {
		start, err := time.Parse(constant.DateFormat, u.StartTime)
		if err != nil {
			return model.TimeWindow{}, failure.BadRequestFromString("start_time must be RFC3339")
		}

		window.Start = start
	}

	if u.EndTime != "" {
		end, err := time.Parse(constant.DateFormat, u.EndTime)
		if err != nil {
			return model.TimeWindow{}, failure.BadRequestFromString("end_time must be RFC3339")
		}

		window.End = end
	}

	if err := window.Validate(); err != nil {
		return model.TimeWindow{}, err
	}

	return window, nil
}

type ReservationResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Building  string `json:"building"`
	RoomCode  string `json:"room_code"`
	GroupSize *int   `json:"group_size,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Equipment string `json:"equipment,omitempty"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Building = model.Building
	r.RoomCode = model.RoomCode
	r.GroupSize = model.GroupSize
	r.StartTime = timezone.Format(model.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(model.EndTime, constant.DateFormat)
	r.Equipment = model.Equipment
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ReserveResult is the outcome of a booking request. No capacity is a
// normal result, not an error, so it travels in the payload rather than
// the error channel.
type ReserveResult struct {
	Available   bool                 `json:"available"`
	Message     string               `json:"message,omitempty"`
	Reservation *ReservationResponse `json:"reservation,omitempty"`
}

type AvailabilityRequest struct {
	BuildingPreference string `json:"building_preference" validate:"omitempty,max=100"`
	GroupSize          *int   `json:"group_size"          validate:"required,gt=0"`
	StartTime          string `json:"start_time"          validate:"required"`
	EndTime            string `json:"end_time"            validate:"required"`
	Strict             bool   `json:"strict"`
}

func (a *AvailabilityRequest) Window() (model.TimeWindow, error) {
	req := CreateReservationRequest{StartTime: a.StartTime, EndTime: a.EndTime}

	return req.Window()
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Building  string `json:"building,omitempty"`
	RoomCode  string `json:"room_code,omitempty"`
	Capacity  int    `json:"capacity,omitempty"`
	Message   string `json:"message,omitempty"`
}
