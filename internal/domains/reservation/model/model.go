package model

import (
	"time"

	"github.com/elizhang33/room-reservations-api/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldBuilding  = "building"
	FieldRoomCode  = "room_code"
	FieldGroupSize = "group_size"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldEquipment = "equipment"
	FieldStatus    = "status"
)

const (
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

type Reservation struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Building  string    `db:"building"`
	RoomCode  string    `db:"room_code"`
	GroupSize *int      `db:"group_size"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	Equipment string    `db:"equipment"`
	Status    string    `db:"status"`
	model.Metadata
}

// Window returns the reserved interval as a TimeWindow.
func (r *Reservation) Window() TimeWindow {
	return TimeWindow{Start: r.StartTime, End: r.EndTime}
}
