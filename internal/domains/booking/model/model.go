package model

import (
	"poolhire/shared/model"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldPoolID      = "pool_id"
	FieldUserID      = "user_id"
	FieldBookingDate = "booking_date"
	FieldTimeSlot    = "time_slot"
	FieldExtras      = "extras"
	FieldTotalPrice  = "total_price"
	FieldStatus      = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Booking reserves a time slot of a pool. TotalPrice is in minor units and Extras holds extra ids.
type Booking struct {
	ID          string         `db:"id"`
	PoolID      string         `db:"pool_id"`
	UserID      string         `db:"user_id"`
	BookingDate time.Time      `db:"booking_date"`
	TimeSlot    string         `db:"time_slot"`
	Extras      pq.StringArray `db:"extras"`
	TotalPrice  int64          `db:"total_price"`
	Status      string         `db:"status"`
	model.Metadata
}
