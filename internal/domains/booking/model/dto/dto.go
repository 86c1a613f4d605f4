package dto

import (
	"poolhire/internal/domains/booking/model"
	"poolhire/shared"
	gDto "poolhire/shared/dto"
	gModel "poolhire/shared/model"
	"poolhire/shared/timezone"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type QuoteRequest struct {
	PoolID string   `json:"pool_id" validate:"required"`
	Extras []string `json:"extras"  validate:"omitempty,dive,required"`
}

type QuoteResponse struct {
	PoolID      string `json:"pool_id"`
	BasePrice   int64  `json:"base_price"`
	ExtrasPrice int64  `json:"extras_price"`
	TotalPrice  int64  `json:"total_price"`
	Currency    string `json:"currency"`
}

type CreateBookingRequest struct {
	PoolID      string   `json:"pool_id"      validate:"required"`
	BookingDate string   `json:"booking_date" validate:"required,datetime=2006-01-02"`
	TimeSlot    string   `json:"time_slot"    validate:"required,timeslot"`
	Extras      []string `json:"extras"       validate:"omitempty,dive,required"`
}

func (c *CreateBookingRequest) ToModel(user string, totalPrice int64) (model.Booking, error) {
	bookingDate, err := time.Parse(DateLayout, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	extras := c.Extras
	if extras == nil {
		extras = []string{}
	}

	now := timezone.Now()

	return model.Booking{
		ID:          uuid.NewString(),
		PoolID:      c.PoolID,
		UserID:      user,
		BookingDate: bookingDate,
		TimeSlot:    c.TimeSlot,
		Extras:      extras,
		TotalPrice:  totalPrice,
		Status:      model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BookingResponse struct {
	ID          string   `json:"id"`
	PoolID      string   `json:"pool_id"`
	UserID      string   `json:"user_id"`
	BookingDate string   `json:"booking_date"`
	TimeSlot    string   `json:"time_slot"`
	Extras      []string `json:"extras"`
	TotalPrice  int64    `json:"total_price"`
	Status      string   `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.PoolID = model.PoolID
	r.UserID = model.UserID
	r.BookingDate = model.BookingDate.Format(DateLayout)
	r.TimeSlot = model.TimeSlot
	r.Extras = []string(model.Extras)
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
