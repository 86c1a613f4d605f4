package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poolhire/internal/domains/booking/model"
	"poolhire/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		PoolID:      "pool-1",
		BookingDate: "2026-07-14",
		TimeSlot:    "10:00-12:00",
	}

	booking, err := req.ToModel("user-1", 6500)
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "pool-1", booking.PoolID)
	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC), booking.BookingDate)
	assert.Equal(t, int64(6500), booking.TotalPrice)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.NotNil(t, booking.Extras)
	assert.Empty(t, booking.Extras)

	req.BookingDate = "14/07/2026"
	_, err = req.ToModel("user-1", 6500)
	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	res := dto.BookingResponse{}
	res.FromModel(model.Booking{
		ID:          "b1",
		PoolID:      "pool-1",
		UserID:      "user-1",
		BookingDate: time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
		TimeSlot:    "10:00-12:00",
		Extras:      []string{"cleaning"},
		TotalPrice:  6000,
		Status:      model.StatusConfirmed,
	})

	assert.Equal(t, "2026-07-14", res.BookingDate)
	assert.Equal(t, []string{"cleaning"}, res.Extras)
	assert.Equal(t, model.StatusConfirmed, res.Status)
}
