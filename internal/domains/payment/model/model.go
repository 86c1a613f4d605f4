package model

import (
	"poolhire/shared/model"
	"time"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID                    = "id"
	FieldBookingID             = "booking_id"
	FieldStripePaymentIntentID = "stripe_payment_intent_id"
	FieldStatus                = "status"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusSucceeded  = "succeeded"
	StatusFailed     = "failed"
	StatusCanceled   = "canceled"
)

// Payment tracks one provider payment intent for a booking.
// Amount, PlatformFee and HostPayoutAmount are minor units and Amount = PlatformFee + HostPayoutAmount.
type Payment struct {
	ID                    string     `db:"id"`
	BookingID             string     `db:"booking_id"`
	StripePaymentIntentID string     `db:"stripe_payment_intent_id"`
	Amount                int64      `db:"amount"`
	Currency              string     `db:"currency"`
	PlatformFee           int64      `db:"platform_fee"`
	HostPayoutAmount      int64      `db:"host_payout_amount"`
	Status                string     `db:"status"`
	ProcessedAt           *time.Time `db:"processed_at"`
	model.Metadata
}

const (
	PayoutTableName      = "host_payouts"
	PayoutEntityName     = "host_payout"
	PayoutFieldPaymentID = "payment_id"

	PayoutStatusPending    = "pending"
	PayoutStatusProcessing = "processing"
	PayoutStatusPaid       = "paid"
	PayoutStatusFailed     = "failed"
)

// HostPayout is the host's share of a succeeded payment; at most one exists per payment.
type HostPayout struct {
	ID        string    `db:"id"`
	PaymentID string    `db:"payment_id"`
	HostID    string    `db:"host_id"`
	Amount    int64     `db:"amount"`
	Currency  string    `db:"currency"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

const (
	ProcessedEventTableName  = "processed_events"
	ProcessedEventEntityName = "processed_event"
	ProcessedEventFieldID    = "id"
)

// ProcessedEvent records a provider event id that has already been applied.
type ProcessedEvent struct {
	ID          string    `db:"id"`
	Provider    string    `db:"provider"`
	EventType   string    `db:"event_type"`
	ProcessedAt time.Time `db:"processed_at"`
}
