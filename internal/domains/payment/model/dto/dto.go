package dto

import "time"

type CreateIntentRequest struct {
	BookingID string  `json:"booking_id" validate:"required,uuid"`
	Amount    float64 `json:"amount"     validate:"required,gt=0,lte=999999.99"`
	Currency  string  `json:"currency"   validate:"omitempty,currency"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	PaymentID    string `json:"payment_id"`
}

// PaymentEvent is published once per applied webhook event.
type PaymentEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	PaymentIntentID string    `json:"payment_intent_id"`
	PaymentID       string    `json:"payment_id,omitempty"`
	BookingID       string    `json:"booking_id,omitempty"`
	Status          string    `json:"status"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	OccurredAt      time.Time `json:"occurred_at"`
}
