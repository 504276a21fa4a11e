package models

import (
	"time"
)

// ReservationEvent 代表預約看板透過 WebSocket 廣播的事件
type ReservationEvent struct {
	Type          string       `json:"type"`
	Reservation   *Reservation `json:"reservation,omitempty"`
	ReservationID string       `json:"reservation_id,omitempty"`
	Timestamp     time.Time    `json:"timestamp"`
}

// NewReservationCreatedEvent 建立一個新預約事件
func NewReservationCreatedEvent(reservation *Reservation) *ReservationEvent {
	return &ReservationEvent{
		Type:        "reservation_created",
		Reservation: reservation,
		Timestamp:   time.Now(),
	}
}

// NewReservationCancelledEvent 建立一個取消預約事件
func NewReservationCancelledEvent(reservationID string) *ReservationEvent {
	return &ReservationEvent{
		Type:          "reservation_cancelled",
		ReservationID: reservationID,
		Timestamp:     time.Now(),
	}
}
