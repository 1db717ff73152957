package model

import (
	"strings"
	"time"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// Valid reports membership in the closed reservation status set. Any member
// is reachable from any other; the simplified booking flow defines no
// further transitions.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}

// NormalizeReservationStatus maps a stored status to canonical lower-case,
// rendering an empty value as pending.
func NormalizeReservationStatus(s ReservationStatus) ReservationStatus {
	normalized := ReservationStatus(strings.ToLower(strings.TrimSpace(string(s))))
	if normalized == "" {
		return ReservationStatusPending
	}
	return normalized
}

type Reservation struct {
	ID              uint              `gorm:"primarykey" json:"id"`
	CustomerName    string            `gorm:"type:varchar(200);not null" json:"customer_name"`
	CustomerEmail   *string           `gorm:"type:varchar(255)" json:"customer_email"`
	CustomerPhone   string            `gorm:"type:varchar(20);not null" json:"customer_phone"`
	Date            time.Time         `gorm:"not null" json:"date"`
	Guests          int               `gorm:"not null" json:"guests"`
	SpecialRequests string            `gorm:"type:text" json:"special_requests,omitempty"`
	Status          ReservationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// Normalize applies the serialization contract: canonical status casing and
// a null email when none was given (an empty string stored by an older
// writer must not serialize as "").
func (r *Reservation) Normalize() {
	r.Status = NormalizeReservationStatus(r.Status)
	if r.CustomerEmail != nil && strings.TrimSpace(*r.CustomerEmail) == "" {
		r.CustomerEmail = nil
	}
}
