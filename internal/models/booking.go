package models

import (
	"errors"
	"time"
)

type BookingStatus string

const (
	BookingReserved   BookingStatus = "reserved"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingReserved, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type Booking struct {
	ID                 string        `json:"id"`
	GuestID            string        `json:"guest_id"`
	RoomID             string        `json:"room_id"`
	ConfirmationCode   string        `json:"confirmation_code"`
	CheckIn            time.Time     `json:"check_in"`
	CheckOut           time.Time     `json:"check_out"`
	NumberOfGuests     int           `json:"number_of_guests"`
	Status             BookingStatus `json:"status"`
	PaymentStatus      PaymentStatus `json:"payment_status"`
	SpecialRequests    string        `json:"special_requests,omitempty"`
	CancellationDate   *time.Time    `json:"cancellation_date,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	IsDeleted          bool          `json:"is_deleted"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (b *Booking) Validate() error {
	if b.GuestID == "" {
		return errors.New("guest is required")
	}
	if b.RoomID == "" {
		return errors.New("room is required")
	}
	if b.CheckIn.IsZero() || b.CheckOut.IsZero() {
		return errors.New("check-in and check-out dates are required")
	}
	if !b.CheckOut.After(b.CheckIn) {
		return errors.New("check-out must be after check-in")
	}
	if b.NumberOfGuests < 1 {
		b.NumberOfGuests = 1
	}
	if b.Status == "" {
		b.Status = BookingReserved
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	return nil
}
