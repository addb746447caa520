package models

import (
	"errors"
	"strings"
	"time"
)

type Hotel struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	IDNumber     string    `json:"id_number,omitempty"`
	Address      string    `json:"address"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	PostalCode   string    `json:"postal_code,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	CheckInTime  string    `json:"check_in_time"`
	CheckOutTime string    `json:"check_out_time"`
	IsDeleted    bool      `json:"is_deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (h *Hotel) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("hotel name is required")
	}
	if strings.TrimSpace(h.Address) == "" {
		return errors.New("hotel address is required")
	}
	if h.CheckInTime == "" {
		h.CheckInTime = "14:00"
	}
	if h.CheckOutTime == "" {
		h.CheckOutTime = "12:00"
	}
	return nil
}

type Floor struct {
	ID          string    `json:"id"`
	Number      int       `json:"number"`
	Description string    `json:"description,omitempty"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f *Floor) Validate() error {
	if f.Number < 0 {
		return errors.New("floor number must be >= 0")
	}
	return nil
}

type RoomType struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BasePrice    int64     `json:"base_price"` // minor currency units
	MaxOccupancy int       `json:"max_occupancy"`
	Description  string    `json:"description,omitempty"`
	Amenities    []string  `json:"amenities"`
	IsDeleted    bool      `json:"is_deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (rt *RoomType) Validate() error {
	if strings.TrimSpace(rt.Name) == "" {
		return errors.New("room type name is required")
	}
	if rt.BasePrice < 0 {
		return errors.New("base price must be >= 0")
	}
	if rt.MaxOccupancy < 1 {
		return errors.New("max occupancy must be >= 1")
	}
	return nil
}

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomDirty       RoomStatus = "dirty"
	RoomMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomDirty, RoomMaintenance:
		return true
	}
	return false
}

type Room struct {
	ID            string     `json:"id"`
	FloorID       *string    `json:"floor_id,omitempty"`
	RoomTypeID    string     `json:"room_type_id"`
	Number        string     `json:"number"`
	Status        RoomStatus `json:"status"`
	PriceOverride *int64     `json:"price_override,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	IsDeleted     bool       `json:"is_deleted"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (r *Room) Validate() error {
	if strings.TrimSpace(r.Number) == "" {
		return errors.New("room number is required")
	}
	if r.RoomTypeID == "" {
		return errors.New("room type is required")
	}
	if r.Status == "" {
		r.Status = RoomAvailable
	}
	if !r.Status.Valid() {
		return errors.New("invalid room status")
	}
	return nil
}

type GuestProfile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	PostalCode  string    `json:"postal_code,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	FirstVisit  *time.Time `json:"first_visit_date,omitempty"`
	TotalStays  int       `json:"total_stays"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (g *GuestProfile) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.New("guest name is required")
	}
	return nil
}
