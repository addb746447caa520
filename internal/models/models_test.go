package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidate(t *testing.T) {
	u := User{Email: "jane@hostel.test", FirstName: "Jane", LastName: "Doe"}
	require.NoError(t, u.Validate())
	assert.Equal(t, RoleUser, u.Role, "empty role defaults to user")

	bad := User{Email: "not-an-email", FirstName: "Jane", LastName: "Doe"}
	assert.Error(t, bad.Validate())

	noName := User{Email: "jane@hostel.test", FirstName: " "}
	assert.Error(t, noName.Validate())

	badRole := User{Email: "jane@hostel.test", FirstName: "Jane", LastName: "Doe", Role: "root"}
	assert.Error(t, badRole.Validate())
}

func TestIDNumberPrefix(t *testing.T) {
	assert.Equal(t, "ADM", IDNumberPrefix(RoleAdmin))
	assert.Equal(t, "MGR", IDNumberPrefix(RoleManager))
	assert.Equal(t, "STA", IDNumberPrefix(RoleStaff))
	assert.Equal(t, "USR", IDNumberPrefix(RoleUser))
	assert.Equal(t, "USR", IDNumberPrefix("anything-else"))
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", u.FullName())
}

func TestBookingValidate(t *testing.T) {
	in := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	out := in.Add(48 * time.Hour)

	b := Booking{GuestID: "g1", RoomID: "r1", CheckIn: in, CheckOut: out}
	require.NoError(t, b.Validate())
	assert.Equal(t, BookingReserved, b.Status)
	assert.Equal(t, PaymentPending, b.PaymentStatus)
	assert.Equal(t, 1, b.NumberOfGuests)

	backwards := Booking{GuestID: "g1", RoomID: "r1", CheckIn: out, CheckOut: in}
	assert.Error(t, backwards.Validate())

	noRoom := Booking{GuestID: "g1", CheckIn: in, CheckOut: out}
	assert.Error(t, noRoom.Validate())
}

func TestInvoiceValidateComputesTotal(t *testing.T) {
	inv := Invoice{BookingID: "b1", Subtotal: 10000, DiscountAmount: 1000, Tax: 750}
	require.NoError(t, inv.Validate())
	assert.Equal(t, int64(9750), inv.Total)
	assert.Equal(t, PaymentPending, inv.PaymentStatus)

	explicit := Invoice{BookingID: "b1", Subtotal: 10000, Total: 5000}
	require.NoError(t, explicit.Validate())
	assert.Equal(t, int64(5000), explicit.Total)

	negative := Invoice{BookingID: "b1", Subtotal: 100, DiscountAmount: 500}
	assert.Error(t, negative.Validate())
}

func TestPaymentValidate(t *testing.T) {
	p := Payment{InvoiceID: "i1", Amount: 2500, Method: MethodCard}
	require.NoError(t, p.Validate())
	assert.Equal(t, PaymentPending, p.PaymentStatus)

	assert.Error(t, (&Payment{InvoiceID: "i1", Amount: 0, Method: MethodCash}).Validate())
	assert.Error(t, (&Payment{InvoiceID: "i1", Amount: 100, Method: "barter"}).Validate())
	assert.Error(t, (&Payment{Amount: 100, Method: MethodCash}).Validate())
}

func TestRoomStatusAndPaymentStatusValid(t *testing.T) {
	assert.True(t, RoomAvailable.Valid())
	assert.True(t, RoomMaintenance.Valid())
	assert.False(t, RoomStatus("haunted").Valid())

	assert.True(t, PaymentRefunded.Valid())
	assert.False(t, PaymentStatus("iou").Valid())

	assert.True(t, BookingCancelled.Valid())
	assert.False(t, BookingStatus("ghosted").Valid())
}
