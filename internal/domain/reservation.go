package domain

import "time"

// ReservationState represents the lifecycle state of a reservation
type ReservationState string

const (
	StatePending   ReservationState = "pending"
	StateConfirmed ReservationState = "confirmed"
)

// Reservation represents a client's claim on a slot
type Reservation struct {
	Date              string // "MM/dd/yyyy"
	Time              string // "hh:mm AM/PM"
	ClientID          string
	ProviderID        string
	Confirmed         bool
	CreationTimestamp time.Time
}

// State returns the current lifecycle state; expired reservations are deleted,
// so a stored reservation is either pending or confirmed
func (r *Reservation) State() ReservationState {
	if r.Confirmed {
		return StateConfirmed
	}
	return StatePending
}

// Equal compares all fields, the confirmed flag included
func (r Reservation) Equal(other Reservation) bool {
	return r.Date == other.Date &&
		r.Time == other.Time &&
		r.ClientID == other.ClientID &&
		r.ProviderID == other.ProviderID &&
		r.Confirmed == other.Confirmed &&
		r.CreationTimestamp.Equal(other.CreationTimestamp)
}

// Matches returns true if the reservation belongs to the client's slot
func (r *Reservation) Matches(date, slotTime, providerID, clientID string) bool {
	return r.Date == date && r.Time == slotTime && r.ProviderID == providerID && r.ClientID == clientID
}

// OccupiesSlot returns true if the reservation is for the given slot
func (r *Reservation) OccupiesSlot(slot TimeSlot) bool {
	return r.Date == slot.Date && r.Time == slot.Time && r.ProviderID == slot.ProviderID
}

// HoldExpired reports whether the hold period has passed at now.
// Elapsed time is counted in whole minutes
func (r *Reservation) HoldExpired(now time.Time, holdPeriod time.Duration) bool {
	elapsedMinutes := int64(now.Sub(r.CreationTimestamp) / time.Minute)
	return elapsedMinutes >= int64(holdPeriod/time.Minute)
}

// ClientReservationsFilter фильтр для получения бронирований клиента
type ClientReservationsFilter struct {
	ClientID      string
	ProviderID    *string // опционально
	ConfirmedOnly bool
}
