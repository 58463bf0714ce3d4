package domain

import "time"

// TimeSlot represents a derived 15-minute bookable unit, never persisted
type TimeSlot struct {
	Date       string
	Time       string
	ProviderID string

	// Start момент начала слота, заполняется генератором
	Start time.Time
}

// DateGroup bookable slots of one date
type DateGroup struct {
	Date  string
	Slots []TimeSlot
}

// MatchPolicy defines which reservations take a slot out of availability
type MatchPolicy string

const (
	// MatchConfirmedOnly only confirmed reservations block a slot
	MatchConfirmedOnly MatchPolicy = "confirmed_only"
	// MatchAll pending reservations block a slot as well
	MatchAll MatchPolicy = "all"
)

// Blocks returns true if the reservation takes its slot out of availability under the policy
func (p MatchPolicy) Blocks(r *Reservation) bool {
	if p == MatchAll {
		return true
	}
	return r.Confirmed
}

// Valid returns true for known policies
func (p MatchPolicy) Valid() bool {
	return p == MatchConfirmedOnly || p == MatchAll
}
