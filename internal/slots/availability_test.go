package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

var shiftDate = time.Date(2030, time.May, 10, 0, 0, 0, 0, time.UTC)

func morningShift(providerID string) domain.Shift {
	return domain.Shift{ProviderID: providerID, Date: shiftDate, StartTime: "09:00 AM", EndTime: "10:00 AM"}
}

func reservation(slotTime, providerID string, confirmed bool) domain.Reservation {
	return domain.Reservation{
		Date:              "05/10/2030",
		Time:              slotTime,
		ClientID:          "client-1",
		ProviderID:        providerID,
		Confirmed:         confirmed,
		CreationTimestamp: shiftDate,
	}
}

func TestFilter_DropsPastAndCurrentSlots(t *testing.T) {
	now := time.Date(2030, time.May, 10, 9, 15, 0, 0, time.UTC)

	available := Filter(Generate(morningShift("p1")), nil, now, domain.MatchConfirmedOnly)

	// 09:15 совпадает с now и тоже отбрасывается
	assert.Equal(t, []string{"09:30 AM", "09:45 AM"}, slotTimes(available))
}

func TestFilter_SlotWithoutStart(t *testing.T) {
	now := time.Date(2030, time.May, 10, 9, 15, 0, 0, time.UTC)
	candidates := []domain.TimeSlot{
		{Date: "05/10/2030", Time: "09:00 AM", ProviderID: "p1"},
		{Date: "05/10/2030", Time: "09:30 AM", ProviderID: "p1"},
		{Date: "05/10/2030", Time: "09:45 AM", ProviderID: "p1"},
		{Date: "2030-05-10", Time: "10:00 AM", ProviderID: "p1"},
	}
	reservations := []domain.Reservation{reservation("09:45 AM", "p1", true)}

	available := Filter(candidates, reservations, now, domain.MatchConfirmedOnly)

	// момент начала восстанавливается по строкам, неразбираемая дата отбрасывается
	assert.Equal(t, []string{"09:30 AM"}, slotTimes(available))
}

func TestFilter_ConfirmedReservationTakesSlot(t *testing.T) {
	now := time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC)
	reservations := []domain.Reservation{
		reservation("09:30 AM", "p1", true),
		reservation("09:15 AM", "p2", true), // другой провайдер
	}

	available := Filter(Generate(morningShift("p1")), reservations, now, domain.MatchConfirmedOnly)

	assert.Equal(t, []string{"09:00 AM", "09:15 AM", "09:45 AM"}, slotTimes(available))
}

func TestFilter_PendingReservationDependsOnPolicy(t *testing.T) {
	now := time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC)
	reservations := []domain.Reservation{
		reservation("09:45 AM", "p1", false),
	}

	tests := []struct {
		name   string
		policy domain.MatchPolicy
		want   []string
	}{
		{name: "confirmed only", policy: domain.MatchConfirmedOnly, want: []string{"09:00 AM", "09:15 AM", "09:30 AM", "09:45 AM"}},
		{name: "all reservations", policy: domain.MatchAll, want: []string{"09:00 AM", "09:15 AM", "09:30 AM"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available := Filter(Generate(morningShift("p1")), reservations, now, tt.policy)
			assert.Equal(t, tt.want, slotTimes(available))
		})
	}
}

func TestFilter_ConfirmedSlotNeverAvailable(t *testing.T) {
	now := time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC)
	taken := reservation("09:15 AM", "p1", true)
	shifts := []domain.Shift{
		morningShift("p1"),
		{ProviderID: "p1", Date: shiftDate, StartTime: "08:00 AM", EndTime: "11:00 AM"},
	}

	for _, policy := range []domain.MatchPolicy{domain.MatchConfirmedOnly, domain.MatchAll} {
		for _, group := range Available(shifts, []domain.Reservation{taken}, now, policy) {
			for _, slot := range group.Slots {
				assert.False(t, taken.OccupiesSlot(slot), "slot %s %s must be taken", slot.Date, slot.Time)
			}
		}
	}
}

func TestGroupByDate_Ordering(t *testing.T) {
	slots := []domain.TimeSlot{
		{Date: "01/01/2030", Time: "09:00 AM", ProviderID: "p2"},
		{Date: "12/31/2029", Time: "10:00 AM", ProviderID: "p1"},
		{Date: "01/01/2030", Time: "01:00 PM", ProviderID: "p1"},
		{Date: "01/01/2030", Time: "09:00 AM", ProviderID: "p1"},
	}

	groups := GroupByDate(slots)

	require.Len(t, groups, 2)
	assert.Equal(t, "12/31/2029", groups[0].Date)
	assert.Equal(t, "01/01/2030", groups[1].Date)

	// Сортировка лексикографическая по строкам: "01:00 PM" < "09:00 AM"
	assert.Equal(t, []domain.TimeSlot{
		{Date: "01/01/2030", Time: "01:00 PM", ProviderID: "p1"},
		{Date: "01/01/2030", Time: "09:00 AM", ProviderID: "p1"},
		{Date: "01/01/2030", Time: "09:00 AM", ProviderID: "p2"},
	}, groups[1].Slots)
}

func TestAvailable_MergesShiftsOfSameDate(t *testing.T) {
	now := time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC)
	shifts := []domain.Shift{
		morningShift("p2"),
		morningShift("p1"),
		{ProviderID: "p1", Date: shiftDate.AddDate(0, 0, 1), StartTime: "09:00 AM", EndTime: "09:15 AM"},
	}

	groups := Available(shifts, nil, now, domain.MatchConfirmedOnly)

	require.Len(t, groups, 2)
	assert.Equal(t, "05/10/2030", groups[0].Date)
	require.Len(t, groups[0].Slots, 8)
	assert.Equal(t, "p1", groups[0].Slots[0].ProviderID)
	assert.Equal(t, "p2", groups[0].Slots[1].ProviderID)
	assert.Equal(t, "05/11/2030", groups[1].Date)
	assert.Len(t, groups[1].Slots, 1)
}

func TestAvailable_Empty(t *testing.T) {
	groups := Available(nil, nil, time.Now(), domain.MatchConfirmedOnly)
	assert.Empty(t, groups)
}
