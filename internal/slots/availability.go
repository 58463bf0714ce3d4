package slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Filter оставляет только бронируемые слоты
//
// Для каждого кандидата:
//  1. слот, начало которого не позже now, отбрасывается;
//  2. ищется бронирование на тот же (date, time, providerId) среди бронирований,
//     которые блокируют слот по политике policy;
//  3. найденное бронирование исключает слот, если его строки совпадают
//     с заново отформатированными датой и временем кандидата;
//  4. без бронирования слот доступен.
//
// Момент начала берётся из TimeSlot.Start, для слотов без него восстанавливается
// по строкам в локации now; слот с неразбираемыми строками отбрасывается
func Filter(
	candidates []domain.TimeSlot,
	reservations []domain.Reservation,
	now time.Time,
	policy domain.MatchPolicy,
) []domain.TimeSlot {
	blocking := make([]domain.Reservation, 0, len(reservations))
	for i := range reservations {
		if policy.Blocks(&reservations[i]) {
			blocking = append(blocking, reservations[i])
		}
	}

	available := make([]domain.TimeSlot, 0, len(candidates))
	for _, slot := range candidates {
		start, err := startOf(slot, now.Location())
		if err != nil || !start.After(now) {
			continue
		}

		index := indexOfReservation(blocking, slot)
		if index < 0 {
			available = append(available, slot)
			continue
		}

		// Сравнение по отформатированным строкам, а не по полям слота
		reservation := blocking[index]
		slotDate := start.Format(domain.DateFormat)
		slotTime := start.Format(domain.TimeFormat)
		if slotDate != reservation.Date || slotTime != reservation.Time || slot.ProviderID != reservation.ProviderID {
			available = append(available, slot)
		}
	}

	return available
}

// Available строит бронируемые слоты по всем сменам и группирует их по дате
func Available(
	shifts []domain.Shift,
	reservations []domain.Reservation,
	now time.Time,
	policy domain.MatchPolicy,
) []domain.DateGroup {
	all := make([]domain.TimeSlot, 0)
	for _, shift := range shifts {
		all = append(all, Filter(Generate(shift), reservations, now, policy)...)
	}
	return GroupByDate(all)
}

// GroupByDate группирует слоты по строке даты
// Группы упорядочены по дате, внутри группы слоты отсортированы по (time, providerId)
// лексикографически по отформатированным строкам
func GroupByDate(slots []domain.TimeSlot) []domain.DateGroup {
	groups := make([]domain.DateGroup, 0)
	index := make(map[string]int)

	for _, slot := range slots {
		i, ok := index[slot.Date]
		if !ok {
			i = len(groups)
			index[slot.Date] = i
			groups = append(groups, domain.DateGroup{Date: slot.Date, Slots: make([]domain.TimeSlot, 0)})
		}
		groups[i].Slots = append(groups[i].Slots, slot)
	}

	for i := range groups {
		group := groups[i].Slots
		sort.SliceStable(group, func(a, b int) bool {
			if group[a].Time != group[b].Time {
				return group[a].Time < group[b].Time
			}
			return group[a].ProviderID < group[b].ProviderID
		})
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return dateBefore(groups[a].Date, groups[b].Date)
	})

	return groups
}

// startOf возвращает момент начала слота
func startOf(slot domain.TimeSlot, loc *time.Location) (time.Time, error) {
	if !slot.Start.IsZero() {
		return slot.Start, nil
	}
	return SlotInstant(slot, loc)
}

// indexOfReservation возвращает индекс первого бронирования на слот или -1
func indexOfReservation(reservations []domain.Reservation, slot domain.TimeSlot) int {
	for i := range reservations {
		if reservations[i].OccupiesSlot(slot) {
			return i
		}
	}
	return -1
}

// dateBefore сравнивает строки дат хронологически, неразбираемые даты идут в конце
func dateBefore(a, b string) bool {
	ta, errA := time.Parse(domain.DateFormat, a)
	tb, errB := time.Parse(domain.DateFormat, b)
	switch {
	case errA != nil && errB != nil:
		return a < b
	case errA != nil:
		return false
	case errB != nil:
		return true
	default:
		return ta.Before(tb)
	}
}
