package slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Generate разворачивает смену в упорядоченный список 15-минутных слотов
// Слоты идут от начала смены (включительно) до конца (не включительно) и лежат на дате смены
// Если время не разбирается или конец не позже начала, возвращается пустой список
// Текущее время здесь не учитывается, прошедшие слоты отбрасывает Filter
func Generate(shift domain.Shift) []domain.TimeSlot {
	start, end, err := Bounds(shift)
	if err != nil {
		return []domain.TimeSlot{}
	}

	slots := make([]domain.TimeSlot, 0)
	for cursor := start; cursor.Before(end); cursor = cursor.Add(domain.SlotStep) {
		slots = append(slots, domain.TimeSlot{
			Date:       cursor.Format(domain.DateFormat),
			Time:       cursor.Format(domain.TimeFormat),
			ProviderID: shift.ProviderID,
			Start:      cursor,
		})
	}

	return slots
}

// Bounds возвращает начало и конец смены, привязанные к дате смены
// Из строк времени берётся только время суток, календарная дата и локация берутся из shift.Date
func Bounds(shift domain.Shift) (time.Time, time.Time, error) {
	startHour, startMinute, err := ParseClock(shift.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endHour, endMinute, err := ParseClock(shift.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return anchor(shift.Date, startHour, startMinute), anchor(shift.Date, endHour, endMinute), nil
}

// ParseClock разбирает время вида "09:15 AM" и возвращает час (0-23) и минуты
func ParseClock(value string) (int, int, error) {
	value = strings.TrimSpace(value)
	for _, layout := range domain.TimeInputFormats {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.Hour(), t.Minute(), nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
}

// SlotInstant восстанавливает момент начала слота по его строковым полям в указанной локации
func SlotInstant(slot domain.TimeSlot, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, slot.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, slot.Date)
	}

	hour, minute, err := ParseClock(slot.Time)
	if err != nil {
		return time.Time{}, err
	}

	return anchor(date, hour, minute), nil
}

// anchor переносит время суток на календарную дату date
func anchor(date time.Time, hour, minute int) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, hour, minute, 0, 0, date.Location())
}
