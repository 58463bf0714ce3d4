package domain

import (
	"fmt"
	"time"
)

// Shift рабочее окно провайдера на конкретную дату
type Shift struct {
	ProviderID string
	Date       time.Time // календарная дата смены, время суток берётся из StartTime/EndTime
	StartTime  string    // "09:00 AM"
	EndTime    string    // "05:00 PM"
}

// Equal сравнивает смены по всем полям, дата сравнивается как момент времени
func (s Shift) Equal(other Shift) bool {
	return s.ProviderID == other.ProviderID &&
		s.Date.Equal(other.Date) &&
		s.StartTime == other.StartTime &&
		s.EndTime == other.EndTime
}

// String возвращает описание смены для статусных сообщений
func (s Shift) String() string {
	return fmt.Sprintf("%s %s - %s", s.Date.Format(DateFormat), s.StartTime, s.EndTime)
}

// ContainsShift проверяет, есть ли равная смена в списке
func ContainsShift(shifts []Shift, shift Shift) bool {
	for _, s := range shifts {
		if s.Equal(shift) {
			return true
		}
	}
	return false
}
