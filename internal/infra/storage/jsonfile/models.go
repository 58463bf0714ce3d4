package jsonfile

import (
	"time"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// shiftRecord запись смены в schedules.json
type shiftRecord struct {
	ProviderID string    `json:"providerId"`
	Date       time.Time `json:"date"` // RFC 3339
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
}

// reservationRecord запись бронирования в reservations.json
type reservationRecord struct {
	Date              string `json:"date"`
	Time              string `json:"time"`
	ClientID          string `json:"clientId"`
	ProviderID        string `json:"providerId"`
	Confirmed         bool   `json:"confirmed"`
	CreationTimestamp int64  `json:"creationTimestamp"` // epoch millis
}

func fromDomainShift(s domain.Shift) shiftRecord {
	return shiftRecord{
		ProviderID: s.ProviderID,
		Date:       s.Date,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

func (r shiftRecord) toDomain() domain.Shift {
	return domain.Shift{
		ProviderID: r.ProviderID,
		Date:       r.Date.Local(),
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

func fromDomainReservation(r domain.Reservation) reservationRecord {
	return reservationRecord{
		Date:              r.Date,
		Time:              r.Time,
		ClientID:          r.ClientID,
		ProviderID:        r.ProviderID,
		Confirmed:         r.Confirmed,
		CreationTimestamp: r.CreationTimestamp.UnixMilli(),
	}
}

func (r reservationRecord) toDomain() domain.Reservation {
	return domain.Reservation{
		Date:              r.Date,
		Time:              r.Time,
		ClientID:          r.ClientID,
		ProviderID:        r.ProviderID,
		Confirmed:         r.Confirmed,
		CreationTimestamp: time.UnixMilli(r.CreationTimestamp),
	}
}
