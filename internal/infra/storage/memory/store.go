package memory

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Store хранилище в памяти процесса, данные теряются при остановке
type Store struct {
	mu           sync.Mutex
	shifts       []domain.Shift
	reservations []domain.Reservation

	shiftSaves       int
	reservationSaves int
}

// NewStore создает хранилище с начальными данными
func NewStore(shifts []domain.Shift, reservations []domain.Reservation) *Store {
	return &Store{
		shifts:       append([]domain.Shift(nil), shifts...),
		reservations: append([]domain.Reservation(nil), reservations...),
	}
}

func (s *Store) LoadSchedules(ctx context.Context) ([]domain.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]domain.Shift, 0, len(s.shifts)), s.shifts...), nil
}

func (s *Store) SaveSchedules(ctx context.Context, shifts []domain.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shifts = append(make([]domain.Shift, 0, len(shifts)), shifts...)
	s.shiftSaves++
	return nil
}

func (s *Store) LoadReservations(ctx context.Context) ([]domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]domain.Reservation, 0, len(s.reservations)), s.reservations...), nil
}

func (s *Store) SaveReservations(ctx context.Context, reservations []domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(make([]domain.Reservation, 0, len(reservations)), reservations...)
	s.reservationSaves++
	return nil
}

// SaveCounts возвращает число перезаписей смен и бронирований
func (s *Store) SaveCounts() (shifts int, reservations int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shiftSaves, s.reservationSaves
}
