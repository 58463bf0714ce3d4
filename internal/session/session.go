package session

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Session владеет снимком смен и бронирований в памяти на время жизни движка
//
// Все изменения идут через DoSerializable: писатели выполняются строго по одному,
// поэтому read-modify-write одной коллекции не перемешивается.
// Save* сначала пишет в хранилище и только после успешной записи подменяет снимок,
// так что память и хранилище не расходятся при ошибке записи.
// Чтение берёт read lock и возвращает копию.
type Session struct {
	gateway Gateway
	logger  Logger

	writeMu sync.Mutex

	mu           sync.RWMutex
	shifts       []domain.Shift
	reservations []domain.Reservation
}

// New создает новую сессию поверх хранилища
func New(gateway Gateway, logger Logger) *Session {
	return &Session{
		gateway:      gateway,
		logger:       logger,
		shifts:       make([]domain.Shift, 0),
		reservations: make([]domain.Reservation, 0),
	}
}

// Load загружает смены и бронирования из хранилища
// Смены сортируются по дате
func (s *Session) Load(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	shifts, err := s.gateway.LoadSchedules(ctx)
	if err != nil {
		s.logger.Error("Session.Load: failed to load schedules: %v", err)
		return fmt.Errorf("%w: Load - schedules: %v", ErrStorage, err)
	}

	reservations, err := s.gateway.LoadReservations(ctx)
	if err != nil {
		s.logger.Error("Session.Load: failed to load reservations: %v", err)
		return fmt.Errorf("%w: Load - reservations: %v", ErrStorage, err)
	}

	sorted := copyShifts(shifts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	s.mu.Lock()
	s.shifts = sorted
	s.reservations = copyReservations(reservations)
	s.mu.Unlock()

	s.logger.Info("Session.Load: loaded %d shifts and %d reservations", len(sorted), len(reservations))
	return nil
}

// DoSerializable выполняет fn эксклюзивно относительно других изменений
func (s *Session) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}

// Shifts возвращает копию смен
func (s *Session) Shifts() []domain.Shift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyShifts(s.shifts)
}

// Reservations возвращает копию бронирований
func (s *Session) Reservations() []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyReservations(s.reservations)
}

// Snapshot возвращает копии смен и бронирований, снятые под одной блокировкой
func (s *Session) Snapshot() ([]domain.Shift, []domain.Reservation) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyShifts(s.shifts), copyReservations(s.reservations)
}

// SaveShifts перезаписывает смены в хранилище, затем в памяти
func (s *Session) SaveShifts(ctx context.Context, shifts []domain.Shift) error {
	next := copyShifts(shifts)

	if err := s.gateway.SaveSchedules(ctx, next); err != nil {
		s.logger.Error("Session.SaveShifts: failed to save %d shifts: %v", len(next), err)
		return fmt.Errorf("%w: SaveShifts: %v", ErrStorage, err)
	}

	s.mu.Lock()
	s.shifts = next
	s.mu.Unlock()

	return nil
}

// SaveReservations перезаписывает бронирования в хранилище, затем в памяти
func (s *Session) SaveReservations(ctx context.Context, reservations []domain.Reservation) error {
	next := copyReservations(reservations)

	if err := s.gateway.SaveReservations(ctx, next); err != nil {
		s.logger.Error("Session.SaveReservations: failed to save %d reservations: %v", len(next), err)
		return fmt.Errorf("%w: SaveReservations: %v", ErrStorage, err)
	}

	s.mu.Lock()
	s.reservations = next
	s.mu.Unlock()

	return nil
}

func copyShifts(shifts []domain.Shift) []domain.Shift {
	result := make([]domain.Shift, len(shifts))
	copy(result, shifts)
	return result
}

func copyReservations(reservations []domain.Reservation) []domain.Reservation {
	result := make([]domain.Reservation, len(reservations))
	copy(result, reservations)
	return result
}
