package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

const (
	SchedulesFileName    = "schedules.json"
	ReservationsFileName = "reservations.json"
)

// Store хранит смены и бронирования в двух JSON-файлах в каталоге dir
// Каждое сохранение полностью перезаписывает файл
type Store struct {
	dir string
}

// NewStore создает хранилище и каталог данных, если его нет
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: NewStore - create dir %s: %v", ErrWrite, dir, err)
	}
	return &Store{dir: dir}, nil
}

// LoadSchedules читает смены; если файла нет, возвращает пустой список
func (s *Store) LoadSchedules(ctx context.Context) ([]domain.Shift, error) {
	var records []shiftRecord
	if err := s.readDocument(SchedulesFileName, &records); err != nil {
		return nil, err
	}

	shifts := make([]domain.Shift, 0, len(records))
	for _, r := range records {
		shifts = append(shifts, r.toDomain())
	}
	return shifts, nil
}

// SaveSchedules перезаписывает файл смен
func (s *Store) SaveSchedules(ctx context.Context, shifts []domain.Shift) error {
	records := make([]shiftRecord, 0, len(shifts))
	for _, shift := range shifts {
		records = append(records, fromDomainShift(shift))
	}
	return s.writeDocument(SchedulesFileName, records)
}

// LoadReservations читает бронирования; если файла нет, возвращает пустой список
func (s *Store) LoadReservations(ctx context.Context) ([]domain.Reservation, error) {
	var records []reservationRecord
	if err := s.readDocument(ReservationsFileName, &records); err != nil {
		return nil, err
	}

	reservations := make([]domain.Reservation, 0, len(records))
	for _, r := range records {
		reservations = append(reservations, r.toDomain())
	}
	return reservations, nil
}

// SaveReservations перезаписывает файл бронирований
func (s *Store) SaveReservations(ctx context.Context, reservations []domain.Reservation) error {
	records := make([]reservationRecord, 0, len(reservations))
	for _, r := range reservations {
		records = append(records, fromDomainReservation(r))
	}
	return s.writeDocument(ReservationsFileName, records)
}

func (s *Store) readDocument(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRead, name, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, name, err)
	}
	return nil
}

// writeDocument пишет во временный файл и переименовывает его поверх старого,
// чтобы прерванная запись не оставила половину документа
func (s *Store) writeDocument(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s - encode: %v", ErrWrite, name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s - create temp file: %v", ErrWrite, name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s - write: %v", ErrWrite, name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s - close: %v", ErrWrite, name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s - rename: %v", ErrWrite, name, err)
	}
	return nil
}
