package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase (в т.ч. ошибке записи)
	ErrInternal = errors.New("create_reservation: internal error")
)
