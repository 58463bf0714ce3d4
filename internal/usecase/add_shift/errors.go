package add_shift

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_shift: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase (в т.ч. ошибке записи)
	ErrInternal = errors.New("add_shift: internal error")
)
