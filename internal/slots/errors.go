package slots

import "errors"

var (
	// ErrInvalidTime возвращается, когда время смены не удалось разобрать
	ErrInvalidTime = errors.New("slots: invalid time string")

	// ErrInvalidDate возвращается, когда дату слота не удалось разобрать
	ErrInvalidDate = errors.New("slots: invalid date string")
)
