package engine

import "errors"

var (
	// ErrNoCaller возвращается, если не задан ID клиента установки
	ErrNoCaller = errors.New("engine: caller client id is required")

	// ErrInvalidPolicy возвращается при неизвестной политике сопоставления
	ErrInvalidPolicy = errors.New("engine: invalid match policy")
)
