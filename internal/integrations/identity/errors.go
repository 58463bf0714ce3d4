package identity

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан ни файл, ни URL идентификатора
	ErrNotConfigured = errors.New("identity: source is not configured")

	// ErrInternal возвращается при ошибках чтения или запроса
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном документе идентификатора
	ErrInvalidResponse = errors.New("identity client: invalid response")

	// ErrEmptyID возвращается, если в документе пустой id
	ErrEmptyID = errors.New("identity: client id is empty")
)
