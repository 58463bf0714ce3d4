package session

import "errors"

var (
	// ErrStorage возвращается, когда хранилище не смогло загрузить или сохранить коллекцию
	ErrStorage = errors.New("session: storage error")
)
