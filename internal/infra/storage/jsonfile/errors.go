package jsonfile

import "errors"

var (
	// ErrRead возвращается при ошибке чтения файла
	ErrRead = errors.New("jsonfile: failed to read file")

	// ErrDecode возвращается, когда содержимое файла не является ожидаемым JSON
	ErrDecode = errors.New("jsonfile: failed to decode document")

	// ErrWrite возвращается при ошибке записи файла
	ErrWrite = errors.New("jsonfile: failed to write file")
)
