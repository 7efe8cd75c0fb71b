package schedule

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно защит еще не задано
	ErrWindowNotFound = errors.New("defense window not set")

	// ErrDefenseNotFound возвращается, когда защита не найдена
	ErrDefenseNotFound = errors.New("defense not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
