package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда аудитория не найдена
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrDuplicateName возвращается при попытке создать аудиторию с занятым именем
	// (уникальность без учета регистра)
	ErrDuplicateName = errors.New("room.repository: room name already exists")

	// ErrRoomInUse возвращается при попытке удалить аудиторию, на которую
	// ссылаются защиты
	ErrRoomInUse = errors.New("room.repository: room is referenced by defenses")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
