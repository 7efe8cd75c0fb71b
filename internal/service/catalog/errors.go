package catalog

import "errors"

var (
	// ErrRoomNotFound возвращается, когда аудитория не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrDuplicateRoomName возвращается, когда имя аудитории уже занято
	// (без учета регистра)
	ErrDuplicateRoomName = errors.New("room name already exists")

	// ErrRoomInUse возвращается при удалении аудитории с назначенными защитами
	ErrRoomInUse = errors.New("room has scheduled defenses")

	// ErrProfessorNotFound возвращается, когда профессор не найден
	ErrProfessorNotFound = errors.New("professor not found")

	// ErrDuplicateProfessorEmail возвращается, когда email профессора уже занят
	ErrDuplicateProfessorEmail = errors.New("professor email already exists")

	// ErrProfessorInUse возвращается при удалении профессора из комиссии защит
	ErrProfessorInUse = errors.New("professor is assigned to defenses")

	// ErrSlotNotFound возвращается, когда слот доступности не найден
	ErrSlotNotFound = errors.New("availability slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
