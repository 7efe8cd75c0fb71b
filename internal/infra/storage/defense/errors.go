package defense

import "errors"

var (
	// ErrDefenseNotFound возвращается, когда защита не найдена
	ErrDefenseNotFound = errors.New("defense.repository: defense not found")

	// ErrSlotTaken возвращается при нарушении уникальности (room_id, date, time):
	// параллельная бронь успела занять этот слот первой
	ErrSlotTaken = errors.New("defense.repository: slot already taken")

	// ErrStudentAlreadyBooked возвращается при нарушении уникальности student_id:
	// у студента уже есть запланированная защита
	ErrStudentAlreadyBooked = errors.New("defense.repository: student already has a defense")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("defense.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("defense.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("defense.repository: failed to scan row")
)
