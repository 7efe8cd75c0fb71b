package student

import "errors"

var (
	// ErrStudentNotFound возвращается, когда студент не найден
	ErrStudentNotFound = errors.New("student.repository: student not found")

	// ErrDuplicateEmail возвращается при попытке создать студента с занятым email.
	// Для потока бронирования это сигнал гонки lookup-or-create: нужно перечитать.
	ErrDuplicateEmail = errors.New("student.repository: student email already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("student.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("student.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("student.repository: failed to scan row")
)
