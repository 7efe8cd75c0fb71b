package professor

import "errors"

var (
	// ErrProfessorNotFound возвращается, когда профессор не найден
	ErrProfessorNotFound = errors.New("professor.repository: professor not found")

	// ErrDuplicateEmail возвращается при попытке создать профессора с занятым email
	ErrDuplicateEmail = errors.New("professor.repository: professor email already exists")

	// ErrProfessorInUse возвращается при попытке удалить профессора,
	// входящего в комиссию хотя бы одной защиты
	ErrProfessorInUse = errors.New("professor.repository: professor is assigned to defenses")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("professor.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("professor.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("professor.repository: failed to scan row")
)
