package book_defense

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

// Request модель запроса на бронирование защиты
type Request struct {
	StudentName  string
	StudentEmail string
	RoomID       uuid.UUID
	ProfessorIDs []uuid.UUID // ровно два различных id читателей
	Date         time.Time
	Time         types.TimeString
}

// Response модель ответа с созданной защитой
type Response struct {
	DefenseID    uuid.UUID
	StudentID    uuid.UUID
	RoomID       uuid.UUID
	RoomName     string
	ProfessorIDs []uuid.UUID
	Date         time.Time
	Time         types.TimeString
	CreatedAt    time.Time
}
