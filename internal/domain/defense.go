package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

// Defense защита дипломной работы: один студент, одна аудитория,
// дата/время и комиссия из двух профессоров-читателей.
type Defense struct {
	ID        uuid.UUID
	StudentID uuid.UUID
	RoomID    uuid.UUID
	Date      time.Time
	Time      types.TimeString

	// CommitteeIDs идентификаторы профессоров комиссии.
	// Заполняется при чтении вместе со строками defense_committee.
	CommitteeIDs []uuid.UUID

	CreatedAt time.Time
}

// DefenseDetails защита с денормализованными данными для административного списка
type DefenseDetails struct {
	ID           uuid.UUID
	Date         time.Time
	Time         types.TimeString
	StudentName  string
	StudentEmail string
	RoomName     string
	Readers      []string
}
