package book_defense

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	bookDefense "github.com/m04kA/SMC-DefenseService/internal/usecase/book_defense"
	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

// BookDefenseRequest HTTP request model
type BookDefenseRequest struct {
	StudentName    string    `json:"studentName"`
	StudentEmail   string    `json:"studentEmail"`
	RoomID         uuid.UUID `json:"roomId"`
	FirstReaderID  uuid.UUID `json:"firstReaderId"`
	SecondReaderID uuid.UUID `json:"secondReaderId"`
	Date           string    `json:"date"` // "2026-05-20"
	Time           string    `json:"time"` // "10:00" или "10:00:00"
}

// DefenseResponse HTTP response model
type DefenseResponse struct {
	ID           uuid.UUID   `json:"id"`
	StudentID    uuid.UUID   `json:"studentId"`
	RoomID       uuid.UUID   `json:"roomId"`
	RoomName     string      `json:"roomName"`
	ProfessorIDs []uuid.UUID `json:"professorIds"`
	Date         string      `json:"date"`
	Time         string      `json:"time"`
	CreatedAt    string      `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookDefenseRequest) ToUseCaseRequest() (*bookDefense.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &bookDefense.Request{
		StudentName:  r.StudentName,
		StudentEmail: r.StudentEmail,
		RoomID:       r.RoomID,
		ProfessorIDs: []uuid.UUID{r.FirstReaderID, r.SecondReaderID},
		Date:         date,
		Time:         slotTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookDefense.Response) *DefenseResponse {
	return &DefenseResponse{
		ID:           resp.DefenseID,
		StudentID:    resp.StudentID,
		RoomID:       resp.RoomID,
		RoomName:     resp.RoomName,
		ProfessorIDs: resp.ProfessorIDs,
		Date:         resp.Date.Format(domain.DateFormat),
		Time:         resp.Time.String(),
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
