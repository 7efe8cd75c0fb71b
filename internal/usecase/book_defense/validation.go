package book_defense

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Нарушение формы отклоняется до любых обращений к хранилищу.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.StudentName) == "" {
		return fmt.Errorf("%w: studentName is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.StudentEmail)
	if email == "" {
		return fmt.Errorf("%w: studentEmail is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: studentEmail is not a valid email", ErrInvalidInput)
	}

	if req.RoomID == uuid.Nil {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if len(req.ProfessorIDs) != domain.CommitteeSize {
		return fmt.Errorf("%w: exactly %d professors must be selected", ErrInvalidInput, domain.CommitteeSize)
	}
	for _, id := range req.ProfessorIDs {
		if id == uuid.Nil {
			return fmt.Errorf("%w: professor id must not be empty", ErrInvalidInput)
		}
	}
	if req.ProfessorIDs[0] == req.ProfessorIDs[1] {
		return fmt.Errorf("%w: professors must be distinct", ErrInvalidInput)
	}

	return nil
}
