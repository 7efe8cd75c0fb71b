package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Пара читателей: либо отсутствует, либо ровно два различных ненулевых id -
// вырожденная пара [A, A] отклоняется здесь, дальше вычисление считает
// id различными.
func validateRequest(req *Request) error {
	if len(req.ReaderIDs) == 0 {
		return nil
	}

	if len(req.ReaderIDs) != domain.CommitteeSize {
		return fmt.Errorf("%w: exactly %d readers must be provided", ErrInvalidInput, domain.CommitteeSize)
	}

	for _, id := range req.ReaderIDs {
		if id == uuid.Nil {
			return fmt.Errorf("%w: reader id must not be empty", ErrInvalidInput)
		}
	}

	if req.ReaderIDs[0] == req.ReaderIDs[1] {
		return fmt.Errorf("%w: readers must be distinct", ErrInvalidInput)
	}

	return nil
}
