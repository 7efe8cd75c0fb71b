package book_defense

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
	bookDefense "github.com/m04kA/SMC-DefenseService/internal/usecase/book_defense"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid time format, expected HH:MM or HH:MM:SS"
	msgRoomNotFound       = "room not found"
	msgProfessorNotFound  = "one of the selected readers was not found"
	msgAlreadyBooked      = "this student already has a scheduled defense"
	msgSlotTaken          = "this slot has just been taken, please pick another one"
)

type Handler struct {
	useCase BookDefenseUseCase
	logger  Logger
}

func NewHandler(useCase BookDefenseUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/defenses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookDefenseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /defenses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /defenses - Failed to parse request: %v", err)
		if req.Date != "" && len(req.Date) == len("2006-01-02") {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookDefense.ErrInvalidInput):
			h.logger.Warn("POST /defenses - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookDefense.ErrRoomNotFound):
			h.logger.Warn("POST /defenses - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, bookDefense.ErrProfessorNotFound):
			h.logger.Warn("POST /defenses - Professor not found: first=%s, second=%s",
				req.FirstReaderID, req.SecondReaderID)
			handlers.RespondNotFound(w, msgProfessorNotFound)

		case errors.Is(err, bookDefense.ErrAlreadyBooked):
			h.logger.Warn("POST /defenses - Student already booked: email=%s", req.StudentEmail)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, bookDefense.ErrSlotTaken):
			h.logger.Warn("POST /defenses - Slot taken: room_id=%s, date=%s, time=%s",
				req.RoomID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /defenses - Failed to book defense: email=%s, error=%v",
				req.StudentEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /defenses - Defense booked: defense_id=%s, student_id=%s",
		result.DefenseID, result.StudentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
